package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltworks/inventory-engine/internal/bom"
	"github.com/voltworks/inventory-engine/internal/cache"
	"github.com/voltworks/inventory-engine/internal/dataset"
	"github.com/voltworks/inventory-engine/internal/domain"
)

type memoryLoader struct {
	tables dataset.Tables
	err    error
}

func (l *memoryLoader) Load(_ context.Context) (*dataset.Snapshot, error) {
	if l.err != nil {
		return nil, l.err
	}
	return dataset.NewSnapshot(l.tables), nil
}

// memoryCache records cache traffic so hit and invalidation behavior can be
// asserted without redis.
type memoryCache struct {
	health      []domain.HealthRecord
	capacity    map[string]domain.CapacityResult
	invalidated int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{capacity: make(map[string]domain.CapacityResult)}
}

func (c *memoryCache) GetHealthReport(_ context.Context) ([]domain.HealthRecord, bool, error) {
	return c.health, c.health != nil, nil
}

func (c *memoryCache) SetHealthReport(_ context.Context, records []domain.HealthRecord) error {
	c.health = records
	return nil
}

func (c *memoryCache) GetCapacity(_ context.Context, model string) (*domain.CapacityResult, bool, error) {
	result, ok := c.capacity[bom.NormalizeModel(model)]
	if !ok {
		return nil, false, nil
	}
	return &result, true, nil
}

func (c *memoryCache) SetCapacity(_ context.Context, model string, result domain.CapacityResult) error {
	c.capacity[bom.NormalizeModel(model)] = result
	return nil
}

func (c *memoryCache) InvalidateAll(_ context.Context) error {
	c.health = nil
	c.capacity = make(map[string]domain.CapacityResult)
	c.invalidated++
	return nil
}

func testTables() dataset.Tables {
	return dataset.Tables{
		Materials: []domain.Material{
			{PartID: "P1", PartName: "Frame", PartType: "Mechanical", UsedInModels: []string{"S1_V1"}},
		},
		StockLevels: []domain.StockLevel{
			{PartID: "P1", QuantityAvailable: 40},
		},
		DispatchParameters: []domain.DispatchParameters{
			{PartID: "P1", MinStockLevel: 100, ReorderQuantity: 50},
		},
		SalesOrders: []domain.SalesOrder{
			{OrderID: "SO1", Model: "S1_V1", Quantity: 5},
		},
	}
}

func testProvider() bom.Provider {
	return bom.NewMemoryProvider(map[string][]domain.BOMLine{
		"S1_V1": {{PartID: "P1", Quantity: 2}},
	})
}

func newTestService(t *testing.T, mc *memoryCache) *InventoryService {
	t.Helper()
	store := dataset.NewStore(&memoryLoader{tables: testTables()})
	_, err := store.Reload(context.Background())
	require.NoError(t, err)

	var reportCache cache.ReportCache
	if mc != nil {
		reportCache = mc
	}
	return NewInventoryService(store, testProvider(), reportCache)
}

func TestServiceRequiresLoadedSnapshot(t *testing.T) {
	store := dataset.NewStore(&memoryLoader{tables: testTables()})
	svc := NewInventoryService(store, testProvider(), nil)

	_, err := svc.Health(context.Background())
	assert.ErrorIs(t, err, ErrSnapshotNotLoaded)

	_, err = svc.Summary(context.Background())
	assert.ErrorIs(t, err, ErrSnapshotNotLoaded)
}

func TestServiceHealthUsesCache(t *testing.T) {
	cache := newMemoryCache()
	svc := newTestService(t, cache)

	first, err := svc.Health(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, domain.HealthCritical, first[0].HealthStatus)

	// a poisoned cache entry proves the second call never recomputes
	cache.health = []domain.HealthRecord{{PartID: "sentinel"}}
	second, err := svc.Health(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "sentinel", second[0].PartID)
}

func TestServiceBuildCapacityUsesCache(t *testing.T) {
	cache := newMemoryCache()
	svc := newTestService(t, cache)

	result, err := svc.BuildCapacity(context.Background(), "S1_V1")
	require.NoError(t, err)
	assert.Equal(t, 20, result.MaxUnits)

	// case variants share one cache entry
	_, ok, err := cache.GetCapacity(context.Background(), "s1 v1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestServiceReloadInvalidatesCache(t *testing.T) {
	cache := newMemoryCache()
	svc := newTestService(t, cache)

	_, err := svc.Health(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cache.health)

	require.NoError(t, svc.Reload(context.Background()))
	assert.Equal(t, 1, cache.invalidated)
	assert.Nil(t, cache.health)
}

func TestServiceEndToEnd(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalMaterials)

	recs, err := svc.ReorderRecommendations(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.InDelta(t, 60.0, recs[0].RecommendedOrderQty, 1e-9)

	reqs, err := svc.MaterialRequirements(ctx, "S1_V1", 30)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "shortage", reqs[0].Status)

	demand, err := svc.Demand(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, 1, demand.TotalOrders)

	assert.Equal(t, []string{"S1_V1"}, svc.Models())
}

func TestServiceNilCacheFallsBackToNoop(t *testing.T) {
	svc := newTestService(t, nil)

	records, err := svc.Health(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
