package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltworks/inventory-engine/internal/dataset"
	"github.com/voltworks/inventory-engine/internal/domain"
)

func snapshotFrom(tables dataset.Tables) *dataset.Snapshot {
	return dataset.NewSnapshot(tables)
}

func TestAnalyzeStockHealthClassification(t *testing.T) {
	snap := snapshotFrom(dataset.Tables{
		Materials: []domain.Material{
			{PartID: "P1", PartName: "Resistor 10k", PartType: "Electronics"},
		},
		StockLevels: []domain.StockLevel{
			{PartID: "P1", QuantityAvailable: 40},
			{PartID: "P2", QuantityAvailable: 0},
			{PartID: "P3", QuantityAvailable: 75},
			{PartID: "P4", QuantityAvailable: 130},
			{PartID: "P5", QuantityAvailable: 300},
		},
		DispatchParameters: []domain.DispatchParameters{
			{PartID: "P1", MinStockLevel: 100},
			{PartID: "P2", MinStockLevel: 50},
			{PartID: "P3", MinStockLevel: 100},
			{PartID: "P4", MinStockLevel: 100},
			{PartID: "P5", MinStockLevel: 100},
		},
	})

	records := AnalyzeStockHealth(snap)
	require.Len(t, records, 5)

	byPart := make(map[string]domain.HealthRecord, len(records))
	for _, r := range records {
		byPart[r.PartID] = r
	}

	assert.Equal(t, domain.HealthCritical, byPart["P1"].HealthStatus)
	require.NotNil(t, byPart["P1"].StockRatio)
	assert.InDelta(t, 0.4, *byPart["P1"].StockRatio, 1e-9)
	assert.Equal(t, "Resistor 10k", byPart["P1"].PartName)
	assert.Equal(t, "Electronics", byPart["P1"].PartType)

	assert.Equal(t, domain.HealthOutOfStock, byPart["P2"].HealthStatus)
	assert.Equal(t, domain.HealthLow, byPart["P3"].HealthStatus)
	assert.Equal(t, domain.HealthAdequate, byPart["P4"].HealthStatus)
	assert.Equal(t, domain.HealthHealthy, byPart["P5"].HealthStatus)
}

func TestAnalyzeStockHealthNoHistoryDefaultsThirtyDays(t *testing.T) {
	snap := snapshotFrom(dataset.Tables{
		StockLevels:        []domain.StockLevel{{PartID: "P1", QuantityAvailable: 40}},
		DispatchParameters: []domain.DispatchParameters{{PartID: "P1", MinStockLevel: 100}},
	})

	records := AnalyzeStockHealth(snap)
	require.Len(t, records, 1)
	assert.InDelta(t, 30.0, records[0].DaysOfStock, 1e-9)
}

func TestAnalyzeStockHealthSkipsUnmanagedParts(t *testing.T) {
	snap := snapshotFrom(dataset.Tables{
		StockLevels: []domain.StockLevel{
			{PartID: "P1", QuantityAvailable: 10},
			{PartID: "P2", QuantityAvailable: 20},
		},
		DispatchParameters: []domain.DispatchParameters{{PartID: "P2", MinStockLevel: 5}},
	})

	records := AnalyzeStockHealth(snap)
	require.Len(t, records, 1)
	assert.Equal(t, "P2", records[0].PartID)
}

func TestAnalyzeStockHealthZeroMinimumIsHealthy(t *testing.T) {
	snap := snapshotFrom(dataset.Tables{
		StockLevels:        []domain.StockLevel{{PartID: "P1", QuantityAvailable: 10}},
		DispatchParameters: []domain.DispatchParameters{{PartID: "P1", MinStockLevel: 0}},
	})

	records := AnalyzeStockHealth(snap)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].StockRatio)
	assert.Equal(t, domain.HealthHealthy, records[0].HealthStatus)
}

func TestAnalyzeStockHealthRequiresBothTables(t *testing.T) {
	assert.Nil(t, AnalyzeStockHealth(nil))

	noParams := snapshotFrom(dataset.Tables{
		StockLevels: []domain.StockLevel{{PartID: "P1", QuantityAvailable: 10}},
	})
	assert.Nil(t, AnalyzeStockHealth(noParams))

	noStock := snapshotFrom(dataset.Tables{
		DispatchParameters: []domain.DispatchParameters{{PartID: "P1", MinStockLevel: 5}},
	})
	assert.Nil(t, AnalyzeStockHealth(noStock))
}

func TestAnalyzeStockHealthDeterministicOrder(t *testing.T) {
	snap := snapshotFrom(dataset.Tables{
		StockLevels: []domain.StockLevel{
			{PartID: "P3", QuantityAvailable: 1},
			{PartID: "P1", QuantityAvailable: 2},
			{PartID: "P2", QuantityAvailable: 3},
		},
		DispatchParameters: []domain.DispatchParameters{
			{PartID: "P1", MinStockLevel: 10},
			{PartID: "P2", MinStockLevel: 10},
			{PartID: "P3", MinStockLevel: 10},
		},
	})

	first := AnalyzeStockHealth(snap)
	second := AnalyzeStockHealth(snap)
	assert.Equal(t, first, second)

	// results follow stock-table order
	assert.Equal(t, "P3", first[0].PartID)
	assert.Equal(t, "P1", first[1].PartID)
	assert.Equal(t, "P2", first[2].PartID)
}
