package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/voltworks/inventory-engine/internal/bom"
	"github.com/voltworks/inventory-engine/internal/cache"
	"github.com/voltworks/inventory-engine/internal/dataset"
	"github.com/voltworks/inventory-engine/internal/domain"
	"github.com/voltworks/inventory-engine/internal/engine"
)

// ErrSnapshotNotLoaded is returned when queries arrive before the first
// successful reload.
var ErrSnapshotNotLoaded = errors.New("snapshot not loaded")

// InventoryService exposes the engine over a snapshot store, with optional
// caching of the heavier derived reports. All reads of one request run
// against a single snapshot reference.
type InventoryService struct {
	store *dataset.Store
	boms  bom.Provider
	cache cache.ReportCache
}

func NewInventoryService(store *dataset.Store, boms bom.Provider, cacheImpl cache.ReportCache) *InventoryService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopReportCache()
	}
	return &InventoryService{store: store, boms: boms, cache: cacheImpl}
}

func (s *InventoryService) snapshot() (*dataset.Snapshot, error) {
	snap := s.store.Snapshot()
	if snap == nil {
		return nil, ErrSnapshotNotLoaded
	}
	return snap, nil
}

// Reload re-reads the source tables, swaps the snapshot atomically and
// drops every cached report derived from the previous one.
func (s *InventoryService) Reload(ctx context.Context) error {
	if _, err := s.store.Reload(ctx); err != nil {
		return err
	}
	if err := s.cache.InvalidateAll(ctx); err != nil {
		log.Warn().Err(err).Msg("inventory: cache invalidation after reload failed")
	}
	return nil
}

// Summary returns headline inventory statistics.
func (s *InventoryService) Summary(ctx context.Context) (domain.InventorySummary, error) {
	snap, err := s.snapshot()
	if err != nil {
		return domain.InventorySummary{}, err
	}
	return engine.InventorySummary(snap), nil
}

// Health classifies stock health for every managed part.
func (s *InventoryService) Health(ctx context.Context) ([]domain.HealthRecord, error) {
	if records, ok, err := s.cache.GetHealthReport(ctx); err == nil && ok {
		return records, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("inventory: cache get health report failed")
	}

	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	records := engine.AnalyzeStockHealth(snap)
	if err := s.cache.SetHealthReport(ctx, records); err != nil {
		log.Warn().Err(err).Msg("inventory: cache set health report failed")
	}
	return records, nil
}

// StockoutForecast returns parts at risk inside the horizon, most urgent
// first.
func (s *InventoryService) StockoutForecast(ctx context.Context, horizonDays int) ([]domain.StockoutRisk, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return engine.ForecastStockoutRisk(snap, horizonDays), nil
}

// ReorderRecommendations suggests order quantities for parts below minimum.
func (s *InventoryService) ReorderRecommendations(ctx context.Context) ([]domain.ReorderRecommendation, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return engine.RecommendReorders(snap), nil
}

// BuildCapacity computes maximum buildable units for a model.
func (s *InventoryService) BuildCapacity(ctx context.Context, model string) (domain.CapacityResult, error) {
	if result, ok, err := s.cache.GetCapacity(ctx, model); err == nil && ok {
		return *result, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("inventory: cache get capacity failed")
	}

	snap, err := s.snapshot()
	if err != nil {
		return domain.CapacityResult{}, err
	}

	result := engine.CalculateBuildCapacity(snap, s.boms, model)
	if err := s.cache.SetCapacity(ctx, model, result); err != nil {
		log.Warn().Err(err).Msg("inventory: cache set capacity failed")
	}
	return result, nil
}

// MaterialRequirements scales a model's BOM to a build quantity.
func (s *InventoryService) MaterialRequirements(ctx context.Context, model string, quantity float64) ([]domain.MaterialRequirement, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return engine.MaterialRequirements(snap, s.boms, model, quantity), nil
}

// OptimizeParameters recomputes dispatch parameters for a part.
func (s *InventoryService) OptimizeParameters(ctx context.Context, partID string) (domain.ParameterRecommendation, error) {
	snap, err := s.snapshot()
	if err != nil {
		return domain.ParameterRecommendation{}, err
	}
	return engine.OptimizeDispatchParameters(snap, partID), nil
}

// SupplierPerformance scores suppliers' delivery records.
func (s *InventoryService) SupplierPerformance(ctx context.Context) ([]domain.SupplierPerformance, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return engine.SupplierPerformance(snap), nil
}

// Demand aggregates sales-order demand for the models a part feeds.
func (s *InventoryService) Demand(ctx context.Context, partID string) (domain.DemandSummary, error) {
	snap, err := s.snapshot()
	if err != nil {
		return domain.DemandSummary{}, err
	}
	return engine.TotalDemand(snap, partID), nil
}

// Models lists all known finished-product models.
func (s *InventoryService) Models() []string {
	return s.boms.Models()
}
