package engine

import (
	"github.com/voltworks/inventory-engine/internal/dataset"
	"github.com/voltworks/inventory-engine/internal/domain"
)

// AnalyzeStockHealth classifies every part present in both the stock levels
// and dispatch parameters tables. Parts without dispatch parameters are
// excluded, not errors. Results follow stock-table order, so repeated runs
// over the same snapshot are bit-identical.
func AnalyzeStockHealth(snap *dataset.Snapshot) []domain.HealthRecord {
	if snap == nil || !snap.Has(dataset.TableStockLevels) || !snap.Has(dataset.TableDispatchParameters) {
		return nil
	}

	rates := EstimateConsumptionRates(snap.StockMovements())

	records := make([]domain.HealthRecord, 0, len(snap.StockLevels()))
	for _, stock := range snap.StockLevels() {
		params, ok := snap.DispatchParameters(stock.PartID)
		if !ok {
			continue
		}

		rec := domain.HealthRecord{
			PartID:            stock.PartID,
			QuantityAvailable: stock.QuantityAvailable,
			MinStockLevel:     params.MinStockLevel,
			DaysOfStock:       rates.DaysOfStock(stock.PartID, stock.QuantityAvailable),
		}

		if material, ok := snap.Material(stock.PartID); ok {
			rec.PartName = material.PartName
			rec.PartType = material.PartType
		}

		if params.MinStockLevel > 0 {
			ratio := stock.QuantityAvailable / params.MinStockLevel
			rec.StockRatio = &ratio
			rec.HealthStatus = domain.HealthStatusForRatio(ratio)
		} else {
			// No minimum configured means the part is effectively unmanaged:
			// the ratio is undefined and the part is reported HEALTHY.
			rec.HealthStatus = domain.HealthHealthy
		}

		records = append(records, rec)
	}

	return records
}
