package engine

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/voltworks/inventory-engine/internal/dataset"
	"github.com/voltworks/inventory-engine/internal/domain"
)

// InventorySummary aggregates headline statistics over the current
// snapshot. Stock is valued at the mean supplier price per part; parts
// without a known price contribute zero value. Monetary sums use decimal
// arithmetic so repeated valuation of the same snapshot is exact.
func InventorySummary(snap *dataset.Snapshot) domain.InventorySummary {
	if snap == nil || !snap.Has(dataset.TableStockLevels) {
		return domain.InventorySummary{Error: "stock levels data not available"}
	}

	summary := domain.InventorySummary{
		TotalMaterials: len(snap.StockLevels()),
		Categories:     make([]domain.CategorySummary, 0),
	}

	for _, rec := range AnalyzeStockHealth(snap) {
		if rec.StockRatio != nil && *rec.StockRatio < lowStockThreshold {
			summary.LowStockCount++
		}
	}
	for _, stock := range snap.StockLevels() {
		if stock.QuantityAvailable <= 0 {
			summary.OutOfStockCount++
		}
	}

	if !snap.Has(dataset.TableSuppliers) || !snap.Has(dataset.TableMaterials) {
		return summary
	}

	avgPrices := averagePricePerPart(snap.Suppliers())

	total := decimal.Zero
	valueByType := make(map[string]decimal.Decimal)
	countByType := make(map[string]int)
	for _, stock := range snap.StockLevels() {
		value := decimal.Zero
		if price, ok := avgPrices[stock.PartID]; ok {
			value = price.Mul(decimal.NewFromFloat(stock.QuantityAvailable))
		}
		total = total.Add(value)

		partType := "Unknown"
		if material, ok := snap.Material(stock.PartID); ok && material.PartType != "" {
			partType = material.PartType
		}
		countByType[partType]++
		valueByType[partType] = valueByType[partType].Add(value)
	}
	summary.TotalStockValue = total.Round(2).InexactFloat64()

	types := make([]string, 0, len(countByType))
	for t := range countByType {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		summary.Categories = append(summary.Categories, domain.CategorySummary{
			PartType:      t,
			MaterialCount: countByType[t],
			TotalValue:    valueByType[t].Round(2).InexactFloat64(),
		})
	}

	return summary
}

// averagePricePerPart means the per-unit price across a part's suppliers.
func averagePricePerPart(suppliers []domain.Supplier) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]int64)
	for _, s := range suppliers {
		sums[s.PartID] = sums[s.PartID].Add(decimal.NewFromFloat(s.PricePerUnit))
		counts[s.PartID]++
	}

	avgs := make(map[string]decimal.Decimal, len(sums))
	for partID, sum := range sums {
		avgs[partID] = sum.Div(decimal.NewFromInt(counts[partID]))
	}
	return avgs
}
