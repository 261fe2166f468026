package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltworks/inventory-engine/internal/dataset"
	"github.com/voltworks/inventory-engine/internal/domain"
)

func TestInventorySummary(t *testing.T) {
	snap := snapshotFrom(dataset.Tables{
		Materials: []domain.Material{
			{PartID: "P1", PartType: "Electronics"},
			{PartID: "P2", PartType: "Electronics"},
			{PartID: "P3", PartType: "Mechanical"},
		},
		StockLevels: []domain.StockLevel{
			{PartID: "P1", QuantityAvailable: 10},
			{PartID: "P2", QuantityAvailable: 0},
			{PartID: "P3", QuantityAvailable: 4},
		},
		DispatchParameters: []domain.DispatchParameters{
			{PartID: "P1", MinStockLevel: 5},
			{PartID: "P2", MinStockLevel: 5},
			{PartID: "P3", MinStockLevel: 10},
		},
		Suppliers: []domain.Supplier{
			{SupplierID: "S1", PartID: "P1", PricePerUnit: 2.5},
			{SupplierID: "S2", PartID: "P1", PricePerUnit: 3.5},
			{SupplierID: "S1", PartID: "P3", PricePerUnit: 10},
		},
	})

	summary := InventorySummary(snap)

	assert.Empty(t, summary.Error)
	assert.Equal(t, 3, summary.TotalMaterials)
	assert.Equal(t, 2, summary.LowStockCount) // P2 and P3 below minimum
	assert.Equal(t, 1, summary.OutOfStockCount)

	// P1: 10 * mean(2.5, 3.5) = 30, P3: 4 * 10 = 40, P2 unpriced
	assert.InDelta(t, 70.0, summary.TotalStockValue, 1e-9)

	require.Len(t, summary.Categories, 2)
	assert.Equal(t, "Electronics", summary.Categories[0].PartType)
	assert.Equal(t, 2, summary.Categories[0].MaterialCount)
	assert.InDelta(t, 30.0, summary.Categories[0].TotalValue, 1e-9)
	assert.Equal(t, "Mechanical", summary.Categories[1].PartType)
	assert.InDelta(t, 40.0, summary.Categories[1].TotalValue, 1e-9)
}

func TestInventorySummaryWithoutStockLevels(t *testing.T) {
	summary := InventorySummary(nil)
	assert.Equal(t, "stock levels data not available", summary.Error)

	summary = InventorySummary(snapshotFrom(dataset.Tables{
		Materials: []domain.Material{{PartID: "P1"}},
	}))
	assert.Equal(t, "stock levels data not available", summary.Error)
}

func TestInventorySummaryWithoutPricing(t *testing.T) {
	snap := snapshotFrom(dataset.Tables{
		StockLevels: []domain.StockLevel{{PartID: "P1", QuantityAvailable: 10}},
	})

	summary := InventorySummary(snap)
	assert.Empty(t, summary.Error)
	assert.Equal(t, 1, summary.TotalMaterials)
	assert.Zero(t, summary.TotalStockValue)
	assert.Empty(t, summary.Categories)
}

func TestInventorySummaryUnknownPartType(t *testing.T) {
	snap := snapshotFrom(dataset.Tables{
		Materials:   []domain.Material{{PartID: "other"}},
		StockLevels: []domain.StockLevel{{PartID: "P1", QuantityAvailable: 10}},
		Suppliers:   []domain.Supplier{{SupplierID: "S1", PartID: "P1", PricePerUnit: 1}},
	})

	summary := InventorySummary(snap)
	require.Len(t, summary.Categories, 1)
	assert.Equal(t, "Unknown", summary.Categories[0].PartType)
}
