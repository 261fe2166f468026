package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltworks/inventory-engine/internal/dataset"
	"github.com/voltworks/inventory-engine/internal/domain"
)

func datePtr(s string) *time.Time {
	t := day(s)
	return &t
}

func TestSupplierPerformance(t *testing.T) {
	snap := snapshotFrom(dataset.Tables{
		MaterialOrders: []domain.MaterialOrder{
			{OrderID: "O1", PartID: "P1", SupplierID: "S1", QuantityOrdered: 100, Status: "Delivered",
				ExpectedDeliveryDate: datePtr("2024-01-10"), ActualDeliveredAt: datePtr("2024-01-09")},
			{OrderID: "O2", PartID: "P1", SupplierID: "S1", QuantityOrdered: 50, Status: "Delivered",
				ExpectedDeliveryDate: datePtr("2024-01-10"), ActualDeliveredAt: datePtr("2024-01-12")},
			{OrderID: "O3", PartID: "P2", SupplierID: "S1", QuantityOrdered: 30, Status: "Pending",
				ExpectedDeliveryDate: datePtr("2024-02-01")},
			{OrderID: "O4", PartID: "P1", SupplierID: "S2", QuantityOrdered: 10, Status: "Delivered",
				ExpectedDeliveryDate: datePtr("2024-01-05"), ActualDeliveredAt: datePtr("2024-01-05")},
		},
		Suppliers: []domain.Supplier{
			{SupplierID: "S1", PartID: "P1", ReliabilityRating: 4.0},
			{SupplierID: "S1", PartID: "P2", ReliabilityRating: 5.0},
			{SupplierID: "S2", PartID: "P1", ReliabilityRating: 3.0},
		},
	})

	results := SupplierPerformance(snap)
	require.Len(t, results, 2)

	s1 := results[0]
	assert.Equal(t, "S1", s1.SupplierID)
	assert.Equal(t, 3, s1.TotalOrders)
	assert.Equal(t, 1, s1.OnTimeDeliveries)
	assert.InDelta(t, 180.0, s1.TotalQuantity, 1e-9)
	assert.InDelta(t, 33.33, s1.OnTimeRate, 1e-9)
	assert.InDelta(t, 4.5, s1.ReliabilityRating, 1e-9)

	s2 := results[1]
	assert.Equal(t, "S2", s2.SupplierID)
	assert.Equal(t, 1, s2.OnTimeDeliveries)
	assert.InDelta(t, 100.0, s2.OnTimeRate, 1e-9)
}

func TestSupplierPerformanceMissingDatesNeverOnTime(t *testing.T) {
	snap := snapshotFrom(dataset.Tables{
		MaterialOrders: []domain.MaterialOrder{
			{OrderID: "O1", SupplierID: "S1", PartID: "P1", Status: "Delivered"},
		},
		Suppliers: []domain.Supplier{{SupplierID: "S1", PartID: "P1"}},
	})

	results := SupplierPerformance(snap)
	require.Len(t, results, 1)
	assert.Zero(t, results[0].OnTimeDeliveries)
	assert.Zero(t, results[0].OnTimeRate)
}

func TestSupplierPerformanceRequiresBothTables(t *testing.T) {
	assert.Nil(t, SupplierPerformance(nil))
	assert.Nil(t, SupplierPerformance(snapshotFrom(dataset.Tables{
		MaterialOrders: []domain.MaterialOrder{{OrderID: "O1", SupplierID: "S1", PartID: "P1"}},
	})))
}

func TestTotalDemand(t *testing.T) {
	snap := snapshotFrom(dataset.Tables{
		Materials: []domain.Material{
			{PartID: "P1", UsedInModels: []string{"S1_V1", "S2_V1"}},
			{PartID: "P2"},
		},
		SalesOrders: []domain.SalesOrder{
			{OrderID: "SO1", Model: "S1_V1", Quantity: 5},
			{OrderID: "SO2", Model: "S2_V1", Quantity: 3},
			{OrderID: "SO3", Model: "S3_V1", Quantity: 100},
		},
	})

	summary := TotalDemand(snap, "P1")
	assert.Equal(t, 2, summary.TotalOrders)
	assert.InDelta(t, 8.0, summary.TotalQuantity, 1e-9)
	require.Len(t, summary.Orders, 2)

	// part with no model usage yields a zero summary
	summary = TotalDemand(snap, "P2")
	assert.Zero(t, summary.TotalOrders)
	assert.Empty(t, summary.Orders)

	// unknown part likewise
	summary = TotalDemand(snap, "P9")
	assert.Zero(t, summary.TotalOrders)
}
