package engine

import (
	"sort"

	"github.com/voltworks/inventory-engine/internal/dataset"
	"github.com/voltworks/inventory-engine/internal/domain"
)

// SupplierPerformance scores each supplier's delivery record from the
// orders table: an order is on time when it was delivered no later than its
// expected date. Orders missing either date never count as on time.
func SupplierPerformance(snap *dataset.Snapshot) []domain.SupplierPerformance {
	if snap == nil || !snap.Has(dataset.TableMaterialOrders) || !snap.Has(dataset.TableSuppliers) {
		return nil
	}

	bySupplier := make(map[string]*domain.SupplierPerformance)
	for _, order := range snap.MaterialOrders() {
		perf, ok := bySupplier[order.SupplierID]
		if !ok {
			perf = &domain.SupplierPerformance{SupplierID: order.SupplierID}
			bySupplier[order.SupplierID] = perf
		}
		perf.TotalOrders++
		perf.TotalQuantity += order.QuantityOrdered
		if domain.IsDeliveredOrderStatus(order.Status) &&
			order.ActualDeliveredAt != nil && order.ExpectedDeliveryDate != nil &&
			!order.ActualDeliveredAt.After(*order.ExpectedDeliveryDate) {
			perf.OnTimeDeliveries++
		}
	}

	ratingSums := make(map[string]float64)
	ratingCounts := make(map[string]int)
	for _, s := range snap.Suppliers() {
		ratingSums[s.SupplierID] += s.ReliabilityRating
		ratingCounts[s.SupplierID]++
	}

	results := make([]domain.SupplierPerformance, 0, len(bySupplier))
	for _, perf := range bySupplier {
		if perf.TotalOrders > 0 {
			perf.OnTimeRate = round2(float64(perf.OnTimeDeliveries) / float64(perf.TotalOrders) * 100)
		}
		if n := ratingCounts[perf.SupplierID]; n > 0 {
			perf.ReliabilityRating = round2(ratingSums[perf.SupplierID] / float64(n))
		}
		results = append(results, *perf)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].SupplierID < results[j].SupplierID
	})

	return results
}
