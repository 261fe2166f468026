package engine

import (
	"github.com/voltworks/inventory-engine/internal/dataset"
	"github.com/voltworks/inventory-engine/internal/domain"
)

// TotalDemand sums sales-order demand for the finished models a part is
// used in. A part with no material master row or no model usage yields a
// zero summary.
func TotalDemand(snap *dataset.Snapshot, partID string) domain.DemandSummary {
	summary := domain.DemandSummary{PartID: partID, Orders: make([]domain.SalesOrder, 0)}

	if snap == nil || !snap.Has(dataset.TableSalesOrders) || !snap.Has(dataset.TableMaterials) {
		return summary
	}

	material, ok := snap.Material(partID)
	if !ok || len(material.UsedInModels) == 0 {
		return summary
	}

	for _, order := range snap.SalesOrdersForModels(material.UsedInModels) {
		summary.TotalOrders++
		summary.TotalQuantity += order.Quantity
		summary.Orders = append(summary.Orders, order)
	}

	return summary
}
