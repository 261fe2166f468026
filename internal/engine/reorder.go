package engine

import (
	"math"

	"github.com/google/uuid"
	"github.com/voltworks/inventory-engine/internal/dataset"
	"github.com/voltworks/inventory-engine/internal/domain"
)

// lowStockThreshold is the stock-ratio boundary below which a part is
// considered for reorder (1.0 = exactly at its configured minimum).
const lowStockThreshold = 1.0

// RecommendReorders suggests order quantities for every managed part whose
// stock ratio is below its minimum. In-flight orders (Pending, In Transit)
// reduce the computed shortage so nothing is double-ordered; when the
// netted shortage reaches zero the base reorder quantity is still proposed.
func RecommendReorders(snap *dataset.Snapshot) []domain.ReorderRecommendation {
	if snap == nil || !snap.Has(dataset.TableStockLevels) || !snap.Has(dataset.TableDispatchParameters) {
		return nil
	}

	recommendations := make([]domain.ReorderRecommendation, 0)
	for _, stock := range snap.StockLevels() {
		params, ok := snap.DispatchParameters(stock.PartID)
		if !ok || params.MinStockLevel <= 0 {
			continue
		}
		if stock.QuantityAvailable/params.MinStockLevel >= lowStockThreshold {
			continue
		}

		var pendingQty float64
		for _, order := range snap.PendingOrders(stock.PartID) {
			pendingQty += order.QuantityOrdered
		}

		shortage := math.Max(0, params.MinStockLevel-stock.QuantityAvailable-pendingQty)
		orderQty := params.ReorderQuantity
		if shortage > 0 {
			orderQty = math.Max(params.ReorderQuantity, shortage)
		}
		if orderQty <= 0 {
			continue
		}

		priority := domain.PriorityMedium
		if stock.QuantityAvailable < params.MinStockLevel*0.5 {
			priority = domain.PriorityHigh
		}

		name, partType := stock.PartID, "Unknown"
		if material, ok := snap.Material(stock.PartID); ok {
			if material.PartName != "" {
				name = material.PartName
			}
			if material.PartType != "" {
				partType = material.PartType
			}
		}

		recommendations = append(recommendations, domain.ReorderRecommendation{
			ID:                  uuid.NewString(),
			PartID:              stock.PartID,
			PartName:            name,
			PartType:            partType,
			CurrentStock:        stock.QuantityAvailable,
			PendingOrders:       pendingQty,
			MinStockLevel:       params.MinStockLevel,
			RecommendedOrderQty: orderQty,
			Priority:            priority,
		})
	}

	return recommendations
}
