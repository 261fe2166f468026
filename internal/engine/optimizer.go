package engine

import (
	"math"

	"github.com/voltworks/inventory-engine/internal/dataset"
	"github.com/voltworks/inventory-engine/internal/domain"
)

const (
	// safetyFactor is the fixed 50% buffer applied to lead-time demand.
	safetyFactor = 1.5
	// defaultLeadTimeDays is assumed when a part has no suppliers on file.
	defaultLeadTimeDays = 14.0
	// defaultReorderIntervalDays is assumed when the current parameters
	// carry no interval.
	defaultReorderIntervalDays = 14.0
)

// OptimizeDispatchParameters recomputes a part's minimum stock and reorder
// quantity from observed consumption and mean supplier lead time. The
// reorder interval itself is kept; only the quantity is re-derived from it.
// Missing movement or parameter data yields a structured insufficient-data
// result rather than an error.
func OptimizeDispatchParameters(snap *dataset.Snapshot, partID string) domain.ParameterRecommendation {
	rec := domain.ParameterRecommendation{PartID: partID}

	if snap == nil || !snap.Has(dataset.TableStockMovements) {
		rec.Error = "insufficient data for optimization"
		rec.Reason = domain.ReasonInsufficientData
		return rec
	}
	current, ok := snap.DispatchParameters(partID)
	if !ok {
		rec.Error = "insufficient data for optimization"
		rec.Reason = domain.ReasonInsufficientData
		return rec
	}
	rec.CurrentParameters = &current

	var partMovements []domain.StockMovement
	for _, m := range snap.StockMovements() {
		if m.PartID == partID {
			partMovements = append(partMovements, m)
		}
	}
	if len(partMovements) == 0 {
		rec.Error = "no movement history for this part"
		rec.Reason = domain.ReasonNoMovementHistory
		return rec
	}

	rates := EstimateConsumptionRates(partMovements)
	avgDaily, ok := rates.RateForPart(partID)
	if !ok {
		// Movements exist but none qualify as consumption: nothing to
		// derive a rate from, keep the current parameters.
		rec.Error = "no consumption movements for this part"
		rec.Reason = domain.ReasonNoMovementHistory
		return rec
	}

	leadTimeDays := defaultLeadTimeDays
	if suppliers := snap.SuppliersForPart(partID); len(suppliers) > 0 {
		var total float64
		for _, s := range suppliers {
			total += s.LeadTimeDays
		}
		leadTimeDays = total / float64(len(suppliers))
	}

	intervalDays := current.ReorderIntervalDays
	if intervalDays <= 0 {
		intervalDays = defaultReorderIntervalDays
	}

	safetyStock := avgDaily * leadTimeDays * safetyFactor
	optimalMinStock := avgDaily*leadTimeDays + safetyStock
	optimalReorderQty := avgDaily * intervalDays

	rec.RecommendedParameters = &domain.DispatchParameters{
		PartID:              partID,
		MinStockLevel:       math.Round(optimalMinStock),
		ReorderQuantity:     math.Round(optimalReorderQty),
		ReorderIntervalDays: intervalDays,
	}
	rec.Analysis = &domain.ConsumptionAnalysis{
		AvgDailyConsumption:   round2(avgDaily),
		EstimatedLeadTimeDays: round1(leadTimeDays),
		DataPeriodDays:        rates.WindowDays,
	}

	return rec
}
