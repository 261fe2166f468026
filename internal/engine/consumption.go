package engine

import (
	"math"
	"strings"

	"github.com/voltworks/inventory-engine/internal/domain"
)

// consumptionTypes is the allow-list of movement type labels counted as
// consumption. Matching is case-insensitive. This is policy, not inference:
// any label outside the list is ignored even if its quantity is negative.
var consumptionTypes = map[string]bool{
	"consumption": true,
	"out":         true,
	"outbound":    true,
}

const (
	// defaultDaysOfStock is assumed for parts with no consumption history.
	defaultDaysOfStock = 30.0
	// maxDaysOfStock caps the estimate at one year.
	maxDaysOfStock = 365.0
)

// isConsumption reports whether a movement type counts against stock.
func isConsumption(movementType string) bool {
	return consumptionTypes[strings.ToLower(strings.TrimSpace(movementType))]
}

// ConsumptionRates holds per-part average daily consumption over the
// observed movement window.
type ConsumptionRates struct {
	// PerPart maps part ID to units consumed per day (signed as recorded;
	// use absolute value when projecting depletion).
	PerPart map[string]float64
	// WindowDays is the observation window length, floored at one day.
	WindowDays int
}

// EstimateConsumptionRates derives average daily consumption per part from
// the movement log. Movements outside the consumption allow-list and rows
// without a parseable date are dropped. An empty result (no qualifying
// movements at all) means every part falls back to the 30-day default.
func EstimateConsumptionRates(movements []domain.StockMovement) ConsumptionRates {
	rates := ConsumptionRates{PerPart: make(map[string]float64)}

	var qualifying []domain.StockMovement
	for _, m := range movements {
		if !isConsumption(m.Type) {
			continue
		}
		if m.Date.IsZero() {
			continue
		}
		qualifying = append(qualifying, m)
	}
	if len(qualifying) == 0 {
		return rates
	}

	minDate, maxDate := qualifying[0].Date, qualifying[0].Date
	for _, m := range qualifying[1:] {
		if m.Date.Before(minDate) {
			minDate = m.Date
		}
		if m.Date.After(maxDate) {
			maxDate = m.Date
		}
	}

	windowDays := int(maxDate.Sub(minDate).Hours() / 24)
	if windowDays < 1 {
		windowDays = 1
	}
	rates.WindowDays = windowDays

	totals := make(map[string]float64)
	for _, m := range qualifying {
		totals[m.PartID] += m.Quantity
	}
	for partID, total := range totals {
		rates.PerPart[partID] = total / float64(windowDays)
	}

	return rates
}

// DaysOfStock projects how long the available quantity lasts at the part's
// observed consumption rate. Parts with no history get the 30-day default;
// a zero rate with history present means effectively no depletion, capped
// at one year.
func (r ConsumptionRates) DaysOfStock(partID string, available float64) float64 {
	rate, ok := r.PerPart[partID]
	if !ok {
		return defaultDaysOfStock
	}
	dailyUse := math.Abs(rate)
	if dailyUse <= 0 {
		return maxDaysOfStock
	}
	return math.Min(available/dailyUse, maxDaysOfStock)
}

// RateForPart returns the absolute daily consumption rate for one part and
// whether any consumption history exists for it.
func (r ConsumptionRates) RateForPart(partID string) (float64, bool) {
	rate, ok := r.PerPart[partID]
	if !ok {
		return 0, false
	}
	return math.Abs(rate), true
}
