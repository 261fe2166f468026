package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/voltworks/inventory-engine/internal/domain"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestEstimateConsumptionRates(t *testing.T) {
	movements := []domain.StockMovement{
		{PartID: "P1", Quantity: 20, Type: "consumption", Date: day("2024-01-01")},
		{PartID: "P1", Quantity: 30, Type: "Consumption", Date: day("2024-01-11")},
		{PartID: "P2", Quantity: 10, Type: "out", Date: day("2024-01-05")},
		{PartID: "P1", Quantity: 500, Type: "inbound", Date: day("2024-01-06")},
		{PartID: "P3", Quantity: 5, Type: "OUTBOUND", Date: day("2024-01-08")},
	}

	rates := EstimateConsumptionRates(movements)

	// window spans the qualifying movements only: Jan 1 to Jan 11
	assert.Equal(t, 10, rates.WindowDays)
	assert.InDelta(t, 5.0, rates.PerPart["P1"], 1e-9)
	assert.InDelta(t, 1.0, rates.PerPart["P2"], 1e-9)
	assert.InDelta(t, 0.5, rates.PerPart["P3"], 1e-9)
}

func TestEstimateConsumptionRatesIgnoresNonConsumption(t *testing.T) {
	movements := []domain.StockMovement{
		{PartID: "P1", Quantity: -40, Type: "adjustment", Date: day("2024-01-01")},
		{PartID: "P1", Quantity: 100, Type: "inbound", Date: day("2024-01-02")},
	}

	rates := EstimateConsumptionRates(movements)
	assert.Empty(t, rates.PerPart)
	assert.Zero(t, rates.WindowDays)
}

func TestEstimateConsumptionRatesSingleDayWindow(t *testing.T) {
	movements := []domain.StockMovement{
		{PartID: "P1", Quantity: 8, Type: "out", Date: day("2024-03-01")},
		{PartID: "P1", Quantity: 4, Type: "out", Date: day("2024-03-01")},
	}

	rates := EstimateConsumptionRates(movements)
	assert.Equal(t, 1, rates.WindowDays)
	assert.InDelta(t, 12.0, rates.PerPart["P1"], 1e-9)
}

func TestEstimateConsumptionRatesDropsZeroDates(t *testing.T) {
	movements := []domain.StockMovement{
		{PartID: "P1", Quantity: 10, Type: "consumption"},
	}

	rates := EstimateConsumptionRates(movements)
	assert.Empty(t, rates.PerPart)
}

func TestDaysOfStock(t *testing.T) {
	rates := EstimateConsumptionRates([]domain.StockMovement{
		{PartID: "P1", Quantity: 20, Type: "consumption", Date: day("2024-01-01")},
		{PartID: "P1", Quantity: 30, Type: "consumption", Date: day("2024-01-11")},
		{PartID: "P2", Quantity: 0, Type: "out", Date: day("2024-01-03")},
	})

	// P1 consumes 5/day, so 40 units last 8 days
	assert.InDelta(t, 8.0, rates.DaysOfStock("P1", 40), 1e-9)

	// no history at all falls back to the 30-day default
	assert.InDelta(t, 30.0, rates.DaysOfStock("P9", 40), 1e-9)

	// history with a zero rate means no observable depletion
	assert.InDelta(t, 365.0, rates.DaysOfStock("P2", 40), 1e-9)

	// projection is capped at one year
	assert.InDelta(t, 365.0, rates.DaysOfStock("P1", 1e6), 1e-9)
}

func TestRateForPart(t *testing.T) {
	rates := ConsumptionRates{PerPart: map[string]float64{"P1": -2.5}}

	rate, ok := rates.RateForPart("P1")
	assert.True(t, ok)
	assert.InDelta(t, 2.5, rate, 1e-9)

	_, ok = rates.RateForPart("P2")
	assert.False(t, ok)
}
