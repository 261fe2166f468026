package engine

import (
	"math"
	"sort"

	"github.com/voltworks/inventory-engine/internal/dataset"
	"github.com/voltworks/inventory-engine/internal/domain"
)

// DefaultForecastHorizonDays is used when the caller passes a non-positive
// horizon.
const DefaultForecastHorizonDays = 30

// ForecastStockoutRisk returns every part whose days of stock is strictly
// below the horizon, sorted ascending by days until stockout. The ordering
// is a contract: alerting and top-N consumers rely on most-urgent-first.
func ForecastStockoutRisk(snap *dataset.Snapshot, horizonDays int) []domain.StockoutRisk {
	if horizonDays <= 0 {
		horizonDays = DefaultForecastHorizonDays
	}

	health := AnalyzeStockHealth(snap)

	atRisk := make([]domain.StockoutRisk, 0)
	for _, rec := range health {
		if rec.DaysOfStock >= float64(horizonDays) {
			continue
		}

		name := rec.PartName
		if name == "" {
			name = rec.PartID
		}

		atRisk = append(atRisk, domain.StockoutRisk{
			PartID:            rec.PartID,
			PartName:          name,
			DaysUntilStockout: round1(rec.DaysOfStock),
			CurrentStock:      rec.QuantityAvailable,
			HealthStatus:      rec.HealthStatus,
			Urgency:           domain.UrgencyForDays(rec.DaysOfStock),
		})
	}

	sort.SliceStable(atRisk, func(i, j int) bool {
		return atRisk[i].DaysUntilStockout < atRisk[j].DaysUntilStockout
	})

	return atRisk
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
