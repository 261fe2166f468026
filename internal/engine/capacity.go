package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/voltworks/inventory-engine/internal/bom"
	"github.com/voltworks/inventory-engine/internal/dataset"
	"github.com/voltworks/inventory-engine/internal/domain"
)

// bottleneckUnitsThreshold marks a BOM line as a bottleneck when it supports
// at most this many finished units.
const bottleneckUnitsThreshold = 10

// CalculateBuildCapacity computes the maximum buildable units of a model as
// the minimum of floor(available / required-per-unit) over all BOM lines.
// Parts with no stock record force zero capacity. An unknown model yields a
// zero-capacity result with an error indicator, never a failure.
func CalculateBuildCapacity(snap *dataset.Snapshot, provider bom.Provider, model string) domain.CapacityResult {
	result := domain.CapacityResult{
		Model:               model,
		BottleneckMaterials: make([]domain.MaterialAvailability, 0),
		SufficientMaterials: make([]string, 0),
	}

	lines, found := provider.BOM(model)
	if !found || len(lines) == 0 {
		result.Error = fmt.Sprintf("no BOM found for model %s (known models: %s)",
			model, strings.Join(provider.Models(), ", "))
		result.Reason = domain.ReasonNoBOM
		return result
	}
	result.TotalPartsInBOM = len(lines)

	minUnits := math.MaxInt
	for _, line := range lines {
		availability := domain.MaterialAvailability{
			PartID:          line.PartID,
			PartName:        line.PartID,
			RequiredPerUnit: line.Quantity,
		}
		if material, ok := snap.Material(line.PartID); ok && material.PartName != "" {
			availability.PartName = material.PartName
		}

		stock, hasStock := snap.StockLevel(line.PartID)
		if hasStock {
			availability.AvailableStock = stock.QuantityAvailable
			if line.Quantity > 0 && stock.QuantityAvailable > 0 {
				availability.UnitsPossible = int(stock.QuantityAvailable / line.Quantity)
			}
		}

		if availability.UnitsPossible < minUnits {
			minUnits = availability.UnitsPossible
		}

		if !hasStock || availability.UnitsPossible <= bottleneckUnitsThreshold {
			result.BottleneckMaterials = append(result.BottleneckMaterials, availability)
		} else {
			result.SufficientMaterials = append(result.SufficientMaterials, line.PartID)
		}
	}

	if minUnits == math.MaxInt {
		minUnits = 0
	}
	result.MaxUnits = minUnits

	return result
}

// MaterialRequirements scales a model's BOM to a requested build quantity
// and reports per-line shortages against current stock. Returns nil when
// the model has no BOM.
func MaterialRequirements(snap *dataset.Snapshot, provider bom.Provider, model string, quantity float64) []domain.MaterialRequirement {
	lines, found := provider.BOM(model)
	if !found || len(lines) == 0 {
		return nil
	}

	requirements := make([]domain.MaterialRequirement, 0, len(lines))
	for _, line := range lines {
		required := line.Quantity * quantity

		var available float64
		if stock, ok := snap.StockLevel(line.PartID); ok {
			available = stock.QuantityAvailable
		}

		shortage := math.Max(0, required-available)
		status := "sufficient"
		if shortage > 0 {
			status = "shortage"
		}

		name := line.PartID
		if material, ok := snap.Material(line.PartID); ok && material.PartName != "" {
			name = material.PartName
		}

		requirements = append(requirements, domain.MaterialRequirement{
			PartID:           line.PartID,
			PartName:         name,
			RequiredQuantity: required,
			AvailableStock:   available,
			Shortage:         shortage,
			Status:           status,
		})
	}

	return requirements
}
