package main

import (
	"fmt"
	"log"

	"github.com/urfave/cli/v2"
	"github.com/voltworks/inventory-engine/internal/bom"
	"github.com/voltworks/inventory-engine/internal/dataset"
	"github.com/voltworks/inventory-engine/internal/engine"
)

// runValidate loads the snapshot the same way the server does and prints
// what the engine would derive from it, so bad exports surface before they
// reach a running instance.
func runValidate(c *cli.Context) error {
	snap, err := dataset.NewCSVLoader(c.String("data-dir")).Load(c.Context)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	log.Printf("Snapshot loaded from %s", c.String("data-dir"))
	log.Printf("  materials:            %d rows (present=%v)", len(snap.Materials()), snap.Has(dataset.TableMaterials))
	log.Printf("  stock_levels:         %d rows (present=%v)", len(snap.StockLevels()), snap.Has(dataset.TableStockLevels))
	log.Printf("  material_orders:      %d rows (present=%v)", len(snap.MaterialOrders()), snap.Has(dataset.TableMaterialOrders))
	log.Printf("  suppliers:            %d rows (present=%v)", len(snap.Suppliers()), snap.Has(dataset.TableSuppliers))
	log.Printf("  stock_movements:      %d rows (present=%v)", len(snap.StockMovements()), snap.Has(dataset.TableStockMovements))
	log.Printf("  dispatch_parameters:  %d rows (present=%v)", len(snap.DispatchParameterRows()), snap.Has(dataset.TableDispatchParameters))

	health := engine.AnalyzeStockHealth(snap)
	risks := engine.ForecastStockoutRisk(snap, engine.DefaultForecastHorizonDays)
	reorders := engine.RecommendReorders(snap)
	log.Printf("Engine report: %d parts classified, %d at stockout risk, %d reorder recommendations",
		len(health), len(risks), len(reorders))

	boms, err := bom.LoadCSV(c.String("bom-file"))
	if err != nil {
		log.Printf("warning: could not load bill of materials: %v", err)
		return nil
	}
	for _, model := range boms.Models() {
		result := engine.CalculateBuildCapacity(snap, boms, model)
		if result.Error != "" {
			log.Printf("  %s: %s", model, result.Error)
			continue
		}
		log.Printf("  %s: max %d units (%d bottlenecks)", model, result.MaxUnits, len(result.BottleneckMaterials))
	}
	return nil
}
