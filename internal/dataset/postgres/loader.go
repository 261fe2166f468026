package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/voltworks/inventory-engine/internal/dataset"
	"github.com/voltworks/inventory-engine/internal/domain"
)

// undefinedTable is the Postgres error code for a missing relation.
const undefinedTable = "42P01"

// Loader reads all snapshot tables from Postgres. Tables that do not exist
// in the database are reported as absent rather than failing the load, so a
// partially seeded database still yields a usable snapshot.
type Loader struct {
	db *DB
}

func NewLoader(db *DB) *Loader {
	return &Loader{db: db}
}

type materialRow struct {
	PartID       string `db:"part_id"`
	PartName     string `db:"part_name"`
	PartType     string `db:"part_type"`
	UsedInModels string `db:"used_in_models"`
}

func (l *Loader) Load(ctx context.Context) (*dataset.Snapshot, error) {
	tables := dataset.Tables{Present: make(map[string]bool)}

	var materialRows []materialRow
	if err := l.selectTable(ctx, dataset.TableMaterials, &tables.Present, &materialRows,
		`SELECT part_id, part_name, part_type, used_in_models FROM materials`); err != nil {
		return nil, err
	}
	for _, r := range materialRows {
		tables.Materials = append(tables.Materials, domain.Material{
			PartID:       r.PartID,
			PartName:     r.PartName,
			PartType:     r.PartType,
			UsedInModels: splitModels(r.UsedInModels),
		})
	}

	if err := l.selectTable(ctx, dataset.TableStockLevels, &tables.Present, &tables.StockLevels,
		`SELECT part_id, quantity_available, location FROM stock_levels`); err != nil {
		return nil, err
	}
	if err := l.selectTable(ctx, dataset.TableMaterialOrders, &tables.Present, &tables.MaterialOrders,
		`SELECT order_id, part_id, supplier_id, quantity_ordered, status,
		        order_date, expected_delivery_date, actual_delivered_at
		 FROM material_orders`); err != nil {
		return nil, err
	}
	if err := l.selectTable(ctx, dataset.TableSalesOrders, &tables.Present, &tables.SalesOrders,
		`SELECT order_id, model, version, quantity FROM sales_orders`); err != nil {
		return nil, err
	}
	if err := l.selectTable(ctx, dataset.TableSuppliers, &tables.Present, &tables.Suppliers,
		`SELECT supplier_id, part_id, price_per_unit, lead_time_days, reliability_rating
		 FROM suppliers`); err != nil {
		return nil, err
	}
	if err := l.selectTable(ctx, dataset.TableStockMovements, &tables.Present, &tables.StockMovements,
		`SELECT part_id, quantity, movement_type, moved_at FROM stock_movements`); err != nil {
		return nil, err
	}
	if err := l.selectTable(ctx, dataset.TableDispatchParameters, &tables.Present, &tables.DispatchParameters,
		`SELECT part_id, min_stock_level, reorder_quantity, reorder_interval_days
		 FROM dispatch_parameters`); err != nil {
		return nil, err
	}

	return dataset.NewSnapshot(tables), nil
}

// selectTable runs a table query into dest and records presence. A missing
// relation marks the table absent; any other error aborts the load.
func (l *Loader) selectTable(ctx context.Context, table string, present *map[string]bool, dest any, query string) error {
	if err := l.db.SelectContext(ctx, dest, query); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == undefinedTable {
			log.Warn().Str("table", table).Msg("Table not found in database, skipping")
			(*present)[table] = false
			return nil
		}
		return fmt.Errorf("could not load table %s: %w", table, err)
	}
	(*present)[table] = true
	return nil
}

func splitModels(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
