package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/voltworks/inventory-engine/internal/domain"
	"golang.org/x/sync/errgroup"
)

// tableFiles maps table names to the CSV file each is loaded from.
var tableFiles = map[string]string{
	TableMaterials:          "material_master.csv",
	TableStockLevels:        "stock_levels.csv",
	TableMaterialOrders:     "material_orders.csv",
	TableSalesOrders:        "sales_orders.csv",
	TableSuppliers:          "suppliers.csv",
	TableStockMovements:     "stock_movements.csv",
	TableDispatchParameters: "dispatch_parameters.csv",
}

// dateLayouts are tried in order when parsing date columns. Rows whose date
// fails every layout are dropped, never fatal.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// CSVLoader reads the snapshot tables from a directory of CSV files.
// A missing or unreadable file leaves that table absent and is logged,
// matching the read-mostly bulk-refresh model: the engine degrades to
// structured "data not available" results instead of failing the load.
type CSVLoader struct {
	dir string
}

func NewCSVLoader(dir string) *CSVLoader {
	return &CSVLoader{dir: dir}
}

// Load reads all tables concurrently and assembles an immutable snapshot.
func (l *CSVLoader) Load(ctx context.Context) (*Snapshot, error) {
	if _, err := os.Stat(l.dir); err != nil {
		return nil, fmt.Errorf("data dir %s: %w", l.dir, err)
	}

	var (
		mu     sync.Mutex
		tables = Tables{Present: make(map[string]bool)}
	)

	g, ctx := errgroup.WithContext(ctx)
	for name, file := range tableFiles {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			rows, err := readCSVTable(filepath.Join(l.dir, file))
			if err != nil {
				if os.IsNotExist(err) {
					log.Warn().Str("table", name).Str("file", file).Msg("table file missing")
				} else {
					log.Error().Err(err).Str("table", name).Msg("failed to read table")
				}
				return nil
			}

			mu.Lock()
			defer mu.Unlock()
			switch name {
			case TableMaterials:
				tables.Materials = parseMaterials(rows)
			case TableStockLevels:
				tables.StockLevels = parseStockLevels(rows)
			case TableMaterialOrders:
				tables.MaterialOrders = parseMaterialOrders(rows)
			case TableSalesOrders:
				tables.SalesOrders = parseSalesOrders(rows)
			case TableSuppliers:
				tables.Suppliers = parseSuppliers(rows)
			case TableStockMovements:
				tables.StockMovements = parseStockMovements(rows)
			case TableDispatchParameters:
				tables.DispatchParameters = parseDispatchParameters(rows)
			}
			tables.Present[name] = true
			log.Info().Str("table", name).Int("rows", len(rows)).Msg("table loaded")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewSnapshot(tables), nil
}

// csvRow gives header-keyed access to one CSV record.
type csvRow struct {
	idx map[string]int
	rec []string
}

func (r csvRow) str(col string) string {
	i, ok := r.idx[col]
	if !ok || i >= len(r.rec) {
		return ""
	}
	return strings.TrimSpace(r.rec[i])
}

func (r csvRow) float(col string) (float64, bool) {
	s := r.str(col)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (r csvRow) date(col string) (time.Time, bool) {
	s := r.str(col)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func readCSVTable(path string) ([]csvRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	idx := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}

	rows := make([]csvRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, csvRow{idx: idx, rec: rec})
	}
	return rows, nil
}

func parseMaterials(rows []csvRow) []domain.Material {
	out := make([]domain.Material, 0, len(rows))
	for _, r := range rows {
		partID := r.str("part_id")
		if partID == "" {
			continue
		}
		m := domain.Material{
			PartID:   partID,
			PartName: r.str("part_name"),
			PartType: r.str("part_type"),
		}
		if models := r.str("used_in_models"); models != "" {
			for _, v := range strings.Split(models, ",") {
				if v = strings.TrimSpace(v); v != "" {
					m.UsedInModels = append(m.UsedInModels, v)
				}
			}
		}
		out = append(out, m)
	}
	return out
}

func parseStockLevels(rows []csvRow) []domain.StockLevel {
	out := make([]domain.StockLevel, 0, len(rows))
	for _, r := range rows {
		partID := r.str("part_id")
		if partID == "" {
			continue
		}
		qty, ok := r.float("quantity_available")
		if !ok {
			log.Debug().Str("part_id", partID).Msg("dropping stock row with bad quantity")
			continue
		}
		out = append(out, domain.StockLevel{
			PartID:            partID,
			QuantityAvailable: qty,
			Location:          r.str("location"),
		})
	}
	return out
}

func parseMaterialOrders(rows []csvRow) []domain.MaterialOrder {
	out := make([]domain.MaterialOrder, 0, len(rows))
	for _, r := range rows {
		partID := r.str("part_id")
		if partID == "" {
			continue
		}
		qty, _ := r.float("quantity_ordered")
		o := domain.MaterialOrder{
			OrderID:         r.str("order_id"),
			PartID:          partID,
			SupplierID:      r.str("supplier_id"),
			QuantityOrdered: qty,
			Status:          r.str("status"),
		}
		if t, ok := r.date("order_date"); ok {
			o.OrderDate = &t
		}
		if t, ok := r.date("expected_delivery_date"); ok {
			o.ExpectedDeliveryDate = &t
		}
		if t, ok := r.date("actual_delivered_at"); ok {
			o.ActualDeliveredAt = &t
		}
		out = append(out, o)
	}
	return out
}

func parseSalesOrders(rows []csvRow) []domain.SalesOrder {
	out := make([]domain.SalesOrder, 0, len(rows))
	for _, r := range rows {
		model := r.str("model")
		if model == "" {
			continue
		}
		qty, _ := r.float("quantity")
		out = append(out, domain.SalesOrder{
			OrderID:  r.str("order_id"),
			Model:    model,
			Version:  r.str("version"),
			Quantity: qty,
		})
	}
	return out
}

func parseSuppliers(rows []csvRow) []domain.Supplier {
	out := make([]domain.Supplier, 0, len(rows))
	for _, r := range rows {
		supplierID := r.str("supplier_id")
		partID := r.str("part_id")
		if supplierID == "" || partID == "" {
			continue
		}
		price, _ := r.float("price_per_unit")
		lead, _ := r.float("lead_time_days")
		rating, _ := r.float("reliability_rating")
		out = append(out, domain.Supplier{
			SupplierID:        supplierID,
			PartID:            partID,
			PricePerUnit:      price,
			LeadTimeDays:      lead,
			ReliabilityRating: rating,
		})
	}
	return out
}

func parseStockMovements(rows []csvRow) []domain.StockMovement {
	out := make([]domain.StockMovement, 0, len(rows))
	for _, r := range rows {
		partID := r.str("part_id")
		if partID == "" {
			continue
		}
		qty, ok := r.float("quantity")
		if !ok {
			log.Debug().Str("part_id", partID).Msg("dropping movement row with bad quantity")
			continue
		}
		m := domain.StockMovement{
			PartID:   partID,
			Quantity: qty,
			Type:     r.str("type"),
		}
		// Date parse failures are kept as zero time here; the consumption
		// estimator drops undated rows before windowing.
		if t, ok := r.date("date"); ok {
			m.Date = t
		}
		out = append(out, m)
	}
	return out
}

func parseDispatchParameters(rows []csvRow) []domain.DispatchParameters {
	out := make([]domain.DispatchParameters, 0, len(rows))
	for _, r := range rows {
		partID := r.str("part_id")
		if partID == "" {
			continue
		}
		minStock, _ := r.float("min_stock_level")
		reorderQty, _ := r.float("reorder_quantity")
		interval, _ := r.float("reorder_interval_days")
		out = append(out, domain.DispatchParameters{
			PartID:              partID,
			MinStockLevel:       minStock,
			ReorderQuantity:     reorderQty,
			ReorderIntervalDays: interval,
		})
	}
	return out
}
