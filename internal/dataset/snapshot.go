package dataset

import (
	"strings"
	"time"

	"github.com/voltworks/inventory-engine/internal/domain"
)

// Table names as exposed by the tabular data source.
const (
	TableMaterials          = "materials"
	TableStockLevels        = "stock_levels"
	TableMaterialOrders     = "material_orders"
	TableSalesOrders        = "sales_orders"
	TableSuppliers          = "suppliers"
	TableStockMovements     = "stock_movements"
	TableDispatchParameters = "dispatch_parameters"
)

// Tables is the raw row data a loader produced for one snapshot. A nil
// Present set means every non-nil slice counts as present.
type Tables struct {
	Materials          []domain.Material
	StockLevels        []domain.StockLevel
	MaterialOrders     []domain.MaterialOrder
	SalesOrders        []domain.SalesOrder
	Suppliers          []domain.Supplier
	StockMovements     []domain.StockMovement
	DispatchParameters []domain.DispatchParameters
	Present            map[string]bool
}

// Snapshot is an immutable, point-in-time view of all source tables with
// per-part lookup indexes. Derived computations always run against a single
// snapshot so multi-table joins never observe a partial reload.
type Snapshot struct {
	tables   Tables
	loadedAt time.Time

	materialByPart map[string]int
	stockByPart    map[string]int
	paramsByPart   map[string]int
}

// NewSnapshot builds a snapshot and its lookup indexes. The caller must not
// mutate the tables afterwards.
func NewSnapshot(tables Tables) *Snapshot {
	s := &Snapshot{
		tables:         tables,
		loadedAt:       time.Now(),
		materialByPart: make(map[string]int, len(tables.Materials)),
		stockByPart:    make(map[string]int, len(tables.StockLevels)),
		paramsByPart:   make(map[string]int, len(tables.DispatchParameters)),
	}

	for i, m := range tables.Materials {
		s.materialByPart[m.PartID] = i
	}
	for i, sl := range tables.StockLevels {
		// first row per part wins, matching the source's iloc[0] lookup
		if _, ok := s.stockByPart[sl.PartID]; !ok {
			s.stockByPart[sl.PartID] = i
		}
	}
	for i, p := range tables.DispatchParameters {
		if _, ok := s.paramsByPart[p.PartID]; !ok {
			s.paramsByPart[p.PartID] = i
		}
	}

	return s
}

// LoadedAt reports when this snapshot was constructed.
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }

// Has reports whether a named table was present in the source.
func (s *Snapshot) Has(table string) bool {
	if s.tables.Present != nil {
		return s.tables.Present[table]
	}
	switch table {
	case TableMaterials:
		return s.tables.Materials != nil
	case TableStockLevels:
		return s.tables.StockLevels != nil
	case TableMaterialOrders:
		return s.tables.MaterialOrders != nil
	case TableSalesOrders:
		return s.tables.SalesOrders != nil
	case TableSuppliers:
		return s.tables.Suppliers != nil
	case TableStockMovements:
		return s.tables.StockMovements != nil
	case TableDispatchParameters:
		return s.tables.DispatchParameters != nil
	}
	return false
}

// Materials returns all material master rows.
func (s *Snapshot) Materials() []domain.Material { return s.tables.Materials }

// StockLevels returns all stock level rows.
func (s *Snapshot) StockLevels() []domain.StockLevel { return s.tables.StockLevels }

// StockMovements returns the movement log.
func (s *Snapshot) StockMovements() []domain.StockMovement { return s.tables.StockMovements }

// Suppliers returns all supplier-part rows.
func (s *Snapshot) Suppliers() []domain.Supplier { return s.tables.Suppliers }

// MaterialOrders returns all purchase orders.
func (s *Snapshot) MaterialOrders() []domain.MaterialOrder { return s.tables.MaterialOrders }

// SalesOrders returns all finished-product orders.
func (s *Snapshot) SalesOrders() []domain.SalesOrder { return s.tables.SalesOrders }

// DispatchParameterRows returns all dispatch parameter rows.
func (s *Snapshot) DispatchParameterRows() []domain.DispatchParameters {
	return s.tables.DispatchParameters
}

// Material looks up a material master row by part.
func (s *Snapshot) Material(partID string) (domain.Material, bool) {
	i, ok := s.materialByPart[partID]
	if !ok {
		return domain.Material{}, false
	}
	return s.tables.Materials[i], true
}

// StockLevel looks up the stock row for a part.
func (s *Snapshot) StockLevel(partID string) (domain.StockLevel, bool) {
	i, ok := s.stockByPart[partID]
	if !ok {
		return domain.StockLevel{}, false
	}
	return s.tables.StockLevels[i], true
}

// DispatchParameters looks up the reorder configuration for a part.
func (s *Snapshot) DispatchParameters(partID string) (domain.DispatchParameters, bool) {
	i, ok := s.paramsByPart[partID]
	if !ok {
		return domain.DispatchParameters{}, false
	}
	return s.tables.DispatchParameters[i], true
}

// PendingOrders returns orders with an in-flight status (Pending or
// In Transit), optionally scoped to one part.
func (s *Snapshot) PendingOrders(partID string) []domain.MaterialOrder {
	var pending []domain.MaterialOrder
	for _, o := range s.tables.MaterialOrders {
		if !domain.IsPendingOrderStatus(o.Status) {
			continue
		}
		if partID != "" && o.PartID != partID {
			continue
		}
		pending = append(pending, o)
	}
	return pending
}

// SuppliersForPart returns every supplier row for a part.
func (s *Snapshot) SuppliersForPart(partID string) []domain.Supplier {
	var out []domain.Supplier
	for _, sup := range s.tables.Suppliers {
		if sup.PartID == partID {
			out = append(out, sup)
		}
	}
	return out
}

// MaterialsByType returns all materials of a given type.
func (s *Snapshot) MaterialsByType(partType string) []domain.Material {
	var out []domain.Material
	for _, m := range s.tables.Materials {
		if strings.EqualFold(m.PartType, partType) {
			out = append(out, m)
		}
	}
	return out
}

// SalesOrdersForModels returns sales orders whose model is in the given set.
func (s *Snapshot) SalesOrdersForModels(models []string) []domain.SalesOrder {
	if len(models) == 0 {
		return nil
	}
	want := make(map[string]bool, len(models))
	for _, m := range models {
		want[strings.TrimSpace(m)] = true
	}
	var out []domain.SalesOrder
	for _, o := range s.tables.SalesOrders {
		if want[o.Model] {
			out = append(out, o)
		}
	}
	return out
}
