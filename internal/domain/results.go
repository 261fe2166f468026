package domain

// Reason codes carried by results with an error indicator so callers can
// tell "no data" from "malformed data" without string matching.
const (
	ReasonNoBOM             = "no_bom"
	ReasonInsufficientData  = "insufficient_data"
	ReasonNoMovementHistory = "no_movement_history"
)

// HealthRecord is the per-part stock health classification. StockRatio is
// nil when the part has no configured minimum (unmanaged, always HEALTHY).
type HealthRecord struct {
	PartID            string       `json:"part_id"`
	PartName          string       `json:"part_name,omitempty"`
	PartType          string       `json:"part_type,omitempty"`
	QuantityAvailable float64      `json:"quantity_available"`
	MinStockLevel     float64      `json:"min_stock_level"`
	StockRatio        *float64     `json:"stock_ratio,omitempty"`
	DaysOfStock       float64      `json:"days_of_stock"`
	HealthStatus      HealthStatus `json:"health_status"`
}

// StockoutRisk is a health record filtered and tiered by a forecast horizon.
type StockoutRisk struct {
	PartID            string       `json:"part_id"`
	PartName          string       `json:"part_name"`
	DaysUntilStockout float64      `json:"days_until_stockout"`
	CurrentStock      float64      `json:"current_stock"`
	HealthStatus      HealthStatus `json:"health_status"`
	Urgency           Urgency      `json:"urgency"`
}

// ReorderRecommendation suggests a purchase quantity for a part below its
// minimum, netting in-flight orders against the shortfall.
type ReorderRecommendation struct {
	ID                  string   `json:"id"`
	PartID              string   `json:"part_id"`
	PartName            string   `json:"part_name"`
	PartType            string   `json:"part_type"`
	CurrentStock        float64  `json:"current_stock"`
	PendingOrders       float64  `json:"pending_orders"`
	MinStockLevel       float64  `json:"min_stock_level"`
	RecommendedOrderQty float64  `json:"recommended_order_qty"`
	Priority            Priority `json:"priority"`
}

// MaterialAvailability describes one BOM line against current stock.
type MaterialAvailability struct {
	PartID          string  `json:"part_id"`
	PartName        string  `json:"part_name"`
	RequiredPerUnit float64 `json:"required_per_unit"`
	AvailableStock  float64 `json:"available_stock"`
	UnitsPossible   int     `json:"units_possible"`
}

// CapacityResult is the build-capacity analysis for one product model.
// Error is set (with Reason) instead of failing when no BOM is known.
type CapacityResult struct {
	Model               string                 `json:"model"`
	MaxUnits            int                    `json:"max_units"`
	BottleneckMaterials []MaterialAvailability `json:"bottleneck_materials"`
	SufficientMaterials []string               `json:"sufficient_materials"`
	TotalPartsInBOM     int                    `json:"total_parts_in_bom"`
	Error               string                 `json:"error,omitempty"`
	Reason              string                 `json:"reason,omitempty"`
}

// MaterialRequirement is one BOM line scaled to a requested build quantity.
type MaterialRequirement struct {
	PartID           string  `json:"part_id"`
	PartName         string  `json:"part_name"`
	RequiredQuantity float64 `json:"required_quantity"`
	AvailableStock   float64 `json:"available_stock"`
	Shortage         float64 `json:"shortage"`
	Status           string  `json:"status"` // "sufficient" or "shortage"
}

// ConsumptionAnalysis summarizes the observed usage behind an optimization.
type ConsumptionAnalysis struct {
	AvgDailyConsumption   float64 `json:"avg_daily_consumption"`
	EstimatedLeadTimeDays float64 `json:"estimated_lead_time_days"`
	DataPeriodDays        int     `json:"data_period_days"`
}

// ParameterRecommendation carries recomputed dispatch parameters for a part.
type ParameterRecommendation struct {
	PartID                string               `json:"part_id"`
	CurrentParameters     *DispatchParameters  `json:"current_parameters,omitempty"`
	RecommendedParameters *DispatchParameters  `json:"recommended_parameters,omitempty"`
	Analysis              *ConsumptionAnalysis `json:"analysis,omitempty"`
	Error                 string               `json:"error,omitempty"`
	Reason                string               `json:"reason,omitempty"`
}

// CategorySummary is the per-part-type slice of the inventory summary.
type CategorySummary struct {
	PartType      string  `json:"part_type"`
	MaterialCount int     `json:"material_count"`
	TotalValue    float64 `json:"total_value"`
}

// InventorySummary aggregates headline inventory statistics.
type InventorySummary struct {
	TotalMaterials  int               `json:"total_materials"`
	TotalStockValue float64           `json:"total_stock_value"`
	LowStockCount   int               `json:"low_stock_count"`
	OutOfStockCount int               `json:"out_of_stock_count"`
	Categories      []CategorySummary `json:"categories"`
	Error           string            `json:"error,omitempty"`
}

// SupplierPerformance scores a supplier's delivery record.
type SupplierPerformance struct {
	SupplierID        string  `json:"supplier_id"`
	TotalOrders       int     `json:"total_orders"`
	OnTimeDeliveries  int     `json:"on_time_deliveries"`
	TotalQuantity     float64 `json:"total_quantity"`
	OnTimeRate        float64 `json:"on_time_rate"`
	ReliabilityRating float64 `json:"reliability_rating"`
}

// DemandSummary aggregates sales-order demand for the models a part feeds.
type DemandSummary struct {
	PartID        string       `json:"part_id"`
	TotalOrders   int          `json:"total_orders"`
	TotalQuantity float64      `json:"total_quantity"`
	Orders        []SalesOrder `json:"orders"`
}
