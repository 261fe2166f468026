package domain

import "time"

// Material is a reference row from the material master table.
type Material struct {
	PartID       string   `json:"part_id" db:"part_id" csv:"part_id"`
	PartName     string   `json:"part_name" db:"part_name" csv:"part_name"`
	PartType     string   `json:"part_type" db:"part_type" csv:"part_type"`
	UsedInModels []string `json:"used_in_models" db:"-" csv:"used_in_models"`
}

// StockLevel is a point-in-time stock snapshot for a part. Quantity may be
// reported at or below zero, meaning out of stock.
type StockLevel struct {
	PartID            string  `json:"part_id" db:"part_id"`
	QuantityAvailable float64 `json:"quantity_available" db:"quantity_available"`
	Location          string  `json:"location" db:"location"`
}

// DispatchParameters is the per-part reorder configuration. Parts without a
// row are not managed for reorder purposes.
type DispatchParameters struct {
	PartID              string  `json:"part_id" db:"part_id"`
	MinStockLevel       float64 `json:"min_stock_level" db:"min_stock_level"`
	ReorderQuantity     float64 `json:"reorder_quantity" db:"reorder_quantity"`
	ReorderIntervalDays float64 `json:"reorder_interval_days" db:"reorder_interval_days"`
}

// StockMovement is an append-only warehouse movement event.
type StockMovement struct {
	PartID   string    `json:"part_id" db:"part_id"`
	Quantity float64   `json:"quantity" db:"quantity"`
	Type     string    `json:"type" db:"movement_type"`
	Date     time.Time `json:"date" db:"moved_at"`
}

// MaterialOrder is a purchase order for a part. Status transitions happen
// upstream; the engine only reads them.
type MaterialOrder struct {
	OrderID              string     `json:"order_id" db:"order_id"`
	PartID               string     `json:"part_id" db:"part_id"`
	SupplierID           string     `json:"supplier_id" db:"supplier_id"`
	QuantityOrdered      float64    `json:"quantity_ordered" db:"quantity_ordered"`
	Status               string     `json:"status" db:"status"`
	OrderDate            *time.Time `json:"order_date" db:"order_date"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date" db:"expected_delivery_date"`
	ActualDeliveredAt    *time.Time `json:"actual_delivered_at" db:"actual_delivered_at"`
}

// Supplier is part-scoped: one row per supplier-part pair.
type Supplier struct {
	SupplierID        string  `json:"supplier_id" db:"supplier_id"`
	PartID            string  `json:"part_id" db:"part_id"`
	PricePerUnit      float64 `json:"price_per_unit" db:"price_per_unit"`
	LeadTimeDays      float64 `json:"lead_time_days" db:"lead_time_days"`
	ReliabilityRating float64 `json:"reliability_rating" db:"reliability_rating"`
}

// SalesOrder is a finished-product order used for demand aggregation.
type SalesOrder struct {
	OrderID  string  `json:"order_id" db:"order_id"`
	Model    string  `json:"model" db:"model"`
	Version  string  `json:"version" db:"version"`
	Quantity float64 `json:"quantity" db:"quantity"`
}

// BOMLine is one (part, quantity-per-unit) entry of a bill of materials.
type BOMLine struct {
	PartID   string  `json:"part_id" db:"part_id"`
	Quantity float64 `json:"quantity" db:"quantity"`
}
