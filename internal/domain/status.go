package domain

import "strings"

// HealthStatus classifies a part's stock level against its minimum.
type HealthStatus string

const (
	HealthOutOfStock HealthStatus = "OUT_OF_STOCK"
	HealthCritical   HealthStatus = "CRITICAL"
	HealthLow        HealthStatus = "LOW"
	HealthAdequate   HealthStatus = "ADEQUATE"
	HealthHealthy    HealthStatus = "HEALTHY"
)

// HealthStatusForRatio maps a stock ratio to a status. Thresholds are
// evaluated in priority order; the first match wins.
func HealthStatusForRatio(ratio float64) HealthStatus {
	switch {
	case ratio <= 0:
		return HealthOutOfStock
	case ratio < 0.5:
		return HealthCritical
	case ratio < 1.0:
		return HealthLow
	case ratio < 1.5:
		return HealthAdequate
	default:
		return HealthHealthy
	}
}

// Urgency tiers a stockout risk by days of stock remaining.
type Urgency string

const (
	UrgencyCritical Urgency = "CRITICAL"
	UrgencyHigh     Urgency = "HIGH"
	UrgencyMedium   Urgency = "MEDIUM"
)

// UrgencyForDays tiers days-of-stock into an urgency band.
func UrgencyForDays(days float64) Urgency {
	switch {
	case days < 7:
		return UrgencyCritical
	case days < 14:
		return UrgencyHigh
	default:
		return UrgencyMedium
	}
}

// Priority ranks a reorder recommendation.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
)

// Material order statuses as they appear in the orders table.
const (
	OrderStatusPending   = "Pending"
	OrderStatusInTransit = "In Transit"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

var pendingOrderStatuses = map[string]bool{
	strings.ToLower(OrderStatusPending):   true,
	strings.ToLower(OrderStatusInTransit): true,
}

// IsPendingOrderStatus reports whether a status counts as in-flight
// (Pending or In Transit). Comparison is case-insensitive.
func IsPendingOrderStatus(status string) bool {
	return pendingOrderStatuses[strings.ToLower(strings.TrimSpace(status))]
}

// IsDeliveredOrderStatus reports whether a status means the order arrived.
func IsDeliveredOrderStatus(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), OrderStatusDelivered)
}
