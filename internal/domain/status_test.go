package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthStatusForRatio(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  HealthStatus
	}{
		{"negative", -0.3, HealthOutOfStock},
		{"zero", 0, HealthOutOfStock},
		{"just above zero", 0.01, HealthCritical},
		{"below half", 0.49, HealthCritical},
		{"at half", 0.5, HealthLow},
		{"just below minimum", 0.99, HealthLow},
		{"at minimum", 1.0, HealthAdequate},
		{"below buffer", 1.49, HealthAdequate},
		{"at buffer", 1.5, HealthHealthy},
		{"well stocked", 3.2, HealthHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HealthStatusForRatio(tt.ratio))
		})
	}
}

func TestUrgencyForDays(t *testing.T) {
	assert.Equal(t, UrgencyCritical, UrgencyForDays(0))
	assert.Equal(t, UrgencyCritical, UrgencyForDays(6.9))
	assert.Equal(t, UrgencyHigh, UrgencyForDays(7))
	assert.Equal(t, UrgencyHigh, UrgencyForDays(13.5))
	assert.Equal(t, UrgencyMedium, UrgencyForDays(14))
	assert.Equal(t, UrgencyMedium, UrgencyForDays(29))
}

func TestIsPendingOrderStatus(t *testing.T) {
	assert.True(t, IsPendingOrderStatus("Pending"))
	assert.True(t, IsPendingOrderStatus("pending"))
	assert.True(t, IsPendingOrderStatus("In Transit"))
	assert.True(t, IsPendingOrderStatus("  in transit "))
	assert.False(t, IsPendingOrderStatus("Delivered"))
	assert.False(t, IsPendingOrderStatus("Cancelled"))
	assert.False(t, IsPendingOrderStatus(""))
}

func TestIsDeliveredOrderStatus(t *testing.T) {
	assert.True(t, IsDeliveredOrderStatus("Delivered"))
	assert.True(t, IsDeliveredOrderStatus("delivered "))
	assert.False(t, IsDeliveredOrderStatus("Pending"))
}
