package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimitsForPlan(t *testing.T) {
	tests := []struct {
		name   string
		plan   PlanType
		active bool
		want   TierLimits
	}{
		{name: "active pro", plan: PlanPro, active: true, want: TierLimits{AdvanceBookingDays: ProAdvanceBookingDays, MonthlyBookingLimit: ProMonthlyBookingLimit}},
		{name: "inactive pro falls back to starter", plan: PlanPro, active: false, want: TierLimits{AdvanceBookingDays: StarterAdvanceBookingDays, MonthlyBookingLimit: StarterMonthlyBookingLimit}},
		{name: "active starter", plan: PlanStarter, active: true, want: TierLimits{AdvanceBookingDays: StarterAdvanceBookingDays, MonthlyBookingLimit: StarterMonthlyBookingLimit}},
		{name: "unknown plan treated as starter", plan: PlanType("enterprise"), active: true, want: TierLimits{AdvanceBookingDays: StarterAdvanceBookingDays, MonthlyBookingLimit: StarterMonthlyBookingLimit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LimitsForPlan(tt.plan, tt.active))
		})
	}
}

func TestMonthBounds(t *testing.T) {
	t.Run("middle of month", func(t *testing.T) {
		now := time.Date(2026, 9, 15, 13, 45, 0, 0, time.UTC)
		start, end := MonthBounds(now)
		assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("february in leap year", func(t *testing.T) {
		now := time.Date(2028, 2, 10, 0, 0, 0, 0, time.UTC)
		start, end := MonthBounds(now)
		assert.Equal(t, time.Date(2028, 2, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("december wraps into next year", func(t *testing.T) {
		now := time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC)
		start, end := MonthBounds(now)
		assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), end)
	})
}
