package domain

import "time"

// PlanType тариф подписки владельца барбершопа
type PlanType string

const (
	PlanStarter PlanType = "starter"
	PlanPro     PlanType = "pro"
)

// TierLimits лимиты бронирования, определяемые тарифом подписки
type TierLimits struct {
	// AdvanceBookingDays максимальное окно записи вперёд, в днях
	AdvanceBookingDays int
	// MonthlyBookingLimit максимум бронирований на календарный месяц
	MonthlyBookingLimit int
}

// LimitsForPlan возвращает лимиты для тарифа.
// Отсутствующая или неактивная подписка даёт лимиты самого низкого тарифа (starter).
func LimitsForPlan(plan PlanType, active bool) TierLimits {
	if active && plan == PlanPro {
		return TierLimits{
			AdvanceBookingDays:  ProAdvanceBookingDays,
			MonthlyBookingLimit: ProMonthlyBookingLimit,
		}
	}
	return TierLimits{
		AdvanceBookingDays:  StarterAdvanceBookingDays,
		MonthlyBookingLimit: StarterMonthlyBookingLimit,
	}
}

// MonthBounds возвращает границы календарного месяца (включительно),
// в котором лежит переданная дата. Используется для месячного лимита бронирований.
func MonthBounds(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 1, -1)
	return start, end
}
