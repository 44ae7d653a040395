package billing

import "time"

// Subscription подписка владельца барбершопа из BillingService
type Subscription struct {
	UserID           int64     `json:"user_id"`
	PlanType         string    `json:"plan_type"` // starter или pro
	Status           string    `json:"status"`    // active, canceled, past_due, incomplete
	CurrentPeriodEnd time.Time `json:"current_period_end"`
}

// Статусы подписки
const (
	StatusActive     = "active"
	StatusCanceled   = "canceled"
	StatusPastDue    = "past_due"
	StatusIncomplete = "incomplete"
)

// IsActive возвращает true, если подписка действует
func (s *Subscription) IsActive() bool {
	return s.Status == StatusActive
}

// ErrorResponse модель ошибки от BillingService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
