package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/BB-BookingService/internal/domain"
)

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrNotCustomer возвращается, когда бронирование создает не клиент
	ErrNotCustomer = errors.New("create_booking: user is not a customer")

	// ErrShopNotFound возвращается, когда барбершоп не найден
	ErrShopNotFound = errors.New("create_booking: shop not found")

	// ErrInvalidServiceSelection возвращается, когда выбранные услуги
	// неизвестны или неактивны в каталоге барбершопа
	ErrInvalidServiceSelection = errors.New("create_booking: invalid service selection")

	// ErrShopClosed возвращается, когда барбершоп закрыт в выбранную дату
	ErrShopClosed = errors.New("create_booking: shop is closed on this date")

	// ErrOutsideWorkingHours возвращается, когда запись не помещается в рабочее окно
	ErrOutsideWorkingHours = errors.New("create_booking: slot is outside working hours")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с активным бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrDateInPast возвращается при попытке записи на прошедшую дату
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата дальше окна записи тарифа
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrMonthlyLimitReached возвращается при исчерпании месячного лимита тарифа
	ErrMonthlyLimitReached = errors.New("create_booking: monthly booking limit reached")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// AdvanceLimitError ошибка превышения окна записи тарифа.
// Несет тариф и размер окна, чтобы API мог назвать лимит клиенту.
type AdvanceLimitError struct {
	Plan domain.PlanType
	Days int
}

func (e *AdvanceLimitError) Error() string {
	return fmt.Sprintf("create_booking: date is too far in the future: plan %s allows booking %d days ahead", e.Plan, e.Days)
}

// Unwrap позволяет errors.Is(err, ErrDateTooFarInFuture)
func (e *AdvanceLimitError) Unwrap() error {
	return ErrDateTooFarInFuture
}

// MonthlyLimitError ошибка исчерпания месячного лимита бронирований тарифа
type MonthlyLimitError struct {
	Plan  domain.PlanType
	Limit int
}

func (e *MonthlyLimitError) Error() string {
	return fmt.Sprintf("create_booking: monthly booking limit reached: plan %s allows %d bookings per month", e.Plan, e.Limit)
}

// Unwrap позволяет errors.Is(err, ErrMonthlyLimitReached)
func (e *MonthlyLimitError) Unwrap() error {
	return ErrMonthlyLimitReached
}
