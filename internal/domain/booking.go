package domain

import (
	"time"

	"github.com/m04kA/BB-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ServiceSnapshot неизменяемая копия услуги на момент создания бронирования.
// Снимок делается при записи, чтобы последующие правки каталога барбершопа
// не меняли историю уже созданных бронирований.
type ServiceSnapshot struct {
	Name            string
	Price           float64
	DurationMinutes int
}

// Booking represents a barbershop appointment in the system
type Booking struct {
	ID         int64
	CustomerID int64
	ShopID     int64

	Services []ServiceSnapshot

	AppointmentDate      time.Time
	StartTime            types.TimeString
	TotalDurationMinutes int
	TotalPrice           float64

	Status BookingStatus
	Notes  *string

	// Rating оценка 1..5, допустима только для завершённых бронирований
	Rating *int

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its time slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeRated returns true if the booking accepts a rating
func (b *Booking) CanBeRated() bool {
	return b.Status == StatusCompleted
}

// CanTransitionTo проверяет допустимость перевода бронирования в новый статус
// владельцем барбершопа: pending -> confirmed/completed, confirmed -> completed
func (b *Booking) CanTransitionTo(status BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return status == StatusConfirmed || status == StatusCompleted
	case StatusConfirmed:
		return status == StatusCompleted
	default:
		return false
	}
}

// SnapshotTotals возвращает суммарную цену и длительность набора услуг.
// Поля TotalPrice и TotalDurationMinutes бронирования всегда должны
// равняться этим суммам на момент создания.
func SnapshotTotals(services []ServiceSnapshot) (price float64, durationMinutes int) {
	for _, s := range services {
		price += s.Price
		durationMinutes += s.DurationMinutes
	}
	return price, durationMinutes
}

// ShopBookingsFilter фильтр для получения бронирований барбершопа
type ShopBookingsFilter struct {
	ShopID          int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
