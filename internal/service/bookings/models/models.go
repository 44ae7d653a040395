package models

import (
	"errors"
	"time"

	"github.com/m04kA/BB-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// RateBookingRequest запрос на выставление оценки бронированию
type RateBookingRequest struct {
	UserID int64 `json:"userId"`
	Rating int   `json:"rating"`
}

// GetCustomerBookingsRequest запрос на получение бронирований клиента
type GetCustomerBookingsRequest struct {
	CustomerID int64   `json:"customerId"`
	Status     *string `json:"status,omitempty"`
}

// GetShopBookingsRequest запрос на получение бронирований барбершопа
type GetShopBookingsRequest struct {
	UserID          int64      `json:"userId"`
	ShopID          int64      `json:"shopId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetShopBookingsRequest) ToDomainFilter() (domain.ShopBookingsFilter, error) {
	filter := domain.ShopBookingsFilter{
		ShopID:          r.ShopID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ServiceSnapshotResponse услуга в составе бронирования (снимок на момент записи)
type ServiceSnapshotResponse struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                   int64                     `json:"id"`
	CustomerID           int64                     `json:"customerId"`
	ShopID               int64                     `json:"shopId"`
	Services             []ServiceSnapshotResponse `json:"services"`
	AppointmentDate      string                    `json:"appointmentDate"` // "2026-09-15"
	StartTime            string                    `json:"startTime"`       // "10:00"
	TotalDurationMinutes int                       `json:"totalDurationMinutes"`
	TotalPrice           float64                   `json:"totalPrice"`
	Status               string                    `json:"status"`

	Notes  *string `json:"notes,omitempty"`
	Rating *int    `json:"rating,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	services := make([]ServiceSnapshotResponse, 0, len(b.Services))
	for _, svc := range b.Services {
		services = append(services, ServiceSnapshotResponse{
			Name:            svc.Name,
			Price:           svc.Price,
			DurationMinutes: svc.DurationMinutes,
		})
	}

	resp := &BookingResponse{
		ID:                   b.ID,
		CustomerID:           b.CustomerID,
		ShopID:               b.ShopID,
		Services:             services,
		AppointmentDate:      b.AppointmentDate.Format(domain.DateFormat),
		StartTime:            b.StartTime.String(),
		TotalDurationMinutes: b.TotalDurationMinutes,
		TotalPrice:           b.TotalPrice,
		Status:               string(b.Status),
		Notes:                b.Notes,
		Rating:               b.Rating,
		CancellationReason:   b.CancellationReason,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		if dto := FromDomainBooking(b); dto != nil {
			resp.Bookings = append(resp.Bookings, *dto)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled:
		return domain.BookingStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
