package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/BB-BookingService/internal/domain"
	"github.com/m04kA/BB-BookingService/internal/integrations/shopservice"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.ShopID <= 0 {
		return fmt.Errorf("%w: shopID must be positive", ErrInvalidInput)
	}

	// Для создания бронирования выбор услуг обязателен
	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// resolveServiceSelection собирает снимок выбранных услуг из каталога барбершопа.
// Снимок фиксирует имя, цену и длительность на момент бронирования: последующее
// изменение каталога не затрагивает уже созданные записи.
func resolveServiceSelection(shop *shopservice.Shop, serviceIDs []int64) ([]domain.ServiceSnapshot, error) {
	snapshot := make([]domain.ServiceSnapshot, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		svc, ok := shop.ActiveServiceByID(id)
		if !ok {
			return nil, fmt.Errorf("%w: service id=%d is unknown or inactive", ErrInvalidServiceSelection, id)
		}
		snapshot = append(snapshot, domain.ServiceSnapshot{
			Name:            svc.Name,
			Price:           svc.Price,
			DurationMinutes: svc.DurationMinutes,
		})
	}

	return snapshot, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// isBeyondAdvanceWindow проверяет, что дата дальше разрешённого окна записи
func isBeyondAdvanceWindow(date, now time.Time, advanceBookingDays int) bool {
	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)

	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	return dateOnly.After(maxDate)
}
