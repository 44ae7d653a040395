package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/BB-BookingService/internal/domain"
	"github.com/m04kA/BB-BookingService/internal/integrations/shopservice"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ShopID <= 0 {
		return fmt.Errorf("%w: shopID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	return nil
}

// resolveSelection собирает снимок выбранных услуг и итоговую длительность.
// Пустой выбор допустим на пути просмотра: слоты показываются с длительностью
// по умолчанию, пока клиент не выбрал услуги.
func resolveSelection(shop *shopservice.Shop, serviceIDs []int64) ([]domain.ServiceSnapshot, int, error) {
	if len(serviceIDs) == 0 {
		return nil, domain.DefaultDisplayDurationMinutes, nil
	}

	snapshot := make([]domain.ServiceSnapshot, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		svc, ok := shop.ActiveServiceByID(id)
		if !ok {
			return nil, 0, fmt.Errorf("%w: service id=%d is unknown or inactive", ErrInvalidServiceSelection, id)
		}
		snapshot = append(snapshot, domain.ServiceSnapshot{
			Name:            svc.Name,
			Price:           svc.Price,
			DurationMinutes: svc.DurationMinutes,
		})
	}

	_, duration := domain.SnapshotTotals(snapshot)
	if duration <= 0 {
		// Каталог с нулевыми длительностями - показываем с длительностью по умолчанию
		duration = domain.DefaultDisplayDurationMinutes
	}

	return snapshot, duration, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
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
