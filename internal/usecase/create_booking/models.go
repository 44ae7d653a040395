package create_booking

import (
	"time"

	"github.com/m04kA/BB-BookingService/internal/domain"
	"github.com/m04kA/BB-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID int64            // ID клиента (из заголовка аутентификации)
	ShopID     int64            // ID барбершопа
	ServiceIDs []int64          // Выбранные услуги, минимум одна
	Date       time.Time        // Дата записи (без времени)
	StartTime  types.TimeString // Время начала в формате HH:MM
	Notes      *string          // Комментарий клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
