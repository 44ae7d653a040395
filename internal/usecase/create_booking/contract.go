package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/BB-BookingService/internal/domain"
	"github.com/m04kA/BB-BookingService/internal/integrations/billing"
	"github.com/m04kA/BB-BookingService/internal/integrations/shopservice"
	"github.com/m04kA/BB-BookingService/internal/integrations/userservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// Create создает новое бронирование
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByShopWithFilter получает все бронирования барбершопа по фильтру
	GetByShopWithFilter(ctx context.Context, filter domain.ShopBookingsFilter) ([]*domain.Booking, error)
	// CountActiveInPeriod считает активные бронирования барбершопа за период
	CountActiveInPeriod(ctx context.Context, shopID int64, start, end time.Time) (int, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	// DoSerializable выполняет функцию в serializable транзакции
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// ShopServiceClient интерфейс клиента для ShopService
type ShopServiceClient interface {
	GetShop(ctx context.Context, shopID int64) (*shopservice.Shop, error)
}

// BillingClient интерфейс клиента для BillingService
type BillingClient interface {
	GetSubscriptionWithGracefulDegradation(ctx context.Context, userID int64) (*billing.Subscription, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
