package get_shop_bookings

import (
	"context"

	"github.com/m04kA/BB-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetShopBookings(ctx context.Context, req *models.GetShopBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
