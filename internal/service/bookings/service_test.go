package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BB-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/BB-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/BB-BookingService/internal/integrations/shopservice"
	"github.com/m04kA/BB-BookingService/internal/service/bookings/models"
	"github.com/m04kA/BB-BookingService/pkg/ptr"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	byID       map[int64]*domain.Booking
	byCustomer []*domain.Booking
	byShop     []*domain.Booking

	lastStatus       *domain.BookingStatus
	lastRating       *int
	lastCancelReason *string
}

func newFakeRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{byID: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.byID[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByCustomerID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.byCustomer, nil
}

func (f *fakeBookingRepo) GetByShopWithFilter(_ context.Context, _ domain.ShopBookingsFilter) ([]*domain.Booking, error) {
	return f.byShop, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.lastStatus = &status
	return nil
}

func (f *fakeBookingRepo) UpdateRating(_ context.Context, id int64, rating int) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.lastRating = &rating
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.lastCancelReason = &reason
	return nil
}

type fakeShopClient struct {
	shop *shopservice.Shop
	err  error
}

func (f *fakeShopClient) GetShop(_ context.Context, _ int64) (*shopservice.Shop, error) {
	return f.shop, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Тестовые данные

const (
	customerID = int64(42)
	ownerID    = int64(100)
	strangerID = int64(777)
)

func testShop() *shopservice.Shop {
	return &shopservice.Shop{ID: 1, OwnerUserID: ownerID, Name: "Барбершоп на Тверской"}
}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:                   5,
		CustomerID:           customerID,
		ShopID:               1,
		Services:             []domain.ServiceSnapshot{{Name: "Стрижка", Price: 1500, DurationMinutes: 45}},
		AppointmentDate:      time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime:            "10:00",
		TotalDurationMinutes: 45,
		TotalPrice:           1500,
		Status:               status,
	}
}

func newTestService(repo *fakeBookingRepo) *Service {
	return NewService(repo, &fakeShopClient{shop: testShop()}, noopLogger{})
}

func TestService_GetByID(t *testing.T) {
	t.Run("customer sees own booking", func(t *testing.T) {
		svc := newTestService(newFakeRepo(testBooking(domain.StatusPending)))

		resp, err := svc.GetByID(context.Background(), 5, customerID)
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("shop owner sees booking", func(t *testing.T) {
		svc := newTestService(newFakeRepo(testBooking(domain.StatusPending)))

		_, err := svc.GetByID(context.Background(), 5, ownerID)
		assert.NoError(t, err)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		svc := newTestService(newFakeRepo(testBooking(domain.StatusPending)))

		_, err := svc.GetByID(context.Background(), 5, strangerID)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		svc := newTestService(newFakeRepo())

		_, err := svc.GetByID(context.Background(), 5, customerID)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("customer cancels pending booking", func(t *testing.T) {
		repo := newFakeRepo(testBooking(domain.StatusPending))
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{
			UserID:             customerID,
			CancellationReason: "не успеваю",
		})
		require.NoError(t, err)
		require.NotNil(t, repo.lastCancelReason)
		assert.Equal(t, "не успеваю", *repo.lastCancelReason)
	})

	t.Run("owner cancels confirmed booking", func(t *testing.T) {
		repo := newFakeRepo(testBooking(domain.StatusConfirmed))
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{UserID: ownerID})
		assert.NoError(t, err)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		svc := newTestService(newFakeRepo(testBooking(domain.StatusCompleted)))

		err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{UserID: customerID})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("cancelled booking cannot be cancelled again", func(t *testing.T) {
		svc := newTestService(newFakeRepo(testBooking(domain.StatusCancelled)))

		err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{UserID: customerID})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		svc := newTestService(newFakeRepo(testBooking(domain.StatusPending)))

		err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{UserID: strangerID})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("owner confirms pending booking", func(t *testing.T) {
		repo := newFakeRepo(testBooking(domain.StatusPending))
		svc := newTestService(repo)

		err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{UserID: ownerID, Status: "confirmed"})
		require.NoError(t, err)
		require.NotNil(t, repo.lastStatus)
		assert.Equal(t, domain.StatusConfirmed, *repo.lastStatus)
	})

	t.Run("owner completes confirmed booking", func(t *testing.T) {
		repo := newFakeRepo(testBooking(domain.StatusConfirmed))
		svc := newTestService(repo)

		err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{UserID: ownerID, Status: "completed"})
		assert.NoError(t, err)
	})

	t.Run("customer cannot manage status", func(t *testing.T) {
		svc := newTestService(newFakeRepo(testBooking(domain.StatusPending)))

		err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{UserID: customerID, Status: "confirmed"})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("backward transition is rejected", func(t *testing.T) {
		svc := newTestService(newFakeRepo(testBooking(domain.StatusCompleted)))

		err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{UserID: ownerID, Status: "confirmed"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("cancellation must go through Cancel", func(t *testing.T) {
		svc := newTestService(newFakeRepo(testBooking(domain.StatusPending)))

		err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{UserID: ownerID, Status: "cancelled"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		svc := newTestService(newFakeRepo(testBooking(domain.StatusPending)))

		err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{UserID: ownerID, Status: "archived"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestService_Rate(t *testing.T) {
	t.Run("customer rates completed booking", func(t *testing.T) {
		repo := newFakeRepo(testBooking(domain.StatusCompleted))
		svc := newTestService(repo)

		err := svc.Rate(context.Background(), 5, &models.RateBookingRequest{UserID: customerID, Rating: 5})
		require.NoError(t, err)
		require.NotNil(t, repo.lastRating)
		assert.Equal(t, 5, *repo.lastRating)
	})

	t.Run("repeated rating overwrites the previous one", func(t *testing.T) {
		booking := testBooking(domain.StatusCompleted)
		booking.Rating = ptr.Ptr(5)
		repo := newFakeRepo(booking)
		svc := newTestService(repo)

		err := svc.Rate(context.Background(), 5, &models.RateBookingRequest{UserID: customerID, Rating: 3})
		require.NoError(t, err)
		assert.Equal(t, 3, *repo.lastRating)
	})

	t.Run("pending booking cannot be rated", func(t *testing.T) {
		svc := newTestService(newFakeRepo(testBooking(domain.StatusPending)))

		err := svc.Rate(context.Background(), 5, &models.RateBookingRequest{UserID: customerID, Rating: 4})
		assert.ErrorIs(t, err, ErrCannotRate)
	})

	t.Run("rating out of range", func(t *testing.T) {
		svc := newTestService(newFakeRepo(testBooking(domain.StatusCompleted)))

		err := svc.Rate(context.Background(), 5, &models.RateBookingRequest{UserID: customerID, Rating: 0})
		assert.ErrorIs(t, err, ErrInvalidRating)

		err = svc.Rate(context.Background(), 5, &models.RateBookingRequest{UserID: customerID, Rating: 6})
		assert.ErrorIs(t, err, ErrInvalidRating)
	})

	t.Run("only the customer can rate", func(t *testing.T) {
		svc := newTestService(newFakeRepo(testBooking(domain.StatusCompleted)))

		err := svc.Rate(context.Background(), 5, &models.RateBookingRequest{UserID: ownerID, Rating: 5})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_GetShopBookings(t *testing.T) {
	t.Run("owner gets bookings", func(t *testing.T) {
		repo := newFakeRepo()
		repo.byShop = []*domain.Booking{testBooking(domain.StatusConfirmed)}
		svc := newTestService(repo)

		resp, err := svc.GetShopBookings(context.Background(), &models.GetShopBookingsRequest{
			UserID: ownerID,
			ShopID: 1,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 1)
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		svc := newTestService(newFakeRepo())

		_, err := svc.GetShopBookings(context.Background(), &models.GetShopBookingsRequest{
			UserID: strangerID,
			ShopID: 1,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		svc := newTestService(newFakeRepo())

		_, err := svc.GetShopBookings(context.Background(), &models.GetShopBookingsRequest{
			UserID: ownerID,
			ShopID: 1,
			Status: ptr.Ptr("archived"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetCustomerBookings(t *testing.T) {
	t.Run("returns customer history", func(t *testing.T) {
		repo := newFakeRepo()
		repo.byCustomer = []*domain.Booking{
			testBooking(domain.StatusCompleted),
			testBooking(domain.StatusCancelled),
		}
		svc := newTestService(repo)

		resp, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{CustomerID: customerID})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 2)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		svc := newTestService(newFakeRepo())

		_, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
			CustomerID: customerID,
			Status:     ptr.Ptr("archived"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
