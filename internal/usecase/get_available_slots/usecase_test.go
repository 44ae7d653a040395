package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BB-BookingService/internal/domain"
	"github.com/m04kA/BB-BookingService/internal/integrations/billing"
	"github.com/m04kA/BB-BookingService/internal/integrations/shopservice"
	"github.com/m04kA/BB-BookingService/pkg/types"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByShopWithFilter(_ context.Context, _ domain.ShopBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeShopClient struct {
	shop *shopservice.Shop
	err  error
}

func (f *fakeShopClient) GetShop(_ context.Context, _ int64) (*shopservice.Shop, error) {
	return f.shop, f.err
}

type fakeBillingClient struct {
	sub *billing.Subscription
	err error
}

func (f *fakeBillingClient) GetSubscriptionWithGracefulDegradation(_ context.Context, _ int64) (*billing.Subscription, error) {
	return f.sub, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Тестовые данные

// 2026-09-14 - понедельник
var testNow = time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

func testShop() *shopservice.Shop {
	return &shopservice.Shop{
		ID:          1,
		OwnerUserID: 100,
		Name:        "Барбершоп на Тверской",
		Services: []shopservice.Service{
			{ID: 10, Name: "Стрижка", Price: 1500, DurationMinutes: 45, IsActive: true},
			{ID: 11, Name: "Оформление бороды", Price: 800, DurationMinutes: 30, IsActive: true},
			{ID: 12, Name: "Архивная услуга", Price: 500, DurationMinutes: 15, IsActive: false},
		},
		OpeningHours: []shopservice.OpeningHours{
			{DayOfWeek: 1, OpeningTime: "09:00", ClosingTime: "18:00"}, // понедельник
			{DayOfWeek: 2, OpeningTime: "09:00", ClosingTime: "18:00"},
			{DayOfWeek: 0, IsClosed: true}, // воскресенье
		},
	}
}

func newTestUseCase(repo *fakeBookingRepo, shop *fakeShopClient, bill *fakeBillingClient) *UseCase {
	uc := NewUseCase(repo, shop, bill, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("empty selection uses default duration", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeShopClient{shop: testShop()}, &fakeBillingClient{})

		resp, err := uc.Execute(context.Background(), &Request{ShopID: 1, Date: testNow})
		require.NoError(t, err)

		assert.Equal(t, domain.DefaultDisplayDurationMinutes, resp.DurationMinutes)
		require.NotEmpty(t, resp.Available)
		assert.Equal(t, types.TimeString("09:00"), resp.Available[0])
		assert.Equal(t, types.TimeString("17:30"), resp.Available[len(resp.Available)-1])
		assert.Empty(t, resp.Booked)
	})

	t.Run("selected services give combined duration", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeShopClient{shop: testShop()}, &fakeBillingClient{})

		resp, err := uc.Execute(context.Background(), &Request{ShopID: 1, Date: testNow, ServiceIDs: []int64{10, 11}})
		require.NoError(t, err)

		// 45 + 30 = 75 минут
		assert.Equal(t, 75, resp.DurationMinutes)
		// Последний кандидат: 16:45 + 75 минут = ровно 18:00
		assert.Equal(t, types.TimeString("16:45"), resp.Available[len(resp.Available)-1])
	})

	t.Run("existing booking moves slots to booked", func(t *testing.T) {
		repo := &fakeBookingRepo{bookings: []*domain.Booking{
			{StartTime: "10:00", TotalDurationMinutes: 30, Status: domain.StatusConfirmed},
		}}
		uc := newTestUseCase(repo, &fakeShopClient{shop: testShop()}, &fakeBillingClient{})

		resp, err := uc.Execute(context.Background(), &Request{ShopID: 1, Date: testNow, ServiceIDs: []int64{11}})
		require.NoError(t, err)

		assert.Equal(t, []types.TimeString{"09:45", "10:00", "10:15"}, resp.Booked)
		assert.NotContains(t, resp.Available, types.TimeString("10:00"))
		assert.Contains(t, resp.Available, types.TimeString("09:30"))
		assert.Contains(t, resp.Available, types.TimeString("10:30"))
	})

	t.Run("inactive service is rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeShopClient{shop: testShop()}, &fakeBillingClient{})

		_, err := uc.Execute(context.Background(), &Request{ShopID: 1, Date: testNow, ServiceIDs: []int64{12}})
		assert.ErrorIs(t, err, ErrInvalidServiceSelection)
	})

	t.Run("unknown service is rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeShopClient{shop: testShop()}, &fakeBillingClient{})

		_, err := uc.Execute(context.Background(), &Request{ShopID: 1, Date: testNow, ServiceIDs: []int64{999}})
		assert.ErrorIs(t, err, ErrInvalidServiceSelection)
	})

	t.Run("shop not found", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeShopClient{err: shopservice.ErrShopNotFound}, &fakeBillingClient{})

		_, err := uc.Execute(context.Background(), &Request{ShopID: 404, Date: testNow})
		assert.ErrorIs(t, err, ErrShopNotFound)
	})

	t.Run("past date gives empty lists", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeShopClient{shop: testShop()}, &fakeBillingClient{})

		resp, err := uc.Execute(context.Background(), &Request{ShopID: 1, Date: testNow.AddDate(0, 0, -1)})
		require.NoError(t, err)
		assert.Empty(t, resp.Available)
		assert.Empty(t, resp.Booked)
	})

	t.Run("date beyond starter window gives empty lists", func(t *testing.T) {
		// Подписки нет - действуют лимиты starter (7 дней)
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeShopClient{shop: testShop()}, &fakeBillingClient{err: billing.ErrSubscriptionNotFound})

		resp, err := uc.Execute(context.Background(), &Request{ShopID: 1, Date: testNow.AddDate(0, 0, 8)})
		require.NoError(t, err)
		assert.Empty(t, resp.Available)
		assert.Empty(t, resp.Booked)
	})

	t.Run("pro subscription extends the window", func(t *testing.T) {
		bill := &fakeBillingClient{sub: &billing.Subscription{PlanType: "pro", Status: billing.StatusActive}}
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeShopClient{shop: testShop()}, bill)

		// 2026-09-22 - вторник, 8 дней вперёд, рабочий день
		resp, err := uc.Execute(context.Background(), &Request{ShopID: 1, Date: testNow.AddDate(0, 0, 8)})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Available)
	})

	t.Run("billing degradation falls back to starter window", func(t *testing.T) {
		bill := &fakeBillingClient{err: billing.ErrServiceDegraded}
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeShopClient{shop: testShop()}, bill)

		resp, err := uc.Execute(context.Background(), &Request{ShopID: 1, Date: testNow.AddDate(0, 0, 8)})
		require.NoError(t, err)
		assert.Empty(t, resp.Available)
	})

	t.Run("closed day gives empty lists", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeShopClient{shop: testShop()}, &fakeBillingClient{})

		// 2026-09-20 - воскресенье, is_closed=true
		sunday := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
		resp, err := uc.Execute(context.Background(), &Request{ShopID: 1, Date: sunday})
		require.NoError(t, err)
		assert.Empty(t, resp.Available)
		assert.Empty(t, resp.Booked)
	})

	t.Run("day without schedule gives empty lists", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeShopClient{shop: testShop()}, &fakeBillingClient{})

		// 2026-09-16 - среда, записи в расписании нет
		wednesday := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
		resp, err := uc.Execute(context.Background(), &Request{ShopID: 1, Date: wednesday})
		require.NoError(t, err)
		assert.Empty(t, resp.Available)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeShopClient{shop: testShop()}, &fakeBillingClient{})

		_, err := uc.Execute(context.Background(), &Request{ShopID: 0, Date: testNow})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(context.Background(), &Request{ShopID: 1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
