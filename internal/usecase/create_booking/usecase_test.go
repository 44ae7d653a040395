package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BB-BookingService/internal/domain"
	"github.com/m04kA/BB-BookingService/internal/integrations/billing"
	"github.com/m04kA/BB-BookingService/internal/integrations/shopservice"
	"github.com/m04kA/BB-BookingService/internal/integrations/userservice"
	"github.com/m04kA/BB-BookingService/pkg/ptr"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	bookings    []*domain.Booking
	activeCount int
	created     *domain.Booking
	nextID      int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	booking.ID = f.nextID
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetByShopWithFilter(_ context.Context, _ domain.ShopBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) CountActiveInPeriod(_ context.Context, _ int64, _, _ time.Time) (int, error) {
	return f.activeCount, nil
}

// fakeTxManager исполняет функцию без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeUserClient struct {
	user *userservice.User
	err  error
}

func (f *fakeUserClient) GetUser(_ context.Context, _ int64) (*userservice.User, error) {
	return f.user, f.err
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
			{DayOfWeek: 1, OpeningTime: "09:00", ClosingTime: "18:00"},
			{DayOfWeek: 2, OpeningTime: "09:00", ClosingTime: "18:00"},
			{DayOfWeek: 0, IsClosed: true},
		},
	}
}

func testCustomer() *userservice.User {
	return &userservice.User{ID: 42, FullName: "Иван Петров", Role: userservice.RoleCustomer}
}

type testEnv struct {
	repo    *fakeBookingRepo
	tx      *fakeTxManager
	user    *fakeUserClient
	shop    *fakeShopClient
	billing *fakeBillingClient
	uc      *UseCase
}

func newTestEnv() *testEnv {
	env := &testEnv{
		repo:    &fakeBookingRepo{},
		tx:      &fakeTxManager{},
		user:    &fakeUserClient{user: testCustomer()},
		shop:    &fakeShopClient{shop: testShop()},
		billing: &fakeBillingClient{err: billing.ErrSubscriptionNotFound},
	}
	env.uc = NewUseCase(env.repo, env.tx, env.user, env.shop, env.billing, noopLogger{})
	env.uc.timeProvider = &fixedTimeProvider{now: testNow}
	return env
}

func validRequest() *Request {
	return &Request{
		CustomerID: 42,
		ShopID:     1,
		ServiceIDs: []int64{10},
		Date:       testNow,
		StartTime:  "10:00",
	}
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("creates pending booking with service snapshot", func(t *testing.T) {
		env := newTestEnv()

		req := validRequest()
		req.ServiceIDs = []int64{10, 11}
		req.Notes = ptr.Ptr("постричь покороче")

		resp, err := env.uc.Execute(context.Background(), req)
		require.NoError(t, err)

		b := resp.Booking
		assert.Equal(t, domain.StatusPending, b.Status)
		assert.Equal(t, int64(42), b.CustomerID)
		assert.Equal(t, 75, b.TotalDurationMinutes)
		assert.Equal(t, 2300.0, b.TotalPrice)
		require.Len(t, b.Services, 2)
		assert.Equal(t, "Стрижка", b.Services[0].Name)
		require.NotNil(t, b.Notes)
		assert.Equal(t, "постричь покороче", *b.Notes)

		// Вставка прошла внутри транзакции
		assert.Equal(t, 1, env.tx.calls)
	})

	t.Run("conflicting active booking is rejected", func(t *testing.T) {
		env := newTestEnv()
		env.repo.bookings = []*domain.Booking{
			{StartTime: "10:15", TotalDurationMinutes: 30, Status: domain.StatusConfirmed},
		}

		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Nil(t, env.repo.created)
	})

	t.Run("cancelled booking frees the slot", func(t *testing.T) {
		env := newTestEnv()
		env.repo.bookings = []*domain.Booking{
			{StartTime: "10:00", TotalDurationMinutes: 45, Status: domain.StatusCancelled},
		}

		_, err := env.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.NotNil(t, env.repo.created)
	})

	t.Run("back to back bookings do not conflict", func(t *testing.T) {
		env := newTestEnv()
		// Существующая запись заканчивается ровно в 10:00
		env.repo.bookings = []*domain.Booking{
			{StartTime: "09:30", TotalDurationMinutes: 30, Status: domain.StatusConfirmed},
		}

		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.NoError(t, err)
	})

	t.Run("booking ending exactly at closing is allowed", func(t *testing.T) {
		env := newTestEnv()
		req := validRequest()
		req.StartTime = "17:15" // 17:15 + 45 = 18:00

		_, err := env.uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("booking running past closing is rejected", func(t *testing.T) {
		env := newTestEnv()
		req := validRequest()
		req.StartTime = "17:30" // 17:30 + 45 = 18:15

		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOutsideWorkingHours)
	})

	t.Run("booking before opening is rejected", func(t *testing.T) {
		env := newTestEnv()
		req := validRequest()
		req.StartTime = "08:45"

		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOutsideWorkingHours)
	})

	t.Run("closed day is rejected", func(t *testing.T) {
		env := newTestEnv()
		req := validRequest()
		req.Date = time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC) // воскресенье

		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrShopClosed)
	})

	t.Run("day without schedule is rejected", func(t *testing.T) {
		env := newTestEnv()
		req := validRequest()
		req.Date = time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC) // среда, записи нет

		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrShopClosed)
	})

	t.Run("past date is rejected", func(t *testing.T) {
		env := newTestEnv()
		req := validRequest()
		req.Date = testNow.AddDate(0, 0, -1)

		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrDateInPast)
	})

	t.Run("starter window: seventh day allowed, eighth rejected", func(t *testing.T) {
		env := newTestEnv()
		req := validRequest()
		req.Date = testNow.AddDate(0, 0, 7) // понедельник через неделю

		_, err := env.uc.Execute(context.Background(), req)
		require.NoError(t, err)

		env = newTestEnv()
		req = validRequest()
		req.Date = testNow.AddDate(0, 0, 8)

		_, err = env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrDateTooFarInFuture)

		var limitErr *AdvanceLimitError
		require.ErrorAs(t, err, &limitErr)
		assert.Equal(t, domain.PlanStarter, limitErr.Plan)
		assert.Equal(t, domain.StarterAdvanceBookingDays, limitErr.Days)
	})

	t.Run("active pro subscription extends the window", func(t *testing.T) {
		env := newTestEnv()
		env.billing.err = nil
		env.billing.sub = &billing.Subscription{PlanType: "pro", Status: billing.StatusActive}

		req := validRequest()
		req.Date = testNow.AddDate(0, 0, 8) // вторник

		_, err := env.uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("inactive pro subscription falls back to starter limits", func(t *testing.T) {
		env := newTestEnv()
		env.billing.err = nil
		env.billing.sub = &billing.Subscription{PlanType: "pro", Status: billing.StatusPastDue}

		req := validRequest()
		req.Date = testNow.AddDate(0, 0, 8)

		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	})

	t.Run("monthly limit: hundredth allowed, beyond rejected", func(t *testing.T) {
		env := newTestEnv()
		env.repo.activeCount = domain.StarterMonthlyBookingLimit - 1

		_, err := env.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		env = newTestEnv()
		env.repo.activeCount = domain.StarterMonthlyBookingLimit

		_, err = env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrMonthlyLimitReached)

		var limitErr *MonthlyLimitError
		require.ErrorAs(t, err, &limitErr)
		assert.Equal(t, domain.StarterMonthlyBookingLimit, limitErr.Limit)
	})

	t.Run("billing degradation applies starter limits", func(t *testing.T) {
		env := newTestEnv()
		env.billing.err = billing.ErrServiceDegraded

		req := validRequest()
		req.Date = testNow.AddDate(0, 0, 8)

		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	})

	t.Run("non-customer cannot book", func(t *testing.T) {
		env := newTestEnv()
		env.user.user = &userservice.User{ID: 42, Role: userservice.RoleBarber}

		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrNotCustomer)
	})

	t.Run("unknown user", func(t *testing.T) {
		env := newTestEnv()
		env.user.user = nil
		env.user.err = userservice.ErrUserNotFound

		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("unknown shop", func(t *testing.T) {
		env := newTestEnv()
		env.shop.shop = nil
		env.shop.err = shopservice.ErrShopNotFound

		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrShopNotFound)
	})

	t.Run("inactive service is rejected", func(t *testing.T) {
		env := newTestEnv()
		req := validRequest()
		req.ServiceIDs = []int64{12}

		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidServiceSelection)
	})

	t.Run("empty selection is rejected", func(t *testing.T) {
		env := newTestEnv()
		req := validRequest()
		req.ServiceIDs = nil

		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid start time is rejected", func(t *testing.T) {
		env := newTestEnv()
		req := validRequest()
		req.StartTime = "9:00"

		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
