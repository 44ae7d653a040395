package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BB-BookingService/internal/domain"
	billingClient "github.com/m04kA/BB-BookingService/internal/integrations/billing"
	shopClient "github.com/m04kA/BB-BookingService/internal/integrations/shopservice"
	userClient "github.com/m04kA/BB-BookingService/internal/integrations/userservice"
)

// UseCase use case для создания бронирования.
// Все проверки занятости и лимитов выполняются внутри serializable
// транзакции: две конкурентные попытки занять пересекающиеся слоты
// не могут закоммититься обе.
type UseCase struct {
	bookingRepo   BookingRepository
	txManager     TransactionManager
	userClient    UserServiceClient
	shopClient    ShopServiceClient
	billingClient BillingClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	userClient UserServiceClient,
	shopClient ShopServiceClient,
	billingClient BillingClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		txManager:     txManager,
		userClient:    userClient,
		shopClient:    shopClient,
		billingClient: billingClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, shop=%d, date=%s, start=%s",
		req.CustomerID, req.ShopID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем пользователя: бронирование создает только клиент
	user, err := uc.userClient.GetUser(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.CustomerID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if !user.IsCustomer() {
		uc.logger.Warn("CreateBooking: user id=%d has role %s, only customers can book", user.ID, user.Role)
		return nil, ErrNotCustomer
	}

	// 4. Получаем барбершоп (часы работы + каталог услуг)
	shop, err := uc.shopClient.GetShop(ctx, req.ShopID)
	if err != nil {
		if errors.Is(err, shopClient.ErrShopNotFound) {
			uc.logger.Warn("CreateBooking: shop id=%d not found", req.ShopID)
			return nil, ErrShopNotFound
		}
		uc.logger.Error("CreateBooking: failed to get shop id=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
	}

	// 5. Снимок выбранных услуг: имя, цена и длительность фиксируются сейчас
	snapshot, err := resolveServiceSelection(shop, req.ServiceIDs)
	if err != nil {
		uc.logger.Warn("CreateBooking: service selection failed: %v", err)
		return nil, err
	}

	totalPrice, totalDuration := domain.SnapshotTotals(snapshot)
	if totalDuration <= 0 {
		uc.logger.Warn("CreateBooking: selected services have zero total duration")
		return nil, fmt.Errorf("%w: selected services have zero total duration", ErrInvalidServiceSelection)
	}

	// 6. Дата не в прошлом
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 7. Лимиты тарифа владельца барбершопа
	plan, limits := uc.resolveLimits(ctx, shop.OwnerUserID)

	var created *domain.Booking

	// 8. Проверки занятости и лимитов вместе со вставкой - в одной
	// serializable транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Окно записи тарифа
		if isBeyondAdvanceWindow(req.Date, now, limits.AdvanceBookingDays) {
			return &AdvanceLimitError{Plan: plan, Days: limits.AdvanceBookingDays}
		}

		// 8.2. Месячный лимит бронирований: считаются активные записи
		// текущего календарного месяца
		monthStart, monthEnd := domain.MonthBounds(now)
		count, err := uc.bookingRepo.CountActiveInPeriod(txCtx, req.ShopID, monthStart, monthEnd)
		if err != nil {
			return fmt.Errorf("%w: failed to count bookings: %w", ErrInternal, err)
		}
		if count >= limits.MonthlyBookingLimit {
			return &MonthlyLimitError{Plan: plan, Limit: limits.MonthlyBookingLimit}
		}

		// 8.3. Рабочее окно дня
		hours, ok := shop.HoursFor(req.Date)
		if !ok {
			return ErrShopClosed
		}
		openTime, closeTime, ok := domain.DayWindow(hours.OpeningTime, hours.ClosingTime, hours.IsClosed)
		if !ok {
			return ErrShopClosed
		}

		// 8.4. Запись целиком помещается в рабочее окно
		if !domain.FitsWindow(openTime, closeTime, req.StartTime, totalDuration) {
			return ErrOutsideWorkingHours
		}

		// 8.5. Активные бронирования дня под блокировкой - конфликт слотов
		filter := domain.ShopBookingsFilter{
			ShopID:          req.ShopID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}
		bookings, err := uc.bookingRepo.GetByShopWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}
		if domain.HasConflict(req.StartTime, totalDuration, bookings) {
			return ErrSlotNotAvailable
		}

		// 8.6. Создаем бронирование в статусе pending
		booking := &domain.Booking{
			CustomerID:           req.CustomerID,
			ShopID:               req.ShopID,
			Services:             snapshot,
			AppointmentDate:      req.Date,
			StartTime:            req.StartTime,
			TotalDurationMinutes: totalDuration,
			TotalPrice:           totalPrice,
			Status:               domain.StatusPending,
			Notes:                req.Notes,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: customer=%d, shop=%d: %v", req.CustomerID, req.ShopID, err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d, customer=%d, shop=%d, date=%s, start=%s",
		created.ID, created.CustomerID, created.ShopID,
		created.AppointmentDate.Format(domain.DateFormat), created.StartTime)

	return &Response{Booking: created}, nil
}

// resolveLimits определяет тариф и лимиты владельца барбершопа.
// Отсутствующая подписка и недоступный BillingService дают лимиты starter.
func (uc *UseCase) resolveLimits(ctx context.Context, ownerUserID int64) (domain.PlanType, domain.TierLimits) {
	sub, err := uc.billingClient.GetSubscriptionWithGracefulDegradation(ctx, ownerUserID)
	if err != nil || sub == nil {
		if err != nil && !errors.Is(err, billingClient.ErrSubscriptionNotFound) {
			uc.logger.Warn("CreateBooking: billing degraded for owner=%d, falling back to starter limits: %v", ownerUserID, err)
		}
		return domain.PlanStarter, domain.LimitsForPlan(domain.PlanStarter, false)
	}

	plan := domain.PlanType(sub.PlanType)
	if !sub.IsActive() {
		// Неактивная подписка опускает лимиты до starter
		return domain.PlanStarter, domain.LimitsForPlan(domain.PlanStarter, false)
	}
	return plan, domain.LimitsForPlan(plan, true)
}
