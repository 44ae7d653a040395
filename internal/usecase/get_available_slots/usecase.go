package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BB-BookingService/internal/domain"
	shopClient "github.com/m04kA/BB-BookingService/internal/integrations/shopservice"
	"github.com/m04kA/BB-BookingService/pkg/types"
)

// UseCase use case для получения доступных слотов для записи.
// Путь просмотра advisory: итог всегда перепроверяется транзакцией
// создания бронирования, поэтому здесь нет блокировок.
type UseCase struct {
	bookingRepo   BookingRepository
	shopClient    ShopServiceClient
	billingClient BillingClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	shopClient ShopServiceClient,
	billingClient BillingClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		shopClient:    shopClient,
		billingClient: billingClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: shop=%d, date=%s, services=%v",
		req.ShopID, req.Date.Format(domain.DateFormat), req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем барбершоп (часы работы + каталог услуг)
	shop, err := uc.shopClient.GetShop(ctx, req.ShopID)
	if err != nil {
		if errors.Is(err, shopClient.ErrShopNotFound) {
			uc.logger.Warn("GetAvailableSlots: shop id=%d not found", req.ShopID)
			return nil, ErrShopNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get shop id=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
	}

	// 4. Собираем длительность по выбранным услугам
	_, duration, err := resolveSelection(shop, req.ServiceIDs)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: service selection failed: %v", err)
		return nil, err
	}

	// 5. Даты вне достижимого окна не дают слотов: прошлое и всё, что дальше
	// окна записи тарифа владельца. Здесь это advisory-подсказка для UI,
	// авторитетная проверка повторяется при создании бронирования.
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return emptyResponse(req, duration), nil
	}

	limits := uc.resolveLimits(ctx, shop.OwnerUserID)
	if isBeyondAdvanceWindow(req.Date, now, limits.AdvanceBookingDays) {
		uc.logger.Info("GetAvailableSlots: date %s is beyond the %d-day advance window",
			req.Date.Format(domain.DateFormat), limits.AdvanceBookingDays)
		return emptyResponse(req, duration), nil
	}

	// 6. Рабочее окно дня; закрытый или некорректно настроенный день — ноль слотов
	hours, ok := shop.HoursFor(req.Date)
	if !ok {
		uc.logger.Info("GetAvailableSlots: shop id=%d has no schedule for %s", req.ShopID, req.Date.Format(domain.DateFormat))
		return emptyResponse(req, duration), nil
	}

	openTime, closeTime, ok := domain.DayWindow(hours.OpeningTime, hours.ClosingTime, hours.IsClosed)
	if !ok {
		uc.logger.Info("GetAvailableSlots: shop id=%d is closed on %s", req.ShopID, req.Date.Format(domain.DateFormat))
		return emptyResponse(req, duration), nil
	}

	// 7. Генерируем кандидатов с фиксированным шагом
	candidates := domain.GenerateSlots(openTime, closeTime, duration, domain.SlotStepMinutes)

	// 8. Получаем активные бронирования на эту дату
	filter := domain.ShopBookingsFilter{
		ShopID:          req.ShopID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Только активные бронирования
	}

	bookings, err := uc.bookingRepo.GetByShopWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 9. Разбиваем кандидатов на свободные и занятые
	available, booked := domain.PartitionSlots(candidates, duration, bookings)

	uc.logger.Info("GetAvailableSlots: shop=%d, date=%s: %d available, %d booked",
		req.ShopID, req.Date.Format(domain.DateFormat), len(available), len(booked))

	return &Response{
		Date:            req.Date,
		ShopID:          req.ShopID,
		DurationMinutes: duration,
		Available:       available,
		Booked:          booked,
	}, nil
}

// resolveLimits определяет лимиты тарифа владельца барбершопа.
// Отсутствующая подписка и недоступный BillingService дают лимиты starter.
func (uc *UseCase) resolveLimits(ctx context.Context, ownerUserID int64) domain.TierLimits {
	sub, err := uc.billingClient.GetSubscriptionWithGracefulDegradation(ctx, ownerUserID)
	if err != nil || sub == nil {
		return domain.LimitsForPlan(domain.PlanStarter, false)
	}
	return domain.LimitsForPlan(domain.PlanType(sub.PlanType), sub.IsActive())
}

func emptyResponse(req *Request, duration int) *Response {
	return &Response{
		Date:            req.Date,
		ShopID:          req.ShopID,
		DurationMinutes: duration,
		Available:       []types.TimeString{},
		Booked:          []types.TimeString{},
	}
}
