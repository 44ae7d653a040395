package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/BB-BookingService/internal/api/handlers"
	"github.com/m04kA/BB-BookingService/internal/api/middleware"
	"github.com/m04kA/BB-BookingService/internal/domain"
	createBooking "github.com/m04kA/BB-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody      = "некорректное тело запроса"
	msgInvalidDate             = "некорректный формат даты записи, ожидается YYYY-MM-DD"
	msgMissingUserID           = "отсутствует ID пользователя"
	msgUserNotFound            = "пользователь не найден"
	msgNotCustomer             = "создавать записи могут только клиенты"
	msgShopNotFound            = "барбершоп не найден"
	msgInvalidServiceSelection = "выбранные услуги неизвестны или неактивны"
	msgShopClosed              = "барбершоп закрыт в выбранную дату"
	msgOutsideWorkingHours     = "запись не помещается в рабочие часы"
	msgSlotNotAvailable        = "выбранный временной слот недоступен"
	msgDateInPast              = "дата записи в прошлом"
	msgInvalidInput            = "некорректные входные данные"

	// Сообщения лимитов тарифа называют лимит и путь апгрейда
	msgDateTooFarFmt     = "запись возможна не более чем за %d дней вперед для тарифа %s, для расширения окна перейдите на тариф pro"
	msgMonthlyLimitFmt   = "достигнут месячный лимит %d записей для тарифа %s, для увеличения лимита перейдите на тариф pro"
	msgDateTooFarPro     = "запись возможна не более чем за %d дней вперед"
	msgMonthlyLimitPro   = "достигнут месячный лимит %d записей"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondUseCaseError(w, &req, userID, err)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, customer_id=%d, shop_id=%d",
		result.Booking.ID, userID, req.ShopID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// respondUseCaseError мапит ошибки use case на HTTP статусы
func (h *Handler) respondUseCaseError(w http.ResponseWriter, req *CreateBookingRequest, userID int64, err error) {
	var advanceErr *createBooking.AdvanceLimitError
	var monthlyErr *createBooking.MonthlyLimitError

	switch {
	case errors.Is(err, createBooking.ErrSlotNotAvailable):
		h.logger.Warn("POST /bookings - Slot not available: customer_id=%d, shop_id=%d", userID, req.ShopID)
		handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

	case errors.Is(err, createBooking.ErrUserNotFound):
		h.logger.Warn("POST /bookings - User not found: customer_id=%d", userID)
		handlers.RespondNotFound(w, msgUserNotFound)

	case errors.Is(err, createBooking.ErrNotCustomer):
		h.logger.Warn("POST /bookings - Not a customer: user_id=%d", userID)
		handlers.RespondForbidden(w, msgNotCustomer)

	case errors.Is(err, createBooking.ErrShopNotFound):
		h.logger.Warn("POST /bookings - Shop not found: shop_id=%d", req.ShopID)
		handlers.RespondNotFound(w, msgShopNotFound)

	case errors.Is(err, createBooking.ErrInvalidServiceSelection):
		h.logger.Warn("POST /bookings - Invalid service selection: customer_id=%d, shop_id=%d", userID, req.ShopID)
		handlers.RespondBadRequest(w, msgInvalidServiceSelection)

	case errors.Is(err, createBooking.ErrShopClosed):
		h.logger.Warn("POST /bookings - Shop closed: customer_id=%d, shop_id=%d", userID, req.ShopID)
		handlers.RespondBadRequest(w, msgShopClosed)

	case errors.Is(err, createBooking.ErrOutsideWorkingHours):
		h.logger.Warn("POST /bookings - Outside working hours: customer_id=%d, shop_id=%d", userID, req.ShopID)
		handlers.RespondBadRequest(w, msgOutsideWorkingHours)

	case errors.Is(err, createBooking.ErrDateInPast):
		h.logger.Warn("POST /bookings - Date in past: customer_id=%d, shop_id=%d", userID, req.ShopID)
		handlers.RespondBadRequest(w, msgDateInPast)

	case errors.As(err, &advanceErr):
		h.logger.Warn("POST /bookings - Date too far in future: customer_id=%d, shop_id=%d, plan=%s, days=%d",
			userID, req.ShopID, advanceErr.Plan, advanceErr.Days)
		handlers.RespondError(w, http.StatusUnprocessableEntity, advanceLimitMessage(advanceErr))

	case errors.As(err, &monthlyErr):
		h.logger.Warn("POST /bookings - Monthly limit reached: customer_id=%d, shop_id=%d, plan=%s, limit=%d",
			userID, req.ShopID, monthlyErr.Plan, monthlyErr.Limit)
		handlers.RespondError(w, http.StatusUnprocessableEntity, monthlyLimitMessage(monthlyErr))

	case errors.Is(err, createBooking.ErrInvalidInput):
		h.logger.Warn("POST /bookings - Invalid input: customer_id=%d, shop_id=%d: %v", userID, req.ShopID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("POST /bookings - Failed to create booking: customer_id=%d, shop_id=%d, error=%v",
			userID, req.ShopID, err)
		handlers.RespondInternalError(w)
	}
}

func advanceLimitMessage(e *createBooking.AdvanceLimitError) string {
	if e.Plan == domain.PlanPro {
		return fmt.Sprintf(msgDateTooFarPro, e.Days)
	}
	return fmt.Sprintf(msgDateTooFarFmt, e.Days, e.Plan)
}

func monthlyLimitMessage(e *createBooking.MonthlyLimitError) string {
	if e.Plan == domain.PlanPro {
		return fmt.Sprintf(msgMonthlyLimitPro, e.Limit)
	}
	return fmt.Sprintf(msgMonthlyLimitFmt, e.Limit, e.Plan)
}
