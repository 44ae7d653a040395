package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BB-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/BB-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidShopID           = "некорректный ID барбершопа"
	msgMissingDate             = "параметр date обязателен"
	msgInvalidQuery            = "некорректные параметры запроса, ожидается date=YYYY-MM-DD и serviceIds=1,2"
	msgShopNotFound            = "барбершоп не найден"
	msgInvalidServiceSelection = "выбранные услуги неизвестны или неактивны"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/available-slots?date=YYYY-MM-DD&serviceIds=1,2
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем shopId из URL
	vars := mux.Vars(r)
	shopID, err := strconv.ParseInt(vars["shopId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /shops/{id}/available-slots - Invalid shop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	query := r.URL.Query()
	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /shops/{id}/available-slots - Missing date: shop_id=%d", shopID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(shopID, dateStr, query.Get("serviceIds"))
	if err != nil {
		h.logger.Warn("GET /shops/{id}/available-slots - Failed to parse query: shop_id=%d, error=%v", shopID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrShopNotFound):
			h.logger.Warn("GET /shops/{id}/available-slots - Shop not found: shop_id=%d", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidServiceSelection):
			h.logger.Warn("GET /shops/{id}/available-slots - Invalid service selection: shop_id=%d", shopID)
			handlers.RespondBadRequest(w, msgInvalidServiceSelection)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /shops/{id}/available-slots - Invalid input: shop_id=%d: %v", shopID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /shops/{id}/available-slots - Failed to get slots: shop_id=%d, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /shops/{id}/available-slots - Slots retrieved: shop_id=%d, date=%s, available=%d, booked=%d",
		shopID, dateStr, len(response.Available), len(response.Booked))
	handlers.RespondJSON(w, http.StatusOK, response)
}
