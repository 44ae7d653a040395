package get_available_slots

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/BB-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/BB-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string   `json:"date"`
	ShopID          int64    `json:"shopId"`
	DurationMinutes int      `json:"durationMinutes"`
	Available       []string `json:"available"`
	Booked          []string `json:"booked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	available := make([]string, len(resp.Available))
	for i, slot := range resp.Available {
		available[i] = slot.String()
	}

	booked := make([]string, len(resp.Booked))
	for i, slot := range resp.Booked {
		booked[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ShopID:          resp.ShopID,
		DurationMinutes: resp.DurationMinutes,
		Available:       available,
		Booked:          booked,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(shopID int64, dateStr, serviceIDsStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	// Парсим список услуг: serviceIds=1,2,3 (опционально)
	var serviceIDs []int64
	if serviceIDsStr != "" {
		parts := strings.Split(serviceIDsStr, ",")
		serviceIDs = make([]int64, 0, len(parts))
		for _, part := range parts {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return nil, err
			}
			serviceIDs = append(serviceIDs, id)
		}
	}

	return &getAvailableSlots.Request{
		ShopID:     shopID,
		Date:       date,
		ServiceIDs: serviceIDs,
	}, nil
}
