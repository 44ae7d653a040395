package get_shop_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/BB-BookingService/internal/domain"
	"github.com/m04kA/BB-BookingService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из query параметров.
// Поддерживаются date (один день), startDate/endDate (период),
// status и includeInactive.
func ToServiceRequest(userID, shopID int64, query url.Values) (*models.GetShopBookingsRequest, error) {
	req := &models.GetShopBookingsRequest{
		UserID: userID,
		ShopID: shopID,
	}

	// date - шорткат для периода из одного дня
	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	} else {
		if startStr := query.Get("startDate"); startStr != "" {
			start, err := time.Parse(domain.DateFormat, startStr)
			if err != nil {
				return nil, err
			}
			req.StartDate = &start
		}
		if endStr := query.Get("endDate"); endStr != "" {
			end, err := time.Parse(domain.DateFormat, endStr)
			if err != nil {
				return nil, err
			}
			req.EndDate = &end
		}
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
