package shopservice

import "time"

// Shop модель барбершопа из ShopService.
// Часы работы и каталог услуг принадлежат ShopService и редактируются
// только через него; для сервиса бронирований это read-only данные.
type Shop struct {
	ID          int64          `json:"id"`
	OwnerUserID int64          `json:"owner_user_id"`
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	Phone       *string        `json:"phone,omitempty"`
	Description *string        `json:"description,omitempty"`
	Deployed    bool           `json:"deployed"`
	Services    []Service      `json:"services"`
	OpeningHours []OpeningHours `json:"opening_hours"`
}

// Service услуга из каталога барбершопа.
// Услуги адресуются стабильным идентификатором, который ShopService
// присваивает при создании; позиция в списке ничего не значит.
type Service struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	IsActive        bool    `json:"is_active"`
}

// OpeningHours расписание работы барбершопа на один день недели.
// Не более одной записи на каждый dayOfWeek (0 = воскресенье ... 6 = суббота).
type OpeningHours struct {
	DayOfWeek   int    `json:"day_of_week"`
	OpeningTime string `json:"opening_time"` // "HH:MM"
	ClosingTime string `json:"closing_time"` // "HH:MM"
	IsClosed    bool   `json:"is_closed"`
}

// HoursFor возвращает расписание на день недели указанной даты.
// ok=false, если записи для этого дня нет — барбершоп в этот день не работает.
func (s *Shop) HoursFor(date time.Time) (OpeningHours, bool) {
	dayOfWeek := int(date.Weekday())
	for _, h := range s.OpeningHours {
		if h.DayOfWeek == dayOfWeek {
			return h, true
		}
	}
	return OpeningHours{}, false
}

// ActiveServiceByID ищет активную услугу по идентификатору.
// Неактивные услуги недоступны для выбора клиентом.
func (s *Shop) ActiveServiceByID(serviceID int64) (*Service, bool) {
	for i := range s.Services {
		if s.Services[i].ID == serviceID && s.Services[i].IsActive {
			return &s.Services[i], true
		}
	}
	return nil, false
}

// ErrorResponse модель ошибки от ShopService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
