package get_available_slots

import (
	"time"

	"github.com/m04kA/BB-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ShopID     int64     // ID барбершопа
	Date       time.Time // Дата для получения слотов (без времени)
	ServiceIDs []int64   // Выбранные услуги; пусто - показ с длительностью по умолчанию
}

// Response модель ответа со списками свободных и занятых слотов.
// Объединение Available и Booked — это в точности все легальные кандидаты
// на запись данной длительности в этот день; списки не пересекаются.
type Response struct {
	Date            time.Time          // Дата, на которую запрашивались слоты
	ShopID          int64              // ID барбершопа
	DurationMinutes int                // Длительность, для которой считались слоты
	Available       []types.TimeString // Свободные времена начала, по возрастанию
	Booked          []types.TimeString // Занятые времена начала, по возрастанию
}
