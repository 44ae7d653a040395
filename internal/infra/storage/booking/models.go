package booking

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/BB-BookingService/internal/domain"
)

// serviceSnapshotRow формат хранения одной услуги в JSONB-колонке services.
// Снимок неизменяем: правки каталога барбершопа не трогают историю бронирований.
type serviceSnapshotRow struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

// encodeServices сериализует снимок услуг для записи в JSONB
func encodeServices(services []domain.ServiceSnapshot) ([]byte, error) {
	rows := make([]serviceSnapshotRow, len(services))
	for i, s := range services {
		rows[i] = serviceSnapshotRow{
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		}
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeServices, err)
	}
	return data, nil
}

// decodeServices десериализует снимок услуг из JSONB
func decodeServices(data []byte) ([]domain.ServiceSnapshot, error) {
	var rows []serviceSnapshotRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeServices, err)
	}

	services := make([]domain.ServiceSnapshot, len(rows))
	for i, r := range rows {
		services[i] = domain.ServiceSnapshot{
			Name:            r.Name,
			Price:           r.Price,
			DurationMinutes: r.DurationMinutes,
		}
	}
	return services, nil
}
