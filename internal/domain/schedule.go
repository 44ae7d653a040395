package domain

import (
	"github.com/m04kA/BB-BookingService/pkg/types"
)

// Расчёт слотов используется двумя путями: запросом доступных слотов
// (advisory, для отрисовки выбора времени) и транзакцией создания
// бронирования (authoritative recheck). Обе стороны обязаны звать
// функции этого файла, чтобы расписание и проверка конфликтов
// не могли разойтись.

// DayWindow возвращает рабочее окно дня барбершопа.
// ok=false, когда день закрыт, время не парсится или окно вырождено
// (открытие не раньше закрытия) — такой день не даёт ни одного слота.
func DayWindow(openingTime, closingTime string, isClosed bool) (open, closing types.TimeString, ok bool) {
	if isClosed {
		return "", "", false
	}

	open, err := types.NewTimeStringFromString(openingTime)
	if err != nil {
		return "", "", false
	}

	closing, err = types.NewTimeStringFromString(closingTime)
	if err != nil {
		return "", "", false
	}

	if !open.IsBefore(closing) {
		return "", "", false
	}

	return open, closing, true
}

// GenerateSlots генерирует упорядоченный список времён начала записи
// длительностью durationMinutes в окне [open, close).
// Кандидаты идут с шагом stepMinutes от open; последний кандидат —
// тот, для которого start + durationMinutes <= close (включительно).
// Если длительность больше окна, слотов нет — возвращается пустой список.
func GenerateSlots(open, closing types.TimeString, durationMinutes, stepMinutes int) []types.TimeString {
	if durationMinutes <= 0 || stepMinutes <= 0 {
		return []types.TimeString{}
	}

	openMin, err := open.Minutes()
	if err != nil {
		return []types.TimeString{}
	}
	closeMin, err := closing.Minutes()
	if err != nil {
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, 0)
	for start := openMin; start+durationMinutes <= closeMin; start += stepMinutes {
		slot, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}

	return slots
}

// FitsWindow проверяет, что интервал [start, start+durationMinutes)
// целиком лежит в рабочем окне [open, close).
// Верхняя граница включительная: запись, заканчивающаяся ровно в close, допустима.
func FitsWindow(open, closing, start types.TimeString, durationMinutes int) bool {
	if start.IsBefore(open) {
		return false
	}

	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}

	return !end.IsAfter(closing)
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов
// [aStart, aStart+aDuration) и [bStart, bStart+bDuration).
// Используются строгие неравенства: интервалы, граничащие впритык
// (один заканчивается ровно там, где начинается другой), не пересекаются.
func Overlaps(aStart types.TimeString, aDurationMinutes int, bStart types.TimeString, bDurationMinutes int) bool {
	aEnd, err := aStart.AddMinutes(aDurationMinutes)
	if err != nil {
		return false
	}

	bEnd, err := bStart.AddMinutes(bDurationMinutes)
	if err != nil {
		return false
	}

	return aStart.IsBefore(bEnd) && aEnd.IsAfter(bStart)
}

// HasConflict проверяет, пересекается ли интервал [start, start+durationMinutes)
// хотя бы с одним активным бронированием.
// Одно длинное бронирование закрывает сразу несколько коротких кандидатов.
func HasConflict(start types.TimeString, durationMinutes int, bookings []*Booking) bool {
	for _, booking := range bookings {
		// Отменённые бронирования слот не занимают
		if !booking.IsActive() {
			continue
		}

		if Overlaps(start, durationMinutes, booking.StartTime, booking.TotalDurationMinutes) {
			return true
		}
	}
	return false
}

// PartitionSlots разбивает кандидатов на свободные и занятые.
// Кандидат занят, если его интервал пересекается с любым активным
// бронированием. Порядок кандидатов (хронологический) сохраняется,
// объединение двух списков равно исходному списку кандидатов.
func PartitionSlots(candidates []types.TimeString, durationMinutes int, bookings []*Booking) (available, booked []types.TimeString) {
	available = make([]types.TimeString, 0, len(candidates))
	booked = make([]types.TimeString, 0)

	for _, slot := range candidates {
		if HasConflict(slot, durationMinutes, bookings) {
			booked = append(booked, slot)
		} else {
			available = append(available, slot)
		}
	}

	return available, booked
}
