package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot generation constants
const (
	// SlotStepMinutes шаг генерации слотов. Кандидаты начала записи идут с
	// фиксированным шагом 15 минут независимо от длительности услуг, чтобы
	// клиент мог выбрать время без "дыр" в расписании барбершопа.
	SlotStepMinutes = 15

	// DefaultDisplayDurationMinutes длительность, используемая для показа
	// слотов, когда клиент ещё не выбрал ни одной услуги
	DefaultDisplayDurationMinutes = 30
)

// Business validation constants
const (
	MinRating      = 1
	MaxRating      = 5
	MaxNotesLength = 500

	MaxCancellationReasonLength = 500
)

// Subscription plan limits.
// Лимиты тарифов владельца барбершопа: окно записи вперёд (в днях)
// и количество бронирований в календарный месяц.
const (
	StarterAdvanceBookingDays  = 7
	StarterMonthlyBookingLimit = 100

	ProAdvanceBookingDays  = 30
	ProMonthlyBookingLimit = 500
)

// InactiveStatuses список статусов, не занимающих слот в расписании.
// Отменённое бронирование хранится как строка со статусом cancelled,
// а не удаляется физически, поэтому все запросы ёмкости фильтруют по статусу.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих слот в расписании
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
