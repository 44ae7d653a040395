package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BB-BookingService/pkg/types"
)

func TestDayWindow(t *testing.T) {
	tests := []struct {
		name        string
		opening     string
		closing     string
		isClosed    bool
		wantOpen    types.TimeString
		wantClosing types.TimeString
		wantOK      bool
	}{
		{name: "regular day", opening: "09:00", closing: "18:00", wantOpen: "09:00", wantClosing: "18:00", wantOK: true},
		{name: "closed day", opening: "09:00", closing: "18:00", isClosed: true, wantOK: false},
		{name: "unparseable opening", opening: "morning", closing: "18:00", wantOK: false},
		{name: "unparseable closing", opening: "09:00", closing: "", wantOK: false},
		{name: "degenerate window", opening: "18:00", closing: "09:00", wantOK: false},
		{name: "zero width window", opening: "09:00", closing: "09:00", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open, closing, ok := DayWindow(tt.opening, tt.closing, tt.isClosed)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantOpen, open)
				assert.Equal(t, tt.wantClosing, closing)
			}
		})
	}
}

func TestGenerateSlots(t *testing.T) {
	t.Run("standard day with default duration", func(t *testing.T) {
		slots := GenerateSlots("09:00", "18:00", DefaultDisplayDurationMinutes, SlotStepMinutes)

		require.NotEmpty(t, slots)
		assert.Equal(t, types.TimeString("09:00"), slots[0])
		// Последний кандидат: 17:30 + 30 минут = ровно закрытие
		assert.Equal(t, types.TimeString("17:30"), slots[len(slots)-1])
		// (17:30 - 09:00) / 15 + 1
		assert.Len(t, slots, 35)
	})

	t.Run("last slot ends exactly at closing", func(t *testing.T) {
		slots := GenerateSlots("09:00", "18:00", 45, SlotStepMinutes)

		require.NotEmpty(t, slots)
		// 17:15 + 45 минут = 18:00, кандидат 17:30 уже не помещается
		assert.Equal(t, types.TimeString("17:15"), slots[len(slots)-1])
		assert.NotContains(t, slots, types.TimeString("17:30"))
	})

	t.Run("duration longer than window", func(t *testing.T) {
		slots := GenerateSlots("09:00", "10:00", 90, SlotStepMinutes)
		assert.Empty(t, slots)
	})

	t.Run("duration equal to window", func(t *testing.T) {
		slots := GenerateSlots("09:00", "10:00", 60, SlotStepMinutes)
		assert.Equal(t, []types.TimeString{"09:00"}, slots)
	})

	t.Run("slots are chronologically ordered", func(t *testing.T) {
		slots := GenerateSlots("10:00", "12:00", 30, SlotStepMinutes)
		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i-1].IsBefore(slots[i]))
		}
	})

	t.Run("invalid arguments give no slots", func(t *testing.T) {
		assert.Empty(t, GenerateSlots("09:00", "18:00", 0, SlotStepMinutes))
		assert.Empty(t, GenerateSlots("09:00", "18:00", 30, 0))
	})
}

func TestFitsWindow(t *testing.T) {
	tests := []struct {
		name     string
		start    types.TimeString
		duration int
		want     bool
	}{
		{name: "inside window", start: "10:00", duration: 30, want: true},
		{name: "starts at opening", start: "09:00", duration: 30, want: true},
		{name: "ends exactly at closing", start: "17:30", duration: 30, want: true},
		{name: "ends one minute past closing", start: "17:31", duration: 30, want: false},
		{name: "starts before opening", start: "08:59", duration: 30, want: false},
		{name: "runs past closing", start: "17:45", duration: 30, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FitsWindow("09:00", "18:00", tt.start, tt.duration))
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name      string
		aStart    types.TimeString
		aDuration int
		bStart    types.TimeString
		bDuration int
		want      bool
	}{
		{name: "identical intervals", aStart: "10:00", aDuration: 30, bStart: "10:00", bDuration: 30, want: true},
		{name: "partial overlap", aStart: "10:00", aDuration: 30, bStart: "10:15", bDuration: 30, want: true},
		{name: "a contains b", aStart: "10:00", aDuration: 120, bStart: "10:30", bDuration: 30, want: true},
		{name: "back to back", aStart: "10:00", aDuration: 30, bStart: "10:30", bDuration: 30, want: false},
		{name: "back to back reversed", aStart: "10:30", aDuration: 30, bStart: "10:00", bDuration: 30, want: false},
		{name: "disjoint", aStart: "09:00", aDuration: 30, bStart: "12:00", bDuration: 30, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aDuration, tt.bStart, tt.bDuration))
			// Пересечение симметрично
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bDuration, tt.aStart, tt.aDuration))
		})
	}
}

func TestHasConflict(t *testing.T) {
	bookings := []*Booking{
		{StartTime: "10:00", TotalDurationMinutes: 30, Status: StatusConfirmed},
		{StartTime: "14:00", TotalDurationMinutes: 60, Status: StatusPending},
		{StartTime: "11:00", TotalDurationMinutes: 30, Status: StatusCancelled},
	}

	assert.True(t, HasConflict("10:15", 30, bookings))
	assert.True(t, HasConflict("13:30", 45, bookings))
	assert.False(t, HasConflict("12:00", 30, bookings))

	// Отменённое бронирование слот не занимает
	assert.False(t, HasConflict("11:00", 30, bookings))
}

func TestPartitionSlots(t *testing.T) {
	t.Run("one long booking blocks several candidates", func(t *testing.T) {
		candidates := GenerateSlots("09:00", "18:00", 45, SlotStepMinutes)
		bookings := []*Booking{
			{StartTime: "10:00", TotalDurationMinutes: 30, Status: StatusConfirmed},
		}

		available, booked := PartitionSlots(candidates, 45, bookings)

		// 45-минутный кандидат конфликтует с [10:00, 10:30), если начинается
		// в (09:15, 10:30)
		assert.Equal(t, []types.TimeString{"09:30", "09:45", "10:00", "10:15"}, booked)
		assert.Contains(t, available, types.TimeString("09:15"))
		assert.Contains(t, available, types.TimeString("10:30"))

		// Разбиение полное и непересекающееся
		assert.Len(t, available, len(candidates)-len(booked))
		for _, slot := range booked {
			assert.NotContains(t, available, slot)
		}
	})

	t.Run("cancelled bookings do not block slots", func(t *testing.T) {
		candidates := GenerateSlots("09:00", "12:00", 30, SlotStepMinutes)
		bookings := []*Booking{
			{StartTime: "10:00", TotalDurationMinutes: 60, Status: StatusCancelled},
		}

		available, booked := PartitionSlots(candidates, 30, bookings)
		assert.Empty(t, booked)
		assert.Len(t, available, len(candidates))
	})

	t.Run("empty candidates", func(t *testing.T) {
		available, booked := PartitionSlots(nil, 30, nil)
		assert.Empty(t, available)
		assert.Empty(t, booked)
	})
}
