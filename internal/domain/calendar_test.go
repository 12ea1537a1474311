package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusColor(t *testing.T) {
	assert.Equal(t, ColorPending, StatusColor(StatusPending))
	assert.Equal(t, ColorConfirmed, StatusColor(StatusConfirmed))
	assert.Equal(t, ColorCancelled, StatusColor(StatusCancelled))
	assert.Equal(t, ColorCompleted, StatusColor(StatusCompleted))
	assert.Equal(t, ColorDefault, StatusColor(BookingStatus("unknown")))
}

func TestNewCalendarEvent(t *testing.T) {
	phone := "+7 900 000-00-00"
	booking := &Booking{
		ID:            42,
		ProductID:     7,
		ProductTitle:  "Палатка Husky",
		CustomerName:  "Иван Петров",
		CustomerEmail: "ivan@example.com",
		CustomerPhone: &phone,
		StartDate:     date(2025, 7, 10),
		EndDate:       date(2025, 7, 12),
		TotalPrice:    450,
		Status:        StatusConfirmed,
	}

	event := NewCalendarEvent(booking)

	assert.Equal(t, int64(42), event.ID)
	assert.Equal(t, "Иван Петров - Палатка Husky", event.Title)
	assert.Equal(t, ColorConfirmed, event.Color)
	assert.Equal(t, date(2025, 7, 10), event.Start)
	// Конец эксклюзивный: последний занятый день 12.07, граница 13.07
	assert.Equal(t, date(2025, 7, 13), event.End)

	assert.Equal(t, int64(7), event.ExtendedProps.ProductID)
	assert.Equal(t, StatusConfirmed, event.ExtendedProps.Status)
	assert.Equal(t, 3, event.ExtendedProps.DurationDays)
	assert.Equal(t, &phone, event.ExtendedProps.CustomerPhone)
}

func TestNewCalendarEvent_SingleDayBooking(t *testing.T) {
	booking := &Booking{
		ID:        1,
		StartDate: date(2025, 7, 10),
		EndDate:   date(2025, 7, 10),
		Status:    StatusPending,
	}

	event := NewCalendarEvent(booking)

	assert.Equal(t, date(2025, 7, 10), event.Start)
	assert.Equal(t, date(2025, 7, 11), event.End)
	assert.Equal(t, ColorPending, event.Color)
}
