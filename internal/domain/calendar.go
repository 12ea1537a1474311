package domain

import "time"

// Event colors keyed by booking status (admin calendar widget)
const (
	ColorPending   = "#f59e0b" // amber
	ColorConfirmed = "#10b981" // green
	ColorCancelled = "#ef4444" // red
	ColorCompleted = "#6b7280" // gray
	ColorDefault   = "#3b82f6" // blue, неизвестный статус
)

// CalendarEvent display-oriented projection of a booking
// End is EXCLUSIVE: календарные виджеты трактуют конец как исключающую границу,
// поэтому End = EndDate + 1 день. Это поправка слоя отображения, модель данных
// остается инклюзивной
type CalendarEvent struct {
	ID    int64
	Title string // "{customer_name} - {product_title}"
	Start time.Time
	End   time.Time
	Color string

	// Полные данные бронирования для отображения на клиенте
	ExtendedProps CalendarEventProps
}

// CalendarEventProps extended-properties bag carried by a calendar event
type CalendarEventProps struct {
	ProductID     int64
	ProductTitle  string
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Status        BookingStatus
	TotalPrice    float64
	DurationDays  int
	Notes         *string
}

// StatusColor возвращает цвет события для статуса бронирования
func StatusColor(status BookingStatus) string {
	switch status {
	case StatusPending:
		return ColorPending
	case StatusConfirmed:
		return ColorConfirmed
	case StatusCancelled:
		return ColorCancelled
	case StatusCompleted:
		return ColorCompleted
	default:
		return ColorDefault
	}
}

// NewCalendarEvent проецирует бронирование в событие календаря
func NewCalendarEvent(b *Booking) CalendarEvent {
	return CalendarEvent{
		ID:    b.ID,
		Title: b.CustomerName + " - " + b.ProductTitle,
		Start: DateOnly(b.StartDate),
		// Инклюзивный конец диапазона -> эксклюзивная граница для календаря
		End:   DateOnly(b.EndDate).AddDate(0, 0, 1),
		Color: StatusColor(b.Status),
		ExtendedProps: CalendarEventProps{
			ProductID:     b.ProductID,
			ProductTitle:  b.ProductTitle,
			CustomerName:  b.CustomerName,
			CustomerEmail: b.CustomerEmail,
			CustomerPhone: b.CustomerPhone,
			Status:        b.Status,
			TotalPrice:    b.TotalPrice,
			DurationDays:  b.DurationDays(),
			Notes:         b.Notes,
		},
	}
}
