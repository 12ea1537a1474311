package get_calendar_feed

import (
	"github.com/m04kA/PJ-BookingService/internal/domain"
	getCalendarFeed "github.com/m04kA/PJ-BookingService/internal/usecase/get_calendar_feed"
)

// CalendarEventResponse событие календаря в формате fullcalendar
type CalendarEventResponse struct {
	ID            int64              `json:"id"`
	Title         string             `json:"title"`
	Start         string             `json:"start"` // Первый занятый день
	End           string             `json:"end"`   // Эксклюзивная граница: день ПОСЛЕ последнего занятого
	Color         string             `json:"color"`
	ExtendedProps EventPropsResponse `json:"extendedProps"`
}

// EventPropsResponse полные данные бронирования внутри события
type EventPropsResponse struct {
	ProductID     int64   `json:"productId"`
	ProductTitle  string  `json:"productTitle"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Status        string  `json:"status"`
	TotalPrice    float64 `json:"totalPrice"`
	DurationDays  int     `json:"durationDays"`
	Notes         *string `json:"notes,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendarFeed.Response) []CalendarEventResponse {
	events := make([]CalendarEventResponse, len(resp.Events))
	for i, e := range resp.Events {
		events[i] = CalendarEventResponse{
			ID:    e.ID,
			Title: e.Title,
			Start: e.Start.Format(domain.DateFormat),
			End:   e.End.Format(domain.DateFormat),
			Color: e.Color,
			ExtendedProps: EventPropsResponse{
				ProductID:     e.ExtendedProps.ProductID,
				ProductTitle:  e.ExtendedProps.ProductTitle,
				CustomerName:  e.ExtendedProps.CustomerName,
				CustomerEmail: e.ExtendedProps.CustomerEmail,
				CustomerPhone: e.ExtendedProps.CustomerPhone,
				Status:        string(e.ExtendedProps.Status),
				TotalPrice:    e.ExtendedProps.TotalPrice,
				DurationDays:  e.ExtendedProps.DurationDays,
				Notes:         e.ExtendedProps.Notes,
			},
		}
	}
	return events
}
