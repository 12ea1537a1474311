package get_calendar_feed

import (
	"time"

	"github.com/m04kA/PJ-BookingService/internal/domain"
)

// Request модель запроса ленты календаря
type Request struct {
	ProductID   *int64     // Фильтр по продукту (опционально)
	WindowStart *time.Time // Начало окна отображения (опционально)
	WindowEnd   *time.Time // Конец окна отображения (опционально)
}

// Response модель ответа с событиями календаря
type Response struct {
	Events []domain.CalendarEvent
}
