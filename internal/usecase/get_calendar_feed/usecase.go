package get_calendar_feed

import (
	"context"
	"fmt"

	"github.com/m04kA/PJ-BookingService/internal/domain"
)

// UseCase use case построения ленты событий для административного календаря
// Лента включает бронирования всех статусов: отмененные и завершенные
// отображаются своим цветом, а не скрываются
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case построения ленты календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendarFeed: product=%v, window=[%v, %v]", req.ProductID, req.WindowStart, req.WindowEnd)

	// 1. Валидация окна
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendarFeed: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирования: фильтр по продукту и пересечению с окном,
	// по возрастанию даты начала (порядок событий следует порядку бронирований)
	filter := domain.BookingsFilter{
		ProductID:       req.ProductID,
		StartDate:       req.WindowStart,
		EndDate:         req.WindowEnd,
		IncludeInactive: true,
		OrderByStartAsc: true,
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetCalendarFeed: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Проецируем бронирования в события
	// Конец события = end_date + 1 день: календарь трактует конец как
	// исключающую границу, модель данных - как включающую
	events := make([]domain.CalendarEvent, 0, len(bookings))
	for _, booking := range bookings {
		events = append(events, domain.NewCalendarEvent(booking))
	}

	uc.logger.Info("GetCalendarFeed: built %d events", len(events))

	return &Response{Events: events}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProductID != nil && *req.ProductID <= 0 {
		return fmt.Errorf("%w: productID must be positive", ErrInvalidInput)
	}

	if req.WindowStart != nil && req.WindowEnd != nil && req.WindowEnd.Before(*req.WindowStart) {
		return ErrInvalidWindow
	}

	return nil
}
