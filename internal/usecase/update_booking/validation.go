package update_booking

import (
	"fmt"

	"github.com/m04kA/PJ-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Согласованность пары дат проверяется внутри транзакции,
// когда известны текущие значения бронирования
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.StartDate == nil && req.EndDate == nil && req.Status == nil && req.Notes == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}
