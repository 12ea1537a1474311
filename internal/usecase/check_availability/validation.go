package check_availability

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/PJ-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProductID <= 0 {
		return fmt.Errorf("%w: productID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	// Диапазон обязан быть корректным: end >= start
	if _, err := domain.DurationDays(req.StartDate, req.EndDate); err != nil {
		if errors.Is(err, domain.ErrInvalidRange) {
			return ErrInvalidRange
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// collectBlockedDates собирает объединение занятых дней конфликтующих бронирований
// Дни дедуплицируются и возвращаются по возрастанию
func collectBlockedDates(conflicts []*domain.Booking) []time.Time {
	seen := make(map[time.Time]struct{})
	dates := make([]time.Time, 0)

	for _, booking := range conflicts {
		for _, day := range domain.ExpandToDailyList(booking.StartDate, booking.EndDate) {
			if _, ok := seen[day]; ok {
				continue
			}
			seen[day] = struct{}{}
			dates = append(dates, day)
		}
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	return dates
}
