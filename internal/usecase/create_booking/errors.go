package create_booking

import "errors"

var (
	// ErrProductNotFound возвращается, когда продукт не найден или неактивен
	ErrProductNotFound = errors.New("create_booking: product not found")

	// ErrInvalidRange возвращается, когда дата окончания раньше даты начала
	ErrInvalidRange = errors.New("create_booking: end date is before start date")

	// ErrBookingConflict возвращается, когда диапазон дат уже занят
	// блокирующим бронированием (pending или confirmed)
	ErrBookingConflict = errors.New("create_booking: date range is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
