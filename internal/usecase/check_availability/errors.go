package check_availability

import "errors"

var (
	// ErrProductNotFound возвращается, когда продукт не найден или неактивен
	ErrProductNotFound = errors.New("check_availability: product not found")

	// ErrInvalidRange возвращается, когда дата окончания раньше даты начала
	ErrInvalidRange = errors.New("check_availability: end date is before start date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
