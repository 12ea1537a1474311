package get_calendar_feed

import "errors"

var (
	// ErrInvalidWindow возвращается, когда конец окна раньше его начала
	ErrInvalidWindow = errors.New("get_calendar_feed: window end is before window start")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar_feed: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar_feed: internal error")
)
