package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrProductNotFound возвращается, когда продукт бронирования не найден или неактивен
	ErrProductNotFound = errors.New("update_booking: product not found")

	// ErrInvalidRange возвращается, когда новая дата окончания раньше даты начала
	ErrInvalidRange = errors.New("update_booking: end date is before start date")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("update_booking: invalid booking status")

	// ErrBookingConflict возвращается, когда новый диапазон дат занят другим
	// блокирующим бронированием, либо когда возврат бронирования в блокирующий
	// статус снова занял бы уже занятый слот
	ErrBookingConflict = errors.New("update_booking: date range is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
