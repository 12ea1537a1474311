package cart

import "errors"

var (
	// ErrProductNotFound возвращается, когда продукт не найден или неактивен
	ErrProductNotFound = errors.New("cart: product not found")

	// ErrLineNotFound возвращается, когда позиция корзины не найдена
	ErrLineNotFound = errors.New("cart: line item not found")

	// ErrInvalidRange возвращается, когда дата окончания раньше даты начала
	ErrInvalidRange = errors.New("cart: end date is before start date")

	// ErrBookingConflict возвращается, когда запрошенный диапазон занят
	ErrBookingConflict = errors.New("cart: date range is already booked")

	// ErrEmptyCart возвращается при оформлении пустой корзины
	ErrEmptyCart = errors.New("cart: cart is empty")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cart: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cart: internal error")
)
