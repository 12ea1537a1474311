package check_availability

import "time"

// Request модель запроса проверки доступности
type Request struct {
	ProductID        int64     // ID продукта
	StartDate        time.Time // Первый день запрашиваемого диапазона
	EndDate          time.Time // Последний день запрашиваемого диапазона
	ExcludeBookingID *int64    // Бронирование, исключаемое из проверки (при редактировании)
}

// Response модель ответа проверки доступности
type Response struct {
	ProductID int64
	StartDate time.Time
	EndDate   time.Time
	Available bool

	// Занятые дни всех конфликтующих бронирований (объединение, по возрастанию)
	// Пустой список, если диапазон свободен
	BlockedDates []time.Time
}
