package domain

// Business validation constants
const (
	MaxCustomerNameLength = 200
	MaxNotesLength        = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses список статусов, резервирующих диапазон дат
// Используется при проверке доступности продукта
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// AllStatuses список всех допустимых статусов бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// IsValidStatus проверяет, что строка является допустимым статусом
func IsValidStatus(s BookingStatus) bool {
	for _, valid := range AllStatuses {
		if s == valid {
			return true
		}
	}
	return false
}
