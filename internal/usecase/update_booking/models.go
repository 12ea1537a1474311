package update_booking

import "time"

// Request модель запроса на обновление бронирования
// Все поля кроме BookingID опциональны: nil означает "не менять"
type Request struct {
	BookingID int64
	StartDate *time.Time // Новый первый день аренды
	EndDate   *time.Time // Новый последний день аренды
	Status    *string    // Новый статус
	Notes     *string    // Новые заметки
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID            int64
	ProductID     int64
	ProductTitle  string
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	StartDate     time.Time
	EndDate       time.Time
	DurationDays  int
	TotalPrice    float64
	Status        string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
