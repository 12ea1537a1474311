package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	ProductID     int64     // ID продукта
	CustomerName  string    // Имя клиента
	CustomerEmail string    // Email клиента
	CustomerPhone *string   // Телефон клиента (опционально)
	StartDate     time.Time // Первый день аренды (включительно)
	EndDate       time.Time // Последний день аренды (включительно)
	Notes         *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	ProductID     int64
	ProductTitle  string
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	StartDate     time.Time
	EndDate       time.Time
	DurationDays  int     // Инклюзивное количество дней аренды
	TotalPrice    float64 // 0 = цена по запросу
	Status        string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
