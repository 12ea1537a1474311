package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a rental reservation of one product for an inclusive date range
type Booking struct {
	ID        int64
	ProductID int64

	CustomerName  string
	CustomerEmail string
	CustomerPhone *string

	StartDate  time.Time // Первый день аренды (включительно)
	EndDate    time.Time // Последний день аренды (включительно)
	TotalPrice float64   // 0 = цена по запросу
	Status     BookingStatus
	Notes      *string

	// Denormalized data for history
	ProductTitle string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the booking reserves its date range
// Pending bookings block too: a live customer intent must not be double-sold
// before staff disposition
func (b *Booking) IsBlocking() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// DurationDays returns the inclusive day count of the booked range
func (b *Booking) DurationDays() int {
	days, err := DurationDays(b.StartDate, b.EndDate)
	if err != nil {
		// Инвариант end_date >= start_date обеспечивается при создании и обновлении
		return 0
	}
	return days
}

// Overlaps reports whether the booking's range overlaps [start, end]
func (b *Booking) Overlaps(start, end time.Time) bool {
	return RangesOverlap(b.StartDate, b.EndDate, start, end)
}

// BookingsFilter фильтр для получения бронирований продукта
type BookingsFilter struct {
	ProductID       *int64         // Фильтр по продукту (опционально, если nil - все продукты)
	StartDate       *time.Time     // Начало окна (опционально, если nil - без ограничения)
	EndDate         *time.Time     // Конец окна (опционально, если nil - без ограничения)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли неблокирующие бронирования (отмененные, завершенные)
	OrderByStartAsc bool           // true - по дате начала (для календаря), false - сначала новые
}
