package models

import (
	"errors"
	"time"

	"github.com/m04kA/PJ-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetProductBookingsRequest запрос на получение бронирований продукта
type GetProductBookingsRequest struct {
	ProductID       int64      `json:"productId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало окна (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец окна (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отмененные и завершенные
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetProductBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		ProductID:       &r.ProductID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	ProductID     int64   `json:"productId"`
	ProductTitle  string  `json:"productTitle"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	StartDate     string  `json:"startDate"` // "2025-07-10"
	EndDate       string  `json:"endDate"`   // "2025-07-12"
	DurationDays  int     `json:"durationDays"`
	TotalPrice    float64 `json:"totalPrice"` // 0 = цена по запросу
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		ProductID:     b.ProductID,
		ProductTitle:  b.ProductTitle,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		StartDate:     b.StartDate.Format(domain.DateFormat),
		EndDate:       b.EndDate.Format(domain.DateFormat),
		DurationDays:  b.DurationDays(),
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}

	return s, nil
}
