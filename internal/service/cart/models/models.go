package models

import (
	"time"

	"github.com/m04kA/PJ-BookingService/internal/domain"
)

// Request модели

// AddItemRequest запрос на добавление позиции в корзину
type AddItemRequest struct {
	ProductID int64     `json:"productId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// UpdateItemRequest запрос на изменение дат позиции
// Позиция идентифицируется старым кортежем (продукт, начало, конец)
type UpdateItemRequest struct {
	ProductID    int64     `json:"productId"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	NewStartDate time.Time `json:"newStartDate"`
	NewEndDate   time.Time `json:"newEndDate"`
}

// RemoveItemRequest запрос на удаление позиции
type RemoveItemRequest struct {
	ProductID int64     `json:"productId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// CheckoutRequest запрос на оформление корзины
type CheckoutRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// Response модели

// CartLineResponse позиция корзины
type CartLineResponse struct {
	ProductID    int64    `json:"productId"`
	ProductTitle string   `json:"productTitle"`
	StartDate    string   `json:"startDate"` // "2025-07-10"
	EndDate      string   `json:"endDate"`   // "2025-07-12"
	DurationDays int      `json:"durationDays"`
	PricePerDay  *float64 `json:"pricePerDay,omitempty"` // nil = цена по запросу
	Subtotal     float64  `json:"subtotal"`
}

// CartResponse содержимое корзины
type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Total float64            `json:"total"`
}

// CheckoutResponse результат оформления корзины
type CheckoutResponse struct {
	BookingIDs []int64 `json:"bookingIds"`
	Total      float64 `json:"total"`
}

// Методы конвертации

// EmptyCartResponse возвращает пустую корзину
func EmptyCartResponse() *CartResponse {
	return &CartResponse{
		Items: []CartLineResponse{},
		Total: 0,
	}
}

// FromDomainCart конвертирует domain корзину в DTO
func FromDomainCart(c *domain.Cart) *CartResponse {
	if c == nil {
		return EmptyCartResponse()
	}

	items := c.Items()
	resp := &CartResponse{
		Items: make([]CartLineResponse, len(items)),
		Total: c.Total(),
	}

	for i, item := range items {
		resp.Items[i] = CartLineResponse{
			ProductID:    item.ProductID,
			ProductTitle: item.ProductTitle,
			StartDate:    item.StartDate.Format(domain.DateFormat),
			EndDate:      item.EndDate.Format(domain.DateFormat),
			DurationDays: item.DurationDays(),
			PricePerDay:  item.PricePerDay,
			Subtotal:     item.Subtotal,
		}
	}

	return resp
}

// FromCreatedBookings конвертирует созданные бронирования в результат оформления
func FromCreatedBookings(bookings []*domain.Booking) *CheckoutResponse {
	resp := &CheckoutResponse{
		BookingIDs: make([]int64, len(bookings)),
	}

	for i, booking := range bookings {
		resp.BookingIDs[i] = booking.ID
		resp.Total += booking.TotalPrice
	}

	return resp
}
