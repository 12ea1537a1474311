package update_booking

import (
	"time"

	"github.com/m04kA/PJ-BookingService/internal/domain"
	updateBooking "github.com/m04kA/PJ-BookingService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model
// Все поля опциональны: отсутствующее поле не меняется
type UpdateBookingRequest struct {
	StartDate *string `json:"startDate,omitempty"` // "2025-07-10"
	EndDate   *string `json:"endDate,omitempty"`   // "2025-07-12"
	Status    *string `json:"status,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	ProductID     int64   `json:"productId"`
	ProductTitle  string  `json:"productTitle"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	DurationDays  int     `json:"durationDays"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		BookingID: bookingID,
		Status:    r.Status,
		Notes:     r.Notes,
	}

	if r.StartDate != nil {
		startDate, err := time.Parse(domain.DateFormat, *r.StartDate)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if r.EndDate != nil {
		endDate, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		ProductID:     resp.ProductID,
		ProductTitle:  resp.ProductTitle,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		CustomerPhone: resp.CustomerPhone,
		StartDate:     resp.StartDate.Format(domain.DateFormat),
		EndDate:       resp.EndDate.Format(domain.DateFormat),
		DurationDays:  resp.DurationDays,
		TotalPrice:    resp.TotalPrice,
		Status:        resp.Status,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
