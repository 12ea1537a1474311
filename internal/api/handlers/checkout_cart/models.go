package checkout_cart

import "github.com/m04kA/PJ-BookingService/internal/service/cart/models"

// CheckoutRequest HTTP request model
type CheckoutRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CheckoutRequest) ToServiceRequest() *models.CheckoutRequest {
	return &models.CheckoutRequest{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}
}
