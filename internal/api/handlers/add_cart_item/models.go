package add_cart_item

import (
	"time"

	"github.com/m04kA/PJ-BookingService/internal/domain"
	"github.com/m04kA/PJ-BookingService/internal/service/cart/models"
)

// AddItemRequest HTTP request model
type AddItemRequest struct {
	ProductID int64  `json:"productId"`
	StartDate string `json:"startDate"` // "2025-07-10"
	EndDate   string `json:"endDate"`   // "2025-07-12"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddItemRequest) ToServiceRequest() (*models.AddItemRequest, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &models.AddItemRequest{
		ProductID: r.ProductID,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}
