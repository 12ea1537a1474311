package remove_cart_item

import (
	"time"

	"github.com/m04kA/PJ-BookingService/internal/domain"
	"github.com/m04kA/PJ-BookingService/internal/service/cart/models"
)

// RemoveItemRequest HTTP request model
type RemoveItemRequest struct {
	ProductID int64  `json:"productId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RemoveItemRequest) ToServiceRequest() (*models.RemoveItemRequest, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &models.RemoveItemRequest{
		ProductID: r.ProductID,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}
