package update_cart_item

import (
	"time"

	"github.com/m04kA/PJ-BookingService/internal/domain"
	"github.com/m04kA/PJ-BookingService/internal/service/cart/models"
)

// UpdateItemRequest HTTP request model
// Позиция идентифицируется старым кортежем (продукт, начало, конец)
type UpdateItemRequest struct {
	ProductID    int64  `json:"productId"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	NewStartDate string `json:"newStartDate"`
	NewEndDate   string `json:"newEndDate"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateItemRequest) ToServiceRequest() (*models.UpdateItemRequest, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	newStartDate, err := time.Parse(domain.DateFormat, r.NewStartDate)
	if err != nil {
		return nil, err
	}

	newEndDate, err := time.Parse(domain.DateFormat, r.NewEndDate)
	if err != nil {
		return nil, err
	}

	return &models.UpdateItemRequest{
		ProductID:    r.ProductID,
		StartDate:    startDate,
		EndDate:      endDate,
		NewStartDate: newStartDate,
		NewEndDate:   newEndDate,
	}, nil
}
