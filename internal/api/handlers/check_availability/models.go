package check_availability

import (
	"github.com/m04kA/PJ-BookingService/internal/domain"
	checkAvailability "github.com/m04kA/PJ-BookingService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ProductID    int64    `json:"productId"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Available    bool     `json:"available"`
	BlockedDates []string `json:"blockedDates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	blocked := make([]string, len(resp.BlockedDates))
	for i, d := range resp.BlockedDates {
		blocked[i] = d.Format(domain.DateFormat)
	}

	return &AvailabilityResponse{
		ProductID:    resp.ProductID,
		StartDate:    resp.StartDate.Format(domain.DateFormat),
		EndDate:      resp.EndDate.Format(domain.DateFormat),
		Available:    resp.Available,
		BlockedDates: blocked,
	}
}
