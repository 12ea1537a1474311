package get_product_bookings

import (
	"context"

	"github.com/m04kA/PJ-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetProductBookings(ctx context.Context, req *models.GetProductBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
