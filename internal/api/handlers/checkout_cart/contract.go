package checkout_cart

import (
	"context"

	"github.com/m04kA/PJ-BookingService/internal/service/cart/models"
)

type CartService interface {
	Checkout(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.CheckoutResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
