package add_cart_item

import (
	"context"

	"github.com/m04kA/PJ-BookingService/internal/service/cart/models"
)

type CartService interface {
	AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
