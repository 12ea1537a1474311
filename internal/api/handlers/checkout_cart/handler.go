package checkout_cart

import (
	"errors"
	"net/http"

	"github.com/m04kA/PJ-BookingService/internal/api/handlers"
	"github.com/m04kA/PJ-BookingService/internal/api/middleware"
	"github.com/m04kA/PJ-BookingService/internal/service/cart"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingSession     = "отсутствует ID сессии"
	msgEmptyCart          = "корзина пуста"
	msgBookingConflict    = "одна из позиций корзины уже занята"
	msgInvalidInput       = "некорректные данные клиента"
)

type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/cart/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /cart/checkout - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req CheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cart/checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Checkout(r.Context(), sessionID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrEmptyCart):
			h.logger.Warn("POST /cart/checkout - Empty cart: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgEmptyCart)

		case errors.Is(err, cart.ErrBookingConflict):
			h.logger.Warn("POST /cart/checkout - Conflict during checkout: session=%s, error=%v", sessionID, err)
			handlers.RespondConflict(w, msgBookingConflict)

		case errors.Is(err, cart.ErrInvalidInput):
			h.logger.Warn("POST /cart/checkout - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /cart/checkout - Failed to checkout: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cart/checkout - Checkout complete: session=%s, bookings=%d", sessionID, len(result.BookingIDs))
	handlers.RespondJSON(w, http.StatusCreated, result)
}
