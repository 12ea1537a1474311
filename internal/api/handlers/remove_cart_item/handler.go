package remove_cart_item

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
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgLineNotFound       = "позиция корзины не найдена"
	msgInvalidInput       = "некорректные данные позиции"
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

// Handle DELETE /api/v1/cart/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /cart/items - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req RemoveItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /cart/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("DELETE /cart/items - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.RemoveItem(r.Context(), sessionID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrLineNotFound):
			h.logger.Warn("DELETE /cart/items - Line not found: session=%s, product_id=%d", sessionID, req.ProductID)
			handlers.RespondNotFound(w, msgLineNotFound)

		case errors.Is(err, cart.ErrInvalidRange), errors.Is(err, cart.ErrInvalidInput):
			h.logger.Warn("DELETE /cart/items - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("DELETE /cart/items - Failed to remove item: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cart/items - Item removed: session=%s, product_id=%d, items=%d",
		sessionID, req.ProductID, len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, result)
}
