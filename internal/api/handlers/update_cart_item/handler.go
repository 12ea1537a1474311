package update_cart_item

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
	msgInvalidRange       = "дата окончания раньше даты начала"
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

// Handle PATCH /api/v1/cart/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /cart/items - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req UpdateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /cart/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PATCH /cart/items - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.UpdateItemDates(r.Context(), sessionID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrLineNotFound):
			h.logger.Warn("PATCH /cart/items - Line not found: session=%s, product_id=%d", sessionID, req.ProductID)
			handlers.RespondNotFound(w, msgLineNotFound)

		case errors.Is(err, cart.ErrInvalidRange):
			h.logger.Warn("PATCH /cart/items - Invalid range: product_id=%d", req.ProductID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, cart.ErrInvalidInput):
			h.logger.Warn("PATCH /cart/items - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /cart/items - Failed to update item: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /cart/items - Item updated: session=%s, product_id=%d", sessionID, req.ProductID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
