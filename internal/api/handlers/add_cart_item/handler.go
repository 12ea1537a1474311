package add_cart_item

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
	msgProductNotFound    = "продукт не найден"
	msgInvalidRange       = "дата окончания раньше даты начала"
	msgBookingConflict    = "выбранные даты уже заняты"
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

// Handle POST /api/v1/cart/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /cart/items - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req AddItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cart/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /cart/items - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.AddItem(r.Context(), sessionID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrProductNotFound):
			h.logger.Warn("POST /cart/items - Product not found: product_id=%d", req.ProductID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, cart.ErrBookingConflict):
			h.logger.Warn("POST /cart/items - Date range already booked: product_id=%d, range=%s..%s",
				req.ProductID, req.StartDate, req.EndDate)
			handlers.RespondConflict(w, msgBookingConflict)

		case errors.Is(err, cart.ErrInvalidRange):
			h.logger.Warn("POST /cart/items - Invalid range: product_id=%d", req.ProductID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, cart.ErrInvalidInput):
			h.logger.Warn("POST /cart/items - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /cart/items - Failed to add item: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cart/items - Item added: session=%s, product_id=%d, items=%d",
		sessionID, req.ProductID, len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, result)
}
