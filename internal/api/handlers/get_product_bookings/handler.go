package get_product_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/PJ-BookingService/internal/api/handlers"
	"github.com/m04kA/PJ-BookingService/internal/domain"
	"github.com/m04kA/PJ-BookingService/internal/service/bookings"
	"github.com/m04kA/PJ-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidProductID = "некорректный ID продукта"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter    = "некорректные параметры фильтра"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/products/{productId}/bookings
// Параметры: start_date, end_date, status, include_inactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем productId из URL
	vars := mux.Vars(r)
	productID, err := strconv.ParseInt(vars["productId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /products/{id}/bookings - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	req := &models.GetProductBookingsRequest{ProductID: productID}
	query := r.URL.Query()

	if raw := query.Get("start_date"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /products/{id}/bookings - Invalid start_date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("end_date"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /products/{id}/bookings - Invalid end_date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	req.IncludeInactive = query.Get("include_inactive") == "true"

	result, err := h.service.GetProductBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /products/{id}/bookings - Invalid filter: product_id=%d, error=%v", productID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /products/{id}/bookings - Failed to get bookings: product_id=%d, error=%v", productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /products/{id}/bookings - Retrieved %d bookings: product_id=%d", len(result.Bookings), productID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
