package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/PJ-BookingService/internal/api/handlers"
	"github.com/m04kA/PJ-BookingService/internal/domain"
	checkAvailability "github.com/m04kA/PJ-BookingService/internal/usecase/check_availability"
)

const (
	msgInvalidProductID = "некорректный ID продукта"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDates     = "требуются параметры start_date и end_date"
	msgInvalidExcludeID = "некорректный exclude_booking_id"
	msgInvalidRange     = "дата окончания раньше даты начала"
	msgProductNotFound  = "продукт не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/products/{productId}/availability?start_date=...&end_date=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем productId из URL
	vars := mux.Vars(r)
	productID, err := strconv.ParseInt(vars["productId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /products/{id}/availability - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	// Диапазон дат обязателен
	query := r.URL.Query()
	startStr := query.Get("start_date")
	endStr := query.Get("end_date")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /products/{id}/availability - Missing date range: product_id=%d", productID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		h.logger.Warn("GET /products/{id}/availability - Invalid start_date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		h.logger.Warn("GET /products/{id}/availability - Invalid end_date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Исключаемое бронирование (при редактировании существующего)
	var excludeID *int64
	if raw := query.Get("exclude_booking_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /products/{id}/availability - Invalid exclude_booking_id: %v", err)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		excludeID = &id
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		ProductID:        productID,
		StartDate:        startDate,
		EndDate:          endDate,
		ExcludeBookingID: excludeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrProductNotFound):
			h.logger.Warn("GET /products/{id}/availability - Product not found: product_id=%d", productID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidRange):
			h.logger.Warn("GET /products/{id}/availability - Invalid range: product_id=%d", productID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /products/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProductID)

		default:
			h.logger.Error("GET /products/{id}/availability - Failed to check availability: product_id=%d, error=%v", productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /products/{id}/availability - Checked: product_id=%d, available=%t", productID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
