package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/PJ-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/PJ-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgProductNotFound    = "продукт не найден"
	msgInvalidRange       = "дата окончания раньше даты начала"
	msgBookingConflict    = "выбранные даты уже заняты"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrBookingConflict):
			h.logger.Warn("POST /bookings - Date range already booked: product_id=%d, range=%s..%s",
				req.ProductID, req.StartDate, req.EndDate)
			handlers.RespondConflict(w, msgBookingConflict)

		case errors.Is(err, createBooking.ErrProductNotFound):
			h.logger.Warn("POST /bookings - Product not found: product_id=%d", req.ProductID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, createBooking.ErrInvalidRange):
			h.logger.Warn("POST /bookings - Invalid range: product_id=%d", req.ProductID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: product_id=%d, error=%v", req.ProductID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, product_id=%d, range=%s..%s",
		result.ID, result.ProductID, req.StartDate, req.EndDate)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
