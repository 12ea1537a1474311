package bulk_update_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/PJ-BookingService/internal/api/handlers"
	"github.com/m04kA/PJ-BookingService/internal/api/middleware"
	"github.com/m04kA/PJ-BookingService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyIDs           = "требуется хотя бы один ID бронирования"
	msgUnknownAction      = "неизвестное действие, ожидается confirm или cancel"
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

// Handle POST /api/v1/bookings/bulk-status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BulkStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/bulk-status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	staffID, _ := middleware.StaffID(r.Context())

	var (
		updated int64
		err     error
	)

	switch req.Action {
	case ActionConfirm:
		updated, err = h.service.ConfirmAll(r.Context(), req.BookingIDs)
	case ActionCancel:
		updated, err = h.service.CancelAll(r.Context(), req.BookingIDs)
	default:
		h.logger.Warn("POST /bookings/bulk-status - Unknown action: action=%s, staff_id=%d", req.Action, staffID)
		handlers.RespondBadRequest(w, msgUnknownAction)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/bulk-status - Empty booking ids: staff_id=%d", staffID)
			handlers.RespondBadRequest(w, msgEmptyIDs)

		default:
			h.logger.Error("POST /bookings/bulk-status - Failed to update statuses: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/bulk-status - Updated %d of %d bookings: action=%s, staff_id=%d",
		updated, len(req.BookingIDs), req.Action, staffID)
	handlers.RespondJSON(w, http.StatusOK, BulkStatusResponse{Updated: updated})
}
