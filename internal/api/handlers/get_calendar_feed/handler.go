package get_calendar_feed

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/PJ-BookingService/internal/api/handlers"
	"github.com/m04kA/PJ-BookingService/internal/domain"
	getCalendarFeed "github.com/m04kA/PJ-BookingService/internal/usecase/get_calendar_feed"
)

const (
	msgInvalidProductID = "некорректный product_id"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidWindow    = "конец окна раньше его начала"
)

type Handler struct {
	useCase GetCalendarFeedUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarFeedUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/events?product_id=...&start=...&end=...
// Все параметры опциональны: без них возвращаются все бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getCalendarFeed.Request{}
	query := r.URL.Query()

	if raw := query.Get("product_id"); raw != "" {
		productID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /calendar/events - Invalid product_id: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProductID)
			return
		}
		req.ProductID = &productID
	}

	if raw := query.Get("start"); raw != "" {
		start, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /calendar/events - Invalid start: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.WindowStart = &start
	}

	if raw := query.Get("end"); raw != "" {
		end, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /calendar/events - Invalid end: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.WindowEnd = &end
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendarFeed.ErrInvalidWindow):
			h.logger.Warn("GET /calendar/events - Invalid window: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /calendar/events - Failed to build feed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/events - Feed built: %d events", len(result.Events))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
