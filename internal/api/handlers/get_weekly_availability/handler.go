package get_weekly_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	getWeeklyAvailability "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_weekly_availability"
)

const (
	msgMissingServiceID = "ID услуги обязателен"
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidOffset    = "некорректное смещение, ожидается целое число"
	msgInvalidDays      = "некорректное количество дней, ожидается целое число"
	msgInvalidParams    = "некорректные параметры запроса"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase GetWeeklyAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetWeeklyAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/week
// Query params: serviceId (обязательный), offset и days (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceIDStr := query.Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /availability/week - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}
	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/week - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	offset, err := optionalInt(query.Get("offset"))
	if err != nil {
		h.logger.Warn("GET /availability/week - Invalid offset: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOffset)
		return
	}

	days, err := optionalInt(query.Get("days"))
	if err != nil {
		h.logger.Warn("GET /availability/week - Invalid days: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDays)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getWeeklyAvailability.Request{
		ServiceID: serviceID,
		Offset:    offset,
		Days:      days,
	})
	if err != nil {
		switch {
		case errors.Is(err, getWeeklyAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability/week - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getWeeklyAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /availability/week - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /availability/week - Failed to compute window: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/week - Window computed: service_id=%d, days=%d", serviceID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func optionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
