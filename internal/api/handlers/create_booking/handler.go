package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStart       = "некорректный формат начала, ожидается YYYY-MM-DDTHH:MM[:SS]"
	msgMissingFields      = "не заполнены обязательные поля: serviceId, staffId, start"
	msgNotOnGrid          = "время начала должно быть кратно 15 минутам"
	msgInvalidName        = "имя должно содержать не менее 2 символов"
	msgInvalidPhone       = "некорректный номер телефона"
	msgTooLate            = "слишком поздно для бронирования этого слота"
	msgStaffNotWorking    = "мастер не работает в выбранный день"
	msgOutsideHours       = "выбранное время выходит за рабочие часы мастера"
	msgServiceNotFound    = "услуга не найдена"
	msgStaffNotFound      = "мастер не найден"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
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

	if req.Start == "" {
		h.logger.Warn("POST /bookings - Missing start")
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse start %q: %v", req.Start, err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: staff_id=%d, start=%s", req.StaffID, req.Start)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrStaffNotFound):
			h.logger.Warn("POST /bookings - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Missing fields: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createBooking.ErrNotOnGrid):
			h.logger.Warn("POST /bookings - Start not on grid: %s", req.Start)
			handlers.RespondBadRequest(w, msgNotOnGrid)

		case errors.Is(err, createBooking.ErrInvalidName):
			h.logger.Warn("POST /bookings - Invalid customer name")
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, createBooking.ErrInvalidPhone):
			h.logger.Warn("POST /bookings - Invalid customer phone")
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, createBooking.ErrTooLate):
			h.logger.Warn("POST /bookings - Too late to book: start=%s", req.Start)
			handlers.RespondUnprocessable(w, msgTooLate)

		case errors.Is(err, createBooking.ErrStaffNotWorking):
			h.logger.Warn("POST /bookings - Staff not working: staff_id=%d, start=%s", req.StaffID, req.Start)
			handlers.RespondUnprocessable(w, msgStaffNotWorking)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: staff_id=%d, start=%s", req.StaffID, req.Start)
			handlers.RespondUnprocessable(w, msgOutsideHours)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: staff_id=%d, start=%s, error=%v",
				req.StaffID, req.Start, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, staff_id=%d, start=%s",
		result.ID, result.StaffID, req.Start)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
