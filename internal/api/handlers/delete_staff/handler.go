package delete_staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/staff"
)

const (
	msgInvalidStaffID   = "некорректный ID мастера"
	msgStaffNotFound    = "мастер не найден"
	msgUpcomingBookings = "у мастера есть предстоящие бронирования"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/staff/{staffId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.ParseInt(mux.Vars(r)["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/staff/{id} - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	if err := h.service.Delete(r.Context(), staffID); err != nil {
		switch {
		case errors.Is(err, staff.ErrStaffNotFound):
			h.logger.Warn("DELETE /admin/staff/{id} - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, staff.ErrHasUpcomingBookings):
			h.logger.Warn("DELETE /admin/staff/{id} - Staff has upcoming bookings: staff_id=%d", staffID)
			handlers.RespondConflict(w, msgUpcomingBookings)

		case errors.Is(err, staff.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/staff/{id} - Invalid staff ID: %d", staffID)
			handlers.RespondBadRequest(w, msgInvalidStaffID)

		default:
			h.logger.Error("DELETE /admin/staff/{id} - Failed to delete staff member: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/staff/{id} - Staff member deleted: staff_id=%d", staffID)
	handlers.RespondNoContent(w)
}
