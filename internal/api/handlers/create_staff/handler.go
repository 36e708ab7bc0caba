package create_staff

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/staff"
	"github.com/m04kA/SMC-SalonBooking/internal/service/staff/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidName        = "имя мастера должно содержать не менее 2 символов"
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

// Handle POST /api/v1/admin/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	member, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, staff.ErrInvalidInput) {
			h.logger.Warn("POST /admin/staff - Invalid staff name: %v", err)
			handlers.RespondBadRequest(w, msgInvalidName)
			return
		}

		h.logger.Error("POST /admin/staff - Failed to create staff member: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/staff - Staff member created: staff_id=%d", member.ID)
	handlers.RespondJSON(w, http.StatusCreated, member)
}
