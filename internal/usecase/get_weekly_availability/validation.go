package get_weekly_availability

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}
	if req.Offset > domain.MaxWindowOffsetDays {
		return fmt.Errorf("%w: offset must not exceed %d days", ErrInvalidInput, domain.MaxWindowOffsetDays)
	}
	return nil
}

// normalizeWindow приводит смещение и длину окна к допустимым значениям
func normalizeWindow(req *Request, cfg WindowConfig) (offset, days int) {
	offset = req.Offset
	if offset < 0 {
		offset = 0
	}

	days = req.Days
	if days <= 0 {
		days = cfg.DefaultDays
	}
	if days > cfg.MaxDays {
		days = cfg.MaxDays
	}

	return offset, days
}
