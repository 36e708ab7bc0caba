package staff

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = fmt.Errorf("staff: staff member not found: %w", domain.ErrNotFound)

	// ErrHasUpcomingBookings возвращается при удалении мастера с предстоящими записями
	ErrHasUpcomingBookings = fmt.Errorf("staff: staff member has upcoming bookings: %w", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("staff: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("staff: internal error")
)
