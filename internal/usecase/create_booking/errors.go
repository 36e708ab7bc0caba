package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается при отсутствии обязательных полей
	ErrInvalidInput = fmt.Errorf("create_booking: invalid input data: %w", domain.ErrValidation)

	// ErrNotOnGrid возвращается, когда начало не кратно 15 минутам
	ErrNotOnGrid = fmt.Errorf("create_booking: start time is not on the 15 minute grid: %w", domain.ErrValidation)

	// ErrInvalidName возвращается при некорректном имени клиента
	ErrInvalidName = fmt.Errorf("create_booking: invalid customer name: %w", domain.ErrValidation)

	// ErrInvalidPhone возвращается при некорректном телефоне клиента
	ErrInvalidPhone = fmt.Errorf("create_booking: invalid customer phone: %w", domain.ErrValidation)

	// ErrTooLate возвращается, если до начала меньше минимального времени записи
	ErrTooLate = fmt.Errorf("create_booking: start time is too soon: %w", domain.ErrSchedulingPolicy)

	// ErrStaffNotWorking возвращается, если мастер не работает в этот день
	ErrStaffNotWorking = fmt.Errorf("create_booking: staff member does not work on this day: %w", domain.ErrSchedulingPolicy)

	// ErrOutsideWorkingHours возвращается, если интервал выходит за рабочие часы
	ErrOutsideWorkingHours = fmt.Errorf("create_booking: outside of working hours: %w", domain.ErrSchedulingPolicy)

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = fmt.Errorf("create_booking: service not found: %w", domain.ErrNotFound)

	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = fmt.Errorf("create_booking: staff member not found: %w", domain.ErrNotFound)

	// ErrSlotNotAvailable возвращается, когда слот уже занят (с учетом буфера)
	ErrSlotNotAvailable = fmt.Errorf("create_booking: slot is not available: %w", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
