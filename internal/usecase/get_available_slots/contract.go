package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListByDateRange получает бронирования всех мастеров, начинающиеся в [from, to)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	List(ctx context.Context) ([]*domain.StaffMember, error)
	GetByID(ctx context.Context, id int64) (*domain.StaffMember, error)
	// GetSchedulesForDay получает расписания всех мастеров на день недели одним запросом
	GetSchedulesForDay(ctx context.Context, dayOfWeek int) ([]domain.ScheduleEntry, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// Metrics метрики расчета доступности
type Metrics interface {
	ObserveAvailability(kind string, slots int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
