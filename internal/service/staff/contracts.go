package staff

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
)

// StaffRepository интерфейс репозитория мастеров и расписаний
type StaffRepository interface {
	List(ctx context.Context) ([]*domain.StaffMember, error)
	GetByID(ctx context.Context, id int64) (*domain.StaffMember, error)
	LockForUpdate(ctx context.Context, id int64) error
	Create(ctx context.Context, member *domain.StaffMember) (*domain.StaffMember, error)
	Delete(ctx context.Context, id int64) error
	GetSchedule(ctx context.Context, staffID int64) ([]domain.ScheduleEntry, error)
	ReplaceSchedule(ctx context.Context, staffID int64, entries []domain.ScheduleEntry) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountUpcomingByStaff(ctx context.Context, staffID int64, now time.Time) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Begin(ctx context.Context, opts *sql.TxOptions) (txmanager.UnitOfWork, error)
}

// Clock источник текущего "настенного" времени салона
type Clock interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
