package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListDetailedByDate(ctx context.Context, date time.Time) ([]*domain.BookingDetails, error)
	ListUpcoming(ctx context.Context, now time.Time, limit int) ([]*domain.BookingDetails, error)
	Delete(ctx context.Context, id int64) error
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
