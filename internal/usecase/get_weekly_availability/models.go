package get_weekly_availability

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модель запроса сводки по дням
type Request struct {
	ServiceID int64
	Offset    int // Смещение первого дня относительно сегодня
	Days      int // Длина окна; <= 0 означает значение по умолчанию
}

// Response сводка по каждому дню окна в порядке дат
type Response struct {
	Service domain.Service
	From    time.Time
	Days    []domain.DaySummary
}

// WindowConfig ограничения окна
type WindowConfig struct {
	DefaultDays int
	MaxDays     int
}
