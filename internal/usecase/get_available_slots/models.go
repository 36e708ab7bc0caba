package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модель запроса доступных слотов на день
type Request struct {
	Date      time.Time // Дата (время суток игнорируется)
	ServiceID int64     // ID услуги
	StaffID   *int64    // Фильтр по мастеру (опционально)
}

// Response модель ответа: слоты всех работающих мастеров в порядке списка мастеров
type Response struct {
	Date    time.Time
	Service domain.Service
	Slots   []domain.Slot
}
