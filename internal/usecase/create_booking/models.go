package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	ServiceID     int64
	StaffID       int64
	Start         time.Time // Начало в "настенном" времени салона
	CustomerName  string
	CustomerPhone string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	ServiceID     int64
	ServiceName   string
	StaffID       int64
	StaffName     string
	CustomerName  string
	CustomerPhone string
	Start         time.Time
	End           time.Time
	CreatedAt     time.Time
}
