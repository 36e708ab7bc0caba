package create_booking

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduling"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID     int64  `json:"serviceId"`
	StaffID       int64  `json:"staffId"`
	Start         string `json:"start"` // "2025-03-10T10:00" или "2025-03-10T10:00:00"
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64  `json:"id"`
	ServiceID     int64  `json:"serviceId"`
	ServiceName   string `json:"serviceName"`
	StaffID       int64  `json:"staffId"`
	StaffName     string `json:"staffName"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Start         string `json:"start"`
	End           string `json:"end"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом начала)
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	start, err := scheduling.ParseDateTime(r.Start)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ServiceID:     r.ServiceID,
		StaffID:       r.StaffID,
		Start:         start,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		ServiceID:     resp.ServiceID,
		ServiceName:   resp.ServiceName,
		StaffID:       resp.StaffID,
		StaffName:     resp.StaffName,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		Start:         resp.Start.Format(domain.DateTimeFormat),
		End:           resp.End.Format(domain.DateTimeFormat),
		CreatedAt:     resp.CreatedAt.Format(domain.DateTimeFormat),
	}
}
