package models

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64  `json:"id"`
	ServiceID     int64  `json:"serviceId"`
	ServiceName   string `json:"serviceName,omitempty"`
	StaffID       int64  `json:"staffId"`
	StaffName     string `json:"staffName,omitempty"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Start         string `json:"start"`     // "2025-03-10T10:00:00"
	End           string `json:"end"`       // "2025-03-10T10:30:00"
	CreatedAt     string `json:"createdAt"` // "2025-03-07T12:00:00"
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		ServiceID:     b.ServiceID,
		StaffID:       b.StaffID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Start:         b.StartTime.Format(domain.DateTimeFormat),
		End:           b.EndTime.Format(domain.DateTimeFormat),
		CreatedAt:     b.CreatedAt.Format(domain.DateTimeFormat),
	}
}

// FromDomainDetails конвертирует domain.BookingDetails в BookingResponse
func FromDomainDetails(d *domain.BookingDetails) BookingResponse {
	resp := FromDomainBooking(&d.Booking)
	resp.ServiceName = d.ServiceName
	resp.StaffName = d.StaffName
	return *resp
}

// FromDomainDetailsList конвертирует список бронирований
func FromDomainDetailsList(details []*domain.BookingDetails) *BookingListResponse {
	bookings := make([]BookingResponse, 0, len(details))
	for _, d := range details {
		bookings = append(bookings, FromDomainDetails(d))
	}
	return &BookingListResponse{
		Bookings: bookings,
		Total:    len(bookings),
	}
}
