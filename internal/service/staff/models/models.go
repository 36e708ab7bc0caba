package models

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модели

// CreateStaffRequest запрос на создание мастера
type CreateStaffRequest struct {
	Name string `json:"name"`
}

// ScheduleEntryRequest рабочие часы на один день недели
type ScheduleEntryRequest struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0 = воскресенье ... 6 = суббота
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// UpdateScheduleRequest полная замена недельного расписания.
// Дни, которых нет в списке, становятся выходными.
type UpdateScheduleRequest struct {
	Days []ScheduleEntryRequest `json:"days"`
}

// Response модели

// StaffResponse ответ с данными мастера
type StaffResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StaffListResponse список мастеров
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// ScheduleEntryResponse рабочие часы на день недели
type ScheduleEntryResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	DayLabel  string `json:"dayLabel"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ScheduleResponse недельное расписание мастера
type ScheduleResponse struct {
	StaffID int64                   `json:"staffId"`
	Days    []ScheduleEntryResponse `json:"days"`
}

// FromDomainStaff конвертирует domain.StaffMember в StaffResponse
func FromDomainStaff(m *domain.StaffMember) StaffResponse {
	return StaffResponse{ID: m.ID, Name: m.Name}
}

// FromDomainStaffList конвертирует список мастеров
func FromDomainStaffList(members []*domain.StaffMember) *StaffListResponse {
	staff := make([]StaffResponse, 0, len(members))
	for _, m := range members {
		staff = append(staff, FromDomainStaff(m))
	}
	return &StaffListResponse{Staff: staff}
}

// FromDomainSchedule конвертирует записи расписания
func FromDomainSchedule(staffID int64, entries []domain.ScheduleEntry) *ScheduleResponse {
	days := make([]ScheduleEntryResponse, 0, len(entries))
	for _, e := range entries {
		days = append(days, ScheduleEntryResponse{
			DayOfWeek: e.DayOfWeek,
			DayLabel:  domain.DayLabels[e.DayOfWeek],
			StartTime: e.StartTime.String(),
			EndTime:   e.EndTime.String(),
		})
	}
	return &ScheduleResponse{StaffID: staffID, Days: days}
}
