package staff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/staff/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// normalizeName обрезает пробелы и ограничивает длину имени мастера
func normalizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	runes := []rune(name)
	if len(runes) < domain.MinStaffNameLength {
		return "", fmt.Errorf("%w: name must contain at least %d characters", ErrInvalidInput, domain.MinStaffNameLength)
	}
	if len(runes) > domain.MaxStaffNameLength {
		name = strings.TrimSpace(string(runes[:domain.MaxStaffNameLength]))
	}
	return name, nil
}

// toScheduleEntries валидирует все дни; одна ошибка отклоняет весь запрос
func toScheduleEntries(staffID int64, days []models.ScheduleEntryRequest) ([]domain.ScheduleEntry, error) {
	entries := make([]domain.ScheduleEntry, 0, len(days))
	seen := make(map[int]bool, len(days))

	for i, d := range days {
		start, err := types.NewTimeStringFromString(d.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: days[%d].startTime: %v", ErrInvalidInput, i, err)
		}
		end, err := types.NewTimeStringFromString(d.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: days[%d].endTime: %v", ErrInvalidInput, i, err)
		}

		entry := domain.ScheduleEntry{
			StaffID:   staffID,
			DayOfWeek: d.DayOfWeek,
			StartTime: start,
			EndTime:   end,
		}
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("%w: days[%d]: %v", ErrInvalidInput, i, err)
		}

		if seen[entry.DayOfWeek] {
			return nil, fmt.Errorf("%w: day %d is listed more than once", ErrInvalidInput, entry.DayOfWeek)
		}
		seen[entry.DayOfWeek] = true

		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].DayOfWeek < entries[j].DayOfWeek
	})

	return entries, nil
}
