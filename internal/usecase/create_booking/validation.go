package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduling"
)

var phonePattern = regexp.MustCompile(`^[+\d\s()-]+$`)

// validateRequest проверяет запрос без обращения к хранилищу.
// Нормализует имя и телефон (trim + обрезка до максимальной длины).
func validateRequest(req *Request, policy domain.SchedulingPolicy, now time.Time) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffId is required", ErrInvalidInput)
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	if !scheduling.IsQuantized(req.Start) {
		return fmt.Errorf("%w: %s", ErrNotOnGrid, req.Start.Format(domain.DateTimeFormat))
	}

	name, err := normalizeName(req.CustomerName)
	if err != nil {
		return err
	}
	req.CustomerName = name

	phone, err := normalizePhone(req.CustomerPhone)
	if err != nil {
		return err
	}
	req.CustomerPhone = phone

	if earliest := policy.EarliestStart(now); req.Start.Before(earliest) {
		return fmt.Errorf("%w: earliest bookable start is %s", ErrTooLate, earliest.Format(domain.DateTimeFormat))
	}

	return nil
}

func normalizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if len([]rune(name)) < domain.MinCustomerNameLength {
		return "", fmt.Errorf("%w: at least %d characters required", ErrInvalidName, domain.MinCustomerNameLength)
	}
	return truncate(name, domain.MaxCustomerNameLength), nil
}

func normalizePhone(raw string) (string, error) {
	phone := truncate(strings.TrimSpace(raw), domain.MaxCustomerPhoneLength)
	if !phonePattern.MatchString(phone) {
		return "", fmt.Errorf("%w: only digits, spaces, +, -, ( and ) are allowed", ErrInvalidPhone)
	}

	digits := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits < domain.MinPhoneDigits {
		return "", fmt.Errorf("%w: at least %d digits required", ErrInvalidPhone, domain.MinPhoneDigits)
	}

	return phone, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max]))
}
