package domain

import "time"

// Service a bookable offering with a fixed duration
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
}

// Duration returns the service duration
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
