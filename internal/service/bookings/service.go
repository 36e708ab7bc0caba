package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings/models"
)

// Service сервис административных операций с бронированиями
type Service struct {
	bookingRepo   BookingRepository
	clock         Clock
	upcomingLimit int
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// upcomingLimit - размер выборки ближайших бронирований по умолчанию и её максимум.
func NewService(bookingRepo BookingRepository, clock Clock, upcomingLimit int, logger Logger) *Service {
	if upcomingLimit <= 0 {
		upcomingLimit = domain.DefaultUpcomingLimit
	}
	return &Service{
		bookingRepo:   bookingRepo,
		clock:         clock,
		upcomingLimit: upcomingLimit,
		logger:        logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListByDate получает все бронирования на дату с названиями услуг и именами мастеров
func (s *Service) ListByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	s.logger.Info("ListByDate: fetching bookings for %s", date.Format(domain.DateFormat))

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	details, err := s.bookingRepo.ListDetailedByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListByDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: found %d bookings for %s", len(details), date.Format(domain.DateFormat))
	return models.FromDomainDetailsList(details), nil
}

// ListUpcoming получает бронирования, начинающиеся не раньше текущего момента.
// limit <= 0 или больше настроенного максимума заменяется максимумом.
func (s *Service) ListUpcoming(ctx context.Context, limit int) (*models.BookingListResponse, error) {
	if limit <= 0 || limit > s.upcomingLimit {
		limit = s.upcomingLimit
	}
	now := s.clock.Now()
	s.logger.Info("ListUpcoming: fetching up to %d bookings from %s", limit, now.Format(domain.DateTimeFormat))

	details, err := s.bookingRepo.ListUpcoming(ctx, now, limit)
	if err != nil {
		s.logger.Error("ListUpcoming: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDetailsList(details), nil
}

// Cancel удаляет бронирование, освобождая слот
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: removing booking id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d removed", id)
	return nil
}
