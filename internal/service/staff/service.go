package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	staffRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonBooking/internal/service/staff/models"
)

// Service сервис управления мастерами и их расписанием
type Service struct {
	staffRepo   StaffRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	clock       Clock
	logger      Logger
}

// NewService создает новый экземпляр сервиса мастеров
func NewService(
	staffRepo StaffRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	clock Clock,
	logger Logger,
) *Service {
	return &Service{
		staffRepo:   staffRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		clock:       clock,
		logger:      logger,
	}
}

// List возвращает всех мастеров
func (s *Service) List(ctx context.Context) (*models.StaffListResponse, error) {
	members, err := s.staffRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStaffList(members), nil
}

// Create создает мастера с расписанием по умолчанию (пн-пт 09:00-18:00) в одной транзакции
func (s *Service) Create(ctx context.Context, req *models.CreateStaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("Create: creating staff member name=%q", req.Name)

	// 1. Валидация
	name, err := normalizeName(req.Name)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Транзакция: мастер + расписание
	uow, err := s.txManager.Begin(ctx, nil)
	if err != nil {
		s.logger.Error("Create: failed to begin transaction: %v", err)
		return nil, fmt.Errorf("%w: Create - begin transaction: %v", ErrInternal, err)
	}
	defer uow.Rollback()

	member, err := s.staffRepo.Create(uow.Context(), &domain.StaffMember{Name: name})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	if err := s.staffRepo.ReplaceSchedule(uow.Context(), member.ID, domain.DefaultWeekSchedule(member.ID)); err != nil {
		s.logger.Error("Create: failed to seed schedule for staff id=%d: %v", member.ID, err)
		return nil, fmt.Errorf("%w: Create - seed schedule: %v", ErrInternal, err)
	}

	if err := uow.Commit(); err != nil {
		s.logger.Error("Create: failed to commit: %v", err)
		return nil, fmt.Errorf("%w: Create - commit: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created staff id=%d", member.ID)
	resp := models.FromDomainStaff(member)
	return &resp, nil
}

// Delete удаляет мастера, если у него нет предстоящих записей.
// Прошедшие записи и расписание удаляются каскадно.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing staff id=%d", id)

	uow, err := s.txManager.Begin(ctx, nil)
	if err != nil {
		s.logger.Error("Delete: failed to begin transaction: %v", err)
		return fmt.Errorf("%w: Delete - begin transaction: %v", ErrInternal, err)
	}
	defer uow.Rollback()
	txCtx := uow.Context()

	// 1. Блокируем мастера, чтобы новая запись не появилась между проверкой и удалением
	if err := s.staffRepo.LockForUpdate(txCtx, id); err != nil {
		return s.notFoundOrInternal("Delete", id, err)
	}

	// 2. Проверяем предстоящие записи
	upcoming, err := s.bookingRepo.CountUpcomingByStaff(txCtx, id, s.clock.Now())
	if err != nil {
		s.logger.Error("Delete: failed to count bookings of staff id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - count bookings: %v", ErrInternal, err)
	}
	if upcoming > 0 {
		s.logger.Warn("Delete: staff id=%d has %d upcoming bookings", id, upcoming)
		return fmt.Errorf("%w: %d bookings", ErrHasUpcomingBookings, upcoming)
	}

	// 3. Удаляем
	if err := s.staffRepo.Delete(txCtx, id); err != nil {
		return s.notFoundOrInternal("Delete", id, err)
	}

	if err := uow.Commit(); err != nil {
		s.logger.Error("Delete: failed to commit: %v", err)
		return fmt.Errorf("%w: Delete - commit: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: staff id=%d removed", id)
	return nil
}

// GetSchedule возвращает недельное расписание мастера
func (s *Service) GetSchedule(ctx context.Context, staffID int64) (*models.ScheduleResponse, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, s.notFoundOrInternal("GetSchedule", staffID, err)
	}

	entries, err := s.staffRepo.GetSchedule(ctx, staffID)
	if err != nil {
		s.logger.Error("GetSchedule: repository error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(staffID, entries), nil
}

// SetSchedule полностью заменяет недельное расписание мастера в одной транзакции
func (s *Service) SetSchedule(ctx context.Context, staffID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("SetSchedule: staff id=%d, %d days", staffID, len(req.Days))

	// 1. Валидация всех дней до обращения к БД
	entries, err := toScheduleEntries(staffID, req.Days)
	if err != nil {
		s.logger.Warn("SetSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Замена в транзакции
	uow, err := s.txManager.Begin(ctx, nil)
	if err != nil {
		s.logger.Error("SetSchedule: failed to begin transaction: %v", err)
		return nil, fmt.Errorf("%w: SetSchedule - begin transaction: %v", ErrInternal, err)
	}
	defer uow.Rollback()

	if err := s.staffRepo.LockForUpdate(uow.Context(), staffID); err != nil {
		return nil, s.notFoundOrInternal("SetSchedule", staffID, err)
	}

	if err := s.staffRepo.ReplaceSchedule(uow.Context(), staffID, entries); err != nil {
		s.logger.Error("SetSchedule: repository error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: SetSchedule - repository error: %v", ErrInternal, err)
	}

	if err := uow.Commit(); err != nil {
		s.logger.Error("SetSchedule: failed to commit: %v", err)
		return nil, fmt.Errorf("%w: SetSchedule - commit: %v", ErrInternal, err)
	}

	s.logger.Info("SetSchedule: schedule of staff id=%d replaced", staffID)
	return models.FromDomainSchedule(staffID, entries), nil
}

func (s *Service) notFoundOrInternal(op string, staffID int64, err error) error {
	if errors.Is(err, staffRepo.ErrStaffNotFound) {
		s.logger.Warn("%s: staff id=%d not found", op, staffID)
		return ErrStaffNotFound
	}
	s.logger.Error("%s: repository error for staff id=%d: %v", op, staffID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
