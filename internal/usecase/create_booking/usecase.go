package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	serviceRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/service"
	staffRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduling"
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	serviceRepo ServiceRepository
	staffRepo   StaffRepository
	txManager   TransactionManager
	calendar    scheduling.Calendar
	policy      domain.SchedulingPolicy
	detector    scheduling.ConflictDetector
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	staffRepo StaffRepository,
	txManager TransactionManager,
	calendar scheduling.Calendar,
	policy domain.SchedulingPolicy,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		staffRepo:   staffRepo,
		txManager:   txManager,
		calendar:    calendar,
		policy:      policy,
		detector:    scheduling.NewConflictDetector(policy.Buffer()),
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка выполняются в сериализуемой транзакции под блокировкой мастера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%d, staff=%d, start=%s",
		req.ServiceID, req.StaffID, req.Start.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных (без обращения к БД)
	now := uc.calendar.Now()
	if err := validateRequest(req, uc.policy, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем мастера
	staff, err := uc.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateBooking: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateBooking: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	candidate := scheduling.NewInterval(req.Start, service.Duration())
	date := scheduling.DateOf(req.Start)

	// 4. Сериализуемая транзакция
	uow, err := uc.txManager.BeginSerializable(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to begin transaction: %v", err)
		return nil, fmt.Errorf("%w: failed to begin transaction: %v", ErrInternal, err)
	}
	defer uow.Rollback()
	txCtx := uow.Context()

	// 4.1. Блокируем мастера: конкурентные записи к нему ждут здесь
	if err := uc.staffRepo.LockForUpdate(txCtx, req.StaffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateBooking: staff id=%d removed before commit", req.StaffID)
			return nil, ErrStaffNotFound
		}
		return nil, uc.txError("lock staff", err)
	}

	// 4.2. Проверяем рабочие часы под блокировкой: расписание меняется под той же блокировкой
	if err := uc.checkWorkingHours(txCtx, req.StaffID, date, candidate); err != nil {
		return nil, err
	}

	// 4.3. Перечитываем бронирования мастера на дату под блокировкой
	existing, err := uc.bookingRepo.ListByStaffAndDate(txCtx, req.StaffID, date)
	if err != nil {
		return nil, uc.txError("get bookings", err)
	}

	// 4.4. Проверяем пересечения с учетом буфера
	if uc.detector.Conflicts(candidate, scheduling.BookingIntervals(existing)) {
		uc.metrics.BookingConflict()
		uc.logger.Warn("CreateBooking: slot %s for staff=%d conflicts with %d existing bookings",
			req.Start.Format(domain.DateTimeFormat), req.StaffID, len(existing))
		return nil, ErrSlotNotAvailable
	}

	// 4.5. Сохраняем бронирование
	created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
		ServiceID:     service.ID,
		StaffID:       staff.ID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		StartTime:     candidate.Start,
		EndTime:       candidate.End,
	})
	if err != nil {
		return nil, uc.txError("create booking", err)
	}

	// 4.6. Фиксируем транзакцию
	if err := uow.Commit(); err != nil {
		return nil, uc.txError("commit", err)
	}

	uc.metrics.BookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)

	return &Response{
		ID:            created.ID,
		ServiceID:     service.ID,
		ServiceName:   service.Name,
		StaffID:       staff.ID,
		StaffName:     staff.Name,
		CustomerName:  created.CustomerName,
		CustomerPhone: created.CustomerPhone,
		Start:         created.StartTime,
		End:           created.EndTime,
		CreatedAt:     created.CreatedAt,
	}, nil
}

func (uc *UseCase) checkWorkingHours(ctx context.Context, staffID int64, date time.Time, candidate scheduling.Interval) error {
	entry, err := uc.staffRepo.GetScheduleForDay(ctx, staffID, uc.calendar.DayOfWeek(date))
	if err != nil {
		if errors.Is(err, staffRepo.ErrScheduleNotFound) {
			uc.logger.Warn("CreateBooking: staff id=%d does not work on %s", staffID, date.Format(domain.DateFormat))
			return ErrStaffNotWorking
		}
		return uc.txError("get schedule", err)
	}

	working, ok, err := scheduling.EntryInterval(*entry, date)
	if err != nil {
		uc.logger.Error("CreateBooking: broken schedule entry for staff id=%d: %v", staffID, err)
		return fmt.Errorf("%w: broken schedule entry: %v", ErrInternal, err)
	}
	if !ok {
		return ErrStaffNotWorking
	}

	if !working.Contains(candidate) {
		uc.logger.Warn("CreateBooking: %s-%s is outside of %s-%s",
			candidate.Start.Format(domain.TimeFormat), candidate.End.Format(domain.TimeFormat),
			entry.StartTime, entry.EndTime)
		return fmt.Errorf("%w: working hours are %s-%s", ErrOutsideWorkingHours, entry.StartTime, entry.EndTime)
	}

	return nil
}

// txError конфликт сериализации PostgreSQL отдается клиенту как занятый слот
func (uc *UseCase) txError(op string, err error) error {
	if txmanager.IsSerializationFailure(err) {
		uc.metrics.BookingConflict()
		uc.logger.Warn("CreateBooking: serialization failure on %s: %v", op, err)
		return fmt.Errorf("%w: concurrent booking", ErrSlotNotAvailable)
	}

	uc.logger.Error("CreateBooking: failed to %s: %v", op, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
}
