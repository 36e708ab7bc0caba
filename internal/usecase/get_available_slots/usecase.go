package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	serviceRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/service"
	staffRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduling"
)

// UseCase use case для получения доступных слотов на один день
type UseCase struct {
	serviceRepo ServiceRepository
	staffRepo   StaffRepository
	bookingRepo BookingRepository
	calendar    scheduling.Calendar
	aggregator  *scheduling.Aggregator
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	staffRepo StaffRepository,
	bookingRepo BookingRepository,
	calendar scheduling.Calendar,
	policy domain.SchedulingPolicy,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo: serviceRepo,
		staffRepo:   staffRepo,
		bookingRepo: bookingRepo,
		calendar:    calendar,
		aggregator:  scheduling.NewAggregator(scheduling.NewSlotGenerator(policy), calendar),
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Прошедшие даты не отклоняются: фильтр минимального времени до записи вернет пустой список
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s, staff=%v",
		req.ServiceID, req.Date.Format(domain.DateFormat), staffLabel(req.StaffID))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := scheduling.DateOf(req.Date)
	now := uc.calendar.Now()

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем мастеров
	staff, err := uc.loadStaff(ctx, req.StaffID)
	if err != nil {
		return nil, err
	}

	// 4. Расписания всех мастеров на этот день недели одним запросом
	entries, err := uc.staffRepo.GetSchedulesForDay(ctx, uc.calendar.DayOfWeek(date))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
	}

	// 5. Бронирования на дату
	bookings, err := uc.bookingRepo.ListByDateRange(ctx, date, uc.calendar.AddDays(date, 1))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Считаем слоты
	roster := scheduling.Roster{
		Staff:     staff,
		Schedules: scheduling.NewScheduleResolver(uc.calendar, entries),
		Bookings:  scheduling.IndexBookings(bookings),
	}
	slots, err := uc.aggregator.Day(date, *service, roster, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	uc.metrics.ObserveAvailability("day", len(slots))
	uc.logger.Info("GetAvailableSlots: found %d slots for service=%d on %s (staff=%d, bookings=%d)",
		len(slots), req.ServiceID, date.Format(domain.DateFormat), len(staff), len(bookings))

	return &Response{
		Date:    date,
		Service: *service,
		Slots:   slots,
	}, nil
}

func (uc *UseCase) loadStaff(ctx context.Context, staffID *int64) ([]domain.StaffMember, error) {
	if staffID != nil {
		member, err := uc.staffRepo.GetByID(ctx, *staffID)
		if err != nil {
			if errors.Is(err, staffRepo.ErrStaffNotFound) {
				uc.logger.Warn("GetAvailableSlots: staff id=%d not found", *staffID)
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get staff id=%d: %v", *staffID, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		return []domain.StaffMember{*member}, nil
	}

	members, err := uc.staffRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list staff: %v", err)
		return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}

	staff := make([]domain.StaffMember, 0, len(members))
	for _, m := range members {
		staff = append(staff, *m)
	}
	return staff, nil
}

func staffLabel(staffID *int64) string {
	if staffID == nil {
		return "all"
	}
	return fmt.Sprintf("%d", *staffID)
}
