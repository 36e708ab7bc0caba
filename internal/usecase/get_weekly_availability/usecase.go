package get_weekly_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	serviceRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/service"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduling"
)

// UseCase use case для сводки доступности по дням
type UseCase struct {
	serviceRepo ServiceRepository
	staffRepo   StaffRepository
	bookingRepo BookingRepository
	calendar    scheduling.Calendar
	aggregator  *scheduling.Aggregator
	window      WindowConfig
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
	window WindowConfig,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if window.DefaultDays <= 0 {
		window.DefaultDays = domain.DefaultWindowDays
	}
	if window.MaxDays <= 0 {
		window.MaxDays = domain.MaxWindowDays
	}

	return &UseCase{
		serviceRepo: serviceRepo,
		staffRepo:   staffRepo,
		bookingRepo: bookingRepo,
		calendar:    calendar,
		aggregator:  scheduling.NewAggregator(scheduling.NewSlotGenerator(policy), calendar),
		window:      window,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute считает количество слотов по дням, начиная с сегодня+offset
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetWeeklyAvailability: service=%d, offset=%d, days=%d", req.ServiceID, req.Offset, req.Days)

	// 1. Валидация и нормализация окна
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetWeeklyAvailability: validation failed: %v", err)
		return nil, err
	}
	offset, days := normalizeWindow(req, uc.window)

	now := uc.calendar.Now()
	from := uc.calendar.AddDays(uc.calendar.Today(), offset)
	to := uc.calendar.AddDays(from, days)

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetWeeklyAvailability: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetWeeklyAvailability: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Мастера
	members, err := uc.staffRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetWeeklyAvailability: failed to list staff: %v", err)
		return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}
	staff := make([]domain.StaffMember, 0, len(members))
	for _, m := range members {
		staff = append(staff, *m)
	}

	// 4. Расписания и бронирования на всё окно: по одному запросу
	roster := scheduling.Roster{Staff: staff}
	if len(staff) > 0 {
		entries, err := uc.staffRepo.GetAllSchedules(ctx)
		if err != nil {
			uc.logger.Error("GetWeeklyAvailability: failed to get schedules: %v", err)
			return nil, fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
		}

		bookings, err := uc.bookingRepo.ListByDateRange(ctx, from, to)
		if err != nil {
			uc.logger.Error("GetWeeklyAvailability: failed to get bookings: %v", err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		roster.Schedules = scheduling.NewScheduleResolver(uc.calendar, entries)
		roster.Bookings = scheduling.IndexBookings(bookings)
	}

	// 5. Сводка по дням
	summaries, err := uc.aggregator.Window(from, days, *service, roster, now)
	if err != nil {
		uc.logger.Error("GetWeeklyAvailability: failed to compute window: %v", err)
		return nil, fmt.Errorf("%w: failed to compute window: %v", ErrInternal, err)
	}

	total := 0
	for _, s := range summaries {
		total += s.TotalSlots
	}
	uc.metrics.ObserveAvailability("window", total)
	uc.logger.Info("GetWeeklyAvailability: %d slots over %d days from %s for service=%d",
		total, days, from.Format(domain.DateFormat), req.ServiceID)

	return &Response{
		Service: *service,
		From:    from,
		Days:    summaries,
	}, nil
}
