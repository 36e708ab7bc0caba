package create_booking

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	serviceRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/service"
	staffRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type countingMetrics struct {
	mu        sync.Mutex
	created   int
	conflicts int
}

func (m *countingMetrics) BookingCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created++
}

func (m *countingMetrics) BookingConflict() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conflicts++
}

func (m *countingMetrics) ObserveAvailability(string, int) {}

// memStore хранилище в памяти: услуги, мастера, расписания и бронирования
type memStore struct {
	mu        sync.Mutex
	services  map[int64]*domain.Service
	staff     []*domain.StaffMember
	schedules []domain.ScheduleEntry
	bookings  []*domain.Booking
	nextID    int64
	accesses  int
	// чтения расписания вне транзакции
	scheduleReadsOutsideTx int
}

func newMemStore() *memStore {
	return &memStore{
		services: map[int64]*domain.Service{
			1: {ID: 1, Name: "Haircut", DurationMinutes: 30},
		},
		staff: []*domain.StaffMember{{ID: 1, Name: "Anna"}, {ID: 2, Name: "Boris"}},
		schedules: []domain.ScheduleEntry{
			{StaffID: 1, DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"},
			{StaffID: 2, DayOfWeek: 1, StartTime: "09:00", EndTime: "11:00"},
		},
	}
}

func (s *memStore) touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accesses++
}

func (s *memStore) Accesses() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accesses
}

func (s *memStore) Bookings() []*domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*domain.Booking(nil), s.bookings...)
}

func (s *memStore) ScheduleReadsOutsideTx() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduleReadsOutsideTx
}

// setSchedule заменяет расписание мастера целиком
func (s *memStore) setSchedule(staffID int64, entries ...domain.ScheduleEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]domain.ScheduleEntry, 0, len(s.schedules))
	for _, e := range s.schedules {
		if e.StaffID != staffID {
			kept = append(kept, e)
		}
	}
	s.schedules = append(kept, entries...)
}

func (s *memStore) insert(b *domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	b.ID = s.nextID
	b.CreatedAt = time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	s.bookings = append(s.bookings, b)
}

type serviceView struct{ s *memStore }

func (v serviceView) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	v.s.touch()
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	svc, ok := v.s.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

type staffView struct{ s *memStore }

func (v staffView) List(context.Context) ([]*domain.StaffMember, error) {
	v.s.touch()
	return v.s.staff, nil
}

func (v staffView) GetByID(_ context.Context, id int64) (*domain.StaffMember, error) {
	v.s.touch()
	for _, m := range v.s.staff {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, staffRepo.ErrStaffNotFound
}

func (v staffView) LockForUpdate(ctx context.Context, id int64) error {
	_, err := v.GetByID(ctx, id)
	return err
}

func (v staffView) GetScheduleForDay(ctx context.Context, staffID int64, dayOfWeek int) (*domain.ScheduleEntry, error) {
	v.s.touch()
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, ok := ctx.Value(uowKey{}).(*memUnitOfWork); !ok {
		v.s.scheduleReadsOutsideTx++
	}
	for _, e := range v.s.schedules {
		if e.StaffID == staffID && e.DayOfWeek == dayOfWeek {
			entry := e
			return &entry, nil
		}
	}
	return nil, staffRepo.ErrScheduleNotFound
}

func (v staffView) GetSchedulesForDay(_ context.Context, dayOfWeek int) ([]domain.ScheduleEntry, error) {
	v.s.touch()
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	result := make([]domain.ScheduleEntry, 0)
	for _, e := range v.s.schedules {
		if e.DayOfWeek == dayOfWeek {
			result = append(result, e)
		}
	}
	return result, nil
}

type bookingView struct{ s *memStore }

func (v bookingView) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	v.s.touch()
	if uow, ok := ctx.Value(uowKey{}).(*memUnitOfWork); ok {
		uow.pending = append(uow.pending, b)
		return b, nil
	}
	v.s.insert(b)
	return b, nil
}

func (v bookingView) ListByStaffAndDate(_ context.Context, staffID int64, date time.Time) ([]*domain.Booking, error) {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	result := make([]*domain.Booking, 0)
	for _, b := range v.s.Bookings() {
		if b.StaffID == staffID && !b.StartTime.Before(from) && b.StartTime.Before(from.AddDate(0, 0, 1)) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (v bookingView) ListByDateRange(_ context.Context, from, to time.Time) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range v.s.Bookings() {
		if !b.StartTime.Before(from) && b.StartTime.Before(to) {
			result = append(result, b)
		}
	}
	return result, nil
}

type uowKey struct{}

// memTxManager сериализует транзакции одной блокировкой, как FOR UPDATE на строке мастера
type memTxManager struct {
	store     *memStore
	lock      sync.Mutex
	commitErr error
}

func (m *memTxManager) BeginSerializable(ctx context.Context) (txmanager.UnitOfWork, error) {
	m.lock.Lock()
	uow := &memUnitOfWork{manager: m}
	uow.ctx = context.WithValue(ctx, uowKey{}, uow)
	return uow, nil
}

type memUnitOfWork struct {
	manager  *memTxManager
	ctx      context.Context
	pending  []*domain.Booking
	finished bool
}

func (u *memUnitOfWork) Context() context.Context {
	return u.ctx
}

func (u *memUnitOfWork) Commit() error {
	if u.finished {
		return txmanager.ErrTxFinished
	}
	u.finished = true
	defer u.manager.lock.Unlock()

	if u.manager.commitErr != nil {
		return u.manager.commitErr
	}
	for _, b := range u.pending {
		u.manager.store.insert(b)
	}
	return nil
}

func (u *memUnitOfWork) Rollback() error {
	if u.finished {
		return nil
	}
	u.finished = true
	u.manager.lock.Unlock()
	return nil
}
