package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

type fakeRepo struct {
	bookings  map[int64]*domain.Booking
	details   []*domain.BookingDetails
	lastLimit int
	lastNow   time.Time
	err       error
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) ListDetailedByDate(context.Context, time.Time) ([]*domain.BookingDetails, error) {
	return f.details, f.err
}

func (f *fakeRepo) ListUpcoming(_ context.Context, now time.Time, limit int) ([]*domain.BookingDetails, error) {
	f.lastNow, f.lastLimit = now, limit
	return f.details, f.err
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

var now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newRepo() *fakeRepo {
	b := domain.Booking{
		ID:            1,
		ServiceID:     2,
		StaffID:       3,
		CustomerName:  "Maria",
		CustomerPhone: "+7 900 123",
		StartTime:     time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC),
		CreatedAt:     time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC),
	}
	return &fakeRepo{
		bookings: map[int64]*domain.Booking{1: &b},
		details:  []*domain.BookingDetails{{Booking: b, ServiceName: "Haircut", StaffName: "Anna"}},
	}
}

func TestService_GetByID(t *testing.T) {
	svc := NewService(newRepo(), fixedClock(now), 50, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10T10:00:00", resp.Start)
	assert.Equal(t, "2025-03-10T10:30:00", resp.End)
	assert.Equal(t, "2025-03-07T12:00:00", resp.CreatedAt)

	_, err = svc.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_ListByDate(t *testing.T) {
	svc := NewService(newRepo(), fixedClock(now), 50, nopLogger{})

	resp, err := svc.ListByDate(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Haircut", resp.Bookings[0].ServiceName)
	assert.Equal(t, "Anna", resp.Bookings[0].StaffName)

	_, err = svc.ListByDate(context.Background(), time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ListUpcomingClampsLimit(t *testing.T) {
	repo := newRepo()
	svc := NewService(repo, fixedClock(now), 20, nopLogger{})

	for limit, want := range map[int]int{0: 20, -5: 20, 5: 5, 100: 20} {
		_, err := svc.ListUpcoming(context.Background(), limit)
		require.NoError(t, err)
		assert.Equal(t, want, repo.lastLimit, "limit %d", limit)
		assert.Equal(t, now, repo.lastNow)
	}
}

func TestService_Cancel(t *testing.T) {
	repo := newRepo()
	svc := NewService(repo, fixedClock(now), 0, nopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), 1))
	assert.Empty(t, repo.bookings)
	assert.ErrorIs(t, svc.Cancel(context.Background(), 1), ErrBookingNotFound)
}

func TestService_RepositoryFailure(t *testing.T) {
	repo := newRepo()
	repo.err = errors.New("connection refused")
	svc := NewService(repo, fixedClock(now), 0, nopLogger{})

	_, err := svc.ListByDate(context.Background(), now)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}
