package staff

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

var scheduleRowColumns = []string{"staff_id", "day_of_week", "start_time", "end_time"}

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

// pq отдает колонки TIME как time.Time с нулевой датой
func pgTime(hour, minute int) time.Time {
	return time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC)
}

func TestRepository_ListAndGet(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM staff ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "Anna").AddRow(int64(2), "Boris"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM staff WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(2), "Boris"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM staff WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnError(sql.ErrNoRows)

	staff, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, staff, 2)

	member, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Boris", member.Name)

	_, err = repo.GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrStaffNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockForUpdate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM staff WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM staff WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(2)).
		WillReturnError(sql.ErrNoRows)

	require.NoError(t, repo.LockForUpdate(context.Background(), 1))
	assert.ErrorIs(t, repo.LockForUpdate(context.Background(), 2), ErrStaffNotFound)
}

func TestRepository_CreateDelete(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO staff (name) VALUES ($1) RETURNING id")).
		WithArgs("Olga").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM staff WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM staff WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	member, err := repo.Create(context.Background(), &domain.StaffMember{Name: "Olga"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), member.ID)

	require.NoError(t, repo.Delete(context.Background(), 4))
	assert.ErrorIs(t, repo.Delete(context.Background(), 4), ErrStaffNotFound)
}

func TestRepository_Schedules(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT staff_id, day_of_week, start_time, end_time FROM staff_schedule WHERE staff_id = $1 ORDER BY staff_id, day_of_week")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(scheduleRowColumns).
			AddRow(int64(1), 1, pgTime(9, 0), pgTime(18, 0)).
			AddRow(int64(1), 2, "10:00:00", "16:30:00"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM staff_schedule ORDER BY staff_id, day_of_week")).
		WillReturnRows(sqlmock.NewRows(scheduleRowColumns).AddRow(int64(2), 0, pgTime(10, 0), pgTime(14, 0)))
	mock.ExpectQuery(regexp.QuoteMeta("FROM staff_schedule WHERE day_of_week = $1")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(scheduleRowColumns))

	entries, err := repo.GetSchedule(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, types.TimeString("09:00"), entries[0].StartTime)
	assert.Equal(t, types.TimeString("16:30"), entries[1].EndTime)

	all, err := repo.GetAllSchedules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, all[0].DayOfWeek)

	day, err := repo.GetSchedulesForDay(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, day)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetScheduleForDay(t *testing.T) {
	repo, mock := newRepo(t)
	query := regexp.QuoteMeta("FROM staff_schedule WHERE day_of_week = $1 AND staff_id = $2")

	mock.ExpectQuery(query).
		WithArgs(1, int64(1)).
		WillReturnRows(sqlmock.NewRows(scheduleRowColumns).AddRow(int64(1), 1, pgTime(9, 0), pgTime(18, 0)))
	mock.ExpectQuery(query).
		WithArgs(0, int64(1)).
		WillReturnError(sql.ErrNoRows)

	entry, err := repo.GetScheduleForDay(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("18:00"), entry.EndTime)

	_, err = repo.GetScheduleForDay(context.Background(), 1, 0)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestRepository_ReplaceSchedule(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM staff_schedule WHERE staff_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO staff_schedule (staff_id,day_of_week,start_time,end_time) VALUES ($1,$2,$3,$4),($5,$6,$7,$8)")).
		WithArgs(int64(1), 1, "09:00", "18:00", int64(1), 6, "10:00", "14:00").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.ReplaceSchedule(context.Background(), 1, []domain.ScheduleEntry{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"},
		{DayOfWeek: 6, StartTime: "10:00", EndTime: "14:00"},
	})
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM staff_schedule WHERE staff_id = $1")).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 5))

	require.NoError(t, repo.ReplaceSchedule(context.Background(), 2, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
