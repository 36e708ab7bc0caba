package staff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

var scheduleColumns = []string{"staff_id", "day_of_week", "start_time", "end_time"}

// Repository репозиторий мастеров и их недельного расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает всех мастеров в порядке ID
func (r *Repository) List(ctx context.Context) ([]*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("staff").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	staff := make([]*domain.StaffMember, 0)
	for rows.Next() {
		var m domain.StaffMember
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		staff = append(staff, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return staff, nil
}

// GetByID получает мастера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var m domain.StaffMember
	err = executor.QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.Name)
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff: %w", ErrScanRow, err)
	}

	return &m, nil
}

// LockForUpdate блокирует строку мастера до конца текущей транзакции.
// Все бронирования одного мастера сериализуются на этой блокировке.
func (r *Repository) LockForUpdate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("staff").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LockForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	var locked int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&locked)
	if err == sql.ErrNoRows {
		return ErrStaffNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: LockForUpdate - execute query: %w", ErrExecQuery, err)
	}

	return nil
}

// Create создает мастера
func (r *Repository) Create(ctx context.Context, member *domain.StaffMember) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff").
		Columns("name").
		Values(member.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&member.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return member, nil
}

// Delete удаляет мастера. Расписание и прошедшие бронирования удаляются каскадно
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStaffNotFound
	}

	return nil
}

// GetSchedule возвращает недельное расписание мастера, упорядоченное по дню недели
func (r *Repository) GetSchedule(ctx context.Context, staffID int64) ([]domain.ScheduleEntry, error) {
	return r.listSchedule(ctx, "GetSchedule", squirrel.Eq{"staff_id": staffID})
}

// GetSchedulesForDay возвращает расписания всех мастеров на день недели
func (r *Repository) GetSchedulesForDay(ctx context.Context, dayOfWeek int) ([]domain.ScheduleEntry, error) {
	return r.listSchedule(ctx, "GetSchedulesForDay", squirrel.Eq{"day_of_week": dayOfWeek})
}

// GetAllSchedules возвращает расписания всех мастеров за один запрос
func (r *Repository) GetAllSchedules(ctx context.Context) ([]domain.ScheduleEntry, error) {
	return r.listSchedule(ctx, "GetAllSchedules", nil)
}

// GetScheduleForDay возвращает расписание мастера на конкретный день недели
func (r *Repository) GetScheduleForDay(ctx context.Context, staffID int64, dayOfWeek int) (*domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("staff_schedule").
		Where(squirrel.Eq{"staff_id": staffID, "day_of_week": dayOfWeek}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduleForDay - build select query: %v", ErrBuildQuery, err)
	}

	var e domain.ScheduleEntry
	err = executor.QueryRowContext(ctx, query, args...).Scan(&e.StaffID, &e.DayOfWeek, &e.StartTime, &e.EndTime)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduleForDay - scan entry: %w", ErrScanRow, err)
	}

	return &e, nil
}

// ReplaceSchedule полностью заменяет расписание мастера (delete + insert).
// Должен вызываться внутри транзакции, чтобы замена была атомарной.
func (r *Repository) ReplaceSchedule(ctx context.Context, staffID int64, entries []domain.ScheduleEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff_schedule").
		Where(squirrel.Eq{"staff_id": staffID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - execute delete: %w", ErrExecQuery, err)
	}

	if len(entries) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("staff_schedule").Columns(scheduleColumns...)
	for _, e := range entries {
		insert = insert.Values(staffID, e.DayOfWeek, e.StartTime, e.EndTime)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) listSchedule(ctx context.Context, op string, where squirrel.Sqlizer) ([]domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("staff_schedule").
		OrderBy("staff_id", "day_of_week")
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	entries := make([]domain.ScheduleEntry, 0)
	for rows.Next() {
		var e domain.ScheduleEntry
		if err := rows.Scan(&e.StaffID, &e.DayOfWeek, &e.StartTime, &e.EndTime); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return entries, nil
}
