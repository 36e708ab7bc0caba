package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"b.id",
	"b.service_id",
	"b.staff_id",
	"b.customer_name",
	"b.customer_phone",
	"b.start_time",
	"b.end_time",
	"b.created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Проверка пересечений выполняется вызывающей стороной в той же транзакции.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"service_id",
			"staff_id",
			"customer_name",
			"customer_phone",
			"start_time",
			"end_time",
		).
		Values(
			booking.ServiceID,
			booking.StaffID,
			booking.CustomerName,
			booking.CustomerPhone,
			booking.StartTime,
			booking.EndTime,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = wallClock(createdAt.Time)

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// ListByStaffAndDate получает бронирования мастера, начинающиеся в указанную дату
// Внутри транзакции строки блокируются (FOR UPDATE) до её завершения
func (r *Repository) ListByStaffAndDate(ctx context.Context, staffID int64, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	from, to := dayBounds(date)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.staff_id": staffID}).
		Where(squirrel.GtOrEq{"b.start_time": from}).
		Where(squirrel.Lt{"b.start_time": to}).
		OrderBy("b.start_time")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaffAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaffAndDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListByDateRange получает бронирования всех мастеров, начинающиеся в [from, to)
func (r *Repository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.GtOrEq{"b.start_time": from}).
		Where(squirrel.Lt{"b.start_time": to}).
		OrderBy("b.staff_id", "b.start_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListDetailedByDate получает бронирования на дату с названиями услуг и именами мастеров
func (r *Repository) ListDetailedByDate(ctx context.Context, date time.Time) ([]*domain.BookingDetails, error) {
	from, to := dayBounds(date)

	return r.listDetailed(ctx, "ListDetailedByDate", func(b squirrel.SelectBuilder) squirrel.SelectBuilder {
		return b.Where(squirrel.GtOrEq{"b.start_time": from}).
			Where(squirrel.Lt{"b.start_time": to})
	})
}

// ListUpcoming получает ближайшие бронирования, начиная с now
func (r *Repository) ListUpcoming(ctx context.Context, now time.Time, limit int) ([]*domain.BookingDetails, error) {
	return r.listDetailed(ctx, "ListUpcoming", func(b squirrel.SelectBuilder) squirrel.SelectBuilder {
		return b.Where(squirrel.GtOrEq{"b.start_time": now}).
			Limit(uint64(limit))
	})
}

// CountUpcomingByStaff считает бронирования мастера, начинающиеся не раньше now
func (r *Repository) CountUpcomingByStaff(ctx context.Context, staffID int64, now time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.GtOrEq{"start_time": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountUpcomingByStaff - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountUpcomingByStaff - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// Delete удаляет бронирование (физическое удаление)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
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
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) listDetailed(
	ctx context.Context,
	op string,
	filter func(squirrel.SelectBuilder) squirrel.SelectBuilder,
) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := append(append([]string{}, bookingColumns...), "s.name", "st.name")
	selectBuilder := psqlbuilder.Select(columns...).
		From("bookings b").
		Join("services s ON s.id = b.service_id").
		Join("staff st ON st.id = b.staff_id").
		OrderBy("b.start_time", "b.id")

	query, args, err := filter(selectBuilder).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	result := make([]*domain.BookingDetails, 0)
	for rows.Next() {
		var d domain.BookingDetails
		var createdAt sql.NullTime

		err := rows.Scan(
			&d.ID,
			&d.ServiceID,
			&d.StaffID,
			&d.CustomerName,
			&d.CustomerPhone,
			&d.StartTime,
			&d.EndTime,
			&createdAt,
			&d.ServiceName,
			&d.StaffName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		normalize(&d.Booking, createdAt)
		result = append(result, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.ServiceID,
		&booking.StaffID,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.StartTime,
		&booking.EndTime,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	normalize(&booking, createdAt)
	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func normalize(b *domain.Booking, createdAt sql.NullTime) {
	b.StartTime = wallClock(b.StartTime)
	b.EndTime = wallClock(b.EndTime)
	b.CreatedAt = wallClock(createdAt.Time)
}

// wallClock приводит значение колонки timestamp без часового пояса к UTC-метке,
// сохраняя "настенные" часы. lib/pq отдает такие значения с FixedZone("", 0).
func wallClock(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func dayBounds(date time.Time) (time.Time, time.Time) {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 0, 1)
}
