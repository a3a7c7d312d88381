package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
	"github.com/m04kA/ACI-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/ACI-ReservationService/pkg/psqlbuilder"
)

// Repository леджер вместимости по парам (дата, временное окно)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// EnsureSlot идемпотентно создает строку леджера с дефолтной вместимостью,
// если её ещё нет. Строки материализуются лениво при первом обращении к паре.
func (r *Repository) EnsureSlot(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservation_slots").
		Columns("reservation_date", "time_slot", "max_capacity", "current_bookings", "is_available").
		Values(date, timeSlot, domain.DefaultMaxCapacity, 0, true).
		Suffix("ON CONFLICT (reservation_date, time_slot) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: EnsureSlot - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: EnsureSlot - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetInfo возвращает строку леджера вместе со справочными данными окна
func (r *Repository) GetInfo(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) (*domain.SlotInfo, error) {
	if err := r.EnsureSlot(ctx, date, timeSlot); err != nil {
		return nil, err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"rs.id",
		"rs.reservation_date",
		"rs.time_slot",
		"rs.max_capacity",
		"rs.current_bookings",
		"rs.is_available",
		"rs.created_at",
		"rs.updated_at",
		"ts.display_name",
		"ts.start_time",
		"ts.end_time",
		"ts.is_active",
	).
		From("reservation_slots rs").
		Join("time_slots ts ON rs.time_slot = ts.slot_name").
		Where(squirrel.Eq{"rs.reservation_date": date, "rs.time_slot": timeSlot}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetInfo - build select query: %v", ErrBuildQuery, err)
	}

	var info domain.SlotInfo
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&info.ID,
		&info.ReservationDate,
		&info.TimeSlot,
		&info.MaxCapacity,
		&info.CurrentBookings,
		&info.IsAvailable,
		&createdAt,
		&updatedAt,
		&info.DisplayName,
		&info.StartTime,
		&info.EndTime,
		&info.SlotActive,
	)

	if err == sql.ErrNoRows {
		// Строка леджера только что создана, значит окна нет в справочнике
		return nil, ErrUnknownTimeSlot
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetInfo - scan slot: %v", ErrScanRow, err)
	}

	info.CreatedAt = createdAt.Time
	info.UpdatedAt = updatedAt.Time

	return &info, nil
}

// IsBookable проверяет, можно ли ставить новое удержание на пару (дата, окно):
// слот не заблокирован, счётчик ниже вместимости и окно глобально активно
func (r *Repository) IsBookable(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) (bool, error) {
	info, err := r.GetInfo(ctx, date, timeSlot)
	if err != nil {
		return false, err
	}
	return info.Bookable(), nil
}

// Increment увеличивает счётчик удержаний на единицу одним атомарным UPDATE.
// Увеличение безусловно: проверка IsBookable — ответственность вызывающего.
func (r *Repository) Increment(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) error {
	if err := r.EnsureSlot(ctx, date, timeSlot); err != nil {
		return err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservation_slots").
		Set("current_bookings", squirrel.Expr("current_bookings + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reservation_date": date, "time_slot": timeSlot}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Increment - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Increment - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// Decrement уменьшает счётчик удержаний с нижней границей 0.
// Никогда не возвращает ошибку из-за отсутствия удержаний и не уходит в минус.
func (r *Repository) Decrement(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservation_slots").
		Set("current_bookings", squirrel.Expr("GREATEST(current_bookings - 1, 0)")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reservation_date": date, "time_slot": timeSlot}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Decrement - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Decrement - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// SetAvailability выставляет ручную блокировку слота
// is_available=false ставится при подтверждении брони, true — при её отмене
func (r *Repository) SetAvailability(ctx context.Context, date time.Time, timeSlot domain.TimeSlot, isAvailable bool) error {
	if err := r.EnsureSlot(ctx, date, timeSlot); err != nil {
		return err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservation_slots").
		Set("is_available", isAvailable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reservation_date": date, "time_slot": timeSlot}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetAvailability - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetAvailability - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// GetRange возвращает материализованные строки леджера за период
// (только активные окна), для календаря в админке
func (r *Repository) GetRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.SlotInfo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"rs.id",
		"rs.reservation_date",
		"rs.time_slot",
		"rs.max_capacity",
		"rs.current_bookings",
		"rs.is_available",
		"rs.created_at",
		"rs.updated_at",
		"ts.display_name",
		"ts.start_time",
		"ts.end_time",
		"ts.is_active",
	).
		From("reservation_slots rs").
		Join("time_slots ts ON rs.time_slot = ts.slot_name").
		Where(squirrel.GtOrEq{"rs.reservation_date": startDate}).
		Where(squirrel.LtOrEq{"rs.reservation_date": endDate}).
		Where(squirrel.Eq{"ts.is_active": true}).
		OrderBy("rs.reservation_date ASC", slotOrderExpr("rs.time_slot")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	infos := make([]*domain.SlotInfo, 0)

	for rows.Next() {
		var info domain.SlotInfo
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&info.ID,
			&info.ReservationDate,
			&info.TimeSlot,
			&info.MaxCapacity,
			&info.CurrentBookings,
			&info.IsAvailable,
			&createdAt,
			&updatedAt,
			&info.DisplayName,
			&info.StartTime,
			&info.EndTime,
			&info.SlotActive,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetRange - scan row: %v", ErrScanRow, err)
		}

		info.CreatedAt = createdAt.Time
		info.UpdatedAt = updatedAt.Time

		infos = append(infos, &info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRange - rows error: %v", ErrScanRow, err)
	}

	return infos, nil
}

// slotOrderExpr сортировка окон в порядке следования в течение дня
func slotOrderExpr(column string) string {
	return fmt.Sprintf("CASE %s WHEN 'morning' THEN 1 WHEN 'afternoon' THEN 2 WHEN 'evening' THEN 3 END", column)
}
