package availability

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

// Repository репозиторий настроек доступности: недельная сетка 7x3
// (availability_settings) и оверрайды на конкретные даты (date_availability_overrides)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeeklySettings получает все 21 ячейку недельной сетки
// в порядке дней недели и окон
func (r *Repository) GetWeeklySettings(ctx context.Context) ([]*domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"day_of_week",
		"time_slot",
		"is_available",
		"updated_at",
	).
		From("availability_settings").
		OrderBy(dayOrderExpr("day_of_week"), slotOrderExpr("time_slot")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySettings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySettings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	settings := make([]*domain.WeeklyAvailability, 0, 21)

	for rows.Next() {
		var setting domain.WeeklyAvailability
		var updatedAt sql.NullTime

		err := rows.Scan(
			&setting.ID,
			&setting.DayOfWeek,
			&setting.TimeSlot,
			&setting.IsAvailable,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetWeeklySettings - scan row: %v", ErrScanRow, err)
		}

		setting.UpdatedAt = updatedAt.Time
		settings = append(settings, &setting)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySettings - rows error: %v", ErrScanRow, err)
	}

	return settings, nil
}

// IsWeeklySlotAvailable проверяет доступность ячейки (день недели, окно)
// Отсутствующая ячейка трактуется как недоступная
func (r *Repository) IsWeeklySlotAvailable(ctx context.Context, dayOfWeek domain.DayOfWeek, timeSlot domain.TimeSlot) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("is_available").
		From("availability_settings").
		Where(squirrel.Eq{"day_of_week": dayOfWeek, "time_slot": timeSlot}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsWeeklySlotAvailable - build select query: %v", ErrBuildQuery, err)
	}

	var isAvailable bool
	err = executor.QueryRowContext(ctx, query, args...).Scan(&isAvailable)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsWeeklySlotAvailable - scan row: %v", ErrScanRow, err)
	}

	return isAvailable, nil
}

// UpdateWeeklySetting обновляет ячейку недельной сетки
func (r *Repository) UpdateWeeklySetting(ctx context.Context, dayOfWeek domain.DayOfWeek, timeSlot domain.TimeSlot, isAvailable bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_settings").
		Set("is_available", isAvailable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"day_of_week": dayOfWeek, "time_slot": timeSlot}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateWeeklySetting - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateWeeklySetting - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateWeeklySetting - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWeeklySettingNotFound
	}

	return nil
}

// GetDateOverride получает оверрайд для пары (дата, окно)
// Возвращает ErrOverrideNotFound, если оверрайда нет
func (r *Repository) GetDateOverride(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) (*domain.DateOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"date",
		"time_slot",
		"is_available",
		"reason",
		"created_by",
		"created_at",
		"updated_at",
	).
		From("date_availability_overrides").
		Where(squirrel.Eq{"date": date, "time_slot": timeSlot}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDateOverride - build select query: %v", ErrBuildQuery, err)
	}

	override, err := scanOverride(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDateOverride - scan override: %v", ErrScanRow, err)
	}

	return override, nil
}

// UpsertDateOverride создает или обновляет оверрайд на пару (дата, окно)
func (r *Repository) UpsertDateOverride(ctx context.Context, override *domain.DateOverride) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("date_availability_overrides").
		Columns("date", "time_slot", "is_available", "reason", "created_by").
		Values(override.Date, override.TimeSlot, override.IsAvailable, override.Reason, override.CreatedBy).
		Suffix(`ON CONFLICT (date, time_slot) DO UPDATE SET
			is_available = EXCLUDED.is_available,
			reason = EXCLUDED.reason,
			created_by = EXCLUDED.created_by,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertDateOverride - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertDateOverride - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteDateOverride удаляет оверрайд, возвращая пару к недельной сетке
// Это единственное физическое удаление в системе: оверрайд — настройка, не история
func (r *Repository) DeleteDateOverride(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("date_availability_overrides").
		Where(squirrel.Eq{"date": date, "time_slot": timeSlot}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteDateOverride - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteDateOverride - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteDateOverride - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

// GetOverridesInRange получает оверрайды за период для календаря в админке
func (r *Repository) GetOverridesInRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.DateOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"date",
		"time_slot",
		"is_available",
		"reason",
		"created_by",
		"created_at",
		"updated_at",
	).
		From("date_availability_overrides").
		Where(squirrel.GtOrEq{"date": startDate}).
		Where(squirrel.LtOrEq{"date": endDate}).
		OrderBy("date ASC", slotOrderExpr("time_slot")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverridesInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverridesInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]*domain.DateOverride, 0)

	for rows.Next() {
		override, err := scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetOverridesInRange - scan row: %v", ErrScanRow, err)
		}
		overrides = append(overrides, override)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOverridesInRange - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOverride(row rowScanner) (*domain.DateOverride, error) {
	var override domain.DateOverride
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&override.ID,
		&override.Date,
		&override.TimeSlot,
		&override.IsAvailable,
		&override.Reason,
		&override.CreatedBy,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return &override, nil
}

// dayOrderExpr сортировка дней недели с понедельника
func dayOrderExpr(column string) string {
	return fmt.Sprintf(`CASE %s
		WHEN 'monday' THEN 1
		WHEN 'tuesday' THEN 2
		WHEN 'wednesday' THEN 3
		WHEN 'thursday' THEN 4
		WHEN 'friday' THEN 5
		WHEN 'saturday' THEN 6
		WHEN 'sunday' THEN 7
	END`, column)
}

// slotOrderExpr сортировка окон в порядке следования в течение дня
func slotOrderExpr(column string) string {
	return fmt.Sprintf("CASE %s WHEN 'morning' THEN 1 WHEN 'afternoon' THEN 2 WHEN 'evening' THEN 3 END", column)
}
