package preferredslot

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

// preferredSlotColumns колонки кандидата в порядке сканирования
var preferredSlotColumns = []string{
	"id",
	"application_id",
	"preferred_date",
	"time_slot",
	"priority",
	"deleted_at",
	"deleted_reason",
	"created_at",
}

// Repository журнал кандидатов (желаемых пар дата/окно) заявок
// Строки только добавляются и логически удаляются, физического удаления нет
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кандидатов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет кандидата заявки
func (r *Repository) Create(ctx context.Context, slot *domain.PreferredSlot) (*domain.PreferredSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("application_preferred_slots").
		Columns("application_id", "preferred_date", "time_slot", "priority").
		Values(slot.ApplicationID, slot.PreferredDate, slot.TimeSlot, slot.Priority).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time

	return slot, nil
}

// ListActive получает активных (не удалённых логически) кандидатов заявки
// в порядке приоритета
func (r *Repository) ListActive(ctx context.Context, applicationID int64) ([]*domain.PreferredSlot, error) {
	return r.list(ctx, applicationID, true)
}

// ListAll получает всех кандидатов заявки, включая логически удалённых,
// для отображения полной истории
func (r *Repository) ListAll(ctx context.Context, applicationID int64) ([]*domain.PreferredSlot, error) {
	return r.list(ctx, applicationID, false)
}

func (r *Repository) list(ctx context.Context, applicationID int64, activeOnly bool) ([]*domain.PreferredSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(preferredSlotColumns...).
		From("application_preferred_slots").
		Where(squirrel.Eq{"application_id": applicationID}).
		OrderBy("priority ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"deleted_at": nil})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanPreferredSlots(rows)
}

// GetByDateAndSlot получает кандидатов всех заявок на конкретную пару (дата, окно)
// Используется админкой для списка претендентов на слот
func (r *Repository) GetByDateAndSlot(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) ([]*domain.PreferredSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"aps.id",
		"aps.application_id",
		"aps.preferred_date",
		"aps.time_slot",
		"aps.priority",
		"aps.deleted_at",
		"aps.deleted_reason",
		"aps.created_at",
	).
		From("application_preferred_slots aps").
		Join("applications a ON aps.application_id = a.id").
		Where(squirrel.Eq{"aps.preferred_date": date, "aps.time_slot": timeSlot}).
		Where(squirrel.Eq{"a.status": []string{string(domain.StatusPending), string(domain.StatusConfirmed)}}).
		OrderBy("aps.priority ASC", "aps.created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateAndSlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateAndSlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanPreferredSlots(rows)
}

// SoftDelete логически удаляет кандидата заявки на пару (дата, окно).
// Срабатывает только по строкам с deleted_at IS NULL: повторный вызов
// по уже удалённой строке — no-op, а не ошибка (идемпотентность).
func (r *Repository) SoftDelete(ctx context.Context, applicationID int64, date time.Time, timeSlot domain.TimeSlot, reason domain.DeletionReason) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("application_preferred_slots").
		Set("deleted_at", squirrel.Expr("NOW()")).
		Set("deleted_reason", reason).
		Where(squirrel.Eq{
			"application_id": applicationID,
			"preferred_date": date,
			"time_slot":      timeSlot,
			"deleted_at":     nil,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SoftDelete - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// SoftDeleteOthers логически удаляет всех активных кандидатов заявки,
// кроме выбранной пары (keepDate, keepSlot), с причиной confirmed
func (r *Repository) SoftDeleteOthers(ctx context.Context, applicationID int64, keepDate time.Time, keepSlot domain.TimeSlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("application_preferred_slots").
		Set("deleted_at", squirrel.Expr("NOW()")).
		Set("deleted_reason", domain.DeletionConfirmed).
		Where(squirrel.Eq{
			"application_id": applicationID,
			"deleted_at":     nil,
		}).
		Where(squirrel.Or{
			squirrel.NotEq{"preferred_date": keepDate},
			squirrel.NotEq{"time_slot": keepSlot},
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SoftDeleteOthers - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SoftDeleteOthers - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// scanPreferredSlots сканирует результаты запроса в слайс кандидатов
func scanPreferredSlots(rows *sql.Rows) ([]*domain.PreferredSlot, error) {
	slots := make([]*domain.PreferredSlot, 0)

	for rows.Next() {
		var slot domain.PreferredSlot
		var createdAt sql.NullTime
		var deletedAt sql.NullTime
		var deletedReason sql.NullString

		err := rows.Scan(
			&slot.ID,
			&slot.ApplicationID,
			&slot.PreferredDate,
			&slot.TimeSlot,
			&slot.Priority,
			&deletedAt,
			&deletedReason,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanPreferredSlots - scan row: %v", ErrScanRow, err)
		}

		if deletedAt.Valid {
			slot.DeletedAt = &deletedAt.Time
		}
		if deletedReason.Valid {
			reason := domain.DeletionReason(deletedReason.String)
			slot.DeletedReason = &reason
		}
		slot.CreatedAt = createdAt.Time

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPreferredSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
