package application

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

// applicationColumns колонки заявки в порядке сканирования
var applicationColumns = []string{
	"id",
	"customer_name",
	"customer_phone",
	"customer_email",
	"postal_code",
	"address",
	"building_type",
	"floor_number",
	"room_type",
	"room_size",
	"ac_type",
	"ac_capacity",
	"existing_ac",
	"existing_ac_removal",
	"electrical_work",
	"piping_work",
	"wall_drilling",
	"special_requests",
	"status",
	"confirmed_date",
	"confirmed_time_slot",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с заявками на установку
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую заявку в статусе pending
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("applications").
		Columns(
			"customer_name",
			"customer_phone",
			"customer_email",
			"postal_code",
			"address",
			"building_type",
			"floor_number",
			"room_type",
			"room_size",
			"ac_type",
			"ac_capacity",
			"existing_ac",
			"existing_ac_removal",
			"electrical_work",
			"piping_work",
			"wall_drilling",
			"special_requests",
			"status",
		).
		Values(
			app.CustomerName,
			app.CustomerPhone,
			app.CustomerEmail,
			app.PostalCode,
			app.Address,
			app.BuildingType,
			app.FloorNumber,
			app.RoomType,
			app.RoomSize,
			app.ACType,
			app.ACCapacity,
			app.ExistingAC,
			app.ExistingACRemoval,
			app.ElectricalWork,
			app.PipingWork,
			app.WallDrilling,
			app.SpecialRequests,
			domain.StatusPending,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&app.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	app.Status = domain.StatusPending
	app.CreatedAt = createdAt.Time
	app.UpdatedAt = updatedAt.Time

	return app, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(applicationColumns...).
		From("applications").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку заявки: confirm и cancel
	// меняют её статус после проверок
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	app, err := scanApplication(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan application: %v", ErrScanRow, err)
	}

	return app, nil
}

// GetWithFilter получает список заявок с фильтрацией для админки
// Сортировка: новые заявки первыми
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.ApplicationsFilter) ([]*domain.Application, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(applicationColumns...).
		From("applications").
		OrderBy("created_at DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"created_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"created_at": *filter.EndDate})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	apps := make([]*domain.Application, 0)

	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWithFilter - scan row: %v", ErrScanRow, err)
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - rows error: %v", ErrScanRow, err)
	}

	return apps, nil
}

// Confirm переводит заявку в статус confirmed с фиксацией выбранной пары (дата, окно)
func (r *Repository) Confirm(ctx context.Context, id int64, confirmedDate time.Time, confirmedSlot domain.TimeSlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("applications").
		Set("status", domain.StatusConfirmed).
		Set("confirmed_date", confirmedDate).
		Set("confirmed_time_slot", confirmedSlot).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Confirm - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Confirm - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Confirm - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrApplicationNotFound
	}

	return nil
}

// Cancel переводит заявку в терминальный статус cancelled
// Пара confirmed_date/confirmed_time_slot не очищается: это история заявки
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("applications").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrApplicationNotFound
	}

	return nil
}

// HasConfirmedReservation проверяет, занята ли пара (дата, окно) подтверждённой заявкой
func (r *Repository) HasConfirmedReservation(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("applications").
		Where(squirrel.Eq{
			"status":              domain.StatusConfirmed,
			"confirmed_date":      date,
			"confirmed_time_slot": timeSlot,
		}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasConfirmedReservation - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: HasConfirmedReservation - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanApplication сканирует одну строку заявки
func scanApplication(row rowScanner) (*domain.Application, error) {
	var app domain.Application
	var createdAt, updatedAt sql.NullTime
	var confirmedDate sql.NullTime
	var confirmedSlot sql.NullString

	err := row.Scan(
		&app.ID,
		&app.CustomerName,
		&app.CustomerPhone,
		&app.CustomerEmail,
		&app.PostalCode,
		&app.Address,
		&app.BuildingType,
		&app.FloorNumber,
		&app.RoomType,
		&app.RoomSize,
		&app.ACType,
		&app.ACCapacity,
		&app.ExistingAC,
		&app.ExistingACRemoval,
		&app.ElectricalWork,
		&app.PipingWork,
		&app.WallDrilling,
		&app.SpecialRequests,
		&app.Status,
		&confirmedDate,
		&confirmedSlot,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	if confirmedDate.Valid {
		app.ConfirmedDate = &confirmedDate.Time
	}
	if confirmedSlot.Valid {
		slot := domain.TimeSlot(confirmedSlot.String)
		app.ConfirmedTimeSlot = &slot
	}

	app.CreatedAt = createdAt.Time
	app.UpdatedAt = updatedAt.Time

	return &app, nil
}
