package settings

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
	"github.com/m04kA/ACI-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/ACI-ReservationService/pkg/psqlbuilder"
)

// Repository key-value хранилище настроек периода приёма заявок (booking_settings)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSettings собирает настройки приёма заявок
// Отсутствующие ключи заполняются дефолтными значениями
func (r *Repository) GetSettings(ctx context.Context) (domain.BookingSettings, error) {
	result := domain.DefaultBookingSettings()

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("setting_key", "setting_value").
		From("booking_settings").
		Where(squirrel.Eq{"setting_key": []string{
			domain.SettingBookingEnabled,
			domain.SettingAdvanceDays,
			domain.SettingMinimumAdvanceHours,
		}}).
		ToSql()

	if err != nil {
		return result, fmt.Errorf("%w: GetSettings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return result, fmt.Errorf("%w: GetSettings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return result, fmt.Errorf("%w: GetSettings - scan row: %v", ErrScanRow, err)
		}

		switch key {
		case domain.SettingBookingEnabled:
			result.Enabled = value == "1"
		case domain.SettingAdvanceDays:
			if n, err := strconv.Atoi(value); err == nil {
				result.AdvanceDays = n
			}
		case domain.SettingMinimumAdvanceHours:
			if n, err := strconv.Atoi(value); err == nil {
				result.MinimumAdvanceHours = n
			}
		}
	}

	if err := rows.Err(); err != nil {
		return result, fmt.Errorf("%w: GetSettings - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpdateSettings записывает группу настроек
// Валидация значений и атомарность группы — ответственность вызывающего
// (usecase оборачивает вызов в транзакцию)
func (r *Repository) UpdateSettings(ctx context.Context, s domain.BookingSettings) error {
	enabled := "0"
	if s.Enabled {
		enabled = "1"
	}

	pairs := map[string]string{
		domain.SettingBookingEnabled:      enabled,
		domain.SettingAdvanceDays:         strconv.Itoa(s.AdvanceDays),
		domain.SettingMinimumAdvanceHours: strconv.Itoa(s.MinimumAdvanceHours),
	}

	for key, value := range pairs {
		if err := r.upsertSetting(ctx, key, value); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) upsertSetting(ctx context.Context, key, value string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_settings").
		Columns("setting_key", "setting_value").
		Values(key, value).
		Suffix(`ON CONFLICT (setting_key) DO UPDATE SET
			setting_value = EXCLUDED.setting_value,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: upsertSetting - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: upsertSetting - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetSetting получает произвольный ключ настроек (nil, если ключа нет)
func (r *Repository) GetSetting(ctx context.Context, key string) (*string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("setting_value").
		From("booking_settings").
		Where(squirrel.Eq{"setting_key": key}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSetting - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSetting - scan row: %v", ErrScanRow, err)
	}

	return &value, nil
}
