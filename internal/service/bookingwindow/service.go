package bookingwindow

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

// Service временная политика приёма заявок: глобальный флаг включения
// и окно [now + минимум часов; today + N дней]
//
// Нижняя граница сравнивается по часам (таймстемпу), верхняя — по дням.
type Service struct {
	settingsRepo SettingsRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса периода приёма заявок
func NewService(
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// IsDateWithinBookingPeriod проверяет, попадает ли дата в период приёма заявок
func (s *Service) IsDateWithinBookingPeriod(ctx context.Context, date time.Time) (bool, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		s.logger.Error("IsDateWithinBookingPeriod: failed to get settings: %v", err)
		return false, fmt.Errorf("%w: IsDateWithinBookingPeriod - get settings: %v", ErrInternal, err)
	}

	if !settings.Enabled {
		return false, nil
	}

	now := s.timeProvider.Now()

	// Дата кандидата берётся на полночь: минимальный срок в часах
	// сравнивается с её началом суток
	target := startOfDay(date)
	minTime := now.Add(time.Duration(settings.MinimumAdvanceHours) * time.Hour)
	maxDate := startOfDay(now).AddDate(0, 0, settings.AdvanceDays)

	return !target.Before(minTime) && !target.After(maxDate), nil
}

// GetBookingDateRange возвращает доступный диапазон дат
// Даты nil, когда приём заявок выключен
func (s *Service) GetBookingDateRange(ctx context.Context) (domain.BookingDateRange, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		s.logger.Error("GetBookingDateRange: failed to get settings: %v", err)
		return domain.BookingDateRange{}, fmt.Errorf("%w: GetBookingDateRange - get settings: %v", ErrInternal, err)
	}

	if !settings.Enabled {
		return domain.BookingDateRange{Enabled: false}, nil
	}

	now := s.timeProvider.Now()
	start := startOfDay(now.Add(time.Duration(settings.MinimumAdvanceHours) * time.Hour))
	end := startOfDay(now).AddDate(0, 0, settings.AdvanceDays)

	return domain.BookingDateRange{
		StartDate: &start,
		EndDate:   &end,
		Enabled:   true,
	}, nil
}

// GetSettings получает текущие настройки периода приёма заявок
func (s *Service) GetSettings(ctx context.Context) (domain.BookingSettings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		s.logger.Error("GetSettings: repository error: %v", err)
		return domain.BookingSettings{}, fmt.Errorf("%w: GetSettings - repository error: %v", ErrInternal, err)
	}
	return settings, nil
}

// UpdateSettings атомарно применяет группу настроек
// Значения вне границ отклоняют всю группу: частичного применения нет
func (s *Service) UpdateSettings(ctx context.Context, settings domain.BookingSettings) error {
	if err := settings.Validate(); err != nil {
		s.logger.Warn("UpdateSettings: validation failed: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return s.settingsRepo.UpdateSettings(txCtx, settings)
	})
	if err != nil {
		s.logger.Error("UpdateSettings: failed to apply settings: %v", err)
		return fmt.Errorf("%w: UpdateSettings - apply settings: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSettings: enabled=%t, advance_days=%d, minimum_advance_hours=%d",
		settings.Enabled, settings.AdvanceDays, settings.MinimumAdvanceHours)
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
