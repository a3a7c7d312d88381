package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
	availabilityRepo "github.com/m04kA/ACI-ReservationService/internal/infra/storage/availability"
)

// Service политика доступности пары (дата, временное окно)
//
// Доступность решается слоями:
//  1. оверрайд на конкретную дату всегда побеждает;
//  2. иначе недельная сетка по дню недели (отсутствие ячейки = недоступно);
//  3. иначе пара недоступна, если её занимает подтверждённая бронь.
type Service struct {
	availabilityRepo AvailabilityRepository
	applicationRepo  ApplicationRepository
	slotRepo         SlotRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	availabilityRepo AvailabilityRepository,
	applicationRepo ApplicationRepository,
	slotRepo SlotRepository,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		applicationRepo:  applicationRepo,
		slotRepo:         slotRepo,
		logger:           logger,
	}
}

// IsDateTimeAvailable проверяет доступность пары (дата, окно) по слоям политики
func (s *Service) IsDateTimeAvailable(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) (bool, error) {
	// 1. Оверрайд на конкретную дату
	override, err := s.availabilityRepo.GetDateOverride(ctx, date, timeSlot)
	if err != nil && !errors.Is(err, availabilityRepo.ErrOverrideNotFound) {
		s.logger.Error("IsDateTimeAvailable: failed to get override for %s/%s: %v",
			date.Format(domain.DateFormat), timeSlot, err)
		return false, fmt.Errorf("%w: IsDateTimeAvailable - get override: %v", ErrInternal, err)
	}
	if override != nil {
		return override.IsAvailable, nil
	}

	// 2. Недельная сетка по дню недели
	weeklyAvailable, err := s.availabilityRepo.IsWeeklySlotAvailable(ctx, domain.DayOfWeekFromDate(date), timeSlot)
	if err != nil {
		s.logger.Error("IsDateTimeAvailable: failed to get weekly setting for %s/%s: %v",
			date.Format(domain.DateFormat), timeSlot, err)
		return false, fmt.Errorf("%w: IsDateTimeAvailable - get weekly setting: %v", ErrInternal, err)
	}
	if !weeklyAvailable {
		return false, nil
	}

	// 3. Подтверждённая бронь блокирует пару даже при открытой сетке
	hasConfirmed, err := s.applicationRepo.HasConfirmedReservation(ctx, date, timeSlot)
	if err != nil {
		s.logger.Error("IsDateTimeAvailable: failed to check confirmed reservation for %s/%s: %v",
			date.Format(domain.DateFormat), timeSlot, err)
		return false, fmt.Errorf("%w: IsDateTimeAvailable - check confirmed reservation: %v", ErrInternal, err)
	}

	return !hasConfirmed, nil
}

// SetDateOverride создает или обновляет оверрайд на пару (дата, окно)
// Запрещено, пока пару занимает подтверждённая бронь
func (s *Service) SetDateOverride(ctx context.Context, date time.Time, timeSlot domain.TimeSlot, isAvailable bool, reason, createdBy string) error {
	if err := s.guardConfirmedReservation(ctx, date, timeSlot); err != nil {
		return err
	}

	override := &domain.DateOverride{
		Date:        date,
		TimeSlot:    timeSlot,
		IsAvailable: isAvailable,
		Reason:      reason,
		CreatedBy:   createdBy,
	}

	if err := s.availabilityRepo.UpsertDateOverride(ctx, override); err != nil {
		s.logger.Error("SetDateOverride: failed to upsert override for %s/%s: %v",
			date.Format(domain.DateFormat), timeSlot, err)
		return fmt.Errorf("%w: SetDateOverride - upsert override: %v", ErrInternal, err)
	}

	s.logger.Info("SetDateOverride: %s/%s set to available=%t by %s",
		date.Format(domain.DateFormat), timeSlot, isAvailable, createdBy)
	return nil
}

// RemoveDateOverride удаляет оверрайд, возвращая пару к недельной сетке
// Запрещено, пока пару занимает подтверждённая бронь
func (s *Service) RemoveDateOverride(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) error {
	if err := s.guardConfirmedReservation(ctx, date, timeSlot); err != nil {
		return err
	}

	if err := s.availabilityRepo.DeleteDateOverride(ctx, date, timeSlot); err != nil {
		if errors.Is(err, availabilityRepo.ErrOverrideNotFound) {
			s.logger.Warn("RemoveDateOverride: override not found for %s/%s",
				date.Format(domain.DateFormat), timeSlot)
			return ErrOverrideNotFound
		}
		s.logger.Error("RemoveDateOverride: failed to delete override for %s/%s: %v",
			date.Format(domain.DateFormat), timeSlot, err)
		return fmt.Errorf("%w: RemoveDateOverride - delete override: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveDateOverride: %s/%s reverted to weekly default",
		date.Format(domain.DateFormat), timeSlot)
	return nil
}

// UpdateWeeklySetting обновляет ячейку недельной сетки
// Без проверки подтверждённых броней: это политика на все будущие даты,
// конкретные подтверждённые пары защищает слой 3 в IsDateTimeAvailable
func (s *Service) UpdateWeeklySetting(ctx context.Context, dayOfWeek domain.DayOfWeek, timeSlot domain.TimeSlot, isAvailable bool) error {
	if err := s.availabilityRepo.UpdateWeeklySetting(ctx, dayOfWeek, timeSlot, isAvailable); err != nil {
		if errors.Is(err, availabilityRepo.ErrWeeklySettingNotFound) {
			s.logger.Warn("UpdateWeeklySetting: setting not found for %s/%s", dayOfWeek, timeSlot)
			return ErrWeeklySettingNotFound
		}
		s.logger.Error("UpdateWeeklySetting: failed to update %s/%s: %v", dayOfWeek, timeSlot, err)
		return fmt.Errorf("%w: UpdateWeeklySetting - update setting: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWeeklySetting: %s/%s set to available=%t", dayOfWeek, timeSlot, isAvailable)
	return nil
}

// GetWeeklySettings получает недельную сетку 7x3 для админки
func (s *Service) GetWeeklySettings(ctx context.Context) ([]*domain.WeeklyAvailability, error) {
	settings, err := s.availabilityRepo.GetWeeklySettings(ctx)
	if err != nil {
		s.logger.Error("GetWeeklySettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWeeklySettings - repository error: %v", ErrInternal, err)
	}
	return settings, nil
}

// GetMonthlyOverrides получает оверрайды месяца для календаря в админке
func (s *Service) GetMonthlyOverrides(ctx context.Context, year int, month time.Month) ([]*domain.DateOverride, error) {
	startDate := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, -1)

	overrides, err := s.availabilityRepo.GetOverridesInRange(ctx, startDate, endDate)
	if err != nil {
		s.logger.Error("GetMonthlyOverrides: repository error for %d-%02d: %v", year, month, err)
		return nil, fmt.Errorf("%w: GetMonthlyOverrides - repository error: %v", ErrInternal, err)
	}
	return overrides, nil
}

// MonthlyCalendar состояние леджера и оверрайды за один месяц
type MonthlyCalendar struct {
	Year      int
	Month     time.Month
	Slots     []*domain.SlotInfo
	Overrides []*domain.DateOverride
}

// GetMonthlyCalendar собирает календарь месяца: материализованные строки
// леджера плюс действующие оверрайды
func (s *Service) GetMonthlyCalendar(ctx context.Context, year int, month time.Month) (*MonthlyCalendar, error) {
	startDate := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, -1)

	slots, err := s.slotRepo.GetRange(ctx, startDate, endDate)
	if err != nil {
		s.logger.Error("GetMonthlyCalendar: failed to get slots for %d-%02d: %v", year, month, err)
		return nil, fmt.Errorf("%w: GetMonthlyCalendar - get slots: %v", ErrInternal, err)
	}

	overrides, err := s.availabilityRepo.GetOverridesInRange(ctx, startDate, endDate)
	if err != nil {
		s.logger.Error("GetMonthlyCalendar: failed to get overrides for %d-%02d: %v", year, month, err)
		return nil, fmt.Errorf("%w: GetMonthlyCalendar - get overrides: %v", ErrInternal, err)
	}

	return &MonthlyCalendar{
		Year:      year,
		Month:     month,
		Slots:     slots,
		Overrides: overrides,
	}, nil
}

// guardConfirmedReservation запрещает менять доступность пары с подтверждённой бронью
func (s *Service) guardConfirmedReservation(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) error {
	hasConfirmed, err := s.applicationRepo.HasConfirmedReservation(ctx, date, timeSlot)
	if err != nil {
		s.logger.Error("guardConfirmedReservation: failed to check %s/%s: %v",
			date.Format(domain.DateFormat), timeSlot, err)
		return fmt.Errorf("%w: guardConfirmedReservation - check reservation: %v", ErrInternal, err)
	}
	if hasConfirmed {
		s.logger.Warn("guardConfirmedReservation: %s/%s has a confirmed reservation",
			date.Format(domain.DateFormat), timeSlot)
		return ErrConfirmedReservationConflict
	}
	return nil
}
