package availability

import (
	"context"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория настроек доступности
type AvailabilityRepository interface {
	GetWeeklySettings(ctx context.Context) ([]*domain.WeeklyAvailability, error)
	IsWeeklySlotAvailable(ctx context.Context, dayOfWeek domain.DayOfWeek, timeSlot domain.TimeSlot) (bool, error)
	UpdateWeeklySetting(ctx context.Context, dayOfWeek domain.DayOfWeek, timeSlot domain.TimeSlot, isAvailable bool) error
	GetDateOverride(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) (*domain.DateOverride, error)
	UpsertDateOverride(ctx context.Context, override *domain.DateOverride) error
	DeleteDateOverride(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) error
	GetOverridesInRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.DateOverride, error)
}

// ApplicationRepository интерфейс репозитория заявок
// Сервису нужна только проверка занятости пары подтверждённой бронью
type ApplicationRepository interface {
	HasConfirmedReservation(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) (bool, error)
}

// SlotRepository интерфейс леджера слотов
// Сервису нужны только материализованные строки за период для календаря
type SlotRepository interface {
	GetRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.SlotInfo, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
