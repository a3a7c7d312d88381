package create_application

import (
	"context"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

// ApplicationRepository интерфейс репозитория заявок
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
}

// PreferredSlotRepository интерфейс журнала кандидатов
type PreferredSlotRepository interface {
	Create(ctx context.Context, slot *domain.PreferredSlot) (*domain.PreferredSlot, error)
}

// SlotRepository интерфейс леджера слотов
type SlotRepository interface {
	EnsureSlot(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) error
	IsBookable(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) (bool, error)
	Increment(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) error
}

// AvailabilityService интерфейс политики доступности (оверрайды + недельная сетка)
type AvailabilityService interface {
	IsDateTimeAvailable(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) (bool, error)
}

// BookingWindowService интерфейс политики периода приёма заявок
type BookingWindowService interface {
	IsDateWithinBookingPeriod(ctx context.Context, date time.Time) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
