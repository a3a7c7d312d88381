package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

// SlotRepository интерфейс леджера слотов
type SlotRepository interface {
	GetInfo(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) (*domain.SlotInfo, error)
}

// AvailabilityService интерфейс политики доступности (оверрайды + недельная сетка)
type AvailabilityService interface {
	IsDateTimeAvailable(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) (bool, error)
}

// BookingWindowService интерфейс политики периода приёма заявок
type BookingWindowService interface {
	IsDateWithinBookingPeriod(ctx context.Context, date time.Time) (bool, error)
	GetBookingDateRange(ctx context.Context) (domain.BookingDateRange, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
