package cancel_application

import (
	"context"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

// ApplicationRepository интерфейс репозитория заявок
type ApplicationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	Cancel(ctx context.Context, id int64) error
}

// PreferredSlotRepository интерфейс журнала кандидатов
type PreferredSlotRepository interface {
	ListActive(ctx context.Context, applicationID int64) ([]*domain.PreferredSlot, error)
	SoftDelete(ctx context.Context, applicationID int64, date time.Time, timeSlot domain.TimeSlot, reason domain.DeletionReason) error
}

// SlotRepository интерфейс леджера слотов
type SlotRepository interface {
	Decrement(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) error
	SetAvailability(ctx context.Context, date time.Time, timeSlot domain.TimeSlot, isAvailable bool) error
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
