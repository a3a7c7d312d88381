package confirm_reservation

import (
	"context"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

// ApplicationRepository интерфейс репозитория заявок
type ApplicationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	Confirm(ctx context.Context, id int64, confirmedDate time.Time, confirmedSlot domain.TimeSlot) error
}

// PreferredSlotRepository интерфейс журнала кандидатов
type PreferredSlotRepository interface {
	ListActive(ctx context.Context, applicationID int64) ([]*domain.PreferredSlot, error)
	SoftDeleteOthers(ctx context.Context, applicationID int64, keepDate time.Time, keepSlot domain.TimeSlot) error
}

// SlotRepository интерфейс леджера слотов
type SlotRepository interface {
	IsBookable(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) (bool, error)
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
