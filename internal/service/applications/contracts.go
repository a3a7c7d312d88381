package applications

import (
	"context"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

// ApplicationRepository интерфейс репозитория заявок
type ApplicationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	GetWithFilter(ctx context.Context, filter domain.ApplicationsFilter) ([]*domain.Application, error)
}

// PreferredSlotRepository интерфейс журнала кандидатов
type PreferredSlotRepository interface {
	ListAll(ctx context.Context, applicationID int64) ([]*domain.PreferredSlot, error)
	GetByDateAndSlot(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) ([]*domain.PreferredSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
