package bookingwindow

import (
	"context"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек приёма заявок
type SettingsRepository interface {
	GetSettings(ctx context.Context) (domain.BookingSettings, error)
	UpdateSettings(ctx context.Context, s domain.BookingSettings) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
