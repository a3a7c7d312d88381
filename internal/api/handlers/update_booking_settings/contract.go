package update_booking_settings

import (
	"context"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

type BookingWindowService interface {
	UpdateSettings(ctx context.Context, settings domain.BookingSettings) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
