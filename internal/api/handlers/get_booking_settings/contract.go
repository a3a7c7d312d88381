package get_booking_settings

import (
	"context"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

type BookingWindowService interface {
	GetSettings(ctx context.Context) (domain.BookingSettings, error)
	GetBookingDateRange(ctx context.Context) (domain.BookingDateRange, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
