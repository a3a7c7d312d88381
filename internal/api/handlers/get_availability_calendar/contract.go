package get_availability_calendar

import (
	"context"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/service/availability"
)

type AvailabilityService interface {
	GetMonthlyCalendar(ctx context.Context, year int, month time.Month) (*availability.MonthlyCalendar, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
