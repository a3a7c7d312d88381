package update_weekly_availability

import (
	"context"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

type AvailabilityService interface {
	UpdateWeeklySetting(ctx context.Context, dayOfWeek domain.DayOfWeek, timeSlot domain.TimeSlot, isAvailable bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
