package get_weekly_availability

import (
	"context"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

type AvailabilityService interface {
	GetWeeklySettings(ctx context.Context) ([]*domain.WeeklyAvailability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
