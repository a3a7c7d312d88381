package remove_date_override

import (
	"context"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

type AvailabilityService interface {
	RemoveDateOverride(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
