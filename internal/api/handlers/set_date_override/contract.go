package set_date_override

import (
	"context"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

type AvailabilityService interface {
	SetDateOverride(ctx context.Context, date time.Time, timeSlot domain.TimeSlot, isAvailable bool, reason, createdBy string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
