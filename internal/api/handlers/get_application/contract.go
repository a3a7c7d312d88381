package get_application

import (
	"context"

	"github.com/m04kA/ACI-ReservationService/internal/service/applications/models"
)

type ApplicationService interface {
	GetByID(ctx context.Context, id int64) (*models.ApplicationDetailResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
