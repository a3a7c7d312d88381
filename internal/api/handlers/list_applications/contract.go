package list_applications

import (
	"context"

	"github.com/m04kA/ACI-ReservationService/internal/service/applications/models"
)

type ApplicationService interface {
	List(ctx context.Context, req *models.ListApplicationsRequest) (*models.ApplicationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
