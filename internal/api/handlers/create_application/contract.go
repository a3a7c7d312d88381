package create_application

import (
	"context"

	createApplication "github.com/m04kA/ACI-ReservationService/internal/usecase/create_application"
)

type CreateApplicationUseCase interface {
	Execute(ctx context.Context, req *createApplication.Request) (*createApplication.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
