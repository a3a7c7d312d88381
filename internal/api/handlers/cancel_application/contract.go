package cancel_application

import (
	"context"

	cancelApplication "github.com/m04kA/ACI-ReservationService/internal/usecase/cancel_application"
)

type CancelApplicationUseCase interface {
	Execute(ctx context.Context, req *cancelApplication.Request) (*cancelApplication.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
