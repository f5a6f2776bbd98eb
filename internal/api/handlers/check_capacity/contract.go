package check_capacity

import (
	"context"

	checkCapacity "github.com/m04kA/SMC-ReservationService/internal/usecase/check_capacity"
)

type CheckCapacityUseCase interface {
	Execute(ctx context.Context, req *checkCapacity.Request) (*checkCapacity.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
