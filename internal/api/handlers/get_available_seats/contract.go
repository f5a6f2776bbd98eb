package get_available_seats

import (
	"context"

	resolveSeats "github.com/m04kA/SMC-ReservationService/internal/usecase/resolve_seats"
)

type ResolveSeatsUseCase interface {
	Execute(ctx context.Context, req *resolveSeats.Request) (*resolveSeats.Response, error)
	Degraded(req *resolveSeats.Request) *resolveSeats.Response
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
