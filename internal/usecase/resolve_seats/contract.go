package resolve_seats

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// SeatRepository интерфейс реестра мест
type SeatRepository interface {
	List(ctx context.Context, filter domain.SeatFilter) ([]*domain.Seat, error)
}

// Metrics интерфейс для учета результатов подбора
type Metrics interface {
	ObserveSeatResolution(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
