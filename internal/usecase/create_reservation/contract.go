package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/line"
	"github.com/m04kA/SMC-ReservationService/internal/usecase/resolve_seats"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// CapacityEvaluator проверка вместимости слота
type CapacityEvaluator interface {
	Evaluate(ctx context.Context, storeID string, date time.Time, slot types.TimeString, people int) (*domain.CapacityDecision, error)
}

// SeatResolver подбор свободных мест слота
type SeatResolver interface {
	Execute(ctx context.Context, req *resolve_seats.Request) (*resolve_seats.Response, error)
}

// SlotLocker взаимное исключение по слоту (store, date, time)
type SlotLocker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

// Notifier отправка подтверждения в LINE
type Notifier interface {
	Enabled() bool
	Push(ctx context.Context, to string, messages ...line.Message) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс для учета решений и созданных бронирований
type Metrics interface {
	ObserveCapacityDecision(canBook bool)
	ObserveReservationCreated(channel string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
