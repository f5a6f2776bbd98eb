package check_capacity

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// RuleRepository интерфейс хранилища правил вместимости
type RuleRepository interface {
	// ListByStore возвращает все правила магазина в порядке хранения
	ListByStore(ctx context.Context, storeID string) ([]*domain.CapacityRule, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// Metrics интерфейс для учета решений
type Metrics interface {
	ObserveCapacityDecision(canBook bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
