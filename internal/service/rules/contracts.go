package rules

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// RuleRepository интерфейс репозитория правил вместимости
type RuleRepository interface {
	Create(ctx context.Context, rule *domain.CapacityRule) (*domain.CapacityRule, error)
	GetByID(ctx context.Context, id int64) (*domain.CapacityRule, error)
	ListByStore(ctx context.Context, storeID string) ([]*domain.CapacityRule, error)
	Update(ctx context.Context, rule *domain.CapacityRule) (*domain.CapacityRule, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
