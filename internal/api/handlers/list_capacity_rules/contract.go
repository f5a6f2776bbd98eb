package list_capacity_rules

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/rules/models"
)

type RuleService interface {
	List(ctx context.Context, storeID string) (*models.RuleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
