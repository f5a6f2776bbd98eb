package create_capacity_rule

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/rules/models"
)

type RuleService interface {
	Create(ctx context.Context, storeID string, req *models.RuleRequest) (*models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
