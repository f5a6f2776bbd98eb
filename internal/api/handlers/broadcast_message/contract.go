package broadcast_message

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/messaging/models"
)

type MessagingService interface {
	Broadcast(ctx context.Context, req *models.BroadcastRequest) (*models.BroadcastResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
