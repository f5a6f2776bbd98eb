package messaging

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/integrations/line"
)

// Client отправка сообщений через LINE Messaging API
type Client interface {
	Enabled() bool
	Reply(ctx context.Context, replyToken string, messages ...line.Message) error
	Broadcast(ctx context.Context, messages ...line.Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
