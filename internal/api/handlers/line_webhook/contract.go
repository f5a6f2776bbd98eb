package line_webhook

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/integrations/line"
)

type EventService interface {
	HandleEvents(ctx context.Context, events []line.Event) int
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
