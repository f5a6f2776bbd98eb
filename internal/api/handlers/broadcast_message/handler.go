package broadcast_message

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/messaging"
	"github.com/m04kA/SMC-ReservationService/internal/service/messaging/models"
)

const (
	msgInvalidRequestBody = "リクエストの形式が不正です"
	msgInvalidText        = "メッセージの内容が不正です"
	msgMessagingDisabled  = "LINE配信は設定されていません"
	msgTooManyRequests    = "配信上限に達しました。しばらくしてから再度お試しください"
)

type Handler struct {
	service MessagingService
	logger  Logger
}

func NewHandler(service MessagingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/line/broadcast
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.BroadcastRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /line/broadcast - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /line/broadcast - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidText)
		return
	}

	resp, err := h.service.Broadcast(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, messaging.ErrInvalidInput):
			h.logger.Warn("POST /line/broadcast - Invalid message: %v", err)
			handlers.RespondBadRequest(w, msgInvalidText)

		case errors.Is(err, messaging.ErrDisabled):
			h.logger.Warn("POST /line/broadcast - Messaging disabled")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgMessagingDisabled)

		case errors.Is(err, messaging.ErrRateLimited):
			handlers.RespondTooManyRequests(w, msgTooManyRequests)

		default:
			h.logger.Error("POST /line/broadcast - Failed to broadcast: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /line/broadcast - Announcement sent")
	handlers.RespondJSON(w, http.StatusOK, resp)
}
