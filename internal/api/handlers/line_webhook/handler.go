package line_webhook

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/line"
)

const maxBodyBytes = 1 << 20

const (
	msgWebhookDisabled    = "Webhookは無効です"
	msgInvalidSignature   = "署名が不正です"
	msgInvalidRequestBody = "リクエストの形式が不正です"
)

type Handler struct {
	service       EventService
	channelSecret string
	logger        Logger
}

// NewHandler пустой channelSecret отключает webhook
func NewHandler(service EventService, channelSecret string, logger Logger) *Handler {
	return &Handler{
		service:       service,
		channelSecret: channelSecret,
		logger:        logger,
	}
}

// Handle POST /api/v1/line/webhook
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.channelSecret == "" {
		h.logger.Warn("POST /line/webhook - Channel secret is not configured")
		handlers.RespondError(w, http.StatusServiceUnavailable, msgWebhookDisabled)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.logger.Warn("POST /line/webhook - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Подпись проверяется по сырому телу до разбора JSON
	if !line.VerifySignature(h.channelSecret, body, r.Header.Get(line.SignatureHeader)) {
		h.logger.Warn("POST /line/webhook - Invalid signature")
		handlers.RespondError(w, http.StatusUnauthorized, msgInvalidSignature)
		return
	}

	var req line.WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.logger.Warn("POST /line/webhook - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	replied := h.service.HandleEvents(r.Context(), req.Events)

	h.logger.Info("POST /line/webhook - Events handled: events=%d, replied=%d", len(req.Events), replied)
	handlers.RespondJSON(w, http.StatusOK, struct{}{})
}
