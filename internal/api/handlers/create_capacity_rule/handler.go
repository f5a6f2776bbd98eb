package create_capacity_rule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/rules"
	"github.com/m04kA/SMC-ReservationService/internal/service/rules/models"
)

const (
	msgInvalidStoreID     = "店舗IDが不正です"
	msgInvalidRequestBody = "リクエストの形式が不正です"
	msgInvalidRule        = "ルールの内容が不正です"
)

type Handler struct {
	service RuleService
	logger  Logger
}

func NewHandler(service RuleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/stores/{storeId}/capacity-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	storeID, err := handlers.PathString(r, "storeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	var req models.RuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stores/{id}/capacity-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Согласованность полей правила проверяет сервис
	rule, err := h.service.Create(r.Context(), storeID, &req)
	if err != nil {
		if errors.Is(err, rules.ErrInvalidInput) {
			h.logger.Warn("POST /stores/{id}/capacity-rules - Invalid rule: store_id=%s, %v", storeID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)
			return
		}
		h.logger.Error("POST /stores/{id}/capacity-rules - Failed to create rule: store_id=%s, error=%v", storeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /stores/{id}/capacity-rules - Rule created: rule_id=%d, store_id=%s", rule.ID, storeID)
	handlers.RespondJSON(w, http.StatusCreated, rule)
}
