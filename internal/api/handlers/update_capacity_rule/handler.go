package update_capacity_rule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/rules"
	"github.com/m04kA/SMC-ReservationService/internal/service/rules/models"
)

const (
	msgInvalidRuleID      = "ルールIDが不正です"
	msgInvalidRequestBody = "リクエストの形式が不正です"
	msgInvalidRule        = "ルールの内容が不正です"
	msgNotFound           = "ルールが見つかりません"
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

// Handle PUT /api/v1/capacity-rules/{ruleId}
// Полная замена правила, магазин правила не меняется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ruleID, err := handlers.PathInt64(r, "ruleId")
	if err != nil {
		h.logger.Warn("PUT /capacity-rules/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	var req models.RuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /capacity-rules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	rule, err := h.service.Update(r.Context(), ruleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrRuleNotFound):
			h.logger.Warn("PUT /capacity-rules/{id} - Rule not found: rule_id=%d", ruleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rules.ErrInvalidInput):
			h.logger.Warn("PUT /capacity-rules/{id} - Invalid rule: rule_id=%d, %v", ruleID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		default:
			h.logger.Error("PUT /capacity-rules/{id} - Failed to update rule: rule_id=%d, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /capacity-rules/{id} - Rule updated: rule_id=%d", ruleID)
	handlers.RespondJSON(w, http.StatusOK, rule)
}
