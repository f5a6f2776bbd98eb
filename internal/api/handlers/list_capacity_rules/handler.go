package list_capacity_rules

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/rules"
)

const msgInvalidStoreID = "店舗IDが不正です"

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

// Handle GET /api/v1/stores/{storeId}/capacity-rules
// Правила возвращаются в порядке применения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	storeID, err := handlers.PathString(r, "storeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	list, err := h.service.List(r.Context(), storeID)
	if err != nil {
		if errors.Is(err, rules.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidStoreID)
			return
		}
		h.logger.Error("GET /stores/{id}/capacity-rules - Failed to list rules: store_id=%s, error=%v", storeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /stores/{id}/capacity-rules - store_id=%s, total=%d", storeID, list.Total)
	handlers.RespondJSON(w, http.StatusOK, list)
}
