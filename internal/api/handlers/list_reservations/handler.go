package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
)

const (
	msgInvalidStoreID = "店舗IDが不正です"
	msgInvalidQuery   = "検索条件が不正です"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stores/{storeId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	storeID, err := handlers.PathString(r, "storeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	query := FromQuery(r.URL.Query())
	if err := handlers.Validate(query); err != nil {
		h.logger.Warn("GET /stores/{id}/reservations - Validation failed: store_id=%s, %v", storeID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	req, err := query.ToServiceRequest(storeID)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/reservations - Failed to parse query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		h.logger.Error("GET /stores/{id}/reservations - Failed to list reservations: store_id=%s, error=%v", storeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /stores/{id}/reservations - store_id=%s, total=%d", storeID, list.Total)
	handlers.RespondJSON(w, http.StatusOK, list)
}
