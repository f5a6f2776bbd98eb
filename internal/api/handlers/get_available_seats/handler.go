package get_available_seats

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	resolveSeats "github.com/m04kA/SMC-ReservationService/internal/usecase/resolve_seats"
)

const (
	msgInvalidStoreID = "店舗IDが不正です"
	msgInvalidQuery   = "日付(YYYY-MM-DD)と時間(HH:MM)は必須です"
)

type Handler struct {
	useCase ResolveSeatsUseCase
	logger  Logger
	// fallback отдавать резервный набор мест при недоступности реестра
	fallback bool
}

func NewHandler(useCase ResolveSeatsUseCase, logger Logger, fallback bool) *Handler {
	return &Handler{
		useCase:  useCase,
		logger:   logger,
		fallback: fallback,
	}
}

// Handle GET /api/v1/stores/{storeId}/seats/available
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	storeID, err := handlers.PathString(r, "storeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	query := FromQuery(r.URL.Query())
	if err := handlers.Validate(query); err != nil {
		h.logger.Warn("GET /seats/available - Validation failed: store_id=%s, %v", storeID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	useCaseReq, err := query.ToUseCaseRequest(storeID)
	if err != nil {
		h.logger.Warn("GET /seats/available - Failed to parse query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, resolveSeats.ErrInvalidInput):
			h.logger.Warn("GET /seats/available - Invalid input: store_id=%s, %v", storeID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, resolveSeats.ErrInternal) && h.fallback:
			// Деградированный режим включен в конфигурации, клиент видит degraded=true
			h.logger.Error("GET /seats/available - Store unavailable, serving fallback: store_id=%s, error=%v", storeID, err)
			handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(h.useCase.Degraded(useCaseReq)))

		default:
			h.logger.Error("GET /seats/available - Failed to resolve seats: store_id=%s, error=%v", storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /seats/available - store_id=%s, available=%d, occupied=%d",
		storeID, len(result.AvailableSeats), result.OccupiedSeats)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
