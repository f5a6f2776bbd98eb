package check_capacity

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	checkCapacity "github.com/m04kA/SMC-ReservationService/internal/usecase/check_capacity"
)

const (
	msgInvalidStoreID     = "店舗IDが不正です"
	msgInvalidRequestBody = "リクエストの形式が不正です"
	msgInvalidRequest     = "日付(YYYY-MM-DD)と時間(HH:MM)は必須です"
)

type Handler struct {
	useCase CheckCapacityUseCase
	logger  Logger
}

func NewHandler(useCase CheckCapacityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/stores/{storeId}/capacity/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	storeID, err := handlers.PathString(r, "storeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	var req CheckCapacityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /capacity/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /capacity/check - Validation failed: store_id=%s, %v", storeID, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(storeID)
	if err != nil {
		h.logger.Warn("POST /capacity/check - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkCapacity.ErrInvalidInput):
			h.logger.Warn("POST /capacity/check - Invalid input: store_id=%s, %v", storeID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /capacity/check - Failed to evaluate capacity: store_id=%s, error=%v", storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /capacity/check - store_id=%s, can_book=%t, applied_rules=%d",
		storeID, result.CanBook, result.AppliedRules)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
