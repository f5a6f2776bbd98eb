package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidStoreID     = "店舗IDが不正です"
	msgInvalidRequestBody = "リクエストの形式が不正です"
	msgInvalidRequest     = "予約内容が不正です"
	msgPastDate           = "過去の日付は予約できません"
	msgSeatNotAvailable   = "指定された席は利用できません"
	msgSlotBusy           = "ただいま混み合っています。しばらくしてから再度お試しください"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/stores/{storeId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	storeID, err := handlers.PathString(r, "storeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /reservations - Validation failed: store_id=%s, %v", storeID, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(storeID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var capErr *createReservation.CapacityError
		switch {
		case errors.As(err, &capErr):
			// Причина отказа уже сформулирована для клиента
			h.logger.Warn("POST /reservations - Capacity exceeded: store_id=%s, date=%s, time=%s, reason=%s",
				storeID, req.Date, req.Time, capErr.Reason)
			handlers.RespondConflict(w, capErr.Reason)

		case errors.Is(err, createReservation.ErrSeatNotAvailable):
			h.logger.Warn("POST /reservations - Seat not available: store_id=%s, seat_id=%v", storeID, req.SeatID)
			handlers.RespondConflict(w, msgSeatNotAvailable)

		case errors.Is(err, createReservation.ErrSlotBusy):
			h.logger.Warn("POST /reservations - Slot busy: store_id=%s, date=%s, time=%s", storeID, req.Date, req.Time)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgSlotBusy)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Past date: store_id=%s, date=%s", storeID, req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: store_id=%s, %v", storeID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: store_id=%s, error=%v", storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, store_id=%s, notified=%t",
		result.Reservation.ID, storeID, result.Notified)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
