package resolve_seats

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// UseCase подбирает свободные места в слоте
type UseCase struct {
	reservationRepo ReservationRepository
	seatRepo        SeatRepository
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, seatRepo SeatRepository, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		seatRepo:        seatRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute возвращает места, свободные в точном слоте (date, time) и вмещающие группу
// Ошибка любого хранилища возвращается как ErrInternal, частичный результат не собирается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveSeats: store=%s, date=%s, time=%s, people=%d",
		req.StoreID, req.Date.Format(domain.DateFormat), req.Time, req.People)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveSeats: validation failed: %v", err)
		return nil, err
	}

	people := req.People
	if people <= 0 {
		people = domain.DefaultPeople
	}

	// 1. Бронирования точного слота, без отмененных
	reservations, err := uc.reservationRepo.List(ctx, domain.ReservationFilter{
		StoreID:   req.StoreID,
		Date:      &req.Date,
		Time:      &req.Time,
		ExcludeID: req.ExcludeReservationID,
	})
	if err != nil {
		uc.logger.Error("ResolveSeats: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 2. Занятые места, бронирования без места игнорируются
	occupied := occupiedSeatIDs(reservations)

	// 3. Активные, незаблокированные и достаточно большие места кроме занятых
	seats, err := uc.seatRepo.List(ctx, domain.SeatFilter{
		StoreID:       req.StoreID,
		MinCapacity:   people,
		OnlyAvailable: true,
		ExcludeIDs:    occupied,
	})
	if err != nil {
		uc.logger.Error("ResolveSeats: failed to list seats: %v", err)
		return nil, fmt.Errorf("%w: failed to list seats: %v", ErrInternal, err)
	}

	available := make([]*domain.Seat, 0, len(seats))
	for _, seat := range seats {
		if seat.IsEligibleFor(people) {
			available = append(available, seat)
		}
	}

	resp := &Response{
		Available:       len(available) > 0,
		AvailableSeats:  available,
		RecommendedSeat: Recommend(available, people),
		OccupiedSeats:   len(occupied),
	}

	if resp.Available {
		uc.metrics.ObserveSeatResolution(OutcomeAvailable)
		uc.logger.Info("ResolveSeats: %d seats available, recommended id=%d", len(available), resp.RecommendedSeat.ID)
	} else {
		uc.metrics.ObserveSeatResolution(OutcomeUnavailable)
		uc.logger.Info("ResolveSeats: no seats available, occupied=%d", resp.OccupiedSeats)
	}

	return resp, nil
}

// Degraded возвращает резервный набор мест и отмечает это в метриках
func (uc *UseCase) Degraded(req *Request) *Response {
	uc.metrics.ObserveSeatResolution(OutcomeDegraded)
	uc.logger.Warn("ResolveSeats: store=%s served from fallback seat set", req.StoreID)
	return Fallback(req)
}

func occupiedSeatIDs(reservations []*domain.Reservation) []int64 {
	seen := make(map[int64]struct{}, len(reservations))
	ids := make([]int64, 0, len(reservations))
	for _, r := range reservations {
		if r.SeatID == nil || r.IsCancelled() {
			continue
		}
		if _, ok := seen[*r.SeatID]; ok {
			continue
		}
		seen[*r.SeatID] = struct{}{}
		ids = append(ids, *r.SeatID)
	}
	return ids
}
