package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/line"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	notifier        Notifier
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает бронирования магазина, опционально на конкретную дату
// Отмененные бронирования возвращаются только при IncludeCancelled
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	logMsg := fmt.Sprintf("List: fetching reservations for store=%s", req.StoreID)
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info("%s", logMsg)

	if strings.TrimSpace(req.StoreID) == "" {
		return nil, fmt.Errorf("%w: storeId is required", ErrInvalidInput)
	}

	list, err := s.reservationRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error for store=%s: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations for store=%s", len(list), req.StoreID)
	return models.FromDomainReservationList(list), nil
}

// Cancel отменяет бронирование и освобождает его место и вместимость слота
func (s *Service) Cancel(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	reservation, err := s.get(ctx, "Cancel", id)
	if err != nil {
		return nil, err
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, reservation.Status)
		return nil, ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, id); err != nil {
		switch {
		case errors.Is(err, reservationRepo.ErrAlreadyCancelled):
			s.logger.Warn("Cancel: reservation id=%d was cancelled concurrently", id)
			return nil, ErrCannotCancel
		case errors.Is(err, reservationRepo.ErrReservationNotFound):
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	cancelled, err := s.get(ctx, "Cancel", id)
	if err != nil {
		return nil, err
	}

	s.notifyCancelled(ctx, cancelled)

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return models.FromDomainReservation(cancelled), nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return reservation, nil
}

func (s *Service) notifyCancelled(ctx context.Context, r *domain.Reservation) {
	if r.LineUserID == nil || *r.LineUserID == "" || !s.notifier.Enabled() {
		return
	}

	text := fmt.Sprintf("ご予約をキャンセルしました。\n日時: %s %s\n予約番号: %d",
		r.Date.Format(domain.DateFormat), r.Time, r.ID)
	if err := s.notifier.Push(ctx, *r.LineUserID, line.TextMessage(text)); err != nil {
		s.logger.Warn("Cancel: failed to notify reservation id=%d: %v", r.ID, err)
	}
}
