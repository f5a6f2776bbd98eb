package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/slotlock"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/line"
	"github.com/m04kA/SMC-ReservationService/internal/usecase/resolve_seats"
)

// DefaultLockWait сколько ждать освобождения слота другим запросом
const DefaultLockWait = 5 * time.Second

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	evaluator       CapacityEvaluator
	seats           SeatResolver
	locker          SlotLocker
	notifier        Notifier
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
	lockWait        time.Duration
	location        *time.Location
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	evaluator CapacityEvaluator,
	seats SeatResolver,
	locker SlotLocker,
	notifier Notifier,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
	lockWait time.Duration,
	location *time.Location,
) *UseCase {
	if lockWait <= 0 {
		lockWait = DefaultLockWait
	}
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		evaluator:       evaluator,
		seats:           seats,
		locker:          locker,
		notifier:        notifier,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		lockWait:        lockWait,
		location:        location,
	}
}

// Execute выполняет use case создания бронирования
// Проверка вместимости и вставка выполняются под блокировкой слота в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Channel == "" {
		req.Channel = domain.ChannelAdmin
	}
	if req.People <= 0 {
		req.People = domain.DefaultPeople
	}

	uc.logger.Info("CreateReservation: store=%s, date=%s, time=%s, people=%d, channel=%s",
		req.StoreID, req.Date.Format(domain.DateFormat), req.Time, req.People, req.Channel)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	if err := validateDate(req.Date, uc.timeProvider.Now().In(uc.location)); err != nil {
		uc.logger.Warn("CreateReservation: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 2. Захватываем слот
	lockCtx, cancel := context.WithTimeout(ctx, uc.lockWait)
	defer cancel()

	key := slotlock.Key(req.StoreID, req.Date, req.Time)
	unlock, err := uc.locker.Lock(lockCtx, key)
	if err != nil {
		if errors.Is(err, slotlock.ErrLockTimeout) {
			uc.logger.Warn("CreateReservation: slot %s is busy", key)
			return nil, ErrSlotBusy
		}
		uc.logger.Error("CreateReservation: failed to lock slot %s: %v", key, err)
		return nil, fmt.Errorf("%w: failed to lock slot: %v", ErrInternal, err)
	}
	defer unlock()

	var (
		result   *domain.Reservation
		snapshot domain.AvailableCapacity
		canBook  *bool
	)

	// 3. Проверка и вставка в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		canBook = nil

		// 3.1. Решение по вместимости, бронирования слота читаются FOR UPDATE
		decision, err := uc.evaluator.Evaluate(txCtx, req.StoreID, req.Date, req.Time, req.People)
		if err != nil {
			uc.logger.Error("CreateReservation: capacity evaluation failed: %v", err)
			return fmt.Errorf("%w: capacity evaluation failed: %v", ErrInternal, err)
		}
		canBook = &decision.CanBook
		if !decision.CanBook {
			uc.logger.Warn("CreateReservation: denied: %s", decision.Reason)
			return &CapacityError{Reason: decision.Reason}
		}
		snapshot = decision.AvailableCapacity

		// 3.2. Место
		seatID, err := uc.pickSeat(txCtx, req)
		if err != nil {
			return err
		}

		// 3.3. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			StoreID:      req.StoreID,
			Date:         req.Date,
			Time:         req.Time,
			People:       req.People,
			SeatID:       seatID,
			Status:       domain.StatusConfirmed,
			Channel:      req.Channel,
			CustomerName: req.CustomerName,
			Phone:        req.Phone,
			LineUserID:   req.LineUserID,
			Notes:        req.Notes,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	// Решение последней попытки, ретраи транзакции не учитываются повторно
	if canBook != nil {
		uc.metrics.ObserveCapacityDecision(*canBook)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)
	uc.metrics.ObserveReservationCreated(string(result.Channel))

	// 4. Подтверждение в LINE не влияет на результат
	return &Response{
		Reservation:       result,
		AvailableCapacity: snapshot,
		Notified:          uc.notify(ctx, result),
	}, nil
}

// pickSeat проверяет явно выбранное место или назначает рекомендованное
func (uc *UseCase) pickSeat(ctx context.Context, req *Request) (*int64, error) {
	if req.SeatID == nil && !req.AutoAssignSeat {
		return nil, nil
	}

	resolved, err := uc.seats.Execute(ctx, &resolve_seats.Request{
		StoreID: req.StoreID,
		Date:    req.Date,
		Time:    req.Time,
		People:  req.People,
	})
	if err != nil {
		uc.logger.Error("CreateReservation: seat resolution failed: %v", err)
		return nil, fmt.Errorf("%w: seat resolution failed: %v", ErrInternal, err)
	}

	if req.SeatID != nil {
		for _, seat := range resolved.AvailableSeats {
			if seat.ID == *req.SeatID {
				return req.SeatID, nil
			}
		}
		uc.logger.Warn("CreateReservation: seat id=%d is not available", *req.SeatID)
		return nil, ErrSeatNotAvailable
	}

	if resolved.RecommendedSeat == nil {
		uc.logger.Warn("CreateReservation: no seat can be assigned for people=%d", req.People)
		return nil, ErrSeatNotAvailable
	}

	id := resolved.RecommendedSeat.ID
	return &id, nil
}

func (uc *UseCase) notify(ctx context.Context, r *domain.Reservation) bool {
	if r.LineUserID == nil || *r.LineUserID == "" || !uc.notifier.Enabled() {
		return false
	}

	if err := uc.notifier.Push(ctx, *r.LineUserID, line.TextMessage(confirmationText(r))); err != nil {
		uc.logger.Warn("CreateReservation: failed to push confirmation for reservation id=%d: %v", r.ID, err)
		return false
	}
	return true
}
