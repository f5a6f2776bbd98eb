package check_capacity

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// UseCase вычисляет, можно ли принять бронирование в слоте
type UseCase struct {
	ruleRepo   RuleRepository
	aggregator *Aggregator
	metrics    Metrics
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ruleRepo RuleRepository,
	reservationRepo ReservationRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		ruleRepo:   ruleRepo,
		aggregator: NewAggregator(reservationRepo),
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute валидирует запрос и выполняет проверку вместимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckCapacity: store=%s, date=%s, time=%s, people=%d",
		req.StoreID, req.Date.Format(domain.DateFormat), req.Time, req.People)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckCapacity: validation failed: %v", err)
		return nil, err
	}

	decision, err := uc.Evaluate(ctx, req.StoreID, req.Date, req.Time, req.People)
	if err != nil {
		return nil, err
	}
	uc.metrics.ObserveCapacityDecision(decision.CanBook)

	return toResponse(decision), nil
}

// Evaluate применяет действующие правила в порядке хранения, первый отказ завершает проверку
// Ошибка чтения правил или бронирований прерывает проверку целиком
// Метрику решения записывает вызывающий, Evaluate может повторяться при ретраях транзакции
func (uc *UseCase) Evaluate(ctx context.Context, storeID string, date time.Time, slot types.TimeString, people int) (*domain.CapacityDecision, error) {
	if people <= 0 {
		people = domain.DefaultPeople
	}

	rules, err := uc.ruleRepo.ListByStore(ctx, storeID)
	if err != nil {
		uc.logger.Error("CheckCapacity: failed to list rules for store=%s: %v", storeID, err)
		return nil, fmt.Errorf("%w: failed to list rules: %v", ErrInternal, err)
	}

	applicable := applicableRules(rules, date, slot)
	decision := &domain.CapacityDecision{
		CanBook:      true,
		AppliedRules: len(applicable),
	}

	// Занятость слота читается не более одного раза за проверку
	var current *domain.SlotBookings
	loadCurrent := func() (domain.SlotBookings, error) {
		if current != nil {
			return *current, nil
		}
		totals, err := uc.aggregator.CurrentBookings(ctx, storeID, date, slot)
		if err != nil {
			return domain.SlotBookings{}, err
		}
		current = &totals
		return totals, nil
	}

	for _, rule := range applicable {
		if rule.MaxGroups != nil {
			totals, err := loadCurrent()
			if err != nil {
				uc.logger.Error("CheckCapacity: aggregation failed for store=%s: %v", storeID, err)
				return nil, err
			}

			maxGroups := *rule.MaxGroups
			if totals.Groups >= maxGroups {
				deny(decision, fmt.Sprintf(domain.ReasonGroupsFull, maxGroups))
				break
			}
			decision.AvailableCapacity.MaxGroups = ptr.Ptr(maxGroups)
			decision.AvailableCapacity.CurrentGroups = ptr.Ptr(totals.Groups)
			decision.AvailableCapacity.RemainingGroups = ptr.Ptr(maxGroups - totals.Groups)
		}

		if rule.MaxPeople != nil {
			totals, err := loadCurrent()
			if err != nil {
				uc.logger.Error("CheckCapacity: aggregation failed for store=%s: %v", storeID, err)
				return nil, err
			}

			maxPeople := *rule.MaxPeople
			if totals.People+people > maxPeople {
				deny(decision, fmt.Sprintf(domain.ReasonPeopleExceeded, maxPeople))
				break
			}
			decision.AvailableCapacity.MaxPeople = ptr.Ptr(maxPeople)
			decision.AvailableCapacity.CurrentPeople = ptr.Ptr(totals.People)
			decision.AvailableCapacity.RemainingPeople = ptr.Ptr(maxPeople - totals.People)
		}

		if rule.MaxPerGroup != nil && people > *rule.MaxPerGroup {
			deny(decision, fmt.Sprintf(domain.ReasonPerGroupExceeded, *rule.MaxPerGroup))
			break
		}
	}

	if decision.CanBook {
		uc.logger.Info("CheckCapacity: store=%s slot %s %s admitted, applied rules=%d",
			storeID, date.Format(domain.DateFormat), slot, decision.AppliedRules)
	} else {
		uc.logger.Info("CheckCapacity: store=%s slot %s %s denied: %s",
			storeID, date.Format(domain.DateFormat), slot, decision.Reason)
	}

	return decision, nil
}

func deny(decision *domain.CapacityDecision, reason string) {
	decision.CanBook = false
	decision.Reason = reason
}
