package check_capacity

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Aggregator считает занятость точного слота (date, time)
// Бронирования внутри окна правила, но в другое время, не учитываются
type Aggregator struct {
	reservations ReservationRepository
}

// NewAggregator создает агрегатор поверх репозитория бронирований
func NewAggregator(reservations ReservationRepository) *Aggregator {
	return &Aggregator{reservations: reservations}
}

// CurrentBookings возвращает количество групп и гостей по неотмененным бронированиям слота
func (a *Aggregator) CurrentBookings(ctx context.Context, storeID string, date time.Time, slot types.TimeString) (domain.SlotBookings, error) {
	list, err := a.reservations.List(ctx, domain.ReservationFilter{
		StoreID: storeID,
		Date:    &date,
		Time:    &slot,
	})
	if err != nil {
		return domain.SlotBookings{}, fmt.Errorf("%w: Aggregator.CurrentBookings - list reservations: %v", ErrInternal, err)
	}

	var totals domain.SlotBookings
	for _, r := range list {
		if r.IsCancelled() {
			continue
		}
		totals.Groups++
		totals.People += r.People
	}
	return totals, nil
}
