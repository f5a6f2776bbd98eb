package resolve_seats

import (
	"context"
	"errors"
	"io"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

const testStore = "store-1"

var testDate = time.Date(2025, 9, 9, 0, 0, 0, 0, time.UTC)

type fakeReservations struct {
	items []*domain.Reservation
	err   error
}

func (f *fakeReservations) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Reservation
	for _, r := range f.items {
		if r.StoreID != filter.StoreID || !r.Date.Equal(*filter.Date) || r.Time != *filter.Time {
			continue
		}
		if filter.ExcludeID != nil && r.ID == *filter.ExcludeID {
			continue
		}
		if !filter.IncludeCancelled && r.IsCancelled() {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// fakeSeats повторяет фильтрацию и сортировку репозитория мест
type fakeSeats struct {
	items []*domain.Seat
	err   error
	last  domain.SeatFilter
}

func (f *fakeSeats) List(_ context.Context, filter domain.SeatFilter) ([]*domain.Seat, error) {
	f.last = filter
	if f.err != nil {
		return nil, f.err
	}

	excluded := make(map[int64]bool)
	for _, id := range filter.ExcludeIDs {
		excluded[id] = true
	}

	var out []*domain.Seat
	for _, s := range f.items {
		if s.StoreID != filter.StoreID || s.Capacity < filter.MinCapacity || excluded[s.ID] {
			continue
		}
		if filter.OnlyAvailable && (!s.IsActive || s.IsLocked) {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Capacity != out[j].Capacity {
			return out[i].Capacity < out[j].Capacity
		}
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out, nil
}

type fakeMetrics struct {
	outcomes []string
}

func (m *fakeMetrics) ObserveSeatResolution(outcome string) {
	m.outcomes = append(m.outcomes, outcome)
}

func seat(id int64, capacity, order int) *domain.Seat {
	return &domain.Seat{ID: id, StoreID: testStore, Capacity: capacity, IsActive: true, DisplayOrder: order}
}

func reservationAt(id, seatID int64, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:      id,
		StoreID: testStore,
		Date:    testDate,
		Time:    "19:00",
		People:  2,
		SeatID:  ptr.Ptr(seatID),
		Status:  status,
	}
}

func newUseCase(t *testing.T, reservations *fakeReservations, seats *fakeSeats) (*UseCase, *fakeMetrics) {
	t.Helper()
	log, err := logger.NewWriter(io.Discard, "error")
	require.NoError(t, err)

	m := &fakeMetrics{}
	return NewUseCase(reservations, seats, m, log), m
}

func request(people int) *Request {
	return &Request{StoreID: testStore, Date: testDate, Time: "19:00", People: people}
}

func TestExecute_ExactCapacityRecommended(t *testing.T) {
	seats := &fakeSeats{items: []*domain.Seat{seat(1, 4, 1), seat(2, 2, 2), seat(3, 6, 3)}}
	uc, m := newUseCase(t, &fakeReservations{}, seats)

	resp, err := uc.Execute(context.Background(), request(2))
	require.NoError(t, err)

	assert.True(t, resp.Available)
	require.NotNil(t, resp.RecommendedSeat)
	assert.Equal(t, 2, resp.RecommendedSeat.Capacity)
	assert.Len(t, resp.AvailableSeats, 3)
	assert.Equal(t, []string{OutcomeAvailable}, m.outcomes)
}

func TestExecute_OccupiedAndCancelled(t *testing.T) {
	seats := &fakeSeats{items: []*domain.Seat{seat(1, 2, 1), seat(2, 2, 2), seat(3, 4, 3)}}
	reservations := &fakeReservations{items: []*domain.Reservation{
		reservationAt(10, 1, domain.StatusConfirmed),
		reservationAt(11, 2, domain.StatusCancelled),
		{ID: 12, StoreID: testStore, Date: testDate, Time: "19:00", People: 2, Status: domain.StatusPending},
	}}
	// то же место в другом слоте не занято
	other := reservationAt(13, 3, domain.StatusConfirmed)
	other.Time = "20:00"
	reservations.items = append(reservations.items, other)

	uc, _ := newUseCase(t, reservations, seats)

	resp, err := uc.Execute(context.Background(), request(2))
	require.NoError(t, err)

	ids := make([]int64, 0, len(resp.AvailableSeats))
	for _, s := range resp.AvailableSeats {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int64{2, 3}, ids)
	assert.Equal(t, 1, resp.OccupiedSeats)
	assert.Equal(t, int64(2), resp.RecommendedSeat.ID)
	assert.Equal(t, []int64{1}, seats.last.ExcludeIDs)
}

func TestExecute_ExcludeReservationFreesItsSeat(t *testing.T) {
	seats := &fakeSeats{items: []*domain.Seat{seat(1, 2, 1)}}
	reservations := &fakeReservations{items: []*domain.Reservation{reservationAt(10, 1, domain.StatusConfirmed)}}
	uc, _ := newUseCase(t, reservations, seats)

	resp, err := uc.Execute(context.Background(), request(2))
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Nil(t, resp.RecommendedSeat)

	req := request(2)
	req.ExcludeReservationID = ptr.Ptr(int64(10))
	resp, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, int64(1), resp.RecommendedSeat.ID)
}

func TestExecute_LockedInactiveAndSmallSeatsExcluded(t *testing.T) {
	locked := seat(1, 4, 1)
	locked.IsLocked = true
	inactive := seat(2, 4, 2)
	inactive.IsActive = false
	small := seat(3, 2, 3)

	seats := &fakeSeats{items: []*domain.Seat{locked, inactive, small, seat(4, 6, 4)}}
	uc, _ := newUseCase(t, &fakeReservations{}, seats)

	resp, err := uc.Execute(context.Background(), request(3))
	require.NoError(t, err)

	require.Len(t, resp.AvailableSeats, 1)
	assert.Equal(t, int64(4), resp.AvailableSeats[0].ID)
	assert.Equal(t, 3, seats.last.MinCapacity)
	assert.True(t, seats.last.OnlyAvailable)
}

func TestExecute_TieKeepsFirstInOrder(t *testing.T) {
	// |2-3| == |4-3|, побеждает место, идущее первым после сортировки по вместимости
	seats := &fakeSeats{items: []*domain.Seat{seat(1, 4, 1), seat(2, 3, 1), seat(3, 2, 2)}}
	seats.items[1].IsLocked = true
	uc, _ := newUseCase(t, &fakeReservations{}, seats)

	resp, err := uc.Execute(context.Background(), request(2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.RecommendedSeat.ID)

	tied := []*domain.Seat{seat(3, 2, 2), seat(1, 4, 1)}
	assert.Equal(t, int64(3), Recommend(tied, 3).ID)
}

func TestRecommend(t *testing.T) {
	assert.Nil(t, Recommend(nil, 2))

	seats := []*domain.Seat{seat(1, 2, 1), seat(2, 4, 2), seat(3, 6, 3)}
	assert.Equal(t, int64(2), Recommend(seats, 4).ID)
	assert.Equal(t, int64(3), Recommend(seats, 6).ID)
	assert.Equal(t, int64(1), Recommend(seats, 1).ID)
}

func TestRecommend_TieKeepsFirst(t *testing.T) {
	// |2-3| == |4-3|
	seats := []*domain.Seat{seat(1, 2, 1), seat(2, 4, 2), seat(3, 6, 3)}
	assert.Equal(t, int64(1), Recommend(seats, 3).ID)

	// |4-5| == |6-5|
	assert.Equal(t, int64(2), Recommend(seats, 5).ID)
}

func TestExecute_StoreFailure(t *testing.T) {
	uc, _ := newUseCase(t, &fakeReservations{err: errors.New("down")}, &fakeSeats{})
	_, err := uc.Execute(context.Background(), request(2))
	assert.ErrorIs(t, err, ErrInternal)

	uc, _ = newUseCase(t, &fakeReservations{}, &fakeSeats{err: errors.New("down")})
	_, err = uc.Execute(context.Background(), request(2))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newUseCase(t, &fakeReservations{}, &fakeSeats{})

	_, err := uc.Execute(context.Background(), &Request{StoreID: testStore, Time: "19:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{StoreID: testStore, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	req := request(2)
	req.ExcludeReservationID = ptr.Ptr(int64(0))
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDegraded(t *testing.T) {
	uc, m := newUseCase(t, &fakeReservations{}, &fakeSeats{})

	resp := uc.Degraded(request(3))

	assert.True(t, resp.Degraded)
	assert.True(t, resp.Available)
	require.Len(t, resp.AvailableSeats, 2)
	assert.Equal(t, int64(-2), resp.RecommendedSeat.ID)
	assert.Equal(t, []string{OutcomeDegraded}, m.outcomes)

	resp = Fallback(request(7))
	assert.False(t, resp.Available)
	assert.Nil(t, resp.RecommendedSeat)
}
