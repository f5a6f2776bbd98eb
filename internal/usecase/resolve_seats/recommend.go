package resolve_seats

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// Recommend выбирает место с минимальным |capacity - people|
// При равной разнице побеждает место, встреченное первым
func Recommend(seats []*domain.Seat, people int) *domain.Seat {
	var best *domain.Seat
	bestDiff := 0
	for _, seat := range seats {
		diff := abs(seat.Capacity - people)
		if best == nil || diff < bestDiff {
			best, bestDiff = seat, diff
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// FallbackSeats синтетический набор мест для деградированного режима
// ID отрицательные, чтобы их нельзя было спутать с местами из реестра
func FallbackSeats(storeID string) []*domain.Seat {
	return []*domain.Seat{
		{ID: -1, StoreID: storeID, Name: "テーブル1", Capacity: 2, IsActive: true, DisplayOrder: 1},
		{ID: -2, StoreID: storeID, Name: "テーブル2", Capacity: 4, IsActive: true, DisplayOrder: 2},
		{ID: -3, StoreID: storeID, Name: "テーブル3", Capacity: 6, IsActive: true, DisplayOrder: 3},
	}
}

// Fallback собирает ответ из резервного набора мест
// Используется вызывающей стороной, когда реестр мест недоступен
func Fallback(req *Request) *Response {
	people := req.People
	if people <= 0 {
		people = domain.DefaultPeople
	}

	seats := make([]*domain.Seat, 0, 3)
	for _, seat := range FallbackSeats(req.StoreID) {
		if seat.IsEligibleFor(people) {
			seats = append(seats, seat)
		}
	}

	return &Response{
		Available:       len(seats) > 0,
		AvailableSeats:  seats,
		RecommendedSeat: Recommend(seats, people),
		Degraded:        true,
	}
}
