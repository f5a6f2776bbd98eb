package resolve_seats

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Исходы подбора для метрик
const (
	OutcomeAvailable   = "available"
	OutcomeUnavailable = "unavailable"
	OutcomeDegraded    = "degraded"
)

// Request модель запроса на подбор мест
type Request struct {
	StoreID              string
	Date                 time.Time
	Time                 types.TimeString
	People               int
	ExcludeReservationID *int64 // бронирование, которое редактируется и не должно занимать своё место
}

// Response свободные места слота и рекомендованное место
type Response struct {
	Available       bool
	AvailableSeats  []*domain.Seat
	RecommendedSeat *domain.Seat // nil, если свободных мест нет
	OccupiedSeats   int          // количество различных занятых мест в слоте
	Degraded        bool         // ответ собран из резервного набора мест
}
