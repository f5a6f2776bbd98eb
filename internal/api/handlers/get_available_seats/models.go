package get_available_seats

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	resolveSeats "github.com/m04kA/SMC-ReservationService/internal/usecase/resolve_seats"
)

// SeatQuery параметры запроса
type SeatQuery struct {
	Date                 string `json:"date" validate:"required,datetime=2006-01-02"`
	Time                 string `json:"time" validate:"required,hhmm"`
	People               string `json:"people" validate:"omitempty,number"`
	ExcludeReservationID string `json:"excludeReservationId" validate:"omitempty,number"`
}

// SeatResponse HTTP модель места
type SeatResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Capacity     int    `json:"capacity"`
	DisplayOrder int    `json:"displayOrder"`
}

// AvailableSeatsResponse HTTP response model
type AvailableSeatsResponse struct {
	Available       bool           `json:"available"`
	AvailableSeats  []SeatResponse `json:"availableSeats"`
	RecommendedSeat *SeatResponse  `json:"recommendedSeat"`
	OccupiedSeats   int            `json:"occupiedSeats"`
	Degraded        bool           `json:"degraded,omitempty"`
}

// FromQuery читает параметры из query строки
func FromQuery(q url.Values) SeatQuery {
	return SeatQuery{
		Date:                 q.Get("date"),
		Time:                 q.Get("time"),
		People:               q.Get("people"),
		ExcludeReservationID: q.Get("excludeReservationId"),
	}
}

// ToUseCaseRequest конвертирует параметры в модель use case
func (q SeatQuery) ToUseCaseRequest(storeID string) (*resolveSeats.Request, error) {
	date, err := handlers.ParseDate(q.Date)
	if err != nil {
		return nil, err
	}

	slot, err := handlers.ParseTime(q.Time)
	if err != nil {
		return nil, err
	}

	req := &resolveSeats.Request{
		StoreID: storeID,
		Date:    date,
		Time:    slot,
	}

	if q.People != "" {
		if req.People, err = strconv.Atoi(q.People); err != nil {
			return nil, err
		}
	}

	if q.ExcludeReservationID != "" {
		id, err := strconv.ParseInt(q.ExcludeReservationID, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ExcludeReservationID = &id
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveSeats.Response) *AvailableSeatsResponse {
	out := &AvailableSeatsResponse{
		Available:      resp.Available,
		AvailableSeats: make([]SeatResponse, 0, len(resp.AvailableSeats)),
		OccupiedSeats:  resp.OccupiedSeats,
		Degraded:       resp.Degraded,
	}
	for _, s := range resp.AvailableSeats {
		out.AvailableSeats = append(out.AvailableSeats, toSeat(s))
	}
	if resp.RecommendedSeat != nil {
		seat := toSeat(resp.RecommendedSeat)
		out.RecommendedSeat = &seat
	}
	return out
}

func toSeat(s *domain.Seat) SeatResponse {
	return SeatResponse{
		ID:           s.ID,
		Name:         s.Name,
		Capacity:     s.Capacity,
		DisplayOrder: s.DisplayOrder,
	}
}
