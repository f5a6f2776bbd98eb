package create_reservation

import (
	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/handlers/check_capacity"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Date           string  `json:"date" validate:"required,datetime=2006-01-02"` // "2025-09-09"
	Time           string  `json:"time" validate:"required,hhmm"`                // "19:00"
	People         int     `json:"people" validate:"min=0,max=100"`
	SeatID         *int64  `json:"seatId,omitempty" validate:"omitempty,gt=0"`
	AutoAssignSeat bool    `json:"autoAssignSeat,omitempty"`
	Channel        string  `json:"channel,omitempty" validate:"omitempty,oneof=line liff admin"`
	CustomerName   string  `json:"customerName" validate:"required,max=100"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	LineUserID     *string `json:"lineUserId,omitempty" validate:"omitempty,max=64"`
	Notes          *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	Reservation       *models.ReservationResponse      `json:"reservation"`
	AvailableCapacity check_capacity.AvailableCapacity `json:"availableCapacity"`
	Notified          bool                             `json:"notified"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(storeID string) (*createReservation.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := handlers.ParseTime(r.Time)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		StoreID:        storeID,
		Date:           date,
		Time:           slot,
		People:         r.People,
		SeatID:         r.SeatID,
		AutoAssignSeat: r.AutoAssignSeat,
		Channel:        domain.ReservationChannel(r.Channel),
		CustomerName:   r.CustomerName,
		Phone:          r.Phone,
		LineUserID:     r.LineUserID,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	c := resp.AvailableCapacity
	return &CreateReservationResponse{
		Reservation: models.FromDomainReservation(resp.Reservation),
		AvailableCapacity: check_capacity.AvailableCapacity{
			MaxGroups:       c.MaxGroups,
			CurrentGroups:   c.CurrentGroups,
			RemainingGroups: c.RemainingGroups,
			MaxPeople:       c.MaxPeople,
			CurrentPeople:   c.CurrentPeople,
			RemainingPeople: c.RemainingPeople,
		},
		Notified: resp.Notified,
	}
}
