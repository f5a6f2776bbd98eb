package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модели

// ListReservationsRequest запрос на получение бронирований магазина
type ListReservationsRequest struct {
	StoreID          string     `json:"storeId"`
	Date             *time.Time `json:"date,omitempty"`             // Конкретная дата (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отмененные
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() domain.ReservationFilter {
	return domain.ReservationFilter{
		StoreID:          r.StoreID,
		Date:             r.Date,
		IncludeCancelled: r.IncludeCancelled,
	}
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID           int64   `json:"id"`
	StoreID      string  `json:"storeId"`
	Date         string  `json:"date"` // "2025-09-09"
	Time         string  `json:"time"` // "19:00"
	People       int     `json:"people"`
	SeatID       *int64  `json:"seatId,omitempty"`
	Status       string  `json:"status"`
	Channel      string  `json:"channel"`
	CustomerName string  `json:"customerName"`
	Phone        *string `json:"phone,omitempty"`
	LineUserID   *string `json:"lineUserId,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует domain.Reservation в ReservationResponse
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:           r.ID,
		StoreID:      r.StoreID,
		Date:         r.Date.Format(domain.DateFormat),
		Time:         r.Time.String(),
		People:       r.People,
		SeatID:       r.SeatID,
		Status:       string(r.Status),
		Channel:      string(r.Channel),
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		LineUserID:   r.LineUserID,
		Notes:        r.Notes,
		CancelledAt:  r.CancelledAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список бронирований
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	out := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *FromDomainReservation(r))
	}
	return &ReservationListResponse{
		Reservations: out,
		Total:        len(out),
	}
}
