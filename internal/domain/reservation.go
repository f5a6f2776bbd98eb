package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// ReservationChannel is where the reservation came from
type ReservationChannel string

const (
	ChannelLine  ReservationChannel = "line"
	ChannelLiff  ReservationChannel = "liff"
	ChannelAdmin ReservationChannel = "admin"
)

// Reservation represents a table/seat booking at a store
type Reservation struct {
	ID      int64
	StoreID string
	Date    time.Time        // calendar date, time part is ignored
	Time    types.TimeString // slot start, store-local wall clock
	People  int
	SeatID  *int64
	Status  ReservationStatus
	Channel ReservationChannel

	CustomerName string
	Phone        *string
	LineUserID   *string
	Notes        *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the reservation no longer holds capacity
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// ReservationFilter фильтр выборки бронирований магазина
type ReservationFilter struct {
	StoreID          string            // Обязательный параметр
	Date             *time.Time        // Конкретная дата (опционально)
	Time             *types.TimeString // Точное время слота (опционально)
	ExcludeID        *int64            // Исключить бронирование (при редактировании)
	IncludeCancelled bool              // Включать ли отмененные
}

// ActiveStatuses statuses that count towards capacity
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
