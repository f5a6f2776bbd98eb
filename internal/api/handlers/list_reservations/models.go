package list_reservations

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// ListQuery параметры запроса
type ListQuery struct {
	Date             string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	IncludeCancelled string `json:"includeCancelled" validate:"omitempty,boolean"`
}

// FromQuery читает параметры из query строки
func FromQuery(q url.Values) ListQuery {
	return ListQuery{
		Date:             q.Get("date"),
		IncludeCancelled: q.Get("includeCancelled"),
	}
}

// ToServiceRequest конвертирует параметры в запрос сервиса
func (q ListQuery) ToServiceRequest(storeID string) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{StoreID: storeID}

	if q.Date != "" {
		date, err := handlers.ParseDate(q.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if q.IncludeCancelled != "" {
		include, err := strconv.ParseBool(q.IncludeCancelled)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = include
	}

	return req, nil
}
