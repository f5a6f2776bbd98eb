package create_reservation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.StoreID) == "" {
		return fmt.Errorf("%w: storeId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.People < 0 || req.People > domain.MaxPeoplePerReservation {
		return fmt.Errorf("%w: people must be between 1 and %d", ErrInvalidInput, domain.MaxPeoplePerReservation)
	}

	if req.SeatID != nil && *req.SeatID <= 0 {
		return fmt.Errorf("%w: seatId must be positive", ErrInvalidInput)
	}

	switch req.Channel {
	case domain.ChannelLine, domain.ChannelLiff, domain.ChannelAdmin:
	default:
		return fmt.Errorf("%w: unknown channel %q", ErrInvalidInput, req.Channel)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом относительно now
// Даты сравниваются по календарю в часовом поясе now, now приводится к поясу магазина вызывающим
func validateDate(date time.Time, now time.Time) error {
	if date.Format(domain.DateFormat) < now.Format(domain.DateFormat) {
		return ErrInvalidDate
	}
	return nil
}
