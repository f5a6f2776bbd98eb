package check_capacity

import (
	"fmt"
	"strings"

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

	return nil
}
