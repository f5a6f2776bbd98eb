package check_capacity

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на проверку вместимости
type Request struct {
	StoreID string           // ID магазина
	Date    time.Time        // Дата (без времени)
	Time    types.TimeString // Время слота "HH:MM"
	People  int              // Размер группы, 0 трактуется как 1
}

// Response результат проверки
type Response struct {
	CanBook           bool
	Reason            string
	AvailableCapacity domain.AvailableCapacity
	AppliedRules      int
}

func toResponse(d *domain.CapacityDecision) *Response {
	return &Response{
		CanBook:           d.CanBook,
		Reason:            d.Reason,
		AvailableCapacity: d.AvailableCapacity,
		AppliedRules:      d.AppliedRules,
	}
}
