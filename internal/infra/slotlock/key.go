package slotlock

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Key ключ блокировки слота магазина
func Key(storeID string, date time.Time, slot types.TimeString) string {
	return fmt.Sprintf("slot:%s:%s:%s", storeID, date.Format(domain.DateFormat), slot)
}
