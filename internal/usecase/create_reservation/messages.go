package create_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// confirmationText текст подтверждения бронирования для LINE
func confirmationText(r *domain.Reservation) string {
	return fmt.Sprintf("ご予約を承りました。\n日時: %s %s\n人数: %d名\n予約番号: %d",
		r.Date.Format(domain.DateFormat), r.Time, r.People, r.ID)
}
