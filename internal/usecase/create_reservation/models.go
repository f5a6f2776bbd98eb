package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	StoreID        string                    // ID магазина
	Date           time.Time                 // Дата бронирования (без времени)
	Time           types.TimeString          // Время слота, например "19:00"
	People         int                       // Размер группы, 0 трактуется как 1
	SeatID         *int64                    // Конкретное место (опционально)
	AutoAssignSeat bool                      // Назначить рекомендованное место
	Channel        domain.ReservationChannel // Источник бронирования
	CustomerName   string                    // Имя клиента
	Phone          *string                   // Телефон (опционально)
	LineUserID     *string                   // LINE userId для подтверждения (опционально)
	Notes          *string                   // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation       *domain.Reservation
	AvailableCapacity domain.AvailableCapacity // снимок до вставки
	Notified          bool                     // подтверждение доставлено в LINE
}
