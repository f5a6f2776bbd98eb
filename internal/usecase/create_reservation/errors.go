package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDate возвращается, когда дата бронирования в прошлом
	ErrInvalidDate = errors.New("create_reservation: reservation date is in the past")

	// ErrCapacityExceeded возвращается, когда правила вместимости отклонили бронирование
	ErrCapacityExceeded = errors.New("create_reservation: capacity exceeded")

	// ErrSeatNotAvailable возвращается, когда выбранное место занято, заблокировано или мало
	ErrSeatNotAvailable = errors.New("create_reservation: seat is not available")

	// ErrSlotBusy возвращается, когда слот не удалось захватить вовремя
	ErrSlotBusy = errors.New("create_reservation: slot is busy, retry later")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// CapacityError отказ по вместимости с причиной для показа клиенту
type CapacityError struct {
	Reason string
}

func (e *CapacityError) Error() string {
	return ErrCapacityExceeded.Error() + ": " + e.Reason
}

// Is позволяет проверять ошибку через errors.Is(err, ErrCapacityExceeded)
func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
