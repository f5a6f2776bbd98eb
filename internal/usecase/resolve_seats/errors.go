package resolve_seats

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_seats: invalid input data")

	// ErrInternal возвращается, когда реестр мест или бронирований недоступен
	ErrInternal = errors.New("resolve_seats: internal error")
)
