package check_capacity

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_capacity: invalid input data")

	// ErrInternal возвращается, когда не удалось прочитать правила или бронирования
	ErrInternal = errors.New("check_capacity: internal error")
)
