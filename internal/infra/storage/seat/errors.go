package seat

import "errors"

var (
	// ErrSeatNotFound возвращается, когда место не найдено
	ErrSeatNotFound = errors.New("seat.repository: seat not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("seat.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("seat.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("seat.repository: failed to scan row")
)
