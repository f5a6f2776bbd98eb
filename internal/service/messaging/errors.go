package messaging

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном тексте сообщения
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDisabled возвращается, когда токен канала LINE не настроен
	ErrDisabled = errors.New("messaging disabled")

	// ErrRateLimited возвращается, когда LINE ограничил отправку
	ErrRateLimited = errors.New("messaging rate limited")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
