package line

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("line client: internal error")

	// ErrInvalidRequest возвращается, когда LINE отклонил сообщение (400)
	ErrInvalidRequest = errors.New("line client: invalid request")

	// ErrUnauthorized возвращается при неверном channel access token (401)
	ErrUnauthorized = errors.New("line client: unauthorized")

	// ErrRateLimited возвращается при превышении лимитов LINE (429)
	ErrRateLimited = errors.New("line client: rate limited")

	// ErrInvalidResponse возвращается при неожиданном ответе LINE
	ErrInvalidResponse = errors.New("line client: invalid response")

	// ErrDisabled возвращается, когда токен канала не настроен
	ErrDisabled = errors.New("line client: messaging disabled")
)
