package slotlock

import "errors"

var (
	// ErrLockTimeout возвращается, когда слот не удалось захватить за отведенное время
	ErrLockTimeout = errors.New("slotlock: timed out waiting for slot lock")

	// ErrLockBackend возвращается при ошибке хранилища блокировок
	ErrLockBackend = errors.New("slotlock: lock backend failure")
)
