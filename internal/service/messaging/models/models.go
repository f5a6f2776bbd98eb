package models

// MaxTextLength лимит LINE на длину текстового сообщения
const MaxTextLength = 5000

// BroadcastRequest объявление всем подписчикам канала магазина
type BroadcastRequest struct {
	Text string `json:"text" validate:"required,max=5000"`
}

// BroadcastResponse результат рассылки
type BroadcastResponse struct {
	Sent bool `json:"sent"`
}
