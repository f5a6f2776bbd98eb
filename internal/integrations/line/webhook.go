package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// SignatureHeader заголовок с подписью тела webhook
const SignatureHeader = "X-Line-Signature"

// Типы событий webhook, на которые отвечает сервис
const (
	EventFollow      = "follow"
	EventTypeMessage = "message"
)

// WebhookRequest тело запроса webhook от LINE Platform
type WebhookRequest struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events"`
}

// Event событие webhook
// Текст сообщения не разбирается, сервис отвечает фиксированной подсказкой
type Event struct {
	Type       string        `json:"type"`
	ReplyToken string        `json:"replyToken,omitempty"`
	Timestamp  int64         `json:"timestamp"`
	Source     EventSource   `json:"source"`
	Message    *EventMessage `json:"message,omitempty"`
}

// EventSource отправитель события
type EventSource struct {
	Type   string `json:"type"`
	UserID string `json:"userId,omitempty"`
}

// EventMessage сообщение пользователя
type EventMessage struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// VerifySignature проверяет HMAC-SHA256 подпись тела запроса секретом канала
func VerifySignature(channelSecret string, body []byte, signature string) bool {
	if channelSecret == "" || signature == "" {
		return false
	}

	decoded, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)
	return hmac.Equal(decoded, mac.Sum(nil))
}

// Sign вычисляет подпись тела, как это делает LINE Platform
func Sign(channelSecret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
