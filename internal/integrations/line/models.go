package line

// MaxMessagesPerRequest максимальное количество сообщений в одном запросе
const MaxMessagesPerRequest = 5

// Message текстовое сообщение LINE
type Message struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// TextMessage создает текстовое сообщение
func TextMessage(text string) Message {
	return Message{Type: "text", Text: text}
}

type replyRequest struct {
	ReplyToken string    `json:"replyToken"`
	Messages   []Message `json:"messages"`
}

type pushRequest struct {
	To       string    `json:"to"`
	Messages []Message `json:"messages"`
}

type broadcastRequest struct {
	Messages []Message `json:"messages"`
}

// ErrorResponse модель ошибки от LINE Messaging API
type ErrorResponse struct {
	Message string `json:"message"`
	Details []struct {
		Message  string `json:"message"`
		Property string `json:"property"`
	} `json:"details"`
}
