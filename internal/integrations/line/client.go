package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL адрес LINE Messaging API
const DefaultBaseURL = "https://api.line.me"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент LINE Messaging API (reply, push, broadcast)
type Client struct {
	baseURL      string
	channelToken string
	httpClient   *http.Client
	log          Logger
}

// NewClient создает новый экземпляр клиента LINE
func NewClient(baseURL, channelToken string, timeout time.Duration, log Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		channelToken: channelToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Enabled возвращает true, если токен канала настроен
func (c *Client) Enabled() bool {
	return c.channelToken != ""
}

// Reply отвечает на событие webhook по replyToken
func (c *Client) Reply(ctx context.Context, replyToken string, messages ...Message) error {
	if replyToken == "" {
		return fmt.Errorf("%w: replyToken is required", ErrInvalidRequest)
	}
	return c.send(ctx, "/v2/bot/message/reply", replyRequest{ReplyToken: replyToken, Messages: messages}, len(messages))
}

// Push отправляет сообщение конкретному пользователю
func (c *Client) Push(ctx context.Context, to string, messages ...Message) error {
	if to == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidRequest)
	}
	return c.send(ctx, "/v2/bot/message/push", pushRequest{To: to, Messages: messages}, len(messages))
}

// Broadcast отправляет сообщение всем подписчикам канала
func (c *Client) Broadcast(ctx context.Context, messages ...Message) error {
	return c.send(ctx, "/v2/bot/message/broadcast", broadcastRequest{Messages: messages}, len(messages))
}

func (c *Client) send(ctx context.Context, path string, payload interface{}, count int) error {
	if !c.Enabled() {
		return ErrDisabled
	}
	if count == 0 || count > MaxMessagesPerRequest {
		return fmt.Errorf("%w: messages count must be 1..%d, got %d", ErrInvalidRequest, MaxMessagesPerRequest, count)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.channelToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		c.log.Info("LINE: %s delivered, messages=%d", path, count)
		return nil
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, readError(resp.Body))
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readError(resp.Body))
	}
}

func readError(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, 4096))

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(raw)
}
