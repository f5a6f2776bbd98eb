package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-ReservationService/internal/integrations/line"
	"github.com/m04kA/SMC-ReservationService/internal/service/messaging/models"
)

const (
	textWelcome = "友だち追加ありがとうございます。ご予約・空席確認はこちらから承ります。"
	textGuide   = "ご予約・空席確認はこちらからお手続きください。"
)

// Service ответы на события LINE и рассылки магазина
type Service struct {
	client         Client
	reservationURL string
	logger         Logger
}

// NewService создает новый экземпляр сервиса сообщений
// reservationURL добавляется к ответам, если задан
func NewService(client Client, reservationURL string, logger Logger) *Service {
	return &Service{
		client:         client,
		reservationURL: strings.TrimSpace(reservationURL),
		logger:         logger,
	}
}

// HandleEvents отвечает на события follow и message фиксированной подсказкой
// Ошибка ответа на одно событие не прерывает обработку остальных
// Возвращает количество отправленных ответов
func (s *Service) HandleEvents(ctx context.Context, events []line.Event) int {
	if !s.client.Enabled() {
		s.logger.Warn("HandleEvents: messaging disabled, skipping %d events", len(events))
		return 0
	}

	replied := 0
	for _, ev := range events {
		text := s.replyText(ev.Type)
		if text == "" || ev.ReplyToken == "" {
			continue
		}

		if err := s.client.Reply(ctx, ev.ReplyToken, line.TextMessage(text)); err != nil {
			s.logger.Warn("HandleEvents: failed to reply to %s event from %s: %v", ev.Type, ev.Source.UserID, err)
			continue
		}
		replied++
	}

	s.logger.Info("HandleEvents: processed %d events, replied=%d", len(events), replied)
	return replied
}

func (s *Service) replyText(eventType string) string {
	var text string
	switch eventType {
	case line.EventFollow:
		text = textWelcome
	case line.EventTypeMessage:
		text = textGuide
	default:
		return ""
	}

	if s.reservationURL != "" {
		text += "\n" + s.reservationURL
	}
	return text
}

// Broadcast отправляет объявление всем подписчикам канала
func (s *Service) Broadcast(ctx context.Context, req *models.BroadcastRequest) (*models.BroadcastResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if n := utf8.RuneCountInString(text); n > models.MaxTextLength {
		return nil, fmt.Errorf("%w: text is too long: %d > %d", ErrInvalidInput, n, models.MaxTextLength)
	}

	if !s.client.Enabled() {
		return nil, ErrDisabled
	}

	s.logger.Info("Broadcast: sending announcement, length=%d", utf8.RuneCountInString(text))

	if err := s.client.Broadcast(ctx, line.TextMessage(text)); err != nil {
		switch {
		case errors.Is(err, line.ErrRateLimited):
			s.logger.Warn("Broadcast: rate limited by LINE")
			return nil, fmt.Errorf("%w: Broadcast - %v", ErrRateLimited, err)
		case errors.Is(err, line.ErrInvalidRequest):
			s.logger.Warn("Broadcast: rejected by LINE: %v", err)
			return nil, fmt.Errorf("%w: Broadcast - %v", ErrInvalidInput, err)
		default:
			s.logger.Error("Broadcast: failed to send: %v", err)
			return nil, fmt.Errorf("%w: Broadcast - client error: %v", ErrInternal, err)
		}
	}

	return &models.BroadcastResponse{Sent: true}, nil
}
