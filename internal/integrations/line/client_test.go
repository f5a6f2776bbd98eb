package line

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log, err := logger.NewWriter(io.Discard, "error")
	require.NoError(t, err)

	return NewClient(srv.URL, token, time.Second, log)
}

func TestClient_Push(t *testing.T) {
	var got pushRequest
	client := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/bot/message/push", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	})

	err := client.Push(context.Background(), "U123", TextMessage("ご予約ありがとうございます"))
	require.NoError(t, err)

	assert.Equal(t, "U123", got.To)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "text", got.Messages[0].Type)
}

func TestClient_Reply_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"message":"Invalid reply token"}`, wantErr: ErrInvalidRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: ErrRateLimited},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			err := client.Reply(context.Background(), "token", TextMessage("hi"))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_Broadcast_Validation(t *testing.T) {
	calls := 0
	client := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	err := client.Broadcast(context.Background())
	assert.ErrorIs(t, err, ErrInvalidRequest)

	msgs := make([]Message, MaxMessagesPerRequest+1)
	err = client.Broadcast(context.Background(), msgs...)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	assert.Zero(t, calls)
}

func TestClient_Disabled(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not be sent")
	})

	assert.False(t, client.Enabled())
	assert.ErrorIs(t, client.Push(context.Background(), "U1", TextMessage("x")), ErrDisabled)
}

func TestClient_Reply(t *testing.T) {
	var got replyRequest
	client := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/bot/message/reply", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.Reply(context.Background(), "r-1", TextMessage("ようこそ")))
	assert.Equal(t, "r-1", got.ReplyToken)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "ようこそ", got.Messages[0].Text)

	assert.ErrorIs(t, client.Reply(context.Background(), "", TextMessage("x")), ErrInvalidRequest)
}

func TestClient_Broadcast(t *testing.T) {
	var got broadcastRequest
	client := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/bot/message/broadcast", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.Broadcast(context.Background(), TextMessage("本日は臨時休業です")))
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "本日は臨時休業です", got.Messages[0].Text)
}
