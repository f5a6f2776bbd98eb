package line_webhook

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/integrations/line"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) HandleEvents(ctx context.Context, events []line.Event) int {
	return m.Called(ctx, events).Int(0)
}

const (
	secret = "channel-secret"
	body   = `{"destination":"U0","events":[{"type":"follow","replyToken":"r-1","timestamp":1,"source":{"type":"user","userId":"U1"}}]}`
)

func serve(t *testing.T, svc EventService, channelSecret, payload, signature string) *httptest.ResponseRecorder {
	t.Helper()
	log, err := logger.NewWriter(io.Discard, "error")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/line/webhook", strings.NewReader(payload))
	if signature != "" {
		r.Header.Set(line.SignatureHeader, signature)
	}
	w := httptest.NewRecorder()

	NewHandler(svc, channelSecret, log).Handle(w, r)
	return w
}

func TestHandle_SignedEvents(t *testing.T) {
	svc := new(mockService)
	svc.On("HandleEvents", mock.Anything, mock.MatchedBy(func(events []line.Event) bool {
		return len(events) == 1 && events[0].Type == line.EventFollow && events[0].ReplyToken == "r-1"
	})).Return(1)

	w := serve(t, svc, secret, body, line.Sign(secret, []byte(body)))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandle_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		payload    string
		signature  string
		wantStatus int
	}{
		{name: "secret not configured", secret: "", payload: body, signature: line.Sign("", []byte(body)), wantStatus: http.StatusServiceUnavailable},
		{name: "missing signature", secret: secret, payload: body, wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", secret: secret, payload: body, signature: line.Sign("other", []byte(body)), wantStatus: http.StatusUnauthorized},
		{name: "signed garbage", secret: secret, payload: `{"events":`, signature: line.Sign(secret, []byte(`{"events":`)), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)

			w := serve(t, svc, tt.secret, tt.payload, tt.signature)

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertNotCalled(t, "HandleEvents", mock.Anything, mock.Anything)
		})
	}
}
