package broadcast_message

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/service/messaging"
	"github.com/m04kA/SMC-ReservationService/internal/service/messaging/models"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Broadcast(ctx context.Context, req *models.BroadcastRequest) (*models.BroadcastResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BroadcastResponse), args.Error(1)
}

func serve(t *testing.T, svc MessagingService, body string) *httptest.ResponseRecorder {
	t.Helper()
	log, err := logger.NewWriter(io.Discard, "error")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/line/broadcast", strings.NewReader(body))
	w := httptest.NewRecorder()

	NewHandler(svc, log).Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "sent", wantStatus: http.StatusOK},
		{name: "disabled", err: messaging.ErrDisabled, wantStatus: http.StatusServiceUnavailable},
		{name: "rate limited", err: fmt.Errorf("%w: Broadcast", messaging.ErrRateLimited), wantStatus: http.StatusTooManyRequests},
		{name: "rejected", err: messaging.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", err: messaging.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			call := svc.On("Broadcast", mock.Anything, &models.BroadcastRequest{Text: "本日は臨時休業です"})
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(&models.BroadcastResponse{Sent: true}, nil)
			}

			w := serve(t, svc, `{"text":"本日は臨時休業です"}`)

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	svc := new(mockService)

	for _, body := range []string{`{`, `{"text":""}`, `{"text":"x","extra":1}`} {
		w := serve(t, svc, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	svc.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything)
}
