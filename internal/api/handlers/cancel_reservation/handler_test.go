package cancel_reservation

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Cancel(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReservationResponse), args.Error(1)
}

func serve(t *testing.T, svc ReservationService, id string) *httptest.ResponseRecorder {
	t.Helper()
	log, err := logger.NewWriter(io.Discard, "error")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/"+id+"/cancel", nil)
	r = mux.SetURLVars(r, map[string]string{"reservationId": id})
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
		{name: "cancelled", wantStatus: http.StatusOK},
		{name: "not found", err: reservations.ErrReservationNotFound, wantStatus: http.StatusNotFound},
		{name: "already cancelled", err: reservations.ErrCannotCancel, wantStatus: http.StatusConflict},
		{name: "internal", err: errors.Join(reservations.ErrInternal, errors.New("db")), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			if tt.err != nil {
				svc.On("Cancel", mock.Anything, int64(5)).Return(nil, tt.err)
			} else {
				svc.On("Cancel", mock.Anything, int64(5)).Return(&models.ReservationResponse{ID: 5, Status: "cancelled"}, nil)
			}

			w := serve(t, svc, "5")

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandle_InvalidID(t *testing.T) {
	svc := new(mockService)

	for _, id := range []string{"abc", "0", "-3"} {
		w := serve(t, svc, id)
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
	}
	svc.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
}
