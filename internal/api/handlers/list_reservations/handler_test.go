package list_reservations

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type fakeService struct {
	got *models.ListReservationsRequest
}

func (f *fakeService) List(_ context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	f.got = req
	return models.FromDomainReservationList(nil), nil
}

func serve(t *testing.T, svc *fakeService, query string) *httptest.ResponseRecorder {
	t.Helper()
	log, err := logger.NewWriter(io.Discard, "error")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/stores/store-1/reservations?"+query, nil)
	r = mux.SetURLVars(r, map[string]string{"storeId": "store-1"})
	w := httptest.NewRecorder()

	NewHandler(svc, log).Handle(w, r)
	return w
}

func TestHandle_Filters(t *testing.T) {
	svc := &fakeService{}

	w := serve(t, svc, "date=2025-09-09&includeCancelled=true")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reservations":[],"total":0}`, w.Body.String())
	assert.Equal(t, "store-1", svc.got.StoreID)
	require.NotNil(t, svc.got.Date)
	assert.Equal(t, "2025-09-09", svc.got.Date.Format(domain.DateFormat))
	assert.True(t, svc.got.IncludeCancelled)
}

func TestHandle_NoFilters(t *testing.T) {
	svc := &fakeService{}

	w := serve(t, svc, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, svc.got.Date)
	assert.False(t, svc.got.IncludeCancelled)
}

func TestHandle_BadQuery(t *testing.T) {
	for _, q := range []string{"date=2025/09/09", "includeCancelled=maybe"} {
		svc := &fakeService{}
		w := serve(t, svc, q)

		assert.Equal(t, http.StatusBadRequest, w.Code, q)
		assert.Nil(t, svc.got)
	}
}
