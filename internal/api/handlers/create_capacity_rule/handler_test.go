package create_capacity_rule

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/service/rules"
	"github.com/m04kA/SMC-ReservationService/internal/service/rules/models"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, storeID string, req *models.RuleRequest) (*models.RuleResponse, error) {
	args := m.Called(ctx, storeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RuleResponse), args.Error(1)
}

func serve(t *testing.T, svc RuleService, body string) *httptest.ResponseRecorder {
	t.Helper()
	log, err := logger.NewWriter(io.Discard, "error")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/stores/store-1/capacity-rules", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"storeId": "store-1"})
	w := httptest.NewRecorder()

	NewHandler(svc, log).Handle(w, r)
	return w
}

const ruleBody = `{"name":"ディナー","dateMode":"weekly","weekday":2,"startTime":"18:00","endTime":"21:00","controlType":"groups","maxGroups":10}`

func TestHandle_Created(t *testing.T) {
	svc := new(mockService)
	svc.On("Create", mock.Anything, "store-1", mock.MatchedBy(func(req *models.RuleRequest) bool {
		return req.DateMode == "weekly" && req.Weekday != nil && *req.Weekday == 2 && *req.MaxGroups == 10
	})).Return(&models.RuleResponse{ID: 11, StoreID: "store-1"}, nil)

	w := serve(t, svc, ruleBody)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":11`)
	svc.AssertExpectations(t)
}

func TestHandle_InvalidRule(t *testing.T) {
	svc := new(mockService)
	svc.On("Create", mock.Anything, "store-1", mock.Anything).
		Return(nil, fmt.Errorf("%w: maxGroups is required", rules.ErrInvalidInput))

	w := serve(t, svc, ruleBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgInvalidRule)
}

func TestHandle_MalformedBody(t *testing.T) {
	svc := new(mockService)

	w := serve(t, svc, `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandle_InternalError(t *testing.T) {
	svc := new(mockService)
	svc.On("Create", mock.Anything, "store-1", mock.Anything).
		Return(nil, fmt.Errorf("%w: Create - repository error: timeout", rules.ErrInternal))

	w := serve(t, svc, ruleBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "timeout")
}
