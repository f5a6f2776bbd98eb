package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleDTO struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Time   string `json:"time" validate:"required,hhmm"`
	People int    `json:"people" validate:"omitempty,min=1,max=100"`
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(sampleDTO{Date: "2025-09-09", Time: "19:00", People: 2}))
	assert.NoError(t, Validate(sampleDTO{Date: "2025-09-09", Time: "19:00"}))

	err := Validate(sampleDTO{Time: "7pm", People: 500})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date(required)")
	assert.Contains(t, err.Error(), "time(hhmm)")
	assert.Contains(t, err.Error(), "people(max)")
}

func TestDecodeJSON(t *testing.T) {
	var dto sampleDTO

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":"2025-09-09","time":"19:00"}`))
	require.NoError(t, DecodeJSON(r, &dto))
	assert.Equal(t, "19:00", dto.Time)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":"2025-09-09","unknown":1}`))
	assert.Error(t, DecodeJSON(r, &dto))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, DecodeJSON(r, &dto))
}

func TestPathInt64(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42", "bad": "x", "neg": "-1"})

	id, err := PathInt64(r, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = PathInt64(r, "bad")
	assert.Error(t, err)
	_, err = PathInt64(r, "neg")
	assert.Error(t, err)
}

func TestParseTime(t *testing.T) {
	v, err := ParseTime("19:00:00")
	require.NoError(t, err)
	assert.Equal(t, "19:00", v.String())

	_, err = ParseTime("25:00")
	assert.Error(t, err)
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondConflict(w, "満席です")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"code":409,"message":"満席です"}`, w.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
}
