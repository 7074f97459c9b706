package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	log := logrus.New()
	log.SetOutput(bytes.NewBuffer(nil))
	return NewHandler(log, NewMetrics(), func() bool { return true })
}

func postEvaluate(t *testing.T, h *Handler, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(b))
	rec := httptest.NewRecorder()
	h.Mux().ServeHTTP(rec, req)
	return rec
}

func TestHandler_SeniorDiscountPositive(t *testing.T) {
	h := newTestHandler()
	rec := postEvaluate(t, h, map[string]any{
		"rule": "A **Person** gets senior_discount if the __age__ of the **Person** is greater than or equal to 65.",
		"data": map[string]any{"Person": map[string]any{"age": 70}},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["result"])
	assert.Empty(t, resp["error"])
}

func TestHandler_SeniorDiscountNegative(t *testing.T) {
	h := newTestHandler()
	rec := postEvaluate(t, h, map[string]any{
		"rule": "A **Person** gets senior_discount if the __age__ of the **Person** is greater than or equal to 65.",
		"data": map[string]any{"Person": map[string]any{"age": 30}},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["result"])
}

func TestHandler_LoadErrorStillReturns200(t *testing.T) {
	h := newTestHandler()
	rec := postEvaluate(t, h, map[string]any{
		"rule": "A **Person** gets access if §Missing is approved.",
		"data": map[string]any{},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["result"])
	assert.NotEmpty(t, resp["error"])
}

func TestHandler_MissingRuleField(t *testing.T) {
	h := newTestHandler()
	rec := postEvaluate(t, h, map[string]any{"data": map[string]any{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_WrongMethod(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Mux().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandler_Health(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Mux().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_ReadyFalse(t *testing.T) {
	log := logrus.New()
	log.SetOutput(bytes.NewBuffer(nil))
	h := NewHandler(log, NewMetrics(), func() bool { return false })

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	h.Mux().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
