package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joeyg6393/fincalcs/domain"
	"github.com/joeyg6393/fincalcs/repository"
	"github.com/joeyg6393/fincalcs/service"
)

func newTestRouter(t *testing.T, capacity int) http.Handler {
	t.Helper()
	svc := service.NewCalculatorService(service.NewRegistry(),
		repository.NewMemoryCache(), repository.NewHistoryRepositoryMemory()).
		WithToday(func() domain.Date { return domain.NewDate(2024, time.January, 15) })

	limiter := NewRateLimiter(capacity, time.Minute)
	t.Cleanup(limiter.Stop)

	return NewRouter(NewCalculatorHandler(svc), NewLoanHandler(svc), limiter)
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) (Envelope, json.RawMessage) {
	t.Helper()
	var raw struct {
		Envelope
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	return raw.Envelope, raw.Data
}
