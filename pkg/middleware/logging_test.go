package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
)

func TestLoggingMiddleware(t *testing.T) {
	log.SetupTestLogger()

	var correlationID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("ok"))
	})

	tests := []struct {
		name string
		path string
	}{
		{name: "Relatório", path: "/api/summary?asOf=2026-03-15"},
		{name: "Sonda de liveness", path: "/healthcheck"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			correlationID = ""
			rec := httptest.NewRecorder()

			LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusCreated, rec.Code)
			assert.Equal(t, "ok", rec.Body.String())
			require.NotEmpty(t, correlationID)
			assert.Equal(t, correlationID, rec.Header().Get(CorrelationIDHeader))
		})
	}
}

func TestLoggingResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	lrw := newLoggingResponseWriter(rec)

	lrw.Write([]byte("abc"))
	lrw.Write([]byte("de"))

	assert.Equal(t, http.StatusOK, lrw.statusCode)
	assert.Equal(t, 5, lrw.bytesWritten)
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("divisão por zero")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/drivers", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Code)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250 µs", formatDuration(250_000))
	assert.Equal(t, "12 ms", formatDuration(12_000_000))
	assert.Equal(t, "1.50 s", formatDuration(1_500_000_000))
}
