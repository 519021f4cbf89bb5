package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name     string
		origins  []string
		method   string
		origin   string
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:    "Origem permitida recebe cabeçalhos CORS",
			origins: []string{"http://localhost:3000"},
			method:  http.MethodGet,
			origin:  "http://localhost:3000",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusTeapot, rec.Code)
				assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:    "Origem não permitida não recebe cabeçalhos",
			origins: []string{"http://localhost:3000"},
			method:  http.MethodGet,
			origin:  "http://evil.example",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusTeapot, rec.Code)
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:    "Curinga libera qualquer origem",
			origins: []string{"*"},
			method:  http.MethodGet,
			origin:  "http://qualquer.example",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "http://qualquer.example", rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:    "Preflight responde 200 sem chamar o próximo handler",
			origins: []string{"*"},
			method:  http.MethodOptions,
			origin:  "http://localhost:3000",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/summary", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.origins)(next).ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}
