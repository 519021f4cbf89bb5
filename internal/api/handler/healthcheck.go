package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

// HealthResponse é a resposta de /api/health
type HealthResponse struct {
	OK     bool     `json:"ok"`
	Routes []string `json:"routes"`
}

// APIHealthHandler lista os relatórios disponíveis
func APIHealthHandler(routes []string) http.Handler {
	if routes == nil {
		routes = []string{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, HealthResponse{OK: true, Routes: routes})
	})
}
