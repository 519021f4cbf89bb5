package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-intelligence-api/internal/scheduler"
	"github.com/vfg2006/revenue-intelligence-api/pkg/apiErrors"
)

const CronJobTypeIngestion = "ingestion"

// IngestionScheduler é o agendador de carga acionado pelas rotas de cron
type IngestionScheduler interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// RunIngestionJob dispara manualmente a carga dos arquivos do CRM
func RunIngestionJob(service IngestionScheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunIngestionJob")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de carga não disponível", nil)
			return
		}

		if err := service.TriggerManualSync(); err != nil {
			if errors.Is(err, scheduler.ErrSyncRunning) {
				apiErrors.WriteError(w, apiErrors.ErrConflict, "Já existe uma carga em andamento", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar carga", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    CronJobTypeIngestion,
		})
	})
}

// GetCronStatus retorna o status do agendador de carga
func GetCronStatus(service IngestionScheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if service != nil {
			status[CronJobTypeIngestion] = service.GetStatus()
		}

		writeJSON(w, status)
	})
}
