package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/ingesting"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
)

var ErrSyncRunning = errors.New("carga de dados já em andamento")

// IngestionSyncConfig representa a configuração do agendador de carga
type IngestionSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	RunOnStartup bool
}

// IngestionSyncService agenda e executa a carga dos arquivos do CRM no banco
type IngestionSyncService struct {
	scheduler           *gocron.Scheduler
	config              IngestionSyncConfig
	importer            ingesting.Importer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.IngestionReport
	lastError           string
}

func NewIngestionSyncService(importer ingesting.Importer, appConfig *config.Config) *IngestionSyncService {
	syncConfig := IngestionSyncConfig{
		CronSchedule: appConfig.IngestionSync.CronSchedule,
		SyncEnabled:  appConfig.IngestionSync.Enabled,
		RunOnStartup: appConfig.IngestionSync.RunOnStartup,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"sync_enabled":   syncConfig.SyncEnabled,
		"run_on_startup": syncConfig.RunOnStartup,
	}).Info("Configuração do agendador de carga carregada")

	return &IngestionSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		importer:  importer,
	}
}

// Start inicia o agendador. A carga de inicialização roda mesmo com o agendamento desabilitado.
func (s *IngestionSyncService) Start(ctx context.Context) error {
	if s.config.RunOnStartup {
		if err := s.TriggerManualSync(); err != nil {
			logrus.WithError(err).Warn("Carga de inicialização ignorada")
		}
	}

	if !s.config.SyncEnabled {
		logrus.Info("Carga agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de carga")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if !s.acquire() {
			logrus.Info("Carga já em andamento, ignorando execução agendada")
			return
		}
		s.runIngestion(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar carga de dados: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de carga")
		s.scheduler.Stop()
	}()

	return nil
}

// acquire marca a carga como em andamento. Retorna false se já existe uma execução.
func (s *IngestionSyncService) acquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

// runIngestion executa uma carga. Deve ser chamada somente após acquire.
func (s *IngestionSyncService) runIngestion(ctx context.Context) {
	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx).WithField("job", "ingestion_sync")

	logger.Info("Iniciando carga de dados")

	report, err := s.importer.Import(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()

	if err != nil {
		s.lastError = err.Error()
		logger.WithError(err).Error("Carga de dados falhou")
		return
	}

	s.lastError = ""
	s.lastReport = report

	logger.WithField("duration", s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt).String()).
		Info("Carga de dados concluída")
}

// TriggerManualSync inicia uma carga em segundo plano.
// Retorna ErrSyncRunning quando outra carga ainda não terminou.
func (s *IngestionSyncService) TriggerManualSync() error {
	if !s.acquire() {
		logrus.Info("Carga já em andamento, ignorando solicitação manual")
		return ErrSyncRunning
	}

	logrus.Info("Iniciando carga manual de dados")
	go s.runIngestion(context.Background())

	return nil
}

// IsRunning informa se existe uma carga em andamento
func (s *IngestionSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *IngestionSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_report":            s.lastReport,
		"last_error":             s.lastError,
	}
}
