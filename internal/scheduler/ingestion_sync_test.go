package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/ingesting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestConfig(enabled, runOnStartup bool, cron string) *config.Config {
	return &config.Config{
		IngestionSync: config.IngestionSync{
			CronSchedule: cron,
			Enabled:      enabled,
			RunOnStartup: runOnStartup,
		},
	}
}

func waitIdle(t *testing.T, service *IngestionSyncService) {
	t.Helper()
	require.Eventually(t, func() bool { return !service.IsRunning() }, time.Second, 5*time.Millisecond)
}

func TestIngestionSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	importer := mocks.NewMockImporter(ctrl)
	service := NewIngestionSyncService(importer, newTestConfig(false, false, "0 2 * * *"))

	release := make(chan struct{})
	report := &domain.IngestionReport{Deals: domain.IngestionEntityReport{Received: 3, Loaded: 2, Dropped: 1}}

	importer.EXPECT().Import(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.IngestionReport, error) {
		<-release
		return report, nil
	}).Times(1)

	require.NoError(t, service.TriggerManualSync())
	assert.True(t, service.IsRunning())

	// Uma segunda solicitação durante a carga é recusada
	assert.ErrorIs(t, service.TriggerManualSync(), ErrSyncRunning)

	close(release)
	waitIdle(t, service)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, report, status["last_report"])
	assert.Equal(t, "", status["last_error"])
	assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestIngestionSyncService_FalhaNaCarga(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	importer := mocks.NewMockImporter(ctrl)
	service := NewIngestionSyncService(importer, newTestConfig(false, false, "0 2 * * *"))

	previous := &domain.IngestionReport{Accounts: domain.IngestionEntityReport{Loaded: 1}}

	gomock.InOrder(
		importer.EXPECT().Import(gomock.Any()).Return(previous, nil),
		importer.EXPECT().Import(gomock.Any()).Return(nil, errors.New("erro ao ler arquivos de carga")),
	)

	require.NoError(t, service.TriggerManualSync())
	waitIdle(t, service)

	require.NoError(t, service.TriggerManualSync())
	waitIdle(t, service)

	status := service.GetStatus()
	assert.Equal(t, "erro ao ler arquivos de carga", status["last_error"])
	// O último relatório bem-sucedido é mantido
	assert.Equal(t, previous, status["last_report"])
}

func TestIngestionSyncService_Start(t *testing.T) {
	tests := []struct {
		name     string
		config   *config.Config
		setup    func(importer *mocks.MockImporter)
		validate func(t *testing.T, service *IngestionSyncService, err error)
	}{
		{
			name:   "Agendamento desabilitado não executa nada",
			config: newTestConfig(false, false, "0 2 * * *"),
			setup:  func(importer *mocks.MockImporter) {},
			validate: func(t *testing.T, service *IngestionSyncService, err error) {
				assert.NoError(t, err)
				assert.False(t, service.IsRunning())
				assert.Equal(t, false, service.GetStatus()["sync_enabled"])
			},
		},
		{
			name:   "Carga de inicialização roda mesmo com agendamento desabilitado",
			config: newTestConfig(false, true, "0 2 * * *"),
			setup: func(importer *mocks.MockImporter) {
				importer.EXPECT().Import(gomock.Any()).Return(&domain.IngestionReport{}, nil)
			},
			validate: func(t *testing.T, service *IngestionSyncService, err error) {
				assert.NoError(t, err)
				waitIdle(t, service)
				assert.NotNil(t, service.GetStatus()["last_report"])
			},
		},
		{
			name:   "Expressão cron inválida retorna erro",
			config: newTestConfig(true, false, "todo dia"),
			setup:  func(importer *mocks.MockImporter) {},
			validate: func(t *testing.T, service *IngestionSyncService, err error) {
				assert.ErrorContains(t, err, "erro ao agendar carga de dados")
			},
		},
		{
			name:   "Agendamento habilitado",
			config: newTestConfig(true, false, "0 2 * * *"),
			setup:  func(importer *mocks.MockImporter) {},
			validate: func(t *testing.T, service *IngestionSyncService, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "0 2 * * *", service.GetStatus()["sync_cron"])
				assert.True(t, service.scheduler.IsRunning())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			importer := mocks.NewMockImporter(ctrl)
			tt.setup(importer)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			service := NewIngestionSyncService(importer, tt.config)
			err := service.Start(ctx)

			tt.validate(t, service, err)
		})
	}
}
