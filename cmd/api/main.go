package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/revenue-intelligence-api/internal/api"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/internal/scheduler"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/ingesting"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/reporting"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, cfg.App.LogFormat)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
		logrus.Info("Migrações aplicadas com sucesso")
	}

	accountRepo := repository.NewAccountRepository(pgConn)
	repRepo := repository.NewRepRepository(pgConn)
	dealRepo := repository.NewDealRepository(pgConn)
	activityRepo := repository.NewActivityRepository(pgConn)
	targetRepo := repository.NewTargetRepository(pgConn)
	datasetRepo := repository.NewDatasetRepository(pgConn)

	reportingService := reporting.NewService(
		accountRepo,
		repRepo,
		dealRepo,
		activityRepo,
		targetRepo,
		domain.RiskPolicy{
			StaleDealDays:   cfg.Metrics.StaleDealDays,
			LowActivityDays: cfg.Metrics.LowActivityDays,
		},
	)

	ingestionService := ingesting.NewService(ingesting.NewFileSource(cfg.Ingestion.DataDir), datasetRepo)

	ingestionSyncService := scheduler.NewIngestionSyncService(ingestionService, cfg)
	if err := ingestionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de carga")
	} else {
		logrus.Info("Agendador de carga iniciado com sucesso")
	}

	server, err := api.New(cfg, reportingService, ingestionSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
