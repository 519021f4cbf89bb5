package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/ingesting"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

// Script de carga única: aplica as migrações e importa os arquivos de INGESTION_DATA_DIR.
// Os registros existentes são substituídos.
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	log.Setup(cfg.App.LogLevel, cfg.App.LogFormat)
	logrus.Info("Iniciando script de carga...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	logrus.Info("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	if err := postgres.Migrate(ctx, conn); err != nil {
		logrus.Fatalf("ERRO ao aplicar migrações: %v", err)
	}

	startTime := time.Now()
	logrus.Infof("Lendo arquivos de %s", cfg.Ingestion.DataDir)

	importer := ingesting.NewService(
		ingesting.NewFileSource(cfg.Ingestion.DataDir),
		repository.NewDatasetRepository(conn),
	)

	report, err := importer.Import(ctx)
	if err != nil {
		logrus.Fatalf("ERRO na carga: %v", err)
	}

	logrus.Infof("Carga concluída em %v", time.Since(startTime))
	fmt.Println(utils.PrettyJson(report))
}
