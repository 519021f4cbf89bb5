package ingesting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
)

type Service struct {
	source            Source
	datasetRepository repository.DatasetRepository
	normalizer        *Normalizer
	now               func() time.Time
}

func NewService(source Source, datasetRepo repository.DatasetRepository) *Service {
	return &Service{
		source:            source,
		datasetRepository: datasetRepo,
		normalizer:        NewNormalizer(nil),
		now:               time.Now,
	}
}

// Import lê os arquivos, normaliza e substitui todos os registros do banco.
// Em caso de falha na gravação a transação é desfeita e os dados anteriores permanecem.
func (s *Service) Import(ctx context.Context) (*domain.IngestionReport, error) {
	logger := log.ForContext(ctx).WithField("job", "ingestion")
	startTime := s.now()

	raw, err := s.source.Load(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao ler arquivos de carga")
		return nil, NewIngestionError(ErrReadSource, apiErrors.ErrIngestionSource, err.Error())
	}

	dataset, report, err := s.normalizer.Normalize(raw, startTime)
	if err != nil {
		logger.WithError(err).Error("Erro ao normalizar registros")
		return nil, NewIngestionError(ErrNormalize, apiErrors.ErrInternalServer, err.Error())
	}

	if err := s.datasetRepository.ReplaceAll(ctx, dataset); err != nil {
		logger.WithError(err).Error("Erro ao gravar registros da carga")
		return nil, NewIngestionError(ErrWriteStore, apiErrors.ErrDatabaseOperation, errors.Wrap(err, "transação desfeita").Error())
	}

	logger.Infof(
		"Carga concluída em %s: %d contas, %d vendedores, %d deals (%d descartados), %d atividades (%d descartadas), %d metas",
		s.now().Sub(startTime),
		report.Accounts.Loaded,
		report.Reps.Loaded,
		report.Deals.Loaded,
		report.Deals.Dropped,
		report.Activities.Loaded,
		report.Activities.Dropped,
		report.Targets.Loaded,
	)

	return report, nil
}
