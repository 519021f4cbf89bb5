package ingesting

import (
	"context"

	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

// Source fornece as linhas cruas de uma carga
type Source interface {
	Load(ctx context.Context) (*RawDataset, error)
}

// Importer executa uma carga completa: leitura, normalização e substituição dos registros
type Importer interface {
	Import(ctx context.Context) (*domain.IngestionReport, error)
}
