package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

// Reporter expõe os relatórios de receita. now é a referência de tempo de cada relatório.
type Reporter interface {
	// GetSummary compara a receita do trimestre de now com a meta e com o trimestre anterior
	GetSummary(ctx context.Context, now time.Time) (*domain.Summary, error)

	// GetDrivers calcula pipeline, taxa de conversão, ticket médio e ciclo de vendas
	GetDrivers(ctx context.Context) (*domain.Drivers, error)

	// GetRiskFactors lista deals parados, vendedores abaixo da média e contas sem atividade
	GetRiskFactors(ctx context.Context, now time.Time) (*domain.RiskFactors, error)

	// GetRecommendations monta até cinco ações a partir dos riscos e dos drivers
	GetRecommendations(ctx context.Context, now time.Time) ([]string, error)

	// GetRevenueTrend retorna a receita e a meta mensal dos últimos seis meses
	GetRevenueTrend(ctx context.Context, now time.Time) (*domain.RevenueTrend, error)
}
