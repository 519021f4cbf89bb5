package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-intelligence-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/reporting"
)

// Healthcheck retorna as rotas de saúde. /api/health lista os caminhos dos relatórios informados.
func Healthcheck(reports []router.Route) []router.Route {
	paths := make([]string, 0, len(reports))
	for _, route := range reports {
		paths = append(paths, route.Path)
	}

	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: APIHealthHandler(paths),
		},
	}
}

func Reports(service reporting.Reporter, clock Clock) []router.Route {
	return []router.Route{
		{
			Path:    "/api/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service, clock),
		},
		{
			Path:    "/api/drivers",
			Method:  http.MethodGet,
			Handler: GetDrivers(service, clock),
		},
		{
			Path:    "/api/risk-factors",
			Method:  http.MethodGet,
			Handler: GetRiskFactors(service, clock),
		},
		{
			Path:    "/api/recommendations",
			Method:  http.MethodGet,
			Handler: GetRecommendations(service, clock),
		},
		{
			Path:    "/api/revenue-trend",
			Method:  http.MethodGet,
			Handler: GetRevenueTrend(service, clock),
		},
	}
}

func CronJobs(service IngestionScheduler) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/ingestion/run",
			Method:  http.MethodPost,
			Handler: RunIngestionJob(service),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(service),
		},
	}
}
