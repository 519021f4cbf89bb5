package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/reporting"
	"github.com/vfg2006/revenue-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const asOfParam = "asOf"

// Clock retorna o instante usado como "agora" quando a requisição não informa asOf
type Clock func() time.Time

// referenceTime resolve o "agora" do relatório. asOf=YYYY-MM-DD fixa a meia-noite UTC do dia.
func referenceTime(r *http.Request, clock Clock) (time.Time, error) {
	asOf := r.URL.Query().Get(asOfParam)
	if asOf == "" {
		return clock().UTC(), nil
	}

	parsed, err := time.Parse(time.DateOnly, asOf)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parâmetro %s inválido", asOfParam)
	}

	return parsed, nil
}

func writeReportError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar relatório")

	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		apiErrors.WriteError(w, reportErr.Code, "Erro ao gerar relatório", map[string]string{
			"report": reportErr.Report,
		})
		return
	}

	if errors.Is(err, reporting.ErrStoreUnavailable) {
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o banco de dados", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório", nil)
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
	}
}

// reportHandler trata a resolução de asOf e o mapeamento de erros comuns a todos os relatórios
func reportHandler(clock Clock, build func(r *http.Request, now time.Time) (any, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now, err := referenceTime(r, clock)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Use o formato YYYY-MM-DD", map[string]string{
				asOfParam: r.URL.Query().Get(asOfParam),
			})
			return
		}

		payload, err := build(r, now)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, payload)
	})
}

func GetSummary(service reporting.Reporter, clock Clock) http.Handler {
	return reportHandler(clock, func(r *http.Request, now time.Time) (any, error) {
		return service.GetSummary(r.Context(), now)
	})
}

// GetDrivers não depende de data, mas aceita asOf para manter a mesma validação dos demais
func GetDrivers(service reporting.Reporter, clock Clock) http.Handler {
	return reportHandler(clock, func(r *http.Request, _ time.Time) (any, error) {
		return service.GetDrivers(r.Context())
	})
}

func GetRiskFactors(service reporting.Reporter, clock Clock) http.Handler {
	return reportHandler(clock, func(r *http.Request, now time.Time) (any, error) {
		return service.GetRiskFactors(r.Context(), now)
	})
}

func GetRecommendations(service reporting.Reporter, clock Clock) http.Handler {
	return reportHandler(clock, func(r *http.Request, now time.Time) (any, error) {
		return service.GetRecommendations(r.Context(), now)
	})
}

func GetRevenueTrend(service reporting.Reporter, clock Clock) http.Handler {
	return reportHandler(clock, func(r *http.Request, now time.Time) (any, error) {
		return service.GetRevenueTrend(r.Context(), now)
	})
}
