package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-intelligence-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/reporting"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/revenue-intelligence-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestReports(t *testing.T) {
	storeErr := reporting.NewReportError(reporting.ErrStoreUnavailable, apiErrors.ErrDatabaseOperation, reporting.ReportSummary, "connection refused")

	tests := []struct {
		name     string
		path     string
		setup    func(service *mocks.MockReporter)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Resumo usa o relógio quando asOf não é informado",
			path: "/api/summary",
			setup: func(service *mocks.MockReporter) {
				service.EXPECT().GetSummary(gomock.Any(), fixedNow).Return(&domain.Summary{
					CurrentQuarterRevenue: 1500,
					TargetRevenue:         3000,
					GapPercent:            50,
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				assert.JSONEq(t, `{"currentQuarterRevenue":1500,"targetRevenue":3000,"gapPercent":50,"changeVsPreviousQuarter":0}`, rec.Body.String())
			},
		},
		{
			name: "asOf fixa a data de referência",
			path: "/api/risk-factors?asOf=2025-12-31",
			setup: func(service *mocks.MockReporter) {
				service.EXPECT().
					GetRiskFactors(gomock.Any(), time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)).
					Return(&domain.RiskFactors{
						StaleDeals:          []domain.StaleDeal{},
						UnderperformingReps: []domain.UnderperformingRep{},
						LowActivityAccounts: []domain.LowActivityAccount{},
					}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.NotContains(t, rec.Body.String(), "null")
			},
		},
		{
			name:  "asOf inválido retorna VAL_003",
			path:  "/api/revenue-trend?asOf=15/03/2026",
			setup: func(service *mocks.MockReporter) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
				assert.Equal(t, map[string]any{"asOf": "15/03/2026"}, apiErr.Details)
			},
		},
		{
			name: "Falha no banco retorna SRV_002",
			path: "/api/summary",
			setup: func(service *mocks.MockReporter) {
				service.EXPECT().GetSummary(gomock.Any(), gomock.Any()).Return(nil, storeErr)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, apiErr.Code)
				assert.Equal(t, "Erro ao gerar relatório", apiErr.Message)
				assert.Equal(t, map[string]any{"report": "summary"}, apiErr.Details)
				assert.NotContains(t, rec.Body.String(), "connection refused")
			},
		},
		{
			name: "Recomendações retornam uma lista de textos",
			path: "/api/recommendations",
			setup: func(service *mocks.MockReporter) {
				service.EXPECT().GetRecommendations(gomock.Any(), fixedNow).Return([]string{"Focus on Enterprise deals"}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `["Focus on Enterprise deals"]`, rec.Body.String())
			},
		},
		{
			name: "Drivers aceita asOf mas não depende da data",
			path: "/api/drivers?asOf=2026-01-01",
			setup: func(service *mocks.MockReporter) {
				service.EXPECT().GetDrivers(gomock.Any()).Return(&domain.Drivers{WinRate: 25}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), `"winRate":25`)
			},
		},
		{
			name: "Erro desconhecido retorna SRV_001",
			path: "/api/revenue-trend",
			setup: func(service *mocks.MockReporter) {
				service.EXPECT().GetRevenueTrend(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Equal(t, apiErrors.ErrInternalServer, decodeAPIError(t, rec).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockReporter(ctrl)
			tt.setup(service)

			rt := router.New(router.WithRoutes(Reports(service, fixedClock)...))

			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			tt.validate(t, rec)
		})
	}
}

func TestHealthcheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := Reports(mocks.NewMockReporter(ctrl), fixedClock)
	rt := router.New(router.WithRoutes(Healthcheck(reports)...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"ok": true,
		"routes": ["/api/summary", "/api/drivers", "/api/risk-factors", "/api/recommendations", "/api/revenue-trend"]
	}`, rec.Body.String())

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}
