package reporting

import (
	"errors"
	"fmt"
)

// Nomes dos relatórios, usados em logs e no detalhe dos erros
const (
	ReportSummary         = "summary"
	ReportDrivers         = "drivers"
	ReportRiskFactors     = "risk-factors"
	ReportRecommendations = "recommendations"
	ReportRevenueTrend    = "revenue-trend"
)

var (
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// ReportError é um erro com o contexto do relatório que falhou
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Report  string // Relatório que falhou
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s): %s", e.Err.Error(), e.Report, e.Details)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Report)
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, report string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Report:  report,
		Details: details,
	}
}
