package ingesting

import (
	"errors"
	"fmt"
)

var (
	ErrReadSource = errors.New("erro ao ler arquivos de carga")
	ErrNormalize  = errors.New("erro ao normalizar registros")
	ErrWriteStore = errors.New("erro ao gravar registros no banco de dados")
)

// IngestionError é um erro com contexto adicional para a carga
type IngestionError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *IngestionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *IngestionError) Unwrap() error {
	return e.Err
}

func NewIngestionError(err error, code string, details string) *IngestionError {
	return &IngestionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
