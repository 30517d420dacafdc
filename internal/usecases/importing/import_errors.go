package importing

import (
	"errors"
	"fmt"
	"strings"
)

// Erros do pipeline de importação
var (
	// ErrMappingIncomplete indica papéis sem coluna atribuída. É o único erro
	// fatal da importação: nenhuma linha é processada.
	ErrMappingIncomplete = errors.New("mapeamento de colunas incompleto")

	// ErrUnparseableDate indica um valor de data que nenhuma estratégia de
	// interpretação reconheceu. Tratado por linha (a linha é pulada).
	ErrUnparseableDate = errors.New("data não reconhecida")

	// ErrNoRows indica um arquivo sem linhas de dados
	ErrNoRows = errors.New("arquivo sem linhas de dados")
)

// MappingError carrega os papéis que ficaram sem coluna no mapeamento
type MappingError struct {
	MissingRoles []string
}

// Error implementa a interface error
func (e *MappingError) Error() string {
	return fmt.Sprintf("%s: papéis sem coluna: %s", ErrMappingIncomplete, strings.Join(e.MissingRoles, ", "))
}

// Unwrap retorna o erro subjacente
func (e *MappingError) Unwrap() error {
	return ErrMappingIncomplete
}

// NewMappingError cria um erro de mapeamento incompleto
func NewMappingError(missingRoles []string) *MappingError {
	return &MappingError{MissingRoles: missingRoles}
}
