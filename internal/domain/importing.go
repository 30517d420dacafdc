package domain

// Papéis semânticos que uma importação precisa mapear para colunas do arquivo
const (
	RoleStore = "store"
	RoleSKU   = "sku"
	RoleWeek  = "week"
	RoleUnits = "units"
)

// ColumnMapping associa cada papel semântico ao nome da coluna de origem.
// Existe apenas durante uma importação; não é persistido.
type ColumnMapping struct {
	Store string `json:"store"`
	SKU   string `json:"sku"`
	Week  string `json:"week"`
	Units string `json:"units"`
}

// IsComplete indica se os quatro papéis foram mapeados
func (m ColumnMapping) IsComplete() bool {
	return m.Store != "" && m.SKU != "" && m.Week != "" && m.Units != ""
}

// MissingRoles retorna os papéis ainda sem coluna atribuída
func (m ColumnMapping) MissingRoles() []string {
	missing := make([]string, 0, 4)
	if m.Store == "" {
		missing = append(missing, RoleStore)
	}
	if m.SKU == "" {
		missing = append(missing, RoleSKU)
	}
	if m.Week == "" {
		missing = append(missing, RoleWeek)
	}
	if m.Units == "" {
		missing = append(missing, RoleUnits)
	}
	return missing
}

// ImportSummary é o resumo retornado ao operador após uma importação.
// Um contador de erros diferente de zero é um aviso, não uma falha: os lotes
// já confirmados permanecem gravados.
type ImportSummary struct {
	Created int           `json:"created"`
	Skipped int           `json:"skipped"`
	Errors  int           `json:"errors"`
	Mapping ColumnMapping `json:"mapping"`
}

// ImportPreview é a resposta da pré-visualização de um arquivo antes da
// importação: colunas detectadas e uma amostra das linhas.
type ImportPreview struct {
	Headers  []string            `json:"headers"`
	Mapping  ColumnMapping       `json:"mapping"`
	RowCount int                 `json:"row_count"`
	Sample   []map[string]string `json:"sample"`
}
