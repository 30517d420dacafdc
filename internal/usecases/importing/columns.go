// Package importing implementa o pipeline de importação de relatórios
// semanais de vendas: detecção de colunas, normalização de datas, resolução
// de entidades e persistência idempotente em lotes.
package importing

import (
	"strings"

	"github.com/vfg2006/retail-velocity-api/internal/domain"
)

// Padrões de nomes de colunas comuns em relatórios de varejo (Whole Foods e
// similares), do mais específico para o mais genérico. A ordem define o
// desempate em cabeçalhos ambíguos — não reordenar.
var (
	StorePatterns = []string{"store name", "store", "location", "store #", "store number", "facility", "facility name"}
	SKUPatterns   = []string{"item description", "description", "product", "product name", "item", "upc", "sku", "item name"}
	WeekPatterns  = []string{"week ending", "week end", "week end date", "week", "date", "period", "report week"}
	UnitsPatterns = []string{"units sold", "units", "movement", "qty", "quantity", "total units", "scan units"}
)

// DetectColumn encontra o cabeçalho que corresponde a um dos padrões.
// Primeira passada: igualdade exata (minúsculas, sem espaços nas bordas).
// Segunda passada: o cabeçalho contém o padrão. Em ambas, o primeiro padrão
// que casar vence. Retorna "" quando nenhum cabeçalho corresponde.
func DetectColumn(headers []string, patterns []string) string {
	for _, pattern := range patterns {
		for _, h := range headers {
			if normalizeHeader(h) == pattern {
				return h
			}
		}
	}

	for _, pattern := range patterns {
		for _, h := range headers {
			if strings.Contains(normalizeHeader(h), pattern) {
				return h
			}
		}
	}

	return ""
}

// DetectMapping detecta as colunas dos quatro papéis semânticos de uma vez.
// Papéis sem correspondência ficam vazios e precisam de ajuste manual do
// operador antes da importação.
func DetectMapping(headers []string) domain.ColumnMapping {
	return domain.ColumnMapping{
		Store: DetectColumn(headers, StorePatterns),
		SKU:   DetectColumn(headers, SKUPatterns),
		Week:  DetectColumn(headers, WeekPatterns),
		Units: DetectColumn(headers, UnitsPatterns),
	}
}

func normalizeHeader(h string) string {
	return strings.TrimSpace(strings.ToLower(h))
}
