package importing

import "strings"

// NormalizeKey é a chave de comparação de nomes de SKUs e lojas: minúsculas e
// sem espaços nas bordas. Nenhuma outra normalização é aplicada — pontuação e
// sinônimos contam como nomes distintos.
func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// MissingNames varre as linhas uma única vez e coleta, na ordem de primeira
// ocorrência, os nomes distintos da coluna que ainda não existem no mapa de
// entidades conhecidas.
func MissingNames(rows []map[string]string, column string, known map[string]string) []string {
	seen := make(map[string]struct{})
	missing := make([]string, 0)

	for _, row := range rows {
		name := strings.TrimSpace(row[column])
		if name == "" {
			continue
		}

		key := NormalizeKey(name)
		if _, ok := known[key]; ok {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		missing = append(missing, name)
	}

	return missing
}

// InferRetailer deduz a bandeira de uma loja nova a partir do nome: a
// primeira bandeira do vocabulário que aparecer como substring (sem
// diferenciar maiúsculas) vence; sem correspondência, vale o rótulo padrão.
// A inferência acontece uma única vez, na criação da loja.
func InferRetailer(storeName string, vocabulary []string, defaultLabel string) string {
	lower := strings.ToLower(storeName)
	for _, retailer := range vocabulary {
		if strings.Contains(lower, strings.ToLower(retailer)) {
			return retailer
		}
	}
	return defaultLabel
}
