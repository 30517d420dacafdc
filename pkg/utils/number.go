package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseUnits converte a quantidade informada no relatório para número,
// removendo separadores de milhar. Valores vazios ou não numéricos viram 0 —
// nunca negativos, nunca motivo para descartar a linha.
func ParseUnits(raw string) float64 {
	str := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if str == "" {
		return 0
	}

	units, err := strconv.ParseFloat(str, 64)
	if err != nil || math.IsNaN(units) || math.IsInf(units, 0) || units < 0 {
		return 0
	}

	return units
}
