package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUnits(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{name: "Inteiro simples", raw: "300", expected: 300},
		{name: "Separador de milhar removido", raw: "1,200", expected: 1200},
		{name: "Decimal", raw: "12.5", expected: 12.5},
		{name: "Espaços nas bordas", raw: "  42 ", expected: 42},
		{name: "Vazio vira zero", raw: "", expected: 0},
		{name: "Texto vira zero", raw: "abc", expected: 0},
		{name: "Negativo vira zero", raw: "-10", expected: 0},
		{name: "Infinito vira zero", raw: "Inf", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseUnits(tt.raw))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 3.33, RoundWithTwoDecimalPlace(10.0/3.0))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 2.5, RoundWithTwoDecimalPlace(2.499999999))
}
