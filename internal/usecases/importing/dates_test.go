package importing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseReportDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "Formato ISO",
			raw:      "2024-01-10",
			expected: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "ISO com hora descarta o componente de hora",
			raw:      "2024-01-10T15:30:00",
			expected: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Formato americano com barras",
			raw:      "1/10/2024",
			expected: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Formato americano com zeros",
			raw:      "01/02/2024",
			expected: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Mês abreviado",
			raw:      "10-Jan-2024",
			expected: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Serial de planilha para 2024-01-01",
			raw:      "45292",
			expected: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Serial de planilha para 2024-01-10",
			raw:      "45301",
			expected: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Serial 1 é o primeiro dia da contagem",
			raw:      "1",
			expected: time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Serial 59 ainda usa a base original",
			raw:      "59",
			expected: time.Date(1900, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Serial 61 já desloca pela base do bug bissexto",
			raw:      "61",
			expected: time.Date(1900, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Espaços nas bordas são tolerados",
			raw:      "  2024-01-10  ",
			expected: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Vazio é erro",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "Texto irreconhecível é erro",
			raw:     "semana passada",
			wantErr: true,
		},
		{
			name:    "Serial zero é erro",
			raw:     "0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReportDate(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnparseableDate)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected time.Time
	}{
		{
			name:     "Quarta-feira recua para a segunda da mesma semana",
			date:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Segunda-feira permanece inalterada",
			date:     time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Domingo pertence à semana iniciada seis dias antes",
			date:     time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Sábado recua cinco dias",
			date:     time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Virada de ano",
			date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.date)
			assert.Equal(t, tt.expected, got)

			// Idempotência: aplicar de novo não muda o resultado
			assert.Equal(t, got, WeekStart(got))

			// Nunca retorna data posterior à entrada
			assert.False(t, got.After(tt.date))
		})
	}
}
