package importing

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layouts aceitos na interpretação de datas em texto, tentados em ordem.
// Cobrem ISO e os formatos regionais mais comuns em relatórios de varejo.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"1/2/2006",
	"01/02/2006",
	"2-Jan-2006",
	"2-January-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006/01/02",
}

var serialPattern = regexp.MustCompile(`^\d+$`)

// Bases da contagem serial de dias das planilhas. O dia 1 corresponde a
// 1899-12-31; a partir do serial 60 a base desloca um dia para reproduzir o
// bug do ano bissexto de 1900 herdado pelos formatos de planilha.
var (
	serialEpoch        = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)
	serialEpochLeapBug = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
)

// ParseReportDate interpreta o valor bruto da coluna de data. Inteiros puros
// são tratados como contagem serial de dias de planilha; qualquer outro valor
// passa pela lista de layouts. Falha de interpretação é um erro de linha
// (a linha é pulada), nunca um erro fatal da importação.
func ParseReportDate(raw string) (time.Time, error) {
	str := strings.TrimSpace(raw)
	if str == "" {
		return time.Time{}, ErrUnparseableDate
	}

	if serialPattern.MatchString(str) {
		serial, err := strconv.Atoi(str)
		if err != nil || serial <= 0 {
			return time.Time{}, ErrUnparseableDate
		}
		return serialToDate(serial), nil
	}

	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, str); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, ErrUnparseableDate
}

func serialToDate(serial int) time.Time {
	if serial < 60 {
		return serialEpoch.AddDate(0, 0, serial)
	}
	return serialEpochLeapBug.AddDate(0, 0, serial)
}

// WeekStart retorna a segunda-feira da semana ISO que contém a data.
// Nunca retorna uma data posterior à entrada e é idempotente.
func WeekStart(d time.Time) time.Time {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)

	var diff int
	if day.Weekday() == time.Sunday {
		diff = -6
	} else {
		diff = 1 - int(day.Weekday())
	}

	return day.AddDate(0, 0, diff)
}
