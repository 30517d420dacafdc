// Package spreadsheet lê arquivos de relatório CSV e Excel (.xlsx) e os
// normaliza em linhas cabeçalho→valor para o pipeline de importação.
package spreadsheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

var (
	ErrUnsupportedFormat = errors.New("formato de arquivo não suportado (use CSV ou Excel .xlsx)")
	ErrEmptyFile         = errors.New("arquivo sem linhas")
)

// Table é o conteúdo normalizado de um arquivo: o cabeçalho na ordem original
// e cada linha de dados como mapa cabeçalho→valor (células vazias viram "").
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// Parse escolhe o leitor pelo sufixo do nome do arquivo
func Parse(filename string, payload []byte) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ParseCSV(payload)
	case ".xlsx", ".xls":
		return ParseXLSX(payload)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// ParseCSV lê um CSV com linha de cabeçalho obrigatória. Linhas totalmente
// vazias são ignoradas e um BOM inicial é descartado.
func ParseCSV(payload []byte) (*Table, error) {
	reader := bufio.NewReader(bytes.NewReader(payload))
	if prefix, err := reader.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = reader.Discard(len(byteOrderMark))
	}

	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler CSV")
	}

	return normalizeTable(records)
}

// ParseXLSX lê a primeira planilha de um arquivo Excel. A primeira linha com
// conteúdo vira o cabeçalho; células ausentes viram string vazia.
func ParseXLSX(payload []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir xlsx")
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler linhas do xlsx")
	}

	return normalizeTable(records)
}

func normalizeTable(records [][]string) (*Table, error) {
	var headers []string
	rows := make([]map[string]string, 0, len(records))

	for _, record := range records {
		if isEmptyRow(record) {
			continue
		}

		if headers == nil {
			headers = make([]string, len(record))
			copy(headers, record)
			continue
		}

		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	if headers == nil {
		return nil, ErrEmptyFile
	}

	return &Table{Headers: headers, Rows: rows}, nil
}

func isEmptyRow(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
