package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-velocity-api/internal/config"
	"github.com/vfg2006/retail-velocity-api/internal/domain"
	"github.com/vfg2006/retail-velocity-api/internal/usecases/importing"
	"github.com/vfg2006/retail-velocity-api/pkg/apiErrors"
	"github.com/vfg2006/retail-velocity-api/pkg/middleware"
	"github.com/vfg2006/retail-velocity-api/pkg/spreadsheet"
)

// ImportSalesReport recebe um arquivo CSV/Excel via multipart, detecta as
// colunas (aceitando sobrescritas do formulário) e dispara a ingestão
func ImportSalesReport(service importing.Importer, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		table, failed := readSpreadsheetUpload(w, r, cfg)
		if failed {
			return
		}

		mapping := importing.DetectMapping(table.Headers)
		applyMappingOverrides(&mapping, r)

		summary, err := service.Ingest(userClaims.UserID, table.Rows, mapping)
		if err != nil {
			handleImportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.Error(err)
		}
	}
}

// PreviewSalesReport detecta as colunas do arquivo e retorna uma amostra das
// linhas sem gravar nada, para o operador conferir o mapeamento antes de
// importar
func PreviewSalesReport(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		table, failed := readSpreadsheetUpload(w, r, cfg)
		if failed {
			return
		}

		sampleSize := cfg.Import.PreviewRows
		if sampleSize <= 0 {
			sampleSize = 5
		}
		if sampleSize > len(table.Rows) {
			sampleSize = len(table.Rows)
		}

		preview := domain.ImportPreview{
			Headers:  table.Headers,
			Mapping:  importing.DetectMapping(table.Headers),
			RowCount: len(table.Rows),
			Sample:   table.Rows[:sampleSize],
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(preview); err != nil {
			logrus.Error(err)
		}
	}
}

// readSpreadsheetUpload extrai e normaliza o arquivo do formulário multipart.
// Retorna failed=true quando a resposta de erro já foi escrita.
func readSpreadsheetUpload(w http.ResponseWriter, r *http.Request, cfg *config.Config) (*spreadsheet.Table, bool) {
	maxBytes := cfg.Import.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = 20 * 1024 * 1024
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			apiErrors.WriteError(w, apiErrors.ErrFileTooLarge, "Arquivo acima do limite de upload", map[string]any{
				"max_bytes": maxBytes,
			})
			return nil, true
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário multipart inválido", nil)
		return nil, true
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo 'file' é obrigatório", nil)
		return nil, true
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		logrus.WithError(err).Error("Erro ao ler arquivo enviado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao ler arquivo enviado", nil)
		return nil, true
	}

	table, err := spreadsheet.Parse(header.Filename, payload)
	if err != nil {
		switch {
		case errors.Is(err, spreadsheet.ErrUnsupportedFormat):
			apiErrors.WriteError(w, apiErrors.ErrUnsupportedFile, err.Error(), nil)
		case errors.Is(err, spreadsheet.ErrEmptyFile):
			apiErrors.WriteError(w, apiErrors.ErrEmptyFile, err.Error(), nil)
		default:
			logrus.WithError(err).WithField("filename", header.Filename).Error("Erro ao interpretar arquivo")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Não foi possível interpretar o arquivo", nil)
		}
		return nil, true
	}

	return table, false
}

// applyMappingOverrides permite ao operador corrigir a detecção automática
// informando os nomes das colunas no próprio formulário
func applyMappingOverrides(mapping *domain.ColumnMapping, r *http.Request) {
	if v := r.FormValue("store_column"); v != "" {
		mapping.Store = v
	}
	if v := r.FormValue("sku_column"); v != "" {
		mapping.SKU = v
	}
	if v := r.FormValue("week_column"); v != "" {
		mapping.Week = v
	}
	if v := r.FormValue("units_column"); v != "" {
		mapping.Units = v
	}
}

func handleImportError(w http.ResponseWriter, err error) {
	var mappingErr *importing.MappingError
	if errors.As(err, &mappingErr) {
		apiErrors.WriteError(w, apiErrors.ErrMappingIncomplete, "Não foi possível identificar todas as colunas", map[string]any{
			"missing_roles": mappingErr.MissingRoles,
		})
		return
	}

	logrus.WithError(err).Error("Erro ao importar relatório de vendas")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao importar relatório de vendas", nil)
}
