package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-velocity-api/internal/config"
	"github.com/vfg2006/retail-velocity-api/internal/domain"
	"github.com/vfg2006/retail-velocity-api/pkg/apiErrors"
	"github.com/vfg2006/retail-velocity-api/pkg/middleware"
)

// stubImporter captura os argumentos da ingestão para inspeção no teste
type stubImporter struct {
	userID  int
	rows    []map[string]string
	mapping domain.ColumnMapping
	summary *domain.ImportSummary
	err     error
}

func (s *stubImporter) Ingest(userID int, rows []map[string]string, mapping domain.ColumnMapping) (*domain.ImportSummary, error) {
	s.userID = userID
	s.rows = rows
	s.mapping = mapping
	return s.summary, s.err
}

func importTestConfig() *config.Config {
	return &config.Config{
		Import: config.Import{
			BatchSize:      200,
			MaxUploadBytes: 1024 * 1024,
			PreviewRows:    5,
		},
	}
}

func multipartCSVRequest(t *testing.T, path string, csvBody string, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "relatorio.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csvBody))
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	ctx := context.WithValue(req.Context(), middleware.ContextKeyUser, &domain.Claims{UserID: 7})
	return req.WithContext(ctx)
}

func TestImportSalesReport(t *testing.T) {
	importer := &stubImporter{
		summary: &domain.ImportSummary{Created: 2},
	}

	csvBody := "Store Name,Item Description,Week Ending,Units Sold\n" +
		"Whole Foods #12,Bar A,2024-01-10,\"1,200\"\n" +
		"Whole Foods #12,Bar B,2024-01-10,300\n"

	req := multipartCSVRequest(t, "/v1/imports", csvBody, nil)
	rec := httptest.NewRecorder()

	ImportSalesReport(importer, importTestConfig())(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 7, importer.userID)
	assert.Len(t, importer.rows, 2)
	assert.Equal(t, domain.ColumnMapping{
		Store: "Store Name",
		SKU:   "Item Description",
		Week:  "Week Ending",
		Units: "Units Sold",
	}, importer.mapping)

	var summary domain.ImportSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 2, summary.Created)
}

func TestImportSalesReport_SobrescritaDeMapeamento(t *testing.T) {
	importer := &stubImporter{summary: &domain.ImportSummary{}}

	csvBody := "Loja,Produto,Data,Qtd\nWhole Foods #12,Bar A,2024-01-10,10\n"

	req := multipartCSVRequest(t, "/v1/imports", csvBody, map[string]string{
		"store_column": "Loja",
		"sku_column":   "Produto",
		"week_column":  "Data",
		"units_column": "Qtd",
	})
	rec := httptest.NewRecorder()

	ImportSalesReport(importer, importTestConfig())(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Loja", importer.mapping.Store)
	assert.Equal(t, "Qtd", importer.mapping.Units)
}

func TestImportSalesReport_ArquivoNaoSuportado(t *testing.T) {
	importer := &stubImporter{summary: &domain.ImportSummary{}}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "relatorio.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/imports", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	ctx := context.WithValue(req.Context(), middleware.ContextKeyUser, &domain.Claims{UserID: 7})
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()

	ImportSalesReport(importer, importTestConfig())(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrUnsupportedFile, apiErr.Code)
}

func TestImportSalesReport_SemAutenticacao(t *testing.T) {
	importer := &stubImporter{summary: &domain.ImportSummary{}}

	req := httptest.NewRequest(http.MethodPost, "/v1/imports", nil)
	rec := httptest.NewRecorder()

	ImportSalesReport(importer, importTestConfig())(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPreviewSalesReport(t *testing.T) {
	csvBody := "Store Name,Item Description,Week Ending,Units Sold\n" +
		"Whole Foods #12,Bar A,2024-01-10,100\n" +
		"Whole Foods #12,Bar B,2024-01-10,200\n" +
		"Whole Foods #12,Bar C,2024-01-10,300\n"

	cfg := importTestConfig()
	cfg.Import.PreviewRows = 2

	req := multipartCSVRequest(t, "/v1/imports/preview", csvBody, nil)
	rec := httptest.NewRecorder()

	PreviewSalesReport(cfg)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var preview domain.ImportPreview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &preview))

	assert.Equal(t, []string{"Store Name", "Item Description", "Week Ending", "Units Sold"}, preview.Headers)
	assert.Equal(t, 3, preview.RowCount)
	assert.Len(t, preview.Sample, 2)
	assert.Equal(t, "Store Name", preview.Mapping.Store)
}
