package importing

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-velocity-api/infrastructure/repository"
	"github.com/vfg2006/retail-velocity-api/internal/config"
	"github.com/vfg2006/retail-velocity-api/internal/domain"
	"github.com/vfg2006/retail-velocity-api/pkg/utils"
)

// Importer é o coordenador de uma importação de relatório semanal de vendas
type Importer interface {
	Ingest(userID int, rows []map[string]string, mapping domain.ColumnMapping) (*domain.ImportSummary, error)
}

type Service struct {
	skuRepo    repository.SKURepository
	storeRepo  repository.StoreRepository
	reportRepo repository.SalesReportRepository
	cfg        *config.Config
}

func NewService(
	skuRepo repository.SKURepository,
	storeRepo repository.StoreRepository,
	reportRepo repository.SalesReportRepository,
	cfg *config.Config,
) Importer {
	return &Service{
		skuRepo:    skuRepo,
		storeRepo:  storeRepo,
		reportRepo: reportRepo,
		cfg:        cfg,
	}
}

// Ingest processa um lote de linhas já extraídas do arquivo:
//  1. valida o mapeamento (incompleto = falha imediata, nenhuma linha tocada);
//  2. coleta nomes de SKUs e lojas desconhecidos em uma única varredura;
//  3. cria as entidades novas em bloco e completa os mapas nome→id;
//  4. monta os fatos linha a linha, contando puladas e erros;
//  5. grava em lotes com upsert na chave natural (substitui o valor).
//
// Reimportar o mesmo arquivo é seguro: os valores finais não mudam, apenas o
// contador de criados conta de novo.
func (s *Service) Ingest(userID int, rows []map[string]string, mapping domain.ColumnMapping) (*domain.ImportSummary, error) {
	if !mapping.IsComplete() {
		return nil, NewMappingError(mapping.MissingRoles())
	}

	summary := &domain.ImportSummary{Mapping: mapping}

	skuMap, err := s.loadSKUMap(userID)
	if err != nil {
		return nil, err
	}

	storeMap, err := s.loadStoreMap(userID)
	if err != nil {
		return nil, err
	}

	s.createMissingSKUs(userID, rows, mapping, skuMap)
	s.createMissingStores(userID, rows, mapping, storeMap)

	reportRows := s.buildReportRows(userID, rows, mapping, skuMap, storeMap, summary)

	batchSize := s.cfg.Import.BatchSize
	if batchSize <= 0 {
		batchSize = 200
	}

	for start := 0; start < len(reportRows); start += batchSize {
		end := start + batchSize
		if end > len(reportRows) {
			end = len(reportRows)
		}

		batch := reportRows[start:end]
		if err := s.reportRepo.UpsertBatch(batch); err != nil {
			// O lote é a unidade de falha: todas as suas linhas viram erro,
			// mas os lotes já confirmados permanecem gravados
			logrus.WithError(err).WithFields(logrus.Fields{
				"user_id":    userID,
				"batch_size": len(batch),
			}).Error("Erro ao gravar lote de fatos de vendas")
			summary.Errors += len(batch)
			continue
		}
		summary.Created += len(batch)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"created": summary.Created,
		"skipped": summary.Skipped,
		"errors":  summary.Errors,
	}).Info("Importação de relatório de vendas concluída")

	return summary, nil
}

func (s *Service) loadSKUMap(userID int) (map[string]string, error) {
	skus, err := s.skuRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	skuMap := make(map[string]string, len(skus))
	for _, sku := range skus {
		skuMap[NormalizeKey(sku.Name)] = sku.ID
	}
	return skuMap, nil
}

func (s *Service) loadStoreMap(userID int) (map[string]string, error) {
	stores, err := s.storeRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	storeMap := make(map[string]string, len(stores))
	for _, store := range stores {
		storeMap[NormalizeKey(store.Name)] = store.ID
	}
	return storeMap, nil
}

// createMissingSKUs cria os SKUs inéditos e completa o mapa nome→id.
// Falha de criação não aborta a importação: as linhas que dependerem dos
// ids ausentes serão contadas como erro na montagem dos fatos.
func (s *Service) createMissingSKUs(userID int, rows []map[string]string, mapping domain.ColumnMapping, skuMap map[string]string) {
	names := MissingNames(rows, mapping.SKU, skuMap)
	if len(names) == 0 {
		return
	}

	created, err := s.skuRepo.CreateMany(userID, names)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao criar SKUs da importação")
		return
	}

	for _, sku := range created {
		skuMap[NormalizeKey(sku.Name)] = sku.ID
	}
}

func (s *Service) createMissingStores(userID int, rows []map[string]string, mapping domain.ColumnMapping, storeMap map[string]string) {
	names := MissingNames(rows, mapping.Store, storeMap)
	if len(names) == 0 {
		return
	}

	stores := make([]*domain.Store, 0, len(names))
	for _, name := range names {
		stores = append(stores, &domain.Store{
			Name:     name,
			Retailer: InferRetailer(name, s.cfg.Retailers.Names, s.cfg.Retailers.DefaultLabel),
		})
	}

	created, err := s.storeRepo.CreateMany(userID, stores)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao criar lojas da importação")
		return
	}

	for _, store := range created {
		storeMap[NormalizeKey(store.Name)] = store.ID
	}
}

// buildReportRows monta os fatos de vendas linha a linha. Linha sem SKU,
// loja ou data (ou com data irreconhecível) é pulada — esperado em linhas
// finais em branco. Quantidade ilegível vira 0 e a linha segue. Id não
// resolvido indica falha de persistência na criação em bloco e conta como
// erro, não como pulo.
func (s *Service) buildReportRows(
	userID int,
	rows []map[string]string,
	mapping domain.ColumnMapping,
	skuMap map[string]string,
	storeMap map[string]string,
	summary *domain.ImportSummary,
) []*domain.SalesReport {
	reportRows := make([]*domain.SalesReport, 0, len(rows))

	for _, row := range rows {
		skuName := strings.TrimSpace(row[mapping.SKU])
		storeName := strings.TrimSpace(row[mapping.Store])
		rawDate := strings.TrimSpace(row[mapping.Week])

		if skuName == "" || storeName == "" || rawDate == "" {
			summary.Skipped++
			continue
		}

		date, err := ParseReportDate(rawDate)
		if err != nil {
			summary.Skipped++
			continue
		}
		weekStart := WeekStart(date).Format("2006-01-02")

		units := utils.ParseUnits(row[mapping.Units])

		skuID, skuOK := skuMap[NormalizeKey(skuName)]
		storeID, storeOK := storeMap[NormalizeKey(storeName)]
		if !skuOK || !storeOK {
			summary.Errors++
			continue
		}

		reportRows = append(reportRows, &domain.SalesReport{
			UserID:    userID,
			SKUID:     skuID,
			StoreID:   storeID,
			WeekStart: weekStart,
			UnitsSold: units,
		})
	}

	return reportRows
}
