package importing

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-velocity-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-velocity-api/internal/config"
	"github.com/vfg2006/retail-velocity-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var testMapping = domain.ColumnMapping{
	Store: "Store Name",
	SKU:   "Item Description",
	Week:  "Week Ending",
	Units: "Units Sold",
}

func testConfig() *config.Config {
	return &config.Config{
		Import: config.Import{BatchSize: 200},
		Retailers: config.Retailers{
			Names:        []string{"Whole Foods", "Sprouts", "Kroger"},
			DefaultLabel: "Whole Foods",
		},
	}
}

func newTestService(skuRepo *mocks.MockSKURepository, storeRepo *mocks.MockStoreRepository, reportRepo *mocks.MockSalesReportRepository, cfg *config.Config) *Service {
	return &Service{
		skuRepo:    skuRepo,
		storeRepo:  storeRepo,
		reportRepo: reportRepo,
		cfg:        cfg,
	}
}

func TestService_Ingest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSKURepo := mocks.NewMockSKURepository(ctrl)
	mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
	mockReportRepo := mocks.NewMockSalesReportRepository(ctrl)

	service := newTestService(mockSKURepo, mockStoreRepo, mockReportRepo, testConfig())

	rows := []map[string]string{
		{
			"Store Name":       "Whole Foods #12",
			"Item Description": "Bar A",
			"Week Ending":      "2024-01-10",
			"Units Sold":       "1,200",
		},
	}

	// Nenhuma entidade conhecida: SKU e loja são criados na hora
	mockSKURepo.EXPECT().ListByUser(1).Return(nil, nil)
	mockStoreRepo.EXPECT().ListByUser(1).Return(nil, nil)

	mockSKURepo.EXPECT().
		CreateMany(1, []string{"Bar A"}).
		Return([]*domain.SKU{{ID: "SKU001", Name: "Bar A"}}, nil)

	mockStoreRepo.EXPECT().
		CreateMany(1, gomock.Any()).
		DoAndReturn(func(userID int, stores []*domain.Store) ([]*domain.Store, error) {
			assert.Len(t, stores, 1)
			assert.Equal(t, "Whole Foods #12", stores[0].Name)
			assert.Equal(t, "Whole Foods", stores[0].Retailer)

			stores[0].ID = "STO001"
			return stores, nil
		})

	mockReportRepo.EXPECT().
		UpsertBatch(gomock.Any()).
		DoAndReturn(func(reports []*domain.SalesReport) error {
			assert.Len(t, reports, 1)
			assert.Equal(t, 1, reports[0].UserID)
			assert.Equal(t, "SKU001", reports[0].SKUID)
			assert.Equal(t, "STO001", reports[0].StoreID)
			assert.Equal(t, "2024-01-08", reports[0].WeekStart) // segunda-feira da semana
			assert.Equal(t, 1200.0, reports[0].UnitsSold)
			return nil
		})

	summary, err := service.Ingest(1, rows, testMapping)

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 0, summary.Errors)
}

func TestService_Ingest_LinhasPuladas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSKURepo := mocks.NewMockSKURepository(ctrl)
	mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
	mockReportRepo := mocks.NewMockSalesReportRepository(ctrl)

	service := newTestService(mockSKURepo, mockStoreRepo, mockReportRepo, testConfig())

	rows := []map[string]string{
		// Sem data
		{"Store Name": "Whole Foods #12", "Item Description": "Bar A", "Week Ending": "", "Units Sold": "10"},
		// Data irreconhecível
		{"Store Name": "Whole Foods #12", "Item Description": "Bar A", "Week Ending": "semana passada", "Units Sold": "10"},
		// Sem SKU
		{"Store Name": "Whole Foods #12", "Item Description": "", "Week Ending": "2024-01-10", "Units Sold": "10"},
		// Linha válida: quantidade ilegível vira 0, a linha segue
		{"Store Name": "Whole Foods #12", "Item Description": "Bar A", "Week Ending": "2024-01-10", "Units Sold": "abc"},
	}

	mockSKURepo.EXPECT().
		ListByUser(1).
		Return([]*domain.SKU{{ID: "SKU001", Name: "Bar A"}}, nil)
	mockStoreRepo.EXPECT().
		ListByUser(1).
		Return([]*domain.Store{{ID: "STO001", Name: "Whole Foods #12", Retailer: "Whole Foods"}}, nil)

	mockReportRepo.EXPECT().
		UpsertBatch(gomock.Any()).
		DoAndReturn(func(reports []*domain.SalesReport) error {
			assert.Len(t, reports, 1)
			assert.Equal(t, 0.0, reports[0].UnitsSold)
			return nil
		})

	summary, err := service.Ingest(1, rows, testMapping)

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 3, summary.Skipped)
	assert.Equal(t, 0, summary.Errors)
}

func TestService_Ingest_MapeamentoIncompleto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSKURepo := mocks.NewMockSKURepository(ctrl)
	mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
	mockReportRepo := mocks.NewMockSalesReportRepository(ctrl)

	service := newTestService(mockSKURepo, mockStoreRepo, mockReportRepo, testConfig())

	incomplete := domain.ColumnMapping{Store: "Store Name", Units: "Units Sold"}

	// Nenhum repositório é tocado: a falha é imediata
	summary, err := service.Ingest(1, nil, incomplete)

	assert.Nil(t, summary)

	var mappingErr *MappingError
	assert.ErrorAs(t, err, &mappingErr)
	assert.ErrorIs(t, err, ErrMappingIncomplete)
	assert.Equal(t, []string{domain.RoleSKU, domain.RoleWeek}, mappingErr.MissingRoles)
}

func TestService_Ingest_LotesMultiplos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSKURepo := mocks.NewMockSKURepository(ctrl)
	mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
	mockReportRepo := mocks.NewMockSalesReportRepository(ctrl)

	cfg := testConfig()
	cfg.Import.BatchSize = 2

	service := newTestService(mockSKURepo, mockStoreRepo, mockReportRepo, cfg)

	rows := []map[string]string{
		{"Store Name": "Whole Foods #12", "Item Description": "Bar A", "Week Ending": "2024-01-01", "Units Sold": "1"},
		{"Store Name": "Whole Foods #12", "Item Description": "Bar A", "Week Ending": "2024-01-08", "Units Sold": "2"},
		{"Store Name": "Whole Foods #12", "Item Description": "Bar A", "Week Ending": "2024-01-15", "Units Sold": "3"},
	}

	mockSKURepo.EXPECT().
		ListByUser(1).
		Return([]*domain.SKU{{ID: "SKU001", Name: "Bar A"}}, nil)
	mockStoreRepo.EXPECT().
		ListByUser(1).
		Return([]*domain.Store{{ID: "STO001", Name: "Whole Foods #12", Retailer: "Whole Foods"}}, nil)

	// Primeiro lote com 2 linhas falha; o segundo, com 1, é gravado
	first := mockReportRepo.EXPECT().
		UpsertBatch(gomock.Len(2)).
		Return(errors.New("conexão perdida"))
	mockReportRepo.EXPECT().
		UpsertBatch(gomock.Len(1)).
		Return(nil).
		After(first)

	summary, err := service.Ingest(1, rows, testMapping)

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 2, summary.Errors)
}

func TestService_Ingest_FalhaNaCriacaoDeEntidades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSKURepo := mocks.NewMockSKURepository(ctrl)
	mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
	mockReportRepo := mocks.NewMockSalesReportRepository(ctrl)

	service := newTestService(mockSKURepo, mockStoreRepo, mockReportRepo, testConfig())

	rows := []map[string]string{
		{"Store Name": "Whole Foods #12", "Item Description": "Bar A", "Week Ending": "2024-01-10", "Units Sold": "10"},
	}

	mockSKURepo.EXPECT().ListByUser(1).Return(nil, nil)
	mockStoreRepo.EXPECT().
		ListByUser(1).
		Return([]*domain.Store{{ID: "STO001", Name: "Whole Foods #12", Retailer: "Whole Foods"}}, nil)

	// A criação do SKU falha: a importação continua e a linha vira erro
	mockSKURepo.EXPECT().
		CreateMany(1, []string{"Bar A"}).
		Return(nil, errors.New("banco indisponível"))

	summary, err := service.Ingest(1, rows, testMapping)

	assert.NoError(t, err)
	assert.Equal(t, 0, summary.Created)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 1, summary.Errors)
}

func TestService_Ingest_ReimportacaoIdempotente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSKURepo := mocks.NewMockSKURepository(ctrl)
	mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
	mockReportRepo := mocks.NewMockSalesReportRepository(ctrl)

	service := newTestService(mockSKURepo, mockStoreRepo, mockReportRepo, testConfig())

	rows := []map[string]string{
		{"Store Name": "Whole Foods #12", "Item Description": "Bar A", "Week Ending": "2024-01-10", "Units Sold": "500"},
	}

	// Na reimportação as entidades já existem: nada é criado de novo e o
	// upsert substitui o valor na chave natural
	mockSKURepo.EXPECT().
		ListByUser(1).
		Return([]*domain.SKU{{ID: "SKU001", Name: "Bar A"}}, nil).
		Times(2)
	mockStoreRepo.EXPECT().
		ListByUser(1).
		Return([]*domain.Store{{ID: "STO001", Name: "Whole Foods #12", Retailer: "Whole Foods"}}, nil).
		Times(2)
	mockReportRepo.EXPECT().
		UpsertBatch(gomock.Len(1)).
		Return(nil).
		Times(2)

	first, err := service.Ingest(1, rows, testMapping)
	assert.NoError(t, err)

	second, err := service.Ingest(1, rows, testMapping)
	assert.NoError(t, err)

	// O contador de criados conta de novo; os valores finais não mudam
	assert.Equal(t, first.Created, second.Created)
}
