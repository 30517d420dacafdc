package reporting

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-velocity-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-velocity-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSKURepo := mocks.NewMockSKURepository(ctrl)
	mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
	mockReportRepo := mocks.NewMockSalesReportRepository(ctrl)

	service := &Service{
		skuRepo:    mockSKURepo,
		storeRepo:  mockStoreRepo,
		reportRepo: mockReportRepo,
	}

	skus := []*domain.SKU{
		{ID: "SKU001", Name: "Bar A"},
		{ID: "SKU002", Name: "Bar B"},
	}
	stores := []*domain.Store{
		{ID: "STO001", Name: "Whole Foods #12", Retailer: "Whole Foods"},
	}
	reports := []*domain.SalesReport{
		report("SKU001", "STO001", "2024-01-01", 100),
		report("SKU002", "STO001", "2024-01-01", 50),
		report("SKU001", "STO001", "2024-01-08", 200),
	}

	mockReportRepo.EXPECT().ListByUser(1).Return(reports, nil)
	mockSKURepo.EXPECT().ListByUser(1).Return(skus, nil)
	mockStoreRepo.EXPECT().ListByUser(1).Return(stores, nil)

	dashboard, err := service.Dashboard(1)

	assert.NoError(t, err)
	assert.Equal(t, 350.0, dashboard.TotalUnitsAllTime)
	assert.Equal(t, 200.0, dashboard.CurrentWeekUnits)
	assert.Equal(t, 2, dashboard.ActiveSKUs)
	assert.Equal(t, 1, dashboard.StoreCount)
	assert.Len(t, dashboard.WeeklyTrend, 2)

	// 200 contra 150 na semana anterior: +33.33%
	assert.NotNil(t, dashboard.WeekOverWeek)
	assert.InDelta(t, 33.33, *dashboard.WeekOverWeek, 0.01)

	assert.Equal(t, "SKU001", dashboard.TopSKUs[0].SKU.ID)
	assert.Equal(t, 300.0, dashboard.TopSKUs[0].Units)
}

func TestService_Dashboard_SemFatos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSKURepo := mocks.NewMockSKURepository(ctrl)
	mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
	mockReportRepo := mocks.NewMockSalesReportRepository(ctrl)

	service := &Service{
		skuRepo:    mockSKURepo,
		storeRepo:  mockStoreRepo,
		reportRepo: mockReportRepo,
	}

	mockReportRepo.EXPECT().ListByUser(1).Return(nil, nil)
	mockSKURepo.EXPECT().ListByUser(1).Return(nil, nil)
	mockStoreRepo.EXPECT().ListByUser(1).Return(nil, nil)

	dashboard, err := service.Dashboard(1)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, dashboard.TotalUnitsAllTime)
	assert.Equal(t, 0.0, dashboard.CurrentWeekUnits)
	assert.Nil(t, dashboard.WeekOverWeek)
	assert.Empty(t, dashboard.WeeklyTrend)
	assert.Empty(t, dashboard.TopSKUs)
}

func TestService_StoreStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSKURepo := mocks.NewMockSKURepository(ctrl)
	mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
	mockReportRepo := mocks.NewMockSalesReportRepository(ctrl)

	service := &Service{
		skuRepo:    mockSKURepo,
		storeRepo:  mockStoreRepo,
		reportRepo: mockReportRepo,
	}

	stores := []*domain.Store{
		{ID: "STO001", Name: "Whole Foods #12", Retailer: "Whole Foods"},
		{ID: "STO002", Name: "Sprouts Downtown", Retailer: "Sprouts"},
	}
	reports := []*domain.SalesReport{
		report("SKU001", "STO001", "2024-01-01", 30),
		report("SKU001", "STO002", "2024-01-01", 70),
	}

	mockReportRepo.EXPECT().ListByUser(1).Return(reports, nil)
	mockStoreRepo.EXPECT().ListByUser(1).Return(stores, nil)

	stats, err := service.StoreStats(1)

	assert.NoError(t, err)
	assert.Len(t, stats.Stores, 2)
	assert.Equal(t, "STO002", stats.Stores[0].Store.ID)
	assert.Len(t, stats.Retailers, 2)
	assert.Equal(t, "Sprouts", stats.Retailers[0].Retailer)
}

func TestService_Dashboard_ErroDoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSKURepo := mocks.NewMockSKURepository(ctrl)
	mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
	mockReportRepo := mocks.NewMockSalesReportRepository(ctrl)

	service := &Service{
		skuRepo:    mockSKURepo,
		storeRepo:  mockStoreRepo,
		reportRepo: mockReportRepo,
	}

	mockReportRepo.EXPECT().ListByUser(1).Return(nil, errors.New("conexão perdida"))

	dashboard, err := service.Dashboard(1)

	assert.Error(t, err)
	assert.Nil(t, dashboard)
}
