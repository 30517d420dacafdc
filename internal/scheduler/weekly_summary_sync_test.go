package scheduler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-velocity-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-velocity-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func salesFact(userID int, weekStart string, units float64) *domain.SalesReport {
	return &domain.SalesReport{
		UserID:    userID,
		SKUID:     "SKU001",
		StoreID:   "STO001",
		WeekStart: weekStart,
		UnitsSold: units,
	}
}

func TestWeeklySummarySyncService_SyncWeeklySummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportRepo := mocks.NewMockSalesReportRepository(ctrl)
	mockSummaryRepo := mocks.NewMockWeeklySummaryRepository(ctrl)

	service := &WeeklySummarySyncService{
		reportRepo:  mockReportRepo,
		summaryRepo: mockSummaryRepo,
	}

	mockReportRepo.EXPECT().ListUserIDs().Return([]int{1, 2}, nil)

	mockReportRepo.EXPECT().ListByUser(1).Return([]*domain.SalesReport{
		salesFact(1, "2024-01-01", 10),
		salesFact(1, "2024-01-08", 20),
		salesFact(1, "2024-01-01", 5),
	}, nil)
	mockSummaryRepo.EXPECT().
		SaveOrUpdate(1, []domain.WeeklyTotal{
			{WeekStart: "2024-01-01", Units: 15},
			{WeekStart: "2024-01-08", Units: 20},
		}).
		Return(nil)

	// Usuário sem fatos: nada é gravado
	mockReportRepo.EXPECT().ListByUser(2).Return(nil, nil)

	err := service.SyncWeeklySummaries()

	assert.NoError(t, err)
	assert.False(t, service.syncRunning)
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestWeeklySummarySyncService_FalhaEmUmUsuarioNaoInterrompe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportRepo := mocks.NewMockSalesReportRepository(ctrl)
	mockSummaryRepo := mocks.NewMockWeeklySummaryRepository(ctrl)

	service := &WeeklySummarySyncService{
		reportRepo:  mockReportRepo,
		summaryRepo: mockSummaryRepo,
	}

	mockReportRepo.EXPECT().ListUserIDs().Return([]int{1, 2}, nil)

	mockReportRepo.EXPECT().ListByUser(1).Return(nil, errors.New("conexão perdida"))

	// O segundo usuário ainda é processado
	mockReportRepo.EXPECT().ListByUser(2).Return([]*domain.SalesReport{
		salesFact(2, "2024-01-01", 7),
	}, nil)
	mockSummaryRepo.EXPECT().
		SaveOrUpdate(2, []domain.WeeklyTotal{{WeekStart: "2024-01-01", Units: 7}}).
		Return(nil)

	err := service.SyncWeeklySummaries()

	assert.NoError(t, err)
}

func TestWeeklySummarySyncService_ExecucaoConcorrenteIgnorada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportRepo := mocks.NewMockSalesReportRepository(ctrl)
	mockSummaryRepo := mocks.NewMockWeeklySummaryRepository(ctrl)

	service := &WeeklySummarySyncService{
		reportRepo:  mockReportRepo,
		summaryRepo: mockSummaryRepo,
	}

	service.syncRunning = true

	// Nenhuma chamada aos repositórios é esperada
	err := service.SyncWeeklySummaries()

	assert.NoError(t, err)
}

func TestWeeklySummarySyncService_GetStatus(t *testing.T) {
	service := &WeeklySummarySyncService{
		config: WeeklySummarySyncConfig{
			CronSchedule: "0 5 * * *",
			SyncEnabled:  true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 5 * * *", status["sync_cron"])
}
