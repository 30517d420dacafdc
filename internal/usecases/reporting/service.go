package reporting

import (
	"github.com/vfg2006/retail-velocity-api/infrastructure/repository"
	"github.com/vfg2006/retail-velocity-api/internal/domain"
)

// Reporter expõe as visões agregadas consumidas pelos handlers. As leituras
// usam um retrato consistente do conjunto de fatos no momento da chamada;
// defasagem entre o fim de uma importação e a próxima consulta é aceitável.
type Reporter interface {
	Dashboard(userID int) (*domain.DashboardResponse, error)
	StoreStats(userID int) (*domain.StoreStatsResponse, error)
	Velocity(userID int) ([]domain.SKUVelocityItem, error)
	ListSKUs(userID int) ([]*domain.SKU, error)
	ListStores(userID int) ([]*domain.Store, error)
}

const dashboardTrendWeeks = 8

type Service struct {
	skuRepo    repository.SKURepository
	storeRepo  repository.StoreRepository
	reportRepo repository.SalesReportRepository
}

func NewService(
	skuRepo repository.SKURepository,
	storeRepo repository.StoreRepository,
	reportRepo repository.SalesReportRepository,
) Reporter {
	return &Service{
		skuRepo:    skuRepo,
		storeRepo:  storeRepo,
		reportRepo: reportRepo,
	}
}

func (s *Service) Dashboard(userID int) (*domain.DashboardResponse, error) {
	reports, err := s.reportRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	skus, err := s.skuRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	stores, err := s.storeRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	var totalAllTime float64
	for _, r := range reports {
		totalAllTime += r.UnitsSold
	}

	trend := WeeklyTotals(reports, dashboardTrendWeeks)

	var currentWeek float64
	if len(trend) > 0 {
		currentWeek = trend[len(trend)-1].Units
	}

	return &domain.DashboardResponse{
		TotalUnitsAllTime: totalAllTime,
		CurrentWeekUnits:  currentWeek,
		WeekOverWeek:      WeekOverWeekChange(reports),
		ActiveSKUs:        len(skus),
		StoreCount:        len(stores),
		WeeklyTrend:       trend,
		TopSKUs:           TopSKUs(reports, skus, 0),
	}, nil
}

func (s *Service) StoreStats(userID int) (*domain.StoreStatsResponse, error) {
	reports, err := s.reportRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	stores, err := s.storeRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := StoreStats(reports, stores)

	return &domain.StoreStatsResponse{
		Stores:    stats,
		Retailers: RetailerRollup(stats),
	}, nil
}

func (s *Service) Velocity(userID int) ([]domain.SKUVelocityItem, error) {
	reports, err := s.reportRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	skus, err := s.skuRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	return SKUVelocity(reports, skus), nil
}

func (s *Service) ListSKUs(userID int) ([]*domain.SKU, error) {
	return s.skuRepo.ListByUser(userID)
}

func (s *Service) ListStores(userID int) ([]*domain.Store, error) {
	return s.storeRepo.ListByUser(userID)
}
