// Package scheduler contém os serviços de agendamento para consolidação de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-velocity-api/infrastructure/repository"
	"github.com/vfg2006/retail-velocity-api/internal/config"
	"github.com/vfg2006/retail-velocity-api/internal/usecases/reporting"
)

type WeeklySummarySyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// WeeklySummarySyncService recalcula periodicamente o resumo de unidades por
// semana de cada usuário a partir dos fatos de vendas e o grava na tabela de
// resumos. O resumo é um cache de leitura; a fonte da verdade continua sendo
// os fatos.
type WeeklySummarySyncService struct {
	scheduler           *gocron.Scheduler
	reportRepo          repository.SalesReportRepository
	summaryRepo         repository.WeeklySummaryRepository
	config              WeeklySummarySyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewWeeklySummarySyncService(
	reportRepo repository.SalesReportRepository,
	summaryRepo repository.WeeklySummaryRepository,
	cfg *config.Config,
) *WeeklySummarySyncService {
	syncConfig := WeeklySummarySyncConfig{
		CronSchedule: cfg.WeeklySummarySync.CronSchedule, // Default: 5h da manhã todos os dias
		SyncEnabled:  cfg.WeeklySummarySync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de resumos semanais carregada")

	return &WeeklySummarySyncService{
		scheduler:   scheduler,
		reportRepo:  reportRepo,
		summaryRepo: summaryRepo,
		config:      syncConfig,
	}
}

func (s *WeeklySummarySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de resumos semanais desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de resumos semanais")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncWeeklySummaries(); err != nil {
			logrus.WithError(err).Error("Erro na consolidação de resumos semanais")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar consolidação de resumos semanais: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de resumos semanais")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncWeeklySummaries recalcula o resumo semanal de todos os usuários com
// fatos gravados. Falha em um usuário não interrompe os demais.
func (s *WeeklySummarySyncService) SyncWeeklySummaries() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Consolidação de resumos semanais já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando consolidação de resumos semanais")

	userIDs, err := s.reportRepo.ListUserIDs()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar usuários com fatos de vendas")
		return err
	}

	if len(userIDs) == 0 {
		logrus.Info("Nenhum usuário com fatos de vendas para consolidar")
		return nil
	}

	var failures int
	for _, userID := range userIDs {
		if err := s.syncUserSummary(userID); err != nil {
			logrus.WithError(err).WithField("user_id", userID).Error("Erro ao consolidar resumo semanal do usuário")
			failures++
		}
	}

	logrus.WithFields(logrus.Fields{
		"users":    len(userIDs),
		"failures": failures,
	}).Info("Consolidação de resumos semanais concluída")

	return nil
}

func (s *WeeklySummarySyncService) syncUserSummary(userID int) error {
	reports, err := s.reportRepo.ListByUser(userID)
	if err != nil {
		return err
	}

	// lastN = 0 consolida todas as semanas do histórico
	totals := reporting.WeeklyTotals(reports, 0)
	if len(totals) == 0 {
		return nil
	}

	return s.summaryRepo.SaveOrUpdate(userID, totals)
}

// TriggerManualSync dispara a consolidação fora do horário agendado
func (s *WeeklySummarySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação de resumos semanais já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando consolidação manual de resumos semanais")
	go func() {
		if err := s.SyncWeeklySummaries(); err != nil {
			logrus.WithError(err).Error("Erro na consolidação manual de resumos semanais")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *WeeklySummarySyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
