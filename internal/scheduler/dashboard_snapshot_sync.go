// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/flooring-analytics-api/infrastructure/repository"
	"github.com/vfg2006/flooring-analytics-api/infrastructure/repository/analytics"
	"github.com/vfg2006/flooring-analytics-api/internal/config"
	"github.com/vfg2006/flooring-analytics-api/internal/domain"
)

// DashboardSnapshotSyncService grava diariamente a fotografia dos KPIs
// organizacionais, para o histórico do dashboard não depender de reprocessar
// o período a cada consulta.
type DashboardSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	gateway             analytics.Gateway
	snapshotRepo        repository.DashboardSnapshotRepository
	config              config.DashboardSnapshotSync
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// SyncStatus é o estado exposto pelo endpoint de status do cron.
type SyncStatus struct {
	Enabled             bool      `json:"enabled"`
	CronSchedule        string    `json:"cron_schedule"`
	Running             bool      `json:"running"`
	LastSyncStartedAt   time.Time `json:"last_sync_started_at"`
	LastSyncCompletedAt time.Time `json:"last_sync_completed_at"`
}

func NewDashboardSnapshotSyncService(
	gateway analytics.Gateway,
	snapshotRepo repository.DashboardSnapshotRepository,
	cfg *config.Config,
) *DashboardSnapshotSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.DashboardSnapshotSync.CronSchedule,
		"enabled":       cfg.DashboardSnapshotSync.Enabled,
	}).Info("Configuração do agendador de snapshot do dashboard carregada")

	return &DashboardSnapshotSyncService{
		scheduler:    scheduler,
		gateway:      gateway,
		snapshotRepo: snapshotRepo,
		config:       cfg.DashboardSnapshotSync,
	}
}

func (s *DashboardSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de snapshot do dashboard desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshot do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncDashboardSnapshot(); err != nil {
			logrus.WithError(err).Error("Erro na sincronização do snapshot do dashboard")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshot do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshot do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncDashboardSnapshot calcula os KPIs do período de lookback e grava a
// fotografia do dia. Execuções concorrentes são rejeitadas com aviso.
func (s *DashboardSnapshotSyncService) SyncDashboardSnapshot() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Sincronização de snapshot do dashboard já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	today := time.Now()
	period := domain.DateRange{
		From: today.AddDate(0, 0, -s.config.LookbackDays),
		To:   today,
	}

	kpis, err := s.gateway.DashboardKPIs(period)
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular KPIs para o snapshot do dashboard")
		return err
	}

	snapshot := &domain.DashboardSnapshot{
		Date:           today.Format(time.DateOnly),
		TotalRevenue:   kpis.TotalRevenue,
		GrowthRate:     kpis.GrowthRate,
		InvoiceCount:   kpis.InvoiceCount,
		AverageInvoice: kpis.AverageInvoice,
		ActiveDealers:  kpis.ActiveDealers,
	}

	if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
		logrus.WithError(err).Error("Erro ao gravar snapshot do dashboard")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"date":          snapshot.Date,
		"total_revenue": snapshot.TotalRevenue,
	}).Info("Snapshot do dashboard gravado com sucesso")

	return nil
}

// TriggerManualSync dispara a sincronização fora do horário agendado.
func (s *DashboardSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshot do dashboard já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshot do dashboard")
	go func() {
		if err := s.SyncDashboardSnapshot(); err != nil {
			logrus.WithError(err).Error("Erro na sincronização manual do snapshot do dashboard")
		}
	}()
}

// Status devolve o estado atual do agendador.
func (s *DashboardSnapshotSyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return SyncStatus{
		Enabled:             s.config.Enabled,
		CronSchedule:        s.config.CronSchedule,
		Running:             s.syncRunning,
		LastSyncStartedAt:   s.lastSyncStartedAt,
		LastSyncCompletedAt: s.lastSyncCompletedAt,
	}
}
