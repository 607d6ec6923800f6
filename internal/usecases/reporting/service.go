// Package reporting renderiza o dashboard organizacional: dispara todas as
// métricas de uma página em paralelo e embrulha cada uma num envelope seguro,
// para que uma métrica lenta ou quebrada nunca derrube as vizinhas.
package reporting

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/flooring-analytics-api/infrastructure/repository"
	"github.com/vfg2006/flooring-analytics-api/infrastructure/repository/analytics"
	"github.com/vfg2006/flooring-analytics-api/internal/domain"
)

// Limite padrão dos rankings do dashboard
const defaultTopLimit = 10

type Reporter interface {
	GetDashboard(period domain.DateRange) *domain.DashboardResponse
	GetDashboardHistory(period domain.DateRange) ([]*domain.DashboardSnapshot, error)
	GetLogisticsReport(period domain.DateRange) ([]domain.LogisticsSummaryItem, error)
}

type Service struct {
	gateway      analytics.Gateway
	snapshotRepo repository.DashboardSnapshotRepository
	topLimit     int
}

func NewService(gateway analytics.Gateway, snapshotRepo repository.DashboardSnapshotRepository) Reporter {
	return &Service{
		gateway:      gateway,
		snapshotRepo: snapshotRepo,
		topLimit:     defaultTopLimit,
	}
}

// GetDashboard dispara as seis métricas da página em paralelo e espera todas.
// Não devolve erro: cada seção falha isoladamente dentro do seu envelope.
func (s *Service) GetDashboard(period domain.DateRange) *domain.DashboardResponse {
	response := &domain.DashboardResponse{
		Filters:     &period,
		GeneratedAt: time.Now(),
	}

	var wg sync.WaitGroup
	wg.Add(6)

	go func() {
		defer wg.Done()
		response.KPIs = safePanel("kpis", &domain.DashboardKPIs{}, func() (any, error) {
			return s.gateway.DashboardKPIs(period)
		})
	}()

	go func() {
		defer wg.Done()
		response.MonthlyTrend = safePanel("monthly_trend", []domain.MonthlyTrendPoint{}, func() (any, error) {
			return s.gateway.MonthlyTrend(period)
		})
	}()

	go func() {
		defer wg.Done()
		response.TopDealers = safePanel("top_dealers", []domain.TopDealerItem{}, func() (any, error) {
			return s.gateway.TopDealers(period, s.topLimit)
		})
	}()

	go func() {
		defer wg.Done()
		response.TopReps = safePanel("top_reps", []domain.TopRepItem{}, func() (any, error) {
			return s.gateway.TopReps(period, s.topLimit)
		})
	}()

	go func() {
		defer wg.Done()
		response.Categories = safePanel("categories", []domain.CategoryTotal{}, func() (any, error) {
			return s.gateway.CategoryTotals(period)
		})
	}()

	go func() {
		defer wg.Done()
		response.Engagement = safePanel("engagement", []domain.DealerEngagementItem{}, func() (any, error) {
			return s.gateway.DealerEngagement(period)
		})
	}()

	wg.Wait()

	return response
}

// GetDashboardHistory devolve as fotografias diárias gravadas pelo agendador.
func (s *Service) GetDashboardHistory(period domain.DateRange) ([]*domain.DashboardSnapshot, error) {
	return s.snapshotRepo.GetByDateRange(period.From, period.To)
}

// GetLogisticsReport devolve o resumo mensal de entregas por armazém.
// Aqui o erro remoto sobe: a página de logística é uma seção única.
func (s *Service) GetLogisticsReport(period domain.DateRange) ([]domain.LogisticsSummaryItem, error) {
	return s.gateway.LogisticsSummary(period)
}

// safePanel converte um erro de métrica em {data: fallback, ok: false, error},
// mantendo o contrato de que uma seção quebrada renderiza como "indisponível"
// e nunca como falha da página inteira.
func safePanel(metric string, fallback any, fetch func() (any, error)) domain.Panel {
	data, err := fetch()
	if err != nil {
		logrus.WithError(err).WithField("metric", metric).Warn("Métrica do dashboard indisponível, usando fallback")

		return domain.Panel{
			Data:  fallback,
			Ok:    false,
			Error: err.Error(),
		}
	}

	return domain.Panel{
		Data: data,
		Ok:   true,
	}
}
