// Package insighting monta as visões de drill-down de vendas por
// representante e por dealer a partir das linhas de fatura.
package insighting

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/flooring-analytics-api/infrastructure/repository"
	"github.com/vfg2006/flooring-analytics-api/internal/domain"
	"github.com/vfg2006/flooring-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/flooring-analytics-api/internal/usecases/reconciling"
	"github.com/vfg2006/flooring-analytics-api/pkg/utils"
)

type Insighter interface {
	GetRepPerformance(repID int64, period domain.DateRange) (*domain.RepPerformanceResponse, error)
	GetDealerPerformance(dealerID int64, period domain.DateRange) (*domain.DealerPerformanceResponse, error)
}

type Service struct {
	salesRepo repository.SalesRowRepository
	validator *reconciling.Validator
}

func NewService(salesRepo repository.SalesRowRepository, validator *reconciling.Validator) Insighter {
	return &Service{
		salesRepo: salesRepo,
		validator: validator,
	}
}

// GetRepPerformance monta a página de desempenho de um representante:
// rollup mensal, ranking de dealers com fatia de receita e, quando o
// representante é o da conta vigiada, a conferência de reconciliação.
func (s *Service) GetRepPerformance(repID int64, period domain.DateRange) (*domain.RepPerformanceResponse, error) {
	if period.From.After(period.To) {
		return nil, fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	repName, err := s.salesRepo.GetRepName(repID)
	if err != nil {
		logrus.WithError(err).WithField("rep_id", repID).Error("Erro ao buscar nome do representante")
		return nil, err
	}

	rows, err := s.salesRepo.GetByRep(repID, period.From, period.To)
	if err != nil {
		logrus.WithError(err).WithField("rep_id", repID).Error("Erro ao buscar linhas de venda do representante")
		return nil, err
	}

	revenue := aggregating.CalculateGrandTotal(rows)

	response := &domain.RepPerformanceResponse{
		Rep: domain.RepAggregate{
			RepID:          repID,
			RepName:        utils.FallbackLabel(repName, "Rep", repID),
			Revenue:        revenue,
			Invoices:       len(rows),
			AverageInvoice: aggregating.AverageInvoice(revenue, len(rows)),
			// Fatia sobre si mesmo: 100 com receita, 0 em período vazio
			RevenueShare: aggregating.RevenueShare(revenue, revenue),
		},
		Monthly: aggregating.GroupByMonthSorted(rows),
		Dealers: s.resolveDealerNames(aggregating.AggregateByDealer(rows, revenue)),
		Filters: &period,
	}

	// Guarda de regressão da Linda Flooring: roda só para o representante
	// dessa carteira, sobre os dados mensais recortados pelo dealer
	if s.validator != nil && s.validator.AppliesTo(response.Rep.RepName) {
		warnings, err := s.runReconciliation(repID)
		if err != nil {
			return nil, err
		}
		response.Warnings = warnings
	}

	return response, nil
}

func (s *Service) GetDealerPerformance(dealerID int64, period domain.DateRange) (*domain.DealerPerformanceResponse, error) {
	if period.From.After(period.To) {
		return nil, fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	dealerName, err := s.salesRepo.GetDealerName(dealerID)
	if err != nil {
		logrus.WithError(err).WithField("dealer_id", dealerID).Error("Erro ao buscar nome do dealer")
		return nil, err
	}

	rows, err := s.salesRepo.GetByDealer(dealerID, period.From, period.To)
	if err != nil {
		logrus.WithError(err).WithField("dealer_id", dealerID).Error("Erro ao buscar linhas de venda do dealer")
		return nil, err
	}

	revenue := aggregating.CalculateGrandTotal(rows)

	return &domain.DealerPerformanceResponse{
		Dealer: domain.DealerAggregate{
			DealerID:       dealerID,
			DealerName:     utils.FallbackLabel(dealerName, "Dealer", dealerID),
			Revenue:        revenue,
			Invoices:       len(rows),
			AverageInvoice: aggregating.AverageInvoice(revenue, len(rows)),
			RevenueShare:   aggregating.RevenueShare(revenue, revenue),
		},
		Monthly: aggregating.GroupByMonthSorted(rows),
		Filters: &period,
	}, nil
}

// runReconciliation busca as linhas da conta vigiada no recorte da tabela
// congelada e confere os agregados. Em modo fatal o erro interrompe a página;
// em modo aviso as divergências voltam como warnings.
func (s *Service) runReconciliation(repID int64) ([]string, error) {
	window := s.validator.Window()

	rows, err := s.salesRepo.GetByRepAndDealer(repID, s.validator.DealerID(), window.From, window.To)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"rep_id":    repID,
			"dealer_id": s.validator.DealerID(),
		}).Error("Erro ao buscar linhas para reconciliação")
		return nil, err
	}

	report, err := s.validator.ValidateAccount(rows)
	if err != nil {
		return nil, err
	}

	return report.Issues, nil
}

// resolveDealerNames completa os agregados com o nome de exibição de cada
// dealer, com placeholder sintético quando o cadastro está sem nome.
func (s *Service) resolveDealerNames(aggregates []domain.DealerAggregate) []domain.DealerAggregate {
	for i := range aggregates {
		name, err := s.salesRepo.GetDealerName(aggregates[i].DealerID)
		if err != nil {
			logrus.WithError(err).WithField("dealer_id", aggregates[i].DealerID).Warn("Erro ao buscar nome do dealer, usando placeholder")
			name = ""
		}
		aggregates[i].DealerName = utils.FallbackLabel(name, "Dealer", aggregates[i].DealerID)
	}

	return aggregates
}
