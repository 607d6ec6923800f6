// Package tracking cuida dos fluxos operacionais de vendas futuras e
// oportunidades perdidas: normalização dos dados de entrada, persistência e
// disparo de webhook de notificação.
package tracking

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/flooring-analytics-api/infrastructure/repository"
	"github.com/vfg2006/flooring-analytics-api/internal/config"
	"github.com/vfg2006/flooring-analytics-api/internal/domain"
	"github.com/vfg2006/flooring-analytics-api/pkg/utils"
)

type Tracker interface {
	CreateFutureSale(req *domain.CreateFutureSaleRequest) (*domain.FutureSale, error)
	ListFutureSales(status string) ([]*domain.FutureSale, error)
	CloseFutureSale(id string, status string) error
	CreateLossOpportunity(req *domain.CreateLossOpportunityRequest) (*domain.LossOpportunity, error)
	ListLossOpportunities(period domain.DateRange) ([]*domain.LossOpportunity, error)
}

type Service struct {
	futureSaleRepo repository.FutureSaleRepository
	lossRepo       repository.LossOpportunityRepository
	cfg            *config.Config
}

func NewService(
	futureSaleRepo repository.FutureSaleRepository,
	lossRepo repository.LossOpportunityRepository,
	cfg *config.Config,
) Tracker {
	return &Service{
		futureSaleRepo: futureSaleRepo,
		lossRepo:       lossRepo,
		cfg:            cfg,
	}
}

func (s *Service) CreateFutureSale(req *domain.CreateFutureSaleRequest) (*domain.FutureSale, error) {
	if req == nil || req.DealerID == 0 {
		return nil, fmt.Errorf("dealer é obrigatório para registrar venda futura")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar identificador da venda futura")
	}

	sale := &domain.FutureSale{
		ID:                id,
		DealerID:          req.DealerID,
		RepID:             req.RepID,
		Description:       req.Description,
		Collection:        req.Collection,
		EstimatedAmount:   utils.CoerceNumber(req.EstimatedAmount, 0),
		ExpectedCloseDate: normalizeDate(req.ExpectedCloseDate, time.Now().AddDate(0, 1, 0)),
		Status:            domain.FutureSaleOpen,
		Notes:             req.Notes,
	}

	if err := s.futureSaleRepo.Insert(sale); err != nil {
		return nil, err
	}

	s.dispatchWebhook("future_sale.created", map[string]string{
		"id":        sale.ID,
		"dealer_id": fmt.Sprintf("%d", sale.DealerID),
		"amount":    fmt.Sprintf("%.2f", sale.EstimatedAmount),
		"close_on":  sale.ExpectedCloseDate,
	})

	return sale, nil
}

func (s *Service) ListFutureSales(status string) ([]*domain.FutureSale, error) {
	return s.futureSaleRepo.ListByStatus(status)
}

func (s *Service) CloseFutureSale(id string, status string) error {
	if status != domain.FutureSaleWon && status != domain.FutureSaleLost && status != domain.FutureSaleClosed {
		return fmt.Errorf("status inválido para fechamento: %s", status)
	}

	sale, err := s.futureSaleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return fmt.Errorf("venda futura não encontrada: %s", id)
	}

	if err := s.futureSaleRepo.UpdateStatus(id, status); err != nil {
		return err
	}

	s.dispatchWebhook("future_sale.closed", map[string]string{
		"id":     id,
		"status": status,
	})

	return nil
}

func (s *Service) CreateLossOpportunity(req *domain.CreateLossOpportunityRequest) (*domain.LossOpportunity, error) {
	if req == nil || req.DealerID == 0 {
		return nil, fmt.Errorf("dealer é obrigatório para registrar oportunidade perdida")
	}

	if req.Reason == "" {
		return nil, fmt.Errorf("motivo é obrigatório para registrar oportunidade perdida")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar identificador da oportunidade perdida")
	}

	loss := &domain.LossOpportunity{
		ID:              id,
		DealerID:        req.DealerID,
		RepID:           req.RepID,
		Reason:          req.Reason,
		Competitor:      req.Competitor,
		Collection:      req.Collection,
		EstimatedAmount: utils.CoerceNumber(req.EstimatedAmount, 0),
		LostAt:          normalizeDate(req.LostAt, time.Now()),
		Notes:           req.Notes,
	}

	if err := s.lossRepo.Insert(loss); err != nil {
		return nil, err
	}

	s.dispatchWebhook("loss_opportunity.created", map[string]string{
		"id":        loss.ID,
		"dealer_id": fmt.Sprintf("%d", loss.DealerID),
		"amount":    fmt.Sprintf("%.2f", loss.EstimatedAmount),
		"reason":    loss.Reason,
	})

	return loss, nil
}

func (s *Service) ListLossOpportunities(period domain.DateRange) ([]*domain.LossOpportunity, error) {
	return s.lossRepo.List(period.From, period.To)
}

// dispatchWebhook faz um único GET com query string, sem retry nem backoff.
// Falha de webhook é logada e engolida: notificação não participa da
// transação de negócio.
func (s *Service) dispatchWebhook(event string, params map[string]string) {
	if !s.cfg.Webhook.Enabled || s.cfg.Webhook.BaseURL == "" {
		return
	}

	params["event"] = event

	url, err := utils.BuildURL(s.cfg.Webhook.BaseURL, params)
	if err != nil {
		logrus.WithError(errors.Wrap(err, "erro ao montar URL do webhook")).Warn("Webhook não disparado")
		return
	}

	go func() {
		if _, err := utils.MakeRequest(url); err != nil {
			logrus.WithError(err).WithField("event", event).Warn("Erro no disparo do webhook")
			return
		}

		logrus.WithField("event", event).Debug("Webhook disparado com sucesso")
	}()
}

// normalizeDate aceita datas frouxas vindas do front: vazio ou formato
// inválido cai no padrão informado, nunca em erro.
func normalizeDate(value string, fallback time.Time) string {
	if value == "" {
		return fallback.Format(time.DateOnly)
	}

	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return fallback.Format(time.DateOnly)
	}

	return parsed.Format(time.DateOnly)
}
