package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/flooring-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/flooring-analytics-api/internal/config"
	"github.com/vfg2006/flooring-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockFutureSaleRepository, *mocks.MockLossOpportunityRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	futureSaleRepo := mocks.NewMockFutureSaleRepository(ctrl)
	lossRepo := mocks.NewMockLossOpportunityRepository(ctrl)

	service := &Service{
		futureSaleRepo: futureSaleRepo,
		lossRepo:       lossRepo,
		// Webhook desligado: os testes não disparam HTTP
		cfg: &config.Config{},
	}

	return service, futureSaleRepo, lossRepo
}

func TestCreateFutureSale(t *testing.T) {
	service, futureSaleRepo, _ := newTestService(t)

	futureSaleRepo.EXPECT().Insert(gomock.Any()).Return(nil)

	sale, err := service.CreateFutureSale(&domain.CreateFutureSaleRequest{
		DealerID:          3,
		Description:       "Reforma do showroom",
		EstimatedAmount:   "1500.50",
		ExpectedCloseDate: "2025-10-01",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, sale.ID)
	assert.Equal(t, int64(3), sale.DealerID)
	assert.Equal(t, 1500.50, sale.EstimatedAmount)
	assert.Equal(t, "2025-10-01", sale.ExpectedCloseDate)
	assert.Equal(t, domain.FutureSaleOpen, sale.Status)
}

func TestCreateFutureSaleNormalizaEntradasFrouxas(t *testing.T) {
	service, futureSaleRepo, _ := newTestService(t)

	futureSaleRepo.EXPECT().Insert(gomock.Any()).Return(nil)

	sale, err := service.CreateFutureSale(&domain.CreateFutureSaleRequest{
		DealerID:          3,
		EstimatedAmount:   "não sei",
		ExpectedCloseDate: "mes que vem",
	})

	assert.NoError(t, err)
	// Valor não numérico vira zero e data inválida cai no padrão de um mês
	assert.Equal(t, 0.0, sale.EstimatedAmount)

	expected := time.Now().AddDate(0, 1, 0).Format(time.DateOnly)
	assert.Equal(t, expected, sale.ExpectedCloseDate)
}

func TestCreateFutureSaleSemDealer(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.CreateFutureSale(&domain.CreateFutureSaleRequest{})

	assert.Error(t, err)
}

func TestCloseFutureSale(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		hasError bool
	}{
		{name: "Fechamento como ganha", status: domain.FutureSaleWon, hasError: false},
		{name: "Fechamento como perdida", status: domain.FutureSaleLost, hasError: false},
		{name: "Fechamento como encerrada", status: domain.FutureSaleClosed, hasError: false},
		{name: "Status inválido é rejeitado", status: "pendente", hasError: true},
		{name: "Reabrir não é permitido", status: domain.FutureSaleOpen, hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, futureSaleRepo, _ := newTestService(t)

			if !tt.hasError {
				futureSaleRepo.EXPECT().
					GetByID("fs_123").
					Return(&domain.FutureSale{ID: "fs_123", Status: domain.FutureSaleOpen}, nil)
				futureSaleRepo.EXPECT().UpdateStatus("fs_123", tt.status).Return(nil)
			}

			err := service.CloseFutureSale("fs_123", tt.status)

			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCloseFutureSaleInexistente(t *testing.T) {
	service, futureSaleRepo, _ := newTestService(t)

	futureSaleRepo.EXPECT().GetByID("fs_999").Return(nil, nil)

	err := service.CloseFutureSale("fs_999", domain.FutureSaleWon)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "não encontrada")
}

func TestCreateLossOpportunity(t *testing.T) {
	service, _, lossRepo := newTestService(t)

	lossRepo.EXPECT().Insert(gomock.Any()).Return(nil)

	loss, err := service.CreateLossOpportunity(&domain.CreateLossOpportunityRequest{
		DealerID:        3,
		Reason:          "preço do concorrente",
		Competitor:      "FloorMax",
		EstimatedAmount: 2000.0,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, loss.ID)
	assert.Equal(t, "preço do concorrente", loss.Reason)
	assert.Equal(t, 2000.0, loss.EstimatedAmount)
	// Data ausente cai no dia atual
	assert.Equal(t, time.Now().Format(time.DateOnly), loss.LostAt)
}

func TestCreateLossOpportunitySemMotivo(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.CreateLossOpportunity(&domain.CreateLossOpportunityRequest{
		DealerID: 3,
	})

	assert.Error(t, err)
}

func TestListLossOpportunities(t *testing.T) {
	service, _, lossRepo := newTestService(t)

	period := domain.DateRange{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC),
	}

	expected := []*domain.LossOpportunity{{ID: "lo_1", DealerID: 3}}

	lossRepo.EXPECT().List(period.From, period.To).Return(expected, nil)

	result, err := service.ListLossOpportunities(period)

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestNormalizeDate(t *testing.T) {
	fallback := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "Data válida passa inalterada", value: "2025-09-15", expected: "2025-09-15"},
		{name: "Vazio cai no padrão", value: "", expected: "2025-08-01"},
		{name: "Formato inválido cai no padrão", value: "15/09/2025", expected: "2025-08-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeDate(tt.value, fallback))
		})
	}
}
