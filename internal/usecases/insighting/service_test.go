package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/flooring-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/flooring-analytics-api/internal/domain"
	"github.com/vfg2006/flooring-analytics-api/internal/usecases/reconciling"
	"go.uber.org/mock/gomock"
)

func testPeriod() domain.DateRange {
	return domain.DateRange{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetRepPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRowRepository(ctrl)
	service := &Service{salesRepo: mockRepo}

	period := testPeriod()

	rows := []domain.SalesRow{
		{InvoiceDate: "2025-01-10", InvoiceAmount: 100.0, CustomerID: 1},
		{InvoiceDate: "2025-02-05", InvoiceAmount: 300.0, CustomerID: 2},
		{InvoiceDate: "2025-01-20", InvoiceAmount: 100.0, CustomerID: 1},
	}

	mockRepo.EXPECT().GetRepName(int64(9)).Return("Maria Silva", nil)
	mockRepo.EXPECT().GetByRep(int64(9), period.From, period.To).Return(rows, nil)
	mockRepo.EXPECT().GetDealerName(int64(2)).Return("Top Floors", nil)
	mockRepo.EXPECT().GetDealerName(int64(1)).Return("", nil)

	response, err := service.GetRepPerformance(9, period)

	assert.NoError(t, err)
	assert.Equal(t, int64(9), response.Rep.RepID)
	assert.Equal(t, "Maria Silva", response.Rep.RepName)
	assert.Equal(t, 500.0, response.Rep.Revenue)
	assert.Equal(t, 3, response.Rep.Invoices)
	assert.InDelta(t, 166.67, response.Rep.AverageInvoice, 0.01)
	assert.Equal(t, 100.0, response.Rep.RevenueShare)

	// Rollup mensal em ordem cronológica
	assert.Equal(t, []domain.MonthlyTotal{
		{Month: "2025-01", Total: 200.0, Rows: 2},
		{Month: "2025-02", Total: 300.0, Rows: 1},
	}, response.Monthly)

	// Dealers ranqueados por receita, com placeholder para cadastro sem nome
	assert.Len(t, response.Dealers, 2)
	assert.Equal(t, "Top Floors", response.Dealers[0].DealerName)
	assert.Equal(t, 60.0, response.Dealers[0].RevenueShare)
	assert.Equal(t, "Dealer 1", response.Dealers[1].DealerName)
	assert.Equal(t, 40.0, response.Dealers[1].RevenueShare)

	assert.Empty(t, response.Warnings)
}

func TestGetRepPerformanceNomeVazioViraPlaceholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRowRepository(ctrl)
	service := &Service{salesRepo: mockRepo}

	period := testPeriod()

	mockRepo.EXPECT().GetRepName(int64(42)).Return("", nil)
	mockRepo.EXPECT().GetByRep(int64(42), period.From, period.To).Return([]domain.SalesRow{}, nil)

	response, err := service.GetRepPerformance(42, period)

	assert.NoError(t, err)
	assert.Equal(t, "Rep 42", response.Rep.RepName)
	assert.Equal(t, 0.0, response.Rep.Revenue)
	assert.Equal(t, 0.0, response.Rep.AverageInvoice)
	// Período sem receita não pode reportar fatia de 100%
	assert.Equal(t, 0.0, response.Rep.RevenueShare)
	assert.Empty(t, response.Dealers)
}

func TestGetDealerPerformancePeriodoSemReceita(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRowRepository(ctrl)
	service := &Service{salesRepo: mockRepo}

	period := testPeriod()

	mockRepo.EXPECT().GetDealerName(int64(3)).Return("Linda Flooring", nil)
	mockRepo.EXPECT().GetByDealer(int64(3), period.From, period.To).Return([]domain.SalesRow{}, nil)

	response, err := service.GetDealerPerformance(3, period)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, response.Dealer.Revenue)
	assert.Equal(t, 0.0, response.Dealer.RevenueShare)
	assert.Empty(t, response.Monthly)
}

func TestGetRepPerformancePeriodoInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRowRepository(ctrl)
	service := &Service{salesRepo: mockRepo}

	_, err := service.GetRepPerformance(9, domain.DateRange{
		From: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.Error(t, err)
}

func TestGetRepPerformanceErroDoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRowRepository(ctrl)
	service := &Service{salesRepo: mockRepo}

	period := testPeriod()

	mockRepo.EXPECT().GetRepName(int64(9)).Return("", assert.AnError)

	_, err := service.GetRepPerformance(9, period)

	assert.Error(t, err)
}

func TestGetRepPerformanceReconciliacaoFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRowRepository(ctrl)

	table := reconciling.ExpectationTable{
		Account:    "Conta Vigiada",
		DealerID:   5,
		RepName:    "Juan Pedro Boscan",
		GrandTotal: 100.0,
		Months: []reconciling.Expectation{
			{Month: "2025-01", Total: 100.0, Rows: 1},
		},
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	service := &Service{
		salesRepo: mockRepo,
		validator: reconciling.NewValidatorWithTable(reconciling.SeverityFatal, table),
	}

	period := testPeriod()

	mockRepo.EXPECT().GetRepName(int64(9)).Return("Juan Pedro Boscan", nil)
	mockRepo.EXPECT().GetByRep(int64(9), period.From, period.To).Return([]domain.SalesRow{}, nil)

	// Dados da conta vigiada divergentes do snapshot congelado
	mockRepo.EXPECT().
		GetByRepAndDealer(int64(9), int64(5), table.From, table.To).
		Return([]domain.SalesRow{
			{InvoiceDate: "2025-01-10", InvoiceAmount: 99.99, CustomerID: 5},
		}, nil)

	_, err := service.GetRepPerformance(9, period)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Conta Vigiada")
}

func TestGetRepPerformanceReconciliacaoAviso(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRowRepository(ctrl)

	table := reconciling.ExpectationTable{
		Account:    "Conta Vigiada",
		DealerID:   5,
		RepName:    "Juan Pedro Boscan",
		GrandTotal: 100.0,
		Months: []reconciling.Expectation{
			{Month: "2025-01", Total: 100.0, Rows: 1},
		},
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	service := &Service{
		salesRepo: mockRepo,
		validator: reconciling.NewValidatorWithTable(reconciling.SeverityWarn, table),
	}

	period := testPeriod()

	mockRepo.EXPECT().GetRepName(int64(9)).Return("Juan Pedro Boscan", nil)
	mockRepo.EXPECT().GetByRep(int64(9), period.From, period.To).Return([]domain.SalesRow{}, nil)
	mockRepo.EXPECT().
		GetByRepAndDealer(int64(9), int64(5), table.From, table.To).
		Return([]domain.SalesRow{
			{InvoiceDate: "2025-01-10", InvoiceAmount: 99.99, CustomerID: 5},
		}, nil)

	response, err := service.GetRepPerformance(9, period)

	assert.NoError(t, err)
	assert.NotEmpty(t, response.Warnings)
}

func TestGetRepPerformanceReconciliacaoSemDivergencia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRowRepository(ctrl)

	table := reconciling.ExpectationTable{
		Account:    "Conta Vigiada",
		DealerID:   5,
		RepName:    "Juan Pedro Boscan",
		GrandTotal: 100.0,
		Months: []reconciling.Expectation{
			{Month: "2025-01", Total: 100.0, Rows: 1},
		},
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	service := &Service{
		salesRepo: mockRepo,
		validator: reconciling.NewValidatorWithTable(reconciling.SeverityFatal, table),
	}

	period := testPeriod()

	mockRepo.EXPECT().GetRepName(int64(9)).Return("Juan Pedro Boscan", nil)
	mockRepo.EXPECT().GetByRep(int64(9), period.From, period.To).Return([]domain.SalesRow{}, nil)
	mockRepo.EXPECT().
		GetByRepAndDealer(int64(9), int64(5), table.From, table.To).
		Return([]domain.SalesRow{
			{InvoiceDate: "2025-01-10", InvoiceAmount: 100.0, CustomerID: 5},
		}, nil)

	response, err := service.GetRepPerformance(9, period)

	assert.NoError(t, err)
	assert.Empty(t, response.Warnings)
}

func TestGetDealerPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRowRepository(ctrl)
	service := &Service{salesRepo: mockRepo}

	period := testPeriod()

	rows := []domain.SalesRow{
		{InvoiceDate: "2025-01-10", InvoiceAmount: 150.0, CustomerID: 3},
		{InvoiceDate: "2025-03-02", InvoiceAmount: 50.0, CustomerID: 3},
	}

	mockRepo.EXPECT().GetDealerName(int64(3)).Return("Linda Flooring", nil)
	mockRepo.EXPECT().GetByDealer(int64(3), period.From, period.To).Return(rows, nil)

	response, err := service.GetDealerPerformance(3, period)

	assert.NoError(t, err)
	assert.Equal(t, "Linda Flooring", response.Dealer.DealerName)
	assert.Equal(t, 200.0, response.Dealer.Revenue)
	assert.Equal(t, 2, response.Dealer.Invoices)
	assert.Equal(t, 100.0, response.Dealer.AverageInvoice)
	assert.Equal(t, []domain.MonthlyTotal{
		{Month: "2025-01", Total: 150.0, Rows: 1},
		{Month: "2025-03", Total: 50.0, Rows: 1},
	}, response.Monthly)
}
