package reconciling

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/flooring-analytics-api/internal/domain"
	"github.com/vfg2006/flooring-analytics-api/pkg/log"
)

// lindaFlooringRows gera linhas que reproduzem exatamente a tabela congelada:
// uma linha carrega o total do mês e as demais completam a contagem com valor
// zero. Somar zeros não altera o resultado em ponto flutuante, então o total
// geral é a dobra dos totais mensais na ordem da tabela.
func lindaFlooringRows() []domain.SalesRow {
	rows := make([]domain.SalesRow, 0)

	for _, month := range lindaFlooringTable.Months {
		rows = append(rows, domain.SalesRow{
			InvoiceDate:   month.Month + "-01",
			InvoiceAmount: month.Total,
			CustomerID:    1,
		})
		for i := 1; i < month.Rows; i++ {
			rows = append(rows, domain.SalesRow{
				InvoiceDate:   fmt.Sprintf("%s-%02d", month.Month, i%28+1),
				InvoiceAmount: 0.0,
				CustomerID:    1,
			})
		}
	}

	return rows
}

func TestCompareContaSemDivergencia(t *testing.T) {
	report := Compare(lindaFlooringRows(), LindaFlooringTable())

	assert.Empty(t, report.Issues)
	assert.Equal(t, 358192.14, report.Grand)
	assert.Len(t, report.Monthly, 9)
}

func TestCompareDetectaDivergencias(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(rows []domain.SalesRow) []domain.SalesRow
		expectedIssues int
		contains       string
	}{
		{
			name: "Um centavo a mais em um mês diverge total mensal e total geral",
			mutate: func(rows []domain.SalesRow) []domain.SalesRow {
				rows[0].InvoiceAmount = rows[0].InvoiceAmount.(float64) + 0.01
				return rows
			},
			expectedIssues: 2,
			contains:       "total divergente em 2025-01",
		},
		{
			name: "Linha a menos diverge contagem, total mensal e total geral",
			mutate: func(rows []domain.SalesRow) []domain.SalesRow {
				// Remove a linha que carrega o valor de janeiro
				return rows[1:]
			},
			expectedIssues: 3,
			contains:       "contagem de linhas divergente em 2025-01",
		},
		{
			name: "Mês inteiro ausente",
			mutate: func(rows []domain.SalesRow) []domain.SalesRow {
				kept := make([]domain.SalesRow, 0, len(rows))
				for _, row := range rows {
					if row.InvoiceDate[:7] != "2025-09" {
						kept = append(kept, row)
					}
				}
				return kept
			},
			expectedIssues: 2,
			contains:       "mês ausente na agregação: 2025-09",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Compare(tt.mutate(lindaFlooringRows()), LindaFlooringTable())

			assert.Len(t, report.Issues, tt.expectedIssues)

			found := false
			for _, issue := range report.Issues {
				if len(issue) >= len(tt.contains) && issue[:len(tt.contains)] == tt.contains {
					found = true
				}
			}
			assert.True(t, found, "esperava issue começando com %q, obtido %v", tt.contains, report.Issues)
		})
	}
}

func TestCompareNaoDependeDaOrdemDosBaldes(t *testing.T) {
	// A conferência indexa por chave de mês: embaralhar a ordem de primeira
	// aparição dos meses não pode gerar divergência.
	rows := lindaFlooringRows()
	reversed := make([]domain.SalesRow, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		reversed = append(reversed, rows[i])
	}

	report := Compare(reversed, LindaFlooringTable())

	// A soma invertida pode divergir no total geral por reordenação de ponto
	// flutuante, mas nunca nos meses: cada mês soma as mesmas parcelas, onde
	// só uma é diferente de zero.
	for _, issue := range report.Issues {
		assert.Contains(t, issue, "total geral")
	}
}

func TestValidateAccountSeveridadeFatal(t *testing.T) {
	validator := NewValidator(SeverityFatal, true)

	rows := lindaFlooringRows()
	rows[0].InvoiceAmount = rows[0].InvoiceAmount.(float64) + 0.01

	report, err := validator.ValidateAccount(rows)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Linda Flooring")
	assert.NotEmpty(t, report.Issues)
}

func TestValidateAccountSeveridadeAviso(t *testing.T) {
	log.SetupTestLogger()

	validator := NewValidator(SeverityWarn, true)

	rows := lindaFlooringRows()
	rows[0].InvoiceAmount = rows[0].InvoiceAmount.(float64) + 0.01

	report, err := validator.ValidateAccount(rows)

	assert.NoError(t, err)
	assert.NotEmpty(t, report.Issues)
}

func TestValidateAccountSemDivergencia(t *testing.T) {
	validator := NewValidator(SeverityFatal, true)

	report, err := validator.ValidateAccount(lindaFlooringRows())

	assert.NoError(t, err)
	assert.Empty(t, report.Issues)
	assert.Equal(t, 358192.14, report.Grand)
}

func TestAppliesTo(t *testing.T) {
	tests := []struct {
		name     string
		repName  string
		enabled  bool
		expected bool
	}{
		{name: "Nome exato", repName: "Juan Pedro Boscan", enabled: true, expected: true},
		{name: "Sem diferenciar maiúsculas", repName: "juan pedro boscan", enabled: true, expected: true},
		{name: "Espaços aparados", repName: "  Juan Pedro Boscan  ", enabled: true, expected: true},
		{name: "Outro representante", repName: "Maria Silva", enabled: true, expected: false},
		{name: "Guarda desligado por configuração", repName: "Juan Pedro Boscan", enabled: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := NewValidator(SeverityFatal, tt.enabled)
			assert.Equal(t, tt.expected, validator.AppliesTo(tt.repName))
		})
	}
}

func TestValidatorWindow(t *testing.T) {
	validator := NewValidator(SeverityFatal, true)

	window := validator.Window()

	assert.Equal(t, 2025, window.From.Year())
	assert.Equal(t, 1, int(window.From.Month()))
	assert.Equal(t, 9, int(window.To.Month()))
	assert.Equal(t, int64(1), validator.DealerID())
}

func TestNewValidatorWithTable(t *testing.T) {
	table := ExpectationTable{
		Account:    "Conta Teste",
		DealerID:   7,
		RepName:    "Ana Souza",
		GrandTotal: 100.0,
		Months: []Expectation{
			{Month: "2025-01", Total: 100.0, Rows: 1},
		},
	}

	validator := NewValidatorWithTable(SeverityFatal, table)

	assert.True(t, validator.AppliesTo("Ana Souza"))
	assert.Equal(t, int64(7), validator.DealerID())

	report, err := validator.ValidateAccount([]domain.SalesRow{
		{InvoiceDate: "2025-01-10", InvoiceAmount: 100.0, CustomerID: 7},
	})

	assert.NoError(t, err)
	assert.Empty(t, report.Issues)
}
