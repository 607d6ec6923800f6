// Package reconciling compara agregados recém-calculados com valores
// conhecidos-bons gravados, para detectar regressão de dados importados.
package reconciling

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/flooring-analytics-api/internal/domain"
	"github.com/vfg2006/flooring-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/flooring-analytics-api/pkg/log"
)

// Severity define o comportamento do validador diante de divergência,
// resolvido uma única vez na inicialização a partir da configuração.
type Severity int

const (
	// SeverityWarn registra aviso e segue (produção)
	SeverityWarn Severity = iota
	// SeverityFatal devolve erro e interrompe o chamador (dev/teste)
	SeverityFatal
)

// Expectation é o valor esperado de um mês da tabela congelada.
type Expectation struct {
	Month string
	Total float64
	Rows  int
}

// ExpectationTable é o snapshot conhecido-bom de uma conta.
type ExpectationTable struct {
	Account    string
	DealerID   int64
	RepName    string
	GrandTotal float64
	Months     []Expectation
	From       time.Time
	To         time.Time
}

// Report é o resultado de uma validação.
type Report struct {
	Grand   float64               `json:"grand"`
	Monthly []domain.MonthlyTotal `json:"monthly"`
	Issues  []string              `json:"issues"`
}

// Compare confronta as linhas com a tabela de expectativa, campo a campo e
// por igualdade exata (sem tolerância). É genérico sobre a tabela: qualquer
// conta pode ser conferida, embora a fiação padrão use só a Linda Flooring.
func Compare(rows []domain.SalesRow, expected ExpectationTable) Report {
	report := Report{
		Grand:  aggregating.CalculateGrandTotal(rows),
		Issues: []string{},
	}

	if report.Grand != expected.GrandTotal {
		report.Issues = append(report.Issues, fmt.Sprintf(
			"total geral divergente: esperado %s, calculado %s",
			formatAmount(expected.GrandTotal), formatAmount(report.Grand),
		))
	}

	report.Monthly = aggregating.GroupByMonth(rows)

	// Índice por chave de mês: a ordem de saída do agregador é "primeira
	// aparição", então a conferência nunca confia na ordem
	byMonth := make(map[string]domain.MonthlyTotal, len(report.Monthly))
	for _, bucket := range report.Monthly {
		byMonth[bucket.Month] = bucket
	}

	for _, month := range expected.Months {
		bucket, ok := byMonth[month.Month]
		if !ok {
			report.Issues = append(report.Issues, fmt.Sprintf("mês ausente na agregação: %s", month.Month))
			continue
		}

		if bucket.Total != month.Total {
			report.Issues = append(report.Issues, fmt.Sprintf(
				"total divergente em %s: esperado %s, calculado %s",
				month.Month, formatAmount(month.Total), formatAmount(bucket.Total),
			))
		}

		if bucket.Rows != month.Rows {
			report.Issues = append(report.Issues, fmt.Sprintf(
				"contagem de linhas divergente em %s: esperado %d, calculado %d",
				month.Month, month.Rows, bucket.Rows,
			))
		}
	}

	return report
}

// Validator é o guarda de regressão com severidade e tabela fixadas na
// inicialização.
type Validator struct {
	severity Severity
	table    ExpectationTable
	enabled  bool
}

func NewValidator(severity Severity, enabled bool) *Validator {
	return &Validator{
		severity: severity,
		table:    LindaFlooringTable(),
		enabled:  enabled,
	}
}

// NewValidatorWithTable permite conferir outra conta com a mesma mecânica.
func NewValidatorWithTable(severity Severity, table ExpectationTable) *Validator {
	return &Validator{
		severity: severity,
		table:    table,
		enabled:  true,
	}
}

// Enabled indica se o guarda está ligado por configuração.
func (v *Validator) Enabled() bool {
	return v.enabled
}

// AppliesTo decide o gatilho: só roda quando o representante selecionado,
// comparado sem diferenciar maiúsculas e com espaços aparados, é o da tabela.
func (v *Validator) AppliesTo(repName string) bool {
	return v.enabled && strings.EqualFold(strings.TrimSpace(repName), v.table.RepName)
}

// DealerID é o dealer da conta vigiada.
func (v *Validator) DealerID() int64 {
	return v.table.DealerID
}

// Window é o recorte de datas coberto pela tabela.
func (v *Validator) Window() domain.DateRange {
	return domain.DateRange{From: v.table.From, To: v.table.To}
}

// ValidateAccount roda a conferência. Com severidade fatal, qualquer
// divergência vira erro e interrompe o chamador; com severidade de aviso, as
// divergências são logadas e devolvidas no relatório para exibição opcional.
func (v *Validator) ValidateAccount(rows []domain.SalesRow) (Report, error) {
	report := Compare(rows, v.table)
	if len(report.Issues) == 0 {
		return report, nil
	}

	if v.severity == SeverityFatal {
		return report, errors.New("reconciliação divergente para " + v.table.Account + ": " + strings.Join(report.Issues, "; "))
	}

	log.L.WithFields(log.Fields{
		"account":   v.table.Account,
		"dealer_id": v.table.DealerID,
		"issues":    len(report.Issues),
	}).Warn("reconciliação divergente, seguindo em modo produção")

	for _, issue := range report.Issues {
		log.L.Warn("reconciliação: " + issue)
	}

	return report, nil
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
