// Package analytics é o gateway de agregação remota: cada métrica
// organizacional é calculada por uma função armazenada no banco gerenciado e
// o papel daqui é invocá-la e coagir o resultado frouxo para tipos estritos.
package analytics

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/flooring-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/flooring-analytics-api/internal/domain"
)

// Nomes das funções armazenadas no banco
const (
	procDashboardKPIs    = "get_dashboard_kpis"
	procMonthlyTrend     = "get_monthly_trend"
	procTopDealers       = "get_top_dealers"
	procTopReps          = "get_top_reps"
	procCategoryTotals   = "get_category_totals"
	procDealerEngagement = "get_dealer_engagement"
	procLogisticsSummary = "get_logistics_summary"
)

type Gateway interface {
	DashboardKPIs(period domain.DateRange) (*domain.DashboardKPIs, error)
	MonthlyTrend(period domain.DateRange) ([]domain.MonthlyTrendPoint, error)
	TopDealers(period domain.DateRange, limit int) ([]domain.TopDealerItem, error)
	TopReps(period domain.DateRange, limit int) ([]domain.TopRepItem, error)
	CategoryTotals(period domain.DateRange) ([]domain.CategoryTotal, error)
	DealerEngagement(period domain.DateRange) ([]domain.DealerEngagementItem, error)
	LogisticsSummary(period domain.DateRange) ([]domain.LogisticsSummaryItem, error)
}

type gateway struct {
	conn *postgres.Connection
}

func NewGateway(conn *postgres.Connection) Gateway {
	return &gateway{
		conn: conn,
	}
}

func (g *gateway) DashboardKPIs(period domain.DateRange) (*domain.DashboardKPIs, error) {
	records, err := g.callProcedure(procDashboardKPIs, period.From.Format(time.DateOnly), period.To.Format(time.DateOnly))
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return mapDashboardKPIs(looseRecord{}), nil
	}

	return mapDashboardKPIs(records[0]), nil
}

func (g *gateway) MonthlyTrend(period domain.DateRange) ([]domain.MonthlyTrendPoint, error) {
	records, err := g.callProcedure(procMonthlyTrend, period.From.Format(time.DateOnly), period.To.Format(time.DateOnly))
	if err != nil {
		return nil, err
	}

	points := make([]domain.MonthlyTrendPoint, 0, len(records))
	for _, record := range records {
		points = append(points, mapMonthlyTrendPoint(record))
	}

	return points, nil
}

func (g *gateway) TopDealers(period domain.DateRange, limit int) ([]domain.TopDealerItem, error) {
	records, err := g.callProcedure(procTopDealers, period.From.Format(time.DateOnly), period.To.Format(time.DateOnly), limit)
	if err != nil {
		return nil, err
	}

	items := make([]domain.TopDealerItem, 0, len(records))
	for _, record := range records {
		items = append(items, mapTopDealerItem(record))
	}

	return items, nil
}

func (g *gateway) TopReps(period domain.DateRange, limit int) ([]domain.TopRepItem, error) {
	records, err := g.callProcedure(procTopReps, period.From.Format(time.DateOnly), period.To.Format(time.DateOnly), limit)
	if err != nil {
		return nil, err
	}

	items := make([]domain.TopRepItem, 0, len(records))
	for _, record := range records {
		items = append(items, mapTopRepItem(record))
	}

	return items, nil
}

func (g *gateway) CategoryTotals(period domain.DateRange) ([]domain.CategoryTotal, error) {
	records, err := g.callProcedure(procCategoryTotals, period.From.Format(time.DateOnly), period.To.Format(time.DateOnly))
	if err != nil {
		return nil, err
	}

	totals := make([]domain.CategoryTotal, 0, len(records))
	for _, record := range records {
		totals = append(totals, mapCategoryTotal(record))
	}

	return totals, nil
}

func (g *gateway) DealerEngagement(period domain.DateRange) ([]domain.DealerEngagementItem, error) {
	records, err := g.callProcedure(procDealerEngagement, period.From.Format(time.DateOnly), period.To.Format(time.DateOnly))
	if err != nil {
		return nil, err
	}

	items := make([]domain.DealerEngagementItem, 0, len(records))
	for _, record := range records {
		items = append(items, mapDealerEngagementItem(record))
	}

	return items, nil
}

func (g *gateway) LogisticsSummary(period domain.DateRange) ([]domain.LogisticsSummaryItem, error) {
	records, err := g.callProcedure(procLogisticsSummary, period.From.Format(time.DateOnly), period.To.Format(time.DateOnly))
	if err != nil {
		return nil, err
	}

	items := make([]domain.LogisticsSummaryItem, 0, len(records))
	for _, record := range records {
		items = append(items, mapLogisticsSummaryItem(record))
	}

	return items, nil
}

// callProcedure invoca uma função armazenada com parâmetros posicionais.
// Erros de transporte/banco sobem sem decoração: quem decide o fallback é a
// camada de cima (envelope seguro), nunca o gateway.
func (g *gateway) callProcedure(name string, args ...interface{}) ([]looseRecord, error) {
	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("SELECT * FROM %s(%s)", name, strings.Join(placeholders, ", "))

	rows, err := g.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLooseRecords(rows)
}

// looseRecord é uma linha de resultado remoto sem tipo: numéricos podem
// chegar como string ou []byte, booleanos como "t"/"1", nomes como NULL.
type looseRecord map[string]any

func scanLooseRecords(rows *sql.Rows) ([]looseRecord, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	records := make([]looseRecord, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		record := make(looseRecord, len(columns))
		for i, column := range columns {
			record[column] = values[i]
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
