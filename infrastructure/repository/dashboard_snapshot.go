package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/flooring-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/flooring-analytics-api/internal/domain"
)

const (
	dashboardSnapshotsTable = "dashboard_snapshots ds"
)

type DashboardSnapshotRepository interface {
	SaveOrUpdate(snapshot *domain.DashboardSnapshot) error
	GetByDateRange(startDate, endDate time.Time) ([]*domain.DashboardSnapshot, error)
}

type dashboardSnapshotRepository struct {
	conn *postgres.Connection
}

func NewDashboardSnapshotRepository(conn *postgres.Connection) DashboardSnapshotRepository {
	return &dashboardSnapshotRepository{
		conn: conn,
	}
}

func (r *dashboardSnapshotRepository) SaveOrUpdate(snapshot *domain.DashboardSnapshot) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("dashboard_snapshots").
		Columns(
			"date",
			"total_revenue",
			"growth_rate",
			"invoice_count",
			"average_invoice",
			"active_dealers",
		).
		Values(
			snapshot.Date,
			snapshot.TotalRevenue,
			snapshot.GrowthRate,
			snapshot.InvoiceCount,
			snapshot.AverageInvoice,
			snapshot.ActiveDealers,
		).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				total_revenue = EXCLUDED.total_revenue,
				growth_rate = EXCLUDED.growth_rate,
				invoice_count = EXCLUDED.invoice_count,
				average_invoice = EXCLUDED.average_invoice,
				active_dealers = EXCLUDED.active_dealers,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *dashboardSnapshotRepository) GetByDateRange(startDate, endDate time.Time) ([]*domain.DashboardSnapshot, error) {
	query, args, err := squirrel.
		Select(
			"ds.id",
			"to_char(ds.date, 'YYYY-MM-DD')",
			"ds.total_revenue",
			"ds.growth_rate",
			"ds.invoice_count",
			"ds.average_invoice",
			"ds.active_dealers",
			"ds.created_at",
			"ds.updated_at",
		).
		From(dashboardSnapshotsTable).
		Where(squirrel.GtOrEq{"ds.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ds.date": endDate.Format(time.DateOnly)}).
		OrderBy("ds.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.DashboardSnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *dashboardSnapshotRepository) scanSnapshot(rows *sql.Rows) (*domain.DashboardSnapshot, error) {
	snapshot := &domain.DashboardSnapshot{}

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.Date,
		&snapshot.TotalRevenue,
		&snapshot.GrowthRate,
		&snapshot.InvoiceCount,
		&snapshot.AverageInvoice,
		&snapshot.ActiveDealers,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}
