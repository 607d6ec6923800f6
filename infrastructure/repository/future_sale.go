package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/flooring-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/flooring-analytics-api/internal/domain"
)

const (
	futureSalesTable = "future_sales fs"
)

type FutureSaleRepository interface {
	Insert(sale *domain.FutureSale) error
	GetByID(id string) (*domain.FutureSale, error)
	ListByStatus(status string) ([]*domain.FutureSale, error)
	UpdateStatus(id string, status string) error
}

type futureSaleRepository struct {
	conn *postgres.Connection
}

func NewFutureSaleRepository(conn *postgres.Connection) FutureSaleRepository {
	return &futureSaleRepository{
		conn: conn,
	}
}

func (r *futureSaleRepository) Insert(sale *domain.FutureSale) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("future_sales").
		Columns(
			"id",
			"dealer_id",
			"rep_id",
			"description",
			"collection",
			"estimated_amount",
			"expected_close_date",
			"status",
			"notes",
		).
		Values(
			sale.ID,
			sale.DealerID,
			sale.RepID,
			sale.Description,
			sale.Collection,
			sale.EstimatedAmount,
			sale.ExpectedCloseDate,
			sale.Status,
			sale.Notes,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *futureSaleRepository) GetByID(id string) (*domain.FutureSale, error) {
	query, args, err := r.selectFutureSales().
		Where(squirrel.Eq{"fs.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	return r.scanFutureSale(rows)
}

func (r *futureSaleRepository) ListByStatus(status string) ([]*domain.FutureSale, error) {
	builder := r.selectFutureSales()
	if status != "" {
		builder = builder.Where(squirrel.Eq{"fs.status": status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.FutureSale, 0)
	for rows.Next() {
		sale, err := r.scanFutureSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda futura: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *futureSaleRepository) UpdateStatus(id string, status string) error {
	query, args, err := squirrel.StatementBuilder.
		Update("future_sales").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("venda futura não encontrada: %s", id)
	}

	return nil
}

func (r *futureSaleRepository) selectFutureSales() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"fs.id",
			"fs.dealer_id",
			"fs.rep_id",
			"fs.description",
			"fs.collection",
			"fs.estimated_amount",
			"to_char(fs.expected_close_date, 'YYYY-MM-DD')",
			"fs.status",
			"COALESCE(fs.notes, '')",
			"fs.created_at",
			"fs.updated_at",
		).
		From(futureSalesTable).
		OrderBy("fs.expected_close_date ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *futureSaleRepository) scanFutureSale(rows *sql.Rows) (*domain.FutureSale, error) {
	sale := &domain.FutureSale{}
	var repID sql.NullInt64
	var collection sql.NullString

	err := rows.Scan(
		&sale.ID,
		&sale.DealerID,
		&repID,
		&sale.Description,
		&collection,
		&sale.EstimatedAmount,
		&sale.ExpectedCloseDate,
		&sale.Status,
		&sale.Notes,
		&sale.CreatedAt,
		&sale.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if repID.Valid {
		sale.RepID = &repID.Int64
	}
	if collection.Valid {
		sale.Collection = &collection.String
	}

	return sale, nil
}
