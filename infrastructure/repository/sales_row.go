// Package repository contém as implementações dos repositórios para acesso aos dados
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
	salesRowsTable = "sales_rows sr"
)

type SalesRowRepository interface {
	GetByRep(repID int64, startDate, endDate time.Time) ([]domain.SalesRow, error)
	GetByRepAndDealer(repID, dealerID int64, startDate, endDate time.Time) ([]domain.SalesRow, error)
	GetByDealer(dealerID int64, startDate, endDate time.Time) ([]domain.SalesRow, error)
	GetRepName(repID int64) (string, error)
	GetDealerName(dealerID int64) (string, error)
}

type salesRowRepository struct {
	conn *postgres.Connection
}

func NewSalesRowRepository(conn *postgres.Connection) SalesRowRepository {
	return &salesRowRepository{
		conn: conn,
	}
}

// selectRows monta o SELECT base das linhas de fatura.
// A data sai como texto (YYYY-MM-DD) porque o truncamento de mês é feito por
// string na agregação, e o valor sai sem conversão para preservar a coerção
// frouxa na camada de cima.
func (r *salesRowRepository) selectRows() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"to_char(sr.invoice_date, 'YYYY-MM-DD') AS invoice_date",
			"sr.invoice_amount",
			"sr.customer_id",
			"sr.rep_id",
			"COALESCE(sr.invoice_number, '')",
			"sr.collection",
		).
		From(salesRowsTable).
		OrderBy("sr.invoice_date ASC", "sr.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *salesRowRepository) GetByRep(repID int64, startDate, endDate time.Time) ([]domain.SalesRow, error) {
	query, args, err := r.selectRows().
		Where(squirrel.Eq{"sr.rep_id": repID}).
		Where(squirrel.GtOrEq{"sr.invoice_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"sr.invoice_date": endDate.Format(time.DateOnly)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRows(query, args...)
}

func (r *salesRowRepository) GetByRepAndDealer(repID, dealerID int64, startDate, endDate time.Time) ([]domain.SalesRow, error) {
	query, args, err := r.selectRows().
		Where(squirrel.Eq{"sr.rep_id": repID, "sr.customer_id": dealerID}).
		Where(squirrel.GtOrEq{"sr.invoice_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"sr.invoice_date": endDate.Format(time.DateOnly)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRows(query, args...)
}

func (r *salesRowRepository) GetByDealer(dealerID int64, startDate, endDate time.Time) ([]domain.SalesRow, error) {
	query, args, err := r.selectRows().
		Where(squirrel.Eq{"sr.customer_id": dealerID}).
		Where(squirrel.GtOrEq{"sr.invoice_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"sr.invoice_date": endDate.Format(time.DateOnly)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRows(query, args...)
}

func (r *salesRowRepository) GetRepName(repID int64) (string, error) {
	query, args, err := squirrel.
		Select("COALESCE(r.name, '')").
		From("reps r").
		Where(squirrel.Eq{"r.id": repID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var name string
	if err := r.conn.QueryRow(query, args...).Scan(&name); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("erro ao buscar nome do representante: %w", err)
	}

	return name, nil
}

func (r *salesRowRepository) GetDealerName(dealerID int64) (string, error) {
	query, args, err := squirrel.
		Select("COALESCE(d.name, '')").
		From("dealers d").
		Where(squirrel.Eq{"d.id": dealerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var name string
	if err := r.conn.QueryRow(query, args...).Scan(&name); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("erro ao buscar nome do dealer: %w", err)
	}

	return name, nil
}

func (r *salesRowRepository) queryRows(query string, args ...interface{}) ([]domain.SalesRow, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]domain.SalesRow, 0)
	for rows.Next() {
		row, err := r.scanSalesRow(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de venda: %w", err)
		}
		result = append(result, *row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

func (r *salesRowRepository) scanSalesRow(rows *sql.Rows) (*domain.SalesRow, error) {
	row := &domain.SalesRow{}
	var amount any
	var repID sql.NullInt64
	var collection sql.NullString

	err := rows.Scan(
		&row.InvoiceDate,
		&amount,
		&row.CustomerID,
		&repID,
		&row.InvoiceNumber,
		&collection,
	)
	if err != nil {
		return nil, err
	}

	// O valor fica frouxo de propósito; a coerção para número acontece na
	// agregação, que trata valor inválido como 0 sem descartar a linha.
	row.InvoiceAmount = amount

	if repID.Valid {
		row.RepID = &repID.Int64
	}
	if collection.Valid {
		row.Collection = &collection.String
	}

	return row, nil
}
