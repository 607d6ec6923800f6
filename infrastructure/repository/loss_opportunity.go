package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/flooring-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/flooring-analytics-api/internal/domain"
)

const (
	lossOpportunitiesTable = "loss_opportunities lo"
)

type LossOpportunityRepository interface {
	Insert(loss *domain.LossOpportunity) error
	List(startDate, endDate time.Time) ([]*domain.LossOpportunity, error)
	ListByDealer(dealerID int64, startDate, endDate time.Time) ([]*domain.LossOpportunity, error)
}

type lossOpportunityRepository struct {
	conn *postgres.Connection
}

func NewLossOpportunityRepository(conn *postgres.Connection) LossOpportunityRepository {
	return &lossOpportunityRepository{
		conn: conn,
	}
}

func (r *lossOpportunityRepository) Insert(loss *domain.LossOpportunity) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("loss_opportunities").
		Columns(
			"id",
			"dealer_id",
			"rep_id",
			"reason",
			"competitor",
			"collection",
			"estimated_amount",
			"lost_at",
			"notes",
		).
		Values(
			loss.ID,
			loss.DealerID,
			loss.RepID,
			loss.Reason,
			loss.Competitor,
			loss.Collection,
			loss.EstimatedAmount,
			loss.LostAt,
			loss.Notes,
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

func (r *lossOpportunityRepository) List(startDate, endDate time.Time) ([]*domain.LossOpportunity, error) {
	query, args, err := r.selectLosses().
		Where(squirrel.GtOrEq{"lo.lost_at": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"lo.lost_at": endDate.Format(time.DateOnly)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryLosses(query, args...)
}

func (r *lossOpportunityRepository) ListByDealer(dealerID int64, startDate, endDate time.Time) ([]*domain.LossOpportunity, error) {
	query, args, err := r.selectLosses().
		Where(squirrel.Eq{"lo.dealer_id": dealerID}).
		Where(squirrel.GtOrEq{"lo.lost_at": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"lo.lost_at": endDate.Format(time.DateOnly)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryLosses(query, args...)
}

func (r *lossOpportunityRepository) selectLosses() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"lo.id",
			"lo.dealer_id",
			"lo.rep_id",
			"lo.reason",
			"COALESCE(lo.competitor, '')",
			"lo.collection",
			"lo.estimated_amount",
			"to_char(lo.lost_at, 'YYYY-MM-DD')",
			"COALESCE(lo.notes, '')",
			"lo.created_at",
		).
		From(lossOpportunitiesTable).
		OrderBy("lo.lost_at DESC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *lossOpportunityRepository) queryLosses(query string, args ...interface{}) ([]*domain.LossOpportunity, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	losses := make([]*domain.LossOpportunity, 0)
	for rows.Next() {
		loss, err := r.scanLoss(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear oportunidade perdida: %w", err)
		}
		losses = append(losses, loss)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return losses, nil
}

func (r *lossOpportunityRepository) scanLoss(rows *sql.Rows) (*domain.LossOpportunity, error) {
	loss := &domain.LossOpportunity{}
	var repID sql.NullInt64
	var collection sql.NullString

	err := rows.Scan(
		&loss.ID,
		&loss.DealerID,
		&repID,
		&loss.Reason,
		&loss.Competitor,
		&collection,
		&loss.EstimatedAmount,
		&loss.LostAt,
		&loss.Notes,
		&loss.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if repID.Valid {
		loss.RepID = &repID.Int64
	}
	if collection.Valid {
		loss.Collection = &collection.String
	}

	return loss, nil
}
