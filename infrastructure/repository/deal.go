package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

const dealsTable = "deals"

type DealRepository interface {
	ListDeals(ctx context.Context, filter domain.DealFilter) ([]*domain.Deal, error)
	CountDealsByRepAndStatus(ctx context.Context, statuses []domain.DealStatus) ([]*domain.RepDealCount, error)
	SaveAll(ctx context.Context, deals []*domain.Deal) error
	DeleteAll(ctx context.Context) error
}

type dealRepository struct {
	db postgres.Queryer
}

func NewDealRepository(db postgres.Queryer) DealRepository {
	return &dealRepository{
		db: db,
	}
}

func statusesToStrings(statuses []domain.DealStatus) []string {
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, string(status))
	}
	return values
}

func buildListDealsQuery(filter domain.DealFilter) squirrel.SelectBuilder {
	queryBuilder := squirrel.
		Select(
			"d.id",
			"d.account_id",
			"d.rep_id",
			"d.name",
			"d.amount",
			"d.status",
			"d.created_date",
			"d.close_date",
		).
		From(dealsTable + " d").
		OrderBy("d.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(filter.Statuses) > 0 {
		queryBuilder = queryBuilder.Where("d.status = ANY(?)", pq.Array(statusesToStrings(filter.Statuses)))
	}

	return queryBuilder
}

func (r *dealRepository) ListDeals(ctx context.Context, filter domain.DealFilter) ([]*domain.Deal, error) {
	sqlQuery, args, err := buildListDealsQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar deals: %w", err)
	}
	defer rows.Close()

	deals := make([]*domain.Deal, 0)
	for rows.Next() {
		deal := &domain.Deal{}
		if err := rows.Scan(
			&deal.ID,
			&deal.AccountID,
			&deal.RepID,
			&deal.Name,
			&deal.Amount,
			&deal.Status,
			&deal.CreatedDate,
			&deal.CloseDate,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear deal: %w", err)
		}
		deals = append(deals, deal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return deals, nil
}

func buildCountDealsByRepAndStatusQuery(statuses []domain.DealStatus) squirrel.SelectBuilder {
	queryBuilder := squirrel.
		Select("d.rep_id", "d.status", "COUNT(*)").
		From(dealsTable + " d").
		GroupBy("d.rep_id", "d.status").
		OrderBy("d.rep_id ASC", "d.status ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		queryBuilder = queryBuilder.Where("d.status = ANY(?)", pq.Array(statusesToStrings(statuses)))
	}

	return queryBuilder
}

// CountDealsByRepAndStatus agrupa os deals por (vendedor, status). Sem status informados conta todos.
func (r *dealRepository) CountDealsByRepAndStatus(ctx context.Context, statuses []domain.DealStatus) ([]*domain.RepDealCount, error) {
	sqlQuery, args, err := buildCountDealsByRepAndStatusQuery(statuses).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao agrupar deals por vendedor: %w", err)
	}
	defer rows.Close()

	counts := make([]*domain.RepDealCount, 0)
	for rows.Next() {
		count := &domain.RepDealCount{}
		if err := rows.Scan(&count.RepID, &count.Status, &count.Count); err != nil {
			return nil, fmt.Errorf("erro ao escanear agrupamento: %w", err)
		}
		counts = append(counts, count)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

func buildSaveDealsQueries(deals []*domain.Deal) []squirrel.InsertBuilder {
	return insertInBatches(len(deals),
		func() squirrel.InsertBuilder {
			return squirrel.
				Insert(dealsTable).
				Columns("id", "account_id", "rep_id", "name", "amount", "status", "created_date", "close_date").
				Suffix(`ON CONFLICT (id) DO UPDATE SET
					account_id = EXCLUDED.account_id,
					rep_id = EXCLUDED.rep_id,
					name = EXCLUDED.name,
					amount = EXCLUDED.amount,
					status = EXCLUDED.status,
					created_date = EXCLUDED.created_date,
					close_date = EXCLUDED.close_date`).
				PlaceholderFormat(squirrel.Dollar)
		},
		func(query squirrel.InsertBuilder, i int) squirrel.InsertBuilder {
			deal := deals[i]
			return query.Values(
				deal.ID,
				deal.AccountID,
				deal.RepID,
				deal.Name,
				deal.Amount,
				string(deal.Status),
				deal.CreatedDate,
				deal.CloseDate,
			)
		},
	)
}

func (r *dealRepository) SaveAll(ctx context.Context, deals []*domain.Deal) error {
	if len(deals) == 0 {
		return nil
	}

	return execBatches(ctx, r.db, buildSaveDealsQueries(deals))
}

func (r *dealRepository) DeleteAll(ctx context.Context) error {
	return execBuilder(ctx, r.db, buildDeleteAll(dealsTable))
}
