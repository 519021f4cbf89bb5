package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

const targetsTable = "targets"

type TargetRepository interface {
	ListTargets(ctx context.Context) ([]*domain.Target, error)
	SaveAll(ctx context.Context, targets []*domain.Target) error
	DeleteAll(ctx context.Context) error
}

type targetRepository struct {
	db postgres.Queryer
}

func NewTargetRepository(db postgres.Queryer) TargetRepository {
	return &targetRepository{
		db: db,
	}
}

func buildListTargetsQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("t.id", "t.quarter", "t.value").
		From(targetsTable + " t").
		OrderBy("t.quarter ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *targetRepository) ListTargets(ctx context.Context) ([]*domain.Target, error) {
	sqlQuery, args, err := buildListTargetsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar metas: %w", err)
	}
	defer rows.Close()

	targets := make([]*domain.Target, 0)
	for rows.Next() {
		target := &domain.Target{}
		if err := rows.Scan(&target.ID, &target.Quarter, &target.Value); err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}
		targets = append(targets, target)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return targets, nil
}

func buildSaveTargetsQueries(targets []*domain.Target) []squirrel.InsertBuilder {
	return insertInBatches(len(targets),
		func() squirrel.InsertBuilder {
			return squirrel.
				Insert(targetsTable).
				Columns("id", "quarter", "value").
				Suffix(`ON CONFLICT (quarter) DO UPDATE SET
					id = EXCLUDED.id,
					value = EXCLUDED.value`).
				PlaceholderFormat(squirrel.Dollar)
		},
		func(query squirrel.InsertBuilder, i int) squirrel.InsertBuilder {
			return query.Values(targets[i].ID, targets[i].Quarter, targets[i].Value)
		},
	)
}

func (r *targetRepository) SaveAll(ctx context.Context, targets []*domain.Target) error {
	if len(targets) == 0 {
		return nil
	}

	return execBatches(ctx, r.db, buildSaveTargetsQueries(targets))
}

func (r *targetRepository) DeleteAll(ctx context.Context) error {
	return execBuilder(ctx, r.db, buildDeleteAll(targetsTable))
}
