package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

const repsTable = "reps"

type RepRepository interface {
	ListReps(ctx context.Context) ([]*domain.Rep, error)
	SaveAll(ctx context.Context, reps []*domain.Rep) error
	DeleteAll(ctx context.Context) error
}

type repRepository struct {
	db postgres.Queryer
}

func NewRepRepository(db postgres.Queryer) RepRepository {
	return &repRepository{
		db: db,
	}
}

func buildListRepsQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("r.id", "r.name").
		From(repsTable + " r").
		OrderBy("r.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *repRepository) ListReps(ctx context.Context) ([]*domain.Rep, error) {
	sqlQuery, args, err := buildListRepsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendedores: %w", err)
	}
	defer rows.Close()

	reps := make([]*domain.Rep, 0)
	for rows.Next() {
		rep := &domain.Rep{}
		if err := rows.Scan(&rep.ID, &rep.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendedor: %w", err)
		}
		reps = append(reps, rep)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reps, nil
}

func buildSaveRepsQueries(reps []*domain.Rep) []squirrel.InsertBuilder {
	return insertInBatches(len(reps),
		func() squirrel.InsertBuilder {
			return squirrel.
				Insert(repsTable).
				Columns("id", "name").
				Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name").
				PlaceholderFormat(squirrel.Dollar)
		},
		func(query squirrel.InsertBuilder, i int) squirrel.InsertBuilder {
			return query.Values(reps[i].ID, reps[i].Name)
		},
	)
}

func (r *repRepository) SaveAll(ctx context.Context, reps []*domain.Rep) error {
	if len(reps) == 0 {
		return nil
	}

	return execBatches(ctx, r.db, buildSaveRepsQueries(reps))
}

func (r *repRepository) DeleteAll(ctx context.Context) error {
	return execBuilder(ctx, r.db, buildDeleteAll(repsTable))
}
