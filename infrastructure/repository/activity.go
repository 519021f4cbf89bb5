package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

const activitiesTable = "activities"

type ActivityRepository interface {
	ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]*domain.Activity, error)
	SaveAll(ctx context.Context, activities []*domain.Activity) error
	DeleteAll(ctx context.Context) error
}

type activityRepository struct {
	db postgres.Queryer
}

func NewActivityRepository(db postgres.Queryer) ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// A data é texto: a comparação lexicográfica com YYYY-MM-DD funciona para datas ISO.
// Valores inválidos podem passar pelo filtro e são descartados no cálculo.
func buildListActivitiesQuery(filter domain.ActivityFilter) squirrel.SelectBuilder {
	queryBuilder := squirrel.
		Select("ac.id", "ac.account_id", "ac.date", "ac.type").
		From(activitiesTable + " ac").
		OrderBy("ac.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.DateFrom != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"ac.date": filter.DateFrom.Format(time.DateOnly)})
	}

	return queryBuilder
}

func (r *activityRepository) ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]*domain.Activity, error) {
	sqlQuery, args, err := buildListActivitiesQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar atividades: %w", err)
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		activity := &domain.Activity{}
		if err := rows.Scan(&activity.ID, &activity.AccountID, &activity.Date, &activity.Type); err != nil {
			return nil, fmt.Errorf("erro ao escanear atividade: %w", err)
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return activities, nil
}

func buildSaveActivitiesQueries(activities []*domain.Activity) []squirrel.InsertBuilder {
	return insertInBatches(len(activities),
		func() squirrel.InsertBuilder {
			return squirrel.
				Insert(activitiesTable).
				Columns("id", "account_id", "date", "type").
				Suffix(`ON CONFLICT (id) DO UPDATE SET
					account_id = EXCLUDED.account_id,
					date = EXCLUDED.date,
					type = EXCLUDED.type`).
				PlaceholderFormat(squirrel.Dollar)
		},
		func(query squirrel.InsertBuilder, i int) squirrel.InsertBuilder {
			activity := activities[i]
			return query.Values(activity.ID, activity.AccountID, activity.Date, activity.Type)
		},
	)
}

func (r *activityRepository) SaveAll(ctx context.Context, activities []*domain.Activity) error {
	if len(activities) == 0 {
		return nil
	}

	return execBatches(ctx, r.db, buildSaveActivitiesQueries(activities))
}

func (r *activityRepository) DeleteAll(ctx context.Context) error {
	return execBuilder(ctx, r.db, buildDeleteAll(activitiesTable))
}
