package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

// TxRunner é a parte da conexão usada pela carga: executar uma função dentro de uma transação
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

type DatasetRepository interface {
	ReplaceAll(ctx context.Context, dataset *domain.Dataset) error
}

type datasetRepository struct {
	conn TxRunner
}

func NewDatasetRepository(conn TxRunner) DatasetRepository {
	return &datasetRepository{
		conn: conn,
	}
}

// ReplaceAll apaga todos os registros e grava o dataset em uma única transação.
// Filhos são apagados antes dos pais e os pais são gravados antes dos filhos.
func (r *datasetRepository) ReplaceAll(ctx context.Context, dataset *domain.Dataset) error {
	if dataset == nil {
		dataset = &domain.Dataset{}
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		accounts := NewAccountRepository(tx)
		reps := NewRepRepository(tx)
		deals := NewDealRepository(tx)
		activities := NewActivityRepository(tx)
		targets := NewTargetRepository(tx)

		return replaceAll(ctx, dataset, accounts, reps, deals, activities, targets)
	})
}

func replaceAll(
	ctx context.Context,
	dataset *domain.Dataset,
	accounts AccountRepository,
	reps RepRepository,
	deals DealRepository,
	activities ActivityRepository,
	targets TargetRepository,
) error {
	deletes := []struct {
		table string
		fn    func(context.Context) error
	}{
		{activitiesTable, activities.DeleteAll},
		{dealsTable, deals.DeleteAll},
		{targetsTable, targets.DeleteAll},
		{repsTable, reps.DeleteAll},
		{accountsTable, accounts.DeleteAll},
	}

	for _, d := range deletes {
		if err := d.fn(ctx); err != nil {
			return fmt.Errorf("erro ao limpar %s: %w", d.table, err)
		}
	}

	if err := accounts.SaveAll(ctx, dataset.Accounts); err != nil {
		return fmt.Errorf("erro ao gravar %s: %w", accountsTable, err)
	}
	if err := reps.SaveAll(ctx, dataset.Reps); err != nil {
		return fmt.Errorf("erro ao gravar %s: %w", repsTable, err)
	}
	if err := deals.SaveAll(ctx, dataset.Deals); err != nil {
		return fmt.Errorf("erro ao gravar %s: %w", dealsTable, err)
	}
	if err := activities.SaveAll(ctx, dataset.Activities); err != nil {
		return fmt.Errorf("erro ao gravar %s: %w", activitiesTable, err)
	}
	if err := targets.SaveAll(ctx, dataset.Targets); err != nil {
		return fmt.Errorf("erro ao gravar %s: %w", targetsTable, err)
	}

	return nil
}
