package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

const accountsTable = "accounts"

type AccountRepository interface {
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	SaveAll(ctx context.Context, accounts []*domain.Account) error
	DeleteAll(ctx context.Context) error
}

type accountRepository struct {
	db postgres.Queryer
}

func NewAccountRepository(db postgres.Queryer) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func buildListAccountsQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("a.id", "a.name", "a.segment").
		From(accountsTable + " a").
		OrderBy("a.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	sqlQuery, args, err := buildListAccountsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account := &domain.Account{}
		if err := rows.Scan(&account.ID, &account.Name, &account.Segment); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func buildSaveAccountsQueries(accounts []*domain.Account) []squirrel.InsertBuilder {
	return insertInBatches(len(accounts),
		func() squirrel.InsertBuilder {
			return squirrel.
				Insert(accountsTable).
				Columns("id", "name", "segment").
				Suffix(`ON CONFLICT (id) DO UPDATE SET
					name = EXCLUDED.name,
					segment = EXCLUDED.segment`).
				PlaceholderFormat(squirrel.Dollar)
		},
		func(query squirrel.InsertBuilder, i int) squirrel.InsertBuilder {
			account := accounts[i]
			return query.Values(account.ID, account.Name, account.Segment)
		},
	)
}

func (r *accountRepository) SaveAll(ctx context.Context, accounts []*domain.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	return execBatches(ctx, r.db, buildSaveAccountsQueries(accounts))
}

func (r *accountRepository) DeleteAll(ctx context.Context) error {
	return execBuilder(ctx, r.db, buildDeleteAll(accountsTable))
}
