// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database/postgres"
)

// Quantidade máxima de linhas por INSERT, abaixo do limite de 65535 parâmetros do Postgres
const insertBatchSize = 500

func execBuilder(ctx context.Context, db postgres.Queryer, builder squirrel.Sqlizer) error {
	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := db.ExecContext(ctx, sqlQuery, args...); err != nil {
		return databaseError(err)
	}

	return nil
}

func databaseError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("failed to execute query: %w", err)
}

// insertInBatches monta um INSERT por lote de até insertBatchSize linhas
func insertInBatches(total int, newInsert func() squirrel.InsertBuilder, addRow func(squirrel.InsertBuilder, int) squirrel.InsertBuilder) []squirrel.InsertBuilder {
	batches := make([]squirrel.InsertBuilder, 0, total/insertBatchSize+1)

	for start := 0; start < total; start += insertBatchSize {
		end := start + insertBatchSize
		if end > total {
			end = total
		}

		query := newInsert()
		for i := start; i < end; i++ {
			query = addRow(query, i)
		}
		batches = append(batches, query)
	}

	return batches
}

func execBatches(ctx context.Context, db postgres.Queryer, batches []squirrel.InsertBuilder) error {
	for _, batch := range batches {
		if err := execBuilder(ctx, db, batch); err != nil {
			return err
		}
	}
	return nil
}

func buildDeleteAll(table string) squirrel.DeleteBuilder {
	return squirrel.Delete(table).PlaceholderFormat(squirrel.Dollar)
}
