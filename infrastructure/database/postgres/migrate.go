package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const createMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	filename   TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Migrate aplica, em ordem lexicográfica, os arquivos .sql ainda não registrados em schema_migrations.
// Os scripts usam IF NOT EXISTS, então duas instâncias migrando ao mesmo tempo não conflitam.
func Migrate(ctx context.Context, db Queryer) error {
	logger := log.ForContext(ctx).WithField("job", "migrate")

	if _, err := db.ExecContext(ctx, createMigrationsTable); err != nil {
		return fmt.Errorf("erro ao criar tabela de migrações: %w", err)
	}

	names, err := migrationNames()
	if err != nil {
		return err
	}

	applied, err := appliedMigrations(ctx, db)
	if err != nil {
		return err
	}

	for _, name := range names {
		if _, ok := applied[name]; ok {
			continue
		}

		script, err := migrationFS.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("erro ao ler migração %s: %w", name, err)
		}

		logger.Infof("Aplicando migração %s", name)

		if _, err := db.ExecContext(ctx, string(script)); err != nil {
			return fmt.Errorf("erro ao aplicar migração %s: %w", name, err)
		}

		insertSQL, args, err := squirrel.
			Insert("schema_migrations").
			Columns("filename").
			Values(name).
			Suffix("ON CONFLICT (filename) DO NOTHING").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := db.ExecContext(ctx, insertSQL, args...); err != nil {
			return fmt.Errorf("erro ao registrar migração %s: %w", name, err)
		}
	}

	return nil
}

func migrationNames() ([]string, error) {
	entries, err := fs.ReadDir(migrationFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("erro ao listar migrações: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}

func appliedMigrations(ctx context.Context, db Queryer) (map[string]struct{}, error) {
	rows, err := db.QueryContext(ctx, "SELECT filename FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("erro ao listar migrações aplicadas: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		applied[name] = struct{}{}
	}

	return applied, rows.Err()
}
