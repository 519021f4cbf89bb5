package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationNames(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)

	assert.Equal(t, "001_create_revenue_tables.sql", names[0])
	for _, name := range names {
		assert.True(t, strings.HasSuffix(name, ".sql"), name)
	}
}

func TestMigrationScript_CriaAsCincoTabelas(t *testing.T) {
	script, err := migrationFS.ReadFile("migrations/001_create_revenue_tables.sql")
	require.NoError(t, err)

	for _, table := range []string{"accounts", "reps", "deals", "activities", "targets"} {
		assert.Contains(t, string(script), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}
