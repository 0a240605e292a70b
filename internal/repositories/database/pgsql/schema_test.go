package pgsql

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const initSchemaPath = "../../../../migrations/000001_init_schema.up.sql"

// tableColumns extracts the column names declared in a CREATE TABLE block of
// the migration DDL. Constraint lines are skipped.
func tableColumns(t *testing.T, ddl, table string) map[string]string {
	t.Helper()

	marker := "CREATE TABLE IF NOT EXISTS " + table + " ("
	start := strings.Index(ddl, marker)
	require.NotEqual(t, -1, start, "table %s not found in migration", table)

	body := ddl[start+len(marker):]
	end := strings.Index(body, "\n);")
	require.NotEqual(t, -1, end, "unterminated CREATE TABLE for %s", table)

	columns := make(map[string]string)
	for _, line := range strings.Split(body[:end], "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ","))
		if line == "" || strings.HasPrefix(line, "CONSTRAINT") {
			continue
		}
		name, rest, _ := strings.Cut(line, " ")
		columns[name] = rest
	}
	return columns
}

func splitColumnList(list string) []string {
	parts := strings.Split(list, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// TestRepositoryColumnsMatchSchema guards against queries referencing columns
// the migration never creates. Each repository declares the column list it
// selects and inserts, so checking the lists covers every query built from
// them.
func TestRepositoryColumnsMatchSchema(t *testing.T) {
	raw, err := os.ReadFile(initSchemaPath)
	require.NoError(t, err)
	ddl := string(raw)

	tests := []struct {
		table   string
		columns string
	}{
		{"workplaces", workplaceColumns},
		{"users", userColumns},
		{"shift_boards", boardColumns},
		{"user_requests", requestColumns},
	}

	for _, tc := range tests {
		t.Run(tc.table, func(t *testing.T) {
			declared := tableColumns(t, ddl, tc.table)
			for _, col := range splitColumnList(tc.columns) {
				assert.Contains(t, declared, col, "column %s is not in the %s schema", col, tc.table)
			}
		})
	}
}

// TestRefreshTokenHashNeverNull: rows created without a token must scan into
// a plain string, so the column needs a non-null empty default.
func TestRefreshTokenHashNeverNull(t *testing.T) {
	raw, err := os.ReadFile(initSchemaPath)
	require.NoError(t, err)

	columns := tableColumns(t, string(raw), "users")
	require.Contains(t, columns, "refresh_token_hash")
	assert.Contains(t, columns["refresh_token_hash"], "NOT NULL")
	assert.Contains(t, columns["refresh_token_hash"], "DEFAULT ''")
}
