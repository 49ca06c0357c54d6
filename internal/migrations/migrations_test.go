package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_Paired(t *testing.T) {
	names, err := fs.Glob(MigrationFiles, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, name := range names {
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Fatalf("unexpected migration file %q", name)
		}
	}
	require.Equal(t, ups, downs)
}

func TestMigrationFiles_CreateTransactionItems(t *testing.T) {
	data, err := fs.ReadFile(MigrationFiles, "000001_create_transaction_items.up.sql")
	require.NoError(t, err)
	require.Contains(t, string(data), "PRIMARY KEY (dataset, transaction_id, item)")
}
