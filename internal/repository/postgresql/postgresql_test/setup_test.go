package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dayflow-hris/hris-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// newTestDatabase connects to TEST_DATABASE_URL and recreates the schema.
// Tests are skipped when the variable is unset.
func newTestDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping PostgreSQL repository tests")
	}

	db, err := database.NewPostgreSQLDB(context.Background(), dsn, database.PoolOptions{MaxConns: 10})
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(db.Close)

	ctx := context.Background()
	for _, name := range []string{"000001_init.down.sql", "000001_init.up.sql"} {
		script, err := os.ReadFile(filepath.Join(migrationsDir(), name))
		require.NoError(t, err)
		_, err = db.Exec(ctx, string(script))
		require.NoError(t, err, fmt.Sprintf("failed to apply %s", name))
	}
	return db
}

func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "migrations")
}
