package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestVersionFromFile(t *testing.T) {
	v, err := versionFromFile("002_default_categories.up.sql")
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	_, err = versionFromFile("init.sql")
	require.Error(t, err)
}

func TestMigrationFiles(t *testing.T) {
	files, err := migrationFiles(migrationsFS)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_init.up.sql", "002_default_categories.up.sql"}, files)
}

func TestMigrate(t *testing.T) {
	existsQuery := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1 AND dirty = false)`)

	t.Run("up to date", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectQuery(existsQuery).WithArgs(int64(1)).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery(existsQuery).WithArgs(int64(2)).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		n, err := Migrate(context.Background(), mock, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("applies pending", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectQuery(existsQuery).WithArgs(int64(1)).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery(existsQuery).WithArgs(int64(2)).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("INSERT INTO schema_migrations").WithArgs(int64(2)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO categorias").WillReturnResult(pgxmock.NewResult("INSERT", 6))
		mock.ExpectExec("UPDATE schema_migrations SET dirty = false").WithArgs(int64(2)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		n, err := Migrate(context.Background(), mock, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
