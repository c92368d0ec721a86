package postgres_test

import (
	"context"
	"database/sql"
	"domainchecker/pkg/domain"
	"domainchecker/pkg/storage"
	"domainchecker/pkg/storage/postgres"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func countTLDs(t *testing.T, db *sql.DB, extension string) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM tlds WHERE extension = $1`, extension)
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// nested transactions are not supported
	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback_NotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Commit_PersistsTLD(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	db := pg.DB.(*sql.DB)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.EnsureTLD(ctx, domain.NewUnknownTLD(".zzz"))
	require.NoError(t, err)
	require.Equal(t, 0, countTLDs(t, db, ".zzz"), "uncommitted TLD must not be visible")

	require.NoError(t, txStorage.Commit())
	require.Equal(t, 1, countTLDs(t, db, ".zzz"))
}

func TestPgSQL_Rollback_DiscardsTLD(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.EnsureTLD(ctx, domain.NewUnknownTLD(".yyy"))
	require.NoError(t, err)
	require.NoError(t, txStorage.Rollback())

	require.Equal(t, 0, countTLDs(t, pg.DB.(*sql.DB), ".yyy"))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	db := pg.DB.(*sql.DB)

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, err := s.EnsureTLD(ctx, domain.NewUnknownTLD(".store"))

		return err //nolint: wrapcheck
	})
	require.NoError(t, err)
	require.Equal(t, 1, countTLDs(t, db, ".store"))

	boom := errors.New("boom")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.EnsureTLD(ctx, domain.NewUnknownTLD(".shop"))

		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, countTLDs(t, db, ".shop"))
}
