package postgres_test

import (
	"context"
	"database/sql"
	"domainchecker/internal/checker"
	"domainchecker/pkg/domain"
	"domainchecker/pkg/storage/postgres"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

type batchJobArgs struct {
	BatchID string `json:"batchId" river:"unique"`
}

func (batchJobArgs) Kind() string { return "test_batch" }

func (batchJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{UniqueOpts: river.UniqueOpts{ByArgs: true}}
}

func TestPgSQL_AddJob_WithinTransaction(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	inserted, err := txStorage.AddJob(ctx, batchJobArgs{BatchID: "b-1"}, nil)
	require.NoError(t, err)
	require.True(t, inserted)
	rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
		ctx,
		t,
		txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
		&batchJobArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_OutsideTransaction(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	inserted, err := pg.AddJob(ctx, batchJobArgs{BatchID: "b-2"}, nil)
	require.NoError(t, err)
	require.True(t, inserted)
	rivertest.RequireInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&batchJobArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_DuplicateBatch(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	inserted, err := pg.AddJob(ctx, batchJobArgs{BatchID: "b-3"}, nil)
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = pg.AddJob(ctx, batchJobArgs{BatchID: "b-3"}, nil)
	require.NoError(t, err)
	require.False(t, inserted, "a second job for the same batch must be skipped")

	inserted, err = pg.AddJob(ctx, batchJobArgs{BatchID: "b-4"}, nil)
	require.NoError(t, err)
	require.True(t, inserted)
}

func TestPgSQL_AddJob_SharedBatchIDDifferentRequests(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	request := func(owner domain.OwnerID, names ...string) checker.JobArgs {
		return checker.JobArgs{
			BatchID: "upload-1",
			Request: domain.CheckRequest{
				OwnerID: owner,
				GroupID: "default",
				Domains: names,
				TLDs:    []string{".com"},
				BatchID: "upload-1",
			},
		}
	}
	ownerA := domain.OwnerID(uuid.New())
	ownerB := domain.OwnerID(uuid.New())

	inserted, err := pg.AddJob(ctx, request(ownerA, "example"), nil)
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = pg.AddJob(ctx, request(ownerA, "example"), nil)
	require.NoError(t, err)
	require.False(t, inserted, "an identical request is deduplicated")

	inserted, err = pg.AddJob(ctx, request(ownerB, "example"), nil)
	require.NoError(t, err)
	require.True(t, inserted, "another owner reusing the batch ID gets its own job")

	inserted, err = pg.AddJob(ctx, request(ownerA, "other"), nil)
	require.NoError(t, err)
	require.True(t, inserted, "other names under the same batch ID get their own job")
}

func TestPgSQL_AddJob_WithoutClient(t *testing.T) {
	var pg postgres.PgSQL

	_, err := pg.AddJob(context.Background(), batchJobArgs{BatchID: "b-5"}, nil)
	require.Error(t, err)
}
