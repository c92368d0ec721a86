package memory_test

import (
	"context"
	"domainchecker/pkg/domain"
	"domainchecker/pkg/serrors"
	"domainchecker/pkg/storage"
	"domainchecker/pkg/storage/memory"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestStore_EnsureDomain(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	owner := domain.OwnerID(uuid.New())

	d1, err := s.EnsureDomain(ctx, domain.Domain{OwnerID: owner, GroupID: "g1", Name: "example"})
	require.NoError(t, err)
	require.NotEqual(t, domain.DomainID{}, d1.ID)
	require.False(t, d1.CreatedAt.IsZero())

	// same (group, name) returns the existing record, even for another owner
	d2, err := s.EnsureDomain(ctx, domain.Domain{OwnerID: domain.OwnerID(uuid.New()), GroupID: "g1", Name: "example"})
	require.NoError(t, err)
	require.Equal(t, d1.ID, d2.ID)
	require.Equal(t, owner, d2.OwnerID)

	// another group is another record
	d3, err := s.EnsureDomain(ctx, domain.Domain{OwnerID: owner, GroupID: "g2", Name: "example"})
	require.NoError(t, err)
	require.NotEqual(t, d1.ID, d3.ID)

	found, err := s.DomainsByNames(ctx, "g1", []string{"example", "missing"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, d1.ID, found[0].ID)

	byID, err := s.DomainByID(ctx, d3.ID)
	require.NoError(t, err)
	require.Equal(t, "g2", byID.GroupID)

	missing, err := s.DomainByID(ctx, domain.DomainID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestStore_EnsureTLD(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	created, err := s.EnsureTLD(ctx, domain.NewUnknownTLD(".zzz"))
	require.NoError(t, err)
	require.Equal(t, "ZZZ", created.Name)
	require.Equal(t, domain.UnknownTLDCategory, created.Category)

	again, err := s.EnsureTLD(ctx, domain.TLD{Extension: ".zzz", Name: "other"})
	require.NoError(t, err)
	require.Equal(t, created.ID, again.ID)
	require.Equal(t, "ZZZ", again.Name)

	tlds, err := s.TLDsByExtensions(ctx, []string{".zzz", ".com"})
	require.NoError(t, err)
	require.Len(t, tlds, 1)
}

func TestStore_CheckResults(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	owner := domain.OwnerID(uuid.New())
	stranger := domain.OwnerID(uuid.New())

	a, _ := s.EnsureDomain(ctx, domain.Domain{OwnerID: owner, GroupID: "g", Name: "alpha"})
	b, _ := s.EnsureDomain(ctx, domain.Domain{OwnerID: owner, GroupID: "g", Name: "beta"})
	com, _ := s.EnsureTLD(ctx, domain.TLD{Extension: ".com"})
	net, _ := s.EnsureTLD(ctx, domain.TLD{Extension: ".net"})

	avail := domain.AvailabilityAvailable.IsAvailable()
	write := func(d *domain.Domain, tld *domain.TLD, batch domain.BatchID, at time.Time) {
		require.NoError(t, s.UpsertCheckResult(ctx, domain.CheckResult{
			DomainID: d.ID, TLDID: tld.ID, DomainName: d.Name, TLDExtension: tld.Extension,
			FQDN: domain.FQDN(d.Name, tld.Extension), IsAvailable: avail, CheckedAt: at, BatchID: batch,
		}))
	}

	first := time.Now()
	write(b, net, "batch-1", first)
	write(a, com, "batch-1", first)
	write(a, net, "batch-1", first)
	write(a, com, "batch-2", first.Add(time.Second))

	batch1, err := s.CheckResultsByBatch(ctx, owner, "batch-1")
	require.NoError(t, err)
	require.Len(t, batch1, 2, "the re-checked pair moved to batch-2")
	require.Equal(t, "alpha.net", batch1[0].FQDN)
	require.Equal(t, "beta.net", batch1[1].FQDN)

	byDomain, err := s.CheckResultsByDomain(ctx, owner, a.ID)
	require.NoError(t, err)
	require.Len(t, byDomain, 2)
	require.Equal(t, domain.BatchID("batch-2"), byDomain[0].BatchID)

	byGroup, err := s.CheckResultsByGroup(ctx, owner, "g")
	require.NoError(t, err)
	require.Len(t, byGroup, 3, "exactly one result per pair")

	foreign, err := s.CheckResultsByGroup(ctx, stranger, "g")
	require.NoError(t, err)
	require.Empty(t, foreign)

	err = s.UpsertCheckResult(ctx, domain.CheckResult{DomainID: domain.DomainID(uuid.New()), TLDID: com.ID})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestStore_TxAndJobs(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	_, err := s.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrTxUnsupported)

	boom := errors.New("boom")
	err = s.WithTx(ctx, func(tx storage.AllStorage) error {
		_, err := tx.EnsureTLD(ctx, domain.TLD{Extension: ".com"})
		require.NoError(t, err)

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.AddJob(ctx, nil, nil)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.NoError(t, s.Close())
}
