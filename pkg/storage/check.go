package storage

import (
	"context"
	"domainchecker/pkg/domain"
)

// DomainStorage persists candidate domain records.
type DomainStorage interface {
	// DomainsByNames returns the domains of a group whose names are in names.
	// Missing names are simply absent from the result.
	DomainsByNames(ctx context.Context, groupID string, names []string) ([]domain.Domain, error)
	// EnsureDomain returns the domain with the same (GroupID, Name) as d,
	// creating it from d when it does not exist. The returned record may belong
	// to another owner; callers must check OwnerID.
	EnsureDomain(ctx context.Context, d domain.Domain) (*domain.Domain, error)
	// DomainByID fetches a domain by its ID. Returns nil when not found.
	DomainByID(ctx context.Context, ID domain.DomainID) (*domain.Domain, error)
}

// TLDStorage persists the TLD catalog.
type TLDStorage interface {
	// TLDsByExtensions returns the catalog entries for the given extensions.
	// Unknown extensions are simply absent from the result.
	TLDsByExtensions(ctx context.Context, extensions []string) ([]domain.TLD, error)
	// EnsureTLD returns the catalog entry with tld.Extension, creating it from
	// tld when it does not exist.
	EnsureTLD(ctx context.Context, tld domain.TLD) (*domain.TLD, error)
}

// CheckResultStorage persists check results. Exactly one result exists per
// (domain, TLD) pair.
type CheckResultStorage interface {
	// UpsertCheckResult inserts the result for its (DomainID, TLDID) pair or
	// overwrites the existing one in place.
	UpsertCheckResult(ctx context.Context, result domain.CheckResult) error
	// CheckResultsByBatch returns the results last written by a batch for
	// domains of the owner.
	CheckResultsByBatch(ctx context.Context, ownerID domain.OwnerID, batchID domain.BatchID) ([]domain.CheckResult, error)
	// CheckResultsByDomain returns the results of one domain of the owner.
	CheckResultsByDomain(ctx context.Context, ownerID domain.OwnerID, domainID domain.DomainID) ([]domain.CheckResult, error)
	// CheckResultsByGroup returns the results of every domain of the owner in a group.
	CheckResultsByGroup(ctx context.Context, ownerID domain.OwnerID, groupID string) ([]domain.CheckResult, error)
}
