// Package checker implements the domain availability engine: it classifies
// every (domain, TLD) pair of a batch from WHOIS data, derives insights for
// registered names and persists one result per pair.
package checker

import (
	"context"
	"domainchecker/pkg/domain"
)

//go:generate mockgen -package mockchecker -source=interface.go -destination=mock/mockchecker.go *
type Checker interface {
	// Run checks every domain x TLD pair of req and returns the batch summary.
	// Validation failures abort the batch before any pair is processed; pair
	// failures never do. When ctx is cancelled the summary of the pairs
	// processed so far is returned together with the context error.
	Run(ctx context.Context, req domain.CheckRequest) (*domain.BatchSummary, error)
	// Enqueue validates the shape of req and schedules it as a background job.
	Enqueue(ctx context.Context, req domain.CheckRequest) (domain.BatchID, error)
	// BatchResults returns the results written by a batch.
	BatchResults(ctx context.Context, ownerID domain.OwnerID, batchID domain.BatchID) ([]domain.CheckResult, error)
	// DomainResults returns the latest result of every TLD checked for a domain.
	DomainResults(ctx context.Context, ownerID domain.OwnerID, domainID domain.DomainID) ([]domain.CheckResult, error)
	// GroupResults returns the latest results of every domain in a group.
	GroupResults(ctx context.Context, ownerID domain.OwnerID, groupID string) ([]domain.CheckResult, error)
}
