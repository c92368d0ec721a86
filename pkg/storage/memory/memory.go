// Package memory provides an in-process storage.Storage implementation backed
// by maps. It is meant for one-shot CLI runs and tests; nothing survives the
// process.
package memory

import (
	"context"
	"domainchecker/pkg/domain"
	"domainchecker/pkg/serrors"
	"domainchecker/pkg/storage"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
)

type pairKey struct {
	domainID domain.DomainID
	tldID    domain.TLDID
}

type groupName struct {
	groupID string
	name    string
}

// Store implements storage.Storage in memory. It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	domains      map[domain.DomainID]domain.Domain
	domainByName map[groupName]domain.DomainID
	tlds         map[string]domain.TLD
	results      map[pairKey]domain.CheckResult

	now func() time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		domains:      make(map[domain.DomainID]domain.Domain),
		domainByName: make(map[groupName]domain.DomainID),
		tlds:         make(map[string]domain.TLD),
		results:      make(map[pairKey]domain.CheckResult),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Close implements storage.Storage. It is a no-op.
func (s *Store) Close() error { return nil }

// Begin implements storage.Storage. Map writes cannot be rolled back, so
// explicit transactions are not available.
func (s *Store) Begin(context.Context) (storage.TxStorage, error) {
	return nil, storage.ErrTxUnsupported
}

// WithTx runs cb against the store itself. Every write is applied
// immediately and is not undone when cb fails.
func (s *Store) WithTx(_ context.Context, cb func(storage storage.AllStorage) error) error {
	return cb(s)
}

// AddJob implements storage.JobStorage. Background jobs need a River backed store.
func (s *Store) AddJob(context.Context, river.JobArgs, *river.InsertOpts) (bool, error) {
	return false, serrors.With(serrors.ErrUnavailable, "background jobs are not supported by the memory store")
}

// DomainsByNames implements storage.DomainStorage.
func (s *Store) DomainsByNames(_ context.Context, groupID string, names []string) ([]domain.Domain, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Domain
	for _, name := range names {
		if id, ok := s.domainByName[groupName{groupID, name}]; ok {
			out = append(out, s.domains[id])
		}
	}

	return out, nil
}

// EnsureDomain implements storage.DomainStorage.
func (s *Store) EnsureDomain(_ context.Context, d domain.Domain) (*domain.Domain, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := groupName{d.GroupID, d.Name}
	if id, ok := s.domainByName[key]; ok {
		existing := s.domains[id]

		return &existing, nil
	}

	d.ID = domain.DomainID(uuid.New())
	d.CreatedAt = s.now()
	s.domains[d.ID] = d
	s.domainByName[key] = d.ID

	return &d, nil
}

// DomainByID implements storage.DomainStorage.
func (s *Store) DomainByID(_ context.Context, id domain.DomainID) (*domain.Domain, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.domains[id]
	if !ok {
		return nil, nil
	}

	return &d, nil
}

// TLDsByExtensions implements storage.TLDStorage.
func (s *Store) TLDsByExtensions(_ context.Context, extensions []string) ([]domain.TLD, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.TLD
	for _, ext := range extensions {
		if tld, ok := s.tlds[ext]; ok {
			out = append(out, tld)
		}
	}

	return out, nil
}

// EnsureTLD implements storage.TLDStorage.
func (s *Store) EnsureTLD(_ context.Context, tld domain.TLD) (*domain.TLD, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.tlds[tld.Extension]; ok {
		return &existing, nil
	}

	tld.ID = domain.TLDID(uuid.New())
	tld.CreatedAt = s.now()
	s.tlds[tld.Extension] = tld

	return &tld, nil
}

// UpsertCheckResult implements storage.CheckResultStorage.
func (s *Store) UpsertCheckResult(_ context.Context, result domain.CheckResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.domains[result.DomainID]; !ok {
		return serrors.With(serrors.ErrConflict, "domain %s does not exist", result.DomainID)
	}
	s.results[pairKey{result.DomainID, result.TLDID}] = result

	return nil
}

// CheckResultsByBatch implements storage.CheckResultStorage.
func (s *Store) CheckResultsByBatch(_ context.Context,
	ownerID domain.OwnerID,
	batchID domain.BatchID) ([]domain.CheckResult, error) {
	return s.filter(ownerID, func(r domain.CheckResult, _ domain.Domain) bool { return r.BatchID == batchID }), nil
}

// CheckResultsByDomain implements storage.CheckResultStorage.
func (s *Store) CheckResultsByDomain(_ context.Context,
	ownerID domain.OwnerID,
	domainID domain.DomainID) ([]domain.CheckResult, error) {
	return s.filter(ownerID, func(r domain.CheckResult, _ domain.Domain) bool { return r.DomainID == domainID }), nil
}

// CheckResultsByGroup implements storage.CheckResultStorage.
func (s *Store) CheckResultsByGroup(_ context.Context,
	ownerID domain.OwnerID,
	groupID string) ([]domain.CheckResult, error) {
	return s.filter(ownerID, func(_ domain.CheckResult, d domain.Domain) bool { return d.GroupID == groupID }), nil
}

// filter returns the owner's results matching keep, ordered by domain name and
// TLD extension.
func (s *Store) filter(ownerID domain.OwnerID, keep func(domain.CheckResult, domain.Domain) bool) []domain.CheckResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.CheckResult
	for _, r := range s.results {
		d := s.domains[r.DomainID]
		if d.OwnerID != ownerID || !keep(r, d) {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DomainName != out[j].DomainName {
			return out[i].DomainName < out[j].DomainName
		}

		return out[i].TLDExtension < out[j].TLDExtension
	})

	return out
}

// Ensure Store conforms to the storage.Storage interface at compile time.
var _ storage.Storage = (*Store)(nil)
