package domain

import "github.com/google/uuid"

// OwnerID uniquely identifies the owner of domain records (the authenticated caller).
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type OwnerID uuid.UUID

// String returns the canonical textual UUID representation.
func (o OwnerID) String() string { return uuid.UUID(o).String() }
