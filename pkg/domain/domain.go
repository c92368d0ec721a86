package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DomainID uniquely identifies a candidate domain name record.
type DomainID uuid.UUID

// String returns the canonical textual UUID representation.
func (d DomainID) String() string { return uuid.UUID(d).String() }

// TLDID uniquely identifies a top-level domain record.
type TLDID uuid.UUID

// String returns the canonical textual UUID representation.
func (t TLDID) String() string { return uuid.UUID(t).String() }

// Domain is a candidate second-level name (without any TLD) that belongs to an
// owner and is grouped under an opaque group (category) key.
type Domain struct {
	// ID is the unique identifier of the domain record.
	ID DomainID `json:"id"`
	// OwnerID is the caller that owns the record.
	OwnerID OwnerID `json:"ownerId"`
	// GroupID is the opaque category key the domain was uploaded under.
	GroupID string `json:"groupId"`
	// Name is the normalized (lowercase, ASCII) label, e.g. "example".
	Name string `json:"name"`
	// CreatedAt is the time when the record was first created.
	CreatedAt time.Time `json:"createdAt"`
}

const (
	// UnknownTLDCategory is assigned to TLD records that were created on demand.
	UnknownTLDCategory = "Unknown"
	// UnknownTLDSortOrder places auto-created TLDs after every curated one.
	UnknownTLDSortOrder = 9999
)

// TLD is a top-level domain from the catalog, e.g. ".com".
type TLD struct {
	ID TLDID `json:"id"`
	// Extension always starts with a dot.
	Extension string `json:"extension"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Hidden    bool   `json:"hidden"`
	SortOrder int    `json:"sortOrder"`

	CreatedAt time.Time `json:"createdAt"`
}

// Label returns the extension without its leading dot ("com" for ".com").
func (t TLD) Label() string { return strings.TrimPrefix(t.Extension, ".") }

// NewUnknownTLD builds the minimal catalog entry used when a requested
// extension does not exist yet.
func NewUnknownTLD(extension string) TLD {
	return TLD{
		Extension: extension,
		Name:      strings.ToUpper(strings.TrimPrefix(extension, ".")),
		Category:  UnknownTLDCategory,
		Hidden:    false,
		SortOrder: UnknownTLDSortOrder,
	}
}

// FQDN joins a domain name and a TLD extension into a fully-qualified name.
func FQDN(name, extension string) string {
	return name + "." + strings.TrimPrefix(extension, ".")
}
