package domain

import "time"

// BatchID identifies one submitted check request. Callers may supply their own
// value; otherwise a UUID string is generated.
type BatchID string

// CheckRequest asks for every Domains x TLDs combination to be checked.
type CheckRequest struct {
	// OwnerID is the caller the domain records are resolved for.
	OwnerID OwnerID `json:"ownerId"`
	// GroupID is the opaque owner/category key new domain records are created under.
	GroupID string `json:"groupId"`
	// Domains are the candidate names in submission order.
	Domains []string `json:"domains"`
	// TLDs are extensions such as ".com". A missing leading dot is tolerated.
	TLDs []string `json:"tlds"`
	// BatchID is optional; an empty value makes the checker generate one.
	BatchID BatchID `json:"batchId,omitempty"`
}

// Availability is the tri-state outcome of a single (domain, TLD) check.
type Availability int8

const (
	// AvailabilityIndeterminate means the lookup failed transiently and nothing could be concluded.
	AvailabilityIndeterminate Availability = iota
	// AvailabilityAvailable means no registration was found.
	AvailabilityAvailable
	// AvailabilityUnavailable means the name is registered.
	AvailabilityUnavailable
)

// String implements fmt.Stringer.
func (a Availability) String() string {
	switch a {
	case AvailabilityAvailable:
		return "available"
	case AvailabilityUnavailable:
		return "unavailable"
	default:
		return "indeterminate"
	}
}

// IsAvailable maps the outcome to the persisted nullable flag.
func (a Availability) IsAvailable() *bool {
	var v bool
	switch a {
	case AvailabilityAvailable:
		v = true
	case AvailabilityUnavailable:
		v = false
	default:
		return nil
	}

	return &v
}

// AvailabilityOf is the inverse of Availability.IsAvailable.
func AvailabilityOf(isAvailable *bool) Availability {
	switch {
	case isAvailable == nil:
		return AvailabilityIndeterminate
	case *isAvailable:
		return AvailabilityAvailable
	default:
		return AvailabilityUnavailable
	}
}

// Registration is the normalized view of the registration data that WHOIS
// servers returned for a name. All fields are optional.
type Registration struct {
	CreatedAt        *time.Time `json:"createdAt,omitempty"`
	ExpiresAt        *time.Time `json:"expiresAt,omitempty"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
	Registrar        string     `json:"registrar,omitempty"`
	SecurityFeatures []string   `json:"securityFeatures,omitempty"`
	DNSSEC           string     `json:"dnssec,omitempty"`
}

// IsEmpty reports whether no attribute could be extracted.
func (r Registration) IsEmpty() bool {
	return r.CreatedAt == nil && r.ExpiresAt == nil && r.UpdatedAt == nil &&
		r.Registrar == "" && len(r.SecurityFeatures) == 0 && r.DNSSEC == ""
}

// Insights enrich registered (unavailable) names.
type Insights struct {
	// DomainAgeYears is the number of whole years since creation.
	DomainAgeYears *int `json:"domainAgeYears,omitempty"`
	// TrustScore is in [0, 10].
	TrustScore *int   `json:"trustScore,omitempty"`
	Registrar  string `json:"registrar,omitempty"`
}

// CheckResult is the latest known outcome for one (domain, TLD) pair. Exactly
// one record exists per pair; re-checks overwrite it in place.
type CheckResult struct {
	DomainID     DomainID `json:"domainId"`
	TLDID        TLDID    `json:"tldId"`
	DomainName   string   `json:"domainName"`
	TLDExtension string   `json:"tldExtension"`
	FQDN         string   `json:"fqdn"`

	// IsAvailable is true, false, or nil when indeterminate.
	IsAvailable *bool  `json:"isAvailable"`
	TrustScore  *int   `json:"trustScore,omitempty"`
	DomainAge   *int   `json:"domainAge,omitempty"`
	Registrar   string `json:"registrar,omitempty"`
	// Registration keeps the normalized WHOIS attributes the insights were derived from.
	Registration *Registration `json:"registration,omitempty"`

	CheckedAt time.Time `json:"checkedAt"`
	BatchID   BatchID   `json:"batchId"`
	// Error holds the failure description for indeterminate outcomes.
	Error string `json:"error,omitempty"`
}

// Availability returns the tri-state outcome stored in the result.
func (c CheckResult) Availability() Availability { return AvailabilityOf(c.IsAvailable) }

// BatchSummary is returned to the caller once a batch finished.
type BatchSummary struct {
	BatchID       BatchID `json:"batchId"`
	ErrorCount    int     `json:"errorCount"`
	Total         int     `json:"total"`
	Available     int     `json:"available"`
	Unavailable   int     `json:"unavailable"`
	Indeterminate int     `json:"indeterminate"`
}
