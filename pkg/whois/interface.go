// Package whois defines the abstraction used to query WHOIS servers for
// registration data of fully-qualified domain names, together with the closed
// set of failures a lookup can report.
package whois

import (
	"context"
	"sort"
)

// Record is the set of raw fields one WHOIS server returned. Field names keep
// the spelling used by the server; repeated fields accumulate values in order.
type Record map[string][]string

// First returns the first value stored for the field, if any.
func (r Record) First(field string) (string, bool) {
	values := r[field]
	if len(values) == 0 {
		return "", false
	}

	return values[0], true
}

// RawResult maps a WHOIS server name to the record it returned. It may be empty
// when no server returned any data.
type RawResult map[string]Record

// Servers returns the server names in a fixed order so callers that scan the
// result never depend on map iteration order.
func (r RawResult) Servers() []string {
	servers := make([]string, 0, len(r))
	for server := range r {
		servers = append(servers, server)
	}
	sort.Strings(servers)

	return servers
}

// IsEmpty reports whether no server returned at least one field.
func (r RawResult) IsEmpty() bool {
	for _, record := range r {
		if len(record) > 0 {
			return false
		}
	}

	return true
}

// Client is the abstraction for WHOIS transports. Implementations query the
// registry server responsible for the name and never follow more than one
// referral hop.
//
//go:generate mockgen -package mockwhois -source=interface.go -destination=mock/mockwhois.go *
type Client interface {
	// Lookup queries WHOIS data for fqdn ("example.com"). Failures are reported
	// as *LookupError. The lookup is bounded by the client's configured timeout
	// and by ctx.
	Lookup(ctx context.Context, fqdn string) (RawResult, error)
}
