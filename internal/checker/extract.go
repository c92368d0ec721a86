package checker

import (
	"domainchecker/pkg/domain"
	"domainchecker/pkg/whois"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"
)

// Field name synonyms in priority order. Matching is case-insensitive.
//
//nolint: gochecknoglobals
var (
	createdFields = []string{
		"Creation Date", "Created Date", "Created On", "Created", "Registered On",
		"Registration Date", "Registration Time", "Domain Registration Date", "Registered",
	}
	expiryFields = []string{
		"Registry Expiry Date", "Registrar Registration Expiration Date", "Expiry Date",
		"Expiration Date", "Expiration Time", "Expires On", "Expires", "Expire", "paid-till",
	}
	updatedFields = []string{
		"Updated Date", "Last Updated", "Last Updated On", "Last Modified", "Modified", "Changed",
	}
	registrarFields = []string{
		"Registrar", "Registrar Name", "Sponsoring Registrar", "Registrar Organization",
	}
	statusFields = []string{"Domain Status", "Status", "State"}
	dnssecFields = []string{"DNSSEC", "DNSSEC Status", "Signing Key"}
)

// prohibitions are the EPP status flags that count as security features.
var prohibitions = []string{"deleteprohibited", "transferprohibited", "updateprohibited"} //nolint: gochecknoglobals

// dateLayouts are tried in order when parsing WHOIS timestamps.
var dateLayouts = []string{ //nolint: gochecknoglobals
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"2006.01.02 15:04:05",
	"2006.01.02",
	"02-Jan-2006",
	"02-January-2006",
	"02.01.2006 15:04:05",
	"02.01.2006",
	"02/01/2006",
	"January 2 2006",
	"Mon Jan 2 15:04:05 MST 2006",
	"Mon Jan 2 2006",
	"20060102",
}

// trailingZone strips suffixes such as " (JST)" that no layout understands.
var trailingZone = regexp.MustCompile(`\s*\([A-Za-z ]+\)$`)

// ParseDate parses a WHOIS timestamp in any of the layouts registries are known
// to use. The result is in UTC.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(trailingZone.ReplaceAllString(strings.TrimSpace(value), ""))
	if value == "" {
		return time.Time{}, false
	}
	value = strings.ReplaceAll(value, ",", "")

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// index is a case-insensitive view over one WHOIS record.
type index map[string][]string

func newIndex(record whois.Record) index {
	idx := make(index, len(record))
	for k, v := range record {
		key := strings.ToLower(strings.TrimSpace(k))
		idx[key] = append(idx[key], v...)
	}

	return idx
}

// first returns the first non-empty value of the highest priority field that
// accept agrees with.
func (idx index) first(fields []string, accept func(string) bool) (string, bool) {
	for _, f := range fields {
		for _, v := range idx[strings.ToLower(f)] {
			v = strings.TrimSpace(v)
			if v != "" && (accept == nil || accept(v)) {
				return v, true
			}
		}
	}

	return "", false
}

func isDate(v string) bool {
	_, ok := ParseDate(v)

	return ok
}

// Extract normalizes a raw WHOIS result.
//
// Servers are scanned in the fixed order of RawResult.Servers and, for each
// attribute, the first usable value wins. Servers that disagree are not
// reconciled. An empty raw result yields an empty Registration.
func Extract(raw whois.RawResult) domain.Registration {
	var reg domain.Registration

	setDate := func(dst **time.Time, idx index, fields []string) {
		if *dst != nil {
			return
		}
		if v, ok := idx.first(fields, isDate); ok {
			t, _ := ParseDate(v)
			*dst = &t
		}
	}

	statusSeen := false
	for _, server := range raw.Servers() {
		idx := newIndex(raw[server])

		setDate(&reg.CreatedAt, idx, createdFields)
		setDate(&reg.ExpiresAt, idx, expiryFields)
		setDate(&reg.UpdatedAt, idx, updatedFields)

		if reg.Registrar == "" {
			reg.Registrar, _ = idx.first(registrarFields, nil)
		}
		if reg.DNSSEC == "" {
			reg.DNSSEC, _ = idx.first(dnssecFields, nil)
		}
		if !statusSeen {
			statusSeen = collectFeatures(&reg, idx)
		}
	}

	return reg
}

// collectFeatures fills SecurityFeatures from the status fields of the first
// record that has any and reports whether it found status fields at all.
func collectFeatures(reg *domain.Registration, idx index) bool {
	found := false
	// keyed by the lowercased flag, holding the first spelling seen
	features := map[string]string{}
	for _, f := range statusFields {
		for _, v := range idx[strings.ToLower(f)] {
			found = true
			for _, token := range statusTokens(v) {
				lower := strings.ToLower(token)
				for _, p := range prohibitions {
					if _, seen := features[lower]; !seen && strings.HasSuffix(lower, p) {
						features[lower] = token
					}
				}
			}
		}
	}
	if !found {
		return false
	}

	for _, f := range features {
		reg.SecurityFeatures = append(reg.SecurityFeatures, f)
	}
	sort.Strings(reg.SecurityFeatures)

	return true
}

// statusTokens splits a status value on whitespace and commas, dropping URLs
// and surrounding punctuation.
func statusTokens(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';'
	})

	tokens := fields[:0]
	for _, f := range fields {
		if strings.Contains(f, "/") {
			continue
		}
		if f = strings.Trim(f, ".()[]\"'"); f != "" {
			tokens = append(tokens, f)
		}
	}

	return tokens
}
