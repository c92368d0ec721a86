package checker

import (
	"domainchecker/pkg/domain"
	"domainchecker/pkg/whois"
	"strings"
	"time"
)

// signalFields are the fields whose presence proves a registration exists.
var signalFields = []string{"domain name", "creation date", "expiry date", "registrar"} //nolint: gochecknoglobals

// Classification is the outcome of classifying one WHOIS lookup.
type Classification struct {
	Availability domain.Availability
	// Registration and Insights are only set for unavailable names.
	Registration *domain.Registration
	Insights     *domain.Insights
	// Err is the lookup failure behind an indeterminate outcome.
	Err error
	// Unexpected marks failures outside the transient lookup taxonomy; they
	// count towards the batch error count.
	Unexpected bool
}

// Classify decides availability from a lookup result. It is a pure function of
// its inputs: now is only used to derive insights.
//
//   - transient failures (timeout, rate limit, network) are indeterminate
//   - an explicit "no match" or an empty result means available
//   - a record carrying any signal field means unavailable
//   - anything else is treated as available
func Classify(raw whois.RawResult, lookupErr error, now time.Time) Classification {
	if lookupErr != nil {
		kind, ok := whois.FailureOf(lookupErr)
		switch {
		case ok && kind == whois.FailureNotFound:
			return Classification{Availability: domain.AvailabilityAvailable}
		case ok && kind.Transient():
			return Classification{Availability: domain.AvailabilityIndeterminate, Err: lookupErr}
		default:
			return Classification{Availability: domain.AvailabilityIndeterminate, Err: lookupErr, Unexpected: true}
		}
	}

	if raw.IsEmpty() || !hasSignal(raw) {
		return Classification{Availability: domain.AvailabilityAvailable}
	}

	reg := Extract(raw)
	insights := NewInsights(reg, now)

	return Classification{
		Availability: domain.AvailabilityUnavailable,
		Registration: &reg,
		Insights:     &insights,
	}
}

func hasSignal(raw whois.RawResult) bool {
	for _, record := range raw {
		for field, values := range record {
			if len(values) == 0 {
				continue
			}
			for _, s := range signalFields {
				if strings.EqualFold(strings.TrimSpace(field), s) {
					return true
				}
			}
		}
	}

	return false
}
