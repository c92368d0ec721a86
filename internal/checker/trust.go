package checker

import (
	"domainchecker/pkg/domain"
	"math"
	"strings"
	"time"
)

// MaxTrustScore is the upper bound of Score.
const MaxTrustScore = 10

const yearHours = 365.25 * 24

// Registrar reputation tiers, matched as lowercase substrings of the registrar name.
//
//nolint: gochecknoglobals
var (
	highReputationRegistrars = []string{
		"markmonitor", "csc corporate", "cscglobal", "com laude", "safenames",
		"cloudflare", "google", "amazon registrar", "gandi",
	}
	mediumReputationRegistrars = []string{
		"godaddy", "namecheap", "tucows", "name.com", "enom", "porkbun",
		"dynadot", "hover", "network solutions", "ionos", "ovh", "gname",
	}
)

// TrustParams are the registration attributes the trust score is derived from.
// Every field is optional.
type TrustParams struct {
	// AgeYears is the fractional age of the registration.
	AgeYears         *float64
	Registrar        string
	SecurityFeatures []string
	DNSSEC           string
	ExpiresAt        *time.Time
	UpdatedAt        *time.Time
}

// AgeYears returns the fractional number of years between created and now.
// Negative ages (clock skew, bogus data) are reported as zero.
func AgeYears(created, now time.Time) float64 {
	age := now.Sub(created).Hours() / yearHours
	if age < 0 {
		return 0
	}

	return age
}

// Score computes the 0..10 trust score. Missing attributes contribute nothing
// and the function never fails.
func Score(p TrustParams, now time.Time) int {
	score := 0

	if p.AgeYears != nil {
		if *p.AgeYears > 5 {
			score += 2
		}
		if *p.AgeYears > 10 {
			score++
		}
	}

	score += registrarPoints(p.Registrar)

	switch n := len(p.SecurityFeatures); {
	case n > 2:
		score += 2
	case n > 0:
		score++
	}

	if dnssec := strings.TrimSpace(p.DNSSEC); dnssec != "" && !strings.EqualFold(dnssec, "unsigned") {
		score++
	}

	if p.UpdatedAt != nil && now.Sub(*p.UpdatedAt) <= 365*24*time.Hour {
		score++
	}

	if p.ExpiresAt != nil && p.ExpiresAt.Sub(now) > 365*24*time.Hour {
		score++
	}

	return min(score, MaxTrustScore)
}

func registrarPoints(registrar string) int {
	name := strings.ToLower(registrar)
	if name == "" {
		return 0
	}
	for _, r := range highReputationRegistrars {
		if strings.Contains(name, r) {
			return 2
		}
	}
	for _, r := range mediumReputationRegistrars {
		if strings.Contains(name, r) {
			return 1
		}
	}

	return 0
}

// NewInsights derives the insights shown for a registered name.
func NewInsights(reg domain.Registration, now time.Time) domain.Insights {
	params := TrustParams{
		Registrar:        reg.Registrar,
		SecurityFeatures: reg.SecurityFeatures,
		DNSSEC:           reg.DNSSEC,
		ExpiresAt:        reg.ExpiresAt,
		UpdatedAt:        reg.UpdatedAt,
	}

	var insights domain.Insights
	if reg.CreatedAt != nil {
		age := AgeYears(*reg.CreatedAt, now)
		params.AgeYears = &age
		years := int(math.Floor(age))
		insights.DomainAgeYears = &years
	}

	score := Score(params, now)
	insights.TrustScore = &score
	insights.Registrar = reg.Registrar

	return insights
}
