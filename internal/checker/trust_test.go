package checker_test

import (
	"domainchecker/internal/checker"
	"domainchecker/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestScore_criteria(t *testing.T) {
	now := date(2025, 1, 1)

	tests := []struct {
		name   string
		params checker.TrustParams
		want   int
	}{
		{name: "nothing known", params: checker.TrustParams{}, want: 0},
		{name: "age 4", params: checker.TrustParams{AgeYears: ptr(4.0)}, want: 0},
		{name: "age 6", params: checker.TrustParams{AgeYears: ptr(6.0)}, want: 2},
		{name: "age 10 exactly", params: checker.TrustParams{AgeYears: ptr(10.0)}, want: 2},
		{name: "age 11", params: checker.TrustParams{AgeYears: ptr(11.0)}, want: 3},
		{name: "high registrar", params: checker.TrustParams{Registrar: "MarkMonitor Inc."}, want: 2},
		{name: "medium registrar", params: checker.TrustParams{Registrar: "GoDaddy.com, LLC"}, want: 1},
		{name: "unknown registrar", params: checker.TrustParams{Registrar: "Tiny Registrar"}, want: 0},
		{name: "one flag", params: checker.TrustParams{SecurityFeatures: []string{"a"}}, want: 1},
		{name: "two flags", params: checker.TrustParams{SecurityFeatures: []string{"a", "b"}}, want: 1},
		{name: "three flags", params: checker.TrustParams{SecurityFeatures: []string{"a", "b", "c"}}, want: 2},
		{name: "dnssec signed", params: checker.TrustParams{DNSSEC: "signedDelegation"}, want: 1},
		{name: "dnssec unsigned", params: checker.TrustParams{DNSSEC: "Unsigned"}, want: 0},
		{name: "recently updated", params: checker.TrustParams{UpdatedAt: ptr(date(2024, 6, 1))}, want: 1},
		{name: "stale update", params: checker.TrustParams{UpdatedAt: ptr(date(2020, 6, 1))}, want: 0},
		{name: "long runway", params: checker.TrustParams{ExpiresAt: ptr(date(2027, 1, 1))}, want: 1},
		{name: "short runway", params: checker.TrustParams{ExpiresAt: ptr(date(2025, 6, 1))}, want: 0},
		{
			name: "everything clamps to 10",
			params: checker.TrustParams{
				AgeYears:         ptr(30.0),
				Registrar:        "MarkMonitor",
				SecurityFeatures: []string{"a", "b", "c"},
				DNSSEC:           "signedDelegation",
				UpdatedAt:        ptr(date(2024, 12, 1)),
				ExpiresAt:        ptr(date(2030, 1, 1)),
			},
			want: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, checker.Score(tt.params, now))
		})
	}
}

func TestScore_boundsAndMonotonicity(t *testing.T) {
	now := date(2025, 1, 1)
	registrars := []string{"", "GoDaddy", "MarkMonitor", "other"}
	features := [][]string{nil, {"a"}, {"a", "b", "c", "d"}}
	dnssec := []string{"", "unsigned", "signed"}

	for _, r := range registrars {
		for _, f := range features {
			for _, d := range dnssec {
				base := checker.TrustParams{
					Registrar:        r,
					SecurityFeatures: f,
					DNSSEC:           d,
					UpdatedAt:        ptr(date(2024, 12, 1)),
					ExpiresAt:        ptr(date(2030, 1, 1)),
				}
				for age := 0.0; age <= 40; age += 0.5 {
					p := base
					p.AgeYears = ptr(age)
					s := checker.Score(p, now)
					require.GreaterOrEqual(t, s, 0)
					require.LessOrEqual(t, s, checker.MaxTrustScore)
				}

				young, old := base, base
				young.AgeYears = ptr(4.0)
				old.AgeYears = ptr(6.0)
				require.GreaterOrEqual(t, checker.Score(old, now), checker.Score(young, now))
			}
		}
	}
}

func TestNewInsights_scenario(t *testing.T) {
	reg := domain.Registration{CreatedAt: ptr(date(2015, 1, 1)), Registrar: "GoDaddy"}

	insights := checker.NewInsights(reg, date(2025, 1, 1))
	require.Equal(t, 10, *insights.DomainAgeYears)
	require.Equal(t, 4, *insights.TrustScore, "+2 age>5, +1 age>10, +1 medium registrar")
	require.Equal(t, "GoDaddy", insights.Registrar)

	none := checker.NewInsights(domain.Registration{}, date(2025, 1, 1))
	require.Nil(t, none.DomainAgeYears)
	require.Equal(t, 0, *none.TrustScore)
}

func TestAgeYears(t *testing.T) {
	require.InDelta(t, 1.0, checker.AgeYears(date(2024, 1, 1), date(2025, 1, 1)), 0.01)
	require.Zero(t, checker.AgeYears(date(2026, 1, 1), date(2025, 1, 1)))
	require.Greater(t, checker.AgeYears(date(2015, 1, 1), date(2025, 1, 1)), 10.0)
	require.Less(t, checker.AgeYears(date(2015, 1, 1), date(2025, 1, 1)), 11.0)
}
