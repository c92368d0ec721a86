package checker_test

import (
	"domainchecker/internal/checker"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
		ok   bool
	}{
		{name: "trim and lowercase", in: "  Example ", out: "example", ok: true},
		{name: "surrounding dots", in: ".example.", out: "example", ok: true},
		{name: "multi label", in: "Shop.Example", out: "shop.example", ok: true},
		{name: "unicode to punycode", in: "Bücher", out: "xn--bcher-kva", ok: true},
		{name: "hyphen allowed inside", in: "my-shop", out: "my-shop", ok: true},
		{name: "empty", in: "   ", ok: false},
		{name: "space inside", in: "my shop", ok: false},
		{name: "leading hyphen", in: "-shop", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := checker.NormalizeName(tc.in)
			if !tc.ok {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.out, got)
		})
	}
}

func TestNormalizeExtension(t *testing.T) {
	for in, out := range map[string]string{
		"com":    ".com",
		".COM":   ".com",
		" .io ":  ".io",
		"co.uk":  ".co.uk",
		".store": ".store",
	} {
		got, err := checker.NormalizeExtension(in)
		require.NoError(t, err, in)
		require.Equal(t, out, got, in)
	}

	_, err := checker.NormalizeExtension(".")
	require.Error(t, err)
}

func TestNormalizeNames_dedupe(t *testing.T) {
	got, err := checker.NormalizeNames([]string{"Example", "", "other", " example ", "OTHER"})
	require.NoError(t, err)
	require.Equal(t, []string{"example", "other"}, got)

	_, err = checker.NormalizeNames([]string{"ok", "not ok"})
	require.Error(t, err)

	exts, err := checker.NormalizeExtensions([]string{"com", ".com", ".Net"})
	require.NoError(t, err)
	require.Equal(t, []string{".com", ".net"}, exts)
}
