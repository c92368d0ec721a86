package checker

import (
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

// NormalizeName returns the canonical ASCII form of a candidate domain name.
//
// Names are trimmed, lowercased and converted with the IDNA lookup profile, so
// "Bücher" becomes "xn--bcher-kva". Surrounding dots are removed. An empty
// result or a name that violates IDNA rules is an error.
func NormalizeName(raw string) (string, error) {
	name := strings.Trim(strings.ToLower(strings.TrimSpace(raw)), ".")
	if name == "" {
		return "", fmt.Errorf("empty domain name")
	}

	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return "", fmt.Errorf("invalid domain name %q: %w", raw, err)
	}

	return ascii, nil
}

// NormalizeExtension returns the canonical form of a TLD extension: trimmed,
// lowercased, IDNA converted and always starting with a single dot ("COM" and
// ".com" both become ".com").
func NormalizeExtension(raw string) (string, error) {
	label := strings.Trim(strings.ToLower(strings.TrimSpace(raw)), ".")
	if label == "" {
		return "", fmt.Errorf("empty TLD extension")
	}

	ascii, err := idna.Lookup.ToASCII(label)
	if err != nil {
		return "", fmt.Errorf("invalid TLD extension %q: %w", raw, err)
	}

	return "." + ascii, nil
}

// normalizeAll applies fn to every non-blank input, dropping duplicates while
// keeping the order of first occurrence.
func normalizeAll(inputs []string, fn func(string) (string, error)) ([]string, error) {
	out := make([]string, 0, len(inputs))
	seen := make(map[string]struct{}, len(inputs))
	for _, in := range inputs {
		if strings.TrimSpace(in) == "" {
			continue
		}

		v, err := fn(in)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out, nil
}

// NormalizeNames normalizes a list of domain names. Blank entries are dropped
// and duplicates collapse to their first occurrence.
func NormalizeNames(names []string) ([]string, error) {
	return normalizeAll(names, NormalizeName)
}

// NormalizeExtensions normalizes a list of TLD extensions. Blank entries are
// dropped and duplicates collapse to their first occurrence.
func NormalizeExtensions(extensions []string) ([]string, error) {
	return normalizeAll(extensions, NormalizeExtension)
}
