package netwhois

import (
	"bufio"
	"domainchecker/pkg/whois"
	"errors"
	"strings"

	whoisparser "github.com/likexian/whois-parser"
)

// maxKeyLength separates "Field: value" lines from prose that happens to
// contain a colon (terms of use, notices).
const maxKeyLength = 48

// notFoundMarkers and rateLimitMarkers complement the whois-parser detection
// for registries that phrase their answers differently (lowercase match).
var (
	notFoundMarkers = []string{ //nolint: gochecknoglobals
		"no match for",
		"not found",
		"no entries found",
		"no data found",
		"object does not exist",
		"no objects found",
		"domain not found",
		"status: free",
		"available for registration",
		"this domain name has not been registered",
	}
	rateLimitMarkers = []string{ //nolint: gochecknoglobals
		"limit exceeded",
		"rate limit",
		"too many queries",
		"too many requests",
		"query limit",
		"try again later",
	}
)

// ParseRecord turns a raw WHOIS response into a Record.
//
// Supported layouts are "Key: value" lines, "[Key] value" lines and a key on
// its own line followed by indented values. Comment lines starting with %, #
// or >>> are skipped. Repeated keys accumulate their values in order.
func ParseRecord(text string) whois.Record {
	record := whois.Record{}
	pending := ""

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isComment(trimmed) {
			pending = ""

			continue
		}
		indented := len(line) != len(strings.TrimLeft(line, " \t"))

		key, value, ok := splitField(trimmed)
		switch {
		case ok && value == "":
			pending = key
		case ok:
			record[key] = append(record[key], value)
			pending = ""
		case pending != "" && indented:
			record[pending] = append(record[pending], trimmed)
		}
	}

	return record
}

// isComment reports whether a trimmed line is a comment or a banner.
func isComment(line string) bool {
	return strings.HasPrefix(line, "%") ||
		strings.HasPrefix(line, "#") ||
		strings.HasPrefix(line, ">>>")
}

// splitField splits "Key: value" and "[Key] value" lines.
func splitField(line string) (string, string, bool) {
	if strings.HasPrefix(line, "[") {
		end := strings.IndexByte(line, ']')
		if end <= 1 {
			return "", "", false
		}

		return strings.TrimSpace(line[1:end]), strings.TrimSpace(line[end+1:]), true
	}

	idx := strings.IndexByte(line, ':')
	if idx <= 0 || idx > maxKeyLength {
		return "", "", false
	}
	key := strings.TrimSpace(line[:idx])
	value := strings.TrimSpace(line[idx+1:])
	// a bare URL is not a field
	if strings.HasPrefix(value, "//") || strings.ContainsAny(key, "<>\"") {
		return "", "", false
	}

	return key, value, true
}

// detectFailure recognizes "no match" and "query limit" answers that servers
// send instead of a record.
func detectFailure(text string, record whois.Record) (whois.FailureKind, bool) {
	_, err := whoisparser.Parse(text)
	switch {
	case errors.Is(err, whoisparser.ErrDomainLimitExceed):
		return whois.FailureRateLimited, true
	case errors.Is(err, whoisparser.ErrNotFoundDomain):
		return whois.FailureNotFound, true
	}

	for key := range record {
		if strings.EqualFold(key, "domain name") || strings.EqualFold(key, "domain") {
			return whois.FailureUnknown, false
		}
	}

	lower := strings.ToLower(text)
	if containsAny(lower, rateLimitMarkers) {
		return whois.FailureRateLimited, true
	}
	if containsAny(lower, notFoundMarkers) {
		return whois.FailureNotFound, true
	}

	return whois.FailureUnknown, false
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}

	return false
}
