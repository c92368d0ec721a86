package netwhois

import (
	"context"
	"domainchecker/pkg/whois"
	"errors"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// ianaServer is asked for the registry server of TLDs missing from the
// override and built-in tables.
const ianaServer = "whois.iana.org"

// errNoServer is returned when no registry server is known for a TLD.
var errNoServer = errors.New("no whois server found")

// defaultServers maps a public suffix or a bare TLD label to its registry
// WHOIS server.
var defaultServers = map[string]string{ //nolint: gochecknoglobals
	"ac":     "whois.nic.ac",
	"ae":     "whois.aeda.net.ae",
	"ai":     "whois.nic.ai",
	"app":    "whois.nic.google",
	"au":     "whois.auda.org.au",
	"com.au": "whois.auda.org.au",
	"biz":    "whois.biz",
	"ca":     "whois.cira.ca",
	"cc":     "ccwhois.verisign-grs.com",
	"cn":     "whois.cnnic.cn",
	"co":     "whois.nic.co",
	"co.uk":  "whois.nic.uk",
	"com":    "whois.verisign-grs.com",
	"de":     "whois.denic.de",
	"dev":    "whois.nic.google",
	"edu":    "whois.educause.edu",
	"fr":     "whois.nic.fr",
	"hk":     "whois.hkirc.hk",
	"info":   "whois.afilias.net",
	"io":     "whois.nic.io",
	"jp":     "whois.jprs.jp",
	"kr":     "whois.kr",
	"me":     "whois.nic.me",
	"mobi":   "whois.dotmobiregistry.net",
	"net":    "whois.verisign-grs.com",
	"org":    "whois.pir.org",
	"org.uk": "whois.nic.uk",
	"ru":     "whois.tcinet.ru",
	"sh":     "whois.nic.sh",
	"so":     "whois.nic.so",
	"store":  "whois.nic.store",
	"tv":     "tvwhois.verisign-grs.com",
	"uk":     "whois.nic.uk",
	"us":     "whois.nic.us",
	"xyz":    "whois.nic.xyz",
}

// suffixes returns the lookup keys for fqdn, most specific first: the public
// suffix ("co.uk") followed by the last label ("uk").
func suffixes(fqdn string) []string {
	label := fqdn
	if i := strings.LastIndexByte(fqdn, '.'); i >= 0 {
		label = fqdn[i+1:]
	}

	suffix, _ := publicsuffix.PublicSuffix(fqdn)
	if suffix == "" || suffix == label {
		return []string{label}
	}

	return []string{suffix, label}
}

// registryServer resolves the WHOIS server responsible for fqdn. Overrides win
// over the built-in table; IANA is only asked when neither knows the TLD and
// its answer is cached for the lifetime of the client.
func (c *Client) registryServer(ctx context.Context, fqdn string) (string, error) {
	keys := suffixes(fqdn)
	for _, table := range []map[string]string{c.servers, defaultServers} {
		for _, key := range keys {
			if server, ok := table[key]; ok && server != "" {
				return server, nil
			}
		}
	}

	label := keys[len(keys)-1]
	if cached, ok := c.referrals.Load(label); ok {
		return cached.(string), nil //nolint: forcetypeassert
	}

	text, err := c.query(ctx, label, ianaServer)
	if err != nil {
		return "", classify(fqdn, ianaServer, err)
	}

	record := ParseRecord(text)
	for _, field := range []string{"whois", "refer"} {
		if server, ok := record.First(field); ok && server != "" {
			server = strings.ToLower(server)
			c.referrals.Store(label, server)

			return server, nil
		}
	}

	return "", whois.NewLookupError(whois.FailureUnknown, fqdn, ianaServer, errNoServer)
}
