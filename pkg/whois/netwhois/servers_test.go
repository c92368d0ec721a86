package netwhois

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuffixes(t *testing.T) {
	require.Equal(t, []string{"com"}, suffixes("example.com"))
	require.Equal(t, []string{"co.uk", "uk"}, suffixes("example.co.uk"))
	require.Equal(t, []string{"zzz"}, suffixes("example.zzz"))
}

func TestRegistryServer_precedence(t *testing.T) {
	c := New(Options{Servers: map[string]string{"COM": "Whois.Override.Test"}})

	server, err := c.registryServer(context.Background(), "example.com")
	require.NoError(t, err)
	require.Equal(t, "whois.override.test", server)

	server, err = c.registryServer(context.Background(), "example.co.uk")
	require.NoError(t, err)
	require.Equal(t, "whois.nic.uk", server)

	c.referrals.Store("zzz", "whois.nic.zzz")
	server, err = c.registryServer(context.Background(), "example.zzz")
	require.NoError(t, err)
	require.Equal(t, "whois.nic.zzz", server)
}
