package netwhois_test

import (
	"bufio"
	"context"
	"domainchecker/pkg/serrors"
	"domainchecker/pkg/whois"
	"domainchecker/pkg/whois/netwhois"
	"errors"
	"net"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const registeredResponse = `   Domain Name: EXAMPLE.TEST
   Registry Domain ID: 2336799_DOMAIN_TEST-VRSN
   Registrar WHOIS Server: whois.registrar.test
   Updated Date: 2024-08-14T07:01:34Z
   Creation Date: 1995-08-14T04:00:00Z
   Registry Expiry Date: 2030-08-13T04:00:00Z
   Registrar: Example Registrar, Inc.
   Domain Status: clientDeleteProhibited https://icann.org/epp#clientDeleteProhibited
   Domain Status: clientTransferProhibited https://icann.org/epp#clientTransferProhibited
   DNSSEC: signedDelegation
>>> Last update of whois database: 2025-01-01T00:00:00Z <<<
`

// fakeServer answers WHOIS queries from a fixed table and records every query.
type fakeServer struct {
	listener  net.Listener
	responses map[string]string
	// silent makes the server accept connections without ever answering.
	silent bool
	// delay is waited before every answer.
	delay time.Duration

	mu      sync.Mutex
	queries []string
}

func newFakeServer(t *testing.T, responses map[string]string) *fakeServer {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &fakeServer{listener: l, responses: responses}
	go s.serve()
	t.Cleanup(func() { _ = l.Close() })

	return s
}

func (s *fakeServer) serve() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		go func() {
			defer func() { _ = conn.Close() }()

			line, err := bufio.NewReader(conn).ReadString('\n')
			if err != nil {
				return
			}
			query := strings.TrimSpace(line)

			s.mu.Lock()
			s.queries = append(s.queries, query)
			silent, delay := s.silent, s.delay
			s.mu.Unlock()

			if silent {
				time.Sleep(2 * time.Second)

				return
			}
			time.Sleep(delay)
			_, _ = conn.Write([]byte(s.responses[query]))
		}()
	}
}

func (s *fakeServer) seen() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.queries...)
}

// redirectDialer sends every connection to the fake server and records the
// address the client wanted to reach.
type redirectDialer struct {
	target string
	err    error

	mu    sync.Mutex
	hosts []string
}

func (d *redirectDialer) Dial(network, addr string) (net.Conn, error) {
	host, _, _ := net.SplitHostPort(addr)
	d.mu.Lock()
	d.hosts = append(d.hosts, host)
	d.mu.Unlock()

	if d.err != nil {
		return nil, d.err
	}

	return net.Dial(network, d.target)
}

func newTestClient(t *testing.T, responses map[string]string) (*netwhois.Client, *fakeServer, *redirectDialer) {
	t.Helper()

	srv := newFakeServer(t, responses)
	dialer := &redirectDialer{target: srv.listener.Addr().String()}

	return netwhois.New(netwhois.Options{
		Timeout: time.Second,
		Servers: map[string]string{".test": "whois.nic.test"},
		Dialer:  dialer,
	}), srv, dialer
}

func TestClient_Lookup_registered(t *testing.T) {
	c, _, dialer := newTestClient(t, map[string]string{"example.test": registeredResponse})

	raw, err := c.Lookup(context.Background(), " Example.Test. ")
	require.NoError(t, err)
	require.Equal(t, []string{"whois.nic.test"}, raw.Servers())
	require.Equal(t, []string{"whois.nic.test"}, dialer.hosts)

	record := raw["whois.nic.test"]
	require.Equal(t, []string{"Example Registrar, Inc."}, record["Registrar"])
	require.Equal(t, []string{"1995-08-14T04:00:00Z"}, record["Creation Date"])
	require.Len(t, record["Domain Status"], 2)
}

func TestClient_Lookup_notFound(t *testing.T) {
	c, _, _ := newTestClient(t, map[string]string{
		"nope.test": "No match for \"NOPE.TEST\".\r\n>>> Last update of whois database: 2025-01-01T00:00:00Z <<<\r\n",
	})

	_, err := c.Lookup(context.Background(), "nope.test")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	kind, ok := whois.FailureOf(err)
	require.True(t, ok)
	require.Equal(t, whois.FailureNotFound, kind)
}

func TestClient_Lookup_rateLimited(t *testing.T) {
	c, _, _ := newTestClient(t, map[string]string{
		"busy.test": "Your query limit exceeded. Please try again later.\r\n",
	})

	_, err := c.Lookup(context.Background(), "busy.test")
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestClient_Lookup_ianaReferralIsCached(t *testing.T) {
	c, srv, dialer := newTestClient(t, map[string]string{
		"zzz":         "domain:       ZZZ\nrefer:        whois.nic.zzz\nwhois:        whois.nic.zzz\n",
		"example.zzz": registeredResponse,
		"other.zzz":   registeredResponse,
	})

	raw, err := c.Lookup(context.Background(), "example.zzz")
	require.NoError(t, err)
	require.Contains(t, raw, "whois.nic.zzz")

	_, err = c.Lookup(context.Background(), "other.zzz")
	require.NoError(t, err)

	require.Equal(t, []string{"zzz", "example.zzz", "other.zzz"}, srv.seen())
	require.Equal(t, []string{"whois.iana.org", "whois.nic.zzz", "whois.nic.zzz"}, dialer.hosts)
}

func TestClient_Lookup_timeout(t *testing.T) {
	c, srv, _ := newTestClient(t, nil)
	srv.mu.Lock()
	srv.silent = true
	srv.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := c.Lookup(ctx, "slow.test")
	require.ErrorIs(t, err, serrors.ErrTimeout)
}

func TestClient_Lookup_timeoutCoversReferral(t *testing.T) {
	srv := newFakeServer(t, map[string]string{
		"zzz":      "refer:        whois.nic.zzz\n",
		"slow.zzz": registeredResponse,
	})
	srv.mu.Lock()
	srv.delay = 200 * time.Millisecond
	srv.mu.Unlock()
	c := netwhois.New(netwhois.Options{
		Timeout: 300 * time.Millisecond,
		Dialer:  &redirectDialer{target: srv.listener.Addr().String()},
	})

	start := time.Now()
	_, err := c.Lookup(context.Background(), "slow.zzz")
	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.Less(t, time.Since(start), time.Second)
}

func TestClient_Lookup_unrecognizedErrorIsUnknown(t *testing.T) {
	c, _, dialer := newTestClient(t, nil)
	dialer.err = errors.New("connection timeout from proxy")

	_, err := c.Lookup(context.Background(), "odd.test")
	require.Error(t, err)

	kind, ok := whois.FailureOf(err)
	require.True(t, ok)
	require.Equal(t, whois.FailureUnknown, kind)
}

func TestClient_Lookup_network(t *testing.T) {
	c, _, dialer := newTestClient(t, nil)
	dialer.err = &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}

	_, err := c.Lookup(context.Background(), "down.test")
	require.ErrorIs(t, err, serrors.ErrNetwork)

	kind, _ := whois.FailureOf(err)
	require.True(t, kind.Transient())
}

func TestClient_Lookup_invalidName(t *testing.T) {
	c, _, _ := newTestClient(t, nil)

	_, err := c.Lookup(context.Background(), "localhost")
	require.Error(t, err)

	var lerr *whois.LookupError
	require.True(t, errors.As(err, &lerr))
	require.Equal(t, whois.FailureUnknown, lerr.Kind)
}
