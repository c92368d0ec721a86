// Package netwhois provides a whois.Client implementation that talks to
// registry WHOIS servers over TCP port 43.
package netwhois

import (
	"context"
	"domainchecker/pkg/metrics"
	"domainchecker/pkg/whois"
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"syscall"
	"time"

	likewhois "github.com/likexian/whois"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/proxy"
)

// Options configure the WHOIS transport.
type Options struct {
	// Timeout bounds a whole lookup, the IANA referral included.
	Timeout time.Duration
	// Servers overrides the registry server per public suffix or TLD label,
	// e.g. {"com": "whois.verisign-grs.com"}.
	Servers map[string]string
	// Dialer replaces the default TCP dialer (proxies, tests).
	Dialer proxy.Dialer
}

// Client queries the registry WHOIS server of a name and never follows
// registrar referrals. It is safe for concurrent use.
type Client struct {
	client  *likewhois.Client
	servers map[string]string
	// referrals caches registry servers learned from IANA by TLD label.
	referrals sync.Map
	timeout   time.Duration
	tracer    trace.Tracer
}

// Lookup implements whois.Client.
func (c *Client) Lookup(ctx context.Context, fqdn string) (whois.RawResult, error) {
	fqdn = strings.ToLower(strings.Trim(strings.TrimSpace(fqdn), "."))
	if !strings.Contains(fqdn, ".") {
		return nil, whois.NewLookupError(whois.FailureUnknown, fqdn, "", errors.New("not a fully-qualified name"))
	}

	ctx, span := c.tracer.Start(ctx, "whois.Lookup",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("whois.fqdn", fqdn)))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	raw, err := c.lookup(ctx, fqdn)

	outcome := "ok"
	if err != nil {
		kind, _ := whois.FailureOf(err)
		outcome = kind.String()
		span.RecordError(err)
		if kind != whois.FailureNotFound {
			span.SetStatus(codes.Error, outcome)
		}
	}
	span.SetAttributes(attribute.String("whois.outcome", outcome))
	metrics.WhoisLookups.WithLabelValues(outcome).Inc()
	metrics.WhoisLookupDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	return raw, err
}

func (c *Client) lookup(ctx context.Context, fqdn string) (whois.RawResult, error) {
	server, err := c.registryServer(ctx, fqdn)
	if err != nil {
		return nil, err
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("whois.server", server))

	text, err := c.query(ctx, fqdn, server)
	if err != nil {
		return nil, classify(fqdn, server, err)
	}
	if strings.TrimSpace(text) == "" {
		return whois.RawResult{}, nil
	}

	record := ParseRecord(text)
	if kind, ok := detectFailure(text, record); ok {
		return nil, whois.NewLookupError(kind, fqdn, server, nil)
	}

	return whois.RawResult{server: record}, nil
}

// query runs a blocking library call so that ctx cancellation is honored even
// while the connection is still waiting on the server.
func (c *Client) query(ctx context.Context, name, server string) (string, error) {
	type response struct {
		text string
		err  error
	}
	ch := make(chan response, 1)
	go func() {
		text, err := c.client.Whois(name, server)
		ch <- response{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err() //nolint: wrapcheck
	case res := <-ch:
		return res.text, res.err
	}
}

// classify maps a transport error to the closed failure taxonomy.
func classify(fqdn, server string, err error) *whois.LookupError {
	var (
		lerr   *whois.LookupError
		netErr net.Error
		opErr  *net.OpError
		dnsErr *net.DNSError
	)

	kind := whois.FailureUnknown
	switch {
	case errors.As(err, &lerr):
		return lerr
	case errors.Is(err, context.DeadlineExceeded):
		kind = whois.FailureTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = whois.FailureTimeout
	case errors.As(err, &opErr), errors.As(err, &dnsErr),
		errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, syscall.ECONNREFUSED), errors.Is(err, syscall.ECONNRESET):
		kind = whois.FailureNetwork
	}

	return whois.NewLookupError(kind, fqdn, server, err)
}

// Ensure Client conforms to the whois.Client interface at compile time.
var _ whois.Client = (*Client)(nil)

// DefaultTimeout is used when Options.Timeout is not set.
const DefaultTimeout = 10 * time.Second

// New constructs a Client from the given options.
func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	client := likewhois.NewClient().
		SetTimeout(opts.Timeout).
		SetDisableReferral(true)
	if opts.Dialer != nil {
		client.SetDialer(opts.Dialer)
	}

	servers := make(map[string]string, len(opts.Servers))
	for k, v := range opts.Servers {
		servers[strings.ToLower(strings.TrimPrefix(k, "."))] = strings.ToLower(v)
	}

	return &Client{
		client:  client,
		servers: servers,
		timeout: opts.Timeout,
		tracer:  otel.Tracer("domainchecker/pkg/whois/netwhois"),
	}
}
