package checker

import (
	"context"
	"domainchecker/internal/config"
	"domainchecker/pkg/domain"
	"domainchecker/pkg/logger"
	"domainchecker/pkg/serrors"
	"domainchecker/pkg/storage"
	"domainchecker/pkg/whois"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	instrumentationName = "domainchecker/internal/checker"
	defaultConcurrency  = 1
)

// Options configure how batches are processed and how background jobs are enqueued.
// These settings are typically derived from application configuration.
type Options struct {
	// Concurrency is the number of pairs of one batch checked in parallel.
	Concurrency int
	// Throttle configures the process wide adaptive WHOIS rate.
	Throttle ThrottleOptions
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when processing a batch job.
	MaxAttempts int
	// UniqueJobPeriod is the window during which the same batch ID is enqueued once.
	UniqueJobPeriod time.Duration
	// Now returns the current time. Defaults to time.Now in UTC.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Concurrency: cfg.Checker.Concurrency,
		Throttle: ThrottleOptions{
			MinInterval:   cfg.Checker.MinInterval,
			MaxInterval:   cfg.Checker.MaxInterval,
			RecoverySteps: cfg.Checker.RecoverySteps,
		},
		MaxAttempts:     cfg.Checker.MaxAttempts,
		UniqueJobPeriod: cfg.Checker.UniqueJobPeriod,
	}
}

type pairKey struct {
	domainID domain.DomainID
	tldID    domain.TLDID
}

type instruments struct {
	pairs         metric.Int64Counter
	batchDuration metric.Float64Histogram
}

func newInstruments() instruments {
	meter := otel.Meter(instrumentationName)

	var ins instruments
	var err error
	ins.pairs, err = meter.Int64Counter("checker.pairs",
		metric.WithDescription("Number of checked domain and TLD pairs by outcome"))
	if err != nil {
		ins.pairs = noop.Int64Counter{}
	}
	ins.batchDuration, err = meter.Float64Histogram("checker.batch.duration",
		metric.WithDescription("Duration of a whole batch"),
		metric.WithUnit("s"))
	if err != nil {
		ins.batchDuration = noop.Float64Histogram{}
	}

	return ins
}

// checker is the concrete implementation of the Checker interface.
type checker struct {
	options  Options
	storage  storage.Storage
	whois    whois.Client
	throttle *Throttle

	pairs     *keyLocker[pairKey]
	resolving singleflight.Group

	tracer      trace.Tracer
	instruments instruments
}

// batch is a validated request with its reference data resolved.
type batch struct {
	id      domain.BatchID
	ownerID domain.OwnerID
	groupID string
	names   []string
	tlds    []domain.TLD

	mu      sync.Mutex
	domains map[string]*domain.Domain
}

// pairOutcome is what one pair contributes to the batch summary.
type pairOutcome struct {
	skipped      bool
	availability domain.Availability
	failed       bool
}

func tally(summary *domain.BatchSummary, o pairOutcome) {
	if o.skipped {
		return
	}

	summary.Total++
	switch o.availability {
	case domain.AvailabilityAvailable:
		summary.Available++
	case domain.AvailabilityUnavailable:
		summary.Unavailable++
	default:
		summary.Indeterminate++
	}
	if o.failed {
		summary.ErrorCount++
	}
}

// normalizeRequest checks the shape of req and returns its canonical form. A
// missing batch ID is generated.
func normalizeRequest(req domain.CheckRequest) (domain.CheckRequest, error) {
	if uuid.UUID(req.OwnerID) == uuid.Nil {
		return req, serrors.With(serrors.ErrBadRequest, "owner is required")
	}
	if req.GroupID == "" {
		return req, serrors.With(serrors.ErrBadRequest, "group is required")
	}

	names, err := NormalizeNames(req.Domains)
	if err != nil {
		return req, serrors.Wrap(serrors.ErrBadRequest, err, "invalid domains")
	}
	if len(names) == 0 {
		return req, serrors.With(serrors.ErrBadRequest, "at least one domain is required")
	}

	extensions, err := NormalizeExtensions(req.TLDs)
	if err != nil {
		return req, serrors.Wrap(serrors.ErrBadRequest, err, "invalid TLDs")
	}
	if len(extensions) == 0 {
		return req, serrors.With(serrors.ErrBadRequest, "at least one TLD is required")
	}

	req.Domains = names
	req.TLDs = extensions
	if req.BatchID == "" {
		req.BatchID = domain.BatchID(uuid.NewString())
	}

	return req, nil
}

// prepare validates req, resolves the TLD catalog (creating unknown extensions)
// and makes sure no requested name belongs to another owner.
func (c *checker) prepare(ctx context.Context, req domain.CheckRequest) (*batch, error) {
	req, err := normalizeRequest(req)
	if err != nil {
		return nil, err
	}

	b := &batch{
		id:      req.BatchID,
		ownerID: req.OwnerID,
		groupID: req.GroupID,
		names:   req.Domains,
		domains: make(map[string]*domain.Domain, len(req.Domains)),
	}

	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		known, err := tx.TLDsByExtensions(ctx, req.TLDs)
		if err != nil {
			return fmt.Errorf("could not get TLDs: %w", err)
		}
		byExtension := make(map[string]domain.TLD, len(known))
		for _, tld := range known {
			byExtension[tld.Extension] = tld
		}

		for _, ext := range req.TLDs {
			tld, ok := byExtension[ext]
			if !ok {
				created, err := tx.EnsureTLD(ctx, domain.NewUnknownTLD(ext))
				if err != nil {
					return fmt.Errorf("could not create TLD %s: %w", ext, err)
				}
				logger.Info(ctx, "created unknown TLD", zap.String("tld", ext))
				tld = *created
			}
			b.tlds = append(b.tlds, tld)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not resolve TLDs: %w", err)
	}

	existing, err := c.storage.DomainsByNames(ctx, req.GroupID, req.Domains)
	if err != nil {
		return nil, fmt.Errorf("could not get domains: %w", err)
	}
	for i := range existing {
		d := existing[i]
		if d.OwnerID != req.OwnerID {
			return nil, serrors.With(serrors.ErrForbidden, "domain %q belongs to another owner", d.Name)
		}
		b.domains[d.Name] = &d
	}

	return b, nil
}

// Run checks every pair of req on a bounded pool of goroutines. A failing pair
// is recorded as indeterminate and never aborts the batch.
func (c *checker) Run(ctx context.Context, req domain.CheckRequest) (*domain.BatchSummary, error) {
	b, err := c.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithFields(ctx, zap.String("batchID", string(b.id)))
	ctx, span := c.tracer.Start(ctx, "checker.Run", trace.WithAttributes(
		attribute.String("batch.id", string(b.id)),
		attribute.Int("batch.domains", len(b.names)),
		attribute.Int("batch.tlds", len(b.tlds)),
	))
	defer span.End()

	start := time.Now()
	logger.Info(ctx, "checking batch", zap.Int("pairs", len(b.names)*len(b.tlds)))

	var mu sync.Mutex
	summary := &domain.BatchSummary{BatchID: b.id}

	g := &errgroup.Group{}
	g.SetLimit(c.options.Concurrency)

outer:
	for _, name := range b.names {
		for _, tld := range b.tlds {
			if ctx.Err() != nil {
				break outer
			}

			g.Go(func() error {
				outcome := c.checkPair(ctx, b, name, tld)

				mu.Lock()
				tally(summary, outcome)
				mu.Unlock()

				return nil
			})
		}
	}
	_ = g.Wait()

	c.instruments.batchDuration.Record(ctx, time.Since(start).Seconds())
	span.SetAttributes(
		attribute.Int("batch.total", summary.Total),
		attribute.Int("batch.errors", summary.ErrorCount),
	)
	logger.Info(ctx, "batch checked",
		zap.Int("total", summary.Total),
		zap.Int("available", summary.Available),
		zap.Int("unavailable", summary.Unavailable),
		zap.Int("indeterminate", summary.Indeterminate),
		zap.Int("errorCount", summary.ErrorCount))

	if err := ctx.Err(); err != nil {
		return summary, fmt.Errorf("batch %s interrupted: %w", b.id, err)
	}

	return summary, nil
}

// resolveDomain returns the record for name, creating it on first use.
// Concurrent pairs of the same name share one storage round trip.
func (c *checker) resolveDomain(ctx context.Context, b *batch, name string) (*domain.Domain, error) {
	b.mu.Lock()
	d, ok := b.domains[name]
	b.mu.Unlock()
	if ok {
		return d, nil
	}

	key := b.ownerID.String() + "/" + b.groupID + "/" + name
	v, err, _ := c.resolving.Do(key, func() (any, error) {
		return c.storage.EnsureDomain(ctx, domain.Domain{
			OwnerID: b.ownerID,
			GroupID: b.groupID,
			Name:    name,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("could not ensure domain: %w", err)
	}

	d = v.(*domain.Domain) //nolint: forcetypeassert
	if d.OwnerID != b.ownerID {
		return nil, serrors.With(serrors.ErrForbidden, "domain %q belongs to another owner", name)
	}

	b.mu.Lock()
	b.domains[name] = d
	b.mu.Unlock()

	return d, nil
}

// recovered runs fn and turns a panic into an error.
func recovered(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()

	return fn()
}

// lookup waits for the throttle, queries WHOIS and reports the outcome back
// to the throttle.
func (c *checker) lookup(ctx context.Context, fqdn string) (whois.RawResult, error) {
	var raw whois.RawResult
	var lookupErr error
	if err := recovered(func() error {
		if err := c.throttle.Wait(ctx); err != nil {
			return err
		}
		raw, lookupErr = c.whois.Lookup(ctx, fqdn)
		c.throttle.Observe(lookupErr)

		return nil
	}); err != nil {
		return nil, err
	}

	return raw, lookupErr
}

func (c *checker) checkPair(ctx context.Context, b *batch, name string, tld domain.TLD) pairOutcome {
	if ctx.Err() != nil {
		return pairOutcome{skipped: true}
	}

	ctx = logger.WithFields(ctx, zap.String("domain", name), zap.String("tld", tld.Extension))
	fqdn := domain.FQDN(name, tld.Extension)

	var d *domain.Domain
	if err := recovered(func() error {
		var err error
		d, err = c.resolveDomain(ctx, b, name)

		return err
	}); err != nil {
		if ctx.Err() != nil {
			return pairOutcome{skipped: true}
		}
		// without a domain record there is no row the failure could be attached to
		logger.Error(ctx, "could not resolve domain", zap.Error(err))
		c.countPair(ctx, "error")

		return pairOutcome{availability: domain.AvailabilityIndeterminate, failed: true}
	}

	unlock := c.pairs.Lock(pairKey{domainID: d.ID, tldID: tld.ID})
	defer unlock()

	result := domain.CheckResult{
		DomainID:     d.ID,
		TLDID:        tld.ID,
		DomainName:   d.Name,
		TLDExtension: tld.Extension,
		FQDN:         fqdn,
		BatchID:      b.id,
	}

	raw, lookupErr := c.lookup(ctx, fqdn)
	if ctx.Err() != nil {
		// interrupted pairs keep their previous result
		return pairOutcome{skipped: true}
	}

	var cls Classification
	if err := recovered(func() error {
		cls = Classify(raw, lookupErr, c.options.Now())

		return nil
	}); err != nil {
		cls = Classification{Availability: domain.AvailabilityIndeterminate, Err: err, Unexpected: true}
	}

	result.IsAvailable = cls.Availability.IsAvailable()
	result.Registration = cls.Registration
	if cls.Insights != nil {
		result.TrustScore = cls.Insights.TrustScore
		result.DomainAge = cls.Insights.DomainAgeYears
		result.Registrar = cls.Insights.Registrar
	}
	if cls.Err != nil {
		result.Error = cls.Err.Error()
		if cls.Unexpected {
			logger.Error(ctx, "unexpected lookup failure", zap.Error(cls.Err))
		} else {
			logger.Warn(ctx, "lookup failed", zap.Error(cls.Err))
		}
	}
	result.CheckedAt = c.options.Now()

	if err := recovered(func() error {
		return c.storage.UpsertCheckResult(ctx, result)
	}); err != nil {
		logger.Error(ctx, "could not store check result", zap.Error(err))
		c.storeFallback(ctx, result, err)
		c.countPair(ctx, "error")

		return pairOutcome{availability: domain.AvailabilityIndeterminate, failed: true}
	}

	logger.Debug(ctx, "pair checked", zap.Stringer("availability", cls.Availability))
	if cls.Unexpected {
		c.countPair(ctx, "error")
	} else {
		c.countPair(ctx, cls.Availability.String())
	}

	return pairOutcome{availability: cls.Availability, failed: cls.Unexpected}
}

// storeFallback replaces the pair's result with an indeterminate one carrying
// cause. It is best effort: a second failure is only logged.
func (c *checker) storeFallback(ctx context.Context, result domain.CheckResult, cause error) {
	fallback := domain.CheckResult{
		DomainID:     result.DomainID,
		TLDID:        result.TLDID,
		DomainName:   result.DomainName,
		TLDExtension: result.TLDExtension,
		FQDN:         result.FQDN,
		CheckedAt:    c.options.Now(),
		BatchID:      result.BatchID,
		Error:        cause.Error(),
	}
	if err := recovered(func() error {
		return c.storage.UpsertCheckResult(ctx, fallback)
	}); err != nil {
		logger.Error(ctx, "could not store fallback result", zap.Error(err))
	}
}

func (c *checker) countPair(ctx context.Context, outcome string) {
	c.instruments.pairs.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// Enqueue validates req and schedules it as a background job. Submitting an
// identical request again while its job is known to the queue is a no-op that
// returns the same ID.
func (c *checker) Enqueue(ctx context.Context, req domain.CheckRequest) (domain.BatchID, error) {
	req, err := normalizeRequest(req)
	if err != nil {
		return "", err
	}

	inserted, err := c.storage.AddJob(ctx, JobArgs{
		BatchID:         req.BatchID,
		Request:         req,
		maxAttempts:     c.options.MaxAttempts,
		uniqueJobPeriod: c.options.UniqueJobPeriod,
	}, nil)
	if err != nil {
		return "", fmt.Errorf("could not add job: %w", err)
	}
	if !inserted {
		logger.Info(ctx, "batch already queued", zap.String("batchID", string(req.BatchID)))
	}

	return req.BatchID, nil
}

// BatchResults returns the results written by a batch. A batch without any
// result visible to the owner is reported as not found.
func (c *checker) BatchResults(ctx context.Context,
	ownerID domain.OwnerID,
	batchID domain.BatchID) ([]domain.CheckResult, error) {
	res, err := c.storage.CheckResultsByBatch(ctx, ownerID, batchID)
	if err != nil {
		return nil, fmt.Errorf("could not get batch results: %w", err)
	}
	if len(res) == 0 {
		return nil, serrors.With(serrors.ErrNotFound, "batch not found")
	}

	return res, nil
}

// DomainResults returns the latest results of a domain owned by ownerID.
func (c *checker) DomainResults(ctx context.Context,
	ownerID domain.OwnerID,
	domainID domain.DomainID) ([]domain.CheckResult, error) {
	d, err := c.storage.DomainByID(ctx, domainID)
	if err != nil {
		return nil, fmt.Errorf("could not get domain: %w", err)
	}
	if d == nil || d.OwnerID != ownerID {
		return nil, serrors.With(serrors.ErrNotFound, "domain not found")
	}

	res, err := c.storage.CheckResultsByDomain(ctx, ownerID, domainID)
	if err != nil {
		return nil, fmt.Errorf("could not get domain results: %w", err)
	}

	return res, nil
}

// GroupResults returns the latest results of the owner's domains in a group.
func (c *checker) GroupResults(ctx context.Context,
	ownerID domain.OwnerID,
	groupID string) ([]domain.CheckResult, error) {
	if groupID == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "group is required")
	}

	res, err := c.storage.CheckResultsByGroup(ctx, ownerID, groupID)
	if err != nil {
		return nil, fmt.Errorf("could not get group results: %w", err)
	}

	return res, nil
}

// IsValidationError reports whether err rejected a whole batch before any pair
// was processed. Such batches fail the same way on every retry.
func IsValidationError(err error) bool {
	return errors.Is(err, serrors.ErrBadRequest) || errors.Is(err, serrors.ErrForbidden)
}

// New creates a Checker backed by the provided storage and WHOIS client and
// configured with the given options.
func New(storage storage.Storage, client whois.Client, options Options) Checker {
	if options.Concurrency <= 0 {
		options.Concurrency = defaultConcurrency
	}
	if options.Now == nil {
		options.Now = func() time.Time { return time.Now().UTC() }
	}

	return &checker{
		options:     options,
		storage:     storage,
		whois:       client,
		throttle:    NewThrottle(options.Throttle),
		pairs:       newKeyLocker[pairKey](),
		tracer:      otel.Tracer(instrumentationName),
		instruments: newInstruments(),
	}
}
