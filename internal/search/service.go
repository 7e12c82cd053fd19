package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/hamed0406/footprint/internal/confidence"
	"github.com/hamed0406/footprint/internal/domain"
	"github.com/hamed0406/footprint/internal/domaininfo"
	"github.com/hamed0406/footprint/internal/metrics"
	"github.com/hamed0406/footprint/internal/probe"
	"github.com/hamed0406/footprint/internal/targets"
)

const (
	defaultWhoisTimeout = 10 * time.Second
	tracerName          = "github.com/hamed0406/footprint/internal/search"
)

// MailChecker reports whether an email domain accepts mail.
type MailChecker interface {
	Check(ctx context.Context, name string) domain.MailStatus
}

// Service runs username, email and name searches.
type Service struct {
	logger       *zap.Logger
	executor     *probe.Executor
	whois        domaininfo.Lookup
	mail         MailChecker
	metrics      *metrics.Metrics
	tracer       trace.Tracer
	now          func() time.Time
	whoisTimeout time.Duration
}

type Option func(*Service)

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithMailChecker enables the MX check of email domains.
func WithMailChecker(m MailChecker) Option {
	return func(s *Service) { s.mail = m }
}

// WithClock overrides the clock used for response timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithWhoisTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.whoisTimeout = d
		}
	}
}

func New(executor *probe.Executor, whois domaininfo.Lookup, opts ...Option) (*Service, error) {
	if executor == nil {
		return nil, errors.New("probe executor is required")
	}
	if whois == nil {
		return nil, errors.New("whois lookup is required")
	}
	s := &Service{
		logger:       zap.NewNop(),
		executor:     executor,
		whois:        whois,
		tracer:       otel.Tracer(tracerName),
		now:          time.Now,
		whoisTimeout: defaultWhoisTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Search validates req, dispatches it to the matching orchestrator and wraps
// the result. Validation problems come back as *ValidationError; anything
// else wraps ErrUnexpected.
func (s *Service) Search(ctx context.Context, req domain.SearchRequest) (resp *domain.SearchResponse, err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "search."+string(req.Type),
		trace.WithAttributes(attribute.String("search.type", string(req.Type))))
	defer func() {
		if r := recover(); r != nil {
			resp, err = nil, fmt.Errorf("%w: panic: %v", ErrUnexpected, r)
		}
		status := "ok"
		switch {
		case IsValidation(err):
			status = "invalid"
		case err != nil:
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, "search failed")
		}
		s.metrics.ObserveSearch(string(req.Type), status, time.Since(start))
		span.End()
	}()

	var (
		query   string
		results any
	)
	switch req.Type {
	case domain.SearchUsername:
		if req.Query == "" {
			return nil, invalid("Query is required for username search")
		}
		query = req.Query
		results, err = s.Username(ctx, req.Query)
	case domain.SearchEmail:
		if req.Query == "" {
			return nil, invalid("Query is required for email search")
		}
		query = req.Query
		results, err = s.Email(ctx, req.Query)
	case domain.SearchName:
		if req.FirstName == "" || req.LastName == "" {
			return nil, invalid("First name and last name are required for name search")
		}
		query = req.FirstName + " " + req.LastName
		results, err = s.Name(ctx, req.FirstName, req.LastName)
	default:
		return nil, invalid("Invalid search type")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s search: %w", ErrUnexpected, req.Type, err)
	}

	return &domain.SearchResponse{
		Query:     query,
		Type:      req.Type,
		Results:   results,
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}, nil
}

// Username probes every platform in targets.UsernamePlatforms and keeps all
// outcomes.
func (s *Service) Username(ctx context.Context, username string) (*domain.UsernameResult, error) {
	outcomes := s.executor.RunAll(ctx, targets.Expand(username, targets.UsernamePlatforms))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &domain.UsernameResult{
		SocialMedia: outcomes,
		TotalFound:  confidence.TotalFound(outcomes),
	}
	s.logger.Info("search_completed",
		zap.String("type", string(domain.SearchUsername)),
		zap.Int("probed", len(outcomes)),
		zap.Int("found", res.TotalFound),
	)
	return res, nil
}
