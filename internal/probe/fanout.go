package probe

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hamed0406/footprint/internal/domain"
	"github.com/hamed0406/footprint/internal/metrics"
)

// Executor runs a batch of probes concurrently and returns one outcome per
// target, index-aligned with the input.
type Executor struct {
	Logger  *zap.Logger
	Checker Checker
	Metrics *metrics.Metrics
	// Limit caps in-flight probes per batch; 0 means one goroutine per target.
	Limit int
}

func NewExecutor(logger *zap.Logger, checker Checker, m *metrics.Metrics, limit int) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if limit < 0 {
		limit = 0
	}
	return &Executor{
		Logger:  logger,
		Checker: checker,
		Metrics: m,
		Limit:   limit,
	}
}

// RunAll probes every target and waits for all of them. A failing probe never
// cancels its siblings: workers always return nil and there is no shared
// group context.
func (e *Executor) RunAll(ctx context.Context, targets []domain.ProbeTarget) []domain.ProbeOutcome {
	out := make([]domain.ProbeOutcome, len(targets))
	if len(targets) == 0 {
		return out
	}
	e.Metrics.ObserveFanOut(len(targets))

	var g errgroup.Group
	if e.Limit > 0 {
		g.SetLimit(e.Limit)
	}
	for i, t := range targets {
		g.Go(func() error {
			out[i] = e.probe(ctx, t)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// RunWaves runs each wave with RunAll, one wave after another, and flattens
// the outcomes. With foundOnly set, outcomes with Found=false are dropped.
func (e *Executor) RunWaves(ctx context.Context, waves [][]domain.ProbeTarget, foundOnly bool) []domain.ProbeOutcome {
	out := make([]domain.ProbeOutcome, 0)
	for _, wave := range waves {
		for _, o := range e.RunAll(ctx, wave) {
			if foundOnly && !o.Found {
				continue
			}
			out = append(out, o)
		}
	}
	return out
}

func (e *Executor) probe(ctx context.Context, t domain.ProbeTarget) (out domain.ProbeOutcome) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			e.Logger.Error("probe_panic",
				zap.String("platform", t.Platform),
				zap.String("url", t.URL),
				zap.Any("panic", r),
			)
			out = t.Outcome()
			out.Error = domain.ErrorOther
		}
		res := result(out)
		e.Metrics.ObserveProbe(t.Platform, res, time.Since(start))
		e.Logger.Debug("probe_checked",
			zap.String("platform", t.Platform),
			zap.String("url", t.URL),
			zap.String("result", res),
			zap.Duration("elapsed", time.Since(start)),
		)
	}()
	return e.Checker.Check(ctx, t)
}
