// Package app assembles the search engine from configuration. It is shared
// by the API server and the CLI's in-process mode.
package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/hamed0406/footprint/internal/config"
	"github.com/hamed0406/footprint/internal/domaininfo"
	"github.com/hamed0406/footprint/internal/metrics"
	"github.com/hamed0406/footprint/internal/probe"
	"github.com/hamed0406/footprint/internal/search"
)

// NewSearchService builds a search.Service backed by real HTTP probes,
// WHOIS and DNS. Collectors are registered with reg when it is non-nil.
func NewSearchService(cfg config.Config, logger *zap.Logger, reg prometheus.Registerer) (*search.Service, error) {
	var m *metrics.Metrics
	if reg != nil {
		m = metrics.New(reg)
	}

	executor := probe.NewExecutor(logger, probe.NewHTTPChecker(), m, cfg.MaxConcurrent)
	return search.New(executor, domaininfo.NewWhoisLookup(cfg.WhoisTimeout),
		search.WithLogger(logger),
		search.WithMetrics(m),
		search.WithMailChecker(domaininfo.NewMailChecker()),
		search.WithWhoisTimeout(cfg.WhoisTimeout),
	)
}
