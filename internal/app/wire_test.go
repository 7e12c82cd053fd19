package app

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/hamed0406/footprint/internal/config"
)

func TestNewSearchService(t *testing.T) {
	cfg := config.FromEnv()
	reg := prometheus.NewRegistry()

	svc, err := NewSearchService(cfg, zap.NewNop(), reg)
	if err != nil || svc == nil {
		t.Fatalf("NewSearchService: %v", err)
	}
	// collectors registered once; a second registration on the same registry must panic
	defer func() {
		if recover() == nil {
			t.Fatalf("expected duplicate registration to panic")
		}
	}()
	_, _ = NewSearchService(cfg, zap.NewNop(), reg)
}

func TestNewSearchService_NoMetrics(t *testing.T) {
	if _, err := NewSearchService(config.FromEnv(), zap.NewNop(), nil); err != nil {
		t.Fatalf("NewSearchService without registry: %v", err)
	}
}
