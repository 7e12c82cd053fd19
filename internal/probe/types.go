package probe

import (
	"context"

	"github.com/hamed0406/footprint/internal/domain"
)

// Checker performs one existence probe. Implementations must never panic or
// return without an outcome: every failure is folded into ProbeOutcome.
type Checker interface {
	Check(ctx context.Context, t domain.ProbeTarget) domain.ProbeOutcome
}

// result is the metrics/log label for an outcome.
func result(o domain.ProbeOutcome) string {
	switch {
	case o.Found:
		return "found"
	case o.Error != "":
		return string(o.Error)
	default:
		return "not_found"
	}
}
