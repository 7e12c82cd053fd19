// Package confidence ranks probe outcomes by how likely they are to belong
// to the person being searched.
package confidence

import "github.com/hamed0406/footprint/internal/domain"

const Note = "Profiles are grouped by likelihood of belonging to the same person. Professional profiles have higher confidence."

// Group partitions outcomes into tiers, first matching rule wins:
// professional platform => high, found => medium, otherwise low.
// Relative input order is kept inside each tier.
func Group(outcomes []domain.ProbeOutcome) domain.ConfidenceGroups {
	g := domain.ConfidenceGroups{
		High:   []domain.ProbeOutcome{},
		Medium: []domain.ProbeOutcome{},
		Low:    []domain.ProbeOutcome{},
		Note:   Note,
	}
	for _, o := range outcomes {
		switch {
		case o.Category == domain.CategoryProfessional:
			g.High = append(g.High, o)
		case o.Found:
			g.Medium = append(g.Medium, o)
		default:
			g.Low = append(g.Low, o)
		}
	}
	return g
}

// TotalFound counts outcomes with Found set.
func TotalFound(outcomes []domain.ProbeOutcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Found {
			n++
		}
	}
	return n
}
