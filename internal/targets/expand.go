package targets

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hamed0406/footprint/internal/domain"
)

const (
	// MaxProbedVariants bounds name-search fan-out to 3 variants per table.
	MaxProbedVariants = 3
	// MaxReportedVariants is how many variants a name result lists.
	MaxReportedVariants = 8
)

// Expand builds one target per platform in t for username.
func Expand(username string, t Table) []domain.ProbeTarget {
	out := make([]domain.ProbeTarget, 0, len(t))
	for _, p := range t {
		out = append(out, domain.ProbeTarget{
			Platform: p.Name,
			URL:      p.URL(username),
			Username: username,
			Category: p.Category,
		})
	}
	return out
}

// ExpandVariants builds one wave of targets per variant, using at most
// MaxProbedVariants variants.
func ExpandVariants(variants []string, t Table) [][]domain.ProbeTarget {
	if len(variants) > MaxProbedVariants {
		variants = variants[:MaxProbedVariants]
	}
	waves := make([][]domain.ProbeTarget, 0, len(variants))
	for _, v := range variants {
		waves = append(waves, Expand(v, t))
	}
	return waves
}

var lower = cases.Lower(language.Und)

// Variants derives username candidates from a first and last name. The
// result has no duplicates and keeps the order of first appearance.
// Empty names are not rejected here.
func Variants(firstName, lastName string) []string {
	first := lower.String(firstName)
	last := lower.String(lastName)
	fi, li := initial(first), initial(last)

	candidates := []string{
		first + last,
		first + "." + last,
		first + "_" + last,
		first + "-" + last,
		fi + last,
		first + li,
		last + first,
		last + "." + first,
	}

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func initial(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// FullName joins the two names the way results and search queries show them.
func FullName(firstName, lastName string) string {
	return strings.TrimSpace(firstName + " " + lastName)
}
