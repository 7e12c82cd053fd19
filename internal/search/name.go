package search

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hamed0406/footprint/internal/confidence"
	"github.com/hamed0406/footprint/internal/domain"
	"github.com/hamed0406/footprint/internal/targets"
)

// Name derives username variants from the two names and probes the first
// targets.MaxProbedVariants of them against the social and professional
// tables concurrently. Only found profiles are kept and grouped.
func (s *Service) Name(ctx context.Context, firstName, lastName string) (*domain.NameResult, error) {
	fullName := targets.FullName(firstName, lastName)
	variants := targets.Variants(firstName, lastName)

	var (
		social       []domain.ProbeOutcome
		professional []domain.ProbeOutcome
		records      domain.PublicRecords
	)

	var g errgroup.Group
	g.Go(func() error {
		social = s.executor.RunWaves(ctx, targets.ExpandVariants(variants, targets.SocialPlatforms), true)
		return nil
	})
	g.Go(func() error {
		professional = s.executor.RunWaves(ctx, targets.ExpandVariants(variants, targets.ProfessionalPlatforms), true)
		return nil
	})
	g.Go(func() error {
		records = PublicRecordURLs(fullName)
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all := make([]domain.ProbeOutcome, 0, len(social)+len(professional))
	all = append(all, social...)
	all = append(all, professional...)

	reported := variants
	if len(reported) > targets.MaxReportedVariants {
		reported = reported[:targets.MaxReportedVariants]
	}

	res := &domain.NameResult{
		FirstName:            firstName,
		LastName:             lastName,
		FullName:             fullName,
		UsernameVariations:   reported,
		SocialProfiles:       social,
		ProfessionalProfiles: professional,
		PublicRecords:        records,
		GroupedProfiles:      confidence.Group(all),
		TotalProfilesFound:   len(all),
		SearchQueries:        SearchQueries(fullName),
	}
	s.logger.Info("search_completed",
		zap.String("type", string(domain.SearchName)),
		zap.Int("variants", len(variants)),
		zap.Int("found", res.TotalProfilesFound),
	)
	return res, nil
}
