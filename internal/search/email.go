package search

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hamed0406/footprint/internal/confidence"
	"github.com/hamed0406/footprint/internal/domain"
	"github.com/hamed0406/footprint/internal/domaininfo"
	"github.com/hamed0406/footprint/internal/targets"
)

const (
	InvalidEmail = "Invalid email format"
	breachNote   = "Data breach checking requires an API key. Use https://haveibeenpwned.com to check manually."
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether s looks like a single email address.
func ValidEmail(s string) bool {
	return strings.Contains(s, "@") && emailPattern.MatchString(s)
}

// Email classifies the provider, then runs the WHOIS lookup, the MX check
// and the social fan-out for the local part concurrently. A malformed address
// yields a result carrying only Error and issues no network calls.
func (s *Service) Email(ctx context.Context, email string) (*domain.EmailResult, error) {
	if !ValidEmail(email) {
		return &domain.EmailResult{Error: InvalidEmail}, nil
	}
	username, host, _ := strings.Cut(email, "@")

	var (
		info     domain.DomainInfo
		mail     *domain.MailStatus
		accounts []domain.ProbeOutcome
	)

	var g errgroup.Group
	g.Go(func() error {
		info = s.domainInfo(ctx, host)
		return nil
	})
	if s.mail != nil {
		g.Go(func() error {
			st := s.mail.Check(ctx, host)
			mail = &st
			return nil
		})
	}
	g.Go(func() error {
		accounts = s.executor.RunAll(ctx, targets.Expand(username, targets.EmailPlatforms))
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &domain.EmailResult{
		Email:               email,
		Username:            username,
		Domain:              host,
		Provider:            Provider(host),
		DomainInformation:   &info,
		MailServers:         mail,
		SocialMediaAccounts: accounts,
		TotalSocialAccounts: confidence.TotalFound(accounts),
		Note:                breachNote,
	}
	s.logger.Info("search_completed",
		zap.String("type", string(domain.SearchEmail)),
		zap.String("provider", res.Provider),
		zap.Int("probed", len(accounts)),
		zap.Int("found", res.TotalSocialAccounts),
		zap.Bool("whois_ok", info.Error == ""),
	)
	return res, nil
}

func (s *Service) domainInfo(ctx context.Context, host string) domain.DomainInfo {
	ctx, cancel := context.WithTimeout(ctx, s.whoisTimeout)
	defer cancel()

	rec, err := s.whois.Lookup(ctx, host)
	if err != nil {
		s.logger.Debug("whois_failed", zap.String("domain", host), zap.Error(err))
	}
	return domaininfo.Info(host, rec, err)
}
