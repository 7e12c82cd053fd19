package domaininfo

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/hamed0406/footprint/internal/domain"
)

const (
	ClassAcceptsMail = "ACCEPTS_MAIL"
	ClassNoMX        = "NO_MX_RECORD" // no MX, but the host resolves (implicit MX)
	ClassNXDomain    = "NXDOMAIN"
	ClassServFail    = "SERVFAIL_or_TIMEOUT"
)

var mailTimeout = 3 * time.Second

// Resolver is the subset of *net.Resolver used here.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// MailChecker classifies whether an email domain can receive mail.
type MailChecker struct {
	Resolver Resolver
	Timeout  time.Duration
}

func NewMailChecker() *MailChecker {
	return &MailChecker{Resolver: &net.Resolver{}, Timeout: mailTimeout} // OS resolver
}

func (m *MailChecker) Check(ctx context.Context, name string) domain.MailStatus {
	s := domain.MailStatus{Domain: strings.TrimSpace(name)}

	ctx, cancel := context.WithTimeout(ctx, m.Timeout)
	defer cancel()

	mx, err := m.Resolver.LookupMX(ctx, s.Domain)
	if err == nil && len(mx) > 0 {
		for _, r := range mx {
			s.MXHosts = append(s.MXHosts, strings.TrimSuffix(r.Host, "."))
		}
		s.Class = ClassAcceptsMail
		return s
	}
	if err != nil {
		s.ResolverError = err.Error()
		var de *net.DNSError
		if errors.As(err, &de) && (de.IsTemporary || de.Timeout()) {
			s.Class = ClassServFail
			return s
		}
	}

	if hosts, err := m.Resolver.LookupHost(ctx, s.Domain); err == nil && len(hosts) > 0 {
		s.Class = ClassNoMX
		return s
	} else if err != nil {
		var de *net.DNSError
		if errors.As(err, &de) && !de.IsNotFound {
			s.Class = ClassServFail
			return s
		}
	}

	s.Class = ClassNXDomain
	return s
}
