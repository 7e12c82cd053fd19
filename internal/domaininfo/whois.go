package domaininfo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
	"golang.org/x/net/publicsuffix"

	"github.com/hamed0406/footprint/internal/domain"
)

// Record is a parsed registration record. Dates are nil when the registry
// did not publish them or they could not be parsed.
type Record struct {
	DomainName     string
	Registrar      string
	CreationDate   *time.Time
	ExpirationDate *time.Time
	NameServers    []string
	Status         []string
	Emails         []string
	Organization   string
}

// Lookup fetches the registration record of a domain.
type Lookup interface {
	Lookup(ctx context.Context, domain string) (*Record, error)
}

var ErrNoData = errors.New("no whois data available")

// WhoisLookup queries WHOIS servers. The underlying client blocks, so each
// call runs on its own goroutine and is abandoned when ctx ends.
type WhoisLookup struct {
	client *whois.Client
}

func NewWhoisLookup(timeout time.Duration) *WhoisLookup {
	c := whois.NewClient()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &WhoisLookup{client: c}
}

func (w *WhoisLookup) Lookup(ctx context.Context, name string) (*Record, error) {
	name = RegistrableDomain(name)

	type reply struct {
		raw string
		err error
	}
	ch := make(chan reply, 1)
	go func() {
		raw, err := w.client.Whois(name)
		ch <- reply{raw, err}
	}()

	var r reply
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("whois %s: %w", name, ctx.Err())
	case r = <-ch:
	}
	if r.err != nil {
		return nil, fmt.Errorf("whois %s: %w", name, r.err)
	}
	if strings.TrimSpace(r.raw) == "" {
		return nil, ErrNoData
	}

	info, err := whoisparser.Parse(r.raw)
	if err != nil {
		return nil, fmt.Errorf("parse whois %s: %w", name, err)
	}
	return recordFromInfo(name, info), nil
}

func recordFromInfo(name string, info whoisparser.WhoisInfo) *Record {
	rec := &Record{DomainName: name}
	if d := info.Domain; d != nil {
		if d.Domain != "" {
			rec.DomainName = d.Domain
		}
		rec.NameServers = d.NameServers
		rec.Status = d.Status
		rec.CreationDate = parseDate(d.CreatedDate)
		rec.ExpirationDate = parseDate(d.ExpirationDate)
	}
	if r := info.Registrar; r != nil {
		rec.Registrar = r.Name
	}
	if r := info.Registrant; r != nil {
		rec.Organization = r.Organization
	}

	seen := map[string]bool{}
	for _, c := range []*whoisparser.Contact{info.Registrar, info.Registrant, info.Administrative, info.Technical} {
		if c == nil || c.Email == "" || seen[c.Email] {
			continue
		}
		seen[c.Email] = true
		rec.Emails = append(rec.Emails, c.Email)
	}
	return rec
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
	"2006.01.02",
	"02.01.2006",
}

func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// RegistrableDomain reduces a host such as mail.example.co.uk to the part a
// registry knows about (example.co.uk). Unknown suffixes are returned as is.
func RegistrableDomain(host string) string {
	host = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(host), "."))
	if d, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return d
	}
	return host
}

const (
	notAvailable = "N/A"
	dateLayout   = "January 02, 2006"
	failureNote  = "This is common for major email providers (Gmail, Yahoo, etc.)"
)

// Info converts a lookup result into the response shape. A failed lookup is
// reported in the Error field, never as an error.
func Info(name string, rec *Record, err error) domain.DomainInfo {
	if err != nil {
		return domain.DomainInfo{
			Error: "Could not retrieve WHOIS data: " + err.Error(),
			Note:  failureNote,
		}
	}
	if rec == nil {
		return domain.DomainInfo{Error: "No WHOIS data available"}
	}

	info := domain.DomainInfo{
		DomainName:     orDefault(rec.DomainName, name),
		Registrar:      orDefault(rec.Registrar, notAvailable),
		CreationDate:   formatDate(rec.CreationDate),
		ExpirationDate: formatDate(rec.ExpirationDate),
		NameServers:    nonNil(rec.NameServers),
		Status:         notAvailable,
		Emails:         nonNil(rec.Emails),
		Organization:   orDefault(rec.Organization, notAvailable),
	}
	if len(rec.Status) > 0 {
		info.Status = rec.Status[0]
	}
	return info
}

func formatDate(t *time.Time) string {
	if t == nil {
		return notAvailable
	}
	return t.Format(dateLayout)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
