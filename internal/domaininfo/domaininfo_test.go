package domaininfo

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	whoisparser "github.com/likexian/whois-parser"

	"github.com/hamed0406/footprint/internal/domain"
)

type fakeResolver struct {
	mx      []*net.MX
	mxErr   error
	hosts   []string
	hostErr error
}

func (f *fakeResolver) LookupMX(context.Context, string) ([]*net.MX, error) { return f.mx, f.mxErr }
func (f *fakeResolver) LookupHost(context.Context, string) ([]string, error) {
	return f.hosts, f.hostErr
}

func TestMailChecker_Classes(t *testing.T) {
	notFound := &net.DNSError{Err: "no such host", Name: "x", IsNotFound: true}
	temp := &net.DNSError{Err: "server misbehaving", Name: "x", IsTemporary: true}

	cases := []struct {
		name string
		r    *fakeResolver
		want string
	}{
		{"mx", &fakeResolver{mx: []*net.MX{{Host: "mx1.example.com.", Pref: 10}}}, ClassAcceptsMail},
		{"a only", &fakeResolver{mxErr: notFound, hosts: []string{"192.0.2.1"}}, ClassNoMX},
		{"nx", &fakeResolver{mxErr: notFound, hostErr: notFound}, ClassNXDomain},
		{"temporary", &fakeResolver{mxErr: temp}, ClassServFail},
	}
	for _, c := range cases {
		m := &MailChecker{Resolver: c.r, Timeout: time.Second}
		got := m.Check(context.Background(), "example.com")
		if got.Class != c.want {
			t.Fatalf("%s: want %s got %s", c.name, c.want, got.Class)
		}
	}

	m := &MailChecker{Resolver: cases[0].r, Timeout: time.Second}
	got := m.Check(context.Background(), "example.com")
	if len(got.MXHosts) != 1 || got.MXHosts[0] != "mx1.example.com" {
		t.Fatalf("mx hosts not trimmed: %v", got.MXHosts)
	}
}

func TestRegistrableDomain(t *testing.T) {
	cases := map[string]string{
		"gmail.com":          "gmail.com",
		"mail.example.co.uk": "example.co.uk",
		"Example.COM.":       "example.com",
	}
	for in, want := range cases {
		if got := RegistrableDomain(in); got != want {
			t.Fatalf("RegistrableDomain(%q)=%q want %q", in, got, want)
		}
	}
}

func TestRecordFromInfo(t *testing.T) {
	info := whoisparser.WhoisInfo{
		Domain: &whoisparser.Domain{
			Domain:         "example.com",
			Status:         []string{"clientTransferProhibited", "serverDeleteProhibited"},
			NameServers:    []string{"a.iana-servers.net", "b.iana-servers.net"},
			CreatedDate:    "1995-08-14T04:00:00Z",
			ExpirationDate: "not a date",
		},
		Registrar:  &whoisparser.Contact{Name: "RESERVED-Internet Assigned Numbers Authority", Email: "abuse@iana.org"},
		Registrant: &whoisparser.Contact{Organization: "Internet Assigned Numbers Authority", Email: "abuse@iana.org"},
	}
	rec := recordFromInfo("example.com", info)
	if rec.Registrar == "" || rec.Organization != "Internet Assigned Numbers Authority" {
		t.Fatalf("contacts not mapped: %+v", rec)
	}
	if len(rec.Emails) != 1 {
		t.Fatalf("emails should be de-duplicated, got %v", rec.Emails)
	}
	if rec.CreationDate == nil || rec.ExpirationDate != nil {
		t.Fatalf("date parsing wrong: %+v", rec)
	}

	di := Info("example.com", rec, nil)
	if di.CreationDate != "August 14, 1995" {
		t.Fatalf("want formatted date, got %q", di.CreationDate)
	}
	if di.ExpirationDate != "N/A" {
		t.Fatalf("want N/A, got %q", di.ExpirationDate)
	}
	if di.Status != "clientTransferProhibited" {
		t.Fatalf("want first status, got %q", di.Status)
	}
}

func TestInfo_Failure(t *testing.T) {
	di := Info("gmail.com", nil, errors.New("connection refused"))
	if di.Error != "Could not retrieve WHOIS data: connection refused" {
		t.Fatalf("unexpected error text %q", di.Error)
	}
	if di.Note == "" || di.Registrar != "" {
		t.Fatalf("failure info should only carry error and note: %+v", di)
	}
}

func TestInfo_Defaults(t *testing.T) {
	di := Info("example.org", &Record{}, nil)
	want := domain.DomainInfo{
		DomainName:     "example.org",
		Registrar:      "N/A",
		CreationDate:   "N/A",
		ExpirationDate: "N/A",
		NameServers:    []string{},
		Status:         "N/A",
		Emails:         []string{},
		Organization:   "N/A",
	}
	if di.DomainName != want.DomainName || di.Registrar != want.Registrar ||
		di.Status != want.Status || di.Organization != want.Organization ||
		di.CreationDate != want.CreationDate || len(di.NameServers) != 0 || di.NameServers == nil {
		t.Fatalf("defaults wrong:\nwant=%+v\ngot =%+v", want, di)
	}
}

func TestWhoisLookup_ContextCancelled(t *testing.T) {
	w := NewWhoisLookup(time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// The WHOIS goroutine may still be dialing; Lookup must return on ctx.
	_, err := w.Lookup(ctx, "example.invalid")
	if err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}
