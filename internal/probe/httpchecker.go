package probe

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/hamed0406/footprint/internal/domain"
)

// ProbeTimeout is the fixed total budget of one probe, redirects included.
const ProbeTimeout = 5 * time.Second

const (
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// maxDrainBytes is read from a response body so the connection can be reused.
	maxDrainBytes = 64 << 10
)

// HTTPChecker probes a profile URL with a GET. Client is shared by all
// concurrent calls.
type HTTPChecker struct {
	Client    *http.Client
	UserAgent string
}

func NewHTTPChecker() *HTTPChecker {
	return &HTTPChecker{
		Client: &http.Client{
			Timeout: ProbeTimeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: ProbeTimeout,
			},
		},
		UserAgent: DefaultUserAgent,
	}
}

func (h *HTTPChecker) Check(ctx context.Context, t domain.ProbeTarget) (out domain.ProbeOutcome) {
	out = t.Outcome()
	defer func() {
		if r := recover(); r != nil {
			out = t.Outcome()
			out.Error = domain.ErrorOther
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.URL, nil)
	if err != nil {
		out.Error = domain.ErrorOther
		return out
	}
	req.Header.Set("User-Agent", h.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := h.Client.Do(req)
	if err != nil {
		out.Error = classify(err)
		return out
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	status := resp.StatusCode
	out.StatusCode = &status
	out.Found = status == http.StatusOK
	return out
}

// classify maps a transport error to an ErrorKind.
func classify(err error) domain.ErrorKind {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return domain.ErrorTimeout
	}

	var (
		opErr   *net.OpError
		dnsErr  *net.DNSError
		certErr *tls.CertificateVerificationError
		hostErr x509.HostnameError
		recErr  tls.RecordHeaderError
	)
	switch {
	case errors.As(err, &opErr),
		errors.As(err, &dnsErr),
		errors.As(err, &certErr),
		errors.As(err, &hostErr),
		errors.As(err, &recErr),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return domain.ErrorNetwork
	}
	return domain.ErrorOther
}
