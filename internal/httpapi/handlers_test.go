package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hamed0406/footprint/internal/domain"
	"github.com/hamed0406/footprint/internal/domaininfo"
	"github.com/hamed0406/footprint/internal/metrics"
	"github.com/hamed0406/footprint/internal/probe"
	"github.com/hamed0406/footprint/internal/search"
)

// ---- test helpers ----

// githubOnly finds profiles on github and nowhere else.
type githubOnly struct{}

func (githubOnly) Check(_ context.Context, t domain.ProbeTarget) domain.ProbeOutcome {
	out := t.Outcome()
	code := 404
	if t.Platform == "github" {
		code = 200
		out.Found = true
	}
	out.StatusCode = &code
	return out
}

type noWhois struct{}

func (noWhois) Lookup(context.Context, string) (*domaininfo.Record, error) {
	return nil, errors.New("whois disabled in tests")
}

type failingSearcher struct{ err error }

func (f failingSearcher) Search(context.Context, domain.SearchRequest) (*domain.SearchResponse, error) {
	return nil, f.err
}

func setupRouter(t *testing.T, s Searcher, log *zap.Logger) http.Handler {
	t.Helper()
	if log == nil {
		log = zap.NewNop()
	}
	reg := prometheus.NewRegistry()
	if s == nil {
		exec := probe.NewExecutor(log, githubOnly{}, metrics.New(reg), 0)
		svc, err := search.New(exec, noWhois{},
			search.WithLogger(log),
			search.WithClock(func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }),
		)
		if err != nil {
			t.Fatalf("search.New: %v", err)
		}
		s = svc
	}
	srv := NewServer(log, s, reg)

	// very high rate limits to avoid flakiness in tests
	return srv.Router([]string{"http://localhost:3000"}, 10_000, 10_000)
}

func postSearch(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()
	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/api/osint/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST error: %v", err)
	}
	return resp
}

// ---- tests ----

func TestSearch_Username_OK(t *testing.T) {
	ts := httptest.NewServer(setupRouter(t, nil, nil))
	defer ts.Close()

	resp := postSearch(t, ts, `{"type":"username","query":"octocat"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	var out struct {
		Query     string `json:"query"`
		Type      string `json:"type"`
		Timestamp string `json:"timestamp"`
		Results   struct {
			SocialMedia []struct {
				Platform   string `json:"platform"`
				Found      bool   `json:"found"`
				StatusCode *int   `json:"status_code"`
			} `json:"social_media"`
			TotalFound int `json:"total_found"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Query != "octocat" || out.Type != "username" {
		t.Fatalf("envelope wrong: %+v", out)
	}
	if out.Timestamp != "2026-01-02T03:04:05Z" {
		t.Fatalf("timestamp wrong: %q", out.Timestamp)
	}
	if out.Results.TotalFound != 1 || len(out.Results.SocialMedia) != 14 {
		t.Fatalf("want 1 of 14 found, got %d of %d", out.Results.TotalFound, len(out.Results.SocialMedia))
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatalf("missing request id header")
	}
}

func TestSearch_Name_OK(t *testing.T) {
	ts := httptest.NewServer(setupRouter(t, nil, nil))
	defer ts.Close()

	resp := postSearch(t, ts, `{"type":"name","first_name":"Jane","last_name":"Doe"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var out struct {
		Query   string `json:"query"`
		Results struct {
			GroupedProfiles struct {
				High   []json.RawMessage `json:"high_confidence"`
				Medium []json.RawMessage `json:"medium_confidence"`
				Low    []json.RawMessage `json:"low_confidence"`
			} `json:"grouped_profiles"`
			SearchQueries []json.RawMessage `json:"search_queries"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Query != "Jane Doe" {
		t.Fatalf("query wrong: %q", out.Query)
	}
	// github is found for each of the 3 probed variants
	if len(out.Results.GroupedProfiles.High) != 3 || len(out.Results.GroupedProfiles.Medium) != 0 {
		t.Fatalf("unexpected grouping: %+v", out.Results.GroupedProfiles)
	}
	if len(out.Results.SearchQueries) != 6 {
		t.Fatalf("want 6 search queries, got %d", len(out.Results.SearchQueries))
	}
}

func TestSearch_InvalidEmail_Is200WithError(t *testing.T) {
	ts := httptest.NewServer(setupRouter(t, nil, nil))
	defer ts.Close()

	resp := postSearch(t, ts, `{"type":"email","query":"not-an-email"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	b, _ := io.ReadAll(resp.Body)
	if !bytes.Contains(b, []byte(`"error":"Invalid email format"`)) {
		t.Fatalf("want invalid email error in results, got %s", b)
	}
}

func TestSearch_ValidationErrors(t *testing.T) {
	ts := httptest.NewServer(setupRouter(t, nil, nil))
	defer ts.Close()

	cases := []struct {
		body, detail string
	}{
		{`{"type":"username"}`, "Query is required for username search"},
		{`{"type":"email","query":""}`, "Query is required for email search"},
		{`{"type":"name","first_name":"Jane"}`, "First name and last name are required for name search"},
		{`{"type":"phone","query":"1"}`, "Invalid search type"},
		{`{not json`, "Invalid request body"},
	}
	for _, c := range cases {
		resp := postSearch(t, ts, c.body)
		var out map[string]string
		_ = json.NewDecoder(resp.Body).Decode(&out)
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: want 400, got %d", c.body, resp.StatusCode)
		}
		if out["detail"] != c.detail {
			t.Fatalf("%s: want detail %q, got %q", c.body, c.detail, out["detail"])
		}
	}
}

func TestSearch_UnexpectedErrorIsGeneric500(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	cause := fmt.Errorf("%w: db password=hunter2", search.ErrUnexpected)
	ts := httptest.NewServer(setupRouter(t, failingSearcher{err: cause}, zap.New(core)))
	defer ts.Close()

	resp := postSearch(t, ts, `{"type":"username","query":"x"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", resp.StatusCode)
	}
	b, _ := io.ReadAll(resp.Body)
	if bytes.Contains(b, []byte("hunter2")) {
		t.Fatalf("cause leaked to client: %s", b)
	}
	if logs.FilterMessage("search_failed").Len() != 1 {
		t.Fatalf("cause not logged")
	}
}

func TestRootHealthAndMetrics(t *testing.T) {
	ts := httptest.NewServer(setupRouter(t, nil, nil))
	defer ts.Close()

	// generate at least one probe sample
	postSearch(t, ts, `{"type":"username","query":"octocat"}`).Body.Close()

	for path, want := range map[string]string{
		"/":           "Digital Footprint Collector API",
		"/api/health": `"status":"healthy"`,
		"/healthz":    `"status":"healthy"`,
		"/metrics":    "footprint_probe_outcomes_total",
	} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK || !bytes.Contains(b, []byte(want)) {
			t.Fatalf("GET %s: status %d body %s", path, resp.StatusCode, b)
		}
	}
}

func TestCORS_AllowsFrontend(t *testing.T) {
	ts := httptest.NewServer(setupRouter(t, nil, nil))
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/api/osint/search", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("want allowed origin, got %q", got)
	}
}
