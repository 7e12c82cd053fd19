package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hamed0406/footprint/internal/domain"
	apimw "github.com/hamed0406/footprint/internal/httpapi/middleware"
	"github.com/hamed0406/footprint/internal/search"
)

// maxBodyBytes bounds the search request body.
const maxBodyBytes = 1 << 16

// Searcher is implemented by *search.Service.
type Searcher interface {
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)
}

type Server struct {
	Logger   *zap.Logger
	Searcher Searcher
	Gatherer prometheus.Gatherer
}

func NewServer(l *zap.Logger, s Searcher, g prometheus.Gatherer) *Server {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return &Server{Logger: l, Searcher: s, Gatherer: g}
}

// Router wires routes and middleware. rpm <= 0 disables rate limiting.
func (s *Server) Router(allowedOrigins []string, rpm, burst int) http.Handler {
	r := chi.NewRouter()
	r.Use(apimw.RequestID)
	r.Use(apimw.AccessLog(s.Logger))
	r.Use(apimw.Recover(s.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{apimw.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Digital Footprint Collector API"})
	})
	r.Get("/healthz", s.handleHealth)
	r.Get("/api/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(apimw.RateLimit(rpm, burst))
		r.Post("/api/osint/search", s.handleSearch)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req domain.SearchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := s.Searcher.Search(r.Context(), req)
	if err != nil {
		if search.IsValidation(err) {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		s.Logger.Error("search_failed",
			zap.String("request_id", apimw.GetRequestID(r.Context())),
			zap.String("type", string(req.Type)),
			zap.Error(err),
		)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
