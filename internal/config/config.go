package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Addr            string        // API bind address, e.g., "127.0.0.1:8080" or ":8080" (Docker)
	LogDir          string        // logs directory
	LogLevel        string        // debug | info | warn | error
	AllowedOrigins  []string      // CORS origins of the web frontend
	PublicRPM       int           // inbound requests per minute per client IP; 0 disables
	PublicBurst     int           // token bucket size for PublicRPM
	MaxConcurrent   int           // in-flight probes per batch; 0 = one goroutine per target
	WhoisTimeout    time.Duration // budget of the domain registration lookup
	ShutdownTimeout time.Duration // graceful shutdown budget
}

func FromEnv() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	logLevel := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if logLevel == "" {
		logLevel = "info"
	}

	origins := splitList(os.Getenv("ALLOWED_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	return Config{
		Addr:            addr,
		LogDir:          logDir,
		LogLevel:        logLevel,
		AllowedOrigins:  origins,
		PublicRPM:       intEnv("PUBLIC_RPM", 60),
		PublicBurst:     intEnv("PUBLIC_BURST", 30),
		MaxConcurrent:   intEnv("MAX_CONCURRENT_PROBES", 0),
		WhoisTimeout:    msEnv("WHOIS_TIMEOUT_MS", 10*time.Second),
		ShutdownTimeout: msEnv("SHUTDOWN_TIMEOUT_MS", 10*time.Second),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var err error
	if _, _, e := net.SplitHostPort(c.Addr); e != nil {
		err = multierr.Append(err, fmt.Errorf("ADDR %q: %w", c.Addr, e))
	}
	if c.LogDir == "" {
		err = multierr.Append(err, errors.New("LOG_DIR is empty"))
	}
	if _, e := zapcore.ParseLevel(c.LogLevel); e != nil {
		err = multierr.Append(err, fmt.Errorf("LOG_LEVEL: %w", e))
	}
	if c.PublicRPM > 0 && c.PublicBurst < 1 {
		err = multierr.Append(err, errors.New("PUBLIC_BURST must be >= 1 when PUBLIC_RPM is set"))
	}
	if c.MaxConcurrent < 0 {
		err = multierr.Append(err, errors.New("MAX_CONCURRENT_PROBES must be >= 0"))
	}
	if c.WhoisTimeout <= 0 {
		err = multierr.Append(err, errors.New("WHOIS_TIMEOUT_MS must be > 0"))
	}
	return err
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func intEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func msEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return def
}
