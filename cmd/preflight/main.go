// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/hamed0406/footprint/internal/config"
)

func main() {
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		for _, e := range multierr.Errors(err) {
			fmt.Fprintln(os.Stderr, "✖", e)
		}
		os.Exit(1)
	}

	if strings.TrimSpace(os.Getenv("ADDR")) == "" {
		warn("ADDR is empty; defaulting to " + cfg.Addr)
	} else {
		ok("ADDR=" + cfg.Addr)
	}

	if strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")) == "" {
		warn("ALLOWED_ORIGINS empty; only " + strings.Join(cfg.AllowedOrigins, ",") + " may call the API from a browser.")
	} else {
		ok("ALLOWED_ORIGINS=" + strings.Join(cfg.AllowedOrigins, ","))
	}

	if cfg.PublicRPM <= 0 {
		warn("PUBLIC_RPM is 0; inbound rate limiting is disabled.")
	} else {
		ok("PUBLIC_RPM=" + strconv.Itoa(cfg.PublicRPM) + " burst=" + strconv.Itoa(cfg.PublicBurst))
	}

	if cfg.MaxConcurrent == 0 {
		warn("MAX_CONCURRENT_PROBES is 0; each search opens one connection per platform at once.")
	} else {
		ok("MAX_CONCURRENT_PROBES=" + strconv.Itoa(cfg.MaxConcurrent))
	}

	ok("LOG_DIR=" + cfg.LogDir + " LOG_LEVEL=" + cfg.LogLevel)
	ok("WHOIS_TIMEOUT=" + cfg.WhoisTimeout.String())
	ok("preflight passed")
}
