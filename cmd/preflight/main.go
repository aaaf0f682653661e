// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/multierr"

	"github.com/hamed0406/statusprobe/internal/config"
)

func main() {
	failed := false
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		failed = true
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	if strings.TrimSpace(os.Getenv("PROBE_BASE_URL")) == "" {
		warn("PROBE_BASE_URL is empty; probes will target " + config.DefaultBaseURL)
	}
	if strings.HasSuffix(os.Getenv("PROBE_BASE_URL"), "/") {
		warn("PROBE_BASE_URL has a trailing slash; it is trimmed before use.")
	}
	if strings.TrimSpace(os.Getenv("PROBE_ORIGIN")) == "" {
		warn("PROBE_ORIGIN empty — CORS preflight will send the base URL's origin.")
	}

	cfg := config.FromEnv()
	for _, err := range multierr.Errors(cfg.Validate()) {
		fail(err.Error())
	}
	if failed {
		os.Exit(1)
	}

	ok("PROBE_BASE_URL=" + cfg.BaseURL)
	ok("timeout=" + cfg.Timeout.String())
	ok("client_name=" + cfg.ClientName)
	ok("origin=" + cfg.Origin)
	if cfg.LogDir != "" {
		ok("PROBE_LOG_DIR=" + cfg.LogDir + " (JSON log file enabled)")
	}

	ok("preflight passed")
}
