package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	BaseURL    string        // service under test, e.g. "https://host/api" (no trailing slash)
	Timeout    time.Duration // per-request timeout
	ClientName string        // client_name sent by the create probe
	Origin     string        // Origin header for the CORS preflight
	LogLevel   string        // zap level name
	LogDir     string        // optional; empty means console only
	NoColor    bool          // plain PASS/FAIL markers
}

const (
	DefaultBaseURL    = "http://localhost:8001/api"
	DefaultTimeout    = 10 * time.Second
	DefaultClientName = "StatusProbe_Test_Client"
)

// Load seeds the environment from a .env file in the working directory
// (variables already set win) and then reads the config from it.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read .env: %w", err)
	}
	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func FromEnv() Config {
	base := strings.TrimRight(strings.TrimSpace(os.Getenv("PROBE_BASE_URL")), "/")
	if base == "" {
		base = DefaultBaseURL
	}

	timeout := DefaultTimeout
	if v := os.Getenv("PROBE_TIMEOUT_MS"); v != "" {
		// keep invalid values so Validate can report them
		if ms, err := strconv.Atoi(v); err == nil {
			timeout = time.Duration(ms) * time.Millisecond
		} else {
			timeout = -1
		}
	}

	name := strings.TrimSpace(os.Getenv("PROBE_CLIENT_NAME"))
	if name == "" {
		name = DefaultClientName
	}

	origin := strings.TrimSpace(os.Getenv("PROBE_ORIGIN"))
	if origin == "" {
		origin = originOf(base)
	}

	level := strings.ToLower(strings.TrimSpace(os.Getenv("PROBE_LOG_LEVEL")))
	if level == "" {
		level = "info"
	}

	noColor, _ := strconv.ParseBool(os.Getenv("PROBE_NO_COLOR"))

	return Config{
		BaseURL:    base,
		Timeout:    timeout,
		ClientName: name,
		Origin:     origin,
		LogLevel:   level,
		LogDir:     strings.TrimSpace(os.Getenv("PROBE_LOG_DIR")),
		NoColor:    noColor,
	}
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var err error

	u, perr := url.Parse(c.BaseURL)
	switch {
	case perr != nil:
		err = multierr.Append(err, fmt.Errorf("PROBE_BASE_URL: %w", perr))
	case u.Scheme != "http" && u.Scheme != "https":
		err = multierr.Append(err, fmt.Errorf("PROBE_BASE_URL: scheme must be http or https, got %q", u.Scheme))
	case u.Host == "":
		err = multierr.Append(err, errors.New("PROBE_BASE_URL: missing host"))
	}

	if c.Timeout <= 0 {
		err = multierr.Append(err, errors.New("PROBE_TIMEOUT_MS: must be a positive integer"))
	}
	if c.ClientName == "" {
		err = multierr.Append(err, errors.New("PROBE_CLIENT_NAME: must not be empty"))
	}
	if _, lerr := zapcore.ParseLevel(c.LogLevel); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("PROBE_LOG_LEVEL: %w", lerr))
	}
	return err
}

func originOf(base string) string {
	u, err := url.Parse(base)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
