package probe

import (
	"context"
	"net/http"
)

// CheckResult is the unified result of a single probe.
//
// Fields:
// - StatusCode: HTTP status of the deciding request; 0 for transport errors.
// - Message: pass note or the reason the probe failed.
type CheckResult struct {
	Name       string  `json:"name"`
	Success    bool    `json:"success"`
	Message    string  `json:"message"`
	StatusCode int     `json:"status_code,omitempty"`
	LatencyMS  float64 `json:"latency_ms,omitempty"`
}

// Checker performs one probe against the configured service.
type Checker interface {
	Check(ctx context.Context) CheckResult
}

// CheckerFunc adapts a plain function to Checker.
type CheckerFunc func(ctx context.Context) CheckResult

func (f CheckerFunc) Check(ctx context.Context) CheckResult { return f(ctx) }

// Named pairs a checker with the key it is recorded under.
type Named struct {
	Key     string
	Checker Checker
}

func passed(name string, resp *Response, msg string) CheckResult {
	r := CheckResult{Name: name, Success: true, Message: msg}
	if resp != nil {
		r.StatusCode = resp.StatusCode
		r.LatencyMS = resp.LatencyMS
	}
	return r
}

func failed(name string, resp *Response, msg string) CheckResult {
	r := CheckResult{Name: name, Success: false, Message: msg}
	if resp != nil {
		r.StatusCode = resp.StatusCode
		r.LatencyMS = resp.LatencyMS
	}
	return r
}

func statusIn(code int, want ...int) bool {
	for _, w := range want {
		if code == w {
			return true
		}
	}
	return false
}

const statusPath = "/status"

var okOnly = []int{http.StatusOK}
