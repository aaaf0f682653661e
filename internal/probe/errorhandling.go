package probe

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

const unknownPath = "/nonexistent"

// ErrorHandlingProbe checks that invalid input is rejected. The unknown
// path request is observational; only the invalid POST decides the result.
type ErrorHandlingProbe struct {
	Client *Client
	Logger *zap.Logger
}

func NewErrorHandlingProbe(c *Client, l *zap.Logger) *ErrorHandlingProbe {
	return &ErrorHandlingProbe{Client: c, Logger: l}
}

func (p *ErrorHandlingProbe) Check(ctx context.Context) CheckResult {
	const name = "error_handling"
	p.Logger.Info("probe_start", zap.String("probe", name))

	if resp, err := p.Client.Get(ctx, unknownPath); err != nil {
		p.Logger.Warn("unknown_path_request_failed", zap.String("probe", name), zap.Error(err))
	} else {
		p.Logger.Info("unknown_path", zap.String("probe", name), zap.Int("status", resp.StatusCode))
	}

	resp, err := p.Client.PostJSON(ctx, statusPath, map[string]string{"invalid_field": "test"})
	if err != nil {
		p.Logger.Warn("request_failed", zap.String("probe", name), zap.Error(err))
		return failed(name, nil, err.Error())
	}
	p.Logger.Info("invalid_post", zap.String("probe", name), zap.Int("status", resp.StatusCode))

	if !statusIn(resp.StatusCode, http.StatusBadRequest, http.StatusUnprocessableEntity) {
		reason := fmt.Sprintf("expected 400/422 for invalid data, got %d", resp.StatusCode)
		p.Logger.Warn("probe_failed", zap.String("probe", name), zap.String("reason", reason))
		return failed(name, resp, reason)
	}

	p.Logger.Info("probe_passed", zap.String("probe", name))
	return passed(name, resp, "invalid payload rejected")
}
