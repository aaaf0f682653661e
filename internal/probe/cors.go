package probe

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// CORSProbe sends a browser-style preflight to /status. Only the status
// code is asserted; the Access-Control-Allow-* headers are logged.
type CORSProbe struct {
	Client *Client
	Logger *zap.Logger
	Origin string
}

func NewCORSProbe(c *Client, l *zap.Logger, origin string) *CORSProbe {
	return &CORSProbe{Client: c, Logger: l, Origin: origin}
}

func (p *CORSProbe) Check(ctx context.Context) CheckResult {
	const name = "cors_headers"
	p.Logger.Info("probe_start", zap.String("probe", name), zap.String("request", "OPTIONS "+statusPath))

	h := http.Header{}
	h.Set("Origin", p.Origin)
	h.Set("Access-Control-Request-Method", http.MethodPost)
	h.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := p.Client.Do(ctx, http.MethodOptions, statusPath, nil, h)
	if err != nil {
		p.Logger.Warn("request_failed", zap.String("probe", name), zap.Error(err))
		return failed(name, nil, err.Error())
	}

	p.Logger.Info("cors_preflight",
		zap.Int("status", resp.StatusCode),
		zap.String("allow_origin", resp.Header.Get("Access-Control-Allow-Origin")),
		zap.String("allow_methods", resp.Header.Get("Access-Control-Allow-Methods")),
		zap.String("allow_headers", resp.Header.Get("Access-Control-Allow-Headers")),
	)

	if !statusIn(resp.StatusCode, http.StatusOK, http.StatusNoContent) {
		reason := fmt.Sprintf("preflight failed with status %d", resp.StatusCode)
		p.Logger.Warn("probe_failed", zap.String("probe", name), zap.String("reason", reason))
		return failed(name, resp, reason)
	}

	p.Logger.Info("probe_passed", zap.String("probe", name))
	return passed(name, resp, "preflight accepted")
}
