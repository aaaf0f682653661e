package probe

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const expectedGreeting = "Hello World"

// RootProbe expects GET / to answer {"message": "Hello World"}.
type RootProbe struct {
	Client *Client
	Logger *zap.Logger
}

func NewRootProbe(c *Client, l *zap.Logger) *RootProbe {
	return &RootProbe{Client: c, Logger: l}
}

func (p *RootProbe) Check(ctx context.Context) CheckResult {
	const name = "root_endpoint"
	p.Logger.Info("probe_start", zap.String("probe", name), zap.String("request", "GET /"))

	resp, err := p.Client.Get(ctx, "/")
	if err != nil {
		p.Logger.Warn("request_failed", zap.String("probe", name), zap.Error(err))
		return failed(name, nil, err.Error())
	}
	p.Logger.Info("response",
		zap.String("probe", name),
		zap.Int("status", resp.StatusCode),
		zap.String("body", resp.Preview()),
	)

	if !statusIn(resp.StatusCode, okOnly...) {
		return p.fail(name, resp, fmt.Sprintf("expected 200, got %d", resp.StatusCode))
	}
	obj, err := resp.Object()
	if err != nil {
		return p.fail(name, resp, err.Error())
	}
	if msg, _ := obj["message"].(string); msg != expectedGreeting {
		return p.fail(name, resp, fmt.Sprintf("unexpected message %v", obj["message"]))
	}

	p.Logger.Info("probe_passed", zap.String("probe", name))
	return passed(name, resp, "root endpoint working correctly")
}

func (p *RootProbe) fail(name string, resp *Response, reason string) CheckResult {
	p.Logger.Warn("probe_failed", zap.String("probe", name), zap.String("reason", reason))
	return failed(name, resp, reason)
}
