package probe

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hamed0406/statusprobe/internal/domain"
)

// ListProbe expects GET /status to return an array of status records.
// Only the first record's shape is checked; an empty array passes.
type ListProbe struct {
	Client *Client
	Logger *zap.Logger
}

func NewListProbe(c *Client, l *zap.Logger) *ListProbe {
	return &ListProbe{Client: c, Logger: l}
}

func (p *ListProbe) Check(ctx context.Context) CheckResult {
	const name = "get_status"
	p.Logger.Info("probe_start", zap.String("probe", name), zap.String("request", "GET "+statusPath))

	resp, err := p.Client.Get(ctx, statusPath)
	if err != nil {
		p.Logger.Warn("request_failed", zap.String("probe", name), zap.Error(err))
		return failed(name, nil, err.Error())
	}
	p.Logger.Info("response", zap.String("probe", name), zap.Int("status", resp.StatusCode))

	fail := func(reason string) CheckResult {
		p.Logger.Warn("probe_failed", zap.String("probe", name), zap.String("reason", reason))
		return failed(name, resp, reason)
	}

	if !statusIn(resp.StatusCode, okOnly...) {
		return fail(fmt.Sprintf("expected 200, got %d", resp.StatusCode))
	}
	records, err := resp.List()
	if err != nil {
		return fail(err.Error())
	}
	p.Logger.Info("records", zap.String("probe", name), zap.Int("count", len(records)))

	if len(records) == 0 {
		p.Logger.Info("probe_passed", zap.String("probe", name), zap.String("note", "empty list"))
		return passed(name, resp, "empty list")
	}

	first, ok := records[0].(map[string]any)
	if !ok {
		return fail("first record is not a JSON object")
	}
	if missing := domain.MissingFields(first); len(missing) > 0 {
		return fail("records missing required fields: " + strings.Join(missing, ", "))
	}

	p.Logger.Info("probe_passed", zap.String("probe", name))
	return passed(name, resp, fmt.Sprintf("%d records", len(records)))
}
