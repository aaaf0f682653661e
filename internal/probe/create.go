package probe

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hamed0406/statusprobe/internal/domain"
)

// CreateResult carries the id of the record a successful create made.
// ID is empty whenever Success is false.
type CreateResult struct {
	CheckResult
	ID string
}

// CreateProbe posts a status record and checks the echoed fields.
type CreateProbe struct {
	Client     *Client
	Logger     *zap.Logger
	ClientName string
}

func NewCreateProbe(c *Client, l *zap.Logger, clientName string) *CreateProbe {
	return &CreateProbe{Client: c, Logger: l, ClientName: clientName}
}

func (p *CreateProbe) Check(ctx context.Context) CheckResult {
	return p.Create(ctx).CheckResult
}

func (p *CreateProbe) Create(ctx context.Context) CreateResult {
	const name = "post_status"
	p.Logger.Info("probe_start", zap.String("probe", name), zap.String("request", "POST "+statusPath))

	resp, err := p.Client.PostJSON(ctx, statusPath, domain.StatusCreate{ClientName: p.ClientName})
	if err != nil {
		p.Logger.Warn("request_failed", zap.String("probe", name), zap.Error(err))
		return CreateResult{CheckResult: failed(name, nil, err.Error())}
	}
	p.Logger.Info("response",
		zap.String("probe", name),
		zap.Int("status", resp.StatusCode),
		zap.String("body", resp.Preview()),
	)

	fail := func(reason string) CreateResult {
		p.Logger.Warn("probe_failed", zap.String("probe", name), zap.String("reason", reason))
		return CreateResult{CheckResult: failed(name, resp, reason)}
	}

	if !statusIn(resp.StatusCode, okOnly...) {
		return fail(fmt.Sprintf("expected 200, got %d", resp.StatusCode))
	}
	obj, err := resp.Object()
	if err != nil {
		return fail(err.Error())
	}
	if missing := domain.MissingFields(obj); len(missing) > 0 {
		return fail("missing required fields: " + strings.Join(missing, ", "))
	}
	if got, _ := obj[domain.FieldClientName].(string); got != p.ClientName {
		return fail(fmt.Sprintf("client_name mismatch: sent %q, got %v", p.ClientName, obj[domain.FieldClientName]))
	}

	id := idString(obj[domain.FieldID])
	p.Logger.Info("probe_passed", zap.String("probe", name), zap.String("id", id))
	return CreateResult{CheckResult: passed(name, resp, "created "+id), ID: id}
}
