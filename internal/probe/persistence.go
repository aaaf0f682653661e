package probe

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hamed0406/statusprobe/internal/domain"
)

// PersistenceProbe creates a record and checks that it shows up in the
// listing. It makes its own create call rather than reusing an earlier one.
type PersistenceProbe struct {
	Creator *CreateProbe
	Client  *Client
	Logger  *zap.Logger
}

func NewPersistenceProbe(creator *CreateProbe, c *Client, l *zap.Logger) *PersistenceProbe {
	return &PersistenceProbe{Creator: creator, Client: c, Logger: l}
}

func (p *PersistenceProbe) Check(ctx context.Context) CheckResult {
	const name = "persistence"
	p.Logger.Info("probe_start", zap.String("probe", name))

	fail := func(resp *Response, reason string) CheckResult {
		p.Logger.Warn("probe_failed", zap.String("probe", name), zap.String("reason", reason))
		return failed(name, resp, reason)
	}

	created := p.Creator.Create(ctx)
	if !created.Success {
		return fail(nil, "failed to create record: "+created.Message)
	}

	p.Logger.Info("verifying_persistence", zap.String("probe", name), zap.String("id", created.ID))
	resp, err := p.Client.Get(ctx, statusPath)
	if err != nil {
		p.Logger.Warn("request_failed", zap.String("probe", name), zap.Error(err))
		return failed(name, nil, err.Error())
	}
	if !statusIn(resp.StatusCode, okOnly...) {
		return fail(resp, fmt.Sprintf("failed to retrieve records: %d", resp.StatusCode))
	}
	records, err := resp.List()
	if err != nil {
		return fail(resp, err.Error())
	}
	if len(records) == 0 {
		return fail(resp, "no records returned")
	}

	for _, rec := range records {
		obj, ok := rec.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := obj[domain.FieldID]; ok && idString(id) == created.ID {
			p.Logger.Info("probe_passed", zap.String("probe", name), zap.String("id", created.ID))
			return passed(name, resp, "record "+created.ID+" persisted")
		}
	}
	return fail(resp, "created record "+created.ID+" not found")
}
