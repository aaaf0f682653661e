package runner

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/hamed0406/statusprobe/internal/probe"
	"github.com/hamed0406/statusprobe/internal/report"
)

// Runner executes probes one after another and records every outcome.
type Runner struct {
	Logger *zap.Logger
	Probes []probe.Named
	Out    io.Writer // separator lines between probes
}

func New(logger *zap.Logger, out io.Writer, probes ...probe.Named) *Runner {
	return &Runner{Logger: logger, Probes: probes, Out: out}
}

// Run never stops early: a failing or panicking probe is recorded as a
// failure and the next probe still runs.
func (r *Runner) Run(ctx context.Context) *report.Ledger {
	ledger := report.NewLedger()
	for _, p := range r.Probes {
		out := r.check(ctx, p)
		ledger.Record(p.Key, out)
		r.Logger.Debug("probe_recorded",
			zap.String("probe", p.Key),
			zap.Bool("success", out.Success),
			zap.Int("status", out.StatusCode),
			zap.Float64("latency_ms", out.LatencyMS),
			zap.String("message", out.Message),
		)
		fmt.Fprintln(r.Out)
	}
	return ledger
}

func (r *Runner) check(ctx context.Context, p probe.Named) (out probe.CheckResult) {
	defer func() {
		if rec := recover(); rec != nil {
			r.Logger.Error("probe_panic", zap.String("probe", p.Key), zap.Any("panic", rec))
			out = probe.CheckResult{Name: p.Key, Success: false, Message: fmt.Sprintf("panic: %v", rec)}
		}
	}()
	return p.Checker.Check(ctx)
}
