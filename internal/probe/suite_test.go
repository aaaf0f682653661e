package probe

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/statusprobe/internal/config"
	"github.com/hamed0406/statusprobe/internal/probetest"
)

func TestSuite_OrderAndHealthyService(t *testing.T) {
	ts, srv, base := probetest.Start(probetest.Faults{})
	defer ts.Close()

	cfg := config.Config{BaseURL: base, Timeout: 2 * time.Second, ClientName: "X", Origin: "http://localhost"}
	probes := Suite(cfg, zap.NewNop())

	want := []string{"root_endpoint", "cors_headers", "post_status", "get_status", "persistence", "error_handling"}
	if len(probes) != len(want) {
		t.Fatalf("want %d probes, got %d", len(want), len(probes))
	}
	for i, p := range probes {
		if p.Key != want[i] {
			t.Fatalf("probe %d: want %s, got %s", i, want[i], p.Key)
		}
		if out := p.Checker.Check(context.Background()); !out.Success {
			t.Fatalf("%s failed against healthy stub: %+v", p.Key, out)
		}
	}
	// post_status and persistence each create their own record.
	if srv.Creates() != 2 {
		t.Fatalf("want 2 creates, got %d", srv.Creates())
	}
}

// Every probe turns a timeout into a failed result instead of an error.
func TestSuite_TimeoutFailsEveryProbe(t *testing.T) {
	ts, _, base := probetest.Start(probetest.Faults{Delay: 200 * time.Millisecond})
	defer ts.Close()

	cfg := config.Config{BaseURL: base, Timeout: 30 * time.Millisecond, ClientName: "X"}
	for _, p := range Suite(cfg, zap.NewNop()) {
		if out := p.Checker.Check(context.Background()); out.Success {
			t.Fatalf("%s: want failure on timeout, got %+v", p.Key, out)
		}
	}
}
