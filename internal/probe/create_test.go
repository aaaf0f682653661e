package probe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/statusprobe/internal/domain"
	"github.com/hamed0406/statusprobe/internal/probetest"
)

func TestCreateProbe_EchoedRecordYieldsID(t *testing.T) {
	var sent map[string]any
	var contentType string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&sent)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"abc","client_name":"X","timestamp":"2025-08-18T12:00:00Z"}`))
	}))
	defer s.Close()

	out := NewCreateProbe(newTestClient(s.URL, 2*time.Second), zap.NewNop(), "X").Create(context.Background())
	if !out.Success || out.ID != "abc" {
		t.Fatalf("want (true, abc), got %+v", out)
	}
	if contentType != "application/json" {
		t.Fatalf("want JSON content type, got %q", contentType)
	}
	if sent["client_name"] != "X" || len(sent) != 1 {
		t.Fatalf("unexpected payload: %v", sent)
	}
}

func TestCreateProbe_Failures(t *testing.T) {
	cases := []struct {
		name   string
		faults probetest.Faults
	}{
		{"mismatched client name", probetest.Faults{EchoName: "Y"}},
		{"missing id", probetest.Faults{DropField: domain.FieldID}},
		{"missing timestamp", probetest.Faults{DropField: domain.FieldTimestamp}},
		{"non 200", probetest.Faults{CreateStatus: http.StatusCreated}},
		{"timeout", probetest.Faults{Delay: 200 * time.Millisecond}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts, _, base := probetest.Start(tc.faults)
			defer ts.Close()

			out := NewCreateProbe(newTestClient(base, 100*time.Millisecond), zap.NewNop(), "X").Create(context.Background())
			if out.Success {
				t.Fatalf("want failure, got %+v", out)
			}
			if out.ID != "" {
				t.Fatalf("want empty id on failure, got %q", out.ID)
			}
			if out.Message == "" {
				t.Fatalf("want a failure reason")
			}
		})
	}
}

func TestCreateProbe_CheckAgainstStub(t *testing.T) {
	ts, srv, base := probetest.Start(probetest.Faults{})
	defer ts.Close()

	out := NewCreateProbe(newTestClient(base, 2*time.Second), zap.NewNop(), "CALC_Test_Client").Check(context.Background())
	if !out.Success || out.Name != "post_status" {
		t.Fatalf("want success, got %+v", out)
	}
	if srv.Creates() != 1 {
		t.Fatalf("want exactly one create call, got %d", srv.Creates())
	}
}
