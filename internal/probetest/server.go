// Package probetest runs an in-memory stand-in for the status service so
// probes can be exercised against real HTTP behaviour, with switchable faults.
package probetest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/hamed0406/statusprobe/internal/domain"
)

// Faults make the service misbehave in one specific way. The zero value
// is a correct service.
type Faults struct {
	Greeting      string        // replaces "Hello World"
	RootBody      string        // raw body for GET / instead of JSON
	RootStatus    int           // status for GET /
	EchoName      string        // client_name returned by create
	DropField     string        // field removed from every served record
	ForgetWrites  bool          // create answers 200 but stores nothing
	CreateStatus  int           // status for valid POST /status
	ListStatus    int           // status for GET /status
	ListBody      string        // raw body for GET /status
	AcceptInvalid bool          // POST without client_name is stored
	NoCORS        bool          // no CORS middleware; OPTIONS gets 405
	Delay         time.Duration // added before every response
}

// Server is the stub status service. Routes live under /api.
type Server struct {
	mu      sync.RWMutex
	records []domain.StatusRecord
	faults  Faults
	creates int
}

func New(f Faults) *Server {
	return &Server{faults: f}
}

// Start serves s on a local listener and returns it with the base URL the
// probes should target.
func Start(f Faults) (*httptest.Server, *Server, string) {
	s := New(f)
	ts := httptest.NewServer(s.Router())
	return ts, s, ts.URL + "/api"
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	if s.faults.Delay > 0 {
		r.Use(delay(s.faults.Delay))
	}
	if !s.faults.NoCORS {
		r.Use(cors.AllowAll().Handler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.handleRoot)
		r.Get("/status", s.handleList)
		r.Post("/status", s.handleCreate)
	})
	return r
}

// Seed stores records as if they had been created earlier.
func (s *Server) Seed(recs ...domain.StatusRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, recs...)
}

// Creates reports how many valid create requests were handled.
func (s *Server) Creates() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creates
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	status := orDefault(s.faults.RootStatus, http.StatusOK)
	if s.faults.RootBody != "" {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(s.faults.RootBody))
		return
	}
	msg := s.faults.Greeting
	if msg == "" {
		msg = "Hello World"
	}
	writeJSON(w, status, map[string]string{"message": msg})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var p map[string]any
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationError("body", "invalid JSON"))
		return
	}
	name, ok := p[domain.FieldClientName].(string)
	if !ok && !s.faults.AcceptInvalid {
		writeJSON(w, http.StatusUnprocessableEntity, validationError(domain.FieldClientName, "field required"))
		return
	}

	rec := domain.StatusRecord{
		ID:         uuid.NewString(),
		ClientName: name,
		Timestamp:  time.Now().UTC(),
	}

	s.mu.Lock()
	s.creates++
	if !s.faults.ForgetWrites {
		s.records = append(s.records, rec)
	}
	s.mu.Unlock()

	if s.faults.EchoName != "" {
		rec.ClientName = s.faults.EchoName
	}
	writeJSON(w, orDefault(s.faults.CreateStatus, http.StatusOK), s.shape(rec))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	status := orDefault(s.faults.ListStatus, http.StatusOK)
	if s.faults.ListBody != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(s.faults.ListBody))
		return
	}

	s.mu.RLock()
	out := make([]map[string]any, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, s.shape(rec))
	}
	s.mu.RUnlock()

	writeJSON(w, status, out)
}

// shape renders a record the way the API serves it, minus any dropped field.
func (s *Server) shape(rec domain.StatusRecord) map[string]any {
	m := map[string]any{
		domain.FieldID:         rec.ID,
		domain.FieldClientName: rec.ClientName,
		domain.FieldTimestamp:  rec.Timestamp.Format(time.RFC3339Nano),
	}
	if s.faults.DropField != "" {
		delete(m, s.faults.DropField)
	}
	return m
}

func validationError(field, msg string) map[string]any {
	return map[string]any{
		"detail": []map[string]any{{
			"loc":  []string{"body", field},
			"msg":  msg,
			"type": "value_error",
		}},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func delay(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(d):
				next.ServeHTTP(w, r)
			case <-r.Context().Done():
			}
		})
	}
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
