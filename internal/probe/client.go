package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hamed0406/statusprobe/internal/config"
)

var (
	ErrNotJSON   = errors.New("response body is not JSON")
	ErrNotObject = errors.New("response body is not a JSON object")
	ErrNotList   = errors.New("response body is not a JSON array")
)

const (
	userAgent    = "statusprobe/1.0"
	maxBodyBytes = 1 << 20
)

// Client issues single, unretried requests against the service under test.
type Client struct {
	BaseURL string
	Client  *http.Client
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		BaseURL: strings.TrimRight(cfg.BaseURL, "/"),
		Client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
	LatencyMS  float64
}

// Do sends one request. body, when non-nil, is JSON encoded. Any non-nil
// error is a transport-level failure; HTTP error statuses are not errors.
func (c *Client) Do(ctx context.Context, method, path string, body any, header http.Header) (*Response, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	latency := time.Since(start).Seconds() * 1000 // ms
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       raw,
		LatencyMS:  latency,
	}, nil
}

func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil, nil)
}

func (c *Client) PostJSON(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, body, nil)
}

// Object decodes the body as a JSON object.
func (r *Response) Object() (map[string]any, error) {
	v, err := r.decode()
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return obj, nil
}

// List decodes the body as a JSON array.
func (r *Response) List() ([]any, error) {
	v, err := r.decode()
	if err != nil {
		return nil, err
	}
	list, ok := v.([]any)
	if !ok {
		return nil, ErrNotList
	}
	return list, nil
}

func (r *Response) decode() (any, error) {
	var v any
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotJSON, err)
	}
	return v, nil
}

// Preview is the body trimmed for log output.
func (r *Response) Preview() string {
	const n = 512
	s := strings.TrimSpace(string(r.Body))
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}

// idString renders a decoded id for comparison; ids are usually strings
// but numeric ids decode as float64.
func idString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
