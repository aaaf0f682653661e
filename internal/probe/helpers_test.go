package probe

import (
	"time"

	"github.com/hamed0406/statusprobe/internal/config"
)

func newTestClient(base string, timeout time.Duration) *Client {
	return NewClient(config.Config{BaseURL: base, Timeout: timeout})
}
