package probe

import (
	"go.uber.org/zap"

	"github.com/hamed0406/statusprobe/internal/config"
)

// Suite returns the probes in the order they run. Every probe shares one
// Client; the persistence probe drives its own CreateProbe.
func Suite(cfg config.Config, logger *zap.Logger) []Named {
	c := NewClient(cfg)
	create := NewCreateProbe(c, logger, cfg.ClientName)

	return []Named{
		{Key: "root_endpoint", Checker: NewRootProbe(c, logger)},
		{Key: "cors_headers", Checker: NewCORSProbe(c, logger, cfg.Origin)},
		{Key: "post_status", Checker: create},
		{Key: "get_status", Checker: NewListProbe(c, logger)},
		{Key: "persistence", Checker: NewPersistenceProbe(create, c, logger)},
		{Key: "error_handling", Checker: NewErrorHandlingProbe(c, logger)},
	}
}
