package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebuildat/internal/adapters/detector"
	"go.trai.ch/rebuildat/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return newForEnvironment(detector.DetectEnvironment()), nil
		},
	})
}

// newForEnvironment returns a logger whose format matches the detected
// environment until --log-format is applied.
func newForEnvironment(format detector.LogFormat) ports.Logger {
	log := New()
	log.SetJSON(format == detector.FormatJSON)
	return log
}
