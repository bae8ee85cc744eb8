package datafile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebuildat/internal/core/ports"
)

// NodeID is the unique identifier for the schedule writer Graft node.
const NodeID graft.ID = "adapter.schedule_writer"

func init() {
	graft.Register(graft.Node[ports.ScheduleWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ScheduleWriter, error) {
			return NewWriter(), nil
		},
	})
}
