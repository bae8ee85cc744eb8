package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebuildat/internal/adapters/logger"
	"go.trai.ch/rebuildat/internal/core/ports"
)

// WatcherFactoryNodeID is the unique identifier for the watcher factory Graft node.
const WatcherFactoryNodeID graft.ID = "adapter.watcher_factory"

func init() {
	graft.Register(graft.Node[ports.WatcherFactory]{
		ID:        WatcherFactoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WatcherFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return func(ignore ...string) (ports.Watcher, error) {
				w, err := NewWatcher(log, ignore...)
				if err != nil {
					return nil, err
				}
				return w, nil
			}, nil
		},
	})
}
