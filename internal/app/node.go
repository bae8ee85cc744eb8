package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebuildat/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rebuildat/internal/adapters/datafile"  //nolint:depguard // Wired in app layer
	"go.trai.ch/rebuildat/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rebuildat/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/rebuildat/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/rebuildat/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/rebuildat/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			datafile.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			watcher.WatcherFactoryNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			writer, err := graft.Dep[ports.ScheduleWriter](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			factory, err := graft.Dep[ports.WatcherFactory](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, executor, writer, log, tracer, factory), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    app,
				Logger: log,
				Tracer: tracer,
			}, nil
		},
	})
}
