// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rebuildat/internal/adapters/config"
	_ "go.trai.ch/rebuildat/internal/adapters/datafile"
	_ "go.trai.ch/rebuildat/internal/adapters/logger"
	_ "go.trai.ch/rebuildat/internal/adapters/shell"
	_ "go.trai.ch/rebuildat/internal/adapters/telemetry"
	_ "go.trai.ch/rebuildat/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/rebuildat/internal/app"
)
