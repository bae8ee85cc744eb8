package ports

import (
	"context"

	"go.trai.ch/rebuildat/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes cmd in dir and returns its captured output streams.
	//
	// It returns an error wrapping domain.ErrCommandFailed if the command cannot
	// be started or does not exit successfully.
	Run(ctx context.Context, dir string, cmd domain.Command) (domain.CommandOutput, error)
}
