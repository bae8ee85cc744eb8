package domain

import (
	"slices"
	"time"
)

// WatchSettings configures watch mode.
type WatchSettings struct {
	// Paths are the directories watched for changes, relative to the working directory.
	Paths []string
	// Debounce is how long changes must settle before regenerating.
	Debounce time.Duration
}

// Settings is the resolved configuration of a run.
type Settings struct {
	Command      Command
	HeaderPrefix string
	// Output is the schedule destination, relative to the working directory unless absolute.
	Output string
	Watch  WatchSettings
}

// DefaultSettings returns the settings used when no settings file overrides them.
func DefaultSettings() *Settings {
	return &Settings{
		Command: Command{
			Argv:        slices.Clone(DefaultCommand),
			Environment: map[string]string{},
		},
		HeaderPrefix: DefaultHeaderPrefix,
		Output:       DefaultOutputPath(),
		Watch: WatchSettings{
			Paths:    []string{DefaultWatchPath},
			Debounce: DefaultDebounce,
		},
	}
}
