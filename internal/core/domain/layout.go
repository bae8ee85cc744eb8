package domain

import (
	"path/filepath"
	"time"
)

// DefaultCommand lists future content of a Hugo site as CSV.
var DefaultCommand = []string{"hugo", "list", "future"}

const (
	// DefaultHeaderPrefix is how the header row of the future content listing begins.
	DefaultHeaderPrefix = "path,slug,title"

	// DataDirName is the Hugo data directory.
	DataDirName = "data"

	// RebuildAtDirName is the data subdirectory holding the schedule.
	RebuildAtDirName = "rebuild_at"

	// ScheduleFileName is the name of the schedule file.
	ScheduleFileName = "dates.json"

	// SettingsFileName is the name of the optional settings file.
	SettingsFileName = "rebuildat.yaml"

	// DefaultWatchPath is the directory watched in watch mode.
	DefaultWatchPath = "content"

	// DefaultDebounce is how long changes settle before a watch-mode rerun.
	DefaultDebounce = 500 * time.Millisecond

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultOutputPath returns the schedule location relative to the working directory.
// It joins data, rebuild_at and dates.json.
func DefaultOutputPath() string {
	return filepath.Join(DataDirName, RebuildAtDirName, ScheduleFileName)
}
