package domain

import "go.trai.ch/zerr"

var (
	// ErrCommandFailed is returned when the external command cannot be started or exits abnormally.
	ErrCommandFailed = zerr.New("external command failed")

	// ErrDiagnosticOutput is returned when the external command writes to its error stream.
	ErrDiagnosticOutput = zerr.New("external command wrote to stderr")

	// ErrEmptyCommand is returned when no external command is configured.
	ErrEmptyCommand = zerr.New("command must not be empty")

	// ErrFailedToResolveWorkDir is returned when the working directory cannot be made absolute.
	ErrFailedToResolveWorkDir = zerr.New("failed to resolve working directory")

	// ErrScheduleMarshalFailed is returned when the schedule cannot be encoded as JSON.
	ErrScheduleMarshalFailed = zerr.New("failed to marshal rebuild schedule")

	// ErrWriteFailed is returned when the rebuild schedule cannot be written.
	ErrWriteFailed = zerr.New("failed to write rebuild schedule")

	// ErrConfigNotFound is returned when an explicitly requested settings file does not exist.
	ErrConfigNotFound = zerr.New("settings file not found")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrInvalidDebounce is returned when the watch debounce is not a positive duration.
	ErrInvalidDebounce = zerr.New("watch debounce must be a positive duration")

	// ErrInvalidLogFormat is returned when the requested log format is unknown.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'auto', 'pretty' or 'json'")

	// ErrNothingToWatch is returned when none of the configured watch paths exist.
	ErrNothingToWatch = zerr.New("no watch path exists")

	// ErrWatcherFailed is returned when the file system watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to start file watcher")
)

// Annotate attaches metadata to a sentinel error. The result still matches the
// sentinel with errors.Is.
func Annotate(sentinel error, key string, value any) error {
	return zerr.With(zerr.Wrap(sentinel, ""), key, value)
}
