// Package detector provides environment detection for log format selection.
package detector

import (
	"os"

	"go.trai.ch/rebuildat/internal/core/domain"
	"golang.org/x/term"
)

// LogFormat represents how log records are rendered.
type LogFormat int

const (
	// FormatPretty renders colored, human readable lines.
	FormatPretty LogFormat = iota
	// FormatJSON renders one JSON object per record.
	FormatJSON
)

// String returns the flag value naming the format.
func (f LogFormat) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "pretty"
}

// DetectEnvironment returns the recommended log format based on the environment.
// Humans read both interactive terminals and CI logs; anything else gets JSON.
func DetectEnvironment() LogFormat {
	return detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) LogFormat {
	isCI := ci == "true" || ci == "1"
	if isTTY || isCI {
		return FormatPretty
	}
	return FormatJSON
}

// ResolveLogFormat applies the user's --log-format flag to auto-detection.
// flag should be one of: "auto", "pretty", "json", or empty.
func ResolveLogFormat(flag string) (LogFormat, error) {
	switch flag {
	case "auto", "":
		return DetectEnvironment(), nil
	case "pretty":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatPretty, domain.Annotate(domain.ErrInvalidLogFormat, "log_format", flag)
	}
}
