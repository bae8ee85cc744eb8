// Package config provides the settings loader for rebuildat.
package config

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/rebuildat/internal/core/domain"
	"go.trai.ch/rebuildat/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load returns the settings for workDir. An empty path selects rebuildat.yaml in
// workDir, whose absence yields the defaults. Relative paths resolve against workDir.
func (l *Loader) Load(workDir, path string) (*domain.Settings, error) {
	explicit := path != ""
	if !explicit {
		path = domain.SettingsFileName
	}
	path = domain.ResolvePath(workDir, path)

	var file Settingsfile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		if !explicit && errors.Is(err, iofs.ErrNotExist) {
			l.Logger.Debug("No settings file found, using defaults")
			return domain.DefaultSettings(), nil
		}
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, domain.Annotate(domain.ErrConfigNotFound, "path", path)
		}
		return nil, err
	}

	l.Logger.Debug(fmt.Sprintf("Using settings from %s", path))
	return l.apply(path, &file)
}

func (l *Loader) apply(path string, file *Settingsfile) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	if file.Command != nil {
		if len(file.Command) == 0 || file.Command[0] == "" {
			return nil, domain.Annotate(domain.ErrEmptyCommand, "path", path)
		}
		settings.Command.Argv = slices.Clone(file.Command)
	}
	for k, v := range file.Environment {
		settings.Command.Environment[k] = v
	}

	if file.HeaderPrefix != nil {
		if *file.HeaderPrefix == "" {
			l.Logger.Warn(fmt.Sprintf("'headerPrefix' in %s is empty, the first output line will be treated as the header", path))
		}
		settings.HeaderPrefix = *file.HeaderPrefix
	}

	if file.Output != "" {
		settings.Output = filepath.Clean(file.Output)
	}

	if file.Watch != nil {
		if file.Watch.Paths != nil {
			settings.Watch.Paths = slices.Clone(file.Watch.Paths)
		}
		if file.Watch.Debounce != "" {
			d, err := time.ParseDuration(file.Watch.Debounce)
			if err != nil || d <= 0 {
				return nil, domain.Annotate(domain.ErrInvalidDebounce, "debounce", file.Watch.Debounce)
			}
			settings.Watch.Debounce = d
		}
	}

	return settings, nil
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "reading settings"), "path", configPath))
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(parseErr, "parsing settings"), "path", configPath))
	}

	return nil
}
