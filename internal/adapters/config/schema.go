package config

// Settingsfile represents the structure of the rebuildat.yaml settings file.
type Settingsfile struct {
	Version      string            `yaml:"version"`
	Command      []string          `yaml:"command"`
	HeaderPrefix *string           `yaml:"headerPrefix"`
	Output       string            `yaml:"output"`
	Environment  map[string]string `yaml:"environment"`
	Watch        *WatchDTO         `yaml:"watch"`
}

// WatchDTO represents the watch section of the settings file.
type WatchDTO struct {
	Paths    []string `yaml:"paths"`
	Debounce string   `yaml:"debounce"`
}
