package domain

import "strings"

// Command is an external program invocation.
type Command struct {
	// Argv holds the executable name followed by its arguments.
	Argv []string
	// Environment overrides variables of the inherited process environment.
	Environment map[string]string
}

// Name returns the executable name, or an empty string for an empty command.
func (c Command) Name() string {
	if len(c.Argv) == 0 {
		return ""
	}
	return c.Argv[0]
}

// Args returns the arguments following the executable name.
func (c Command) Args() []string {
	if len(c.Argv) < 2 {
		return nil
	}
	return c.Argv[1:]
}

// String renders the command line for logs and errors.
func (c Command) String() string {
	return strings.Join(c.Argv, " ")
}

// CommandOutput holds the captured streams of a finished command.
type CommandOutput struct {
	Stdout []byte
	Stderr []byte
}
