// Package shell provides an os/exec based executor for external commands.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/rebuildat/internal/core/domain"
	"go.trai.ch/rebuildat/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor that mirrors command output to logger at debug level.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run executes cmd in dir and waits for it to complete.
// Standard output and standard error are captured separately.
func (e *Executor) Run(ctx context.Context, dir string, cmd domain.Command) (domain.CommandOutput, error) {
	if len(cmd.Argv) == 0 {
		return domain.CommandOutput{}, domain.ErrEmptyCommand
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	stdoutLog := &logWriter{logger: e.logger, prefix: cmd.Name() + ": "}
	stderrLog := &logWriter{logger: e.logger, prefix: cmd.Name() + " (stderr): "}

	c := command(ctx, dir, cmd)
	c.Stdout = io.MultiWriter(&stdoutBuf, stdoutLog)
	c.Stderr = io.MultiWriter(&stderrBuf, stderrLog)

	err := c.Run()
	_ = stdoutLog.Close()
	_ = stderrLog.Close()

	out := domain.CommandOutput{Stdout: stdoutBuf.Bytes(), Stderr: stderrBuf.Bytes()}
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.Wrap(err, "running "+cmd.String())
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		wrapped = zerr.With(wrapped, "dir", dir)
		return out, errors.Join(domain.ErrCommandFailed, wrapped)
	}

	return out, nil
}

func command(ctx context.Context, dir string, cmd domain.Command) *exec.Cmd {
	name := cmd.Name()
	env := resolveEnvironment(os.Environ(), cmd.Environment)

	// Resolve against the child's PATH, which may differ from ours.
	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args()...) //nolint:gosec // user provided command
	if len(c.Args) > 0 {
		c.Args[0] = name
	}
	c.Dir = dir
	c.Env = env
	return c
}

type logWriter struct {
	logger ports.Logger
	prefix string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}
	w.logger.Debug(w.prefix + msg)
}

// resolveEnvironment applies overrides on top of the inherited environment.
// The result is sorted by key.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for _, k := range slices.Sorted(maps.Keys(envMap)) {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
