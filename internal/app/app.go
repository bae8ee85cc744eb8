// Package app implements the application layer for rebuildat.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/rebuildat/internal/adapters/detector"
	"go.trai.ch/rebuildat/internal/core/domain"
	"go.trai.ch/rebuildat/internal/core/ports"
	"go.trai.ch/rebuildat/internal/engine/futurelist"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader   ports.ConfigLoader
	executor       ports.Executor
	writer         ports.ScheduleWriter
	logger         ports.Logger
	tracer         ports.Tracer
	watcherFactory ports.WatcherFactory
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	writer ports.ScheduleWriter,
	log ports.Logger,
	tracer ports.Tracer,
	watcherFactory ports.WatcherFactory,
) *App {
	return &App{
		configLoader:   loader,
		executor:       executor,
		writer:         writer,
		logger:         log,
		tracer:         tracer,
		watcherFactory: watcherFactory,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// BaseDir is the directory Dir is resolved against. Empty means the process
	// working directory.
	BaseDir string
	// Dir optionally selects the site directory, relative to BaseDir unless absolute.
	Dir string
	// ConfigPath overrides the settings file location.
	ConfigPath string
	// LogFormat is one of auto, pretty or json.
	LogFormat string
	Verbose   bool
	Watch     bool
}

// Result describes one generation.
type Result struct {
	WorkDir    string
	OutputPath string
	Entries    int
	Dropped    int
	Changed    bool
}

// Run configures logging and generates the rebuild schedule once, or keeps it
// up to date in watch mode. A failure to write the schedule is logged and not
// returned.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	format, err := detector.ResolveLogFormat(opts.LogFormat)
	if err != nil {
		return err
	}
	a.logger.SetJSON(format == detector.FormatJSON)
	a.logger.SetVerbose(opts.Verbose)

	if opts.Watch {
		return a.Watch(ctx, opts)
	}

	_, err = a.Generate(ctx, opts)
	if errors.Is(err, domain.ErrWriteFailed) {
		a.logger.Error(err)
		return nil
	}
	return err
}

// Generate resolves the working directory, loads settings, lists future
// content and writes the rebuild schedule.
func (a *App) Generate(ctx context.Context, opts RunOptions) (*Result, error) {
	workDir, settings, err := a.prepare(ctx, opts)
	if err != nil {
		return nil, err
	}
	return a.generate(ctx, workDir, settings)
}

// prepare resolves the working directory and loads its settings.
func (a *App) prepare(ctx context.Context, opts RunOptions) (string, *domain.Settings, error) {
	_, span := a.tracer.Start(ctx, "prepare")
	defer span.End()

	workDir, err := domain.ResolveWorkDir(opts.BaseDir, opts.Dir)
	if err != nil {
		span.RecordError(err)
		return "", nil, err
	}
	span.SetAttribute("work_dir", workDir)

	if opts.Dir == "" {
		a.logger.Info(fmt.Sprintf("No relative path provided, staying in: %s", workDir))
	} else {
		a.logger.Info(fmt.Sprintf("Current directory changed to: %s", workDir))
	}

	settings, err := a.configLoader.Load(workDir, opts.ConfigPath)
	if err != nil {
		span.RecordError(err)
		return "", nil, zerr.Wrap(err, "failed to load settings")
	}

	return workDir, settings, nil
}

// generate runs one pipeline pass for an already prepared working directory.
func (a *App) generate(ctx context.Context, workDir string, settings *domain.Settings) (*Result, error) {
	ctx, span := a.tracer.Start(ctx, "generate")
	defer span.End()

	output, err := a.list(ctx, workDir, settings.Command)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	parsed := a.parse(ctx, output, settings.HeaderPrefix)

	res := &Result{
		WorkDir:    workDir,
		OutputPath: domain.ResolvePath(workDir, settings.Output),
		Entries:    len(parsed.Entries),
		Dropped:    parsed.Dropped,
	}

	res.Changed, err = a.write(ctx, res.OutputPath, domain.NewSchedule(parsed.Entries))
	if err != nil {
		span.RecordError(err)
		return res, err
	}

	return res, nil
}

// list runs the external command and returns its standard output.
func (a *App) list(ctx context.Context, workDir string, cmd domain.Command) (string, error) {
	ctx, span := a.tracer.Start(ctx, "run command")
	defer span.End()
	span.SetAttribute("command", cmd.String())

	out, err := a.executor.Run(ctx, workDir, cmd)
	if err != nil {
		span.RecordError(err)
		return "", zerr.Wrap(err, "failed to list future content")
	}

	if len(out.Stderr) > 0 {
		diag := zerr.With(zerr.New(strings.TrimRight(string(out.Stderr), "\r\n")), "command", cmd.String())
		err := errors.Join(domain.ErrDiagnosticOutput, diag)
		span.RecordError(err)
		return "", err
	}

	return string(out.Stdout), nil
}

func (a *App) parse(ctx context.Context, output, headerPrefix string) futurelist.Result {
	_, span := a.tracer.Start(ctx, "parse")
	defer span.End()

	res := futurelist.Parse(output, headerPrefix)
	span.SetAttribute("entries", len(res.Entries))
	span.SetAttribute("dropped", res.Dropped)

	if !res.HeaderFound {
		a.logger.Warn(fmt.Sprintf("No line starting with %q found, treating all output as data rows", headerPrefix))
	}
	a.logger.Debug(fmt.Sprintf("Found %d future entries, skipped %d short rows", len(res.Entries), res.Dropped))

	return res
}

func (a *App) write(ctx context.Context, path string, schedule domain.Schedule) (bool, error) {
	_, span := a.tracer.Start(ctx, "write")
	defer span.End()
	span.SetAttribute("path", path)

	changed, err := a.writer.Write(path, schedule)
	if err != nil {
		span.RecordError(err)
		return false, zerr.Wrap(err, "failed to write rebuild schedule")
	}
	span.SetAttribute("changed", changed)

	if changed {
		a.logger.Info(fmt.Sprintf("Future dates JSON saved to %s", path))
	} else {
		a.logger.Info(fmt.Sprintf("Future dates JSON unchanged at %s", path))
	}

	return changed, nil
}
