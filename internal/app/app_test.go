package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebuildat/internal/adapters/telemetry"
	"go.trai.ch/rebuildat/internal/app"
	"go.trai.ch/rebuildat/internal/core/domain"
	"go.trai.ch/rebuildat/internal/core/ports"
	"go.trai.ch/rebuildat/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const futureOutput = "path,slug,title,date,expiryDate,publishDate,draft,permalink\n" +
	"content/post/a.md,a,A,2030-01-01T00:00:00Z,,2030-01-01T00:00:00Z,false,https://example.org/a/\n"

type fixture struct {
	ctrl     *gomock.Controller
	loader   *mocks.MockConfigLoader
	executor *mocks.MockExecutor
	writer   *mocks.MockScheduleWriter
	logger   *mocks.MockLogger
	factory  ports.WatcherFactory
	app      *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:     ctrl,
		loader:   mocks.NewMockConfigLoader(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		writer:   mocks.NewMockScheduleWriter(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().SetJSON(gomock.Any()).AnyTimes()
	f.logger.EXPECT().SetVerbose(gomock.Any()).AnyTimes()

	factory := func(ignore ...string) (ports.Watcher, error) {
		if f.factory == nil {
			return nil, errors.New("no watcher configured")
		}
		return f.factory(ignore...)
	}

	f.app = app.New(f.loader, f.executor, f.writer, f.logger, telemetry.NewNoOpTracer(), factory)
	return f
}

func TestApp_Generate(t *testing.T) {
	base := t.TempDir()
	workDir := filepath.Join(base, "site")
	settings := domain.DefaultSettings()
	outputPath := filepath.Join(workDir, "data", "rebuild_at", "dates.json")

	f := newFixture(t)
	f.loader.EXPECT().Load(workDir, "").Return(settings, nil)
	f.executor.EXPECT().Run(gomock.Any(), workDir, settings.Command).
		Return(domain.CommandOutput{Stdout: []byte(futureOutput)}, nil)
	f.writer.EXPECT().Write(outputPath, domain.Schedule{
		RebuildAt: []domain.RebuildEntry{{
			Date:        "2030-01-01T00:00:00Z",
			ExpiryDate:  "",
			PublishDate: "2030-01-01T00:00:00Z",
		}},
	}).Return(true, nil)

	res, err := f.app.Generate(context.Background(), app.RunOptions{BaseDir: base, Dir: "site"})
	require.NoError(t, err)

	assert.Equal(t, &app.Result{
		WorkDir:    workDir,
		OutputPath: outputPath,
		Entries:    1,
		Dropped:    1,
		Changed:    true,
	}, res)
}

func TestApp_Generate_EmptyOutputWritesEmptySchedule(t *testing.T) {
	base := t.TempDir()
	settings := domain.DefaultSettings()

	f := newFixture(t)
	f.loader.EXPECT().Load(base, "").Return(settings, nil)
	f.executor.EXPECT().Run(gomock.Any(), base, gomock.Any()).
		Return(domain.CommandOutput{Stdout: []byte("path,slug,title,date,expiryDate,publishDate,draft,permalink\n")}, nil)
	f.writer.EXPECT().Write(gomock.Any(), domain.Schedule{RebuildAt: []domain.RebuildEntry{}}).Return(false, nil)

	res, err := f.app.Generate(context.Background(), app.RunOptions{BaseDir: base})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Entries)
	assert.False(t, res.Changed)
}

func TestApp_Generate_MissingHeaderWarns(t *testing.T) {
	base := t.TempDir()

	f := newFixture(t)
	f.loader.EXPECT().Load(base, "").Return(domain.DefaultSettings(), nil)
	f.executor.EXPECT().Run(gomock.Any(), base, gomock.Any()).
		Return(domain.CommandOutput{Stdout: []byte("a,b,c,d,e,f\nshort,row\n")}, nil)
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)
	f.writer.EXPECT().Write(gomock.Any(), domain.Schedule{
		RebuildAt: []domain.RebuildEntry{{Date: "d", ExpiryDate: "e", PublishDate: "f"}},
	}).Return(true, nil)

	res, err := f.app.Generate(context.Background(), app.RunOptions{BaseDir: base})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Entries)
	// The short row and the trailing blank line.
	assert.Equal(t, 2, res.Dropped)
}

func TestApp_Generate_DiagnosticOutput(t *testing.T) {
	base := t.TempDir()

	f := newFixture(t)
	f.loader.EXPECT().Load(base, "").Return(domain.DefaultSettings(), nil)
	f.executor.EXPECT().Run(gomock.Any(), base, gomock.Any()).
		Return(domain.CommandOutput{
			Stdout: []byte(futureOutput),
			Stderr: []byte("WARN deprecated config key\n"),
		}, nil)

	_, err := f.app.Generate(context.Background(), app.RunOptions{BaseDir: base})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDiagnosticOutput)
	assert.Contains(t, err.Error(), "WARN deprecated config key")
}

func TestApp_Generate_CommandFailed(t *testing.T) {
	base := t.TempDir()

	f := newFixture(t)
	f.loader.EXPECT().Load(base, "").Return(domain.DefaultSettings(), nil)
	f.executor.EXPECT().Run(gomock.Any(), base, gomock.Any()).
		Return(domain.CommandOutput{}, errors.Join(domain.ErrCommandFailed, zerr.New("exit status 1")))

	_, err := f.app.Generate(context.Background(), app.RunOptions{BaseDir: base})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCommandFailed)
}

func TestApp_Generate_SettingsError(t *testing.T) {
	base := t.TempDir()

	f := newFixture(t)
	f.loader.EXPECT().Load(base, "custom.yaml").
		Return(nil, domain.Annotate(domain.ErrConfigNotFound, "path", "custom.yaml"))

	_, err := f.app.Generate(context.Background(), app.RunOptions{BaseDir: base, ConfigPath: "custom.yaml"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestApp_Run_WriteFailureIsLogged(t *testing.T) {
	base := t.TempDir()

	f := newFixture(t)
	f.loader.EXPECT().Load(base, "").Return(domain.DefaultSettings(), nil)
	f.executor.EXPECT().Run(gomock.Any(), base, gomock.Any()).
		Return(domain.CommandOutput{Stdout: []byte(futureOutput)}, nil)
	f.writer.EXPECT().Write(gomock.Any(), gomock.Any()).
		Return(false, errors.Join(domain.ErrWriteFailed, zerr.New("read-only file system")))

	var logged error
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) { logged = err }).Times(1)

	err := f.app.Run(context.Background(), app.RunOptions{BaseDir: base, LogFormat: "json"})
	require.NoError(t, err)
	assert.ErrorIs(t, logged, domain.ErrWriteFailed)
}

func TestApp_Run_ConfiguresLogger(t *testing.T) {
	base := t.TempDir()

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	executor := mocks.NewMockExecutor(ctrl)
	writer := mocks.NewMockScheduleWriter(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		logger.EXPECT().SetJSON(true),
		logger.EXPECT().SetVerbose(true),
	)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	loader.EXPECT().Load(base, "").Return(domain.DefaultSettings(), nil)
	executor.EXPECT().Run(gomock.Any(), base, gomock.Any()).
		Return(domain.CommandOutput{Stdout: []byte(futureOutput)}, nil)
	writer.EXPECT().Write(gomock.Any(), gomock.Any()).Return(true, nil)

	a := app.New(loader, executor, writer, logger, telemetry.NewNoOpTracer(), nil)
	err := a.Run(context.Background(), app.RunOptions{BaseDir: base, LogFormat: "json", Verbose: true})
	require.NoError(t, err)
}

func TestApp_Run_InvalidLogFormat(t *testing.T) {
	f := newFixture(t)

	err := f.app.Run(context.Background(), app.RunOptions{BaseDir: t.TempDir(), LogFormat: "xml"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidLogFormat)
}

func TestApp_Run_ReturnsCommandFailure(t *testing.T) {
	base := t.TempDir()

	f := newFixture(t)
	f.loader.EXPECT().Load(base, "").Return(domain.DefaultSettings(), nil)
	f.executor.EXPECT().Run(gomock.Any(), base, gomock.Any()).
		Return(domain.CommandOutput{}, errors.Join(domain.ErrCommandFailed, zerr.New("not found")))

	err := f.app.Run(context.Background(), app.RunOptions{BaseDir: base, LogFormat: "pretty"})
	require.ErrorIs(t, err, domain.ErrCommandFailed)
}

func TestApp_Generate_UsesProcessWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	wd, err := os.Getwd()
	require.NoError(t, err)

	f := newFixture(t)
	f.loader.EXPECT().Load(wd, "").Return(domain.DefaultSettings(), nil)
	f.executor.EXPECT().Run(gomock.Any(), wd, gomock.Any()).
		Return(domain.CommandOutput{Stdout: []byte(futureOutput)}, nil)
	f.writer.EXPECT().Write(filepath.Join(wd, domain.DefaultOutputPath()), gomock.Any()).Return(true, nil)

	res, err := f.app.Generate(context.Background(), app.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, wd, res.WorkDir)
}
