package app_test

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebuildat/internal/app"
	"go.trai.ch/rebuildat/internal/core/domain"
	"go.trai.ch/rebuildat/internal/core/ports"
	"go.uber.org/mock/gomock"
)

type fakeWatcher struct {
	mu      sync.Mutex
	roots   []string
	ignore  []string
	stopped bool
	events  chan ports.WatchEvent
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{events: make(chan ports.WatchEvent)}
}

func (w *fakeWatcher) Start(ctx context.Context, roots []string) error {
	w.mu.Lock()
	w.roots = roots
	w.mu.Unlock()

	go func() {
		<-ctx.Done()
		close(w.events)
	}()
	return nil
}

func (w *fakeWatcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopped = true
	return nil
}

func (w *fakeWatcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func TestApp_Watch_RegeneratesOnChange(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "content", "post"), 0o750))

	synctest.Test(t, func(t *testing.T) {
		settings := domain.DefaultSettings()
		fw := newFakeWatcher()

		f := newFixture(t)
		f.factory = func(ignore ...string) (ports.Watcher, error) {
			fw.ignore = ignore
			return fw, nil
		}

		f.loader.EXPECT().Load(base, "").Return(settings, nil).Times(1)
		f.executor.EXPECT().Run(gomock.Any(), base, settings.Command).
			Return(domain.CommandOutput{Stdout: []byte(futureOutput)}, nil).Times(2)
		f.writer.EXPECT().Write(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- f.app.Watch(ctx, app.RunOptions{BaseDir: base})
		}()

		synctest.Wait()

		fw.mu.Lock()
		assert.Equal(t, []string{filepath.Join(base, "content")}, fw.roots)
		fw.mu.Unlock()
		assert.Equal(t, []string{filepath.Join(base, "data", "rebuild_at")}, fw.ignore)

		// A burst of changes results in a single regeneration.
		post := filepath.Join(base, "content", "post", "a.md")
		fw.events <- ports.WatchEvent{Path: post, Operation: ports.OpWrite}
		fw.events <- ports.WatchEvent{Path: post, Operation: ports.OpWrite}
		fw.events <- ports.WatchEvent{Path: post, Operation: ports.OpCreate}

		time.Sleep(settings.Watch.Debounce + time.Millisecond)
		synctest.Wait()

		cancel()
		require.NoError(t, <-done)

		fw.mu.Lock()
		assert.True(t, fw.stopped)
		fw.mu.Unlock()
	})
}

func TestApp_Watch_LogsFailedRegeneration(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "content"), 0o750))

	synctest.Test(t, func(t *testing.T) {
		fw := newFakeWatcher()

		f := newFixture(t)
		f.factory = func(...string) (ports.Watcher, error) { return fw, nil }

		f.loader.EXPECT().Load(base, "").Return(domain.DefaultSettings(), nil)
		gomock.InOrder(
			f.executor.EXPECT().Run(gomock.Any(), base, gomock.Any()).
				Return(domain.CommandOutput{Stdout: []byte(futureOutput)}, nil),
			f.executor.EXPECT().Run(gomock.Any(), base, gomock.Any()).
				Return(domain.CommandOutput{Stderr: []byte("Error: broken front matter")}, nil),
		)
		f.writer.EXPECT().Write(gomock.Any(), gomock.Any()).Return(true, nil).Times(1)

		var logged error
		f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) { logged = err }).Times(1)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- f.app.Watch(ctx, app.RunOptions{BaseDir: base})
		}()

		synctest.Wait()
		fw.events <- ports.WatchEvent{Path: filepath.Join(base, "content", "a.md"), Operation: ports.OpWrite}
		time.Sleep(time.Second)
		synctest.Wait()

		assert.ErrorIs(t, logged, domain.ErrDiagnosticOutput)

		cancel()
		require.NoError(t, <-done)
	})
}

func TestApp_Watch_NothingToWatch(t *testing.T) {
	base := t.TempDir()

	f := newFixture(t)
	f.loader.EXPECT().Load(base, "").Return(domain.DefaultSettings(), nil)
	f.executor.EXPECT().Run(gomock.Any(), base, gomock.Any()).
		Return(domain.CommandOutput{Stdout: []byte(futureOutput)}, nil)
	f.writer.EXPECT().Write(gomock.Any(), gomock.Any()).Return(true, nil)
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)

	err := f.app.Watch(context.Background(), app.RunOptions{BaseDir: base})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNothingToWatch)
}
