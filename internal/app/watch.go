package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/rebuildat/internal/adapters/watcher"
	"go.trai.ch/rebuildat/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Watch generates the schedule once and then regenerates it whenever a file
// below the configured watch paths changes, until ctx is cancelled.
// Runs never overlap. Changes during a run trigger exactly one follow-up run.
func (a *App) Watch(ctx context.Context, opts RunOptions) error {
	workDir, settings, err := a.prepare(ctx, opts)
	if err != nil {
		return err
	}

	outputPath := domain.ResolvePath(workDir, settings.Output)

	if _, err := a.generate(ctx, workDir, settings); err != nil {
		a.logger.Error(err)
	}

	roots, err := a.watchRoots(workDir, settings.Watch.Paths)
	if err != nil {
		return err
	}

	w, err := a.watcherFactory(filepath.Dir(outputPath))
	if err != nil {
		return errors.Join(domain.ErrWatcherFailed, err)
	}
	defer func() {
		_ = w.Stop()
	}()

	if err := w.Start(ctx, roots); err != nil {
		return errors.Join(domain.ErrWatcherFailed, err)
	}

	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(settings.Watch.Debounce, func(paths []string) {
		a.logger.Debug(fmt.Sprintf("Detected changes in %d paths: %s", len(paths), strings.Join(paths, ", ")))
		select {
		case trigger <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	a.logger.Info(fmt.Sprintf("Watching %s for changes", strings.Join(roots, ", ")))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for event := range w.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-trigger:
				_, err := a.generate(gctx, workDir, settings)
				if err != nil && gctx.Err() == nil {
					a.logger.Error(err)
				}
			}
		}
	})

	return g.Wait()
}

// watchRoots resolves the configured watch paths against workDir and keeps
// the ones that exist.
func (a *App) watchRoots(workDir string, paths []string) ([]string, error) {
	roots := make([]string, 0, len(paths))
	for _, p := range paths {
		root := domain.ResolvePath(workDir, p)
		if _, err := os.Stat(root); err != nil {
			a.logger.Warn(fmt.Sprintf("Skipping watch path %s: %v", root, err))
			continue
		}
		roots = append(roots, root)
	}

	if len(roots) == 0 {
		return nil, zerr.With(domain.Annotate(domain.ErrNothingToWatch, "work_dir", workDir),
			"paths", strings.Join(paths, ", "))
	}

	return roots, nil
}
