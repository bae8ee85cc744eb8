// Package datafile persists the rebuild schedule into the site's data directory.
package datafile

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/rebuildat/internal/core/domain"
	"go.trai.ch/rebuildat/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ScheduleWriter = (*Writer)(nil)

// Writer implements ports.ScheduleWriter with atomic file replacement.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Encode renders schedule as indented JSON without a trailing newline.
func Encode(schedule domain.Schedule) ([]byte, error) {
	if schedule.RebuildAt == nil {
		schedule.RebuildAt = []domain.RebuildEntry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(schedule); err != nil {
		return nil, errors.Join(domain.ErrScheduleMarshalFailed, err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Write stores schedule at path. Identical existing content is left untouched
// and reported as unchanged.
func (w *Writer) Write(path string, schedule domain.Schedule) (bool, error) {
	data, err := Encode(schedule)
	if err != nil {
		return false, err
	}

	same, err := sameContent(path, data)
	if err != nil {
		return false, writeError(err, "failed to inspect existing schedule", path)
	}
	if same {
		return false, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return false, writeError(err, "failed to create data directory", dir)
	}

	if err := writeAtomic(path, data); err != nil {
		return false, err
	}

	return true, nil
}

// writeAtomic writes data to a temporary file next to path and renames it into place.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return writeError(err, "failed to create temporary file", path)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return writeError(err, "failed to write temporary file", tmpName)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return writeError(err, "failed to set file mode", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return writeError(err, "failed to close temporary file", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return writeError(err, "failed to replace schedule", path)
	}

	committed = true
	return nil
}

// sameContent reports whether the file at path already holds data.
func sameContent(path string, data []byte) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if !info.Mode().IsRegular() || info.Size() != int64(len(data)) {
		return false, nil
	}

	existing, err := fileDigest(path)
	if err != nil {
		return false, err
	}
	return existing == xxhash.Sum64(data), nil
}

// fileDigest computes the XXHash of a file's content.
func fileDigest(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, err
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, err
	}
	return hasher.Sum64(), nil
}

func writeError(err error, msg, path string) error {
	return errors.Join(domain.ErrWriteFailed, zerr.With(zerr.Wrap(err, msg), "path", path))
}
