package domain

import (
	"errors"
	"path/filepath"

	"go.trai.ch/zerr"
)

// ResolveWorkDir returns the directory a run operates in. The base directory is
// made absolute; an empty dir keeps it, a relative dir is joined onto it and an
// absolute dir replaces it. Existence is not checked.
func ResolveWorkDir(base, dir string) (string, error) {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", errors.Join(ErrFailedToResolveWorkDir, zerr.With(err, "base", base))
	}

	if dir == "" {
		return absBase, nil
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir), nil
	}
	return filepath.Join(absBase, dir), nil
}

// ResolvePath resolves p against the working directory unless it is absolute.
func ResolvePath(workDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(workDir, p)
}
