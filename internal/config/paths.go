package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// projectMarkers are directories that indicate project root.
var projectMarkers = []string{".git", ".calc"}

// ResolvePaths converts relative paths to absolute paths using the given
// base directory. If basePath is empty, the current working directory is
// used.
func ResolvePaths(paths PathsConfig, basePath string) (PathsConfig, error) {
	if basePath == "" {
		var err error
		basePath, err = os.Getwd()
		if err != nil {
			return paths, fmt.Errorf("get working directory: %w", err)
		}
	}

	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(basePath, p)
	}

	return PathsConfig{
		State: resolve(paths.State),
		Audit: resolve(paths.Audit),
		Log:   resolve(paths.Log),
	}, nil
}

// FindProjectRoot walks up the directory tree from startDir looking for a
// project marker (.git or .calc). Returns the directory containing the
// marker, or the absolute form of startDir if no marker is found.
func FindProjectRoot(startDir string) string {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "."
		}
	}

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return startDir
	}

	dir := absDir
	for {
		for _, marker := range projectMarkers {
			markerPath := filepath.Join(dir, marker)
			if info, err := os.Stat(markerPath); err == nil && info.IsDir() {
				return dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return absDir
		}
		dir = parent
	}
}
