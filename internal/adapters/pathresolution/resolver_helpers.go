package pathresolution

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func buildSearchPath(fallbackDir, pathValue string) []string {
	dirs := []string{}
	if fallbackDir != "" {
		dirs = append(dirs, fallbackDir)
	}
	for _, dir := range strings.Split(pathValue, string(os.PathListSeparator)) {
		if dir == "" {
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// canonicalize returns the absolute path with every symlink evaluated.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("making %s absolute: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("evaluating symlinks in %s: %w", abs, err)
	}
	return resolved, nil
}
