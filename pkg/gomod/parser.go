package gomod

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// FindEnclosingModule walks up from the directory containing path looking for
// a go.mod and returns its module path. Returns "" with a nil error when the
// file is not inside a module.
func FindEnclosingModule(path string) (string, error) {
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}

	for {
		gomodPath := filepath.Join(dir, "go.mod")

		data, err := os.ReadFile(gomodPath)
		if err == nil {
			f, parseErr := modfile.Parse(gomodPath, data, nil)
			if parseErr != nil {
				return "", fmt.Errorf("failed to parse %s: %w", gomodPath, parseErr)
			}
			if f.Module == nil {
				return "", fmt.Errorf("no module directive in %s", gomodPath)
			}
			return f.Module.Mod.Path, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to read %s: %w", gomodPath, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
