package server

import (
	"fmt"
	"os"
	"path/filepath"
)

// executable is swapped in tests.
var executable = os.Executable

// ResolveRoot returns the absolute served directory. An empty root resolves to
// the directory containing the running executable.
func ResolveRoot(root string) (string, error) {
	if root == "" {
		exe, err := executable()
		if err != nil {
			return "", fmt.Errorf("failed to locate executable: %w", err)
		}
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		root = filepath.Dir(exe)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory %q: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}
