package static

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// validatePathSecurity returns the absolute form of candidate when it lies
// under absRoot. absRoot must already be absolute and clean.
func validatePathSecurity(absRoot, candidate string) (string, error) {
	absPath, err := filepath.Abs(candidate)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPathTraversal, err)
	}

	if absPath == absRoot {
		return absPath, nil
	}

	prefix := absRoot
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if !strings.HasPrefix(absPath, prefix) {
		return "", ErrPathTraversal
	}

	return absPath, nil
}

// WithinRoot reports whether path, once made absolute and cleaned, lies under root.
func WithinRoot(root, path string) bool {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	_, err = validatePathSecurity(absRoot, path)
	return err == nil
}

// validateStartup checks that the serving root exists and is a directory.
func validateStartup(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", root)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", root)
	}

	return nil
}
