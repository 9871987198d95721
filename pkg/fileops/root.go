package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a path that starts with "~/" to the user's home
// directory. Paths without the prefix are returned unchanged.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// ValidateDataDir checks that a directory is usable as the data root
// without opening it. The directory must already exist: the server never
// creates its own root, so a misconfigured path fails fast at startup
// instead of silently serving an empty tree.
//
// Parameters:
//   - dir: The data root path (absolute, or "~/"-relative)
//
// Returns:
//   - string: The cleaned absolute path of the data root
//   - error: Validation errors if the path is empty, missing, or not a
//     directory
func ValidateDataDir(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", fmt.Errorf("data directory cannot be empty")
	}

	expanded := ExpandPath(strings.TrimSpace(dir))
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("cannot resolve data directory: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("data directory does not exist: %s", abs)
		}
		return "", fmt.Errorf("cannot access data directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("data path is not a directory: %s", abs)
	}

	return abs, nil
}

// OpenDataRoot validates dir and opens it as the confinement boundary for
// all file operations. Every subsequent open, create, rename, and delete
// must go through the returned os.Root; the kernel then refuses any
// resolution that would leave the root, including via symlinks.
//
// Returns the root, the cleaned absolute root path, and any error. The
// caller owns the root and must Close it.
func OpenDataRoot(dir string) (*os.Root, string, error) {
	abs, err := ValidateDataDir(dir)
	if err != nil {
		return nil, "", err
	}

	root, err := os.OpenRoot(abs)
	if err != nil {
		return nil, "", fmt.Errorf("cannot open data root: %w", err)
	}

	return root, abs, nil
}
