package fileops

import (
	"fmt"
	"path"
	"strings"
)

// Localize converts a client-supplied virtual path into a path relative to
// the data root, suitable for use with an os.Root.
//
// Wire paths are slash-separated. Absolute and relative inputs are treated
// identically: both are resolved against the virtual root, so "/a/b" and
// "a/b" name the same entry. Traversal segments are normalized lexically
// before any filesystem access; a path that tries to climb above the root
// ("../../etc/passwd") clamps at the virtual root instead of escaping.
//
// Parameters:
//   - p: The wire path as received from the client
//
// Returns:
//   - string: Root-relative path ("." for the root itself)
//   - error: Validation errors for empty paths, NUL bytes, or backslash
//     separators
//
// Security considerations:
//   - Backslashes are rejected rather than translated: on Windows they are
//     separators, on Unix they are ordinary filename bytes, and accepting
//     them would make the same wire path name different files per platform.
//   - Localize is purely lexical. Symlink confinement is the os.Root's job.
func Localize(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	if strings.ContainsRune(p, 0) {
		return "", fmt.Errorf("path contains NUL byte")
	}
	if strings.ContainsRune(p, '\\') {
		return "", fmt.Errorf("backslash separators not allowed in path")
	}

	// Rooting the input at "/" before cleaning guarantees no ".." survives.
	clean := path.Clean("/" + p)
	rel := strings.TrimPrefix(clean, "/")
	if rel == "" {
		rel = "."
	}
	return rel, nil
}

// Virtualize maps a root-relative path back into the client-visible virtual
// absolute form. It is the inverse of Localize for paths inside the root:
// "a/b.txt" becomes "/a/b.txt" and "." becomes "/".
func Virtualize(rel string) string {
	clean := path.Clean(rel)
	if clean == "." || clean == "/" {
		return "/"
	}
	return "/" + strings.TrimPrefix(clean, "/")
}
