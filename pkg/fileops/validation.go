package fileops

import (
	"fmt"
	"io/fs"
)

// ValidateReadableFile checks that a stat result describes a regular file
// whose size is within the given limit. This guards read operations against
// memory exhaustion from very large files; maxSize <= 0 disables the size
// check.
//
// Parameters:
//   - info: Stat result for the file being read
//   - maxSize: Maximum allowed file size in bytes (0 or negative for no limit)
//
// Returns:
//   - error: Validation error if the entry is not a regular file or exceeds
//     the limit
func ValidateReadableFile(info fs.FileInfo, maxSize int64) error {
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file")
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("path is not a regular file")
	}
	if maxSize > 0 && info.Size() > maxSize {
		return fmt.Errorf("file size %d bytes exceeds limit %d bytes", info.Size(), maxSize)
	}
	return nil
}
