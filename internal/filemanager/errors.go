package filemanager

import "errors"

// Sentinel errors returned by file operations. Callers translate these into
// client-facing messages; errors.Is works through any wrapping.
var (
	// ErrNotFound is returned when a path does not exist.
	ErrNotFound = errors.New("path does not exist")

	// ErrNotFile is returned by file operations when the path is missing
	// or names something other than a regular file.
	ErrNotFile = errors.New("path is not a file")

	// ErrNotDirectory is returned by directory operations when the path is
	// missing or names something other than a directory.
	ErrNotDirectory = errors.New("path is not a directory")

	// ErrExists is returned by create and move operations when the target
	// already exists.
	ErrExists = errors.New("path already exists")

	// ErrIsDirectory is returned when a file operation hits an existing
	// directory.
	ErrIsDirectory = errors.New("path is an existing directory")

	// ErrIsFile is returned when a directory operation hits an existing
	// file.
	ErrIsFile = errors.New("path is an existing file")

	// ErrTooLarge is returned by reads on files over the configured size
	// limit.
	ErrTooLarge = errors.New("file exceeds maximum readable size")
)
