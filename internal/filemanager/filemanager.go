// Package filemanager executes file operations against the data root on
// behalf of MCP tool handlers. Every operation resolves its client-supplied
// path with fileops.Localize and performs I/O through an os.Root, so nothing
// outside the configured data directory is ever read or written.
package filemanager

import (
	"fmt"
	"os"

	"mcpfileserver/internal/logging"
	"mcpfileserver/pkg/fileops"
)

// DefaultMaxReadSize caps read_file responses. Large binary blobs would
// otherwise be buffered whole into a single protocol message.
const DefaultMaxReadSize int64 = 10 << 20 // 10 MiB

// FileManager performs confined filesystem operations under a single data
// root. It is safe for concurrent use: the underlying os.Root is, and the
// manager itself holds no mutable state after construction.
type FileManager struct {
	root        *os.Root
	rootDir     string
	logger      *logging.AppLogger
	maxReadSize int64
}

// NewFileManager opens dataDir as the confinement boundary. The directory
// must already exist.
func NewFileManager(dataDir string, logger *logging.AppLogger) (*FileManager, error) {
	root, abs, err := fileops.OpenDataRoot(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open data root: %w", err)
	}

	logger.Debug("Opened data root", "dir", abs)

	return &FileManager{
		root:        root,
		rootDir:     abs,
		logger:      logger,
		maxReadSize: DefaultMaxReadSize,
	}, nil
}

// RootDir returns the absolute path of the data root.
func (fm *FileManager) RootDir() string {
	return fm.rootDir
}

// SetMaxReadSize overrides the read size limit. n <= 0 disables the limit.
func (fm *FileManager) SetMaxReadSize(n int64) {
	fm.maxReadSize = n
}

// Close releases the data root. The manager must not be used afterwards.
func (fm *FileManager) Close() error {
	if fm.root != nil {
		err := fm.root.Close()
		fm.root = nil
		return err
	}
	return nil
}
