package filemanager

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"mcpfileserver/pkg/fileops"
)

// ListDir returns the immediate children of the directory named by the wire
// path p, sorted by name. Returns ErrNotDirectory if p does not name an
// existing directory.
func (fm *FileManager) ListDir(p string) ([]Entry, error) {
	rel, err := fileops.Localize(p)
	if err != nil {
		return nil, err
	}

	info, err := fm.root.Stat(rel)
	if err != nil || !info.IsDir() {
		return nil, ErrNotDirectory
	}

	dir, err := fm.root.Open(rel)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory: %w", err)
	}
	defer dir.Close()

	dirEntries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	slices.SortFunc(dirEntries, func(a, b os.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entry := Entry{
			Name:     de.Name(),
			FullPath: fileops.Virtualize(path.Join(rel, de.Name())),
		}
		if de.IsDir() {
			entry.Type = TypeDirectory
			entry.Size = "-"
		} else {
			entry.Type = TypeFile
			if fi, err := de.Info(); err == nil {
				entry.Size = fi.Size()
			} else {
				// Entry vanished between ReadDir and Info; report what we saw.
				entry.Size = int64(0)
			}
		}
		entries = append(entries, entry)
	}

	fm.logger.Debug("Listed directory", "path", p, "entries", len(entries))
	return entries, nil
}

// ReadFile returns the full contents of the file named by p. Returns
// ErrNotFile if p does not name a regular file, ErrTooLarge if the file
// exceeds the configured read limit.
func (fm *FileManager) ReadFile(p string) (string, error) {
	rel, err := fileops.Localize(p)
	if err != nil {
		return "", err
	}

	info, err := fm.root.Stat(rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFile
		}
		return "", fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() || !info.Mode().IsRegular() {
		return "", ErrNotFile
	}
	if err := fileops.ValidateReadableFile(info, fm.maxReadSize); err != nil {
		return "", fmt.Errorf("%w: %s", ErrTooLarge, err)
	}

	data, err := fm.root.ReadFile(rel)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	fm.logger.Debug("Read file", "path", p, "bytes", len(data))
	return string(data), nil
}

// CreateFile creates a new file at p with the given content. The create is
// exclusive: an existing entry yields ErrIsDirectory or ErrExists and the
// existing data is never touched.
func (fm *FileManager) CreateFile(p, content string) error {
	rel, err := fileops.Localize(p)
	if err != nil {
		return err
	}

	f, err := fm.root.OpenFile(rel, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			if info, statErr := fm.root.Stat(rel); statErr == nil && info.IsDir() {
				return ErrIsDirectory
			}
			return ErrExists
		}
		return fmt.Errorf("failed to create file: %w", err)
	}

	var ok bool
	defer func() {
		f.Close()
		if !ok {
			// Don't leave a half-written file behind.
			fm.root.Remove(rel)
		}
	}()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync file: %w", err)
	}

	ok = true
	fm.logger.Debug("Created file", "path", p, "bytes", len(content))
	return nil
}

// DeleteFile removes the file named by p. Returns ErrNotFile if p does not
// name a regular file; directories are never deleted here.
func (fm *FileManager) DeleteFile(p string) error {
	rel, err := fileops.Localize(p)
	if err != nil {
		return err
	}

	info, err := fm.root.Stat(rel)
	if err != nil || !info.Mode().IsRegular() {
		return ErrNotFile
	}

	if err := fm.root.Remove(rel); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	fm.logger.Debug("Deleted file", "path", p)
	return nil
}

// MakeDir creates the directory named by p, including missing parents.
// Returns ErrExists if the directory is already there, ErrIsFile if a file
// occupies the path.
func (fm *FileManager) MakeDir(p string) error {
	rel, err := fileops.Localize(p)
	if err != nil {
		return err
	}

	if info, err := fm.root.Stat(rel); err == nil {
		if info.IsDir() {
			return ErrExists
		}
		return ErrIsFile
	}

	if err := fm.root.MkdirAll(rel, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	fm.logger.Debug("Created directory", "path", p)
	return nil
}

// RemoveDir removes the directory named by p. Returns ErrNotDirectory if p
// does not name an existing directory. Non-empty directories are refused by
// the filesystem and surface as a wrapped error.
func (fm *FileManager) RemoveDir(p string) error {
	rel, err := fileops.Localize(p)
	if err != nil {
		return err
	}

	info, err := fm.root.Stat(rel)
	if err != nil || !info.IsDir() {
		return ErrNotDirectory
	}

	if err := fm.root.Remove(rel); err != nil {
		return fmt.Errorf("failed to delete directory: %w", err)
	}

	fm.logger.Debug("Deleted directory", "path", p)
	return nil
}

// Stat returns metadata for the entry named by p. Returns ErrNotFound if p
// does not exist.
func (fm *FileManager) Stat(p string) (FileInfo, error) {
	rel, err := fileops.Localize(p)
	if err != nil {
		return FileInfo{}, err
	}

	info, err := fm.root.Stat(rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FileInfo{}, ErrNotFound
		}
		return FileInfo{}, fmt.Errorf("failed to stat path: %w", err)
	}

	entryType := TypeFile
	var size int64
	if info.IsDir() {
		entryType = TypeDirectory
	} else {
		size = info.Size()
	}

	return FileInfo{
		Name:        path.Base(fileops.Virtualize(rel)),
		FullPath:    fileops.Virtualize(rel),
		Type:        entryType,
		Size:        size,
		Permissions: info.Mode().Perm().String(),
		Modified:    info.ModTime(),
	}, nil
}

// Move renames src to dst within the data root. Returns ErrNotFound if src
// is missing and ErrExists if dst is already occupied; moves never clobber.
func (fm *FileManager) Move(src, dst string) error {
	srcRel, err := fileops.Localize(src)
	if err != nil {
		return err
	}
	dstRel, err := fileops.Localize(dst)
	if err != nil {
		return err
	}

	if _, err := fm.root.Lstat(srcRel); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to stat source: %w", err)
	}
	if _, err := fm.root.Lstat(dstRel); err == nil {
		return ErrExists
	}

	if err := fm.root.Rename(srcRel, dstRel); err != nil {
		return fmt.Errorf("failed to move: %w", err)
	}

	fm.logger.Debug("Moved", "from", src, "to", dst)
	return nil
}
