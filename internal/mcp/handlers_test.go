package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcpfileserver/internal/config"
	"mcpfileserver/internal/filemanager"
	"mcpfileserver/internal/logging"
	"mcpfileserver/internal/telemetry"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.DataDir = dir

	logger := logging.NewAppLogger()
	fm, err := filemanager.NewFileManager(dir, logger)
	require.NoError(t, err)
	t.Cleanup(func() { fm.Close() })

	return &Server{
		config:      &cfg,
		logger:      logger,
		fileManager: fm,
		metrics:     telemetry.NewMetrics(),
	}, dir
}

func callRequest(tool string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = tool
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestHandleListFiles(t *testing.T) {
	s, dir := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hi"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "docs"), 0755))

	t.Run("lists entries", func(t *testing.T) {
		res, err := s.handleListFiles(context.Background(), callRequest("list_files", map[string]any{"path": "/"}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var entries []map[string]any
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &entries))
		require.Len(t, entries, 2)

		assert.Equal(t, "a.txt", entries[0]["name"])
		assert.Equal(t, "/a.txt", entries[0]["full path"])
		assert.Equal(t, "File", entries[0]["type"])
		assert.Equal(t, float64(2), entries[0]["size"])

		assert.Equal(t, "docs", entries[1]["name"])
		assert.Equal(t, "Directory", entries[1]["type"])
		assert.Equal(t, "-", entries[1]["size"])
	})

	t.Run("empty directory", func(t *testing.T) {
		res, err := s.handleListFiles(context.Background(), callRequest("list_files", map[string]any{"path": "/docs"}))
		require.NoError(t, err)
		require.False(t, res.IsError)
		assert.Equal(t, "No files found in directory /docs.", resultText(t, res))
	})

	t.Run("missing directory", func(t *testing.T) {
		res, err := s.handleListFiles(context.Background(), callRequest("list_files", map[string]any{"path": "/nope"}))
		require.NoError(t, err)
		require.True(t, res.IsError)
		assert.Equal(t, "Directory /nope does not exist or is not a directory.", resultText(t, res))
	})

	t.Run("missing argument", func(t *testing.T) {
		res, err := s.handleListFiles(context.Background(), callRequest("list_files", map[string]any{}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}

func TestHandleReadFile(t *testing.T) {
	s, dir := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "note.txt"), []byte("file body"), 0644))

	t.Run("returns raw content", func(t *testing.T) {
		res, err := s.handleReadFile(context.Background(), callRequest("read_file", map[string]any{"file_path": "/note.txt"}))
		require.NoError(t, err)
		require.False(t, res.IsError)
		assert.Equal(t, "file body", resultText(t, res))
	})

	t.Run("missing file", func(t *testing.T) {
		res, err := s.handleReadFile(context.Background(), callRequest("read_file", map[string]any{"file_path": "/nope.txt"}))
		require.NoError(t, err)
		require.True(t, res.IsError)
		assert.Equal(t, "File /nope.txt does not exist or is not a file.", resultText(t, res))
	})
}

func TestHandleCreateFile(t *testing.T) {
	s, dir := newTestServer(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	t.Run("creates file", func(t *testing.T) {
		res, err := s.handleCreateFile(context.Background(), callRequest("create_file", map[string]any{
			"file_path": "/sub/new.txt",
			"content":   "hello",
		}))
		require.NoError(t, err)
		require.False(t, res.IsError)
		assert.Equal(t, "File /sub/new.txt created successfully.", resultText(t, res))

		data, err := os.ReadFile(filepath.Join(dir, "sub", "new.txt"))
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("already exists", func(t *testing.T) {
		res, err := s.handleCreateFile(context.Background(), callRequest("create_file", map[string]any{
			"file_path": "/sub/new.txt",
			"content":   "other",
		}))
		require.NoError(t, err)
		require.True(t, res.IsError)
		assert.Equal(t, "File /sub/new.txt already exists.", resultText(t, res))
	})

	t.Run("path is directory", func(t *testing.T) {
		res, err := s.handleCreateFile(context.Background(), callRequest("create_file", map[string]any{
			"file_path": "/sub",
			"content":   "x",
		}))
		require.NoError(t, err)
		require.True(t, res.IsError)
		assert.Equal(t, "File /sub is an existing directory.", resultText(t, res))
	})
}

func TestHandleDeleteFile(t *testing.T) {
	s, dir := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gone.txt"), []byte("x"), 0644))

	t.Run("deletes file", func(t *testing.T) {
		res, err := s.handleDeleteFile(context.Background(), callRequest("delete_file", map[string]any{"file_path": "/gone.txt"}))
		require.NoError(t, err)
		require.False(t, res.IsError)
		assert.Equal(t, "File /gone.txt deleted successfully.", resultText(t, res))
	})

	t.Run("missing file", func(t *testing.T) {
		res, err := s.handleDeleteFile(context.Background(), callRequest("delete_file", map[string]any{"file_path": "/gone.txt"}))
		require.NoError(t, err)
		require.True(t, res.IsError)
		assert.Equal(t, "File /gone.txt does not exist or is not a file.", resultText(t, res))
	})
}

func TestHandleCreateDirectory(t *testing.T) {
	s, dir := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f.txt"), nil, 0644))

	t.Run("creates nested directory", func(t *testing.T) {
		res, err := s.handleCreateDirectory(context.Background(), callRequest("create_directory", map[string]any{"dir_path": "/a/b"}))
		require.NoError(t, err)
		require.False(t, res.IsError)
		assert.Equal(t, "Directory /a/b created successfully.", resultText(t, res))

		info, err := os.Stat(filepath.Join(dir, "a", "b"))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("already exists", func(t *testing.T) {
		res, err := s.handleCreateDirectory(context.Background(), callRequest("create_directory", map[string]any{"dir_path": "/a/b"}))
		require.NoError(t, err)
		require.True(t, res.IsError)
		assert.Equal(t, "Directory /a/b already exists.", resultText(t, res))
	})

	t.Run("occupied by file", func(t *testing.T) {
		res, err := s.handleCreateDirectory(context.Background(), callRequest("create_directory", map[string]any{"dir_path": "/f.txt"}))
		require.NoError(t, err)
		require.True(t, res.IsError)
		assert.Equal(t, "File /f.txt is an existing file.", resultText(t, res))
	})
}

func TestHandleDeleteDirectory(t *testing.T) {
	s, dir := newTestServer(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "empty"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "full", "inner"), 0755))

	t.Run("deletes empty directory", func(t *testing.T) {
		res, err := s.handleDeleteDirectory(context.Background(), callRequest("delete_directory", map[string]any{"dir_path": "/empty"}))
		require.NoError(t, err)
		require.False(t, res.IsError)
		assert.Equal(t, "Directory /empty deleted successfully.", resultText(t, res))
	})

	t.Run("refuses non-empty directory", func(t *testing.T) {
		res, err := s.handleDeleteDirectory(context.Background(), callRequest("delete_directory", map[string]any{"dir_path": "/full"}))
		require.NoError(t, err)
		require.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "Error deleting directory /full")
	})

	t.Run("missing directory", func(t *testing.T) {
		res, err := s.handleDeleteDirectory(context.Background(), callRequest("delete_directory", map[string]any{"dir_path": "/nope"}))
		require.NoError(t, err)
		require.True(t, res.IsError)
		assert.Equal(t, "Directory /nope does not exist or is not a directory.", resultText(t, res))
	})
}

func TestHandleStatFile(t *testing.T) {
	s, dir := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "info.txt"), []byte("12345"), 0644))

	t.Run("returns metadata", func(t *testing.T) {
		res, err := s.handleStatFile(context.Background(), callRequest("stat_file", map[string]any{"path": "/info.txt"}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var info map[string]any
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &info))
		assert.Equal(t, "info.txt", info["name"])
		assert.Equal(t, "/info.txt", info["full path"])
		assert.Equal(t, "File", info["type"])
		assert.Equal(t, float64(5), info["size"])
	})

	t.Run("missing path", func(t *testing.T) {
		res, err := s.handleStatFile(context.Background(), callRequest("stat_file", map[string]any{"path": "/nope"}))
		require.NoError(t, err)
		require.True(t, res.IsError)
		assert.Equal(t, "Path /nope does not exist.", resultText(t, res))
	})
}

func TestHandleMoveFile(t *testing.T) {
	s, dir := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src.txt"), []byte("data"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "taken.txt"), nil, 0644))

	t.Run("moves file", func(t *testing.T) {
		res, err := s.handleMoveFile(context.Background(), callRequest("move_file", map[string]any{
			"source_path":      "/src.txt",
			"destination_path": "/dst.txt",
		}))
		require.NoError(t, err)
		require.False(t, res.IsError)
		assert.Equal(t, "Moved /src.txt to /dst.txt.", resultText(t, res))
	})

	t.Run("missing source", func(t *testing.T) {
		res, err := s.handleMoveFile(context.Background(), callRequest("move_file", map[string]any{
			"source_path":      "/src.txt",
			"destination_path": "/x.txt",
		}))
		require.NoError(t, err)
		require.True(t, res.IsError)
		assert.Equal(t, "Source /src.txt does not exist.", resultText(t, res))
	})

	t.Run("destination occupied", func(t *testing.T) {
		res, err := s.handleMoveFile(context.Background(), callRequest("move_file", map[string]any{
			"source_path":      "/dst.txt",
			"destination_path": "/taken.txt",
		}))
		require.NoError(t, err)
		require.True(t, res.IsError)
		assert.Equal(t, "Destination /taken.txt already exists.", resultText(t, res))
	})
}

func TestTraversalStaysInsideDataDir(t *testing.T) {
	s, dir := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inside.txt"), []byte("in"), 0644))

	res, err := s.handleReadFile(context.Background(), callRequest("read_file", map[string]any{
		"file_path": "../../../inside.txt",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Equal(t, "in", resultText(t, res))
}
