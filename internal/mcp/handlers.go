package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"mcpfileserver/internal/filemanager"
)

// instrument wraps a tool handler with logging and metrics. Tool-level
// failures are reported through the result's isError flag, so err is only
// non-nil for protocol problems.
func (s *Server) instrument(tool string, h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		res, err := h(ctx, req)

		outcome := "success"
		if err != nil || (res != nil && res.IsError) {
			outcome = "error"
		}
		s.metrics.ObserveToolCall(tool, outcome, time.Since(start))
		s.logger.Debug("Tool call completed",
			"tool", tool,
			"outcome", outcome,
			"duration", time.Since(start),
		)
		return res, err
	}
}

func (s *Server) handleListFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	entries, err := s.fileManager.ListDir(p)
	if err != nil {
		if errors.Is(err, filemanager.ErrNotDirectory) {
			return mcp.NewToolResultError(fmt.Sprintf("Directory %s does not exist or is not a directory.", p)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("Error listing directory %s: %v", p, err)), nil
	}

	if len(entries) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No files found in directory %s.", p)), nil
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error listing directory %s: %v", p, err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleReadFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	content, err := s.fileManager.ReadFile(p)
	if err != nil {
		if errors.Is(err, filemanager.ErrNotFile) {
			return mcp.NewToolResultError(fmt.Sprintf("File %s does not exist or is not a file.", p)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("Error reading file %s: %v", p, err)), nil
	}

	s.metrics.AddBytesRead(len(content))
	return mcp.NewToolResultText(content), nil
}

func (s *Server) handleCreateFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.fileManager.CreateFile(p, content); err != nil {
		switch {
		case errors.Is(err, filemanager.ErrIsDirectory):
			return mcp.NewToolResultError(fmt.Sprintf("File %s is an existing directory.", p)), nil
		case errors.Is(err, filemanager.ErrExists):
			return mcp.NewToolResultError(fmt.Sprintf("File %s already exists.", p)), nil
		default:
			return mcp.NewToolResultError(fmt.Sprintf("Error creating file %s: %v", p, err)), nil
		}
	}

	s.metrics.AddBytesWritten(len(content))
	return mcp.NewToolResultText(fmt.Sprintf("File %s created successfully.", p)), nil
}

func (s *Server) handleDeleteFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.fileManager.DeleteFile(p); err != nil {
		if errors.Is(err, filemanager.ErrNotFile) {
			return mcp.NewToolResultError(fmt.Sprintf("File %s does not exist or is not a file.", p)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("Error deleting file %s: %v", p, err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("File %s deleted successfully.", p)), nil
}

func (s *Server) handleCreateDirectory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("dir_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.fileManager.MakeDir(p); err != nil {
		switch {
		case errors.Is(err, filemanager.ErrIsFile):
			return mcp.NewToolResultError(fmt.Sprintf("File %s is an existing file.", p)), nil
		case errors.Is(err, filemanager.ErrExists):
			return mcp.NewToolResultError(fmt.Sprintf("Directory %s already exists.", p)), nil
		default:
			return mcp.NewToolResultError(fmt.Sprintf("Error creating directory %s: %v", p, err)), nil
		}
	}

	return mcp.NewToolResultText(fmt.Sprintf("Directory %s created successfully.", p)), nil
}

func (s *Server) handleDeleteDirectory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("dir_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.fileManager.RemoveDir(p); err != nil {
		if errors.Is(err, filemanager.ErrNotDirectory) {
			return mcp.NewToolResultError(fmt.Sprintf("Directory %s does not exist or is not a directory.", p)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("Error deleting directory %s: %v", p, err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Directory %s deleted successfully.", p)), nil
}

func (s *Server) handleStatFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	info, err := s.fileManager.Stat(p)
	if err != nil {
		if errors.Is(err, filemanager.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("Path %s does not exist.", p)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("Error inspecting path %s: %v", p, err)), nil
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error inspecting path %s: %v", p, err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleMoveFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	src, err := req.RequireString("source_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dst, err := req.RequireString("destination_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.fileManager.Move(src, dst); err != nil {
		switch {
		case errors.Is(err, filemanager.ErrNotFound):
			return mcp.NewToolResultError(fmt.Sprintf("Source %s does not exist.", src)), nil
		case errors.Is(err, filemanager.ErrExists):
			return mcp.NewToolResultError(fmt.Sprintf("Destination %s already exists.", dst)), nil
		default:
			return mcp.NewToolResultError(fmt.Sprintf("Error moving %s to %s: %v", src, dst, err)), nil
		}
	}

	return mcp.NewToolResultText(fmt.Sprintf("Moved %s to %s.", src, dst)), nil
}
