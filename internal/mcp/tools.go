package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// registerTools wires every filesystem tool into the MCP server. Argument
// names match the wire contract clients already depend on: list_files takes
// "path", file tools take "file_path", directory tools take "dir_path".
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_files",
		mcp.WithDescription("List all files in the specified directory"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("The directory path to list files from."),
		),
		mcp.WithTitleAnnotation("List Files"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	), s.instrument("list_files", s.handleListFiles))

	s.mcpServer.AddTool(mcp.NewTool("read_file",
		mcp.WithDescription("Read the contents of a specified file"),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("The file path to read from."),
		),
		mcp.WithTitleAnnotation("Read File"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	), s.instrument("read_file", s.handleReadFile))

	s.mcpServer.AddTool(mcp.NewTool("create_file",
		mcp.WithDescription("Create a new file with the specified content"),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("The file path to create."),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The content to write to the new file."),
		),
		mcp.WithTitleAnnotation("Create File"),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
	), s.instrument("create_file", s.handleCreateFile))

	s.mcpServer.AddTool(mcp.NewTool("delete_file",
		mcp.WithDescription("Delete a specified file"),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("The file path to delete."),
		),
		mcp.WithTitleAnnotation("Delete File"),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
	), s.instrument("delete_file", s.handleDeleteFile))

	s.mcpServer.AddTool(mcp.NewTool("create_directory",
		mcp.WithDescription("Create a new directory"),
		mcp.WithString("dir_path",
			mcp.Required(),
			mcp.Description("The directory path to create."),
		),
		mcp.WithTitleAnnotation("Create Directory"),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
	), s.instrument("create_directory", s.handleCreateDirectory))

	s.mcpServer.AddTool(mcp.NewTool("delete_directory",
		mcp.WithDescription("Delete a specified directory"),
		mcp.WithString("dir_path",
			mcp.Required(),
			mcp.Description("The directory path to delete."),
		),
		mcp.WithTitleAnnotation("Delete Directory"),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
	), s.instrument("delete_directory", s.handleDeleteDirectory))

	s.mcpServer.AddTool(mcp.NewTool("stat_file",
		mcp.WithDescription("Get metadata for a specified file or directory"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("The path to inspect."),
		),
		mcp.WithTitleAnnotation("Stat File"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	), s.instrument("stat_file", s.handleStatFile))

	s.mcpServer.AddTool(mcp.NewTool("move_file",
		mcp.WithDescription("Move or rename a file or directory"),
		mcp.WithString("source_path",
			mcp.Required(),
			mcp.Description("The path to move from."),
		),
		mcp.WithString("destination_path",
			mcp.Required(),
			mcp.Description("The path to move to."),
		),
		mcp.WithTitleAnnotation("Move File"),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
	), s.instrument("move_file", s.handleMoveFile))
}
