// Package mcp provides the Model Context Protocol (MCP) server implementation
// for the file server using mcp-go.
//
// This package implements an MCP server that lets AI assistants manage files
// inside a single configured data directory through a standardized protocol.
// The server registers one tool per filesystem operation: listing, reading,
// creating, deleting, stat and move.
//
// # Implementation
//
// The package uses the mcp-go library (github.com/mark3labs/mcp-go).
//
// # Transports
//
// Two transports are supported, selected by configuration:
//   - streamable-http: the MCP endpoint is mounted at /mcp on an HTTP server
//     that also serves /health and /metrics
//   - stdio: JSON-RPC requests on stdin, responses on stdout, until EOF
//
// # Security
//
// Security is handled through the underlying filemanager and fileops packages:
//   - Client paths are virtual, rooted at the data directory
//   - Traversal sequences clamp at the virtual root instead of escaping it
//   - The data directory is held open as an os.Root, so symlinks cannot
//     reach outside it
//
// # Architecture
//
// The Server struct contains:
//   - config: Application configuration with transport and data directory
//   - logger: Application logger for debugging and audit
//   - fileManager: Confined filesystem operations on the data directory
//   - metrics: Prometheus collectors for tool call accounting
//   - mcpServer: The underlying mcp-go server instance
//
// # References
//
// - MCP Specification: https://modelcontextprotocol.io/specification
// - mcp-go Library: https://github.com/mark3labs/mcp-go
package mcp
