package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"mcpfileserver/internal/config"
	"mcpfileserver/internal/filemanager"
	"mcpfileserver/internal/logging"
	"mcpfileserver/internal/telemetry"
)

// ServerName and ServerVersion identify the server during the MCP
// initialize handshake.
const (
	ServerName    = "mcp-file-server"
	ServerVersion = "0.1.0"
)

const shutdownTimeout = 10 * time.Second

// Server represents an MCP server instance using mcp-go.
type Server struct {
	config      *config.Config
	logger      *logging.AppLogger
	fileManager *filemanager.FileManager
	metrics     *telemetry.Metrics
	mcpServer   *server.MCPServer
	httpServer  *http.Server
}

// NewServer creates a new MCP server instance.
func NewServer(cfg *config.Config, logger *logging.AppLogger) *Server {
	return &Server{
		config:  cfg,
		logger:  logger,
		metrics: telemetry.NewMetrics(),
	}
}

// Start initializes the server and serves on the configured transport. It
// blocks until ctx is cancelled or the transport fails.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("Initializing MCP server", "transport", s.config.Transport)

	var err error
	s.fileManager, err = filemanager.NewFileManager(s.config.DataDir, s.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize file manager: %w", err)
	}
	defer s.fileManager.Close()

	s.mcpServer = server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithLogging(),
		server.WithRecovery(),
	)
	s.registerTools()

	s.logger.Info("Serving data directory", "path", s.fileManager.RootDir())

	switch s.config.Transport {
	case config.TransportStdio:
		return s.serveStdio()
	case config.TransportStreamableHTTP:
		return s.serveHTTP(ctx)
	default:
		return fmt.Errorf("unsupported transport: %s", s.config.Transport)
	}
}

// serveStdio runs JSON-RPC over stdin/stdout until EOF.
func (s *Server) serveStdio() error {
	s.logger.Info("Starting stdio transport")
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("stdio server failed: %w", err)
	}
	return nil
}

// serveHTTP mounts the MCP endpoint alongside health and metrics and serves
// until ctx is cancelled.
func (s *Server) serveHTTP(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/mcp", server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithEndpointPath("/mcp"),
	))
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", s.metrics.Handler())

	s.httpServer = &http.Server{
		Addr:         s.config.Addr(),
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // streaming responses stay open
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP transport", "addr", s.httpServer.Addr, "endpoint", "/mcp")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		return s.shutdownHTTP()
	}
}

func (s *Server) shutdownHTTP() error {
	s.logger.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP shutdown failed: %w", err)
	}
	return nil
}

// handleHealth reports liveness for load balancers and container probes.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": ServerName,
	})
}

// Stop gracefully shuts down the MCP server.
func (s *Server) Stop() error {
	s.logger.Info("Stopping MCP server")
	if s.httpServer != nil {
		return s.shutdownHTTP()
	}
	return nil
}
