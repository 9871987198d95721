// Package main is the entry point for the mcp-file-server daemon.
//
// The server exposes confined filesystem operations to MCP clients. Startup
// follows this sequence:
//
// 1. Initialize logging system
// 2. Resolve configuration: flags over environment over config file
// 3. Validate the configuration and the data directory
// 4. Serve on the selected transport until interrupted
//
// Configuration can come from a YAML file in the XDG config directory, from
// the TRANSPORT, HOST, PORT, LOG_LEVEL and DATA_DIR environment variables,
// or from command-line flags. Flags win.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mcpfileserver/internal/config"
	"mcpfileserver/internal/logging"
	"mcpfileserver/internal/mcp"
)

var (
	flagTransport string
	flagHost      string
	flagPort      int
	flagLogLevel  string
	flagPath      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mcp-file-server",
		Short: "MCP server exposing file operations confined to a data directory",
		Long: `mcp-file-server is a Model Context Protocol server that lets AI
assistants list, read, create, move and delete files inside a single
configured data directory. Paths outside the data directory are
unreachable.`,
		Version:       mcp.ServerVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	defaults := config.DefaultConfig()
	rootCmd.Flags().StringVar(&flagTransport, "transport", defaults.Transport,
		"transport to serve on: streamable-http or stdio")
	rootCmd.Flags().StringVar(&flagHost, "host", defaults.Host,
		"host to bind the HTTP server to")
	rootCmd.Flags().IntVar(&flagPort, "port", defaults.Port,
		"port to bind the HTTP server to")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", defaults.LogLevel,
		"log level: DEBUG, INFO, WARNING, ERROR or CRITICAL")
	rootCmd.Flags().StringVar(&flagPath, "path", defaults.DataDir,
		"data directory to confine file operations to (must exist)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.NewAppLoggerAt(level)

	logger.Info("Starting mcp-file-server",
		"version", mcp.ServerVersion,
		"transport", cfg.Transport,
		"dataDir", cfg.DataDir,
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := mcp.NewServer(cfg, logger)
	if err := srv.Start(ctx); err != nil {
		logger.Error("Server exited with error", "error", err)
		return err
	}

	logger.Info("Server stopped")
	return nil
}

// resolveConfig layers the configuration sources: file, then environment,
// then any flag the user set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("transport") {
		cfg.Transport = flagTransport
	}
	if cmd.Flags().Changed("host") {
		cfg.Host = flagHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = flagPort
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if cmd.Flags().Changed("path") {
		cfg.DataDir = flagPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
