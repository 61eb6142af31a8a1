package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/AgentOS/fileserver/internal/infrastructure/config"
	"github.com/GriffinCanCode/AgentOS/fileserver/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AgentOS/fileserver/internal/infrastructure/server"
)

func main() {
	// Parse flags
	configFile := flag.String("config", os.Getenv("CONFIG_FILE"), "Path to a YAML config file")
	port := flag.String("port", "", "Server port (overrides config)")
	root := flag.String("root", "", "Root directory (overrides config)")
	dev := flag.Bool("dev", false, "Development mode (colored logs, debug level)")
	flag.Parse()

	cfg, err := config.LoadFile(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// CLI flags override file and environment
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *root != "" {
		cfg.Storage.Root = *root
	}
	if *dev {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}

	logger := logging.FromLevel(cfg.Logging.Level, cfg.Logging.Development)

	srv, err := server.NewServer(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to create server", zap.Error(err))
	}
	defer srv.Close()

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("Server error", zap.Error(err))
		srv.Close()
		os.Exit(1)
	}

	logger.Info("Server stopped")
}
