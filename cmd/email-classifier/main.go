package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/supportdesk/email-classifier/internal/core"
	"github.com/supportdesk/email-classifier/internal/di"
	"github.com/supportdesk/email-classifier/internal/ports"
)

func main() {
	// Load a local .env if present; the LLM credential usually lives there
	// in development.
	_ = godotenv.Load()

	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	ingress ports.EmailIngress,
	llmClient core.LLMClient,
) error {
	defer logger.Sync()

	// Start serving
	if err := ingress.Start(); err != nil {
		logger.Fatal("Failed to start email ingress", zap.Error(err))
		return err
	}

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Info("Shutting down...")

	if err := ingress.Stop(); err != nil {
		logger.Error("Failed to stop email ingress", zap.Error(err))
	}

	// Close any resources that need closing
	if closer, ok := llmClient.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close LLM client", zap.Error(err))
		}
	}

	logger.Info("Shutdown complete")
	return nil
}
