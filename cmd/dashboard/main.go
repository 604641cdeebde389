package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"weatherdash.app/internal/app"
	"weatherdash.app/internal/config"
)

func main() {
	// Load environment variables from .env file if present
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	dashboard, err := app.NewDashboard(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dashboard: %v\n", err)
		os.Exit(1)
	}
	defer dashboard.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dashboard.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		dashboard.Close()
		os.Exit(1)
	}
}
