package main

import (
	"context"
	"log"

	"github.com/mclovin84/callscreen/internal/bootstrap"
	"github.com/mclovin84/callscreen/internal/config"
	"github.com/mclovin84/callscreen/internal/observability"
	"github.com/mclovin84/callscreen/internal/server"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := observability.NewLogger()

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()

	if err := srv.Start(ctx); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}
}
