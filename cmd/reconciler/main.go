// Command reconciler runs one settlement reconciliation sweep and exits.
// Meant for cron-style scheduling alongside the always-on worker in the
// main server.
package main

import (
	"context"
	"log"

	"stagepass/internal/bootstrap"
	"stagepass/internal/config"
	"stagepass/internal/observability"
)

func main() {
	ctx := context.Background()
	logger := observability.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %s", err)
	}
	defer deps.Cleanup()

	deps.Reconciler.Sweep(ctx)
}
