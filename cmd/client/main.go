package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/foundlab/lostfound/internal/client/cli"
	"github.com/foundlab/lostfound/internal/client/config"
	"github.com/foundlab/lostfound/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	log := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
