package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/bryanwahyu/health-agent/internal/logging"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	app := &cli.Command{
		Name:   "health-agent",
		Usage:  "Health AI Agent API",
		Flags:  appFlags(),
		Action: serve,
		Commands: []*cli.Command{
			cmdServe,
			cmdDataset,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logging.Logger(logging.SourceApp).Fatal("exit", "err", err)
	}
}
