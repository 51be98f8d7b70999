package main

import (
	"context"
	"log"
	"os"

	"github.com/vaultnotes/vaultnotes/internal/buildinfo"
	"github.com/vaultnotes/vaultnotes/internal/cli"
	"github.com/vaultnotes/vaultnotes/internal/config"
	"github.com/vaultnotes/vaultnotes/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
