package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/photocards/internal/buildinfo"
	"github.com/dmitrijs2005/photocards/internal/client/cli"
	"github.com/dmitrijs2005/photocards/internal/client/config"
	"github.com/dmitrijs2005/photocards/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.New(os.Stderr, cfg.LogLevel, logging.FormatText)
	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, err.Error())
		os.Exit(1)
	}
	defer app.Close()

	app.Run(ctx)
}
