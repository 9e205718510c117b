package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/photocards/internal/buildinfo"
	"github.com/dmitrijs2005/photocards/internal/logging"
	"github.com/dmitrijs2005/photocards/internal/server"
	"github.com/dmitrijs2005/photocards/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	logger := logging.New(os.Stdout, cfg.LogLevel, logging.FormatJSON)
	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, err.Error())
		os.Exit(1)
	}

	err = app.Run(ctx)
	_ = app.Close()
	if err != nil {
		os.Exit(1)
	}
}
