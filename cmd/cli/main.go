package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/dmitrijs2005/usercards/internal/client/cli"
	"github.com/dmitrijs2005/usercards/internal/client/config"
	"github.com/dmitrijs2005/usercards/internal/client/source"
	"github.com/dmitrijs2005/usercards/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	logFile, err := logging.NewFileWriter(logging.FileOptions{Path: cfg.LogFile})
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer logFile.Close()

	logger := logging.New(cfg.LogLevel, logFile)
	src := source.NewHTTPSource(cfg.SourceURL, cfg.BatchSize, cfg.FetchTimeout, logger)
	app := cli.NewApp(cfg, logger, src)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
