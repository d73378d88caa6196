package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/teamconsole/internal/buildinfo"
	"github.com/dmitrijs2005/teamconsole/internal/client/cli"
	"github.com/dmitrijs2005/teamconsole/internal/client/client"
	"github.com/dmitrijs2005/teamconsole/internal/client/config"
	"github.com/dmitrijs2005/teamconsole/internal/client/session"
	"github.com/dmitrijs2005/teamconsole/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v\n\nEnvironment:\n%s", err, config.EnvUsage())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.New(os.Stderr, cfg.LogLevel)

	api, err := client.NewHTTPClient(cfg.ServerURL, cfg.RequestTimeout, logger, client.WithRateLimit(cfg.RateLimit))
	if err != nil {
		log.Fatalf("%v", err)
	}

	db, err := client.InitDatabase(ctx, cfg.StatePath)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	store := session.NewStore(session.NewMemoryLifetime(), session.NewSQLiteLifetime(db), logger)

	app := cli.NewApp(cfg, api, store, logger, os.Stdin, os.Stdout)
	app.Run(ctx)

}
