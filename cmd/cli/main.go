package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/casekeeper/internal/buildinfo"
	"github.com/dmitrijs2005/casekeeper/internal/client/cache"
	"github.com/dmitrijs2005/casekeeper/internal/client/cli"
	"github.com/dmitrijs2005/casekeeper/internal/client/client"
	"github.com/dmitrijs2005/casekeeper/internal/client/config"
	"github.com/dmitrijs2005/casekeeper/internal/client/notify"
	"github.com/dmitrijs2005/casekeeper/internal/client/progress"
	"github.com/dmitrijs2005/casekeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/casekeeper/internal/client/services"
	"github.com/dmitrijs2005/casekeeper/internal/client/session"
	"github.com/dmitrijs2005/casekeeper/internal/client/storage"
	"github.com/dmitrijs2005/casekeeper/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	api, err := client.NewHTTPClient(cfg.APIBaseURL, logger.With("component", "api"))
	if err != nil {
		logger.Error(ctx, "error creating api client", "error", err)
		os.Exit(1)
	}

	sess := session.New(api, metadata.NewSQLiteRepository(db), logger.With("component", "session"))
	if err := sess.Restore(ctx); err != nil {
		logger.Error(ctx, "error restoring session", "error", err)
		os.Exit(1)
	}

	ind := &progress.Indicator{}
	queries := cache.New(cfg.StaleTime, ind)

	app := cli.NewApp(cli.Deps{
		Cases:    services.NewCaseService(api, queries, ind, cfg.PageSize, logger.With("component", "cases")),
		Auth:     services.NewAuthService(sess, ind),
		Identity: sess,
		Cache:    queries,
		Notifier: notify.NewConsole(os.Stdout, logger),
		Progress: ind,
		In:       os.Stdin,
		Out:      os.Stdout,
		Log:      logger,
	})
	sess.OnReload(app.Reload)

	app.Run(ctx)
}
