package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lokalmart/lokalmart/lokalmart"
	"github.com/lokalmart/lokalmart/lokalmart/database"
	"github.com/lokalmart/lokalmart/lokalmart/logger"
	"github.com/lokalmart/lokalmart/lokalmart/remote"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := lokalmart.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	slog.SetDefault(slog.New(logger.NewHandler(cfg.Log.Level)))
	slog.Info("Starting lokalmart",
		slog.String("version", version),
		slog.String("commit", commit))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	slog.Info("Connecting to local store...")
	dbStart := time.Now()
	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Local store connection failed",
			slog.Any("error", err),
			slog.Duration("attempted_for", time.Since(dbStart)))
		os.Exit(-1)
	}
	slog.Info("Local store connected",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStart)))

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize schema", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Schema initialized")

	slog.Info("Connecting to remote document store...")
	remoteClient, err := remote.Connect(ctx, cfg.Remote)
	if err != nil {
		slog.Error("Remote store connection failed", slog.Any("error", err))
		os.Exit(-1)
	}

	app := lokalmart.New(*cfg, version, commit)
	app.DB = db
	app.Remote = remoteClient
	app.Setup()

	runCtx, stop := context.WithCancel(context.Background())
	defer stop()

	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()
		app.Close(closeCtx)
	}()

	if cfg.Reconcile.IntervalSeconds > 0 {
		interval := time.Duration(cfg.Reconcile.IntervalSeconds) * time.Second
		go app.Reconciler.Run(runCtx, interval)
		slog.Info("Reconciler started", slog.Duration("interval", interval))
	}

	slog.Info("lokalmart is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	slog.Info("Shutting down...")
}
