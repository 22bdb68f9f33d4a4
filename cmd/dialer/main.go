package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/angelmondragon/easydial-core/internal/contacts"
	"github.com/angelmondragon/easydial-core/internal/region"
	"github.com/angelmondragon/easydial-core/internal/screen"
	"github.com/angelmondragon/easydial-core/internal/settings"
	"github.com/angelmondragon/easydial-core/pkg/config"
	"github.com/angelmondragon/easydial-core/pkg/db"
	"github.com/angelmondragon/easydial-core/pkg/logger"
	"github.com/angelmondragon/easydial-core/pkg/metrics"
	"github.com/angelmondragon/easydial-core/pkg/migrate"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "dialer"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "dialer",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.Storage, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap datastore", err)
		os.Exit(1)
	}
	if err := dbClient.Ping(ctx); err != nil {
		logg.Error(ctx, "datastore unreachable", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run dev migrations", err)
		os.Exit(1)
	}

	core := metrics.NewCoreMetrics(prometheus.DefaultRegisterer)
	markers := settings.NewRepository(dbClient.DB())

	store, err := contacts.NewStore(contacts.StoreParams{
		Logger:  logg,
		Repo:    contacts.NewRepository(dbClient.DB()),
		Markers: markers,
		Metrics: core,
		Policy:  cfg.Region.Policy(),
	})
	if err != nil {
		logg.Error(ctx, "failed to create contact store", err)
		os.Exit(1)
	}

	resolver, err := region.NewResolver(region.ResolverParams{
		Logger:   logg,
		Settings: markers,
		Reseeder: store,
		Metrics:  core,
		Fallback: cfg.Region.DefaultRegion(),
	})
	if err != nil {
		logg.Error(ctx, "failed to create region resolver", err)
		os.Exit(1)
	}

	if err := resolver.Start(ctx); err != nil {
		logg.Error(ctx, "failed to start region resolver", err)
		os.Exit(1)
	}
	if err := store.Load(ctx, resolver.Current()); err != nil {
		logg.Error(ctx, "failed to load contacts", err)
		os.Exit(1)
	}

	machine, err := screen.NewMachine(screen.MachineParams{
		Logger:       logg,
		Markers:      markers,
		Metrics:      core,
		Refresher:    resolver,
		Scheduler:    screen.NewTimerScheduler(),
		ConnectDelay: cfg.Call.ConnectDelay,
	})
	if err != nil {
		logg.Error(ctx, "failed to create screen machine", err)
		os.Exit(1)
	}
	if err := machine.Start(ctx); err != nil {
		logg.Error(ctx, "failed to restore screen state", err)
		os.Exit(1)
	}

	go func() {
		if err := resolver.Run(ctx); err != nil && err != context.Canceled {
			logg.Error(ctx, "region resolver stopped unexpectedly", err)
		}
	}()

	startCtx := logg.WithFields(ctx, map[string]any{
		"env":    cfg.App.Env,
		"region": string(resolver.Current()),
		"policy": string(cfg.Region.Policy()),
	})
	logg.Info(startCtx, "dialer core ready")
	machine.StartExperience()

	<-ctx.Done()
	logg.Info(context.Background(), "shutting down")

	store.Close()
	if err := dbClient.Close(); err != nil {
		logg.Error(context.Background(), "error closing datastore", err)
		os.Exit(1)
	}
}
