package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"evtsched/internal/clock"
	"evtsched/internal/config"
	appLog "evtsched/internal/log"
	"evtsched/internal/organizer"
	"evtsched/internal/store"
)

// flagConfig holds CLI flag values that override the config file.
type flagConfig struct {
	configPath string
	logLevel   string
	timezone   string
}

func main() {
	// A missing .env is normal outside development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		appLog.Warn("failed to load .env", "err", err)
	}

	flags := parseFlags()

	conf, err := config.Load(flags.configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flags.configPath)
		os.Exit(1)
	}
	conf.ApplyEnv()

	if flags.logLevel != "" {
		conf.LogLevel = flags.logLevel
	}
	if flags.timezone != "" {
		conf.Timezone = flags.timezone
	}

	level, err := appLog.ParseLevel(conf.LogLevel)
	if err != nil {
		appLog.Warn("unknown log level, using info", "log_level", conf.LogLevel)
		level = appLog.LevelInfo
	}
	appLog.SetLevel(level)

	loc, err := conf.Location()
	if err != nil {
		appLog.Error("failed to load timezone", err, "timezone", conf.Timezone)
		os.Exit(1)
	}

	appLog.Info("effective config",
		"config_path", flags.configPath,
		"timezone", loc.String(),
		"log_level", level,
		"initial_capacity", conf.InitialCapacity,
		"growth_increment", conf.GrowthIncrement,
		"min_duration", conf.MinDurationMinutes,
		"max_duration", conf.MaxDurationMinutes,
	)

	// Root context with cancellation on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st := store.New(
		store.WithInitialCapacity(conf.InitialCapacity),
		store.WithGrowthIncrement(conf.GrowthIncrement),
	)
	org := organizer.New(st, clock.NewSystem(loc), os.Stdout,
		organizer.WithDurationRange(conf.MinDurationMinutes, conf.MaxDurationMinutes),
		organizer.WithLocation(loc),
		organizer.WithICSProdID(conf.ICSProdID),
	)

	if err := org.Run(ctx, os.Stdin); err != nil {
		if errors.Is(err, context.Canceled) {
			appLog.Info("signal received, shutting down", "events", st.Len())
			return
		}
		appLog.Error("session failed", err)
		os.Exit(1)
	}
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "", "Path to YAML config file (created with defaults if missing)")
	flag.StringVar(&cfg.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config if set)")
	flag.StringVar(&cfg.timezone, "timezone", "", "IANA timezone for today's date and exports (overrides config if set)")

	flag.Parse()

	return cfg
}
