package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"

	"github.com/wfunc/ludo/broadcast"
	"github.com/wfunc/ludo/config"
	"github.com/wfunc/ludo/console"
	"github.com/wfunc/ludo/logger"
	"github.com/wfunc/ludo/ludo"
	"github.com/wfunc/ludo/monitor"
	"github.com/wfunc/ludo/room"
)

func main() {
	// Initialize logger before anything can fail
	if err := logger.Init("info", false); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, prometheus.DefaultRegisterer); err != nil {
		logger.Log.Fatalf("%v", err)
	}
}

// run plays one local game. The journal, when enabled, goes to journal.
func run(args []string, in io.Reader, out, journal io.Writer, reg prometheus.Registerer) error {
	flags := pflag.NewFlagSet("ludo", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", ".", "directory holding config.yaml")
	if err := flags.Parse(args); err != nil {
		return err
	}

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Switch to the configured logger
	if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Log.Sync()

	mon := monitor.NewMonitor(cfg.Metrics.Namespace, reg)
	if cfg.Metrics.Address != "" {
		logger.Log.Infof("Serving metrics on %s", cfg.Metrics.Address)
		mon.StartServer(cfg.Metrics.Address)
	}

	var sinks []broadcast.Sink
	if cfg.Journal.Enabled {
		sinks = append(sinks, broadcast.NewWriterSink(journal))
	}
	broadcaster := broadcast.NewRoomBroadcaster(sinks...)

	manager := room.NewRoomManager(room.WithMonitor(mon), room.WithBroadcaster(broadcaster))
	r, err := manager.CreateRoom("local", cfg.Game.Players, ludo.WithLogger(logger.Log.Desugar()))
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	defer manager.RemoveRoom(r.ID)

	hub := broadcaster.Hub(r.ID)
	r.With(func(e *ludo.Engine) {
		mon.Attach(e)
		hub.Attach(e)
	})
	if err := r.Sync(); err != nil {
		logger.Log.Warnf("Initial sync failed: %v", err)
	}

	logger.Log.Infow("Game started", "room", r.ID, "players", cfg.Game.Players)
	if err := console.New(r, in, out, cfg.Game.Locale).Run(); err != nil {
		return fmt.Errorf("console stopped: %w", err)
	}
	return nil
}
