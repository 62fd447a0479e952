// Command genicam-shell is an interactive shell for simulated GenICam
// cameras.
//
// The shell discovers a fleet of simulated cameras and lets you open them,
// read and write features, save and restore configurations and acquire
// frames.
//
// Usage:
//
//	genicam-shell [flags]
//
// Flags:
//
//	-cameras int        Number of simulated cameras (default 2)
//	-config-dir string  Root directory for saved configurations
//	-buffers int        Stream buffer count (default 4)
//	-passes int         Configuration apply passes (default 1)
//	-event-log string   Write camera events to this CBOR log file
//	-metrics string     Serve Prometheus metrics on this address (e.g. ":9464")
//	-log-level string   Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Start with three cameras and record events for genicam-log
//	genicam-shell -cameras 3 -event-log session.glog
//
//	# Expose metrics while experimenting
//	genicam-shell -metrics :9464 -log-level debug
//
// Interactive Commands:
//
//	list        - List cameras
//	open <serial|index> - Open a camera
//	get/set/exec - Access features
//	dump/load   - Save and restore the configuration
//	grab [n]    - Acquire frames
//	quit        - Exit the shell
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/genicam-go/genicam/cmd/genicam-shell/interactive"
	"github.com/genicam-go/genicam/pkg/camera"
	eventlog "github.com/genicam-go/genicam/pkg/log"
	"github.com/genicam-go/genicam/pkg/metrics"
	"github.com/genicam-go/genicam/pkg/sim"
)

// Config holds the shell configuration.
type Config struct {
	Cameras        int
	ConfigDir      string
	BufferCount    int
	ApplyPasses    int
	EventLog       string
	MetricsAddress string
	LogLevel       string
}

var config Config

func init() {
	flag.IntVar(&config.Cameras, "cameras", 2, "Number of simulated cameras")
	flag.StringVar(&config.ConfigDir, "config-dir", "", "Root directory for saved configurations (default: user config dir)")
	flag.IntVar(&config.BufferCount, "buffers", camera.DefaultOptions().BufferCount, "Stream buffer count")
	flag.IntVar(&config.ApplyPasses, "passes", 1, "Configuration apply passes")
	flag.StringVar(&config.EventLog, "event-log", "", "Write camera events to this CBOR log file")
	flag.StringVar(&config.MetricsAddress, "metrics", "", "Serve Prometheus metrics on this address (e.g. \":9464\")")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	level, err := parseLevel(config.LogLevel)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fleet, err := sim.NewFleet(config.Cameras)
	if err != nil {
		return fmt.Errorf("create simulated cameras: %w", err)
	}

	opts := camera.DefaultOptions()
	opts.ConfigDir = config.ConfigDir
	opts.BufferCount = config.BufferCount
	opts.ApplyPasses = config.ApplyPasses

	var sinks []eventlog.Logger
	var fileLogger *eventlog.FileLogger
	if config.EventLog != "" {
		fileLogger, err = eventlog.NewFileLogger(config.EventLog)
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}
		defer fileLogger.Close()
		sinks = append(sinks, fileLogger)
	}

	var collector *metrics.Collector
	if config.MetricsAddress != "" {
		mcfg := metrics.DefaultConfig()
		mcfg.Address = config.MetricsAddress
		collector, err = metrics.NewCollector(mcfg)
		if err != nil {
			return fmt.Errorf("create metrics collector: %w", err)
		}
		if err := collector.Start(ctx); err != nil {
			return fmt.Errorf("start metrics endpoint: %w", err)
		}
		defer func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer stopCancel()
			_ = collector.Stop(stopCtx)
		}()
	}
	opts.Metrics = collector

	sh, err := interactive.New()
	if err != nil {
		return err
	}
	// Logging goes through the readline writer to keep the prompt intact.
	logger := slog.New(slog.NewTextHandler(sh.Stdout(), &slog.HandlerOptions{Level: level}))
	opts.Logger = logger
	if level <= slog.LevelDebug {
		sinks = append(sinks, eventlog.NewSlogAdapter(logger))
	}
	if len(sinks) > 0 {
		opts.EventLogger = eventlog.NewMultiLogger(sinks...)
	}

	reg, err := camera.NewRegistry(fleet, opts)
	if err != nil {
		return err
	}
	defer reg.Close()
	sh.SetRegistry(reg)

	n, err := reg.Update(ctx)
	if err != nil {
		return fmt.Errorf("discover cameras: %w", err)
	}

	fmt.Fprintln(sh.Stdout(), "GenICam Shell")
	fmt.Fprintln(sh.Stdout(), "=============")
	fmt.Fprintf(sh.Stdout(), "Cameras: %d\n", n)
	if fileLogger != nil {
		fmt.Fprintf(sh.Stdout(), "Event log: %s\n", fileLogger.Path())
	}
	if collector != nil {
		fmt.Fprintf(sh.Stdout(), "Metrics: http://%s%s\n", config.MetricsAddress, metrics.DefaultConfig().Path)
	}

	go sh.Run(ctx, cancel)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		fmt.Fprintf(sh.Stdout(), "Received signal: %v\n", sig)
	case <-ctx.Done():
	}

	if fileLogger != nil && fileLogger.Dropped() > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d events dropped\n", fileLogger.Dropped())
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s (use: debug, info, warn, error)", s)
	}
}
