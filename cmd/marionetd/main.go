// Package main provides marionetd, a websocket daemon that lets external
// clients drive a shared Chromium instance: open pages, navigate, click,
// type, screenshot, and read DOM and accessibility state.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marionet/marionet/pkg/config"
	"github.com/marionet/marionet/pkg/dispatch"
	"github.com/marionet/marionet/pkg/engine"
	"github.com/marionet/marionet/pkg/logging"
	"github.com/marionet/marionet/pkg/pages"
	"github.com/marionet/marionet/pkg/server"
)

const version = "0.1.0"

func main() {
	var (
		configPath  string
		port        int
		headed      bool
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to YAML configuration file (optional)")
	flag.IntVar(&port, "port", 0, "Websocket listen port (overrides config)")
	flag.BoolVar(&headed, "headed", false, "Run the browser with a visible window")
	flag.BoolVar(&showVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "marionetd - websocket browser remote control\n\n")
		fmt.Fprintf(os.Stderr, "Usage: marionetd [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("marionetd v%s\n", version)
		return
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("Configuration error: %v", err)
		}
		cfg = loaded
	}
	if port != 0 {
		cfg.Port = port
	}
	if headed {
		cfg.Headless = false
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	if err := run(ctx, cfg); err != nil {
		cancel()
		log.Fatalf("Fatal: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	logging.SetLogDirectory(cfg.LogDir)
	logger, err := logging.NewLogger("marionetd")
	if err != nil {
		// Fallback logger already reported the problem; keep going.
		logger.Warnf("file logging unavailable")
	}
	defer logger.Close()

	policy, err := config.NewURLPolicy(cfg.Navigation)
	if err != nil {
		return fmt.Errorf("invalid navigation policy: %w", err)
	}

	// No degraded mode: if the browser cannot launch the process dies here.
	logger.Infof("launching browser (headless=%v)", cfg.Headless)
	eng, err := engine.Launch(engine.Options{
		Headless: cfg.Headless,
		Timeout:  cfg.TimeoutMS,
	})
	if err != nil {
		return fmt.Errorf("browser launch failed: %w", err)
	}
	defer func() {
		if err := eng.Close(); err != nil {
			logger.Errorf("engine shutdown: %v", err)
		}
	}()

	registry := pages.NewRegistry()
	registry.SeedDefault(eng.InitialPage())

	dispatcher := dispatch.New(
		registry,
		eng,
		policy,
		logger,
		time.Duration(cfg.TypingDelayMS)*time.Millisecond,
	)

	srv := server.New(dispatcher, logger, true)
	return srv.ListenAndServe(ctx, cfg.Port)
}
