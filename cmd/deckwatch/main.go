package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/deckwatch/pkg/agent"
	"github.com/umputun/deckwatch/pkg/config"
	"github.com/umputun/deckwatch/pkg/deck"
	"github.com/umputun/deckwatch/pkg/filter"
	"github.com/umputun/deckwatch/pkg/nav"
	"github.com/umputun/deckwatch/pkg/ratelimit"
	"github.com/umputun/deckwatch/pkg/store"
	"github.com/umputun/deckwatch/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting deckwatch version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil && ctx.Err() == nil {
		log.Printf("[ERROR] deckwatch failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components and blocks until the context is cancelled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// durable shared state, single sqlite database
	st, err := store.New(ctx, store.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	deckManager, err := deck.NewManager(ctx, st)
	if err != nil {
		return fmt.Errorf("failed to init deck manager: %w", err)
	}

	tracker := ratelimit.NewTracker(ctx, st)
	filterEngine := filter.NewEngine(deckManager)

	// the agent subscriber is both the event source and the document/location
	// source, watcher and resolver are wired through it
	sub := agent.NewSubscriber(agent.Params{
		URL:            cfg.Agent.URL,
		Requests:       tracker,
		Filter:         filterEngine,
		ReconnectDelay: cfg.Agent.ReconnectDelay,
	})

	resolver := nav.NewResolver(nav.ResolverParams{
		Docs:         sub,
		Columns:      deckManager,
		Attempts:     cfg.Watcher.ResolveAttempts,
		InitialDelay: cfg.Watcher.ResolveInitial,
		StepDelay:    cfg.Watcher.ResolveStep,
	})

	watcher := nav.NewWatcher(nav.WatcherParams{
		Locations:    sub,
		Resolver:     resolver,
		PollInterval: cfg.Watcher.PollInterval,
		OnChange: func(u nav.Update) {
			lgr.Printf("[INFO] view %s navigated to %s (%s)", u.ViewID, u.URL, u.Title)
			if err := deckManager.UpdateColumnNav(ctx, u.ViewID, u.URL, u.Title); err != nil {
				lgr.Printf("[ERROR] failed to record navigation for %s: %v", u.ViewID, err)
			}
		},
	})
	sub.SetNavigator(watcher)

	// watch persisted columns from the start, agent events pick up the rest
	for _, col := range deckManager.Columns() {
		if !col.IsSettings() {
			watcher.Track(col.ID)
		}
	}

	srv := server.New(cfg, deckManager, tracker, revision, opts.Debug)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error { return sub.Run(gctx) })
	group.Go(func() error { return watcher.Run(gctx) })
	group.Go(func() error { return srv.Run(gctx) })

	return group.Wait()
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
