// PlateChat — a conversational recipe assistant.
//
// Usage:
//
//	platechat [-verbose] [-quiet] [-demo]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"platechat/internal/chat"
	"platechat/internal/config"
	"platechat/internal/demo"
	"platechat/internal/display"
	"platechat/internal/domain"
	"platechat/internal/logger"
	"platechat/internal/parser"
	"platechat/internal/persist"
	"platechat/internal/store"
)

func main() {
	cfg := config.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", filepath.Join(cfg.DataDir, "platechat.log"), "file to write logs to (use \"stderr\" to log to console)")
	demoMode := flag.Bool("demo", false, "force demo mode even if an API key is set")
	storage := flag.String("storage", cfg.Storage, "persistence backend: file or sqlite")
	dataDir := flag.String("data-dir", cfg.DataDir, "directory for persisted state")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the chat stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Third-party libraries that use the default log package go to the
	// same sink.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	// Set up context — cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Persistence backend.
	var kv domain.KeyValueStore
	var err error
	switch *storage {
	case config.StorageSQLite:
		kv, err = persist.NewSQLiteKV(filepath.Join(*dataDir, "platechat.db"), log)
	default:
		kv, err = persist.NewFileKV(*dataDir, log)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: opening storage: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	gateway := persist.NewGateway(kv, log)
	saver := persist.NewSaver(gateway, log)
	saver.Start(ctx)
	defer saver.Stop()

	// The store loads once at start; every accepted transition enqueues a
	// snapshot on the saver.
	st := store.New(gateway.Load(ctx), log, store.WithSink(saver))

	// Chat pipeline.
	responder := demo.New(log)
	recipeParser := parser.New(log)
	client := chat.NewClient(cfg.APIEndpoint, log, chat.WithModel(cfg.Model))
	orchestrator := chat.NewOrchestrator(client, responder, recipeParser, log)

	credential := cfg.APIKey
	if *demoMode {
		credential = ""
	}
	if credential == "" {
		log.Info("demo mode: set %s to enable live answers", config.EnvAPIKey)
	} else {
		log.Info("live mode enabled (endpoint=%s, model=%s)", cfg.APIEndpoint, cfg.Model)
	}

	app := &cliApp{
		store:        st,
		orchestrator: orchestrator,
		credential:   credential,
		premium:      cfg.Premium,
		log:          log,
	}

	ui := display.NewUI(func() display.Status {
		state := st.State()
		title := ""
		if sess := state.CurrentSession(); sess != nil {
			title = sess.Title
		}
		open := 0
		for _, t := range state.Todos {
			if !t.Completed {
				open++
			}
		}
		return display.Status{
			SessionTitle: title,
			Region:       state.SelectedRegion,
			Live:         credential != "",
			Premium:      cfg.Premium,
			OpenTodos:    open,
		}
	})
	app.ui = ui

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Ask for a dish, or type /help for commands. /quit to exit."))
	fmt.Println()

	// Run app logic in a background goroutine.
	go func() {
		ui.WaitReady()
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal — blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()
}
