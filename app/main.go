package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lysyi3m/wp-import/app/cfg"
	"github.com/lysyi3m/wp-import/app/feed"
	"github.com/lysyi3m/wp-import/app/importer"
	"github.com/lysyi3m/wp-import/app/tasks"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	appCfg, err := cfg.Load(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if appCfg == nil {
		// Help was shown
		return 0
	}

	setupLogging(appCfg.Debug)

	importerConfig, err := importer.LoadConfig(appCfg.ImporterConfig)
	if err != nil {
		slog.Error("Failed to load importer configuration", "error", err)
		return 1
	}

	transformer := feed.NewTransformer(feed.NewParser(), feed.NewFilterer(), feed.NewGenerator())
	handoff := importer.NewHandoff(importer.NewCommandImporter(importerConfig), "")
	task := tasks.NewImportWordpressTask(appCfg, transformer, handoff)

	slog.Info("Starting WordPress import",
		"task_id", task.GetID(),
		"source", task.GetSource(),
		"env", appCfg.Env,
		"connection", appCfg.Connection,
		"version", appCfg.Version)

	if err := task.Execute(context.Background()); err != nil {
		var parseErr *feed.ParseError
		if errors.As(err, &parseErr) {
			slog.Error("Unable to open or parse XML file", "task_id", task.GetID(), "path", parseErr.Path, "error", parseErr.Err)
			return 1
		}
		slog.Error("Import failed", "task_id", task.GetID(), "error", err)
		return 1
	}

	return 0
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
