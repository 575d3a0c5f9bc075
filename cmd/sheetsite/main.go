package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/sheetsite/internal/config"
	"git.home.luguber.info/inful/sheetsite/internal/site"
	"git.home.luguber.info/inful/sheetsite/internal/version"
	"git.home.luguber.info/inful/sheetsite/internal/watch"
	"github.com/alecthomas/kong"
)

var CLI struct {
	Config  string           `short:"c" help:"Configuration file path (defaults to sheetsite.yaml when present)"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `help:"Print version information and exit"`

	Generate struct {
		Input  string `arg:"" help:"Input CSV or XLSX file"`
		Output string `arg:"" help:"Output HTML file"`
	} `cmd:"" help:"Generate a searchable HTML table page from a spreadsheet export"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`

	Watch struct {
		Input  string `arg:"" help:"Input CSV or XLSX file to watch"`
		Output string `arg:"" help:"Output HTML file"`
	} `cmd:"" help:"Regenerate the page whenever the input file changes"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Description("Converts a spreadsheet export into a static, searchable HTML table page."),
		kong.Vars{"version": fmt.Sprintf("sheetsite %s (commit %s, built %s)",
			version.Version, version.GitCommit, version.BuildTime)})

	// Set up logging
	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Execute command
	switch ctx.Command() {
	case "generate <input> <output>":
		cfg, err := config.Resolve(CLI.Config)
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if err := runGenerate(cfg, CLI.Generate.Input, CLI.Generate.Output); err != nil {
			slog.Error("Generation failed", "error", err)
			os.Exit(1)
		}
	case "init":
		configPath := CLI.Config
		if configPath == "" {
			configPath = config.DefaultPath
		}
		if err := config.Init(configPath, CLI.Init.Force); err != nil {
			slog.Error("Init failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Configuration file created", "path", configPath)
	case "watch <input> <output>":
		cfg, err := config.Resolve(CLI.Config)
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if err := runWatch(cfg, CLI.Watch.Input, CLI.Watch.Output); err != nil {
			slog.Error("Watch failed", "error", err)
			os.Exit(1)
		}
	}
}

func runGenerate(cfg *config.Config, input, output string) error {
	generator := site.NewGenerator(cfg)
	summary, err := generator.Generate(input, output)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d rows, %d columns)\n", summary.Output, summary.Rows, summary.Columns)
	return nil
}

func runWatch(cfg *config.Config, input, output string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	generator := site.NewGenerator(cfg)
	regenerate := func() error {
		summary, err := generator.Generate(input, output)
		if err != nil {
			return err
		}
		slog.Info("Page regenerated", "output", summary.Output,
			"rows", summary.Rows, "columns", summary.Columns)
		return nil
	}

	// Produce an initial page before waiting for changes. Failures here are
	// not fatal; the input may simply not exist yet.
	if err := regenerate(); err != nil {
		slog.Warn("Initial generation failed", "error", err)
	}

	watcher, err := watch.New(input, regenerate)
	if err != nil {
		return err
	}
	// Stop is safe even when Start fails; this keeps the fsnotify descriptor
	// from leaking on the error path.
	defer watcher.Stop()
	if err := watcher.Start(ctx); err != nil {
		return err
	}

	slog.Info("Watching for changes, press Ctrl+C to stop")
	<-ctx.Done()

	slog.Info("Shutdown signal received, stopping watcher")
	return nil
}
