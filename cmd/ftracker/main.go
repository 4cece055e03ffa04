package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/claude/ftracker/internal/client"
	"github.com/claude/ftracker/internal/config"
	"github.com/claude/ftracker/internal/models"
	"github.com/claude/ftracker/internal/report"
	"github.com/claude/ftracker/internal/training"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	keepGoing := flag.Bool("keep-going", false, "report remaining packages after a failure")
	serverURL := flag.String("server", "", "compute on a remote ftracker server instead of locally")
	list := flag.Bool("list", false, "list the recognised workout codes and exit")
	verbose := flag.Bool("v", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ftracker [flags] [CODE READING...]\n\n")
		fmt.Fprintf(os.Stderr, "Without arguments the configured packages are reported.\n")
		fmt.Fprintf(os.Stderr, "Example: ftracker RUN 15000 1 75\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println("ftracker", Version)
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	runner := report.New(os.Stdout, log, *keepGoing || cfg.Report.KeepGoing)

	var lister kindLister
	if *serverURL != "" {
		c := client.New(*serverURL, cfg.Auth.APIKey)
		runner.SetComputer(c)
		lister = c
		log.Debug("computing remotely", "server", *serverURL)
	}

	if *list {
		if err := writeKinds(ctx, os.Stdout, lister); err != nil {
			log.Error("list failed", "error", err)
			os.Exit(1)
		}
		return
	}

	pkgs, err := packagesFromArgs(flag.Args(), cfg.Packages)
	if err != nil {
		log.Error("invalid arguments", "error", err)
		os.Exit(1)
	}

	stats, err := runner.Run(ctx, pkgs)
	if err != nil {
		msg := "report failed"
		if client.IsAPIError(err) {
			msg = "server rejected package"
		}
		log.Error(msg, "processed", stats.Processed, "failed", stats.Failed, "error", err)
		os.Exit(1)
	}
}

// packagesFromArgs returns the package named on the command line
// (CODE READING...), or fallback when there are no arguments.
func packagesFromArgs(args []string, fallback []models.Package) ([]models.Package, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	if len(args) == 1 {
		return nil, fmt.Errorf("%w: %s given without readings", training.ErrMalformedReadings, args[0])
	}
	readings, err := training.ParseReadings(args[1:])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", args[0], err)
	}
	return []models.Package{{Code: args[0], Readings: readings}}, nil
}

// kindLister fetches the workout catalogue from a server.
type kindLister interface {
	Workouts(ctx context.Context) ([]training.Kind, error)
}

// writeKinds prints one line per workout kind. A nil remote lists the kinds
// built into this binary.
func writeKinds(ctx context.Context, w io.Writer, remote kindLister) error {
	kinds := training.Kinds()
	if remote != nil {
		var err error
		if kinds, err = remote.Workouts(ctx); err != nil {
			return fmt.Errorf("listing workouts: %w", err)
		}
	}
	for _, k := range kinds {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", k.Code, k.TrainingType, strings.Join(k.Fields, ", ")); err != nil {
			return err
		}
	}
	return nil
}
