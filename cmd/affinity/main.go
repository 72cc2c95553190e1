// SPDX-License-Identifier: MIT

// Command affinity partitions participants into groups from a preference file.
//
// Usage:
//
//	affinity [options] FILE
//
// The grouping is printed to stdout; diagnostics go to stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/katalvlaran/affinity/grouping"
	"github.com/katalvlaran/affinity/internal/config"
	"github.com/katalvlaran/affinity/parser"
	"github.com/katalvlaran/affinity/prefs"
	"github.com/katalvlaran/affinity/render"
)

type options struct {
	Config    string `short:"c" long:"config" description:"TOML configuration file"`
	GroupSize int    `short:"k" long:"group-size" description:"Group size (overrides the input file)"`
	Choices   int    `long:"choices" description:"Preference list length (0: longest list)"`
	Seed      int64  `short:"s" long:"seed" description:"Tie-breaking seed (0: clock)"`
	Workers   int    `short:"w" long:"workers" description:"Scoring goroutines"`
	XLSX      string `long:"xlsx" description:"Also write the grouping to this .xlsx file"`
	Debug     bool   `short:"d" long:"debug" description:"Trace preferences, tiers and commits"`

	Args struct {
		Input string `positional-arg-name:"FILE" description:"Preference file"`
	} `positional-args:"yes"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts options
	p := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	p.Usage = "[options] FILE"
	if _, err := p.ParseArgs(args); err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, fe.Message)

			return 0
		}
		fmt.Fprintln(stderr, err)

		return 1
	}
	if opts.Args.Input == "" {
		fmt.Fprintln(stderr, "no input file")

		return 1
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}
	applyFlags(p, &opts, cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}
	lvl, _ := cfg.LogLevel()

	logger := log.NewWithOptions(stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           lvl,
		Prefix:          "affinity",
	}).With("run", uuid.NewString())

	if err := execute(ctx, opts.Args.Input, cfg, logger, stdout); err != nil {
		logger.Error("run failed", "err", err)

		return 1
	}

	return 0
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(p *flags.Parser, opts *options, cfg *config.AppConfig) {
	set := func(long string) bool {
		o := p.FindOptionByLongName(long)

		return o != nil && o.IsSet()
	}
	if set("group-size") {
		cfg.Grouping.GroupSize = opts.GroupSize
	}
	if set("choices") {
		cfg.Grouping.Choices = opts.Choices
	}
	if set("seed") {
		cfg.Grouping.Seed = opts.Seed
	}
	if set("workers") {
		cfg.Grouping.Workers = opts.Workers
	}
	if set("xlsx") {
		cfg.Output.XLSXPath = opts.XLSX
	}
	if opts.Debug {
		cfg.Log.Debug = true
	}
}

func execute(ctx context.Context, path string, cfg *config.AppConfig, logger *log.Logger, stdout io.Writer) error {
	in, err := parser.ParseFile(path)
	if err != nil {
		return err
	}
	groupSize := in.GroupSize
	if cfg.Grouping.GroupSize > 0 {
		groupSize = cfg.Grouping.GroupSize
	}

	store, err := prefs.Build(in.Entries, cfg.Grouping.Choices)
	if err != nil {
		return errors.Wrap(err, "load preferences")
	}
	if n := store.SuppressDuplicates(); n > 0 {
		logger.Debug("duplicate choices nullified", "slots", n)
	}

	seed := cfg.Grouping.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("starting", "input", path, "participants", store.Len(), "k", groupSize, "seed", seed)

	part, err := grouping.Solve(store, groupSize,
		grouping.WithContext(ctx),
		grouping.WithLogger(logger),
		grouping.WithSeed(seed),
		grouping.WithWeights(cfg.Grouping.Weights),
		grouping.WithWorkers(cfg.Grouping.Workers),
	)
	if err != nil {
		return errors.Wrap(err, "partition")
	}

	if err := render.WriteText(stdout, part); err != nil {
		return err
	}
	if cfg.Output.XLSXPath != "" {
		if err := render.SaveXLSX(cfg.Output.XLSXPath, part); err != nil {
			return err
		}
		logger.Info("workbook written", "path", cfg.Output.XLSXPath)
	}

	return nil
}
