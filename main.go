package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/artursvonda/jsxlint/internal/config"
	"github.com/artursvonda/jsxlint/internal/lint"
	"github.com/artursvonda/jsxlint/internal/rules"

	// Registered rules.
	_ "github.com/artursvonda/jsxlint/internal/rules/curlyspacing"
)

const doc = `jsxlint checks spacing conventions inside JSX embedded expressions`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	flags := flag.NewFlagSet("jsxlint", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	configPath := flags.String("config", "", "path to the YAML configuration file")
	verbose := flags.Bool("v", false, "enable debug logging")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n\nUsage:\n  jsxlint [options] files...\n\nRegistered rules: %v\n\nOptions:\n", doc, rules.Names())
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	logger := newLogger(*verbose)
	defer func() {
		_ = logger.Sync()
	}()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Error("load configuration", zap.Error(err))
			return 2
		}
		logger.Debug("configuration loaded", zap.String("path", *configPath))
	}

	linter, err := lint.New(cfg)
	if err != nil {
		logger.Error("set up linter", zap.Error(err))
		return 2
	}

	total := 0
	for _, path := range flags.Args() {
		fs, err := linter.LintFile(path)
		if err != nil {
			logger.Error("lint file", zap.String("path", path), zap.Error(err))
			return 2
		}

		logger.Debug("file checked", zap.String("path", path), zap.Int("findings", len(fs)))
		for _, f := range fs {
			fmt.Fprintf(out, "%s:%s\n", path, f)
		}
		total += len(fs)
	}

	if total > 0 {
		return 1
	}

	return 0
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}
