package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-odds/internal/config"
	"github.com/lox/holdem-odds/internal/fileutil"
	"github.com/lox/holdem-odds/internal/game"
	"github.com/lox/holdem-odds/internal/odds"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Hand     string           `arg:"" help:"Player hand, e.g. 'AsKs' or 'Ah Kd'"`
	Board    string           `short:"b" help:"Community cards (0-5), e.g. 'Js5s2d'"`
	Engine   string           `short:"e" help:"Engine to use: exact or montecarlo (overrides config)"`
	Samples  int              `short:"n" help:"Number of Monte Carlo samples (overrides config)"`
	Workers  int              `short:"w" help:"Worker goroutines, 0 for one per CPU (overrides config)"`
	Seed     *int64           `help:"Random seed for reproducible Monte Carlo results"`
	Timeout  string           `help:"Abort the calculation after this duration, e.g. '30s'"`
	Preflop  bool             `help:"Allow exhaustive enumeration with fewer than 3 board cards"`
	Hands    *int             `help:"Opponent hands listed per category, 0 for none"`
	Config   string           `short:"c" default:"poker-odds.hcl" help:"Path to HCL configuration file"`
	JSON     bool             `help:"Print the result as JSON"`
	Output   string           `short:"o" help:"Also write the JSON result to this file"`
	NoColor  bool             `help:"Disable colored output"`
	Progress bool             `help:"Show a spinner while calculating"`
	Debug    bool             `short:"d" help:"Enable debug logging"`
	Version  kong.VersionFlag `short:"v" help:"Show version"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("poker-odds"),
		kong.Description("Heads-up hold'em odds against a random opponent hand"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)
	err := cli.Run()
	ctx.FatalIfErrorf(err)
}

// Run loads configuration, applies flag overrides and prints the result
func (c *CLI) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	c.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := setupLogger(cfg.LogLevel)
	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	pos, err := game.ParsePosition(c.Hand, c.Board)
	if err != nil {
		return err
	}

	calc, err := odds.NewCalculator(*cfg.Calculator, logger, quartz.NewReal())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var report *odds.Report
	calculate := func() error {
		var err error
		report, err = calc.Calculate(ctx, pos)
		return err
	}
	if c.Progress {
		err = withProgress(fmt.Sprintf("Running %s engine", cfg.Calculator.Engine), calculate)
	} else {
		err = calculate()
	}
	if err != nil {
		return err
	}

	if c.Output != "" {
		if err := fileutil.WriteJSON(c.Output, report); err != nil {
			return fmt.Errorf("writing %s: %w", c.Output, err)
		}
		logger.Info("Wrote result", "path", c.Output)
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	displayReport(os.Stdout, pos, report, cfg.Calculator.SampleHands)
	return nil
}

func (c *CLI) applyOverrides(cfg *config.Config) {
	calc := cfg.Calculator
	if c.Engine != "" {
		calc.Engine = c.Engine
	}
	if c.Samples != 0 {
		calc.Samples = c.Samples
	}
	if c.Workers != 0 {
		calc.Workers = c.Workers
	}
	if c.Seed != nil {
		calc.Seed = c.Seed
	}
	if c.Timeout != "" {
		calc.Timeout = c.Timeout
	}
	if c.Preflop {
		calc.AllowPreflop = true
	}
	if c.Hands != nil {
		calc.SampleHands = *c.Hands
	}
	if c.Debug {
		cfg.LogLevel = "debug"
	}
}

func setupLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
