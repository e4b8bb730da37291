package odds

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/holdem-odds/internal/config"
	"github.com/lox/holdem-odds/internal/game"
)

// Report is the outcome of one Calculator run. Exactly one of Exact and Sampled is set.
type Report struct {
	Engine  string         `json:"engine"`
	Elapsed time.Duration  `json:"elapsed"`
	Exact   *ExactResult   `json:"exact,omitempty"`
	Sampled *SampledResult `json:"sampled,omitempty"`
}

// Outcome returns the shared part of whichever result is present
func (r *Report) Outcome() Outcome {
	if r.Exact != nil {
		return r.Exact.Outcome
	}
	if r.Sampled != nil {
		return r.Sampled.Outcome
	}
	return Outcome{}
}

// Scenarios returns the number of enumerated scenarios or drawn samples
func (r *Report) Scenarios() int {
	if r.Exact != nil {
		return r.Exact.TotalScenarios
	}
	if r.Sampled != nil {
		return r.Sampled.TotalSamples
	}
	return 0
}

// Calculator runs the engines for presentation collaborators: it applies configured
// defaults, enforces the optional timeout and logs each run.
type Calculator struct {
	cfg     config.CalculatorConfig
	timeout time.Duration
	logger  *log.Logger
	clock   quartz.Clock
}

// NewCalculator creates a calculator. A nil logger discards output; a nil clock uses
// the real clock.
func NewCalculator(cfg config.CalculatorConfig, logger *log.Logger, clock quartz.Clock) (*Calculator, error) {
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Calculator{
		cfg:     cfg,
		timeout: timeout,
		logger:  resolveLogger(logger).WithPrefix("calculator"),
		clock:   clock,
	}, nil
}

// Calculate runs the configured engine
func (c *Calculator) Calculate(ctx context.Context, pos *game.Position) (*Report, error) {
	switch c.cfg.Engine {
	case config.EngineExact:
		return c.Exact(ctx, pos)
	case config.EngineMonteCarlo, "":
		return c.Sample(ctx, pos, c.cfg.Samples)
	default:
		return nil, fmt.Errorf("unknown engine %q", c.cfg.Engine)
	}
}

// Exact runs ExactEngine against pos
func (c *Calculator) Exact(ctx context.Context, pos *game.Position) (*Report, error) {
	engine := &ExactEngine{
		Workers:      c.cfg.Workers,
		AllowPreflop: c.cfg.AllowPreflop,
		Logger:       c.logger,
	}
	report := &Report{Engine: config.EngineExact}
	err := c.run(ctx, report, pos, func(ctx context.Context) error {
		res, err := engine.Calculate(ctx, pos)
		report.Exact = res
		return err
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Sample runs MonteCarloEngine against pos with the given number of samples
func (c *Calculator) Sample(ctx context.Context, pos *game.Position, samples int) (*Report, error) {
	engine := &MonteCarloEngine{
		Workers: c.cfg.Workers,
		Seed:    c.cfg.Seed,
		Logger:  c.logger,
	}
	report := &Report{Engine: config.EngineMonteCarlo}
	err := c.run(ctx, report, pos, func(ctx context.Context) error {
		res, err := engine.Calculate(ctx, pos, samples)
		report.Sampled = res
		return err
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// run executes calc on its own goroutine. When the timeout fires first the worker is
// cancelled, its eventual result discarded, and context.DeadlineExceeded returned.
func (c *Calculator) run(ctx context.Context, report *Report, pos *game.Position, calc func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := c.logger.With("engine", report.Engine, "position", pos.String())
	logger.Debug("Calculation started", "timeout", c.timeout)
	start := c.clock.Now()

	done := make(chan error, 1)
	go func() {
		done <- calc(ctx)
	}()

	var expired <-chan time.Time
	if c.timeout > 0 {
		timer := c.clock.NewTimer(c.timeout, "calculator", "timeout")
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case err := <-done:
		if err != nil {
			logger.Debug("Calculation failed", "error", err)
			return err
		}
	case <-expired:
		logger.Warn("Calculation timed out", "timeout", c.timeout)
		return fmt.Errorf("calculation exceeded %s: %w", c.timeout, context.DeadlineExceeded)
	case <-ctx.Done():
		return ctx.Err()
	}

	report.Elapsed = c.clock.Since(start)
	logger.Info("Calculation complete",
		"scenarios", report.Scenarios(),
		"playerWin", fmt.Sprintf("%.4f", report.Outcome().PlayerWinProbability),
		"elapsed", report.Elapsed)
	return nil
}
