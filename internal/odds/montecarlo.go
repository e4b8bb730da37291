package odds

import (
	"context"
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/holdem-odds/internal/deck"
	"github.com/lox/holdem-odds/internal/game"
	"github.com/lox/holdem-odds/internal/randutil"
	"golang.org/x/sync/errgroup"
)

// MonteCarloEngine estimates probabilities from independently dealt random scenarios.
type MonteCarloEngine struct {
	// Workers is the number of goroutines sharing the samples. Zero picks the CPU
	// count, capped at 8.
	Workers int
	// Seed makes runs reproducible for a fixed Workers value. Nil draws a fresh seed.
	Seed *int64
	// Logger receives debug output; nil discards it.
	Logger *log.Logger
}

// NewMonteCarloEngine returns an engine with default settings
func NewMonteCarloEngine() *MonteCarloEngine {
	return &MonteCarloEngine{}
}

// Calculate runs sampleCount trials against pos. The player must hold two cards; the
// board may have 0-5 cards.
func (e *MonteCarloEngine) Calculate(ctx context.Context, pos *game.Position, sampleCount int) (*SampledResult, error) {
	if err := checkPosition(pos, 0); err != nil {
		return nil, err
	}
	if sampleCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleCount, sampleCount)
	}

	logger := resolveLogger(e.Logger)
	seed := randutil.RandomSeed()
	if e.Seed != nil {
		seed = *e.Seed
	}

	workers := resolveWorkers(e.Workers)
	if workers > sampleCount {
		workers = sampleCount
	}
	streams := randutil.Streams(seed, workers)
	unseen := pos.Deck().Cards()
	missing := pos.MissingCommunityCards()

	logger.Debug("Starting Monte Carlo sampling",
		"position", pos.String(),
		"samples", sampleCount,
		"workers", workers,
		"seed", seed)

	// Divide samples among workers
	samplesPerWorker := sampleCount / workers
	remainder := sampleCount % workers

	tallies := make([]*tally, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		quota := samplesPerWorker
		if w < remainder {
			quota++ // Distribute remainder samples
		}
		t := &tally{}
		tallies[w] = t
		rng := streams[w]
		g.Go(func() error {
			return sampleWorker(ctx, pos, unseen, missing, quota, rng, t)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &tally{}
	for _, t := range tallies {
		total.merge(t)
	}

	logger.Debug("Monte Carlo sampling complete",
		"samples", total.scenarios(),
		"playerWins", total.playerWins,
		"opponentWins", total.opponentWins,
		"ties", total.ties)

	equity := total.equity()
	low, high := equity.ConfidenceInterval95()
	return &SampledResult{
		Outcome:        total.outcome(sampleCount),
		TotalSamples:   sampleCount,
		Seed:           seed,
		EquityStdError: equity.StdError(),
		EquityLow:      low,
		EquityHigh:     high,
	}, nil
}

// sampleWorker deals quota scenarios from a private copy of the unseen pool. Each trial
// is a partial Fisher-Yates shuffle of the first 2+missing slots: slot j takes a card
// chosen uniformly from positions j..end, so every unseen card is equally likely in
// every drawn slot regardless of earlier trials.
func sampleWorker(ctx context.Context, pos *game.Position, unseen []deck.Card, missing, quota int, rng *rand.Rand, t *tally) error {
	s := newScorer(pos)
	pool := make([]deck.Card, len(unseen))
	copy(pool, unseen)
	need := game.HoleCards + missing

	for i := 0; i < quota; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		for j := 0; j < need; j++ {
			r := j + rng.IntN(len(pool)-j)
			pool[j], pool[r] = pool[r], pool[j]
		}

		s.setOpponent(pool[0], pool[1])
		s.setCompletion(pool[game.HoleCards:need])
		t.record(s.playerRank(), s.opponentRank(), deck.NewCardSet(pool[0], pool[1]))
	}
	return nil
}
