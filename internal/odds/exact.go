package odds

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/lox/holdem-odds/internal/combin"
	"github.com/lox/holdem-odds/internal/deck"
	"github.com/lox/holdem-odds/internal/evaluator"
	"github.com/lox/holdem-odds/internal/game"
	"golang.org/x/sync/errgroup"
)

// MinExactBoard is the smallest board ExactEngine accepts unless AllowPreflop is set
const MinExactBoard = 3

// playerCacheLimit bounds the per-worker cache of player ranks by board completion.
// A flop leaves C(47,2) = 1081 completions; pre-flop leaves millions and skips the cache.
const playerCacheLimit = 1 << 16

// cancelCheckInterval is how many board completions run between context checks
const cancelCheckInterval = 4096

// ExactEngine enumerates every opponent hand and every completion of the board.
type ExactEngine struct {
	// Workers is the number of goroutines sharing the opponent hands. Zero picks the
	// CPU count, capped at 8.
	Workers int
	// AllowPreflop permits boards of 0-2 cards. A pre-flop run enumerates
	// C(50,2)*C(48,5), about 2.1 billion scenarios.
	AllowPreflop bool
	// Logger receives debug output; nil discards it.
	Logger *log.Logger
}

// NewExactEngine returns an engine with default settings
func NewExactEngine() *ExactEngine {
	return &ExactEngine{}
}

// Calculate returns exact probabilities for pos. The player must hold two cards and the
// board must have 3-5 cards (0-5 with AllowPreflop).
func (e *ExactEngine) Calculate(ctx context.Context, pos *game.Position) (*ExactResult, error) {
	minBoard := MinExactBoard
	if e.AllowPreflop {
		minBoard = 0
	}
	if err := checkPosition(pos, minBoard); err != nil {
		return nil, err
	}

	logger := resolveLogger(e.Logger)
	unseen := pos.Deck().Cards()
	missing := pos.MissingCommunityCards()
	expected := ScenarioCount(len(unseen), missing)
	workers := resolveWorkers(e.Workers)

	logger.Debug("Starting exact enumeration",
		"position", pos.String(),
		"unseen", len(unseen),
		"missing", missing,
		"scenarios", expected,
		"workers", workers)

	tallies := make([]*tally, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		t := &tally{}
		tallies[w] = t
		g.Go(func() error {
			return enumerateWorker(ctx, pos, unseen, missing, w, workers, t)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &tally{}
	for _, t := range tallies {
		total.merge(t)
	}

	logger.Debug("Exact enumeration complete",
		"scenarios", total.scenarios(),
		"playerWins", total.playerWins,
		"opponentWins", total.opponentWins,
		"ties", total.ties)

	return &ExactResult{
		Outcome:        total.outcome(total.scenarios()),
		TotalScenarios: total.scenarios(),
	}, nil
}

// enumerateWorker scores every scenario whose opponent-hand combination index is
// congruent to worker modulo workers.
func enumerateWorker(ctx context.Context, pos *game.Position, unseen []deck.Card, missing, worker, workers int, t *tally) error {
	s := newScorer(pos)
	rest := make([]deck.Card, 0, len(unseen))
	completion := make([]deck.Card, missing)

	var cache map[deck.CardSet]evaluator.HandRank
	if combin.Binomial(len(unseen), missing) <= playerCacheLimit {
		cache = make(map[deck.CardSet]evaluator.HandRank)
	}

	opponents := combin.New(len(unseen), game.HoleCards)
	for i := 0; opponents.Next(); i++ {
		if i%workers != worker {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		pair := opponents.Indices()
		a, b := unseen[pair[0]], unseen[pair[1]]
		s.setOpponent(a, b)
		oppHand := deck.NewCardSet(a, b)

		rest = rest[:0]
		for j, c := range unseen {
			if j != pair[0] && j != pair[1] {
				rest = append(rest, c)
			}
		}

		boards := combin.New(len(rest), missing)
		for n := 1; boards.Next(); n++ {
			if n%cancelCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			for k, idx := range boards.Indices() {
				completion[k] = rest[idx]
			}
			s.setCompletion(completion)

			var player evaluator.HandRank
			if cache != nil {
				key := deck.NewCardSet(completion...)
				cached, ok := cache[key]
				if !ok {
					cached = s.playerRank()
					cache[key] = cached
				}
				player = cached
			} else {
				player = s.playerRank()
			}

			t.record(player, s.opponentRank(), oppHand)
		}
	}
	return nil
}

// ScenarioCount is the number of (opponent hand, board completion) pairs for an unseen
// pool of the given size: C(unseen,2) * C(unseen-2, missing).
func ScenarioCount(unseen, missing int) int {
	return combin.Binomial(unseen, game.HoleCards) * combin.Binomial(unseen-game.HoleCards, missing)
}
