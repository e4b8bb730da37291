// Package odds estimates heads-up win, loss and tie probabilities for a Position,
// either by enumerating every opponent hand and board completion (ExactEngine) or by
// sampling them at random (MonteCarloEngine).
package odds

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/lox/holdem-odds/internal/deck"
	"github.com/lox/holdem-odds/internal/evaluator"
	"github.com/lox/holdem-odds/internal/game"
)

// ErrInvalidSampleCount is returned when a non-positive number of samples is requested
var ErrInvalidSampleCount = errors.New("sample count must be positive")

// maxWorkers caps the default worker count; returns diminish beyond it
const maxWorkers = 8

// defaultWorkers returns the CPU count capped at maxWorkers
func defaultWorkers() int {
	workers := runtime.NumCPU()
	if workers > maxWorkers {
		workers = maxWorkers
	}
	return workers
}

func resolveWorkers(requested int) int {
	if requested > 0 {
		return requested
	}
	return defaultWorkers()
}

func resolveLogger(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.NewWithOptions(io.Discard, log.Options{})
	}
	return logger
}

// checkPosition enforces the player-hand precondition shared by both engines and the
// board size range of the calling engine.
func checkPosition(pos *game.Position, minBoard int) error {
	if pos == nil {
		return fmt.Errorf("%w: nil position", game.ErrInvalidPosition)
	}
	if err := pos.Validate(); err != nil {
		return err
	}
	if n := len(pos.PlayerHand()); n != game.HoleCards {
		return fmt.Errorf("%w: player hand must have %d cards, got %d", game.ErrInvalidPosition, game.HoleCards, n)
	}
	if n := len(pos.CommunityCards()); n < minBoard || n > game.MaxCommunityCards {
		return fmt.Errorf("%w: board must have between %d and %d cards, got %d",
			game.ErrInvalidPosition, minBoard, game.MaxCommunityCards, n)
	}
	return nil
}

// scorer evaluates both sides of a scenario. Each worker owns one; the buffers are reused.
type scorer struct {
	board  int // number of known community cards
	player []deck.Card
	opp    []deck.Card
}

// newScorer lays out two 7-card buffers: hole cards first, then the final board.
func newScorer(pos *game.Position) *scorer {
	board := pos.CommunityCards()
	s := &scorer{
		board:  len(board),
		player: make([]deck.Card, game.HoleCards+game.MaxCommunityCards),
		opp:    make([]deck.Card, game.HoleCards+game.MaxCommunityCards),
	}
	copy(s.player, pos.PlayerHand())
	copy(s.player[game.HoleCards:], board)
	copy(s.opp[game.HoleCards:], board)
	return s
}

// setCompletion fills the missing board slots in both buffers
func (s *scorer) setCompletion(cards []deck.Card) {
	copy(s.player[game.HoleCards+s.board:], cards)
	copy(s.opp[game.HoleCards+s.board:], cards)
}

func (s *scorer) setOpponent(a, b deck.Card) {
	s.opp[0], s.opp[1] = a, b
}

func (s *scorer) playerRank() evaluator.HandRank {
	return mustEvaluate(s.player)
}

func (s *scorer) opponentRank() evaluator.HandRank {
	return mustEvaluate(s.opp)
}

// mustEvaluate is only called on buffers built from a validated position and distinct
// unseen cards, so an error here is a bug in scenario generation.
func mustEvaluate(cards []deck.Card) evaluator.HandRank {
	h, err := evaluator.Evaluate(cards)
	if err != nil {
		panic(fmt.Sprintf("odds: scenario produced invalid hand %v: %v", cards, err))
	}
	return h
}
