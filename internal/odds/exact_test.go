package odds

import (
	"context"
	"testing"

	"github.com/lox/holdem-odds/internal/evaluator"
	"github.com/lox/holdem-odds/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPosition(t *testing.T, player, board string) *game.Position {
	t.Helper()
	pos, err := game.ParsePosition(player, board)
	require.NoError(t, err)
	return pos
}

// assertConsistent checks the counting invariants every result must satisfy
func assertConsistent(t *testing.T, o Outcome, total int) {
	t.Helper()
	assert.Equal(t, total, o.PlayerWins+o.OpponentWins+o.Ties)
	assert.InDelta(t, 1.0, o.PlayerWinProbability+o.OpponentWinProbability+o.TieProbability, 1e-9)
	assert.InDelta(t, o.PlayerWinProbability+o.TieProbability/2, o.Equity, 1e-9)

	occurrences, catProb := 0, 0.0
	for c, stats := range o.Distribution {
		assert.Equal(t, c, stats.Category)
		assert.Equal(t, c.String(), stats.Label)
		assert.Positive(t, stats.Occurrences, "zero-occurrence categories are omitted")
		assert.Equal(t, stats.Occurrences, stats.Wins+stats.Losses+stats.Ties, "category %s", c)
		assert.InDelta(t, 1.0, stats.WinRate+stats.LossRate+stats.TieRate, 1e-9)
		assert.NotEmpty(t, stats.SampleOpponentHands)
		occurrences += stats.Occurrences
		catProb += stats.Probability
	}
	assert.Equal(t, total, occurrences)
	assert.InDelta(t, 1.0, catProb, 1e-9)

	// The opponent's wins across categories are exactly the player's losses.
	oppWins, oppLosses := 0, 0
	for _, stats := range o.Distribution {
		oppWins += stats.Wins
		oppLosses += stats.Losses
	}
	assert.Equal(t, o.OpponentWins, oppWins)
	assert.Equal(t, o.PlayerWins, oppLosses)
}

func TestExactTurnScenarioCount(t *testing.T) {
	t.Parallel()

	pos := mustPosition(t, "AsKs", "Js5s2d9c")
	res, err := NewExactEngine().Calculate(context.Background(), pos)
	require.NoError(t, err)

	require.Equal(t, 990*43, res.TotalScenarios)
	assert.Equal(t, 42570, res.TotalScenarios)
	assert.Equal(t, ScenarioCount(45, 1), res.TotalScenarios)
	assertConsistent(t, res.Outcome, res.TotalScenarios)

	// Nut flush draw plus two overcards is a small favourite against a random hand.
	assert.Greater(t, res.PlayerWinProbability, 0.45)
	assert.Less(t, res.PlayerWinProbability, 0.8)
}

func TestExactRiver(t *testing.T) {
	t.Parallel()

	pos := mustPosition(t, "AsKs", "QsJsTs2c3d")
	res, err := NewExactEngine().Calculate(context.Background(), pos)
	require.NoError(t, err)

	assert.Equal(t, 990, res.TotalScenarios)
	assert.Equal(t, 1.0, res.PlayerWinProbability, "royal flush cannot lose or tie")
	assertConsistent(t, res.Outcome, res.TotalScenarios)
	for _, stats := range res.Distribution {
		assert.Equal(t, 1.0, stats.LossRate)
	}
}

func TestExactBoardPlaysForEveryone(t *testing.T) {
	t.Parallel()

	pos := mustPosition(t, "2c3c", "AhKhQhJhTh")
	res, err := NewExactEngine().Calculate(context.Background(), pos)
	require.NoError(t, err)

	assert.Equal(t, 990, res.TotalScenarios)
	assert.Equal(t, 1.0, res.TieProbability)
	require.Len(t, res.Distribution, 1)

	royal := res.Distribution[evaluator.RoyalFlush]
	assert.Equal(t, "Royal Flush", royal.Label)
	assert.Equal(t, 990, royal.Ties)
	assert.Len(t, royal.SampleOpponentHands, 990, "every opponent hand is retrievable")
	assert.Equal(t, "Royal Flush", res.SortedDistribution()[0].Label)
}

func TestExactIsIndependentOfWorkerCount(t *testing.T) {
	t.Parallel()

	pos := mustPosition(t, "7h7d", "Ks8c2h4s")
	single, err := (&ExactEngine{Workers: 1}).Calculate(context.Background(), pos)
	require.NoError(t, err)
	many, err := (&ExactEngine{Workers: 5}).Calculate(context.Background(), pos)
	require.NoError(t, err)

	assert.Equal(t, single, many)
	assertConsistent(t, single.Outcome, single.TotalScenarios)
}

func TestExactFlop(t *testing.T) {
	if testing.Short() {
		t.Skip("flop enumeration covers over a million scenarios")
	}
	t.Parallel()

	pos := mustPosition(t, "AsKs", "Js5s2d")
	res, err := NewExactEngine().Calculate(context.Background(), pos)
	require.NoError(t, err)

	assert.Equal(t, 1081*990, res.TotalScenarios)
	assertConsistent(t, res.Outcome, res.TotalScenarios)
}

func TestExactPreconditions(t *testing.T) {
	t.Parallel()

	engine := NewExactEngine()
	ctx := context.Background()

	_, err := engine.Calculate(ctx, mustPosition(t, "AsKs", "Js5s"))
	assert.ErrorIs(t, err, game.ErrInvalidPosition, "two-card board")

	_, err = engine.Calculate(ctx, mustPosition(t, "AsKs", ""))
	assert.ErrorIs(t, err, game.ErrInvalidPosition, "pre-flop")

	_, err = engine.Calculate(ctx, mustPosition(t, "", "Js5s2d"))
	assert.ErrorIs(t, err, game.ErrInvalidPosition, "missing player hand")

	_, err = engine.Calculate(ctx, nil)
	assert.ErrorIs(t, err, game.ErrInvalidPosition)
}

func TestExactPreflopExtension(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := &ExactEngine{AllowPreflop: true, Workers: 2}
	_, err := engine.Calculate(ctx, mustPosition(t, "AsKs", ""))
	assert.ErrorIs(t, err, context.Canceled, "precondition passes, cancellation stops the run")
}

func TestScenarioCount(t *testing.T) {
	assert.Equal(t, 42570, ScenarioCount(45, 1))
	assert.Equal(t, 990, ScenarioCount(45, 0))
	assert.Equal(t, 1081*990, ScenarioCount(47, 2))
}
