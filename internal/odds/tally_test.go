package odds

import (
	"testing"

	"github.com/lox/holdem-odds/internal/deck"
	"github.com/lox/holdem-odds/internal/evaluator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTallyRecordAndMerge(t *testing.T) {
	pair := evaluator.MustEvaluate("AsAh9d5c2s")
	flush := evaluator.MustEvaluate("KhQh8h4h3h")
	straight := evaluator.MustEvaluate("9c8d7h6s5c")

	hand1 := deck.NewCardSet(deck.MustParseCards("KhQh")...)
	hand2 := deck.NewCardSet(deck.MustParseCards("9c8d")...)

	var a, b tally
	a.record(pair, flush, hand1)        // opponent wins with a flush
	a.record(straight, straight, hand2) // tie
	b.record(flush, straight, hand2)    // player wins
	b.record(pair, flush, hand1)        // duplicate hand, counted again

	a.merge(&b)
	require.Equal(t, 4, a.scenarios())

	o := a.outcome(a.scenarios())
	assert.Equal(t, 1, o.PlayerWins)
	assert.Equal(t, 2, o.OpponentWins)
	assert.Equal(t, 1, o.Ties)
	assert.InDelta(t, 0.5, o.OpponentWinProbability, 1e-9)

	require.Len(t, o.Distribution, 2)
	fl := o.Distribution[evaluator.Flush]
	assert.Equal(t, 2, fl.Occurrences)
	assert.Equal(t, 2, fl.Wins)
	assert.Equal(t, 1.0, fl.WinRate)
	assert.Equal(t, []string{"Kh,Qh"}, fl.SampleOpponentHands, "hands are a set")

	st := o.Distribution[evaluator.Straight]
	assert.Equal(t, 1, st.Losses)
	assert.Equal(t, 1, st.Ties)
	assert.InDelta(t, 0.5, st.TieRate, 1e-9)
	assert.Equal(t, []string{"9c,8d"}, st.SampleOpponentHands)

	sorted := o.SortedDistribution()
	require.Len(t, sorted, 2)
	assert.Equal(t, evaluator.Flush, sorted[0].Category)
}

func TestTallyEmptyOutcome(t *testing.T) {
	var empty tally
	o := empty.outcome(0)
	assert.Empty(t, o.Distribution)
	assert.Zero(t, o.PlayerWinProbability)
}
