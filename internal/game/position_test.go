package game

import (
	"errors"
	"testing"

	"github.com/lox/holdem-odds/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckTracksKnownCards(t *testing.T) {
	t.Parallel()

	for n := 0; n <= MaxCommunityCards; n++ {
		pos := NewPosition()
		require.NoError(t, pos.SetPlayerHand(deck.MustParseCards("AsKs")...))
		require.NoError(t, pos.SetCommunityCards(deck.MustParseCards("Js5s2d9c7h")[:n]...))

		assert.Equal(t, 52-2-n, pos.Deck().Remaining(), "board of %d", n)
		assert.Equal(t, MaxCommunityCards-n, pos.MissingCommunityCards())
		require.NoError(t, pos.Validate())
	}
}

func TestSettersRebuildDeck(t *testing.T) {
	t.Parallel()

	pos := NewPosition()
	require.NoError(t, pos.SetPlayerHand(deck.MustParseCards("AsKs")...))
	require.NoError(t, pos.SetCommunityCards(deck.MustParseCards("Js5s2d")...))
	require.Equal(t, 47, pos.Deck().Remaining())

	// Replacing the hand puts the old cards back.
	require.NoError(t, pos.SetPlayerHand(deck.MustParseCards("QhQd")...))
	assert.True(t, pos.Deck().Contains(deck.MustParseCards("As")[0]))
	assert.False(t, pos.Deck().Contains(deck.MustParseCards("Qh")[0]))
	assert.Equal(t, 47, pos.Deck().Remaining())

	require.NoError(t, pos.AddCommunityCard(deck.MustParseCards("9c")[0]))
	assert.Equal(t, 46, pos.Deck().Remaining())
	assert.Len(t, pos.CommunityCards(), 4)

	require.NoError(t, pos.SetOpponentHand(deck.MustParseCards("2c3c")...))
	assert.Equal(t, 44, pos.Deck().Remaining())
	require.NoError(t, pos.SetOpponentHand())
	assert.Equal(t, 46, pos.Deck().Remaining())

	require.NoError(t, pos.Validate())
}

func TestDuplicateCardsRejected(t *testing.T) {
	t.Parallel()

	pos := NewPosition()
	require.NoError(t, pos.SetPlayerHand(deck.MustParseCards("AsKs")...))

	err := pos.SetCommunityCards(deck.MustParseCards("AsQd2c")...)
	require.True(t, errors.Is(err, ErrInvalidPosition), "got %v", err)
	assert.Empty(t, pos.CommunityCards(), "failed setter leaves state unchanged")
	assert.Equal(t, 50, pos.Deck().Remaining())

	require.NoError(t, pos.SetCommunityCards(deck.MustParseCards("QdJd2c")...))
	err = pos.SetPlayerHand(deck.MustParseCards("Qd3h")...)
	assert.True(t, errors.Is(err, ErrInvalidPosition))

	err = pos.SetOpponentHand(deck.MustParseCards("Ks3h")...)
	assert.True(t, errors.Is(err, ErrInvalidPosition))

	err = pos.AddCommunityCard(deck.MustParseCards("Ks")[0])
	assert.True(t, errors.Is(err, ErrInvalidPosition))
	assert.Len(t, pos.CommunityCards(), 3)
}

func TestShapeValidation(t *testing.T) {
	t.Parallel()

	pos := NewPosition()
	assert.ErrorIs(t, pos.SetPlayerHand(deck.MustParseCards("As")...), ErrInvalidPosition)
	assert.ErrorIs(t, pos.SetPlayerHand(deck.MustParseCards("AsKsQs")...), ErrInvalidPosition)
	assert.ErrorIs(t, pos.SetPlayerHand(deck.MustParseCards("AsAs")...), ErrInvalidPosition)
	assert.ErrorIs(t, pos.SetPlayerHand(deck.Card{}, deck.Card{}), ErrInvalidPosition)
	assert.ErrorIs(t, pos.SetCommunityCards(deck.MustParseCards("2c3c4c5c6c7c")...), ErrInvalidPosition)

	require.NoError(t, pos.SetCommunityCards(deck.MustParseCards("2c3c4c5c6c")...))
	assert.ErrorIs(t, pos.AddCommunityCard(deck.MustParseCards("7c")[0]), ErrInvalidPosition)
}

func TestValidateDetectsCorruption(t *testing.T) {
	t.Parallel()

	pos, err := ParsePosition("AsKs", "Js5s2d")
	require.NoError(t, err)
	require.NoError(t, pos.Validate())

	// Bypass the setters to break the invariant directly.
	dup := pos.Clone()
	dup.communityCards[0] = dup.playerHand[0]
	dup.rebuildDeck()
	assert.ErrorIs(t, dup.Validate(), ErrInvalidPosition)

	stale := pos.Clone()
	stale.deck.Reset()
	assert.ErrorIs(t, stale.Validate(), ErrInvalidPosition)
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	pos, err := ParsePosition("AsKs", "Js5s2d")
	require.NoError(t, err)

	c := pos.Clone()
	require.NoError(t, c.AddCommunityCard(deck.MustParseCards("9c")[0]))
	require.NoError(t, c.SetPlayerHand(deck.MustParseCards("7h7d")...))

	assert.Equal(t, deck.MustParseCards("AsKs"), pos.PlayerHand())
	assert.Len(t, pos.CommunityCards(), 3)
	assert.Equal(t, 47, pos.Deck().Remaining())
	assert.Equal(t, 46, c.Deck().Remaining())
	assert.NotSame(t, pos.Deck(), c.Deck())
}

func TestParsePosition(t *testing.T) {
	t.Parallel()

	pos, err := ParsePosition("As Ks", "")
	require.NoError(t, err)
	assert.Equal(t, 50, pos.Deck().Remaining())
	assert.Equal(t, "A♠ K♠ | ", pos.String())

	_, err = ParsePosition("AsXs", "")
	assert.ErrorIs(t, err, deck.ErrInvalidCardSpec)

	_, err = ParsePosition("AsKs", "AsQd2c")
	assert.ErrorIs(t, err, ErrInvalidPosition)
}
