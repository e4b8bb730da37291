// Package evaluator classifies and ranks poker hands of five to seven cards.
package evaluator

import (
	"errors"
	"fmt"

	"github.com/lox/holdem-odds/internal/combin"
	"github.com/lox/holdem-odds/internal/deck"
)

var (
	// ErrInsufficientCards is returned when fewer than five cards are evaluated
	ErrInsufficientCards = errors.New("at least 5 cards are required")
	// ErrTooManyCards is returned when more than seven cards are evaluated
	ErrTooManyCards = errors.New("at most 7 cards can be evaluated")
	// ErrDuplicateCard is returned when the same card appears twice
	ErrDuplicateCard = errors.New("duplicate card")
)

// fiveOf[n] lists every 5-card index subset of n cards, for n = 5..7
var fiveOf [8][][5]int

func init() {
	for n := 5; n <= 7; n++ {
		for _, tuple := range combin.All(n, 5) {
			var idx [5]int
			copy(idx[:], tuple)
			fiveOf[n] = append(fiveOf[n], idx)
		}
	}
}

// Evaluate returns the best five-card classification among all 5-card subsets of cards.
func Evaluate(cards []deck.Card) (HandRank, error) {
	switch {
	case len(cards) < 5:
		return HandRank{}, fmt.Errorf("%w: got %d", ErrInsufficientCards, len(cards))
	case len(cards) > 7:
		return HandRank{}, fmt.Errorf("%w: got %d", ErrTooManyCards, len(cards))
	}

	var seen deck.CardSet
	for _, c := range cards {
		if !c.Valid() {
			return HandRank{}, fmt.Errorf("evaluate: %w: %+v", deck.ErrInvalidCardSpec, c)
		}
		if seen.Contains(c) {
			return HandRank{}, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen.Add(c)
	}

	return best(cards), nil
}

// MustEvaluate parses card notation and evaluates it, panicking on error (for tests)
func MustEvaluate(s string) HandRank {
	h, err := Evaluate(deck.MustParseCards(s))
	if err != nil {
		panic(fmt.Sprintf("failed to evaluate '%s': %v", s, err))
	}
	return h
}

// best assumes 5-7 distinct valid cards
func best(cards []deck.Card) HandRank {
	var (
		top   HandRank
		hand  [5]deck.Card
		found bool
	)
	for _, idx := range fiveOf[len(cards)] {
		for i, j := range idx {
			hand[i] = cards[j]
		}
		h := classify(hand)
		if !found || Compare(h, top) > 0 {
			top, found = h, true
		}
	}
	return top
}

type rankGroup struct {
	rank  deck.Rank
	count int
}

// classify ranks exactly five cards
func classify(hand [5]deck.Card) HandRank {
	var ranks [5]deck.Rank
	flush := true
	for i, c := range hand {
		ranks[i] = c.Rank
		if c.Suit != hand[0].Suit {
			flush = false
		}
	}

	// insertion sort, descending
	for i := 1; i < len(ranks); i++ {
		for j := i; j > 0 && ranks[j] > ranks[j-1]; j-- {
			ranks[j], ranks[j-1] = ranks[j-1], ranks[j]
		}
	}

	straight, high := straightHigh(ranks)
	if straight && flush {
		if high == deck.Ace {
			return newHandRank(RoyalFlush, deck.Ace)
		}
		return newHandRank(StraightFlush, high)
	}

	// Group equal ranks; ranks are sorted so equal ranks are adjacent.
	var groups [5]rankGroup
	n := 0
	for i, r := range ranks {
		if i > 0 && r == ranks[i-1] {
			groups[n-1].count++
			continue
		}
		groups[n] = rankGroup{rank: r, count: 1}
		n++
	}
	// Larger groups first; equal sizes keep descending rank order.
	for i := 1; i < n; i++ {
		for j := i; j > 0 && groups[j].count > groups[j-1].count; j-- {
			groups[j], groups[j-1] = groups[j-1], groups[j]
		}
	}

	switch {
	case groups[0].count == 4:
		return newHandRank(FourOfAKind, groups[0].rank, groups[1].rank)
	case groups[0].count == 3 && groups[1].count == 2:
		return newHandRank(FullHouse, groups[0].rank, groups[1].rank)
	case flush:
		return newHandRank(Flush, ranks[:]...)
	case straight:
		return newHandRank(Straight, high)
	case groups[0].count == 3:
		return newHandRank(ThreeOfAKind, groups[0].rank, groups[1].rank, groups[2].rank)
	case groups[0].count == 2 && groups[1].count == 2:
		return newHandRank(TwoPair, groups[0].rank, groups[1].rank, groups[2].rank)
	case groups[0].count == 2:
		return newHandRank(Pair, groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank)
	default:
		return newHandRank(HighCard, ranks[:]...)
	}
}

// straightHigh reports whether descending ranks form a straight and its high card.
// The wheel A-5-4-3-2 is a five-high straight.
func straightHigh(r [5]deck.Rank) (bool, deck.Rank) {
	if r[0] == deck.Ace && r[1] == deck.Five && r[2] == deck.Four && r[3] == deck.Three && r[4] == deck.Two {
		return true, deck.Five
	}
	for i := 1; i < len(r); i++ {
		if r[i-1]-r[i] != 1 {
			return false, 0
		}
	}
	return true, r[0]
}
