package evaluator

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-odds/internal/deck"
)

// Category is the class of a five-card poker hand, ordered weakest to strongest
type Category int

const (
	HighCard Category = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// NumCategories is the number of hand categories
const NumCategories = 10

var categoryNames = [...]string{
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

// String returns the display name of the category
func (c Category) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the ten categories
func (c Category) Valid() bool {
	return c >= HighCard && c <= RoyalFlush
}

// Categories returns every category, weakest first
func Categories() []Category {
	out := make([]Category, 0, NumCategories)
	for c := HighCard; c <= RoyalFlush; c++ {
		out = append(out, c)
	}
	return out
}

// HandRank is the classification of the best five cards of a hand: the category plus
// the tie-break ranks used to order hands within it, most significant first.
type HandRank struct {
	Category Category
	key      [5]deck.Rank
	n        uint8
}

func newHandRank(c Category, key ...deck.Rank) HandRank {
	h := HandRank{Category: c, n: uint8(len(key))}
	copy(h.key[:], key)
	return h
}

// TieBreak returns the ordered tie-break key
func (h HandRank) TieBreak() []deck.Rank {
	key := make([]deck.Rank, h.n)
	copy(key, h.key[:h.n])
	return key
}

// Label returns the display name of the hand's category
func (h HandRank) Label() string {
	return h.Category.String()
}

// String returns the category followed by its tie-break ranks, e.g. "Two Pair (K 9 4)"
func (h HandRank) String() string {
	parts := make([]string, h.n)
	for i := range parts {
		parts[i] = h.key[i].String()
	}
	return fmt.Sprintf("%s (%s)", h.Category, strings.Join(parts, " "))
}

// Compare returns -1 if h is weaker than other, 0 if they tie, 1 if h is stronger
func (h HandRank) Compare(other HandRank) int {
	return Compare(h, other)
}

// Beats reports whether h is strictly stronger than other
func (h HandRank) Beats(other HandRank) bool {
	return Compare(h, other) > 0
}

// Compare orders two hands by category, then element-wise by tie-break key.
// It returns -1, 0 or 1; 0 only when category and key are identical.
func Compare(a, b HandRank) int {
	if a.Category != b.Category {
		if a.Category < b.Category {
			return -1
		}
		return 1
	}
	for i := range a.key {
		if a.key[i] != b.key[i] {
			if a.key[i] < b.key[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
