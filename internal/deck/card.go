package deck

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidCardSpec is returned when a rank/suit pair does not name one of the 52 cards
var ErrInvalidCardSpec = errors.New("invalid card spec")

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits in a standard deck
const NumSuits = 4

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Letter returns the single-letter notation for the suit (c, d, h, s)
func (s Suit) Letter() byte {
	if !s.Valid() {
		return '?'
	}
	return "cdhs"[s]
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of ranks in a standard deck
const NumRanks = 13

var rankLetters = [...]byte{
	Two: '2', Three: '3', Four: '4', Five: '5', Six: '6', Seven: '7', Eight: '8',
	Nine: '9', Ten: 'T', Jack: 'J', Queen: 'Q', King: 'K', Ace: 'A',
}

// String returns the string representation of a rank
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rankLetters[r])
}

// Valid reports whether r is between Two and Ace
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Card represents a playing card. The zero value is not a valid card.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card, rejecting anything outside the 52 valid combinations
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() || !suit.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d suit %d", ErrInvalidCardSpec, rank, suit)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// MustCard is like NewCard but panics on an invalid pair
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Valid reports whether the card is one of the 52 cards
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Notation returns the ASCII notation of a card (e.g., "As")
func (c Card) Notation() string {
	return string([]byte{rankLetters[c.Rank], c.Suit.Letter()})
}

// Index returns the card's position 0-51 in canonical order (rank major, suit minor)
func (c Card) Index() int {
	return int(c.Rank-Two)*NumSuits + int(c.Suit)
}

// CardAt is the inverse of Card.Index
func CardAt(index int) Card {
	return Card{Rank: Two + Rank(index/NumSuits), Suit: Suit(index % NumSuits)}
}

// HandKey returns a canonical key for a set of cards: highest rank first, ties broken by
// suit, notation joined by commas (e.g. "As,Kh"). Order of the input does not matter.
func HandKey(cards []Card) string {
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Rank != sorted[j].Rank {
			return sorted[i].Rank > sorted[j].Rank
		}
		return sorted[i].Suit > sorted[j].Suit
	})

	parts := make([]string, len(sorted))
	for i, c := range sorted {
		parts[i] = c.Notation()
	}
	return strings.Join(parts, ",")
}

// FormatCards renders cards separated by spaces using their unicode form
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
