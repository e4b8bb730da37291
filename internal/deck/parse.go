package deck

import (
	"fmt"
	"strings"
)

// ParseCards parses a string of card notation into a slice of cards.
// Format: "AsKsQsJsTs" where each card is [Rank][Suit]; whitespace and commas are ignored.
// Ranks: A, K, Q, J, T (or 10), 9 .. 2
// Suits: s, h, d, c or the unicode symbols ♠ ♥ ♦ ♣
func ParseCards(s string) ([]Card, error) {
	runes := []rune(strings.NewReplacer(" ", "", ",", "", "\t", "").Replace(s))

	var cards []Card
	for i := 0; i < len(runes); {
		rank, width, err := parseRank(runes[i:])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		i += width
		if i >= len(runes) {
			return nil, fmt.Errorf("%w: incomplete card at end of %q", ErrInvalidCardSpec, s)
		}

		suit, err := parseSuit(runes[i])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		i++

		cards = append(cards, Card{Rank: rank, Suit: suit})
	}

	return cards, nil
}

// ParseCard parses exactly one card
func ParseCard(s string) (Card, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Card{}, err
	}
	if len(cards) != 1 {
		return Card{}, fmt.Errorf("%w: expected one card in %q, got %d", ErrInvalidCardSpec, s, len(cards))
	}
	return cards[0], nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(r []rune) (Rank, int, error) {
	if len(r) >= 2 && r[0] == '1' && r[1] == '0' {
		return Ten, 2, nil
	}
	switch r[0] {
	case 'A', 'a':
		return Ace, 1, nil
	case 'K', 'k':
		return King, 1, nil
	case 'Q', 'q':
		return Queen, 1, nil
	case 'J', 'j':
		return Jack, 1, nil
	case 'T', 't':
		return Ten, 1, nil
	}
	if r[0] >= '2' && r[0] <= '9' {
		return Rank(r[0]-'0'), 1, nil
	}
	return 0, 0, fmt.Errorf("%w: unknown rank '%c'", ErrInvalidCardSpec, r[0])
}

func parseSuit(r rune) (Suit, error) {
	switch r {
	case 's', 'S', '♠':
		return Spades, nil
	case 'h', 'H', '♥':
		return Hearts, nil
	case 'd', 'D', '♦':
		return Diamonds, nil
	case 'c', 'C', '♣':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("%w: unknown suit '%c'", ErrInvalidCardSpec, r)
	}
}
