package game

import (
	"errors"
	"fmt"

	"github.com/lox/holdem-odds/internal/deck"
)

// ErrInvalidPosition is returned for malformed hands, boards or overlapping cards
var ErrInvalidPosition = errors.New("invalid position")

// MaxCommunityCards is the size of a complete board
const MaxCommunityCards = 5

// HoleCards is the number of cards in a player's hand
const HoleCards = 2

// Position is a heads-up situation: the player's hand, an optional known opponent hand
// and the community cards, plus the deck of cards none of them hold.
type Position struct {
	playerHand     []deck.Card
	opponentHand   []deck.Card
	communityCards []deck.Card
	deck           *deck.Deck
}

// NewPosition returns an empty position with a full deck
func NewPosition() *Position {
	return &Position{deck: deck.NewDeck()}
}

// ParsePosition builds a position from card notation, e.g. ParsePosition("AsKs", "Js5s2d")
func ParsePosition(player, board string) (*Position, error) {
	hand, err := deck.ParseCards(player)
	if err != nil {
		return nil, fmt.Errorf("player hand: %w", err)
	}
	community, err := deck.ParseCards(board)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}

	pos := NewPosition()
	if err := pos.SetPlayerHand(hand...); err != nil {
		return nil, err
	}
	if err := pos.SetCommunityCards(community...); err != nil {
		return nil, err
	}
	return pos, nil
}

// SetPlayerHand replaces the player's hand with zero or two cards
func (p *Position) SetPlayerHand(cards ...deck.Card) error {
	if err := checkHand("player hand", cards); err != nil {
		return err
	}
	if err := p.checkFree("player hand", cards, p.opponentHand, p.communityCards); err != nil {
		return err
	}
	p.playerHand = clone(cards)
	p.rebuildDeck()
	return nil
}

// SetOpponentHand replaces the opponent's known hand with zero or two cards.
// The odds engines treat the opponent as unknown; a revealed hand only leaves the deck.
func (p *Position) SetOpponentHand(cards ...deck.Card) error {
	if err := checkHand("opponent hand", cards); err != nil {
		return err
	}
	if err := p.checkFree("opponent hand", cards, p.playerHand, p.communityCards); err != nil {
		return err
	}
	p.opponentHand = clone(cards)
	p.rebuildDeck()
	return nil
}

// SetCommunityCards replaces the board with up to five cards
func (p *Position) SetCommunityCards(cards ...deck.Card) error {
	if len(cards) > MaxCommunityCards {
		return fmt.Errorf("%w: board has %d cards, at most %d allowed", ErrInvalidPosition, len(cards), MaxCommunityCards)
	}
	if err := checkCards("board", cards); err != nil {
		return err
	}
	if err := p.checkFree("board", cards, p.playerHand, p.opponentHand); err != nil {
		return err
	}
	p.communityCards = clone(cards)
	p.rebuildDeck()
	return nil
}

// AddCommunityCard appends one card to the board
func (p *Position) AddCommunityCard(card deck.Card) error {
	board := append(clone(p.communityCards), card)
	return p.SetCommunityCards(board...)
}

// PlayerHand returns a copy of the player's hand
func (p *Position) PlayerHand() []deck.Card {
	return clone(p.playerHand)
}

// OpponentHand returns a copy of the opponent's known hand, empty when unknown
func (p *Position) OpponentHand() []deck.Card {
	return clone(p.opponentHand)
}

// CommunityCards returns a copy of the board
func (p *Position) CommunityCards() []deck.Card {
	return clone(p.communityCards)
}

// KnownCards returns every card held by a hand or the board
func (p *Position) KnownCards() []deck.Card {
	known := make([]deck.Card, 0, len(p.playerHand)+len(p.opponentHand)+len(p.communityCards))
	known = append(known, p.playerHand...)
	known = append(known, p.communityCards...)
	known = append(known, p.opponentHand...)
	return known
}

// Deck returns the live deck of unseen cards. Use Deck().Cards() for a snapshot.
func (p *Position) Deck() *deck.Deck {
	return p.deck
}

// MissingCommunityCards is the number of board cards still to come
func (p *Position) MissingCommunityCards() int {
	return MaxCommunityCards - len(p.communityCards)
}

// Clone returns an independent copy with its own rebuilt deck
func (p *Position) Clone() *Position {
	c := &Position{
		playerHand:     clone(p.playerHand),
		opponentHand:   clone(p.opponentHand),
		communityCards: clone(p.communityCards),
		deck:           deck.NewDeck(),
	}
	c.rebuildDeck()
	return c
}

// Validate checks the position invariant: legal field sizes, valid cards, no card held
// twice, and a deck equal to the 52 cards minus every known card.
func (p *Position) Validate() error {
	if err := checkHand("player hand", p.playerHand); err != nil {
		return err
	}
	if err := checkHand("opponent hand", p.opponentHand); err != nil {
		return err
	}
	if len(p.communityCards) > MaxCommunityCards {
		return fmt.Errorf("%w: board has %d cards", ErrInvalidPosition, len(p.communityCards))
	}

	var known deck.CardSet
	for _, c := range p.KnownCards() {
		if !c.Valid() {
			return fmt.Errorf("%w: %v", ErrInvalidPosition, deck.ErrInvalidCardSpec)
		}
		if known.Contains(c) {
			return fmt.Errorf("%w: card %s is held twice", ErrInvalidPosition, c)
		}
		known.Add(c)
	}

	if p.deck == nil || p.deck.Set() != deck.FullSet&^known {
		return fmt.Errorf("%w: deck is out of sync with known cards", ErrInvalidPosition)
	}
	return nil
}

// String renders the position for logs, e.g. "A♠ K♠ | J♠ 5♠ 2♦"
func (p *Position) String() string {
	return fmt.Sprintf("%s | %s", deck.FormatCards(p.playerHand), deck.FormatCards(p.communityCards))
}

// rebuildDeck resets to 52 cards and removes every known card
func (p *Position) rebuildDeck() {
	if p.deck == nil {
		p.deck = deck.NewDeck()
	}
	p.deck.Reset()
	p.deck.Remove(p.KnownCards()...)
}

// checkFree rejects cards already present in any of the other fields
func (p *Position) checkFree(field string, cards []deck.Card, others ...[]deck.Card) error {
	var taken deck.CardSet
	for _, other := range others {
		taken |= deck.NewCardSet(other...)
	}
	for _, c := range cards {
		if taken.Contains(c) {
			return fmt.Errorf("%w: %s card %s is already in use", ErrInvalidPosition, field, c)
		}
	}
	return nil
}

func checkHand(field string, cards []deck.Card) error {
	if len(cards) != 0 && len(cards) != HoleCards {
		return fmt.Errorf("%w: %s must have 0 or %d cards, got %d", ErrInvalidPosition, field, HoleCards, len(cards))
	}
	return checkCards(field, cards)
}

// checkCards rejects invalid or repeated cards within one field
func checkCards(field string, cards []deck.Card) error {
	var seen deck.CardSet
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: %s: %v", ErrInvalidPosition, field, deck.ErrInvalidCardSpec)
		}
		if seen.Contains(c) {
			return fmt.Errorf("%w: %s contains %s twice", ErrInvalidPosition, field, c)
		}
		seen.Add(c)
	}
	return nil
}

func clone(cards []deck.Card) []deck.Card {
	if len(cards) == 0 {
		return nil
	}
	out := make([]deck.Card, len(cards))
	copy(out, cards)
	return out
}
