package deck

import "math/bits"

// CardSet represents a set of cards using a bitset for fast operations.
// Each card maps to bit Card.Index().
type CardSet uint64

// FullSet contains all 52 cards
const FullSet CardSet = 1<<52 - 1

// NewCardSet creates a CardSet from cards
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << card.Index()
}

// Remove removes a card from the set; removing an absent card is a no-op
func (cs *CardSet) Remove(card Card) {
	*cs &^= 1 << card.Index()
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<card.Index()) != 0
}

// Len returns the number of cards in the set
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}

// Cards returns the members in canonical order (Card.Index ascending)
func (cs CardSet) Cards() []Card {
	cards := make([]Card, 0, cs.Len())
	for rest := uint64(cs); rest != 0; rest &= rest - 1 {
		cards = append(cards, CardAt(bits.TrailingZeros64(rest)))
	}
	return cards
}
