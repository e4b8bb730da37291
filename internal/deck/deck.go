package deck

// Deck is the set of cards not yet assigned to any known hand or the board.
// Card order carries no meaning; snapshots are returned in canonical order.
type Deck struct {
	cards CardSet
}

// NewDeck creates a new standard 52-card deck
func NewDeck() *Deck {
	return &Deck{cards: FullSet}
}

// Reset restores the deck to a full 52-card deck
func (d *Deck) Reset() {
	d.cards = FullSet
}

// Remove takes cards out of the deck. Cards that are not present are ignored.
func (d *Deck) Remove(cards ...Card) {
	for _, card := range cards {
		d.cards.Remove(card)
	}
}

// Contains reports whether the card is still in the deck
func (d *Deck) Contains(card Card) bool {
	return d.cards.Contains(card)
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return d.cards.Len()
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return d.cards == 0
}

// Cards returns a snapshot of the remaining cards. The slice is owned by the caller.
func (d *Deck) Cards() []Card {
	return d.cards.Cards()
}

// Set returns the remaining cards as a bitset
func (d *Deck) Set() CardSet {
	return d.cards
}

// Clone returns an independent copy of the deck
func (d *Deck) Clone() *Deck {
	return &Deck{cards: d.cards}
}
