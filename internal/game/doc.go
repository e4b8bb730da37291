// Package game holds the heads-up position an odds calculation runs against.
//
// The main type is Position, which records the player's hole cards, the community
// board and, optionally, a revealed opponent hand. Every setter rebuilds the live
// deck from scratch so the unseen pool always equals the 52-card universe minus the
// known cards.
//
// # Basic Usage
//
//	pos := game.NewPosition()
//	if err := pos.SetPlayerHand(deck.MustParseCards("AsKs")...); err != nil {
//	    return err
//	}
//	if err := pos.SetCommunityCards(deck.MustParseCards("Js5s2d")...); err != nil {
//	    return err
//	}
//	unseen := pos.Deck().Cards() // 47 cards
//
// Or parse both at once:
//
//	pos, err := game.ParsePosition("AsKs", "Js5s2d9c")
//
// Setters reject cards already held by another field; Validate re-checks the whole
// invariant and is what the odds engines call before enumerating.
package game
