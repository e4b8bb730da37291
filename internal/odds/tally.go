package odds

import (
	"sort"

	"github.com/lox/holdem-odds/internal/deck"
	"github.com/lox/holdem-odds/internal/evaluator"
	"github.com/lox/holdem-odds/internal/statistics"
)

type categoryTally struct {
	occurrences int
	wins        int
	losses      int
	ties        int
	hands       map[deck.CardSet]struct{}
}

// tally accumulates scenario outcomes. Each worker owns one; they are merged by addition
// once all workers have finished.
type tally struct {
	playerWins   int
	opponentWins int
	ties         int
	categories   [evaluator.NumCategories + 1]categoryTally
}

// record scores one scenario. opponentHand identifies the opponent's hole cards.
func (t *tally) record(player, opponent evaluator.HandRank, opponentHand deck.CardSet) {
	ct := &t.categories[opponent.Category]
	ct.occurrences++
	if ct.hands == nil {
		ct.hands = make(map[deck.CardSet]struct{})
	}
	ct.hands[opponentHand] = struct{}{}

	switch evaluator.Compare(player, opponent) {
	case 1:
		t.playerWins++
		ct.losses++
	case -1:
		t.opponentWins++
		ct.wins++
	default:
		t.ties++
		ct.ties++
	}
}

func (t *tally) merge(other *tally) {
	t.playerWins += other.playerWins
	t.opponentWins += other.opponentWins
	t.ties += other.ties
	for i := range t.categories {
		dst, src := &t.categories[i], &other.categories[i]
		dst.occurrences += src.occurrences
		dst.wins += src.wins
		dst.losses += src.losses
		dst.ties += src.ties
		if len(src.hands) == 0 {
			continue
		}
		if dst.hands == nil {
			dst.hands = make(map[deck.CardSet]struct{}, len(src.hands))
		}
		for h := range src.hands {
			dst.hands[h] = struct{}{}
		}
	}
}

func (t *tally) scenarios() int {
	return t.playerWins + t.opponentWins + t.ties
}

// outcome normalises the counters by total
func (t *tally) outcome(total int) Outcome {
	o := Outcome{
		PlayerWins:   t.playerWins,
		OpponentWins: t.opponentWins,
		Ties:         t.ties,
		Distribution: make(map[evaluator.Category]CategoryStats),
	}
	if total == 0 {
		return o
	}

	n := float64(total)
	o.PlayerWinProbability = float64(t.playerWins) / n
	o.OpponentWinProbability = float64(t.opponentWins) / n
	o.TieProbability = float64(t.ties) / n
	equity := t.equity()
	o.Equity = equity.Mean()

	for _, c := range evaluator.Categories() {
		ct := t.categories[c]
		if ct.occurrences == 0 {
			continue
		}
		occ := float64(ct.occurrences)
		o.Distribution[c] = CategoryStats{
			Category:            c,
			Label:               c.String(),
			Occurrences:         ct.occurrences,
			Wins:                ct.wins,
			Losses:              ct.losses,
			Ties:                ct.ties,
			Probability:         occ / n,
			WinRate:             float64(ct.wins) / occ,
			LossRate:            float64(ct.losses) / occ,
			TieRate:             float64(ct.ties) / occ,
			SampleOpponentHands: handKeys(ct.hands),
		}
	}
	return o
}

// equity returns the player's showdown values as running statistics
func (t *tally) equity() statistics.Statistics {
	return statistics.FromCounts(t.playerWins, t.opponentWins, t.ties)
}

func handKeys(hands map[deck.CardSet]struct{}) []string {
	keys := make([]string, 0, len(hands))
	for h := range hands {
		keys = append(keys, deck.HandKey(h.Cards()))
	}
	sort.Strings(keys)
	return keys
}
