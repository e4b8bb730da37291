package odds

import (
	"sort"

	"github.com/lox/holdem-odds/internal/evaluator"
)

// CategoryStats describes how often the opponent finished with one hand category and
// how those hands fared. Wins, losses and ties are counted from the opponent's side:
// a win is a scenario where the opponent's hand of this category beat the player.
type CategoryStats struct {
	Category    evaluator.Category `json:"category"`
	Label       string             `json:"label"`
	Occurrences int                `json:"occurrences"`
	Wins        int                `json:"wins"`
	Losses      int                `json:"losses"`
	Ties        int                `json:"ties"`
	Probability float64            `json:"probability"`
	WinRate     float64            `json:"win_rate"`
	LossRate    float64            `json:"loss_rate"`
	TieRate     float64            `json:"tie_rate"`
	// SampleOpponentHands holds every distinct opponent hand (e.g. "As,Kh") that ended in
	// this category, sorted. Callers truncate for display.
	SampleOpponentHands []string `json:"sample_opponent_hands"`
}

// Outcome is the part of a result shared by both engines
type Outcome struct {
	PlayerWinProbability   float64 `json:"player_win_probability"`
	OpponentWinProbability float64 `json:"opponent_win_probability"`
	TieProbability         float64 `json:"tie_probability"`
	// Equity is the player's expected share of the pot: wins plus half the ties.
	Equity float64 `json:"equity"`

	PlayerWins   int `json:"player_wins"`
	OpponentWins int `json:"opponent_wins"`
	Ties         int `json:"ties"`

	// Distribution only contains categories that occurred at least once.
	Distribution map[evaluator.Category]CategoryStats `json:"distribution"`
}

// SortedDistribution returns the distribution entries strongest category first
func (o Outcome) SortedDistribution() []CategoryStats {
	out := make([]CategoryStats, 0, len(o.Distribution))
	for _, stats := range o.Distribution {
		out = append(out, stats)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Category > out[j].Category
	})
	return out
}

// ExactResult is produced by ExactEngine. TotalScenarios is the exact number of
// (opponent hand, board completion) pairs enumerated.
type ExactResult struct {
	Outcome
	TotalScenarios int `json:"total_scenarios"`
}

// SampledResult is produced by MonteCarloEngine. Probabilities carry sampling error.
type SampledResult struct {
	Outcome
	TotalSamples int   `json:"total_samples"`
	Seed         int64 `json:"seed"`

	// EquityStdError is the standard error of Equity; EquityLow and EquityHigh bound
	// its 95% confidence interval.
	EquityStdError float64 `json:"equity_std_error"`
	EquityLow      float64 `json:"equity_low"`
	EquityHigh     float64 `json:"equity_high"`
}
