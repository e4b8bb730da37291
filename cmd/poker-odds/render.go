package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-odds/internal/deck"
	"github.com/lox/holdem-odds/internal/game"
	"github.com/lox/holdem-odds/internal/odds"
)

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func displayReport(w io.Writer, pos *game.Position, report *odds.Report, sampleHands int) {
	fmt.Fprintf(w, "%s  %s\n", headerStyle.Render("hand"), handStyle.Render(deck.FormatCards(pos.PlayerHand())))
	if board := pos.CommunityCards(); len(board) > 0 {
		fmt.Fprintf(w, "%s %s\n", headerStyle.Render("board"), deck.FormatCards(board))
	} else if hole := pos.PlayerHand(); len(hole) == 2 {
		if p, ok := deck.StartingHandPercentile(hole); ok {
			fmt.Fprintf(w, "%s\n", mutedStyle.Render(fmt.Sprintf("%s, stronger than %.0f%% of starting hands",
				deck.StartingHand(hole[0], hole[1]), p*100)))
		}
	}
	fmt.Fprintln(w)

	outcome := report.Outcome()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("win"),
		headerStyle.Render("lose"),
		headerStyle.Render("tie"),
		headerStyle.Render("equity"))
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		winStyle.Render(percent(outcome.PlayerWinProbability)),
		lossStyle.Render(percent(outcome.OpponentWinProbability)),
		tieStyle.Render(percent(outcome.TieProbability)),
		handStyle.Render(equity(report)))
	tw.Flush()

	fmt.Fprintf(w, "\n%s\n", headerStyle.Render("opponent finishes with"))
	displayDistribution(w, outcome, sampleHands)

	fmt.Fprintf(w, "\n%s\n", mutedStyle.Render(footer(report)))
}

func displayDistribution(w io.Writer, outcome odds.Outcome, sampleHands int) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s",
		categoryStyle.Render("hand"),
		headerStyle.Render("freq"),
		headerStyle.Render("opp wins"),
		headerStyle.Render("opp loses"),
		headerStyle.Render("ties"))
	if sampleHands > 0 {
		fmt.Fprintf(tw, "\t%s", headerStyle.Render("e.g."))
	}
	fmt.Fprintln(tw)

	for _, stats := range outcome.SortedDistribution() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s",
			categoryStyle.Render(stats.Label),
			percent(stats.Probability),
			lossStyle.Render(percent(stats.WinRate)),
			winStyle.Render(percent(stats.LossRate)),
			tieStyle.Render(percent(stats.TieRate)))
		if sampleHands > 0 {
			fmt.Fprintf(tw, "\t%s", mutedStyle.Render(exampleHands(stats.SampleOpponentHands, sampleHands)))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

// exampleHands truncates the full opponent hand list for display
func exampleHands(hands []string, limit int) string {
	if len(hands) <= limit {
		return strings.Join(hands, " ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(hands[:limit], " "), len(hands)-limit)
}

func footer(report *odds.Report) string {
	elapsed := report.Elapsed.Truncate(time.Millisecond)
	if report.Exact != nil {
		return fmt.Sprintf("%d scenarios enumerated in %v", report.Exact.TotalScenarios, elapsed)
	}
	if report.Sampled != nil {
		return fmt.Sprintf("%d samples (seed %d) in %v", report.Sampled.TotalSamples, report.Sampled.Seed, elapsed)
	}
	return ""
}

func equity(report *odds.Report) string {
	if report.Sampled != nil {
		return fmt.Sprintf("%s ± %.1f%%", percent(report.Sampled.Equity), 1.96*report.Sampled.EquityStdError*100)
	}
	return percent(report.Outcome().Equity)
}

func percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}
