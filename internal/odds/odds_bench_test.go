package odds

import (
	"context"
	"testing"

	"github.com/lox/holdem-odds/internal/game"
)

func benchPosition(b *testing.B, player, board string) *game.Position {
	b.Helper()
	pos, err := game.ParsePosition(player, board)
	if err != nil {
		b.Fatal(err)
	}
	return pos
}

func BenchmarkExactTurn(b *testing.B) {
	pos := benchPosition(b, "AsKs", "Js5s2d9c")
	engine := NewExactEngine()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Calculate(context.Background(), pos); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMonteCarlo10k(b *testing.B) {
	pos := benchPosition(b, "AsKs", "Js5s2d")
	engine := NewMonteCarloEngine()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Calculate(context.Background(), pos, 10000); err != nil {
			b.Fatal(err)
		}
	}
}
