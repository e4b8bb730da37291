package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartingHand(t *testing.T) {
	tests := []struct {
		cards string
		want  string
	}{
		{"AsKs", "AKs"},
		{"KsAs", "AKs"},
		{"Ah Kd", "AKo"},
		{"7c7d", "77"},
		{"9hTh", "T9s"},
		{"2c7d", "72o"},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			cards := MustParseCards(tt.cards)
			assert.Equal(t, tt.want, StartingHand(cards[0], cards[1]))
		})
	}
}

func TestStartingHandPercentile(t *testing.T) {
	aces, ok := StartingHandPercentile(MustParseCards("AhAd"))
	require.True(t, ok)
	assert.Equal(t, 1.0, aces)

	worst, ok := StartingHandPercentile(MustParseCards("7s2h"))
	require.True(t, ok)
	assert.Equal(t, 0.0, worst)

	suited, _ := StartingHandPercentile(MustParseCards("AsKs"))
	offsuit, _ := StartingHandPercentile(MustParseCards("AsKh"))
	assert.Greater(t, suited, offsuit)

	_, ok = StartingHandPercentile(MustParseCards("AsKsQs"))
	assert.False(t, ok)
	_, ok = StartingHandPercentile(nil)
	assert.False(t, ok)
}

func TestStartingHandTableCoversEveryClass(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range FullSet.Cards() {
		for _, b := range FullSet.Cards() {
			if a == b {
				continue
			}
			class := StartingHand(a, b)
			_, ok := startingHandPercentiles[class]
			require.True(t, ok, "missing %s", class)
			seen[class] = true
		}
	}
	assert.Len(t, seen, 169)
}
