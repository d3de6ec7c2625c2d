package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{10, 1},
		{49, 1},
		{50, 2},
		{149, 2},
		{150, 3},
		{299, 3},
		{300, 4},
		{499, 4},
		{500, 5},
		{10000, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForXP(tt.xp), "xp=%d", tt.xp)
	}
}

func TestLevelForXPNonDecreasing(t *testing.T) {
	prev := 1
	for xp := 0; xp <= 600; xp++ {
		level := LevelForXP(xp)
		require.GreaterOrEqual(t, level, prev, "level regressed at xp=%d", xp)
		prev = level
	}
}

func TestNextLevelThreshold(t *testing.T) {
	next, ok := NextLevelThreshold(1)
	require.True(t, ok)
	assert.Equal(t, 50, next)

	next, ok = NextLevelThreshold(4)
	require.True(t, ok)
	assert.Equal(t, 500, next)

	_, ok = NextLevelThreshold(5)
	assert.False(t, ok, "no threshold beyond the max defined level")
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name  string
		xp    int
		level int
		want  int
	}{
		{"at level 1 threshold", 0, 1, 0},
		{"partway through level 1", 45, 1, 90},
		{"just below level 2", 49, 1, 98},
		{"at level 2 threshold", 50, 2, 0},
		{"just below level 3", 149, 2, 99},
		{"at max level", 500, 5, 100},
		{"far beyond max level", 10000, 5, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressPercent(tt.xp, tt.level))
		})
	}
}

func TestRewardForLevel(t *testing.T) {
	name, ok := RewardForLevel(2)
	require.True(t, ok)
	assert.Equal(t, "Récompense: Badge de Boulanger Novice", name)

	name, ok = RewardForLevel(3)
	require.True(t, ok)
	assert.Equal(t, "Récompense: Badge de Boulanger Expert", name)

	name, ok = RewardForLevel(4)
	require.True(t, ok)
	assert.Equal(t, "Récompense: Badge de Boulanger Pro", name)

	for _, level := range []int{1, 5, 6} {
		_, ok := RewardForLevel(level)
		assert.False(t, ok, "level %d should grant nothing", level)
	}
}
