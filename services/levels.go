package services

// LevelThresholds: minimum XP required for each level, ordered ascending.
// Level 1 is the floor; XP past the last entry stays at the top level.
type LevelThreshold struct {
	Level int
	MinXP int
}

var LevelThresholds = []LevelThreshold{
	{Level: 1, MinXP: 0},
	{Level: 2, MinXP: 50},
	{Level: 3, MinXP: 150},
	{Level: 4, MinXP: 300},
	{Level: 5, MinXP: 500},
}

// LevelRewards: one-time grants handed out when a user levels up into a
// mapped level. Levels outside the table yield nothing.
var LevelRewards = map[int]string{
	2: "Récompense: Badge de Boulanger Novice",
	3: "Récompense: Badge de Boulanger Expert",
	4: "Récompense: Badge de Boulanger Pro",
}

// LevelForXP returns the highest level whose threshold is <= xp.
func LevelForXP(xp int) int {
	level := 1
	for _, t := range LevelThresholds {
		if xp >= t.MinXP {
			level = t.Level
		}
	}
	return level
}

// NextLevelThreshold returns the XP needed for level+1, or false at the max
// defined level.
func NextLevelThreshold(level int) (int, bool) {
	for _, t := range LevelThresholds {
		if t.Level == level+1 {
			return t.MinXP, true
		}
	}
	return 0, false
}

// ProgressPercent is how far xp sits between the current level's threshold
// and the next one, 0..100. Always 100 at or above the max defined level.
func ProgressPercent(xp, level int) int {
	next, ok := NextLevelThreshold(level)
	if !ok {
		return 100
	}
	current := 0
	for _, t := range LevelThresholds {
		if t.Level == level {
			current = t.MinXP
		}
	}
	return (xp - current) * 100 / (next - current)
}

// RewardForLevel looks up the one-time reward label for a level.
func RewardForLevel(level int) (string, bool) {
	name, ok := LevelRewards[level]
	return name, ok
}
