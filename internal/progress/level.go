package progress

import "fmt"

// Level is the Phono-Graphix stage a student is working at.
// Levels progress PINK -> BLUE -> YELLOW -> PURPLE.
type Level string

const (
	LevelPink   Level = "PINK"
	LevelBlue   Level = "BLUE"
	LevelYellow Level = "YELLOW"
	LevelPurple Level = "PURPLE"
)

// levelRank fixes the sort order of levels.
var levelRank = map[Level]int{
	LevelPink:   0,
	LevelBlue:   1,
	LevelYellow: 2,
	LevelPurple: 3,
}

// levelBase maps a level to its baseline progress value.
var levelBase = map[Level]int{
	LevelPink:   25,
	LevelBlue:   50,
	LevelYellow: 75,
	LevelPurple: 90,
}

// Rank returns the level's position in the progression, starting at 0 for PINK.
// Unknown levels rank below PINK.
func (l Level) Rank() int {
	if r, ok := levelRank[l]; ok {
		return r
	}
	return -1
}

// Base returns the baseline progress value for the level.
func (l Level) Base() int {
	return levelBase[l]
}

// Valid reports whether l is one of the four known levels.
func (l Level) Valid() bool {
	_, ok := levelRank[l]
	return ok
}

// ParseLevel converts a stored level string to a Level.
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown level %q", s)
	}
	return l, nil
}

// AllLevels returns the levels in progression order.
func AllLevels() []Level {
	return []Level{LevelPink, LevelBlue, LevelYellow, LevelPurple}
}
