// Package difficulty defines the three-tier question difficulty scale
// shared by the mastery calculator, the question pool manager, and the
// session progression controller.
package difficulty

import "fmt"

// Level is a question difficulty tier.
type Level string

const (
	Easy   Level = "easy"
	Medium Level = "medium"
	Hard   Level = "hard"
)

// Ascending returns all levels from easiest to hardest.
func Ascending() []Level {
	return []Level{Easy, Medium, Hard}
}

// Descending returns all levels from hardest to easiest.
func Descending() []Level {
	return []Level{Hard, Medium, Easy}
}

// Rank returns the position of l on the ordered scale (easy=0, hard=2).
func (l Level) Rank() int {
	switch l {
	case Easy:
		return 0
	case Medium:
		return 1
	case Hard:
		return 2
	}
	return -1
}

// Valid reports whether l is one of the three defined levels.
func (l Level) Valid() bool {
	return l.Rank() >= 0
}

// Parse converts a stored string back to a Level.
func Parse(s string) (Level, error) {
	l := Level(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown difficulty level: %q", s)
	}
	return l, nil
}
