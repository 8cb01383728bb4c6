package pool

import "github.com/schoolofai/drillcore/internal/difficulty"

// EffectiveDifficulty applies the downgrade policy: starting at the
// requested level, walk down through hard, medium, easy and return the
// first level whose pool size meets minSize. If no level qualifies, easy is
// returned regardless of its size so a starved content pool never stalls
// the session.
//
// Pass 0 for minSize to use DefaultMinPoolSize.
func EffectiveDifficulty(requested difficulty.Level, sizes map[difficulty.Level]int, minSize int) difficulty.Level {
	if minSize <= 0 {
		minSize = DefaultMinPoolSize
	}

	for _, l := range difficulty.Descending() {
		if l.Rank() > requested.Rank() {
			continue
		}
		if sizes[l] >= minSize {
			return l
		}
	}
	return difficulty.Easy
}
