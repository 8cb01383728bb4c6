// Package pool manages per-session question selection: it picks the next
// question id at random while avoiding repeats, resets the pool when every
// question has been shown, and downgrades the requested difficulty when a
// pool is too small to serve.
//
// The shown-question set lives for the whole session. It survives
// difficulty changes and block transitions; only starting a new session
// clears it. Resetting on a difficulty bump is the known defect class this
// rule exists to prevent (questions repeating right after the bump).
package pool

import "math/rand/v2"

// DefaultMinPoolSize is the smallest pool a requested difficulty must have
// before the downgrade policy moves to an easier level.
const DefaultMinPoolSize = 2

// Selection is the outcome of one question pick.
type Selection struct {
	// QuestionID is the selected id, or "" when the pool itself is empty.
	// An empty id means "no question available", not an error.
	QuestionID string

	// Remaining is the number of unshown questions left after this pick.
	Remaining int

	// Reset is true when every question had been shown and the pool was
	// recycled for this pick.
	Reset bool

	// Shown is the updated shown-question list the caller must carry
	// forward. After a reset it contains exactly the picked id.
	Shown []string
}

// Select picks one question id uniformly at random from all minus shown.
//
// On full exhaustion the pool is reset: every question becomes available
// again and the new shown list holds only the picked id, so the next pick
// has maximal choice instead of oscillating between the one or two least
// recently shown questions.
func Select(all, shown []string) Selection {
	if len(all) == 0 {
		return Selection{Remaining: 0, Shown: shown}
	}

	available := subtract(all, shown)

	if len(available) == 0 {
		// Exhausted: recycle the whole pool.
		pick := all[rand.IntN(len(all))]
		return Selection{
			QuestionID: pick,
			Remaining:  len(all) - 1,
			Reset:      true,
			Shown:      []string{pick},
		}
	}

	pick := available[rand.IntN(len(available))]
	updated := make([]string, 0, len(shown)+1)
	updated = append(updated, shown...)
	updated = append(updated, pick)
	return Selection{
		QuestionID: pick,
		Remaining:  len(available) - 1,
		Shown:      updated,
	}
}

// IsExhausted reports whether every question in all has already been shown.
// An empty pool counts as exhausted.
func IsExhausted(all, shown []string) bool {
	return len(subtract(all, shown)) == 0
}

// Status summarizes one pool for UI display and the downgrade policy.
type Status struct {
	Total     int
	Available int
	Shown     int
}

// PoolStatus computes the status of one question pool against the session's
// shown set.
func PoolStatus(all, shown []string) Status {
	available := len(subtract(all, shown))
	return Status{
		Total:     len(all),
		Available: available,
		Shown:     len(all) - available,
	}
}

// subtract returns the members of all that are not in shown, preserving
// order.
func subtract(all, shown []string) []string {
	if len(shown) == 0 {
		out := make([]string, len(all))
		copy(out, all)
		return out
	}
	seen := make(map[string]bool, len(shown))
	for _, id := range shown {
		seen[id] = true
	}
	var out []string
	for _, id := range all {
		if !seen[id] {
			out = append(out, id)
		}
	}
	return out
}
