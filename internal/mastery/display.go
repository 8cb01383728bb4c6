package mastery

import "fmt"

// Band is a coarse mastery bucket used by the UI for labels and colors.
// Purely presentational; never gates block completion.
type Band string

const (
	BandStarting   Band = "starting"
	BandDeveloping Band = "developing"
	BandSecure     Band = "secure"
	BandMastered   Band = "mastered"
)

// ResolveBand maps a mastery score to its display band.
func ResolveBand(score float64) Band {
	switch {
	case score < 0.35:
		return BandStarting
	case score < 0.70:
		return BandDeveloping
	case score < 0.90:
		return BandSecure
	default:
		return BandMastered
	}
}

// FormatPercent renders a mastery score as a whole percentage, e.g. "72%".
func FormatPercent(score float64) string {
	return fmt.Sprintf("%d%%", int(score*100+0.5))
}
