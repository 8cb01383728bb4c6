package mastery

import "testing"

func TestResolveBand(t *testing.T) {
	cases := []struct {
		score float64
		want  Band
	}{
		{0.0, BandStarting},
		{0.34, BandStarting},
		{0.35, BandDeveloping},
		{0.69, BandDeveloping},
		{0.70, BandSecure},
		{0.89, BandSecure},
		{0.90, BandMastered},
		{1.0, BandMastered},
	}
	for _, c := range cases {
		if got := ResolveBand(c.score); got != c.want {
			t.Errorf("ResolveBand(%v) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.724); got != "72%" {
		t.Errorf("FormatPercent(0.724) = %s, want 72%%", got)
	}
	if got := FormatPercent(1.0); got != "100%" {
		t.Errorf("FormatPercent(1.0) = %s, want 100%%", got)
	}
}
