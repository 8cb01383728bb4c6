package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolofai/drillcore/internal/session"
)

func TestParseBlocks(t *testing.T) {
	tests := []struct {
		name   string
		topics string
		want   []session.BlockSpec
	}{
		{
			name:   "three topics",
			topics: "Fractions,Decimals,Percentages",
			want: []session.BlockSpec{
				{BlockID: "b1", Topic: "Fractions"},
				{BlockID: "b2", Topic: "Decimals"},
				{BlockID: "b3", Topic: "Percentages"},
			},
		},
		{
			name:   "whitespace and empties trimmed",
			topics: " Fractions , ,Decimals, ",
			want: []session.BlockSpec{
				{BlockID: "b1", Topic: "Fractions"},
				{BlockID: "b2", Topic: "Decimals"},
			},
		},
		{
			name:   "empty string",
			topics: "",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseBlocks(tt.topics))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactlyten", truncate("exactlyten", 10))
	assert.Equal(t, "toolongfor", truncate("toolongforthis", 10))
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0042", formatCost(0.0042))
	assert.Equal(t, "$1.50", formatCost(1.5))
	assert.Equal(t, "$0.0000", formatCost(0))
}
