package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tianming/city-selector/internal/domain"
)

func TestAnalyzeDayMasterStrengthBands(t *testing.T) {
	tests := []struct {
		name   string
		counts domain.ElementCounts
		month  string
		want   string
	}{
		{"above forty percent", countsOf(1, 1, 1, 5, 2), "子", "极旺"},
		{"above thirty percent", countsOf(2, 1.5, 1, 3.5, 2), "子", "偏旺"},
		{"above twenty percent", countsOf(2, 2, 1.5, 2.5, 2), "子", "中和"},
		{"above twelve percent", countsOf(2.5, 2, 2, 1.5, 2), "子", "偏弱"},
		{"at or below twelve percent", countsOf(3, 2, 2, 1, 2), "子", "极弱"},
		{"in-season bonus lifts a band", countsOf(2.5, 2, 1.5, 2, 2), "午", "中和"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeDayMasterStrength(domain.Fire, tt.counts, tt.month)
			assert.Equal(t, tt.want, got.Strength)
			assert.NotEmpty(t, got.Desc)
			assert.NotEmpty(t, got.Advice)
		})
	}
}

func TestAnalyzeDayMasterStrengthRatio(t *testing.T) {
	got := AnalyzeDayMasterStrength(domain.Fire, countsOf(1, 1, 1, 5, 2), "子")
	assert.Equal(t, "0.5", got.Ratio.String())
}
