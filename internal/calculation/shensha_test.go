package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tianming/city-selector/internal/domain"
)

func shenShaNames(list []domain.ShenSha) []string {
	names := make([]string, 0, len(list))
	for _, s := range list {
		names = append(names, s.Name)
	}
	return names
}

func TestDetectShenSha(t *testing.T) {
	tests := []struct {
		name        string
		yearBranch  string
		dayBranch   string
		monthBranch string
		wantHas     []string
		wantNot     []string
	}{
		{
			name:       "travel horse from the monkey trine",
			yearBranch: "申", dayBranch: "寅", monthBranch: "子",
			wantHas: []string{"驿马星"},
		},
		{
			name:       "heavenly virtue on cardinal years plus peach blossom",
			yearBranch: "子", dayBranch: "酉", monthBranch: "申",
			wantHas: []string{"天德贵人", "桃花星"},
		},
		{
			name:       "general star on the tiger trine",
			yearBranch: "寅", dayBranch: "午", monthBranch: "申",
			wantHas: []string{"将星"},
		},
		{
			name:       "literary star from a summer month",
			yearBranch: "丑", dayBranch: "子", monthBranch: "巳",
			wantHas: []string{"文昌星"},
			wantNot: []string{"命格平和"},
		},
		{
			name:       "golden carriage on dragon days",
			yearBranch: "丑", dayBranch: "辰", monthBranch: "申",
			wantHas: []string{"金舆星"},
		},
		{
			name:       "canopy when the trine grave sits on the day",
			yearBranch: "巳", dayBranch: "丑", monthBranch: "申",
			wantHas: []string{"华盖星"},
		},
		{
			name:       "perishing spirit",
			yearBranch: "寅", dayBranch: "巳", monthBranch: "申",
			wantHas: []string{"亡神"},
		},
		{
			name:       "heaven net and earth web pair",
			yearBranch: "戌", dayBranch: "亥", monthBranch: "申",
			wantHas: []string{"天罗地网"},
		},
		{
			name:       "quiet chart gets the placeholder",
			yearBranch: "丑", dayBranch: "子", monthBranch: "申",
			wantHas: []string{"命格平和"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectShenSha(tt.yearBranch, tt.dayBranch, tt.monthBranch)
			assert.NotEmpty(t, got, "detector output is never empty")
			names := shenShaNames(got)
			for _, want := range tt.wantHas {
				assert.Contains(t, names, want)
			}
			for _, not := range tt.wantNot {
				assert.NotContains(t, names, not)
			}
			for _, s := range got {
				assert.NotEmpty(t, s.Desc)
				assert.NotEmpty(t, s.CityAdvice)
			}
		})
	}
}
