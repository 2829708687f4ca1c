package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tianming/city-selector/internal/domain"
)

func countsOf(metal, wood, water, fire, earth float64) domain.ElementCounts {
	return domain.ElementCounts{
		domain.Metal: decimal.NewFromFloat(metal),
		domain.Wood:  decimal.NewFromFloat(wood),
		domain.Water: decimal.NewFromFloat(water),
		domain.Fire:  decimal.NewFromFloat(fire),
		domain.Earth: decimal.NewFromFloat(earth),
	}
}

func TestGenerateAndControlCycles(t *testing.T) {
	for _, e := range domain.FiveElements {
		assert.Equal(t, e, GeneratedBy(Generates(e)), "generation cycle must invert")
		assert.NotEqual(t, e, Generates(e))
		assert.NotEqual(t, e, Controls(e))
		assert.NotEqual(t, Generates(e), Controls(e), "generate and control targets differ")
	}
}

func TestCountElementsWeighting(t *testing.T) {
	pillars := [4]domain.Pillar{
		DayPillar(2000, 1, 1),        // 甲子
		YearPillar(1989, "甲"),        // 己巳
		MonthPillar(1989, 1, "甲"),    // 丁丑
		HourPillar("丙", "午"),         // 甲午
	}

	hidden := 0
	for _, p := range pillars {
		hidden += len(p.HiddenStems)
	}

	counts := CountElements(pillars)
	wantTotal := decimal.NewFromInt(8).Add(decimal.NewFromFloat(0.5).Mul(decimal.NewFromInt(int64(hidden))))
	assert.True(t, counts.Total().Equal(wantTotal),
		"total %s != 8 + 0.5×%d hidden", counts.Total(), hidden)

	for _, e := range domain.FiveElements {
		assert.True(t, counts[e].GreaterThanOrEqual(decimal.Zero))
	}
}

func TestFavorableElementBands(t *testing.T) {
	tests := []struct {
		name      string
		dayMaster domain.Element
		counts    domain.ElementCounts
		month     string
		want      domain.Element
	}{
		{
			name:      "overwhelming day master is drained by what it controls",
			dayMaster: domain.Wood,
			counts:    countsOf(1, 5, 2, 1, 1),
			month:     "子",
			want:      domain.Earth,
		},
		{
			name:      "strong day master vents into what it generates",
			dayMaster: domain.Wood,
			counts:    countsOf(2, 3, 2, 2, 1),
			month:     "子",
			want:      domain.Fire,
		},
		{
			name:      "balanced chart reinforces its scarcest element",
			dayMaster: domain.Wood,
			counts:    countsOf(0.5, 2.5, 2, 2.5, 2.5),
			month:     "子",
			want:      domain.Metal,
		},
		{
			name:      "weak day master is fed by its generator",
			dayMaster: domain.Wood,
			counts:    countsOf(3, 1, 2, 2, 2),
			month:     "子",
			want:      domain.Water,
		},
		{
			name:      "in-season bonus lifts the band",
			dayMaster: domain.Wood,
			counts:    countsOf(2.2, 2.8, 1, 2, 2),
			month:     "寅",
			want:      domain.Earth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FavorableElement(tt.dayMaster, tt.counts, tt.month)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestElementRelation(t *testing.T) {
	assert.Contains(t, ElementRelation(domain.Wood, domain.Fire), "相生有情")
	assert.Contains(t, ElementRelation(domain.Wood, domain.Earth), "须谨慎应对")
	assert.Contains(t, ElementRelation(domain.Wood, domain.Wood), "气场相应")
	assert.Contains(t, ElementRelation(domain.Fire, domain.Wood), "得气滋养")
	assert.Contains(t, ElementRelation(domain.Wood, domain.Metal), "相安无事")
	assert.Equal(t, "关系待定", ElementRelation("", domain.Wood))
}
