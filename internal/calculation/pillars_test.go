package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayPillarAnchor(t *testing.T) {
	// 2000-01-01 anchors the day cycle at 甲子.
	p := DayPillar(2000, 1, 1)
	assert.Equal(t, "甲", p.Stem)
	assert.Equal(t, "子", p.Branch)
	assert.Equal(t, "海中金", p.Nayin)
	assert.Equal(t, "日主", p.TenGod)
}

func TestDayPillarStepsThroughCycle(t *testing.T) {
	tests := []struct {
		name   string
		year   int
		month  int
		day    int
		stem   string
		branch string
	}{
		{"day after anchor", 2000, 1, 2, "乙", "丑"},
		{"day before anchor", 1999, 12, 31, "癸", "亥"},
		{"full 60-day cycle", 2000, 3, 1, "甲", "子"},
		{"decade before anchor", 1990, 1, 15, "丙", "戌"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DayPillar(tt.year, tt.month, tt.day)
			assert.Equal(t, tt.stem, p.Stem)
			assert.Equal(t, tt.branch, p.Branch)
		})
	}
}

func TestYearPillar(t *testing.T) {
	tests := []struct {
		year   int
		stem   string
		branch string
	}{
		{1984, "甲", "子"},
		{1989, "己", "巳"},
		{1990, "庚", "午"},
		{2000, "庚", "辰"},
		{2024, "甲", "辰"},
	}

	for _, tt := range tests {
		p := YearPillar(tt.year, "甲")
		assert.Equal(t, tt.stem, p.Stem, "year %d", tt.year)
		assert.Equal(t, tt.branch, p.Branch, "year %d", tt.year)
	}
}

func TestMonthPillarFiveTigers(t *testing.T) {
	// 甲己之年丙作首: a 甲 year starts the Tiger month on 丙.
	p := MonthPillar(1984, 2, "甲")
	assert.Equal(t, "丙", p.Stem)
	assert.Equal(t, "寅", p.Branch)

	// 己 year, Ox month (closing the cycle eleven steps after Tiger).
	p = MonthPillar(1989, 1, "甲")
	assert.Equal(t, "丁", p.Stem)
	assert.Equal(t, "丑", p.Branch)
}

func TestHourPillarFiveRats(t *testing.T) {
	// 甲己还加甲: a 甲 day starts the Zi hour on 甲.
	p := HourPillar("甲", "子")
	assert.Equal(t, "甲", p.Stem)
	assert.Equal(t, "子", p.Branch)
	assert.Equal(t, "比肩", p.TenGod)

	// 丙 day, Horse hour.
	p = HourPillar("丙", "午")
	assert.Equal(t, "甲", p.Stem)
	assert.Equal(t, "午", p.Branch)
	assert.Equal(t, "偏印", p.TenGod)
}

func TestHourPillarDegradesUnknownBranch(t *testing.T) {
	p := HourPillar("甲", "??")
	assert.Equal(t, "子", p.Branch, "unknown hour falls back to the Zi position")
	assert.Equal(t, "甲", p.Stem)
}

func TestPillarCarriesHiddenStems(t *testing.T) {
	p := DayPillar(2000, 1, 1) // 甲子: 子 conceals only 癸
	assert.Len(t, p.HiddenStems, 1)
	assert.Equal(t, "癸", p.HiddenStems[0].Stem)
	assert.Equal(t, "正印", p.HiddenStems[0].TenGod, "癸 is the 正印 of a 甲 day master")

	p = HourPillar("甲", "寅") // 寅 conceals 甲丙戊
	assert.Len(t, p.HiddenStems, 3)
}
