package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tianming/city-selector/internal/domain"
)

func TestComputeChartFullPipeline(t *testing.T) {
	engine := NewEngine()
	chart, err := engine.ComputeChart(domain.BirthInput{
		Name: "测试", Year: 1990, Month: 1, Day: 15,
		HourBranch: "午", Gender: domain.GenderMale,
	})
	require.NoError(t, err)

	// Mid-January 1990 sits after 小寒, so the pillar year is still 1989 己巳.
	assert.Equal(t, "己", chart.YearPillar.Stem)
	assert.Equal(t, "巳", chart.YearPillar.Branch)
	assert.Equal(t, "丁", chart.MonthPillar.Stem)
	assert.Equal(t, "丑", chart.MonthPillar.Branch)
	assert.Equal(t, "丙", chart.DayPillar.Stem)
	assert.Equal(t, "戌", chart.DayPillar.Branch)
	assert.Equal(t, "甲", chart.HourPillar.Stem)
	assert.Equal(t, "午", chart.HourPillar.Branch)

	assert.Equal(t, "蛇", chart.Zodiac)
	assert.Equal(t, "丙", chart.DayMaster)
	assert.Equal(t, domain.Fire, chart.DayMasterElement)
	assert.Equal(t, "阳", chart.DayMasterYinYang)

	assert.Equal(t, domain.Fire, chart.DominantElement)
	assert.Equal(t, domain.Water, chart.WeakElement)
	assert.Equal(t, domain.Metal, chart.FavorableElement, "a dominant fire day master is drained by metal")
	assert.Equal(t, domain.Wood, chart.UnfavorableElement)

	assert.Equal(t, "极旺", chart.DayMasterAnalysis.Strength)
	assert.Equal(t, "食神格", chart.GeJu.Name, "two hidden eating gods outrank the wealth pattern")

	require.NotEmpty(t, chart.ShenSha)
	assert.Equal(t, "命格平和", chart.ShenSha[0].Name)

	require.Len(t, chart.DaYun, 8)
	assert.Equal(t, "丙", chart.DaYun[0].Stem, "yin-year male steps the month pillar backward")
	assert.Equal(t, "子", chart.DaYun[0].Branch)
	assert.Equal(t, "3-12", chart.DaYun[0].AgeRange)
	assert.NotEmpty(t, chart.DaYun[0].Desc)

	assert.Equal(t, 1989, chart.ChartYear)
	assert.Equal(t, 12, chart.LunarMonth)
	assert.Equal(t, "午", chart.AdjustedHourBranch)
	assert.Empty(t, chart.TrueSolarTimeNote)
	assert.NotEmpty(t, chart.SolarTermInfo)
	assert.NotEmpty(t, chart.ClassicDesc)
	assert.NotEmpty(t, chart.Career.PrimaryDirection)
}

func TestComputeChartTrueSolarCorrection(t *testing.T) {
	engine := NewEngine()
	longitude := 104.06
	chart, err := engine.ComputeChart(domain.BirthInput{
		Year: 1990, Month: 1, Day: 15,
		HourBranch: "午", Gender: domain.GenderMale, Longitude: &longitude,
	})
	require.NoError(t, err)

	assert.Equal(t, "巳", chart.AdjustedHourBranch, "Chengdu noon is still the Snake window")
	assert.Equal(t, "巳", chart.HourPillar.Branch)
	assert.Contains(t, chart.TrueSolarTimeNote, "校正")
}

func TestComputeChartReferenceMeridianScenario(t *testing.T) {
	engine := NewEngine()
	longitude := 120.0
	input := domain.BirthInput{
		Year: 1990, Month: 1, Day: 15,
		HourBranch: "午", Gender: domain.GenderMale, Longitude: &longitude,
	}

	chart, err := engine.ComputeChart(input)
	require.NoError(t, err)

	assert.Equal(t, "午", chart.AdjustedHourBranch, "120°E needs no correction")
	assert.Contains(t, chart.TrueSolarTimeNote, "无需校正")
	assert.NotEmpty(t, chart.DayMaster)
	assert.NotEmpty(t, chart.DayMasterElement)
	assert.NotEmpty(t, chart.ShenSha)

	hidden := chart.HiddenStemCount()
	assert.GreaterOrEqual(t, hidden, 4)
	assert.LessOrEqual(t, hidden, 12)

	// Pure pipeline: repeated runs agree exactly.
	again, err := engine.ComputeChart(input)
	require.NoError(t, err)
	assert.Equal(t, chart, again)
}

func TestComputeChartNewYearBoundary(t *testing.T) {
	engine := NewEngine()

	// The day before 立春 keeps the old year pillar.
	before, err := engine.ComputeChart(domain.BirthInput{
		Year: 1990, Month: 2, Day: 3, HourBranch: "子", Gender: domain.GenderFemale,
	})
	require.NoError(t, err)
	assert.Equal(t, 1989, before.ChartYear)
	assert.Equal(t, "己", before.YearPillar.Stem)

	// 立春 itself starts the new one.
	after, err := engine.ComputeChart(domain.BirthInput{
		Year: 1990, Month: 2, Day: 4, HourBranch: "子", Gender: domain.GenderFemale,
	})
	require.NoError(t, err)
	assert.Equal(t, 1990, after.ChartYear)
	assert.Equal(t, "庚", after.YearPillar.Stem)
	assert.Equal(t, "马", after.Zodiac)
}

func TestComputeChartEarlyJanuary(t *testing.T) {
	engine := NewEngine()
	chart, err := engine.ComputeChart(domain.BirthInput{
		Year: 1990, Month: 1, Day: 3, HourBranch: "子", Gender: domain.GenderMale,
	})
	require.NoError(t, err)
	assert.Equal(t, 1989, chart.ChartYear, "before 小寒 the birth still belongs to the prior year")
	assert.Equal(t, 12, chart.LunarMonth)
	assert.Equal(t, "丑", chart.MonthPillar.Branch)
}

func TestComputeChartRejectsImpossibleDate(t *testing.T) {
	engine := NewEngine()
	_, err := engine.ComputeChart(domain.BirthInput{
		Year: 1990, Month: 2, Day: 30, HourBranch: "午", Gender: domain.GenderMale,
	})
	assert.Error(t, err)
}

func TestEnrichCareerFoldsStarIn(t *testing.T) {
	engine := NewEngine()
	chart, err := engine.ComputeChart(domain.BirthInput{
		Year: 1990, Month: 1, Day: 15, HourBranch: "午", Gender: domain.GenderMale,
	})
	require.NoError(t, err)
	require.Empty(t, chart.Career.ZiweiCareer)

	engine.EnrichCareer(chart, &domain.ZiweiStar{Name: "紫微", Brightness: "庙", Element: domain.Earth})
	assert.Contains(t, chart.Career.ZiweiCareer, "紫微坐事业宫")

	// Nil star leaves the analysis untouched.
	prev := chart.Career
	engine.EnrichCareer(chart, nil)
	assert.Equal(t, prev.ZiweiCareer, chart.Career.ZiweiCareer)
}

func TestSetLoggerNilInstallsNop(t *testing.T) {
	engine := NewEngine()
	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}
