package city

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tianming/city-selector/internal/calculation"
	"github.com/tianming/city-selector/internal/domain"
	"github.com/tianming/city-selector/internal/ziwei"
)

func chartPair(t *testing.T) (*domain.BaziChart, *domain.ZiweiChart) {
	t.Helper()
	engine := calculation.NewEngine()
	bazi, err := engine.ComputeChart(domain.BirthInput{
		Name: "测试", Year: 1990, Month: 1, Day: 15,
		HourBranch: "午", Gender: domain.GenderMale,
	})
	require.NoError(t, err)

	zw := ziwei.Compute(bazi.ChartYear, bazi.LunarMonth, 15, bazi.AdjustedHourBranch)
	engine.EnrichCareer(bazi, zw.CareerPalaceStar())
	return bazi, zw
}

func TestRecommendCoversWholeDatabase(t *testing.T) {
	bazi, zw := chartPair(t)
	recs := Recommend(bazi, zw)

	require.Len(t, recs, len(Database))
	seen := map[string]bool{}
	for _, r := range recs {
		assert.False(t, seen[r.Name], "city %s scored twice", r.Name)
		seen[r.Name] = true
	}
}

func TestRecommendScoresAreClampedAndSorted(t *testing.T) {
	bazi, zw := chartPair(t)
	recs := Recommend(bazi, zw)

	for i, r := range recs {
		assert.GreaterOrEqual(t, r.Score, 15, "%s below floor", r.Name)
		assert.LessOrEqual(t, r.Score, 99, "%s above ceiling", r.Name)
		if i > 0 {
			assert.GreaterOrEqual(t, recs[i-1].Score, r.Score, "descending order broken at %s", r.Name)
		}
	}
}

func TestRecommendFavorsFavorableElementCities(t *testing.T) {
	bazi, zw := chartPair(t)
	recs := Recommend(bazi, zw)

	// The chart's favorable element is metal; a metal city must outrank every
	// city whose element the day master is controlled by.
	require.Equal(t, domain.Metal, bazi.FavorableElement)

	var bestMetal, bestWater int
	for _, r := range recs {
		switch r.Element {
		case domain.Metal:
			if r.Score > bestMetal {
				bestMetal = r.Score
			}
		case domain.Water:
			if r.Score > bestWater {
				bestWater = r.Score
			}
		}
	}
	assert.Greater(t, bestMetal, bestWater, "metal cities should lead for a metal-favoring chart")
}

func TestRecommendRationaleFieldsFilled(t *testing.T) {
	bazi, zw := chartPair(t)
	recs := Recommend(bazi, zw)

	for _, r := range recs {
		assert.NotEmpty(t, r.Reason, r.Name)
		assert.NotEmpty(t, r.BaziMatch, r.Name)
		assert.NotEmpty(t, r.ZiweiMatch, r.Name)
		assert.NotEmpty(t, r.Fengshui, r.Name)
		assert.NotEmpty(t, r.HetuAnalysis, r.Name)
		assert.NotEmpty(t, r.NayinMatch, r.Name)
		assert.NotEmpty(t, r.ShenShaAdvice, r.Name)
		assert.NotEmpty(t, r.ClassicQuote, r.Name)
		assert.NotEmpty(t, r.CareerMatch, r.Name)
	}
}

func TestRecommendIsDeterministic(t *testing.T) {
	bazi, zw := chartPair(t)
	first := Recommend(bazi, zw)
	second := Recommend(bazi, zw)
	assert.Equal(t, first, second)
}

func TestDatabaseIntegrity(t *testing.T) {
	require.Len(t, Database, 24)
	for _, c := range Database {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Province)
		assert.NotEmpty(t, c.Direction)
		assert.NotEmpty(t, c.Element)
		assert.NotEmpty(t, c.Industry, c.Name)
		assert.NotEmpty(t, c.Fengshui, c.Name)
		assert.GreaterOrEqual(t, c.HetuNumber, 1, c.Name)
		assert.LessOrEqual(t, c.HetuNumber, 10, c.Name)
		assert.GreaterOrEqual(t, c.LuoshuNumber, 1, c.Name)
		assert.LessOrEqual(t, c.LuoshuNumber, 9, c.Name)
	}
}

func TestIndustryMatches(t *testing.T) {
	assert.True(t, industryMatches("金融证券", []string{"金融服务", "航运物流"}))
	assert.True(t, industryMatches("科技研发/互联网", []string{"互联网科技"}))
	assert.False(t, industryMatches("农林花卉", []string{"金融服务", "重工制造"}))
}

func TestFirstRunes(t *testing.T) {
	assert.Equal(t, "金融", firstRunes("金融证券", 2))
	assert.Equal(t, "金", firstRunes("金", 2))
}
