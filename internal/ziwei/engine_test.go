package ziwei

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tianming/city-selector/internal/domain"
)

func TestLifeAndBodyPalaceBranches(t *testing.T) {
	// First lunar month, Zi hour: both land on the Tiger palace.
	assert.Equal(t, 2, lifePalaceBranch(1, 0))
	assert.Equal(t, 2, bodyPalaceBranch(1, 0))

	// Twelfth month, Horse hour: backward and forward walks meet at 未.
	assert.Equal(t, 7, lifePalaceBranch(12, 6))
	assert.Equal(t, 7, bodyPalaceBranch(12, 6))

	// The hour steps move the two palaces apart symmetrically.
	assert.Equal(t, 11, lifePalaceBranch(1, 3))
	assert.Equal(t, 5, bodyPalaceBranch(1, 3))
}

func TestZiweiSeat(t *testing.T) {
	tests := []struct {
		name   string
		bureau int
		day    int
		want   int
	}{
		{"even division keeps the quotient", 2, 2, 2},
		{"odd remainder advances", 4, 5, 4},
		{"even remainder retreats then adds the bureau", 4, 6, 5},
		{"day one", 2, 1, 3},
		{"bureau five day five lands on the quotient", 5, 5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ziweiSeat(tt.bureau, tt.day))
		})
	}
}

func TestTianfuMirrorIsInvolution(t *testing.T) {
	for i := 0; i < 12; i++ {
		assert.Equal(t, i, tianfuMirror[tianfuMirror[i]], "mirror applied twice returns the seat")
	}
}

func TestStarBrightness(t *testing.T) {
	assert.Equal(t, "得", starBrightness("破军", 7))
	assert.Equal(t, "陷", starBrightness("太阳", 0))
	assert.Equal(t, "庙", starBrightness("紫微", 1))
	assert.Equal(t, "平", starBrightness("文昌", 3), "stars outside the table read 平")
	assert.Equal(t, "平", starBrightness("紫微", -1))
}

func TestComputeStarChart(t *testing.T) {
	chart := Compute(1989, 12, 15, "午")

	assert.Equal(t, "未", chart.LifePalaceBranch)
	assert.Equal(t, "未", chart.BodyPalaceBranch)
	assert.Equal(t, "辛", chart.LifePalaceStem)
	assert.Equal(t, 5, chart.FiveElementBureau.Number, "辛未 nayin is 路旁土")
	assert.Equal(t, domain.Earth, chart.FiveElementBureau.Element)
	assert.Equal(t, "辰", chart.ZiweiPosition)

	require.Len(t, chart.PalaceAssignments, 12)
	byPalace := map[string]domain.PalaceAssignment{}
	for _, pa := range chart.PalaceAssignments {
		byPalace[pa.Palace] = pa
	}

	assert.Equal(t, "破军", byPalace["命宫"].Star)
	assert.Equal(t, "得", byPalace["命宫"].Brightness)
	assert.Equal(t, "紫微", byPalace["子女宫"].Star)
	assert.Equal(t, "太阳", byPalace["迁移宫"].Star)
	assert.Equal(t, "天同", byPalace["事业宫"].Star)
	assert.Equal(t, "", byPalace["田宅宫"].Star, "vacant seat stays empty")

	assert.Equal(t, "破军", chart.MainStar.Name)
	assert.Equal(t, domain.MainStar, chart.MainStar.Category)

	require.NotNil(t, chart.MigrationPalace)
	assert.Equal(t, "太阳", chart.MigrationPalace.Star)
	require.NotEmpty(t, chart.MigrationStars)
	assert.Equal(t, "太阳", chart.MigrationStars[0].Name)

	require.NotNil(t, chart.CareerPalace)
	star := chart.CareerPalaceStar()
	require.NotNil(t, star)
	assert.Equal(t, "天同", star.Name)
}

func TestComputeSiHua(t *testing.T) {
	chart := Compute(1989, 12, 15, "午")

	// 己 year: 武曲化禄 贪狼化权 天梁化科 文曲化忌.
	require.Len(t, chart.SiHua, 4)
	assert.Equal(t, "武曲", chart.SiHua[0].Star)
	assert.Equal(t, domain.HuaLu, chart.SiHua[0].Transform)
	assert.Equal(t, "交友宫", chart.SiHua[0].Palace)
	assert.Equal(t, "贪狼", chart.SiHua[1].Star)
	assert.Equal(t, "疾厄宫", chart.SiHua[1].Palace)
	assert.Equal(t, "天梁", chart.SiHua[2].Star)
	assert.Equal(t, "夫妻宫", chart.SiHua[2].Palace)
	assert.Equal(t, "文曲", chart.SiHua[3].Star)
	assert.Equal(t, domain.HuaJi, chart.SiHua[3].Transform)
	assert.Equal(t, "财帛宫", chart.SiHua[3].Palace)

	for _, s := range chart.SiHua {
		assert.NotEmpty(t, s.Meaning)
	}

	assert.Contains(t, chart.ClashNote, "财帛宫")
	assert.Contains(t, chart.ClashNote, "冲福德宫")
	assert.Contains(t, chart.ClashNote, "理财需谨慎")
}

func TestComputeFlyingSiHua(t *testing.T) {
	chart := Compute(1989, 12, 15, "午")

	// 财帛宫's 丁 stem sends 化忌 to 巨门, which lost its seat to 天机 and
	// is absent from the chart, so only five of six palaces fly.
	require.Len(t, chart.FlyingSiHua, 5)
	first := chart.FlyingSiHua[0]
	assert.Equal(t, "命宫", first.FromPalace)
	assert.Equal(t, "文昌", first.Star)
	assert.Equal(t, "事业宫", first.ToPalace)
	assert.Equal(t, domain.HuaJi, first.Transform)
}

func TestComputeHetuNote(t *testing.T) {
	chart := Compute(1989, 12, 15, "午")
	assert.Equal(t, "命宫河图数5，后天土数。", chart.HetuNote)

	// A Rat life palace carries the primal water-fire number.
	chart = Compute(1984, 11, 1, "子")
	assert.Contains(t, chart.HetuNote, "先天水火之数")
}

func TestComputeUnknownHourDegrades(t *testing.T) {
	known := Compute(1989, 12, 15, "子")
	unknown := Compute(1989, 12, 15, "??")
	assert.Equal(t, known.LifePalaceBranch, unknown.LifePalaceBranch)
	assert.Equal(t, known.ZiweiPosition, unknown.ZiweiPosition)
}

func TestComputeStarCategories(t *testing.T) {
	chart := Compute(1989, 12, 15, "午")

	categories := map[domain.StarCategory]int{}
	for _, s := range chart.Stars {
		categories[s.Category]++
		assert.NotEmpty(t, s.Palace)
	}
	assert.Equal(t, 6, categories[domain.AssistStar])
	assert.Equal(t, 4, categories[domain.MaleficStar])
	assert.GreaterOrEqual(t, categories[domain.MainStar], 8)
}
