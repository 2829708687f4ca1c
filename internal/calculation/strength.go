package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/tianming/city-selector/internal/domain"
)

var (
	strengthVeryStrong = decimal.NewFromFloat(0.40)
	strengthStrong     = decimal.NewFromFloat(0.30)
	strengthBalanced   = decimal.NewFromFloat(0.20)
	strengthWeak       = decimal.NewFromFloat(0.12)
	inSeasonBonus      = decimal.NewFromFloat(0.1)
)

// AnalyzeDayMasterStrength bands the day master's share of the element
// distribution into five strength grades. A day master in season (month
// branch shares its element) gets a flat ratio bonus before banding.
func AnalyzeDayMasterStrength(dayMasterElement domain.Element, counts domain.ElementCounts, monthBranch string) domain.DayMasterAnalysis {
	ratio := counts[dayMasterElement].Div(counts.Total())
	if BranchElement(monthBranch) == dayMasterElement {
		ratio = ratio.Add(inSeasonBonus)
	}

	switch {
	case ratio.GreaterThan(strengthVeryStrong):
		return domain.DayMasterAnalysis{
			Strength: "极旺",
			Ratio:    ratio,
			Desc:     "日主极旺，气势磅礴，如长江大河不可阻挡。",
			Advice:   "宜克泄耗，选择能消耗旺气的城市方位。需要财星和官杀来制衡。",
		}
	case ratio.GreaterThan(strengthStrong):
		return domain.DayMasterAnalysis{
			Strength: "偏旺",
			Ratio:    ratio,
			Desc:     "日主偏旺，根基稳固，如参天大树枝繁叶茂。",
			Advice:   "宜适度克泄，选择五行克制日主的方位，利于事业发展。",
		}
	case ratio.GreaterThan(strengthBalanced):
		return domain.DayMasterAnalysis{
			Strength: "中和",
			Ratio:    ratio,
			Desc:     "日主中和，阴阳平衡，如春风化雨润物无声。",
			Advice:   "五行平衡之命，各方位皆可发展，顺其自然为上。",
		}
	case ratio.GreaterThan(strengthWeak):
		return domain.DayMasterAnalysis{
			Strength: "偏弱",
			Ratio:    ratio,
			Desc:     "日主偏弱，需生扶助力，如初生之苗需阳光雨露。",
			Advice:   "宜生扶为主，选择生助日主的五行方位，利于培养根基。",
		}
	default:
		return domain.DayMasterAnalysis{
			Strength: "极弱",
			Ratio:    ratio,
			Desc:     "日主极弱，从势为妙，如随波逐流顺势而为。",
			Advice:   "极弱从旺，宜顺从命局最旺之五行，选择旺气方位发展。",
		}
	}
}
