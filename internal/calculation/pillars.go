package calculation

import (
	"github.com/tianming/city-selector/internal/domain"
	"github.com/tianming/city-selector/pkg/dateutil"
)

// dayPillarEpoch anchors the day cycle: 2000-01-01 is a 甲子 day (stem 0,
// branch 0).
var dayPillarEpoch = dateutil.Date(2000, 1, 1)

// fiveTigersStarts gives the month-stem start index per year-stem class
// (甲己→丙, 乙庚→戊, 丙辛→庚, 丁壬→壬, 戊癸→甲).
var fiveTigersStarts = [5]int{2, 4, 6, 8, 0}

// fiveRatsStarts gives the hour-stem start index per day-stem class
// (甲己→甲, 乙庚→丙, 丙辛→戊, 丁壬→庚, 戊癸→壬).
var fiveRatsStarts = [5]int{0, 2, 4, 6, 8}

func hiddenStemsOf(branch, dayMaster string) []domain.HiddenStem {
	stems := branchHiddenStems[branch]
	out := make([]domain.HiddenStem, 0, len(stems))
	for _, hs := range stems {
		out = append(out, domain.HiddenStem{
			Stem:    hs,
			Element: StemElement(hs),
			TenGod:  TenGod(dayMaster, hs),
		})
	}
	return out
}

func buildPillar(stem, branch, dayMaster, tenGod string) domain.Pillar {
	ny := Nayin(stem, branch)
	return domain.Pillar{
		Stem:          stem,
		Branch:        branch,
		StemElement:   StemElement(stem),
		BranchElement: BranchElement(branch),
		Nayin:         ny.Name,
		NayinElement:  ny.Element,
		TenGod:        tenGod,
		HiddenStems:   hiddenStemsOf(branch, dayMaster),
	}
}

// YearPillar derives the year pillar from the BaZi year (already attributed
// to the prior civil year near the New Year boundary by the caller). 1984 is
// 甲子, the standard 60-cycle epoch, hence the -4 offsets.
func YearPillar(baziYear int, dayMaster string) domain.Pillar {
	stemIdx := ((baziYear-4)%10 + 10) % 10
	branchIdx := ((baziYear-4)%12 + 12) % 12
	stem := domain.HeavenlyStems[stemIdx]
	branch := domain.EarthlyBranches[branchIdx]
	return buildPillar(stem, branch, dayMaster, TenGod(dayMaster, stem))
}

// MonthPillar derives the month pillar from the solar-term month branch. The
// stem start comes from the five-tigers rule; the offset is measured from the
// Tiger month (branch index 2).
func MonthPillar(baziYear int, monthBranchIndex int, dayMaster string) domain.Pillar {
	yearStemIdx := ((baziYear-4)%10 + 10) % 10
	start := fiveTigersStarts[yearStemIdx%5]
	stemIdx := (start + ((monthBranchIndex-2+12)%12)) % 10
	stem := domain.HeavenlyStems[stemIdx]
	branch := domain.EarthlyBranches[monthBranchIndex]
	return buildPillar(stem, branch, dayMaster, TenGod(dayMaster, stem))
}

// DayPillar derives the day pillar from days since the 2000-01-01 甲子
// anchor. Its stem is the Day Master; the ten-god slot reads 日主 and the
// hidden stems are resolved against it.
func DayPillar(year, month, day int) domain.Pillar {
	diff := dateutil.DaysBetween(dayPillarEpoch, dateutil.Date(year, month, day))
	stemIdx := ((diff % 10) + 10) % 10
	branchIdx := ((diff % 12) + 12) % 12
	stem := domain.HeavenlyStems[stemIdx]
	branch := domain.EarthlyBranches[branchIdx]
	return buildPillar(stem, branch, stem, "日主")
}

// HourPillar derives the hour pillar from the day stem (five-rats rule) and
// the (possibly true-solar-time-corrected) hour branch. Unknown hour branches
// degrade to the Zi position.
func HourPillar(dayStem, hourBranch string) domain.Pillar {
	dayStemIdx := domain.StemIndex(dayStem)
	if dayStemIdx == -1 {
		dayStemIdx = 0
	}
	hourBranchIdx := domain.BranchIndex(hourBranch)
	if hourBranchIdx == -1 {
		hourBranchIdx = 0
		hourBranch = domain.EarthlyBranches[0]
	}
	start := fiveRatsStarts[dayStemIdx%5]
	stemIdx := (start + hourBranchIdx) % 10
	stem := domain.HeavenlyStems[stemIdx]
	return buildPillar(stem, hourBranch, dayStem, TenGod(dayStem, stem))
}
