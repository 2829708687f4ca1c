package calculation

import (
	"fmt"

	"github.com/tianming/city-selector/internal/domain"
)

// DaYunForward reports whether the major luck cycles run forward. Yang-year
// males and yin-year females count forward, the rest backward.
func DaYunForward(gender string, yearStemIndex int) bool {
	yang := yearStemIndex%2 == 0
	return (gender == domain.GenderMale && yang) || (gender == domain.GenderFemale && !yang)
}

// ComputeDaYun derives the eight ten-year luck cycles by stepping the month
// pillar forward or backward through the sexagenary cycle. TenGod and Desc
// are left empty; EnrichDaYun fills them once the day master is known.
func ComputeDaYun(gender string, yearStemIndex, monthStemIndex, monthBranchIndex, startAge int) []domain.DaYun {
	forward := DaYunForward(gender, yearStemIndex)

	cycles := make([]domain.DaYun, 0, 8)
	for i := 1; i <= 8; i++ {
		step := i
		if !forward {
			step = -i
		}
		stemIdx := ((monthStemIndex+step)%10 + 10) % 10
		branchIdx := ((monthBranchIndex+step)%12 + 12) % 12
		stem := domain.HeavenlyStems[stemIdx]
		branch := domain.EarthlyBranches[branchIdx]
		ny := Nayin(stem, branch)
		age := startAge + (i-1)*10

		cycles = append(cycles, domain.DaYun{
			AgeRange:      fmt.Sprintf("%d-%d", age, age+9),
			Stem:          stem,
			Branch:        branch,
			StemElement:   StemElement(stem),
			BranchElement: BranchElement(branch),
			Nayin:         ny.Name,
			NayinElement:  ny.Element,
		})
	}
	return cycles
}

// EnrichDaYun back-fills each cycle's ten god and description against the
// day master.
func EnrichDaYun(cycles []domain.DaYun, dayMaster string) {
	for i := range cycles {
		dy := &cycles[i]
		dy.TenGod = TenGod(dayMaster, dy.Stem)
		if meaning, ok := tenGodMeanings[dy.TenGod]; ok {
			dy.Desc = fmt.Sprintf("%s运：%s", dy.TenGod, meaning.Desc)
		} else {
			dy.Desc = fmt.Sprintf("%s%s运", dy.Stem, dy.Branch)
		}
	}
}
