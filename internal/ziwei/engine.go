// Package ziwei places the Zi Wei Dou Shu star chart: twelve palaces on the
// branch ring, the fourteen main stars, the auxiliary and malefic stars, and
// the four transformations. Input dates are expected to be solar-term
// corrected; the package itself is pure table arithmetic.
package ziwei

import (
	"fmt"

	"github.com/tianming/city-selector/internal/calculation"
	"github.com/tianming/city-selector/internal/domain"
)

// fiveTigersStarts mirrors the month-stem rule used to assign palace stems.
var fiveTigersStarts = [5]int{2, 4, 6, 8, 0}

type placedStar struct {
	Name        string
	BranchIndex int
}

// lifePalaceBranch counts forward from the Tiger palace to the birth month,
// then backward by the hour branch.
func lifePalaceBranch(month, hourBranchIndex int) int {
	monthPos := (2 + month - 1) % 12
	return ((monthPos-hourBranchIndex)%12 + 12) % 12
}

// bodyPalaceBranch counts forward by the hour branch instead.
func bodyPalaceBranch(month, hourBranchIndex int) int {
	monthPos := (2 + month - 1) % 12
	return (monthPos + hourBranchIndex) % 12
}

// palaceStem assigns a stem to a palace branch with the five-tigers rule.
func palaceStem(yearStemIndex, branchIndex int) int {
	start := fiveTigersStarts[yearStemIndex%5]
	offset := ((branchIndex-2)%12 + 12) % 12
	return (start + offset) % 10
}

// ziweiSeat places 紫微 from the bureau number and birth day. The quotient
// is ceil(day/bureau); an odd remainder advances, an even one retreats then
// advances a full bureau. Seats count from the Tiger palace.
func ziweiSeat(bureau, day int) int {
	quotient := (day + bureau - 1) / bureau
	remainder := day % bureau

	var position int
	switch {
	case remainder == 0:
		position = quotient
	case remainder%2 == 1:
		position = quotient + remainder
	default:
		position = quotient - remainder + bureau
	}
	return (2 + position - 1) % 12
}

func wenchangSeat(hourBranchIndex int) int {
	return ((5-hourBranchIndex)%12 + 12) % 12
}

func wenquSeat(hourBranchIndex int) int {
	return (9 + hourBranchIndex) % 12
}

func zuofuSeat(month int) int {
	return (4 + month - 1) % 12
}

func youbiSeat(month int) int {
	return ((10-month+1)%12 + 12) % 12
}

func fireStarSeat(yearBranchIndex, hourBranchIndex int) int {
	return (fireStarBases[yearBranchIndex%4] + hourBranchIndex) % 12
}

func bellStarSeat(yearBranchIndex, hourBranchIndex int) int {
	return (bellStarBases[yearBranchIndex%4] + hourBranchIndex) % 12
}

func starElement(name string) domain.Element {
	if e, ok := starElements[name]; ok {
		return e
	}
	return domain.Earth
}

// Compute builds the full star chart. The month is the solar-term lunar
// month and the hour branch should already carry the true-solar-time
// correction. Unknown hour branches degrade to the Zi seat.
func Compute(chartYear, lunarMonth, day int, hourBranch string) *domain.ZiweiChart {
	yearStemIdx := ((chartYear-4)%10 + 10) % 10
	yearBranchIdx := ((chartYear-4)%12 + 12) % 12
	hourIdx := domain.BranchIndex(hourBranch)
	if hourIdx == -1 {
		hourIdx = 0
	}

	lifeIdx := lifePalaceBranch(lunarMonth, hourIdx)
	bodyIdx := bodyPalaceBranch(lunarMonth, hourIdx)
	lifeStemIdx := palaceStem(yearStemIdx, lifeIdx)

	bureauElement := calculation.Nayin(domain.HeavenlyStems[lifeStemIdx], domain.EarthlyBranches[lifeIdx]).Element
	bureau := domain.Bureau{Number: elementBureau[bureauElement], Element: bureauElement}

	ziweiIdx := ziweiSeat(bureau.Number, day)

	var mainPlacements []placedStar
	for _, s := range ziweiSeries {
		mainPlacements = append(mainPlacements, placedStar{
			Name:        s.Name,
			BranchIndex: ((ziweiIdx+s.Offset)%12 + 12) % 12,
		})
	}
	tianfuIdx := tianfuMirror[ziweiIdx]
	for i, name := range tianfuSeries {
		mainPlacements = append(mainPlacements, placedStar{
			Name:        name,
			BranchIndex: (tianfuIdx + i) % 12,
		})
	}

	// Twelve palaces walk backward through the branches from the Life
	// Palace; each gets its own stem for the flying transformations.
	type palaceSlot struct {
		Palace      string
		BranchIndex int
		StemIndex   int
	}
	palaces := make([]palaceSlot, 0, 12)
	for i := 0; i < 12; i++ {
		branchIdx := ((lifeIdx-i)%12 + 12) % 12
		palaces = append(palaces, palaceSlot{
			Palace:      domain.PalaceNames[i],
			BranchIndex: branchIdx,
			StemIndex:   palaceStem(yearStemIdx, branchIdx),
		})
	}

	assignments := make([]domain.PalaceAssignment, 0, 12)
	for _, p := range palaces {
		seated := ""
		for _, ps := range mainPlacements {
			if ps.BranchIndex == p.BranchIndex {
				seated = ps.Name
				break
			}
		}
		brightness := "平"
		if seated != "" {
			brightness = starBrightness(seated, p.BranchIndex)
		}
		assignments = append(assignments, domain.PalaceAssignment{
			Palace:     p.Palace,
			Star:       seated,
			Element:    starElement(seated),
			Brightness: brightness,
			Category:   domain.MainStar,
			Meaning:    starMeanings[seated],
			BranchName: domain.EarthlyBranches[p.BranchIndex],
		})
	}

	palaceOfBranch := func(branchIdx int) string {
		for _, p := range palaces {
			if p.BranchIndex == branchIdx {
				return p.Palace
			}
		}
		return domain.PalaceNames[0]
	}

	var stars []domain.ZiweiStar
	for _, pa := range assignments {
		if pa.Star == "" {
			continue
		}
		stars = append(stars, domain.ZiweiStar{
			Name:       pa.Star,
			Palace:     pa.Palace,
			Element:    pa.Element,
			Meaning:    pa.Meaning,
			Brightness: pa.Brightness,
			Category:   domain.MainStar,
		})
	}

	assistPlacements := []placedStar{
		{"文昌", wenchangSeat(hourIdx)},
		{"文曲", wenquSeat(hourIdx)},
		{"左辅", zuofuSeat(lunarMonth)},
		{"右弼", youbiSeat(lunarMonth)},
		{"天魁", tiankuiSeats[yearStemIdx]},
		{"天钺", tianyueSeats[yearStemIdx]},
	}
	for _, a := range assistPlacements {
		stars = append(stars, domain.ZiweiStar{
			Name:       a.Name,
			Palace:     palaceOfBranch(a.BranchIndex),
			Element:    starElement(a.Name),
			Meaning:    assistStarMeanings[a.Name],
			Brightness: starBrightness(a.Name, a.BranchIndex),
			Category:   domain.AssistStar,
		})
	}

	maleficPlacements := []placedStar{
		{"擎羊", qingyangSeats[yearStemIdx]},
		{"陀罗", tuoluoSeats[yearStemIdx]},
		{"火星", fireStarSeat(yearBranchIdx, hourIdx)},
		{"铃星", bellStarSeat(yearBranchIdx, hourIdx)},
	}
	for _, m := range maleficPlacements {
		stars = append(stars, domain.ZiweiStar{
			Name:       m.Name,
			Palace:     palaceOfBranch(m.BranchIndex),
			Element:    starElement(m.Name),
			Meaning:    maleficStarMeanings[m.Name],
			Brightness: starBrightness(m.Name, m.BranchIndex),
			Category:   domain.MaleficStar,
		})
	}

	mainStar := stars[0]
	for _, s := range stars {
		if s.Palace == domain.PalaceNames[0] && s.Category == domain.MainStar {
			mainStar = s
			break
		}
	}

	findStarPalace := func(name string) string {
		for _, s := range stars {
			if s.Name == name {
				return s.Palace
			}
		}
		return domain.PalaceNames[0]
	}

	row := siHuaTable[yearStemIdx]
	siHua := []domain.SiHua{
		{Star: row.Lu, Transform: domain.HuaLu, Palace: findStarPalace(row.Lu),
			Meaning: fmt.Sprintf("%s化禄：主财禄丰盈，%s得财气加持。", row.Lu, findStarPalace(row.Lu))},
		{Star: row.Quan, Transform: domain.HuaQuan, Palace: findStarPalace(row.Quan),
			Meaning: fmt.Sprintf("%s化权：主权势地位，%s得权柄加持。", row.Quan, findStarPalace(row.Quan))},
		{Star: row.Ke, Transform: domain.HuaKe, Palace: findStarPalace(row.Ke),
			Meaning: fmt.Sprintf("%s化科：主声名文采，%s得科名加持。", row.Ke, findStarPalace(row.Ke))},
		{Star: row.Ji, Transform: domain.HuaJi, Palace: findStarPalace(row.Ji),
			Meaning: fmt.Sprintf("%s化忌：主挫折困扰，%s需注意化解。", row.Ji, findStarPalace(row.Ji))},
	}

	// Palace-stem obstacle transformations for the first six palaces.
	var flying []domain.FlyingSiHua
	for _, p := range palaces[:6] {
		jiStar := siHuaTable[p.StemIndex].Ji
		toPalace := ""
		for _, s := range stars {
			if s.Name == jiStar {
				toPalace = s.Palace
				break
			}
		}
		if toPalace != "" {
			flying = append(flying, domain.FlyingSiHua{
				FromPalace: p.Palace,
				Transform:  domain.HuaJi,
				ToPalace:   toPalace,
				Star:       jiStar,
			})
		}
	}

	chart := &domain.ZiweiChart{
		MainStar:          mainStar,
		Stars:             stars,
		PalaceAssignments: assignments,
		LifePalaceBranch:  domain.EarthlyBranches[lifeIdx],
		BodyPalaceBranch:  domain.EarthlyBranches[bodyIdx],
		LifePalaceStem:    domain.HeavenlyStems[lifeStemIdx],
		FiveElementBureau: bureau,
		ZiweiPosition:     domain.EarthlyBranches[ziweiIdx],
		SiHua:             siHua,
		FlyingSiHua:       flying,
		ClashNote:         clashNote(siHua),
		HetuNote:          hetuNote(lifeIdx),
	}

	for i := range assignments {
		switch assignments[i].Palace {
		case "迁移宫":
			chart.MigrationPalace = &assignments[i]
		case "事业宫":
			chart.CareerPalace = &assignments[i]
		}
	}
	chart.MigrationStars = chart.StarsIn("迁移宫")

	return chart
}

// clashNote tracks the natal obstacle transformation and names the palace it
// clashes, six seats across the ring.
func clashNote(siHua []domain.SiHua) string {
	jiPalace := ""
	for _, s := range siHua {
		if s.Transform == domain.HuaJi {
			jiPalace = s.Palace
			break
		}
	}
	if jiPalace == "" {
		return ""
	}
	idx := -1
	for i, name := range domain.PalaceNames {
		if name == jiPalace {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ""
	}
	opposite := domain.PalaceNames[(idx+6)%12]

	var hint string
	switch jiPalace {
	case "迁移宫":
		hint = "化忌入迁移，外出需格外谨慎。"
	case "命宫":
		hint = "化忌入命，一生多操劳。"
	case "财帛宫":
		hint = "化忌入财帛，理财需谨慎。"
	default:
		hint = fmt.Sprintf("%s受冲，此方面需注意。", jiPalace)
	}
	return fmt.Sprintf("钦天四化：生年化忌入%s，冲%s。%s", jiPalace, opposite, hint)
}

// hetuNote renders the Life Palace He-Tu number commentary.
func hetuNote(lifePalaceBranchIdx int) string {
	n := hetuNumbers[lifePalaceBranchIdx]
	var kind string
	switch {
	case n <= 2:
		kind = "先天水火之数"
	case n <= 4:
		kind = "先天木金之数"
	default:
		kind = "后天土数"
	}
	return fmt.Sprintf("命宫河图数%d，%s。", n, kind)
}
