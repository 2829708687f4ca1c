// Package city scores the candidate-city table against a computed chart
// pair. Scoring is a weighted sum of independent dimensions on a base of 50,
// clamped to [15, 99]; every dimension also leaves a rationale string so the
// output can explain itself.
package city

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tianming/city-selector/internal/calculation"
	"github.com/tianming/city-selector/internal/domain"
)

const (
	baseScore = 50
	minScore  = 15
	maxScore  = 99
)

// Recommend scores every city in the database against the chart pair and
// returns them best first. Equal scores keep database order.
func Recommend(bazi *domain.BaziChart, ziwei *domain.ZiweiChart) []domain.CityRecommendation {
	var migrationMain *domain.ZiweiStar
	for i := range ziwei.MigrationStars {
		if ziwei.MigrationStars[i].Category == domain.MainStar {
			migrationMain = &ziwei.MigrationStars[i]
			break
		}
	}
	migrationElement := bazi.FavorableElement
	if migrationMain != nil {
		migrationElement = migrationMain.Element
	}

	// The third cycle roughly covers the querent's late twenties, the
	// window most relocation decisions fall into.
	var currentDaYun *domain.DaYun
	switch {
	case len(bazi.DaYun) > 2:
		currentDaYun = &bazi.DaYun[2]
	case len(bazi.DaYun) > 0:
		currentDaYun = &bazi.DaYun[0]
	}

	hasYiMa := hasShenSha(bazi, "驿马星")
	hasJinYu := hasShenSha(bazi, "金舆星")
	hasTianLuo := hasShenSha(bazi, "天罗地网")

	migrationSiHua := ziwei.SiHuaIn("迁移宫")

	yearNayinElement := calculation.Nayin(bazi.YearPillar.Stem, bazi.YearPillar.Branch).Element

	recs := make([]domain.CityRecommendation, 0, len(Database))
	for _, c := range Database {
		rec := scoreCity(c, bazi, ziwei, scoreContext{
			migrationMain:    migrationMain,
			migrationElement: migrationElement,
			migrationSiHua:   migrationSiHua,
			currentDaYun:     currentDaYun,
			yearNayinElement: yearNayinElement,
			hasYiMa:          hasYiMa,
			hasJinYu:         hasJinYu,
			hasTianLuo:       hasTianLuo,
		})
		recs = append(recs, rec)
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })
	return recs
}

type scoreContext struct {
	migrationMain    *domain.ZiweiStar
	migrationElement domain.Element
	migrationSiHua   *domain.SiHua
	currentDaYun     *domain.DaYun
	yearNayinElement domain.Element
	hasYiMa          bool
	hasJinYu         bool
	hasTianLuo       bool
}

func scoreCity(c City, bazi *domain.BaziChart, ziwei *domain.ZiweiChart, ctx scoreContext) domain.CityRecommendation {
	score := baseScore
	var reasons []string
	var baziMatch, ziweiMatch, hetuAnalysis, nayinMatch, shenShaAdvice, daYunAdvice, classicQuote string

	favorable := bazi.FavorableElement

	// 喜用神匹配
	switch {
	case c.Element == favorable:
		score += 25
		reasons = append(reasons, fmt.Sprintf("城市五行属%s，与喜用神完美契合", c.Element))
		baziMatch = fmt.Sprintf("喜用神为%s，%s方%s气旺盛。", favorable, c.Direction, c.Element)
	case calculation.Generates(c.Element) == favorable:
		score += 15
		reasons = append(reasons, fmt.Sprintf("城市%s气生喜用神%s", c.Element, favorable))
		baziMatch = fmt.Sprintf("城市%s行可生喜用神%s，间接助力。", c.Element, favorable)
	case c.Element == calculation.GeneratedBy(favorable):
		score += 12
		reasons = append(reasons, "城市被喜用神所生，气场相和")
	}

	// 纳音五行匹配
	switch {
	case c.Element == ctx.yearNayinElement:
		score += 10
		nayinMatch = fmt.Sprintf("年柱纳音%s属%s，与%s%s行同气相求。", bazi.YearNayin, ctx.yearNayinElement, c.Name, c.Element)
	case calculation.Generates(ctx.yearNayinElement) == c.Element:
		score += 6
		nayinMatch = fmt.Sprintf("年柱纳音%s属%s，生%s%s行，气场和合。", bazi.YearNayin, ctx.yearNayinElement, c.Name, c.Element)
	default:
		nayinMatch = fmt.Sprintf("年柱纳音%s，与%s五行%s。", bazi.YearNayin, c.Name, calculation.ElementRelation(ctx.yearNayinElement, c.Element))
	}

	// 补足五行缺失
	if c.Element == bazi.WeakElement {
		score += 8
		reasons = append(reasons, fmt.Sprintf("命局%s行偏弱，此城可补%s气", bazi.WeakElement, bazi.WeakElement))
	}

	// 日主与城市关系
	if calculation.Generates(c.Element) == bazi.DayMasterElement {
		score += 6
		reasons = append(reasons, fmt.Sprintf("%s生%s，城市滋养日主", c.Element, bazi.DayMasterElement))
	}
	if calculation.Controls(c.Element) == bazi.DayMasterElement {
		score -= 8
		reasons = append(reasons, fmt.Sprintf("%s克%s，需注意调和", c.Element, bazi.DayMasterElement))
	}

	// 紫微迁移宫匹配
	if ctx.migrationMain != nil {
		switch {
		case c.Element == ctx.migrationElement:
			score += 10
			ziweiMatch = fmt.Sprintf("迁移宫主星%s(%s)属%s，与%s五行共鸣。",
				ctx.migrationMain.Name, ctx.migrationMain.Brightness, ctx.migrationElement, c.Name)
		case calculation.Generates(c.Element) == ctx.migrationElement:
			score += 5
			ziweiMatch = fmt.Sprintf("迁移宫%s属%s，%s%s行可生之。",
				ctx.migrationMain.Name, ctx.migrationElement, c.Name, c.Element)
		default:
			ziweiMatch = fmt.Sprintf("迁移宫%s属%s，与%s%s行%s。",
				ctx.migrationMain.Name, ctx.migrationElement, c.Name, c.Element,
				calculation.ElementRelation(ctx.migrationElement, c.Element))
		}
	}

	// 命宫主星匹配
	if c.Element == ziwei.MainStar.Element {
		score += 6
		ziweiMatch += fmt.Sprintf(" 命宫主星%s属%s，与此城同气。", ziwei.MainStar.Name, ziwei.MainStar.Element)
	}

	// 四化影响
	if ctx.migrationSiHua != nil {
		switch ctx.migrationSiHua.Transform {
		case domain.HuaLu:
			score += 8
			ziweiMatch += " 迁移宫化禄，外出大利！"
		case domain.HuaQuan:
			score += 5
			ziweiMatch += " 迁移宫化权，外出可掌权柄。"
		case domain.HuaJi:
			score -= 5
			ziweiMatch += " 迁移宫化忌，外出需谨慎。"
		}
	}

	// 事业宫匹配
	if careerStar := ziwei.CareerPalaceStar(); careerStar != nil && c.Element == careerStar.Element {
		score += 5
		ziweiMatch += fmt.Sprintf(" 事业宫%s属%s，利于此城发展事业。", careerStar.Name, careerStar.Element)
	}

	// 神煞影响
	if ctx.hasYiMa {
		if c.Name == "上海" || c.Name == "北京" || c.Name == "广州" || c.Name == "深圳" {
			score += 5
			shenShaAdvice = "驿马入命，利于远行。大城市交通便利，驿马得用，发展无碍。"
		} else {
			shenShaAdvice = "驿马入命，不惧远行。此城亦可作为驿马落脚之处。"
		}
	}
	if ctx.hasJinYu {
		score += 3
		shenShaAdvice = appendAdvice(shenShaAdvice, "金舆护行，迁徙安泰。")
	}
	if ctx.hasTianLuo && c.Terrain == "盆地" {
		score -= 5
		shenShaAdvice = appendAdvice(shenShaAdvice, "天罗地网临命，盆地城市气场受限，宜选开阔之地。")
	}
	if shenShaAdvice == "" {
		if len(bazi.ShenSha) > 0 {
			shenShaAdvice = bazi.ShenSha[0].CityAdvice
		} else {
			shenShaAdvice = "命格平和，各方发展皆宜。"
		}
	}

	// 大运分析
	if dy := ctx.currentDaYun; dy != nil {
		if c.Element == dy.StemElement || c.Element == dy.BranchElement {
			score += 4
			daYunAdvice = fmt.Sprintf("当前大运%s%s(%s)，运行%s%s地，与%s%s行气场相应，此运宜行此方。",
				dy.Stem, dy.Branch, dy.Nayin, dy.StemElement, dy.BranchElement, c.Name, c.Element)
		} else {
			daYunAdvice = fmt.Sprintf("当前大运%s%s(%s)，%s", dy.Stem, dy.Branch, dy.Nayin, dy.Desc)
		}
	}

	// 河图洛书分析
	if hetu, ok := hetuElements[c.HetuNumber]; ok {
		if hetu.Element == favorable {
			score += 4
			hetuAnalysis = fmt.Sprintf("%s河图数为%d，%s。与喜用神%s相应。", c.Name, c.HetuNumber, hetu.Desc, favorable)
		} else {
			hetuAnalysis = fmt.Sprintf("%s河图数为%d，%s。", c.Name, c.HetuNumber, hetu.Desc)
		}
	}
	if luoshu, ok := luoshuDescs[c.LuoshuNumber]; ok {
		hetuAnalysis += fmt.Sprintf(" 洛书九宫居%d宫，%s", c.LuoshuNumber, luoshu)
	}

	// 格局适配
	if affinity, ok := geJuCityAffinity[bazi.GeJu.Name]; ok {
		for _, name := range affinity.Cities {
			if name == c.Name {
				score += affinity.Bonus
				classicQuote = affinity.Quote
				break
			}
		}
	}
	if classicQuote == "" {
		classicQuote = directionQuotes[c.Direction]
	}

	// 职业产业匹配
	careerMatch, careerBonus := matchCareer(c, bazi, favorable)
	score += careerBonus

	score = min(max(score, minScore), maxScore)

	if baziMatch == "" {
		baziMatch = fmt.Sprintf("日主%s，%s。城市五行属%s，%s。",
			bazi.DayMasterElement, bazi.DayMasterAnalysis.Strength, c.Element,
			calculation.ElementRelation(c.Element, bazi.DayMasterElement))
	}
	if ziweiMatch == "" {
		ziweiMatch = fmt.Sprintf("命宫%s(%s)，%s。", ziwei.MainStar.Name, ziwei.MainStar.Brightness, ziwei.MainStar.Meaning)
	}

	reason := strings.Join(reasons, "；")
	if reason == "" {
		reason = fmt.Sprintf("%s五行属%s，方位在%s", c.Name, c.Element, c.Direction)
	}

	return domain.CityRecommendation{
		Name:          c.Name,
		Province:      c.Province,
		Direction:     c.Direction,
		Element:       c.Element,
		Score:         score,
		Reason:        reason,
		Features:      append([]string(nil), c.Features...),
		BaziMatch:     baziMatch,
		ZiweiMatch:    ziweiMatch,
		Fengshui:      c.Fengshui,
		HetuAnalysis:  hetuAnalysis,
		NayinMatch:    nayinMatch,
		ShenShaAdvice: shenShaAdvice,
		DaYunAdvice:   daYunAdvice,
		ClassicQuote:  classicQuote,
		CareerMatch:   careerMatch,
	}
}

// matchCareer cross-matches the chart's suitable industries against the
// city's industry list, with an extra bonus for flagship industries.
func matchCareer(c City, bazi *domain.BaziChart, favorable domain.Element) (string, int) {
	career := bazi.Career
	cityIndustries := strings.Join(c.Industry, "、")

	var matched []string
	for _, ind := range career.Industries {
		if industryMatches(ind, c.Industry) {
			matched = append(matched, ind)
		}
	}

	bonus := 0
	var text string
	switch {
	case len(matched) >= 2:
		bonus += 8
		text = fmt.Sprintf("%s产业（%s）与您的命理适合行业高度吻合。匹配行业：%s。宜在此城发展事业。",
			c.Name, cityIndustries, strings.Join(firstN(matched, 3), "、"))
	case len(matched) == 1:
		bonus += 4
		text = fmt.Sprintf("%s产业中%s与您的命理方向契合。城市主要产业：%s。", c.Name, matched[0], cityIndustries)
	case c.Element == favorable:
		text = fmt.Sprintf("%s五行属%s，与您喜用神同气。虽产业直接匹配度一般，但%s行气场有助于事业发展。城市产业：%s。",
			c.Name, c.Element, c.Element, cityIndustries)
	default:
		text = fmt.Sprintf("%s主要产业为%s，建议结合自身%s方向在此城中寻找对应领域。",
			c.Name, cityIndustries, career.PrimaryDirection)
	}

	if flagship, ok := cityCareerBonus[c.Name]; ok {
		var hits int
		for _, ind := range career.Industries {
			for _, fi := range flagship {
				if keywordOverlap(ind, fi) {
					hits++
					break
				}
			}
		}
		if hits >= 2 {
			bonus += 5
			text += fmt.Sprintf(" %s的%s等优势产业尤其适合您。", c.Name, strings.Join(firstN(flagship, 2), "、"))
		}
	}

	return text, bonus
}

// industryMatches fuzzily compares one suitable industry against a city's
// industry list on leading two-character keywords.
func industryMatches(industry string, cityIndustries []string) bool {
	keys := strings.FieldsFunc(industry, func(r rune) bool { return r == '、' || r == '/' })
	for _, ci := range cityIndustries {
		for _, k := range keys {
			if strings.Contains(ci, firstRunes(k, 2)) || strings.Contains(k, firstRunes(ci, 2)) {
				return true
			}
		}
	}
	return false
}

func keywordOverlap(a, b string) bool {
	return strings.Contains(a, firstRunes(b, 2)) || strings.Contains(b, firstRunes(a, 2))
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func firstN(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[:n]
}

func appendAdvice(existing, addition string) string {
	if existing == "" {
		return addition
	}
	return existing + " " + addition
}

func hasShenSha(bazi *domain.BaziChart, name string) bool {
	for _, s := range bazi.ShenSha {
		if s.Name == name {
			return true
		}
	}
	return false
}
