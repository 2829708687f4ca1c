package output

import (
	"fmt"
	"strings"

	"github.com/tianming/city-selector/internal/domain"
)

// ConsoleFormatter renders the full report as plain text for terminals.
type ConsoleFormatter struct {
	// TopCities limits the city section; zero means all 24.
	TopCities int
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder
	bazi := report.Bazi
	ziwei := report.Ziwei

	sectionRule(&b)
	name := report.Input.Name
	if name == "" {
		name = "命主"
	}
	fmt.Fprintf(&b, "%s（%s）命理选城报告\n", name, Romanize(name))
	fmt.Fprintf(&b, "出生：%d年%d月%d日 %s时  生肖：%s\n",
		report.Input.Year, report.Input.Month, report.Input.Day, report.Input.HourBranch, bazi.Zodiac)
	sectionRule(&b)

	b.WriteString("\n【四柱八字】\n")
	labels := [4]string{"年柱", "月柱", "日柱", "时柱"}
	for i, p := range bazi.Pillars() {
		fmt.Fprintf(&b, "  %s  %s%s  纳音%s(%s)  %s\n",
			labels[i], p.Stem, p.Branch, p.Nayin, p.NayinElement, p.TenGod)
	}
	fmt.Fprintf(&b, "  日主%s(%s·%s)，%s\n",
		bazi.DayMaster, bazi.DayMasterElement, bazi.DayMasterYinYang, bazi.DayMasterAnalysis.Strength)
	if bazi.TrueSolarTimeNote != "" {
		fmt.Fprintf(&b, "  %s\n", bazi.TrueSolarTimeNote)
	}
	fmt.Fprintf(&b, "  %s\n", bazi.SolarTermInfo)

	b.WriteString("\n【五行分布】\n  ")
	for _, e := range domain.FiveElements {
		fmt.Fprintf(&b, "%s %s  ", e, bazi.ElementCounts[e].StringFixed(1))
	}
	fmt.Fprintf(&b, "\n  最旺：%s  最弱：%s  喜用神：%s  忌神：%s\n",
		bazi.DominantElement, bazi.WeakElement, bazi.FavorableElement, bazi.UnfavorableElement)

	fmt.Fprintf(&b, "\n【格局】%s（%s）\n  %s\n  %s\n",
		bazi.GeJu.Name, bazi.GeJu.Level, bazi.GeJu.Desc, bazi.GeJu.ClassicQuote)
	fmt.Fprintf(&b, "  %s\n", bazi.ClassicDesc)

	b.WriteString("\n【神煞】\n")
	for _, s := range bazi.ShenSha {
		fmt.Fprintf(&b, "  %s：%s\n      %s\n", s.Name, s.Desc, s.CityAdvice)
	}

	b.WriteString("\n【大运】\n")
	fmt.Fprintf(&b, "  %s\n", bazi.DaYunStartDesc)
	for _, dy := range bazi.DaYun {
		fmt.Fprintf(&b, "  %s岁  %s%s(%s)  %s\n", dy.AgeRange, dy.Stem, dy.Branch, dy.Nayin, dy.Desc)
	}

	b.WriteString("\n【紫微斗数】\n")
	fmt.Fprintf(&b, "  命宫在%s（宫干%s），身宫在%s，%d局（%s），紫微在%s\n",
		ziwei.LifePalaceBranch, ziwei.LifePalaceStem, ziwei.BodyPalaceBranch,
		ziwei.FiveElementBureau.Number, ziwei.FiveElementBureau.Element, ziwei.ZiweiPosition)
	fmt.Fprintf(&b, "  命宫主星：%s（%s）%s\n", ziwei.MainStar.Name, ziwei.MainStar.Brightness, ziwei.MainStar.Meaning)
	for _, pa := range ziwei.PalaceAssignments {
		star := pa.Star
		if star == "" {
			star = "（空宫）"
		}
		fmt.Fprintf(&b, "  %-4s %s宫位  %s %s\n", pa.Palace, pa.BranchName, star, pa.Brightness)
	}
	for _, sh := range ziwei.SiHua {
		fmt.Fprintf(&b, "  %s\n", sh.Meaning)
	}
	if ziwei.ClashNote != "" {
		fmt.Fprintf(&b, "  %s\n", ziwei.ClashNote)
	}
	fmt.Fprintf(&b, "  %s\n", ziwei.HetuNote)

	b.WriteString("\n【职业分析】\n")
	career := bazi.Career
	fmt.Fprintf(&b, "  主方向：%s  辅方向：%s\n", career.PrimaryDirection, career.SecondaryDirection)
	fmt.Fprintf(&b, "  适合行业：%s\n", strings.Join(career.Industries, "、"))
	fmt.Fprintf(&b, "  适合岗位：%s\n", strings.Join(career.Roles, "、"))
	fmt.Fprintf(&b, "  规避行业：%s\n", strings.Join(career.AvoidIndustries, "、"))
	fmt.Fprintf(&b, "  %s\n  %s\n", career.TenGodAnalysis, career.ElementAnalysis)
	if career.ZiweiCareer != "" {
		fmt.Fprintf(&b, "  %s\n", career.ZiweiCareer)
	}
	fmt.Fprintf(&b, "  %s\n  %s\n", career.GeJuAdvice, career.Advice)

	b.WriteString("\n【城市推荐】\n")
	limit := c.TopCities
	if limit <= 0 || limit > len(report.Cities) {
		limit = len(report.Cities)
	}
	for i, city := range report.Cities[:limit] {
		subRule(&b)
		fmt.Fprintf(&b, "  %d. %s（%s·%s方·%s） %d分\n",
			i+1, city.Name, city.Province, city.Direction, city.Element, city.Score)
		fmt.Fprintf(&b, "     %s\n", city.Reason)
		fmt.Fprintf(&b, "     八字：%s\n", city.BaziMatch)
		fmt.Fprintf(&b, "     紫微：%s\n", city.ZiweiMatch)
		fmt.Fprintf(&b, "     风水：%s\n", city.Fengshui)
		fmt.Fprintf(&b, "     河洛：%s\n", city.HetuAnalysis)
		fmt.Fprintf(&b, "     纳音：%s\n", city.NayinMatch)
		fmt.Fprintf(&b, "     神煞：%s\n", city.ShenShaAdvice)
		if city.DaYunAdvice != "" {
			fmt.Fprintf(&b, "     大运：%s\n", city.DaYunAdvice)
		}
		fmt.Fprintf(&b, "     职业：%s\n", city.CareerMatch)
		fmt.Fprintf(&b, "     %s\n", city.ClassicQuote)
	}
	sectionRule(&b)

	return []byte(b.String()), nil
}
