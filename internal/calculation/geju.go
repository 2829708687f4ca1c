package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/tianming/city-selector/internal/domain"
)

var (
	geJuShaBand   = decimal.NewFromFloat(0.25)
	geJuBiJieBand = decimal.NewFromFloat(0.35)
)

func containsGod(tenGods []string, god string) bool {
	for _, g := range tenGods {
		if g == god {
			return true
		}
	}
	return false
}

func countGod(tenGods []string, god string) int {
	n := 0
	for _, g := range tenGods {
		if g == god {
			n++
		}
	}
	return n
}

// DetermineGeJu classifies the chart pattern. Rules are ordered and the
// first match wins, so evaluation order is part of the contract. The
// ten-god list spans visible stems and hidden stems of all four pillars.
func DetermineGeJu(dayMasterElement domain.Element, counts domain.ElementCounts, tenGods []string) domain.GeJu {
	ratio := counts[dayMasterElement].Div(counts.Total())

	if containsGod(tenGods, "正官") && !containsGod(tenGods, "伤官") {
		return domain.GeJu{
			Name:         "正官格",
			Level:        "上格",
			Desc:         "正官格主人品正端庄，循规蹈矩，适合公职仕途。古人最重此格。",
			ClassicQuote: "《三命通会》曰：\"正官者，甲见辛之类，阴阳配合，相制有情。\"",
		}
	}
	if containsGod(tenGods, "七杀") && ratio.GreaterThan(geJuShaBand) {
		return domain.GeJu{
			Name:         "七杀格",
			Level:        "上格",
			Desc:         "七杀有制化为权，果敢刚毅，具将帅之才，利于创业开拓。",
			ClassicQuote: "《渊海子平》云：\"杀乃不善之名，以其能伤我也。\"制化得宜，反成大器。",
		}
	}
	if countGod(tenGods, "食神") >= 2 {
		return domain.GeJu{
			Name:         "食神格",
			Level:        "上格",
			Desc:         "食神格主人温厚有才华，生活品味高雅，财源广进，福禄双全。",
			ClassicQuote: "《子平真诠》曰：\"食神者，我生之也。食神有气胜财官。\"",
		}
	}
	if containsGod(tenGods, "伤官") {
		return domain.GeJu{
			Name:         "伤官格",
			Level:        "中格",
			Desc:         "伤官格聪明绝顶，才华横溢，思维独特，但须注意人际关系。",
			ClassicQuote: "《滴天髓》云：\"伤官见官，为祸百端。\"然伤官佩印，反主大贵。",
		}
	}
	if containsGod(tenGods, "正财") || containsGod(tenGods, "偏财") {
		return domain.GeJu{
			Name:         "正财格",
			Level:        "中格",
			Desc:         "财格主人勤劳务实，善于理财经商，收入稳定，生活富足。",
			ClassicQuote: "《穷通宝鉴》曰：\"财为养命之源，人不可无财。\"",
		}
	}
	if containsGod(tenGods, "正印") {
		return domain.GeJu{
			Name:         "正印格",
			Level:        "上格",
			Desc:         "印格主人好学博雅，仁慈宽厚，适合学术研究与教育领域。",
			ClassicQuote: "《三命通会》曰：\"印绶者，生我之物也。正印扶身，最为吉祥。\"",
		}
	}
	if ratio.GreaterThan(geJuBiJieBand) {
		return domain.GeJu{
			Name:         "比劫格",
			Level:        "中格",
			Desc:         "比劫格独立自主，竞争意识强，适合独立创业或自由职业。",
			ClassicQuote: "《滴天髓》云：\"比肩如兄弟，同气相求。\"宜独立发展。",
		}
	}
	return domain.GeJu{
		Name:         "普通格局",
		Level:        "中格",
		Desc:         "命格平和中正，五行不偏不倚，一生平稳顺遂。",
		ClassicQuote: "《易经》曰：\"天行健，君子以自强不息。\"命虽平和，勤勉可成大器。",
	}
}
