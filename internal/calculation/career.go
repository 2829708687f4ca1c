package calculation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tianming/city-selector/internal/domain"
)

type tenGodCareer struct {
	Direction    string
	Industries   []string
	Roles        []string
	Strengths    []string
	ClassicQuote string
}

// 十神与职业方向对照。
var tenGodCareers = map[string]tenGodCareer{
	"正官": {
		Direction:    "管理行政、政府公职",
		Industries:   []string{"政府机关", "国企央企", "法律法务", "审计监管", "行政管理", "教育管理"},
		Roles:        []string{"公务员", "行政管理者", "法官检察官", "企业中高层", "学校管理者"},
		Strengths:    []string{"正直守信", "责任心强", "组织能力佳", "循规蹈矩"},
		ClassicQuote: "《子平真诠》曰：\"正官者，甲见辛之类，阴阳配合，相制有情。\"正官为贵气之星，利于仕途公职。",
	},
	"七杀": {
		Direction:    "开拓创新、军警执法",
		Industries:   []string{"军事国防", "警察执法", "外科医学", "竞技体育", "企业创业", "期货投资"},
		Roles:        []string{"军官", "企业家", "外科医生", "运动员", "投资人", "开拓型管理者"},
		Strengths:    []string{"果敢刚毅", "魄力十足", "开创力强", "敢于挑战"},
		ClassicQuote: "《渊海子平》云：\"杀乃不善之名，以其能伤我也。\"七杀有制化为权，将帅之才，利于开拓创新。",
	},
	"食神": {
		Direction:    "文艺创作、餐饮美食",
		Industries:   []string{"餐饮美食", "艺术创作", "音乐表演", "文学创作", "教育培训", "旅游休闲"},
		Roles:        []string{"厨师", "艺术家", "作家", "教师", "设计师", "品酒师"},
		Strengths:    []string{"才华横溢", "品味高雅", "性情温和", "创造力强"},
		ClassicQuote: "《子平真诠》曰：\"食神者，我生之也。食神有气胜财官。\"食神主口福才华，利于文艺餐饮。",
	},
	"伤官": {
		Direction:    "技术研发、自由职业",
		Industries:   []string{"科技研发", "律师辩护", "自由撰稿", "演艺娱乐", "发明创造", "咨询顾问"},
		Roles:        []string{"工程师", "律师", "自由职业者", "演员", "发明家", "技术专家"},
		Strengths:    []string{"聪明绝顶", "思维独特", "才气纵横", "不拘一格"},
		ClassicQuote: "《滴天髓》云：\"伤官见官，为祸百端。\"然伤官佩印，才华出众，利于技术创新和自由发展。",
	},
	"偏财": {
		Direction:    "商贸投资、社交营销",
		Industries:   []string{"国际贸易", "投资理财", "房地产", "保险金融", "广告营销", "社交电商"},
		Roles:        []string{"企业主", "投资人", "销售总监", "贸易商", "营销策划", "商业顾问"},
		Strengths:    []string{"商业头脑", "社交能力强", "善于理财", "偏财运佳"},
		ClassicQuote: "《穷通宝鉴》曰：\"财为养命之源。\"偏财主横财偏财，利于投资商贸，社交开拓。",
	},
	"正财": {
		Direction:    "财务金融、踏实经营",
		Industries:   []string{"银行金融", "会计审计", "零售经营", "制造业", "农业种植", "物业管理"},
		Roles:        []string{"会计师", "银行职员", "店铺经营者", "财务总监", "稳健型企业家"},
		Strengths:    []string{"勤恳踏实", "务实稳健", "理财有方", "收入稳定"},
		ClassicQuote: "《三命通会》曰：\"正财者，甲见己之类也。\"正财主正当之财，利于稳健经营，积少成多。",
	},
	"正印": {
		Direction:    "学术教育、医疗慈善",
		Industries:   []string{"高等教育", "学术研究", "出版传媒", "医疗卫生", "慈善公益", "宗教文化"},
		Roles:        []string{"教授学者", "研究员", "编辑出版", "医生", "公益人士", "文化工作者"},
		Strengths:    []string{"好学博雅", "仁慈宽厚", "博学多闻", "受人敬重"},
		ClassicQuote: "《三命通会》曰：\"印绶者，生我之物也。正印扶身，最为吉祥。\"印星主学问，利于学术教育。",
	},
	"偏印": {
		Direction:    "玄学研究、冷门专业",
		Industries:   []string{"中医药学", "心理咨询", "玄学命理", "考古历史", "哲学宗教", "特殊技艺"},
		Roles:        []string{"中医师", "心理咨询师", "命理师", "考古学家", "哲学家", "特种技术专家"},
		Strengths:    []string{"奇思妙想", "思想前卫", "独特见解", "钟情学术"},
		ClassicQuote: "《滴天髓》云：\"偏印最喜偏财制。\"偏印主偏门学问，利于冷门研究，独辟蹊径。",
	},
	"比肩": {
		Direction:    "自主创业、竞技合作",
		Industries:   []string{"自主创业", "竞技体育", "直播电商", "合伙经营", "同行竞争", "独立咨询"},
		Roles:        []string{"创业者", "运动员", "独立顾问", "自由职业者", "合伙人"},
		Strengths:    []string{"独立自主", "竞争意识强", "自信果断", "执行力强"},
		ClassicQuote: "《滴天髓》云：\"比肩如兄弟，同气相求。\"比肩主独立，利于自主创业，白手起家。",
	},
	"劫财": {
		Direction:    "风险投资、社交拓展",
		Industries:   []string{"风险投资", "保险推销", "娱乐博彩", "社交平台", "中介服务", "快消零售"},
		Roles:        []string{"风投经理", "保险代理", "社交达人", "中介经纪", "营销精英"},
		Strengths:    []string{"豪爽大方", "交友广泛", "慷慨仗义", "行动力强"},
		ClassicQuote: "《穷通宝鉴》提示：\"劫财旺者，宜见官杀制之。\"劫财主交际，利于社交拓展，但需防破财。",
	},
}

type elementCareer struct {
	Industries []string
	Keyword    string
	Desc       string
}

// 五行与行业对照。
var elementCareers = map[domain.Element]elementCareer{
	domain.Metal: {
		Industries: []string{"金融证券", "银行保险", "五金机械", "汽车制造", "珠宝首饰", "法律司法", "军警国防", "牙科外科"},
		Keyword:    "金主义",
		Desc:       "金属性行业重在决断、执行、规范。金主义，其性刚，适合需要果断决策和规则约束的职业领域。",
	},
	domain.Wood: {
		Industries: []string{"教育培训", "文化出版", "农林花卉", "服装纺织", "家具木材", "医疗保健", "中医药业", "公益慈善"},
		Keyword:    "木主仁",
		Desc:       "木属性行业重在生长、教化、滋养。木主仁，其性直，适合需要爱心、耐心和培育能力的职业领域。",
	},
	domain.Water: {
		Industries: []string{"物流运输", "旅游酒店", "传媒广告", "渔业水产", "酒水饮料", "洗涤清洁", "航运贸易", "咨询服务"},
		Keyword:    "水主智",
		Desc:       "水属性行业重在流通、智慧、变化。水主智，其性聪，适合需要灵活应变和智慧谋略的职业领域。",
	},
	domain.Fire: {
		Industries: []string{"IT科技", "电子电器", "新能源", "餐饮烹饪", "演艺娱乐", "广告传播", "美容美发", "照明光电"},
		Keyword:    "火主礼",
		Desc:       "火属性行业重在热情、传播、光明。火主礼，其性急，适合需要热情活力和创新精神的职业领域。",
	},
	domain.Earth: {
		Industries: []string{"房地产", "建筑工程", "农业畜牧", "矿业采掘", "仓储物流", "陶瓷建材", "殡葬服务", "信托基金"},
		Keyword:    "土主信",
		Desc:       "土属性行业重在稳固、诚信、包容。土主信，其性重，适合需要稳重踏实和诚信经营的职业领域。",
	},
}

// 紫微事业宫主星断语。
var starCareerMap = map[string]string{
	"紫微": "紫微坐事业宫，主大权在握，适合领导管理、政治仕途。《果老星宗》曰：紫微帝座，百官朝拱，利于统御一方。",
	"天机": "天机坐事业宫，主智谋善变，适合策划研发、技术创新。天机灵动，利于幕后军师、技术研究。",
	"太阳": "太阳坐事业宫，主光明磊落，适合公关外交、传媒教育。太阳普照，利于面向大众的社会性职业。",
	"武曲": "武曲坐事业宫，主财星入事业，适合金融财务、军事武职。武曲化财为权，利于理财经商。",
	"天同": "天同坐事业宫，主安逸享乐，适合服务行业、文化艺术。天同福星，宜选压力较小的稳定职业。",
	"廉贞": "廉贞坐事业宫，主聪明好学，适合法律政治、技术管理。廉贞次桃花，宜选需要社交能力的行业。",
	"天府": "天府坐事业宫，主稳重大方，适合财务管理、行政后勤。天府令星，利于大型机构中稳步发展。",
	"太阴": "太阴坐事业宫，主温柔细腻，适合文艺创作、房地产、服务业。太阴富星，利于夜间或幕后工作。",
	"贪狼": "贪狼坐事业宫，主多才多艺，适合娱乐演艺、社交营销。贪狼桃花，利于需要魅力和社交能力的行业。",
	"巨门": "巨门坐事业宫，主口才犀利，适合律师教师、媒体传播。巨门暗星，利于靠口才和分析能力谋生。",
	"天相": "天相坐事业宫，主公正调和，适合秘书助理、人力资源。天相印星，利于辅佐型的管理职位。",
	"天梁": "天梁坐事业宫，主正直善良，适合医疗保健、社会工作。天梁荫星，利于助人济世的公益事业。",
	"七杀": "七杀坐事业宫，主勇猛果断，适合军警武职、开创事业。七杀将星，利于独当一面的开拓型职业。",
	"破军": "破军坐事业宫，主变革创新，适合科技创业、投资冒险。破军耗星，利于破旧立新的开拓事业。",
}

var geJuCareerMap = map[string]string{
	"正官格":  "正官格宜走体制内路线，公务员、国企、事业单位为首选。《子平真诠》曰：\"官星纯粹最为奇\"，稳中求进，循序渐进。",
	"七杀格":  "七杀格宜走开拓路线，创业、投资、军警武职皆可。七杀有制化为权，敢闯敢拼，成就非凡。",
	"食神格":  "食神格宜走才华路线，文艺、餐饮、教育为佳。食神有气胜财官，以才华谋生，福禄双全。",
	"伤官格":  "伤官格宜走技术路线，研发、法律、自由职业为佳。伤官佩印，才高八斗，宜独辟蹊径。",
	"正财格":  "正财格宜走稳健路线，金融、会计、经营管理为佳。正财勤劳致富，脚踏实地，积少成多。",
	"正印格":  "印格宜走学术路线，教育、研究、出版为首选。印绶扶身最为吉祥，以学问立身。",
	"比劫格":  "比劫格宜走独立路线，自主创业、竞技比赛、独立咨询为佳。比肩独立，宜白手起家。",
	"普通格局": "格局平和，不偏不倚，各行业均可发展。关键在于选择喜用神对应的行业属性，顺势而为。",
}

var (
	tenGodSignificant = decimal.NewFromFloat(1.5)
	twoCount          = decimal.NewFromInt(2)
)

// tenGodFrequency weights visible ten gods 1, hidden ones 0.5 and the month
// pillar's visible god an extra 1 (月令司令). The 日主 slot is skipped. Keys
// keep first-seen order so equal counts sort deterministically.
func tenGodFrequency(chart *domain.BaziChart) ([]string, map[string]decimal.Decimal) {
	var order []string
	counts := map[string]decimal.Decimal{}
	add := func(god string, weight decimal.Decimal) {
		if god == "" || god == "日主" {
			return
		}
		if _, seen := counts[god]; !seen {
			order = append(order, god)
		}
		counts[god] = counts[god].Add(weight)
	}
	for _, p := range chart.Pillars() {
		add(p.TenGod, one)
		for _, hs := range p.HiddenStems {
			add(hs.TenGod, hiddenStemWeight)
		}
	}
	add(chart.MonthPillar.TenGod, one)

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]].GreaterThan(counts[order[j]])
	})
	return order, counts
}

// AnalyzeCareer composes the career recommendation from the dominant ten
// gods, the favorable element, the pattern and the special stars. The Zi Wei
// career-palace star is optional; pass nil before the star chart exists and
// call again to fold it in.
func AnalyzeCareer(chart *domain.BaziChart, careerStar *domain.ZiweiStar) domain.CareerAnalysis {
	sorted, counts := tenGodFrequency(chart)

	dominant := "比肩"
	if len(sorted) > 0 {
		dominant = sorted[0]
	}
	secondary := "食神"
	if len(sorted) > 1 {
		secondary = sorted[1]
	}

	primary, ok := tenGodCareers[dominant]
	if !ok {
		primary = tenGodCareers["比肩"]
	}
	second, ok := tenGodCareers[secondary]
	if !ok {
		second = tenGodCareers["食神"]
	}

	favCareer, ok := elementCareers[chart.FavorableElement]
	if !ok {
		favCareer = elementCareers[domain.Earth]
	}
	avoidCareer, ok := elementCareers[chart.UnfavorableElement]
	if !ok {
		avoidCareer = elementCareers[domain.Earth]
	}

	industries := dedupe(
		primary.Industries[:4],
		favCareer.Industries[:3],
		second.Industries[:2],
	)

	dominantCount := counts[dominant]
	countLabel := "1"
	if !dominantCount.IsZero() {
		countLabel = dominantCount.StringFixed(1)
	}
	power := "适中"
	if dominantCount.GreaterThan(tenGodSignificant) {
		power = "显著"
	}
	tenGodAnalysis := fmt.Sprintf("命局十神以%s为主导（月令%s），%s 日主%s(%s)%s，%s%s见，力量%s。",
		dominant, chart.MonthPillar.TenGod, primary.ClassicQuote,
		chart.DayMaster, chart.DayMasterElement, chart.DayMasterAnalysis.Strength,
		dominant, countLabel, power)

	favCount := chart.ElementCounts[chart.FavorableElement]
	supply := "宜通过职业补益"
	if favCount.GreaterThan(twoCount) {
		supply = "充沛可用"
	}
	elementAnalysis := fmt.Sprintf("喜用神为%s，%s。%s 命局%s行力量%s，%s。",
		chart.FavorableElement, favCareer.Keyword, favCareer.Desc,
		chart.FavorableElement, favCount.StringFixed(1), supply)

	ziweiCareer := ""
	if careerStar != nil {
		if text, ok := starCareerMap[careerStar.Name]; ok {
			ziweiCareer = text
		} else {
			ziweiCareer = fmt.Sprintf("%s坐事业宫（%s），属%s行。%s",
				careerStar.Name, careerStar.Brightness, careerStar.Element, careerStar.Meaning)
		}
	}

	geJuAdvice, ok := geJuCareerMap[chart.GeJu.Name]
	if !ok {
		geJuAdvice = geJuCareerMap["普通格局"]
	}

	var shenShaHints []string
	for _, sha := range chart.ShenSha {
		switch sha.Name {
		case "文昌星":
			shenShaHints = append(shenShaHints, "文昌入命，利于文职学术、考试科举")
		case "将星":
			shenShaHints = append(shenShaHints, "将星入命，利于领导管理、军警武职")
		case "驿马星":
			shenShaHints = append(shenShaHints, "驿马入命，利于外勤出差、贸易运输")
		case "桃花星":
			shenShaHints = append(shenShaHints, "桃花入命，利于社交营销、演艺娱乐")
		case "华盖星":
			shenShaHints = append(shenShaHints, "华盖入命，利于宗教哲学、学术研究")
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "综合十神格局、五行喜忌与紫微事业宫分析：您最适合从事%s方向，辅以%s。建议优先选择%s行属性的行业（%s），避开%s行属性的行业。",
		primary.Direction, second.Direction,
		chart.FavorableElement, strings.Join(favCareer.Industries[:3], "、"),
		chart.UnfavorableElement)
	if len(shenShaHints) > 0 {
		b.WriteString(shenShaHints[0] + "。")
	}
	switch chart.GeJu.Name {
	case "正官格":
		b.WriteString("正官格者，体制内发展最为有利。")
	case "七杀格":
		b.WriteString("七杀格者，自主创业更能发挥优势。")
	default:
		b.WriteString("顺应命理所长，方能事半功倍。")
	}

	return domain.CareerAnalysis{
		PrimaryDirection:   primary.Direction,
		SecondaryDirection: second.Direction,
		Industries:         industries,
		Roles:              dedupe(primary.Roles[:3], second.Roles[:2]),
		TenGodAnalysis:     tenGodAnalysis,
		ElementAnalysis:    elementAnalysis,
		ZiweiCareer:        ziweiCareer,
		GeJuAdvice:         geJuAdvice,
		ClassicQuote:       primary.ClassicQuote,
		AvoidIndustries:    append([]string(nil), avoidCareer.Industries[:4]...),
		Strengths:          dedupe(primary.Strengths[:3], second.Strengths[:1]),
		Advice:             b.String(),
	}
}

func dedupe(lists ...[]string) []string {
	seen := map[string]bool{}
	var out []string
	for _, list := range lists {
		for _, s := range list {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}
