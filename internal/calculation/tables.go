package calculation

import (
	"github.com/tianming/city-selector/internal/domain"
)

// Static lookup tables for stem/branch attributes. Built once at package
// init, never mutated; safe to share across concurrent computations.

var stemElement = map[string]domain.Element{
	"甲": domain.Wood, "乙": domain.Wood, "丙": domain.Fire, "丁": domain.Fire,
	"戊": domain.Earth, "己": domain.Earth, "庚": domain.Metal, "辛": domain.Metal,
	"壬": domain.Water, "癸": domain.Water,
}

var stemYinYang = map[string]string{
	"甲": "阳", "乙": "阴", "丙": "阳", "丁": "阴", "戊": "阳",
	"己": "阴", "庚": "阳", "辛": "阴", "壬": "阳", "癸": "阴",
}

var branchElement = map[string]domain.Element{
	"子": domain.Water, "丑": domain.Earth, "寅": domain.Wood, "卯": domain.Wood,
	"辰": domain.Earth, "巳": domain.Fire, "午": domain.Fire, "未": domain.Earth,
	"申": domain.Metal, "酉": domain.Metal, "戌": domain.Earth, "亥": domain.Water,
}

// branchHiddenStems lists each branch's concealed stems, principal first.
var branchHiddenStems = map[string][]string{
	"子": {"癸"}, "丑": {"己", "癸", "辛"}, "寅": {"甲", "丙", "戊"},
	"卯": {"乙"}, "辰": {"戊", "乙", "癸"}, "巳": {"丙", "庚", "戊"},
	"午": {"丁", "己"}, "未": {"己", "丁", "乙"}, "申": {"庚", "壬", "戊"},
	"酉": {"辛"}, "戌": {"戊", "辛", "丁"}, "亥": {"壬", "甲"},
}

// Element generate/control cycles. Both are total functions over the five
// elements.
var elementGenerates = map[domain.Element]domain.Element{
	domain.Metal: domain.Water, domain.Water: domain.Wood, domain.Wood: domain.Fire,
	domain.Fire: domain.Earth, domain.Earth: domain.Metal,
}

var elementControls = map[domain.Element]domain.Element{
	domain.Metal: domain.Wood, domain.Wood: domain.Earth, domain.Earth: domain.Water,
	domain.Water: domain.Fire, domain.Fire: domain.Metal,
}

var elementGeneratedBy = map[domain.Element]domain.Element{
	domain.Metal: domain.Earth, domain.Water: domain.Metal, domain.Wood: domain.Water,
	domain.Fire: domain.Wood, domain.Earth: domain.Fire,
}

// nayin is one of the 30 named sexagenary sound-elements; each name covers
// two adjacent stem+branch pairs.
type nayin struct {
	Name    string
	Element domain.Element
}

var nayinTable = map[string]nayin{
	"甲子": {"海中金", domain.Metal}, "乙丑": {"海中金", domain.Metal},
	"丙寅": {"炉中火", domain.Fire}, "丁卯": {"炉中火", domain.Fire},
	"戊辰": {"大林木", domain.Wood}, "己巳": {"大林木", domain.Wood},
	"庚午": {"路旁土", domain.Earth}, "辛未": {"路旁土", domain.Earth},
	"壬申": {"剑锋金", domain.Metal}, "癸酉": {"剑锋金", domain.Metal},
	"甲戌": {"山头火", domain.Fire}, "乙亥": {"山头火", domain.Fire},
	"丙子": {"涧下水", domain.Water}, "丁丑": {"涧下水", domain.Water},
	"戊寅": {"城头土", domain.Earth}, "己卯": {"城头土", domain.Earth},
	"庚辰": {"白蜡金", domain.Metal}, "辛巳": {"白蜡金", domain.Metal},
	"壬午": {"杨柳木", domain.Wood}, "癸未": {"杨柳木", domain.Wood},
	"甲申": {"泉中水", domain.Water}, "乙酉": {"泉中水", domain.Water},
	"丙戌": {"屋上土", domain.Earth}, "丁亥": {"屋上土", domain.Earth},
	"戊子": {"霹雳火", domain.Fire}, "己丑": {"霹雳火", domain.Fire},
	"庚寅": {"松柏木", domain.Wood}, "辛卯": {"松柏木", domain.Wood},
	"壬辰": {"长流水", domain.Water}, "癸巳": {"长流水", domain.Water},
	"甲午": {"沙中金", domain.Metal}, "乙未": {"沙中金", domain.Metal},
	"丙申": {"山下火", domain.Fire}, "丁酉": {"山下火", domain.Fire},
	"戊戌": {"平地木", domain.Wood}, "己亥": {"平地木", domain.Wood},
	"庚子": {"壁上土", domain.Earth}, "辛丑": {"壁上土", domain.Earth},
	"壬寅": {"金箔金", domain.Metal}, "癸卯": {"金箔金", domain.Metal},
	"甲辰": {"覆灯火", domain.Fire}, "乙巳": {"覆灯火", domain.Fire},
	"丙午": {"天河水", domain.Water}, "丁未": {"天河水", domain.Water},
	"戊申": {"大驿土", domain.Earth}, "己酉": {"大驿土", domain.Earth},
	"庚戌": {"钗钏金", domain.Metal}, "辛亥": {"钗钏金", domain.Metal},
	"壬子": {"桑柘木", domain.Wood}, "癸丑": {"桑柘木", domain.Wood},
	"甲寅": {"大溪水", domain.Water}, "乙卯": {"大溪水", domain.Water},
	"丙辰": {"沙中土", domain.Earth}, "丁巳": {"沙中土", domain.Earth},
	"戊午": {"天上火", domain.Fire}, "己未": {"天上火", domain.Fire},
	"庚申": {"石榴木", domain.Wood}, "辛酉": {"石榴木", domain.Wood},
	"壬戌": {"大海水", domain.Water}, "癸亥": {"大海水", domain.Water},
}

// Nayin resolves a stem+branch pair to its sound-element. Unknown pairs fall
// back to a defined degraded value rather than failing.
func Nayin(stem, branch string) nayin {
	if n, ok := nayinTable[stem+branch]; ok {
		return n
	}
	return nayin{Name: "未知", Element: domain.Earth}
}

// tenGodsTable maps (day master, target stem) to the ten-god relation.
// Lookup is directional: the outer key is the day master.
var tenGodsTable = map[string]map[string]string{
	"甲": {"甲": "比肩", "乙": "劫财", "丙": "食神", "丁": "伤官", "戊": "偏财", "己": "正财", "庚": "七杀", "辛": "正官", "壬": "偏印", "癸": "正印"},
	"乙": {"甲": "劫财", "乙": "比肩", "丙": "伤官", "丁": "食神", "戊": "正财", "己": "偏财", "庚": "正官", "辛": "七杀", "壬": "正印", "癸": "偏印"},
	"丙": {"甲": "偏印", "乙": "正印", "丙": "比肩", "丁": "劫财", "戊": "食神", "己": "伤官", "庚": "偏财", "辛": "正财", "壬": "七杀", "癸": "正官"},
	"丁": {"甲": "正印", "乙": "偏印", "丙": "劫财", "丁": "比肩", "戊": "伤官", "己": "食神", "庚": "正财", "辛": "偏财", "壬": "正官", "癸": "七杀"},
	"戊": {"甲": "七杀", "乙": "正官", "丙": "偏印", "丁": "正印", "戊": "比肩", "己": "劫财", "庚": "食神", "辛": "伤官", "壬": "偏财", "癸": "正财"},
	"己": {"甲": "正官", "乙": "七杀", "丙": "正印", "丁": "偏印", "戊": "劫财", "己": "比肩", "庚": "伤官", "辛": "食神", "壬": "正财", "癸": "偏财"},
	"庚": {"甲": "偏财", "乙": "正财", "丙": "七杀", "丁": "正官", "戊": "偏印", "己": "正印", "庚": "比肩", "辛": "劫财", "壬": "食神", "癸": "伤官"},
	"辛": {"甲": "正财", "乙": "偏财", "丙": "正官", "丁": "七杀", "戊": "正印", "己": "偏印", "庚": "劫财", "辛": "比肩", "壬": "伤官", "癸": "食神"},
	"壬": {"甲": "食神", "乙": "伤官", "丙": "偏财", "丁": "正财", "戊": "七杀", "己": "正官", "庚": "偏印", "辛": "正印", "壬": "比肩", "癸": "劫财"},
	"癸": {"甲": "伤官", "乙": "食神", "丙": "正财", "丁": "偏财", "戊": "正官", "己": "七杀", "庚": "正印", "辛": "偏印", "壬": "劫财", "癸": "比肩"},
}

// TenGod resolves the relation of a target stem to the day master. Unknown
// symbols degrade to 未知 instead of failing.
func TenGod(dayMaster, targetStem string) string {
	if row, ok := tenGodsTable[dayMaster]; ok {
		if god, ok := row[targetStem]; ok {
			return god
		}
	}
	return "未知"
}

type tenGodMeaning struct {
	Keyword string
	Desc    string
}

var tenGodMeanings = map[string]tenGodMeaning{
	"比肩": {"独立自主", "自我意识强，独立果断，善于竞争"},
	"劫财": {"豪爽大方", "交友广泛，慷慨仗义，但需防破财"},
	"食神": {"才华横溢", "温和聪慧，富有艺术天赋，生活品味高"},
	"伤官": {"聪明叛逆", "才气纵横，思维独特，不拘一格"},
	"偏财": {"商业头脑", "善于理财投资，社交能力强，偏财运佳"},
	"正财": {"勤恳踏实", "务实稳健，正当财路，收入稳定"},
	"七杀": {"果敢刚毅", "魄力十足，敢于挑战，具领导力"},
	"正官": {"正直端庄", "循规蹈矩，责任心强，适合公职"},
	"偏印": {"奇思妙想", "思想前卫，钟情学术，具独特见解"},
	"正印": {"仁慈博学", "好学上进，慈悲为怀，受人敬重"},
}

// classicElementPoems keys the chart's classic description by the day-master
// element.
var classicElementPoems = map[domain.Element]string{
	domain.Metal: "《易》曰：乾为天，为金，为玉。金主义，其性刚，其情烈。秋日金风，肃杀凛冽。",
	domain.Wood:  "《易》曰：震为雷，为木。木主仁，其性直，其情和。春回大地，万物生发。",
	domain.Water: "《易》曰：坎为水，为月。水主智，其性聪，其情善。天一生水，润泽万物。",
	domain.Fire:  "《易》曰：离为火，为日。火主礼，其性急，其情恭。丽照八方，光明普照。",
	domain.Earth: "《易》曰：坤为地，为土。土主信，其性重，其情厚。厚德载物，生化万端。",
}

// StemElement resolves a stem's element; unknown stems degrade to Earth.
func StemElement(stem string) domain.Element {
	if e, ok := stemElement[stem]; ok {
		return e
	}
	return domain.Earth
}

// BranchElement resolves a branch's element; unknown branches degrade to
// Earth.
func BranchElement(branch string) domain.Element {
	if e, ok := branchElement[branch]; ok {
		return e
	}
	return domain.Earth
}
