package ziwei

import (
	"github.com/tianming/city-selector/internal/domain"
)

// starElements covers every placeable star; unknown names degrade to Earth.
var starElements = map[string]domain.Element{
	"紫微": domain.Earth, "天机": domain.Wood, "太阳": domain.Fire, "武曲": domain.Metal,
	"天同": domain.Water, "廉贞": domain.Fire, "天府": domain.Earth, "太阴": domain.Water,
	"贪狼": domain.Wood, "巨门": domain.Water, "天相": domain.Water, "天梁": domain.Earth,
	"七杀": domain.Metal, "破军": domain.Water,
	"文昌": domain.Metal, "文曲": domain.Water, "左辅": domain.Earth, "右弼": domain.Water,
	"天魁": domain.Fire, "天钺": domain.Fire, "擎羊": domain.Metal, "陀罗": domain.Metal,
	"火星": domain.Fire, "铃星": domain.Fire,
}

var starMeanings = map[string]string{
	"紫微": "帝王之星，尊贵权威，领导力强，具统御气质",
	"天机": "智慧之星，聪明灵活，善于谋划，机变过人",
	"太阳": "光明之星，热情大方，乐于助人，博爱仁慈",
	"武曲": "财星将星，务实稳重，理财能力强，刚毅果断",
	"天同": "福星，温和善良，追求安逸，性情温厚",
	"廉贞": "桃花星，聪明好学，感情丰富，善于交际",
	"天府": "令星，稳重大方，善于储蓄，气度恢宏",
	"太阴": "月亮之星，温柔细腻，艺术天赋，内敛含蓄",
	"贪狼": "欲望之星，多才多艺，社交能力强，灵活善变",
	"巨门": "暗星，口才好，分析能力强，善于研究",
	"天相": "印星，公正无私，善于调和，文雅端庄",
	"天梁": "荫星，正直善良，乐善好施，长者风范",
	"七杀": "将星，勇敢果断，开创力强，气魄雄壮",
	"破军": "耗星，变革创新，不安现状，破旧立新",
}

var assistStarMeanings = map[string]string{
	"文昌": "文学之星，利考试科举",
	"文曲": "才艺之星，利文艺创作",
	"左辅": "助力之星，善于辅佐协助",
	"右弼": "助力之星，柔和圆融",
	"天魁": "阳贵人星，贵人扶持",
	"天钺": "阴贵人星，贵人扶持",
}

var maleficStarMeanings = map[string]string{
	"擎羊": "煞星，性急刚烈，主刑伤",
	"陀罗": "煞星，拖延犹豫，主纠缠",
	"火星": "煞星，急躁冲动，主突发",
	"铃星": "煞星，阴性暗火，主暗伤",
}

// brightnessTable holds per-branch dignity levels (index 0 = 子) for the
// fourteen main stars. 0=陷 up to 6=庙; stars absent here read 平.
var brightnessTable = map[string][12]int{
	"紫微": {5, 6, 3, 2, 4, 5, 6, 3, 2, 4, 5, 6},
	"天机": {4, 2, 6, 5, 3, 1, 4, 2, 6, 5, 3, 1},
	"太阳": {0, 1, 3, 6, 5, 6, 5, 4, 3, 2, 1, 0},
	"武曲": {5, 4, 3, 2, 6, 5, 4, 3, 2, 6, 5, 4},
	"天同": {6, 1, 2, 3, 0, 1, 2, 5, 6, 1, 2, 3},
	"廉贞": {3, 4, 2, 1, 3, 6, 5, 4, 2, 1, 3, 6},
	"天府": {5, 6, 4, 3, 2, 5, 6, 4, 3, 2, 5, 6},
	"太阴": {6, 5, 4, 3, 2, 1, 0, 1, 2, 3, 4, 5},
	"贪狼": {4, 5, 6, 3, 2, 1, 5, 6, 4, 3, 2, 1},
	"巨门": {5, 4, 6, 3, 2, 1, 5, 4, 6, 3, 2, 1},
	"天相": {5, 4, 3, 6, 2, 5, 4, 3, 6, 2, 5, 4},
	"天梁": {6, 3, 4, 5, 2, 6, 3, 4, 5, 2, 6, 3},
	"七杀": {5, 2, 6, 3, 4, 5, 2, 6, 3, 4, 5, 2},
	"破军": {2, 3, 4, 6, 5, 2, 3, 4, 6, 5, 2, 3},
}

var brightnessNames = [7]string{"陷", "不", "平", "利", "得", "旺", "庙"}

func starBrightness(star string, branchIndex int) string {
	table, ok := brightnessTable[star]
	if !ok || branchIndex < 0 || branchIndex > 11 {
		return "平"
	}
	return brightnessNames[table[branchIndex]]
}

// ziweiSeries places the emperor's group counterclockwise from 紫微. Gaps in
// the offsets are the traditional empty seats.
var ziweiSeries = []struct {
	Name   string
	Offset int
}{
	{"紫微", 0},
	{"天机", -1},
	{"太阳", -3},
	{"武曲", -4},
	{"天同", -5},
	{"廉贞", -8},
}

// tianfuSeries walks clockwise from 天府.
var tianfuSeries = [8]string{"天府", "太阴", "贪狼", "巨门", "天相", "天梁", "七杀", "破军"}

// tianfuMirror maps the 紫微 seat to the 天府 seat across the 寅-申 axis.
var tianfuMirror = [12]int{4, 3, 2, 1, 0, 11, 10, 9, 8, 7, 6, 5}

// elementBureau maps the Life Palace nayin element to the five-element
// bureau number.
var elementBureau = map[domain.Element]int{
	domain.Water: 2, domain.Wood: 3, domain.Metal: 4, domain.Earth: 5, domain.Fire: 6,
}

// Year-stem indexed seats for the nobleman and blade star groups.
var (
	tiankuiSeats  = [10]int{1, 0, 11, 9, 1, 0, 1, 2, 3, 3}
	tianyueSeats  = [10]int{7, 8, 9, 11, 7, 8, 7, 6, 5, 5}
	qingyangSeats = [10]int{4, 5, 7, 8, 7, 8, 10, 11, 1, 2}
	tuoluoSeats   = [10]int{2, 3, 5, 6, 5, 6, 8, 9, 11, 0}
)

// Trine-group base seats for the fire and bell stars, indexed by
// yearBranch % 4.
var (
	fireStarBases = [4]int{1, 2, 3, 9}
	bellStarBases = [4]int{3, 10, 10, 3}
)

// siHuaRow lists the four transformed stars for one year stem.
type siHuaRow struct {
	Lu, Quan, Ke, Ji string
}

// siHuaTable is indexed by year-stem ordinal (甲=0).
var siHuaTable = [10]siHuaRow{
	{"廉贞", "破军", "武曲", "太阳"},
	{"天机", "天梁", "紫微", "太阴"},
	{"天同", "天机", "文昌", "廉贞"},
	{"太阴", "天同", "天机", "巨门"},
	{"贪狼", "太阴", "右弼", "天机"},
	{"武曲", "贪狼", "天梁", "文曲"},
	{"太阳", "武曲", "太阴", "天同"},
	{"巨门", "太阳", "文曲", "文昌"},
	{"天梁", "紫微", "左辅", "武曲"},
	{"破军", "巨门", "太阴", "贪狼"},
}

// hetuNumbers maps the Life Palace branch to its He-Tu number.
var hetuNumbers = [12]int{1, 5, 3, 3, 5, 2, 2, 5, 4, 4, 5, 1}
