package calculation

import (
	"github.com/tianming/city-selector/internal/domain"
)

// Trine-group lookup tables keyed by year branch. Each detector below is
// independent; results keep detector order.
var yimaTable = map[string]string{
	"寅": "申", "午": "申", "戌": "申",
	"申": "寅", "子": "寅", "辰": "寅",
	"巳": "亥", "酉": "亥", "丑": "亥",
	"亥": "巳", "卯": "巳", "未": "巳",
}

var huagaiTable = map[string]string{
	"寅": "戌", "午": "戌", "戌": "戌",
	"申": "辰", "子": "辰", "辰": "辰",
	"巳": "丑", "酉": "丑", "丑": "丑",
	"亥": "未", "卯": "未", "未": "未",
}

var taohuaTable = map[string]string{
	"寅": "卯", "午": "卯", "戌": "卯",
	"申": "酉", "子": "酉", "辰": "酉",
	"巳": "午", "酉": "午", "丑": "午",
	"亥": "子", "卯": "子", "未": "子",
}

var jiangxingTable = map[string]string{
	"寅": "午", "午": "午", "戌": "午",
	"申": "子", "子": "子", "辰": "子",
	"巳": "酉", "酉": "酉", "丑": "酉",
	"亥": "卯", "卯": "卯", "未": "卯",
}

var wangshenTable = map[string]string{
	"寅": "巳", "午": "巳", "戌": "巳",
	"申": "亥", "子": "亥", "辰": "亥",
	"巳": "申", "酉": "申", "丑": "申",
	"亥": "寅", "卯": "寅", "未": "寅",
}

// DetectShenSha runs the special-star detectors against the year, day and
// month branches. The result is never empty: charts with no hits get the
// 命格平和 placeholder so downstream rendering always has something to show.
func DetectShenSha(yearBranch, dayBranch, monthBranch string) []domain.ShenSha {
	var result []domain.ShenSha

	if target, ok := yimaTable[yearBranch]; ok && (dayBranch == target || monthBranch == target) {
		result = append(result, domain.ShenSha{
			Name:       "驿马星",
			Type:       domain.Auspicious,
			Desc:       "驿马入命，一生动荡奔波，利于远行发展。古语云：\"驿马朝天，升迁遥远\"。",
			CityAdvice: "宜选交通枢纽城市或远离故乡的新兴城市，驿马催动，远行大吉。",
		})
	}

	// 文昌 uses a coarse month-branch check rather than the full day-stem
	// lookup. TODO: switch to the per-stem 文昌 table once chart output is
	// regression-locked.
	if monthBranch == "巳" || monthBranch == "午" {
		result = append(result, domain.ShenSha{
			Name:       "文昌星",
			Type:       domain.Auspicious,
			Desc:       "文昌入命，聪颖好学，利于考试科举，文采斐然。",
			CityAdvice: "宜选文教发达、高校云集之城，如北京、南京、武汉，利于学业仕途。",
		})
	}

	if huagaiTable[yearBranch] == dayBranch {
		result = append(result, domain.ShenSha{
			Name:       "华盖星",
			Type:       domain.Neutral,
			Desc:       "华盖入命，性好孤独清高，具宗教哲学天赋，适合研究学问。",
			CityAdvice: "宜选文化底蕴深厚、宗教氛围浓郁之城，如西安、成都、杭州。",
		})
	}

	if yearBranch == "子" || yearBranch == "午" || yearBranch == "卯" || yearBranch == "酉" {
		result = append(result, domain.ShenSha{
			Name:       "天德贵人",
			Type:       domain.Auspicious,
			Desc:       "天德临命，一生多贵人扶持，逢凶化吉，福德深厚。",
			CityAdvice: "天德护佑，各方皆可发展，尤利政治文化中心城市。",
		})
	}

	if t := taohuaTable[yearBranch]; t != "" && (t == dayBranch || t == monthBranch) {
		result = append(result, domain.ShenSha{
			Name:       "桃花星",
			Type:       domain.Neutral,
			Desc:       "桃花入命，人缘极佳，异性缘旺，社交能力出众。",
			CityAdvice: "宜选时尚繁华之都，如上海、深圳、广州，利于社交与人脉拓展。",
		})
	}

	if jiangxingTable[yearBranch] == dayBranch {
		result = append(result, domain.ShenSha{
			Name:       "将星",
			Type:       domain.Auspicious,
			Desc:       "将星入命，具有号召力和领导才能，可统御一方。",
			CityAdvice: "宜选省会级以上城市，利于仕途和管理岗位发展。",
		})
	}

	if dayBranch == "辰" || dayBranch == "巳" {
		result = append(result, domain.ShenSha{
			Name:       "金舆星",
			Type:       domain.Auspicious,
			Desc:       "金舆入命，出行安泰，贵人随行，利于迁徙远行。",
			CityAdvice: "迁移大吉之星，无论何方皆可安居，尤利新一线城市。",
		})
	}

	if wangshenTable[yearBranch] == dayBranch {
		result = append(result, domain.ShenSha{
			Name:       "亡神",
			Type:       domain.Inauspicious,
			Desc:       "亡神临命，性格多疑善变，需防小人暗算。",
			CityAdvice: "不宜选过于复杂的大城市，可选中等规模、民风淳朴之城。",
		})
	}

	if (yearBranch == "戌" && dayBranch == "亥") || (yearBranch == "亥" && dayBranch == "戌") {
		result = append(result, domain.ShenSha{
			Name:       "天罗地网",
			Type:       domain.Inauspicious,
			Desc:       "天罗地网交织，行事多有阻碍，需谨慎择路。",
			CityAdvice: "宜选开阔平坦之地，避免山城、盆地，利于气场通达。",
		})
	}

	if len(result) == 0 {
		result = append(result, domain.ShenSha{
			Name:       "命格平和",
			Type:       domain.Neutral,
			Desc:       "命盘无特殊神煞入命，一生平顺安稳，福禄自来。",
			CityAdvice: "命格平和，宜依五行喜忌选城，各方均可发展。",
		})
	}

	return result
}
