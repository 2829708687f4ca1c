package city

import (
	"github.com/tianming/city-selector/internal/domain"
)

// City is one candidate city with its geomantic attributes.
type City struct {
	Name         string
	Province     string
	Direction    string
	Element      domain.Element
	Features     []string
	Climate      string
	Industry     []string
	Fengshui     string
	HetuNumber   int
	LuoshuNumber int // 洛书九宫位置 1-9
	Terrain      string
	WaterSystem  string
}

// Database lists the 24 candidate cities grouped by compass direction. The
// slice is package data and must not be mutated; scoring copies what it
// needs.
var Database = []City{
	// 北方水城
	{
		Name: "北京", Province: "北京", Direction: "北", Element: domain.Water,
		Features: []string{"政治中心", "文化底蕴", "历史名城", "科技创新"},
		Climate:  "温带季风", Industry: []string{"科技", "金融", "文化", "教育"},
		Fengshui:   "北依燕山，南临华北平原，西有太行屏障，东望渤海。龙脉汇聚，帝王之气经久不衰。",
		HetuNumber: 1, LuoshuNumber: 1, Terrain: "平原山前", WaterSystem: "永定河/潮白河",
	},
	{
		Name: "哈尔滨", Province: "黑龙江", Direction: "北", Element: domain.Water,
		Features: []string{"冰雪之城", "异域风情", "音乐之都", "寒地文化"},
		Climate:  "寒温带", Industry: []string{"装备制造", "食品", "旅游"},
		Fengshui:   "松花江穿城而过，水势浩荡，寒水之气极盛，利水命之人。",
		HetuNumber: 1, LuoshuNumber: 1, Terrain: "平原", WaterSystem: "松花江",
	},
	{
		Name: "大连", Province: "辽宁", Direction: "北", Element: domain.Water,
		Features: []string{"海滨城市", "花园城市", "浪漫之都", "港口经济"},
		Climate:  "温带海洋", Industry: []string{"造船", "石化", "旅游", "软件"},
		Fengshui:   "三面环海，一面依山，得水之利，藏风聚气。海水环抱，财气旺盛。",
		HetuNumber: 6, LuoshuNumber: 1, Terrain: "半岛丘陵", WaterSystem: "黄海/渤海",
	},
	{
		Name: "天津", Province: "天津", Direction: "北", Element: domain.Water,
		Features: []string{"港口城市", "曲艺之乡", "近代文化", "滨海新区"},
		Climate:  "温带季风", Industry: []string{"航空航天", "石化", "装备", "港口"},
		Fengshui:   "九河下梢，海河汇聚五水入海，水势充沛，利商贸财运。",
		HetuNumber: 6, LuoshuNumber: 6, Terrain: "沿海平原", WaterSystem: "海河水系",
	},
	// 南方火城
	{
		Name: "广州", Province: "广东", Direction: "南", Element: domain.Fire,
		Features: []string{"花城", "美食之都", "商贸中心", "千年商都"},
		Climate:  "亚热带", Industry: []string{"外贸", "汽车", "电子", "日化"},
		Fengshui:   "白云山为靠，珠江环绕，南向开阔。五羊衔穗，瑞气千年，商贸之气旺盛。",
		HetuNumber: 2, LuoshuNumber: 9, Terrain: "丘陵平原", WaterSystem: "珠江",
	},
	{
		Name: "深圳", Province: "广东", Direction: "南", Element: domain.Fire,
		Features: []string{"创新之城", "科技高地", "年轻活力", "经济特区"},
		Climate:  "亚热带", Industry: []string{"科技", "金融", "创新", "生物"},
		Fengshui:   "面向大海，背靠梧桐山，气场开阔进取。新城新气象，破旧立新之地。",
		HetuNumber: 7, LuoshuNumber: 9, Terrain: "沿海丘陵", WaterSystem: "深圳河/大鹏湾",
	},
	{
		Name: "海口", Province: "海南", Direction: "南", Element: domain.Fire,
		Features: []string{"椰城", "自贸港", "度假胜地", "热带风情"},
		Climate:  "热带", Industry: []string{"旅游", "医疗", "自贸", "农业"},
		Fengshui:   "孤岛离火之地，四面环海，火水既济之格。热气蒸腾，万物繁茂。",
		HetuNumber: 2, LuoshuNumber: 9, Terrain: "海岛平原", WaterSystem: "南渡江/琼州海峡",
	},
	{
		Name: "南宁", Province: "广西", Direction: "南", Element: domain.Fire,
		Features: []string{"绿城", "东盟门户", "壮乡文化", "宜居之城"},
		Climate:  "亚热带", Industry: []string{"东盟贸易", "食品", "旅游", "制糖"},
		Fengshui:   "邕江穿城，青山环绕，绿意盎然。水火相济，宜居之地。",
		HetuNumber: 7, LuoshuNumber: 9, Terrain: "盆地", WaterSystem: "邕江/郁江",
	},
	// 东方木城
	{
		Name: "上海", Province: "上海", Direction: "东", Element: domain.Wood,
		Features: []string{"魔都", "国际金融", "时尚之都", "东方明珠"},
		Climate:  "亚热带季风", Industry: []string{"金融", "贸易", "科技", "文创"},
		Fengshui:   "长江入海口，黄浦江蜿蜒，得水之利。东方震位，木气生发，万物繁荣。",
		HetuNumber: 3, LuoshuNumber: 3, Terrain: "冲积平原", WaterSystem: "长江/黄浦江",
	},
	{
		Name: "杭州", Province: "浙江", Direction: "东", Element: domain.Wood,
		Features: []string{"人间天堂", "电商之都", "文化名城", "数字经济"},
		Climate:  "亚热带", Industry: []string{"电商", "数字经济", "旅游", "丝绸"},
		Fengshui:   "西湖如镜，钱塘潮涌，三面云山一面城。山水秀美，灵气充沛，文人墨客钟爱之地。",
		HetuNumber: 8, LuoshuNumber: 3, Terrain: "丘陵平原", WaterSystem: "钱塘江/西湖",
	},
	{
		Name: "南京", Province: "江苏", Direction: "东", Element: domain.Wood,
		Features: []string{"六朝古都", "文教名城", "创新高地", "虎踞龙蟠"},
		Climate:  "亚热带", Industry: []string{"电子", "汽车", "教育", "软件"},
		Fengshui:   "紫金山龙蟠，石头城虎踞，长江天堑。帝王之气虽散，文脉绵延不绝。",
		HetuNumber: 3, LuoshuNumber: 4, Terrain: "丘陵", WaterSystem: "长江/秦淮河",
	},
	{
		Name: "青岛", Province: "山东", Direction: "东", Element: domain.Wood,
		Features: []string{"海滨城市", "啤酒之城", "帆船之都", "品牌之都"},
		Climate:  "温带海洋", Industry: []string{"家电", "啤酒", "海洋", "旅游"},
		Fengshui:   "崂山为靠，面朝黄海，山海相依。东方木气与海水交融，清新雅致。",
		HetuNumber: 8, LuoshuNumber: 3, Terrain: "丘陵半岛", WaterSystem: "黄海/胶州湾",
	},
	{
		Name: "苏州", Province: "江苏", Direction: "东", Element: domain.Wood,
		Features: []string{"园林之城", "丝绸之府", "制造业强市", "文化名城"},
		Climate:  "亚热带", Industry: []string{"电子", "生物医药", "纺织", "装备"},
		Fengshui:   "水网密布，太湖之滨，水木相生。园林甲天下，藏风聚气之佳地。",
		HetuNumber: 3, LuoshuNumber: 4, Terrain: "平原水网", WaterSystem: "太湖/运河",
	},
	{
		Name: "厦门", Province: "福建", Direction: "东", Element: domain.Wood,
		Features: []string{"鹭岛", "花园城市", "浪漫之都", "宜居海岛"},
		Climate:  "亚热带", Industry: []string{"旅游", "电子", "软件", "港口"},
		Fengshui:   "鹭岛如珠，海水环抱，背靠九龙江。木气生发，兼得水利。",
		HetuNumber: 8, LuoshuNumber: 4, Terrain: "海岛丘陵", WaterSystem: "台湾海峡/九龙江",
	},
	// 西方金城
	{
		Name: "成都", Province: "四川", Direction: "西", Element: domain.Metal,
		Features: []string{"天府之国", "美食之都", "休闲之城", "科技重镇"},
		Climate:  "亚热带湿润", Industry: []string{"电子信息", "航空", "生物医药", "文创"},
		Fengshui:   "群山环抱，沃野千里，都江堰水利千年。天府之土，藏风聚气，安居乐业之首选。",
		HetuNumber: 4, LuoshuNumber: 7, Terrain: "盆地平原", WaterSystem: "岷江/都江堰",
	},
	{
		Name: "重庆", Province: "重庆", Direction: "西", Element: domain.Metal,
		Features: []string{"山城", "火锅之都", "雾都", "西部中心"},
		Climate:  "亚热带", Industry: []string{"汽车", "电子", "装备", "材料"},
		Fengshui:   "两江交汇，群山环绕，山城之势如金钟覆地。水势环抱，旺财旺运。",
		HetuNumber: 9, LuoshuNumber: 7, Terrain: "山地丘陵", WaterSystem: "长江/嘉陵江",
	},
	{
		Name: "西安", Province: "陕西", Direction: "西", Element: domain.Metal,
		Features: []string{"十三朝古都", "丝路起点", "历史名城", "科教重镇"},
		Climate:  "温带", Industry: []string{"航空航天", "科技", "旅游", "军工"},
		Fengshui:   "八水绕长安，秦岭为屏，渭水为带。帝王龙脉之首，金气凝聚之地。",
		HetuNumber: 4, LuoshuNumber: 7, Terrain: "关中平原", WaterSystem: "渭河/灞河",
	},
	{
		Name: "昆明", Province: "云南", Direction: "西", Element: domain.Metal,
		Features: []string{"春城", "花卉之都", "生态宜居", "民族文化"},
		Climate:  "高原", Industry: []string{"旅游", "花卉", "生物", "有色金属"},
		Fengshui:   "滇池如镜，西山如屏，四季如春。高原之气清澈通透，利于修身养性。",
		HetuNumber: 9, LuoshuNumber: 6, Terrain: "高原", WaterSystem: "滇池",
	},
	{
		Name: "兰州", Province: "甘肃", Direction: "西", Element: domain.Metal,
		Features: []string{"黄河之都", "丝路重镇", "石化基地", "河谷之城"},
		Climate:  "温带大陆", Industry: []string{"石化", "有色金属", "能源", "农业"},
		Fengshui:   "黄河穿城，两山夹峙，如金带缠腰。河谷之势收藏有力，金气沉稳。",
		HetuNumber: 4, LuoshuNumber: 6, Terrain: "河谷盆地", WaterSystem: "黄河",
	},
	// 中央土城
	{
		Name: "武汉", Province: "湖北", Direction: "中", Element: domain.Earth,
		Features: []string{"九省通衢", "江城", "教育重镇", "光谷"},
		Climate:  "亚热带", Industry: []string{"光电子", "汽车", "教育", "生物"},
		Fengshui:   "长江汉水交汇，龟蛇锁江。九省通衢，中央土气汇聚，四方来朝。",
		HetuNumber: 5, LuoshuNumber: 5, Terrain: "江汉平原", WaterSystem: "长江/汉江",
	},
	{
		Name: "长沙", Province: "湖南", Direction: "中", Element: domain.Earth,
		Features: []string{"娱乐之都", "美食之城", "历史文化", "工程机械"},
		Climate:  "亚热带", Industry: []string{"传媒", "工程机械", "文化", "食品"},
		Fengshui:   "岳麓山为靠，湘江北去，橘子洲头如砥柱中流。文脉昌盛，土气厚重。",
		HetuNumber: 5, LuoshuNumber: 2, Terrain: "丘陵盆地", WaterSystem: "湘江",
	},
	{
		Name: "郑州", Province: "河南", Direction: "中", Element: domain.Earth,
		Features: []string{"交通枢纽", "商都", "中原文化", "国家中心城市"},
		Climate:  "温带", Industry: []string{"交通", "食品", "电子", "装备"},
		Fengshui:   "中原腹地，黄河南岸，天地之中。河图洛书发源之地，土气最为纯正。",
		HetuNumber: 5, LuoshuNumber: 5, Terrain: "黄淮平原", WaterSystem: "黄河/贾鲁河",
	},
	{
		Name: "合肥", Province: "安徽", Direction: "中", Element: domain.Earth,
		Features: []string{"科教之城", "创新高地", "量子中心", "新兴科技"},
		Climate:  "亚热带", Industry: []string{"科技", "家电", "汽车", "新能源"},
		Fengshui:   "巢湖之滨，大蜀山为靠，南淝河穿城。土水相济，利于科技创新。",
		HetuNumber: 10, LuoshuNumber: 5, Terrain: "丘陵平原", WaterSystem: "巢湖/南淝河",
	},
	{
		Name: "太原", Province: "山西", Direction: "中", Element: domain.Earth,
		Features: []string{"龙城", "晋商故里", "能源之都", "古都文化"},
		Climate:  "温带", Industry: []string{"能源", "装备", "信息技术", "旅游"},
		Fengshui:   "汾河穿城，东西山对峙，盆地藏风。晋阳古城，土气深厚，利于守业。",
		HetuNumber: 10, LuoshuNumber: 8, Terrain: "盆地", WaterSystem: "汾河",
	},
}

// hetuEntry binds a He-Tu number to its element and classic phrase.
type hetuEntry struct {
	Element domain.Element
	Desc    string
}

var hetuElements = map[int]hetuEntry{
	1:  {domain.Water, "天一生水，地六成之"},
	2:  {domain.Fire, "地二生火，天七成之"},
	3:  {domain.Wood, "天三生木，地八成之"},
	4:  {domain.Metal, "天四生金，地九成之"},
	5:  {domain.Earth, "天五生土，地十成之"},
	6:  {domain.Water, "地六成水，与天一同宗"},
	7:  {domain.Fire, "天七成火，与地二同宗"},
	8:  {domain.Wood, "地八成木，与天三同宗"},
	9:  {domain.Metal, "地九成金，与天四同宗"},
	10: {domain.Earth, "地十成土，与天五同宗"},
}

// luoshuDescs reads the Luo-Shu palace commentary by position.
var luoshuDescs = map[int]string{
	1: "坎位正北，主智慧聪明，利水行之人。一白贪狼，主桃花与学业。",
	2: "坤位西南，主包容厚重，利土行之人。二黑巨门，主地产与农业。",
	3: "震位正东，主生发进取，利木行之人。三碧禄存，主竞争与拼搏。",
	4: "巽位东南，主文昌学业，利木行之人。四绿文曲，主文采与艺术。",
	5: "中宫中央，主厚德载物，利土行之人。五黄廉贞，主权威与中枢。",
	6: "乾位西北，主权威刚健，利金行之人。六白武曲，主财富与地位。",
	7: "兑位正西，主口才交际，利金行之人。七赤破军，主变革与享乐。",
	8: "艮位东北，主稳固厚实，利土行之人。八白左辅，主财运与地产。",
	9: "离位正南，主光明热烈，利火行之人。九紫右弼，主喜庆与名声。",
}

// directionQuotes supplies the fallback classic quote per compass direction.
var directionQuotes = map[string]string{
	"北": "《易》曰：坎为水，水流北方。北方水地，利于智慧之人。",
	"南": "《易》曰：离为火，附丽于物。南方火地，利于热情之人。",
	"东": "《易》曰：震为雷，动万物者。东方木地，利于进取之人。",
	"西": "《易》曰：兑为泽，说万物者。西方金地，利于果断之人。",
	"中": "《易》曰：坤为地，厚载万物。中央土地，利于包容之人。",
}

// cityCareerBonus lists flagship industries per city for the career
// cross-match bonus.
var cityCareerBonus = map[string][]string{
	"北京": {"政府机关", "国企央企", "教育管理", "高等教育", "科技研发", "文化出版"},
	"上海": {"金融证券", "国际贸易", "投资理财", "银行保险", "广告营销", "外贸"},
	"深圳": {"IT科技", "科技研发", "企业创业", "电子电器", "创新", "风险投资"},
	"广州": {"国际贸易", "外贸", "社交电商", "餐饮烹饪", "零售经营", "汽车制造"},
	"杭州": {"电商", "社交电商", "传媒广告", "直播电商", "数字经济", "IT科技"},
	"成都": {"文艺创作", "餐饮美食", "旅游休闲", "电子信息", "文化出版", "自由职业者"},
	"武汉": {"高等教育", "学术研究", "光电子", "教育培训", "医疗卫生", "生物医药"},
	"南京": {"教育培训", "学术研究", "汽车制造", "电子电器", "军事国防", "软件"},
	"西安": {"军事国防", "航空航天", "考古历史", "旅游", "科技研发", "教育"},
	"重庆": {"装备制造", "汽车制造", "建筑工程", "物流运输", "电子电器", "材料"},
}

// geJuCityAffinity names the cities each chart pattern favors and the quote
// attached when one matches.
var geJuCityAffinity = map[string]struct {
	Cities []string
	Bonus  int
	Quote  string
}{
	"正官格": {[]string{"北京", "南京", "西安"}, 4, "正官格宜居政治文化中心，\"学而优则仕\"，此城利于仕途发展。"},
	"七杀格": {[]string{"深圳", "上海", "成都"}, 4, "七杀格宜居创新开拓之城，\"将在外，君命有所不受\"，此城利于创业。"},
	"食神格": {[]string{"杭州", "成都", "厦门"}, 4, "食神格宜居山水秀美之城，\"食神有气胜财官\"，此城利于享受生活。"},
	"正印格": {[]string{"北京", "南京", "武汉"}, 4, "印格宜居文教重镇，\"印绶扶身最为吉祥\"，此城利于学术发展。"},
	"正财格": {[]string{"上海", "广州", "深圳"}, 3, "财格宜居商贸中心，\"财为养命之源\"，此城利于财运亨通。"},
}
