// Package domain holds the immutable value types produced by a single chart
// computation. Every entity is built fresh per request and never mutated after
// construction, so values can be shared freely across goroutines.
package domain

import (
	"github.com/shopspring/decimal"
)

// HeavenlyStems are the ten stems in cycle order. Indices matter: all pillar
// arithmetic works on ordinals mod 10.
var HeavenlyStems = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// EarthlyBranches are the twelve branches in cycle order (ordinals mod 12).
var EarthlyBranches = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// ZodiacAnimals aligns with EarthlyBranches by index.
var ZodiacAnimals = [12]string{"鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊", "猴", "鸡", "狗", "猪"}

// Element is one of the five phases.
type Element string

const (
	Metal Element = "金"
	Wood  Element = "木"
	Water Element = "水"
	Fire  Element = "火"
	Earth Element = "土"
)

// FiveElements is the canonical enumeration order. Tie-breaking in element
// statistics follows this order, so it must not be reordered.
var FiveElements = [5]Element{Metal, Wood, Water, Fire, Earth}

// StemIndex returns the ordinal of a stem symbol, or -1 if unrecognized.
func StemIndex(stem string) int {
	for i, s := range HeavenlyStems {
		if s == stem {
			return i
		}
	}
	return -1
}

// BranchIndex returns the ordinal of a branch symbol, or -1 if unrecognized.
func BranchIndex(branch string) int {
	for i, b := range EarthlyBranches {
		if b == branch {
			return i
		}
	}
	return -1
}

// Gender values accepted by the engine.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// HourBranchWindow maps an hour branch to its two-hour clock window. The Zi
// window wraps midnight (23:00-01:00).
type HourBranchWindow struct {
	Label  string `yaml:"label" json:"label"`
	Branch string `yaml:"branch" json:"branch"`
	Hours  string `yaml:"hours" json:"hours"`
}

// HourBranchWindows lists the twelve windows in branch order.
var HourBranchWindows = [12]HourBranchWindow{
	{Label: "子时", Branch: "子", Hours: "23:00-01:00"},
	{Label: "丑时", Branch: "丑", Hours: "01:00-03:00"},
	{Label: "寅时", Branch: "寅", Hours: "03:00-05:00"},
	{Label: "卯时", Branch: "卯", Hours: "05:00-07:00"},
	{Label: "辰时", Branch: "辰", Hours: "07:00-09:00"},
	{Label: "巳时", Branch: "巳", Hours: "09:00-11:00"},
	{Label: "午时", Branch: "午", Hours: "11:00-13:00"},
	{Label: "未时", Branch: "未", Hours: "13:00-15:00"},
	{Label: "申时", Branch: "申", Hours: "15:00-17:00"},
	{Label: "酉时", Branch: "酉", Hours: "17:00-19:00"},
	{Label: "戌时", Branch: "戌", Hours: "19:00-21:00"},
	{Label: "亥时", Branch: "亥", Hours: "21:00-23:00"},
}

// BirthInput is the full set of facts the pipeline needs. Longitude is
// optional; when nil the hour branch is used without true-solar-time
// correction.
type BirthInput struct {
	Name       string   `yaml:"name" json:"name"`
	Year       int      `yaml:"year" json:"year"`
	Month      int      `yaml:"month" json:"month"`
	Day        int      `yaml:"day" json:"day"`
	HourBranch string   `yaml:"hour_branch" json:"hour_branch"`
	Gender     string   `yaml:"gender" json:"gender"`
	Longitude  *float64 `yaml:"longitude,omitempty" json:"longitude,omitempty"`
}

// HiddenStem is one of the 1-3 stems concealed in a branch, with its own ten
// god relation to the day master.
type HiddenStem struct {
	Stem    string  `yaml:"stem" json:"stem"`
	Element Element `yaml:"element" json:"element"`
	TenGod  string  `yaml:"ten_god" json:"ten_god"`
}

// Pillar is one stem+branch pair with its derived attributes.
type Pillar struct {
	Stem          string       `yaml:"stem" json:"stem"`
	Branch        string       `yaml:"branch" json:"branch"`
	StemElement   Element      `yaml:"stem_element" json:"stem_element"`
	BranchElement Element      `yaml:"branch_element" json:"branch_element"`
	Nayin         string       `yaml:"nayin" json:"nayin"`
	NayinElement  Element      `yaml:"nayin_element" json:"nayin_element"`
	TenGod        string       `yaml:"ten_god" json:"ten_god"`
	HiddenStems   []HiddenStem `yaml:"hidden_stems" json:"hidden_stems"`
}

// ElementCounts accumulates weighted element occurrences: 1 per pillar stem,
// 1 per pillar branch, 0.5 per hidden stem.
type ElementCounts map[Element]decimal.Decimal

// Total sums all counts.
func (ec ElementCounts) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range FiveElements {
		total = total.Add(ec[e])
	}
	return total
}

// Dominant returns the element with the highest count; ties resolve to the
// earliest element in canonical order.
func (ec ElementCounts) Dominant() Element {
	best := FiveElements[0]
	for _, e := range FiveElements[1:] {
		if ec[e].GreaterThan(ec[best]) {
			best = e
		}
	}
	return best
}

// Weakest returns the element with the lowest count; ties resolve to the
// latest element in canonical order (matches a stable descending sort taking
// the last entry).
func (ec ElementCounts) Weakest() Element {
	best := FiveElements[0]
	for _, e := range FiveElements[1:] {
		if !ec[e].GreaterThan(ec[best]) {
			best = e
		}
	}
	return best
}

// Scarcest returns the element with the lowest count; ties resolve to the
// earliest element in canonical order (matches a stable ascending sort taking
// the first entry). Used by favorable-element rebalancing, which breaks ties
// differently from Weakest.
func (ec ElementCounts) Scarcest() Element {
	best := FiveElements[0]
	for _, e := range FiveElements[1:] {
		if ec[e].LessThan(ec[best]) {
			best = e
		}
	}
	return best
}

// GeJu is the overall pattern classification of a chart.
type GeJu struct {
	Name         string `yaml:"name" json:"name"`
	Level        string `yaml:"level" json:"level"` // 上格/中格/下格
	Desc         string `yaml:"desc" json:"desc"`
	ClassicQuote string `yaml:"classic_quote" json:"classic_quote"`
}

// ShenShaType is the polarity of a special star.
type ShenShaType string

const (
	Auspicious   ShenShaType = "auspicious"
	Inauspicious ShenShaType = "inauspicious"
	Neutral      ShenShaType = "neutral"
)

// ShenSha is a detected special star with migration advice.
type ShenSha struct {
	Name       string      `yaml:"name" json:"name"`
	Type       ShenShaType `yaml:"type" json:"type"`
	Desc       string      `yaml:"desc" json:"desc"`
	CityAdvice string      `yaml:"city_advice" json:"city_advice"`
}

// DaYun is one ten-year luck cycle. TenGod and Desc are filled in a second
// pass once the day master is known.
type DaYun struct {
	AgeRange      string  `yaml:"age_range" json:"age_range"`
	Stem          string  `yaml:"stem" json:"stem"`
	Branch        string  `yaml:"branch" json:"branch"`
	StemElement   Element `yaml:"stem_element" json:"stem_element"`
	BranchElement Element `yaml:"branch_element" json:"branch_element"`
	Nayin         string  `yaml:"nayin" json:"nayin"`
	NayinElement  Element `yaml:"nayin_element" json:"nayin_element"`
	TenGod        string  `yaml:"ten_god" json:"ten_god"`
	Desc          string  `yaml:"desc" json:"desc"`
}

// DayMasterAnalysis classifies the day master's relative strength.
type DayMasterAnalysis struct {
	Strength string          `yaml:"strength" json:"strength"` // 极旺/偏旺/中和/偏弱/极弱
	Ratio    decimal.Decimal `yaml:"ratio" json:"ratio"`
	Desc     string          `yaml:"desc" json:"desc"`
	Advice   string          `yaml:"advice" json:"advice"`
}

// CareerAnalysis is the composed career recommendation.
type CareerAnalysis struct {
	PrimaryDirection   string   `yaml:"primary_direction" json:"primary_direction"`
	SecondaryDirection string   `yaml:"secondary_direction" json:"secondary_direction"`
	Industries         []string `yaml:"industries" json:"industries"`
	Roles              []string `yaml:"roles" json:"roles"`
	TenGodAnalysis     string   `yaml:"ten_god_analysis" json:"ten_god_analysis"`
	ElementAnalysis    string   `yaml:"element_analysis" json:"element_analysis"`
	ZiweiCareer        string   `yaml:"ziwei_career" json:"ziwei_career"`
	GeJuAdvice         string   `yaml:"geju_advice" json:"geju_advice"`
	ClassicQuote       string   `yaml:"classic_quote" json:"classic_quote"`
	AvoidIndustries    []string `yaml:"avoid_industries" json:"avoid_industries"`
	Strengths          []string `yaml:"strengths" json:"strengths"`
	Advice             string   `yaml:"advice" json:"advice"`
}

// BaziChart is the complete Four Pillars result graph.
type BaziChart struct {
	YearPillar  Pillar `yaml:"year_pillar" json:"year_pillar"`
	MonthPillar Pillar `yaml:"month_pillar" json:"month_pillar"`
	DayPillar   Pillar `yaml:"day_pillar" json:"day_pillar"`
	HourPillar  Pillar `yaml:"hour_pillar" json:"hour_pillar"`

	Zodiac           string  `yaml:"zodiac" json:"zodiac"`
	DayMaster        string  `yaml:"day_master" json:"day_master"`
	DayMasterElement Element `yaml:"day_master_element" json:"day_master_element"`
	DayMasterYinYang string  `yaml:"day_master_yin_yang" json:"day_master_yin_yang"`

	ElementCounts      ElementCounts `yaml:"element_counts" json:"element_counts"`
	DominantElement    Element       `yaml:"dominant_element" json:"dominant_element"`
	WeakElement        Element       `yaml:"weak_element" json:"weak_element"`
	FavorableElement   Element       `yaml:"favorable_element" json:"favorable_element"`
	UnfavorableElement Element       `yaml:"unfavorable_element" json:"unfavorable_element"`

	GeJu              GeJu              `yaml:"geju" json:"geju"`
	DayMasterAnalysis DayMasterAnalysis `yaml:"day_master_analysis" json:"day_master_analysis"`
	ShenSha           []ShenSha         `yaml:"shensha" json:"shensha"`
	DaYun             []DaYun           `yaml:"dayun" json:"dayun"`

	YearNayin   string `yaml:"year_nayin" json:"year_nayin"`
	ClassicDesc string `yaml:"classic_desc" json:"classic_desc"`

	Career CareerAnalysis `yaml:"career" json:"career"`

	TrueSolarTimeNote string `yaml:"true_solar_time_note" json:"true_solar_time_note"`
	SolarTermInfo     string `yaml:"solar_term_info" json:"solar_term_info"`
	DaYunStartDesc    string `yaml:"dayun_start_desc" json:"dayun_start_desc"`

	// Handoff facts the star-chart stage consumes: the attributed chart year,
	// the solar-term lunar month and the (possibly true-solar-corrected) hour
	// branch the pillars were built from.
	ChartYear          int    `yaml:"chart_year" json:"chart_year"`
	LunarMonth         int    `yaml:"lunar_month" json:"lunar_month"`
	AdjustedHourBranch string `yaml:"adjusted_hour_branch" json:"adjusted_hour_branch"`
}

// Pillars returns the four pillars in year/month/day/hour order.
func (c *BaziChart) Pillars() [4]Pillar {
	return [4]Pillar{c.YearPillar, c.MonthPillar, c.DayPillar, c.HourPillar}
}

// HiddenStemCount totals hidden stems across all four pillars (4 to 12 for
// any valid chart).
func (c *BaziChart) HiddenStemCount() int {
	n := 0
	for _, p := range c.Pillars() {
		n += len(p.HiddenStems)
	}
	return n
}
