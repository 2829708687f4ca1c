// Package calculation derives the Four Pillars chart from a birth moment:
// pillar arithmetic on the sexagenary cycles, element statistics, pattern
// classification, special stars, luck cycles and the career synthesis.
// All lookup tables are immutable package data, so an Engine is safe for
// concurrent use.
package calculation

import (
	"fmt"

	"github.com/tianming/city-selector/internal/calendar"
	"github.com/tianming/city-selector/internal/domain"
	"github.com/tianming/city-selector/pkg/dateutil"
)

// Engine orchestrates a full chart computation.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger. Nil installs the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// baziYear attributes the birth to a chart year: births between New Year's
// Day and 立春 still belong to the prior year's pillar.
func baziYear(year, month int, term calendar.SolarTermMonth) int {
	if term.Term == "小寒" && month == 1 {
		return year - 1
	}
	if month <= 2 && term.LunarMonth >= 11 {
		return year - 1
	}
	return year
}

// ComputeChart runs the whole pipeline. Degraded inputs (unknown hour
// branch, years outside the term-correction table) produce defined fallback
// charts; only an impossible calendar date is an error.
func (e *Engine) ComputeChart(input domain.BirthInput) (*domain.BaziChart, error) {
	if !dateutil.IsValidDate(input.Year, input.Month, input.Day) {
		return nil, fmt.Errorf("invalid birth date %04d-%02d-%02d", input.Year, input.Month, input.Day)
	}

	hourBranch := input.HourBranch
	trueSolarNote := ""
	if input.Longitude != nil {
		adj := calendar.AdjustTrueSolarTime(hourBranch, *input.Longitude)
		hourBranch = adj.AdjustedBranch
		trueSolarNote = adj.Note
		e.Logger.Debugf("true solar time: offset %d min, branch %s -> %s", adj.OffsetMinutes, input.HourBranch, hourBranch)
	}

	term := calendar.ResolveSolarTermMonth(input.Year, input.Month, input.Day)
	chartYear := baziYear(input.Year, input.Month, term)
	e.Logger.Debugf("solar term month: %s (lunar %d), chart year %d", term.Term, term.LunarMonth, chartYear)

	// The day pillar comes first: its stem is the day master every other
	// pillar's ten god is measured against.
	dayPillar := DayPillar(input.Year, input.Month, input.Day)
	dayMaster := dayPillar.Stem

	yearPillar := YearPillar(chartYear, dayMaster)
	monthPillar := MonthPillar(chartYear, term.MonthBranchIndex, dayMaster)
	hourPillar := HourPillar(dayMaster, hourBranch)

	chart := &domain.BaziChart{
		YearPillar:  yearPillar,
		MonthPillar: monthPillar,
		DayPillar:   dayPillar,
		HourPillar:  hourPillar,

		Zodiac:           domain.ZodiacAnimals[((chartYear-4)%12+12)%12],
		DayMaster:        dayMaster,
		DayMasterElement: StemElement(dayMaster),
		DayMasterYinYang: stemYinYang[dayMaster],

		YearNayin:         yearPillar.Nayin,
		TrueSolarTimeNote: trueSolarNote,
		SolarTermInfo:     term.Info(monthPillar.Branch),

		ChartYear:          chartYear,
		LunarMonth:         term.LunarMonth,
		AdjustedHourBranch: hourBranch,
	}

	counts := CountElements(chart.Pillars())
	chart.ElementCounts = counts
	chart.DominantElement = counts.Dominant()
	chart.WeakElement = counts.Weakest()
	chart.FavorableElement = FavorableElement(chart.DayMasterElement, counts, monthPillar.Branch)
	chart.UnfavorableElement = Controls(chart.FavorableElement)

	chart.GeJu = DetermineGeJu(chart.DayMasterElement, counts, collectTenGods(chart))
	chart.DayMasterAnalysis = AnalyzeDayMasterStrength(chart.DayMasterElement, counts, monthPillar.Branch)
	chart.ShenSha = DetectShenSha(yearPillar.Branch, dayPillar.Branch, monthPillar.Branch)

	yearStemIdx := ((chartYear-4)%10 + 10) % 10
	rising := calendar.ResolveRisingLuckAge(
		DaYunForward(input.Gender, yearStemIdx),
		term.DaysToNextTerm, term.DaysToPrevTerm,
	)
	chart.DaYunStartDesc = rising.Desc

	monthStemIdx := domain.StemIndex(monthPillar.Stem)
	monthBranchIdx := domain.BranchIndex(monthPillar.Branch)
	chart.DaYun = ComputeDaYun(input.Gender, yearStemIdx, monthStemIdx, monthBranchIdx, rising.StartAge)
	EnrichDaYun(chart.DaYun, dayMaster)

	chart.ClassicDesc = classicElementPoems[chart.DayMasterElement]

	// First career pass without the star chart; EnrichCareer folds the
	// career-palace star in once the Zi Wei chart exists.
	chart.Career = AnalyzeCareer(chart, nil)

	return chart, nil
}

// EnrichCareer recomputes the career analysis with the Zi Wei career-palace
// star folded in.
func (e *Engine) EnrichCareer(chart *domain.BaziChart, careerStar *domain.ZiweiStar) {
	if chart == nil || careerStar == nil {
		return
	}
	chart.Career = AnalyzeCareer(chart, careerStar)
}

// collectTenGods gathers the ten gods the pattern rules scan: the visible
// year, month and hour stems plus every hidden stem of all four pillars. The
// day pillar's own 日主 slot is excluded.
func collectTenGods(chart *domain.BaziChart) []string {
	gods := []string{chart.YearPillar.TenGod, chart.MonthPillar.TenGod, chart.HourPillar.TenGod}
	for _, p := range chart.Pillars() {
		for _, hs := range p.HiddenStems {
			gods = append(gods, hs.TenGod)
		}
	}
	return gods
}
