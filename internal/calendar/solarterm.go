// Package calendar maps Gregorian birth dates onto the solar-term month grid
// used by pillar arithmetic, and applies the longitude-based true-solar-time
// correction to the hour branch.
//
// Solar term dates are approximated from a fixed civil-date table with small
// per-year corrections; years outside the correction map silently use the
// uncorrected date. This is a documented precision limit, not an error path.
package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/tianming/city-selector/pkg/dateutil"
)

// monthTerm is one of the 12 month-starting terms (节). The 12 mid-month 气
// terms do not bound pillar months and are not tabulated here.
type monthTerm struct {
	Name        string
	BranchIndex int // branch the started month occupies
	CivilMonth  int // approximate civil date of the term
	CivilDay    int
}

// monthTerms is ordered by lunar month: index i starts lunar month i+1.
// 立春 opens the Tiger month (正月), 小寒 closes the cycle with the Ox month.
var monthTerms = [12]monthTerm{
	{Name: "立春", BranchIndex: 2, CivilMonth: 2, CivilDay: 4},
	{Name: "惊蛰", BranchIndex: 3, CivilMonth: 3, CivilDay: 6},
	{Name: "清明", BranchIndex: 4, CivilMonth: 4, CivilDay: 5},
	{Name: "立夏", BranchIndex: 5, CivilMonth: 5, CivilDay: 6},
	{Name: "芒种", BranchIndex: 6, CivilMonth: 6, CivilDay: 6},
	{Name: "小暑", BranchIndex: 7, CivilMonth: 7, CivilDay: 7},
	{Name: "立秋", BranchIndex: 8, CivilMonth: 8, CivilDay: 7},
	{Name: "白露", BranchIndex: 9, CivilMonth: 9, CivilDay: 8},
	{Name: "寒露", BranchIndex: 10, CivilMonth: 10, CivilDay: 8},
	{Name: "立冬", BranchIndex: 11, CivilMonth: 11, CivilDay: 7},
	{Name: "大雪", BranchIndex: 0, CivilMonth: 12, CivilDay: 7},
	{Name: "小寒", BranchIndex: 1, CivilMonth: 1, CivilDay: 6},
}

// yearOffsets corrects term dates for leap-cycle drift in specific years.
// Keyed by year, then term name, value is a day offset.
var yearOffsets = map[int]map[string]int{
	1960: {"立春": -1}, 1964: {"立春": -1}, 1968: {"立春": -1},
	1972: {"立春": -1}, 1976: {"立春": -1}, 1980: {"立春": -1},
	1984: {"立春": -1}, 1988: {"立春": -1}, 1992: {"立春": -1},
	1996: {"立春": -1}, 2000: {"立春": -1}, 2004: {"立春": -1},
	2008: {"立春": -1},
}

// termDate returns the (possibly year-corrected) civil date of a named term.
func termDate(year int, name string) (month, day int) {
	for _, t := range monthTerms {
		if t.Name == name {
			return t.CivilMonth, t.CivilDay + yearOffsets[year][name]
		}
	}
	return 1, 1
}

// SolarTermMonth is the solar-term-bounded month a date falls into, together
// with the day distances used by the rising-luck computation.
type SolarTermMonth struct {
	LunarMonth       int    // 1 = 正月(寅) .. 12 = 腊月(丑)
	MonthBranchIndex int    // 0-11
	Term             string // latest term not after the date
	NextTerm         string
	DaysToNextTerm   int
	DaysToPrevTerm   int
}

// ResolveSolarTermMonth maps a Gregorian date onto the solar-term month grid.
// A birth exactly on a term date belongs to the new term. Dates before 小寒 in
// January roll back to the prior year's 大雪 month.
func ResolveSolarTermMonth(year, month, day int) SolarTermMonth {
	target := dateutil.Date(year, month, day)

	type placed struct {
		monthTerm
		lunarMonth int
		date       time.Time
	}
	terms := make([]placed, 0, len(monthTerms))
	for i, t := range monthTerms {
		m, d := termDate(year, t.Name)
		terms = append(terms, placed{monthTerm: t, lunarMonth: i + 1, date: dateutil.Date(year, m, d)})
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].date.After(terms[j].date) })

	current := -1
	for i := range terms {
		if !target.Before(terms[i].date) {
			current = i
			break
		}
	}

	if current == -1 {
		// January before 小寒: still in the prior year's 大雪 month (腊月/丑).
		dm, dd := termDate(year-1, "大雪")
		xm, xd := termDate(year, "小寒")
		daysToNext := dateutil.DaysBetween(target, dateutil.Date(year, xm, xd))
		daysToPrev := dateutil.DaysBetween(dateutil.Date(year-1, dm, dd), target)
		return SolarTermMonth{
			LunarMonth:       12,
			MonthBranchIndex: 1,
			Term:             "大雪",
			NextTerm:         "小寒",
			DaysToNextTerm:   max(daysToNext, 1),
			DaysToPrevTerm:   max(daysToPrev, 1),
		}
	}

	cur := terms[current]
	daysToNext := 30
	nextName := "立春"
	if current > 0 {
		next := terms[current-1]
		daysToNext = dateutil.DaysBetween(target, next.date)
		nextName = next.Name
	}

	return SolarTermMonth{
		LunarMonth:       cur.lunarMonth,
		MonthBranchIndex: cur.BranchIndex,
		Term:             cur.Name,
		NextTerm:         nextName,
		DaysToNextTerm:   max(daysToNext, 1),
		DaysToPrevTerm:   max(dateutil.DaysBetween(cur.date, target), 0),
	}
}

// Info renders the human-readable solar-term summary carried on the chart.
func (s SolarTermMonth) Info(monthBranch string) string {
	return fmt.Sprintf("节气月份：%s后%d天，距%s%d天。命理%d月（%s月）。",
		s.Term, s.DaysToPrevTerm, s.NextTerm, s.DaysToNextTerm, s.LunarMonth, monthBranch)
}
