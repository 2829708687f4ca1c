package calendar

import (
	"fmt"
)

// RisingLuck is the start point of the first major luck cycle.
type RisingLuck struct {
	StartAge    int
	StartMonths int
	Desc        string
}

// ResolveRisingLuckAge applies the three-days-per-year rule: forward charts
// count days to the next term, backward charts to the previous one. Each full
// three days is one year, each leftover day four months. The start age never
// drops below one.
func ResolveRisingLuckAge(isForward bool, daysToNextTerm, daysToPrevTerm int) RisingLuck {
	days := daysToPrevTerm
	if isForward {
		days = daysToNextTerm
	}
	years := days / 3
	remainder := days % 3
	months := remainder * 4

	startAge := max(years, 1)

	monthPart := ""
	if months > 0 {
		monthPart = fmt.Sprintf("%d个月", months)
	}
	var desc string
	if isForward {
		desc = fmt.Sprintf("顺数至下一节气%d天，÷3=%d岁余%d天（%d个月），%d岁%s起运。",
			daysToNextTerm, years, remainder, months, startAge, monthPart)
	} else {
		desc = fmt.Sprintf("逆数至上一节气%d天，÷3=%d岁余%d天（%d个月），%d岁%s起运。",
			daysToPrevTerm, years, remainder, months, startAge, monthPart)
	}

	return RisingLuck{StartAge: startAge, StartMonths: months, Desc: desc}
}
