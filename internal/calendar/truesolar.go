package calendar

import (
	"fmt"
	"math"

	"github.com/tianming/city-selector/internal/domain"
)

// branchMidpoints holds each two-hour branch window's midpoint in minutes
// from 00:00. Zi (子) is centered on midnight, every later branch is +120.
var branchMidpoints = [12]int{0, 120, 240, 360, 480, 600, 720, 840, 960, 1080, 1200, 1320}

// TrueSolarAdjustment is the result of correcting an hour branch for the
// birth location's longitude.
type TrueSolarAdjustment struct {
	AdjustedBranch string
	OffsetMinutes  int
	Note           string
}

// AdjustTrueSolarTime shifts the hour branch by (longitude - 120°) × 4
// minutes, the offset of local mean solar time from the 120°E clock standard.
// The branch midpoint is shifted and re-mapped; the Zi window wraps midnight
// (23:00-01:00) and is handled separately. Unknown branches come back
// unchanged with a zero offset.
func AdjustTrueSolarTime(hourBranch string, longitude float64) TrueSolarAdjustment {
	offset := int(math.Floor((longitude-120)*4 + 0.5))

	branchIdx := domain.BranchIndex(hourBranch)
	if branchIdx == -1 {
		return TrueSolarAdjustment{AdjustedBranch: hourBranch, OffsetMinutes: 0, Note: "未知时辰"}
	}

	adjusted := branchMidpoints[branchIdx] + offset
	adjusted = ((adjusted % 1440) + 1440) % 1440

	var newIdx int
	if adjusted >= 1380 || adjusted < 60 {
		newIdx = 0
	} else {
		newIdx = (adjusted-60)/120 + 1
		if newIdx >= 12 {
			newIdx = 0
		}
	}

	adjustedBranch := domain.EarthlyBranches[newIdx]

	var note string
	switch {
	case math.Abs(float64(offset)) < 5:
		note = "出生地接近东经120度（北京时间基准），时辰无需校正。"
	case adjustedBranch != hourBranch:
		direction := "慢"
		if offset > 0 {
			direction = "快"
		}
		note = fmt.Sprintf("出生地经度%.1f度，真太阳时%s%d分钟，时辰由%s时校正为%s时。",
			longitude, direction, abs(offset), hourBranch, adjustedBranch)
	default:
		note = fmt.Sprintf("出生地经度%.1f度，真太阳时偏差%d分钟，未跨时辰边界，维持%s时。",
			longitude, abs(offset), hourBranch)
	}

	return TrueSolarAdjustment{AdjustedBranch: adjustedBranch, OffsetMinutes: offset, Note: note}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
