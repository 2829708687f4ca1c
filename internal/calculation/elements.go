package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tianming/city-selector/internal/domain"
)

var (
	hiddenStemWeight = decimal.NewFromFloat(0.5)
	one              = decimal.NewFromInt(1)
)

// CountElements accumulates the weighted element distribution: 1 per pillar
// stem, 1 per pillar branch, 0.5 per hidden stem. The non-hidden contribution
// always sums to 8 (4 pillars × 2).
func CountElements(pillars [4]domain.Pillar) domain.ElementCounts {
	counts := domain.ElementCounts{}
	for _, e := range domain.FiveElements {
		counts[e] = decimal.Zero
	}
	for _, p := range pillars {
		counts[p.StemElement] = counts[p.StemElement].Add(one)
		counts[p.BranchElement] = counts[p.BranchElement].Add(one)
		for _, hs := range p.HiddenStems {
			counts[hs.Element] = counts[hs.Element].Add(hiddenStemWeight)
		}
	}
	return counts
}

// Generates returns the element the given element generates.
func Generates(e domain.Element) domain.Element { return elementGenerates[e] }

// Controls returns the element the given element controls.
func Controls(e domain.Element) domain.Element { return elementControls[e] }

// GeneratedBy returns the element that generates the given element.
func GeneratedBy(e domain.Element) domain.Element { return elementGeneratedBy[e] }

var (
	favorableVentBand    = decimal.NewFromFloat(0.28)
	favorableDrainBand   = decimal.NewFromFloat(0.35)
	favorableBalanceBand = decimal.NewFromFloat(0.18)
	inSeasonFavorBonus   = decimal.NewFromFloat(0.08)
)

// FavorableElement picks the element the chart wants more of. A strong day
// master is drained (controlled) or vented (generated-from); a balanced chart
// reinforces its scarcest element; a weak one is fed by its generator.
func FavorableElement(dayMasterElement domain.Element, counts domain.ElementCounts, monthBranch string) domain.Element {
	ratio := counts[dayMasterElement].Div(counts.Total())
	if BranchElement(monthBranch) == dayMasterElement {
		ratio = ratio.Add(inSeasonFavorBonus)
	}

	switch {
	case ratio.GreaterThan(favorableDrainBand):
		return Controls(dayMasterElement)
	case ratio.GreaterThan(favorableVentBand):
		return Generates(dayMasterElement)
	case ratio.GreaterThan(favorableBalanceBand):
		return counts.Scarcest()
	default:
		return GeneratedBy(dayMasterElement)
	}
}

// ElementRelation renders the relation between two elements for rationale
// strings. Empty inputs degrade to a defined placeholder.
func ElementRelation(a, b domain.Element) string {
	if a == "" || b == "" {
		return "关系待定"
	}
	switch {
	case Generates(a) == b:
		return fmt.Sprintf("%s生%s，相生有情", a, b)
	case Controls(a) == b:
		return fmt.Sprintf("%s克%s，须谨慎应对", a, b)
	case a == b:
		return fmt.Sprintf("同属%s，气场相应", a)
	case Generates(b) == a:
		return fmt.Sprintf("%s生%s，得气滋养", b, a)
	default:
		return fmt.Sprintf("%s与%s相安无事", a, b)
	}
}
