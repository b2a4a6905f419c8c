package game

import (
	"github.com/syriandeal/deal-server-go/internal/catalog"
	"github.com/syriandeal/deal-server-go/internal/deck"
)

// CompletedSets counts the completed color sets in a property area.
//
// Non-wild properties group by printed color; a wild with an assigned color
// joins that group. Unassigned wilds form a shared per-player pool that can
// fill a short group, allocated greedily in the fixed color order red, blue,
// green, yellow, then any other color in first-seen order. The allocation is
// order-dependent, not globally optimal; an earlier color claims wilds first.
func CompletedSets(properties []deck.Card) int {
	counts := make(map[catalog.Color]int)
	wildPool := 0

	seen := make(map[catalog.Color]bool, len(catalog.CanonicalColors))
	for _, color := range catalog.CanonicalColors {
		seen[color] = true
	}
	var extraColors []catalog.Color

	for _, card := range properties {
		if card.Def.Wild && card.AssignedColor == catalog.ColorNone {
			wildPool++
			continue
		}
		color := card.Color()
		if color == catalog.ColorNone {
			continue
		}
		counts[color]++
		if !seen[color] {
			seen[color] = true
			extraColors = append(extraColors, color)
		}
	}

	order := make([]catalog.Color, 0, len(catalog.CanonicalColors)+len(extraColors))
	order = append(order, catalog.CanonicalColors...)
	order = append(order, extraColors...)

	completed := 0
	for _, color := range order {
		have := counts[color]
		if have == 0 {
			// Wilds alone never found a set; they only top up a started
			// group.
			continue
		}
		need := catalog.SetSize(color)
		if have >= need {
			completed++
			continue
		}
		if short := need - have; wildPool >= short {
			wildPool -= short
			completed++
		}
	}
	return completed
}

// Rent returns the rent owed for a property group of the given color and
// size. The per-color progression is 1-indexed by group size and clamped to
// its length; an empty group owes nothing.
func Rent(groupSize int, color catalog.Color) int {
	if groupSize <= 0 {
		return 0
	}
	table := catalog.RentProgression(color)
	idx := groupSize
	if idx > len(table) {
		idx = len(table)
	}
	return table[idx-1]
}
