package catalog

import "fmt"

// Category classifies a card into one of the three play areas it can
// originate from.
type Category int

const (
	CategoryProperty Category = iota
	CategoryAction
	CategoryMoney
)

var categoryNames = map[Category]string{
	CategoryProperty: "PROPERTY",
	CategoryAction:   "ACTION",
	CategoryMoney:    "MONEY",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CATEGORY_%d", int(c))
}

// Color is a property set color. Wild properties carry ColorWild until a
// color is assigned at play time.
type Color string

const (
	ColorNone   Color = ""
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorWild   Color = "wild"
)

// CanonicalColors is the fixed evaluation order for set completion and wild
// allocation. Changing this order changes which sets greedy wild assignment
// completes first.
var CanonicalColors = []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow}

// EffectKind identifies the engine behavior of an action card. Effects are
// bound at catalog definition time so the engine dispatches on a closed enum
// rather than card id strings.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectExtraTurn
	EffectStealProperty
	EffectDrawThree
	EffectForcedPayment
	EffectTrade
	EffectRent
)

var effectNames = map[EffectKind]string{
	EffectNone:          "NONE",
	EffectExtraTurn:     "EXTRA_TURN",
	EffectStealProperty: "STEAL_PROPERTY",
	EffectDrawThree:     "DRAW_THREE",
	EffectForcedPayment: "FORCED_PAYMENT",
	EffectTrade:         "TRADE",
	EffectRent:          "RENT",
}

func (e EffectKind) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return fmt.Sprintf("EFFECT_%d", int(e))
}

// Card is an immutable catalog entry. The engine never mutates catalog
// entries; dealt instances reference them by value.
type Card struct {
	ID          string
	Category    Category
	Title       string
	TitleArabic string
	Description string
	Icon        string
	Value       int

	// Property fields.
	Color   Color
	SetSize int
	Wild    bool

	// Action fields.
	Effect       EffectKind
	EffectAmount int
	RentColors   []Color
}

// setSizes maps each color to the group size required for a completed set.
var setSizes = map[Color]int{
	ColorRed:    4,
	ColorBlue:   3,
	ColorGreen:  2,
	ColorYellow: 3,
}

const defaultSetSize = 2

// SetSize returns the number of same-color properties required to complete a
// set of the given color.
func SetSize(color Color) int {
	if size, ok := setSizes[color]; ok {
		return size
	}
	return defaultSetSize
}

// rentProgressions maps each color to its rent values indexed by group size
// (1-based, clamped to table length).
var rentProgressions = map[Color][]int{
	ColorRed:    {1, 2, 3, 6},
	ColorBlue:   {1, 2, 4},
	ColorGreen:  {1, 2},
	ColorYellow: {1, 2, 4},
}

var defaultRentProgression = []int{1, 2}

// RentProgression returns the rent table for a color. The returned slice must
// not be modified.
func RentProgression(color Color) []int {
	if table, ok := rentProgressions[color]; ok {
		return table
	}
	return defaultRentProgression
}

var cardsByID = func() map[string]Card {
	index := make(map[string]Card, len(allCards))
	for _, card := range allCards {
		index[card.ID] = card
	}
	return index
}()

// ByID looks up a catalog entry by card id.
func ByID(id string) (Card, bool) {
	card, ok := cardsByID[id]
	return card, ok
}

// All returns a copy of the full catalog in definition order.
func All() []Card {
	cards := make([]Card, len(allCards))
	copy(cards, allCards)
	return cards
}

// Size returns the number of distinct catalog entries.
func Size() int {
	return len(allCards)
}
