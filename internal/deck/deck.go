package deck

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/syriandeal/deal-server-go/internal/catalog"
)

// Card is a single dealt instance of a catalog entry. The catalog id is the
// rule-level identity; the instance id distinguishes the two copies of each
// entry in a doubled deck.
type Card struct {
	InstanceID    string
	Def           catalog.Card
	AssignedColor catalog.Color
}

// Color returns the effective color of the card: the assigned color for a
// wild that has been played, otherwise the printed color.
func (c Card) Color() catalog.Color {
	if c.AssignedColor != catalog.ColorNone {
		return c.AssignedColor
	}
	return c.Def.Color
}

// ID returns the catalog id of the card.
func (c Card) ID() string {
	return c.Def.ID
}

// New builds an unshuffled play deck: two copies of the full catalog, each
// instance tagged with a fresh uuid.
func New() []Card {
	defs := catalog.All()
	cards := make([]Card, 0, 2*len(defs))
	for copyIdx := 0; copyIdx < 2; copyIdx++ {
		for _, def := range defs {
			cards = append(cards, Card{
				InstanceID: uuid.NewString(),
				Def:        def,
			})
		}
	}
	return cards
}

// Shuffle permutes cards in place using an unbiased Fisher-Yates walk.
func Shuffle(cards []Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Deal removes count cards from the front of the deck and returns them with
// the remaining deck. If the deck holds fewer than count cards, nothing is
// dealt.
func Deal(cards []Card, count int) (hand, rest []Card) {
	if count < 0 || len(cards) < count {
		return nil, cards
	}
	hand = make([]Card, count)
	copy(hand, cards[:count])
	return hand, cards[count:]
}
