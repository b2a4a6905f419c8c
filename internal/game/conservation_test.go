package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syriandeal/deal-server-go/internal/catalog"
	"github.com/syriandeal/deal-server-go/internal/deck"
)

// instanceSet snapshots every card instance across all zones of a game.
func instanceSet(gs *gameState) map[string]bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	ids := make(map[string]bool)
	add := func(cards []deck.Card) {
		for _, c := range cards {
			ids[c.InstanceID] = true
		}
	}
	add(gs.deck)
	add(gs.discardPile)
	for _, p := range gs.players {
		add(p.Hand)
		add(p.Properties)
		add(p.Bank)
	}
	return ids
}

// TestRandomPlaythroughConservesCards hammers the engine with arbitrary
// commands and checks the invariants that must hold no matter what: every
// dealt instance stays in exactly one zone, and the action budget never goes
// negative.
func TestRandomPlaythroughConservesCards(t *testing.T) {
	h := newTestHarness(t)
	gs := h.state()

	initial := instanceSet(gs)
	require.Len(t, initial, 2*catalog.Size())

	rng := rand.New(rand.NewSource(7))
	colors := []catalog.Color{
		catalog.ColorRed, catalog.ColorBlue, catalog.ColorGreen, catalog.ColorYellow,
	}

	for step := 0; step < 400; step++ {
		gs.mu.RLock()
		phase := gs.phase
		current := gs.currentPlayer()
		playerID := current.ID
		isBot := current.IsBot
		var handID string
		if len(current.Hand) > 0 {
			handID = current.Hand[rng.Intn(len(current.Hand))].ID()
		}
		gs.mu.RUnlock()

		if phase != PhasePlaying {
			break
		}

		var err error
		if isBot {
			_, _, err = h.engine.ExecuteBotTurn(h.gameID)
		} else {
			switch rng.Intn(7) {
			case 0:
				if handID != "" {
					_, err = h.engine.PlayCard(h.gameID, playerID, handID, catalog.ColorNone)
				}
			case 1:
				if handID != "" {
					_, err = h.engine.BankCard(h.gameID, playerID, handID)
				}
			case 2:
				_, err = h.engine.SelectWildCardColor(h.gameID, colors[rng.Intn(len(colors))])
			case 3:
				_, err = h.engine.SelectRentColor(h.gameID, colors[rng.Intn(len(colors))])
			case 4:
				gs.mu.RLock()
				targetID := ""
				if gs.pending != nil && len(gs.pending.TargetCards) > 0 {
					targetID = gs.pending.TargetCards[0].ID()
				}
				gs.mu.RUnlock()
				if targetID != "" {
					_, err = h.engine.SelectStealTarget(h.gameID, targetID)
				}
			case 5:
				_, err = h.engine.CancelAction(h.gameID)
			case 6:
				_, err = h.engine.EndTurn(h.gameID)
			}
		}
		require.NoError(t, err)

		gs.mu.RLock()
		budget := gs.turnActions
		gs.mu.RUnlock()
		assert.GreaterOrEqual(t, budget, 0, "step %d", step)

		assert.Equal(t, initial, instanceSet(gs), "step %d", step)
	}
}
