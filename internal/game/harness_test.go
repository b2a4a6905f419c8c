package game

import (
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"

	"github.com/syriandeal/deal-server-go/internal/catalog"
	"github.com/syriandeal/deal-server-go/internal/deck"
)

// testHarness sets up an initialized game and exposes the internal state for
// direct manipulation in scenario tests.
type testHarness struct {
	t      *testing.T
	engine *Engine
	gameID string
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()
	engine := NewEngine(zaptest.NewLogger(t))
	gameID := "test-" + t.Name()
	if err := engine.InitializeGame(gameID); err != nil {
		t.Fatalf("failed to initialize game: %v", err)
	}
	return &testHarness{t: t, engine: engine, gameID: gameID}
}

func (h *testHarness) state() *gameState {
	h.t.Helper()
	gs, err := h.engine.game(h.gameID)
	if err != nil {
		h.t.Fatalf("game not found: %v", err)
	}
	return gs
}

func (h *testHarness) human() *playerState {
	return h.state().players[0]
}

func (h *testHarness) bot() *playerState {
	return h.state().players[1]
}

// cardOf builds a fresh instance of a catalog entry.
func cardOf(t *testing.T, cardID string) deck.Card {
	t.Helper()
	def, ok := catalog.ByID(cardID)
	if !ok {
		t.Fatalf("unknown catalog id %q", cardID)
	}
	return deck.Card{InstanceID: uuid.NewString(), Def: def}
}

// cardsOf builds instances for a list of catalog ids.
func cardsOf(t *testing.T, cardIDs ...string) []deck.Card {
	t.Helper()
	cards := make([]deck.Card, 0, len(cardIDs))
	for _, id := range cardIDs {
		cards = append(cards, cardOf(t, id))
	}
	return cards
}

// assignedWild builds a wild property instance already assigned to a color.
func assignedWild(t *testing.T, cardID string, color catalog.Color) deck.Card {
	t.Helper()
	card := cardOf(t, cardID)
	card.AssignedColor = color
	return card
}

func (h *testHarness) setHand(p *playerState, cards ...deck.Card) {
	gs := h.state()
	gs.mu.Lock()
	p.Hand = cards
	gs.mu.Unlock()
}

func (h *testHarness) setProperties(p *playerState, cards ...deck.Card) {
	gs := h.state()
	gs.mu.Lock()
	p.Properties = cards
	gs.mu.Unlock()
}

func (h *testHarness) setBank(p *playerState, cards ...deck.Card) {
	gs := h.state()
	gs.mu.Lock()
	p.Bank = cards
	gs.mu.Unlock()
}

func (h *testHarness) setCurrentPlayer(seat int) {
	gs := h.state()
	gs.mu.Lock()
	gs.currentPlayerIndex = seat
	gs.mu.Unlock()
}

func (h *testHarness) setTurnActions(n int) {
	gs := h.state()
	gs.mu.Lock()
	gs.turnActions = n
	gs.mu.Unlock()
}

func (h *testHarness) turnActions() int {
	gs := h.state()
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.turnActions
}

func (h *testHarness) pending() *PendingInteraction {
	gs := h.state()
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.pending
}
