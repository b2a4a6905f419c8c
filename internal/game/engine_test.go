package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/syriandeal/deal-server-go/internal/catalog"
)

func TestInitializeGameDealsFreshGame(t *testing.T) {
	h := newTestHarness(t)
	gs := h.state()

	require.Len(t, gs.players, 2)
	assert.Equal(t, HumanPlayerID, gs.players[0].ID)
	assert.Equal(t, BotPlayerID, gs.players[1].ID)
	assert.False(t, gs.players[0].IsBot)
	assert.True(t, gs.players[1].IsBot)

	assert.Len(t, gs.players[0].Hand, 5)
	assert.Len(t, gs.players[1].Hand, 5)
	assert.Len(t, gs.deck, 2*catalog.Size()-10)
	assert.Empty(t, gs.discardPile)
	assert.Equal(t, PhasePlaying, gs.phase)
	assert.Equal(t, 3, gs.turnActions)
	assert.Equal(t, 0, gs.currentPlayerIndex)
}

func TestInitializeGameRejectsActiveDuplicate(t *testing.T) {
	h := newTestHarness(t)

	err := h.engine.InitializeGame(h.gameID)
	require.Error(t, err)
}

func TestInitializeGameResetsEndedGame(t *testing.T) {
	h := newTestHarness(t)

	gs := h.state()
	gs.mu.Lock()
	gs.phase = PhaseEnded
	gs.winnerID = BotPlayerID
	gs.mu.Unlock()

	require.NoError(t, h.engine.InitializeGame(h.gameID))

	fresh := h.state()
	assert.Equal(t, PhasePlaying, fresh.phase)
	assert.Empty(t, fresh.winnerID)
	assert.Len(t, fresh.players[0].Hand, 5)
}

func TestInitializeGameRequiresID(t *testing.T) {
	engine := NewEngine(zaptest.NewLogger(t))
	require.Error(t, engine.InitializeGame(""))
}

func TestUnknownGameID(t *testing.T) {
	engine := NewEngine(zaptest.NewLogger(t))

	_, err := engine.PlayCard("missing", HumanPlayerID, "old-damascus", catalog.ColorNone)
	require.Error(t, err)

	_, err = engine.EndTurn("missing")
	require.Error(t, err)

	_, err = engine.GameView("missing", "")
	require.Error(t, err)
}

func TestDrawCards(t *testing.T) {
	h := newTestHarness(t)
	human := h.human()
	before := len(h.state().deck)

	res, err := h.engine.DrawCards(h.gameID, HumanPlayerID, 2)
	require.NoError(t, err)
	assert.True(t, res.Applied())
	assert.Len(t, human.Hand, 7)
	assert.Len(t, h.state().deck, before-2)
	// Drawing consumes no action.
	assert.Equal(t, 3, h.turnActions())
}

func TestDrawCardsGuards(t *testing.T) {
	h := newTestHarness(t)

	res, err := h.engine.DrawCards(h.gameID, "nobody", 2)
	require.NoError(t, err)
	assert.True(t, res.Rejected())

	res, err = h.engine.DrawCards(h.gameID, HumanPlayerID, 0)
	require.NoError(t, err)
	assert.True(t, res.Rejected())

	// Deck too small: nothing moves.
	gs := h.state()
	gs.mu.Lock()
	gs.deck = gs.deck[:1]
	gs.mu.Unlock()
	handBefore := len(h.human().Hand)

	res, err = h.engine.DrawCards(h.gameID, HumanPlayerID, 2)
	require.NoError(t, err)
	assert.True(t, res.Rejected())
	assert.Len(t, h.human().Hand, handBefore)
}

func TestPlayCardGuards(t *testing.T) {
	h := newTestHarness(t)
	h.setHand(h.human(), cardsOf(t, "old-damascus")...)

	res, err := h.engine.PlayCard(h.gameID, "nobody", "old-damascus", catalog.ColorNone)
	require.NoError(t, err)
	assert.True(t, res.Rejected())

	res, err = h.engine.PlayCard(h.gameID, HumanPlayerID, "not-a-card", catalog.ColorNone)
	require.NoError(t, err)
	assert.True(t, res.Rejected())

	h.setTurnActions(0)
	res, err = h.engine.PlayCard(h.gameID, HumanPlayerID, "old-damascus", catalog.ColorNone)
	require.NoError(t, err)
	assert.True(t, res.Rejected())
	assert.Len(t, h.human().Hand, 1)
	assert.Equal(t, 0, h.turnActions())
}

func TestPlayPropertyCard(t *testing.T) {
	h := newTestHarness(t)
	human := h.human()
	h.setHand(human, cardsOf(t, "old-damascus", "money-3")...)

	res, err := h.engine.PlayCard(h.gameID, HumanPlayerID, "old-damascus", catalog.ColorNone)
	require.NoError(t, err)
	assert.True(t, res.Applied())

	require.Len(t, human.Properties, 1)
	assert.Equal(t, "old-damascus", human.Properties[0].ID())
	assert.Equal(t, catalog.ColorRed, human.Properties[0].Color())
	assert.Len(t, human.Hand, 1)
	assert.Equal(t, 2, h.turnActions())
}

func TestPlayMoneyCardGoesToBank(t *testing.T) {
	h := newTestHarness(t)
	human := h.human()
	h.setHand(human, cardsOf(t, "money-5", "gold-souk")...)

	res, err := h.engine.PlayCard(h.gameID, HumanPlayerID, "money-5", catalog.ColorNone)
	require.NoError(t, err)
	assert.True(t, res.Applied())

	require.Len(t, human.Bank, 1)
	assert.Equal(t, 5, human.bankValue())
	assert.Empty(t, h.state().discardPile)
	assert.Equal(t, 2, h.turnActions())
}

func TestBankCardAcceptsAnyCard(t *testing.T) {
	h := newTestHarness(t)
	human := h.human()
	h.setHand(human, cardsOf(t, "rent-red-yellow", "old-damascus")...)

	res, err := h.engine.BankCard(h.gameID, HumanPlayerID, "rent-red-yellow")
	require.NoError(t, err)
	assert.True(t, res.Applied())

	require.Len(t, human.Bank, 1)
	assert.Equal(t, "rent-red-yellow", human.Bank[0].ID())
	assert.Equal(t, 1, human.bankValue())
	assert.Equal(t, 2, h.turnActions())

	res, err = h.engine.BankCard(h.gameID, HumanPlayerID, "not-held")
	require.NoError(t, err)
	assert.True(t, res.Rejected())
}

func TestEndTurnRotatesAndAutoDraws(t *testing.T) {
	h := newTestHarness(t)
	bot := h.bot()
	botHand := len(bot.Hand)
	deckBefore := len(h.state().deck)

	res, err := h.engine.EndTurn(h.gameID)
	require.NoError(t, err)
	assert.True(t, res.Applied())

	gs := h.state()
	assert.Equal(t, 1, gs.currentPlayerIndex)
	assert.Equal(t, 3, gs.turnActions)
	assert.Len(t, bot.Hand, botHand+2)
	assert.Len(t, gs.deck, deckBefore-2)
}

func TestEndTurnSkipsAutoDrawOnShortDeck(t *testing.T) {
	h := newTestHarness(t)
	gs := h.state()
	gs.mu.Lock()
	gs.deck = gs.deck[:1]
	gs.mu.Unlock()
	botHand := len(h.bot().Hand)

	res, err := h.engine.EndTurn(h.gameID)
	require.NoError(t, err)
	assert.True(t, res.Applied())

	// Strictly no partial draw.
	assert.Len(t, h.bot().Hand, botHand)
	assert.Len(t, h.state().deck, 1)
}

func TestEndTurnDetectsWin(t *testing.T) {
	h := newTestHarness(t)
	human := h.human()
	h.setProperties(human, cardsOf(t,
		"krak-des-chevaliers", "straight-street", // green: complete
		"aleppo-citadel", "umayyad-mosque", "mari-ruins", // blue: complete
		"palmyra", "dead-cities", "saladin-castle", // yellow: complete
	)...)

	res, err := h.engine.EndTurn(h.gameID)
	require.NoError(t, err)
	assert.True(t, res.Applied())

	gs := h.state()
	assert.Equal(t, PhaseEnded, gs.phase)
	assert.Equal(t, HumanPlayerID, gs.winnerID)

	// An ended game refuses further commands.
	playRes, err := h.engine.EndTurn(h.gameID)
	require.NoError(t, err)
	assert.True(t, playRes.Rejected())
}

func TestEndTurnWithTwoSetsContinues(t *testing.T) {
	h := newTestHarness(t)
	h.setProperties(h.human(), cardsOf(t,
		"krak-des-chevaliers", "straight-street",
		"aleppo-citadel", "umayyad-mosque", "mari-ruins",
	)...)

	res, err := h.engine.EndTurn(h.gameID)
	require.NoError(t, err)
	assert.True(t, res.Applied())
	assert.Equal(t, PhasePlaying, h.state().phase)
}

func TestGameViewHidesOtherHands(t *testing.T) {
	h := newTestHarness(t)

	view, err := h.engine.GameView(h.gameID, HumanPlayerID)
	require.NoError(t, err)

	require.Len(t, view.Players, 2)
	assert.Len(t, view.Players[0].Hand, 5)
	assert.Equal(t, 5, view.Players[1].HandCount)
	assert.Empty(t, view.Players[1].Hand)

	omniscient, err := h.engine.GameView(h.gameID, "")
	require.NoError(t, err)
	assert.Len(t, omniscient.Players[1].Hand, 5)
}

func TestGameViewReportsPending(t *testing.T) {
	h := newTestHarness(t)
	h.setHand(h.human(), cardsOf(t, "wild-damascus-falcon-1")...)

	_, err := h.engine.PlayCard(h.gameID, HumanPlayerID, "wild-damascus-falcon-1", catalog.ColorNone)
	require.NoError(t, err)

	view, err := h.engine.GameView(h.gameID, HumanPlayerID)
	require.NoError(t, err)
	require.NotNil(t, view.Pending)
	assert.Equal(t, "WILD_COLOR", view.Pending.Kind)
	assert.Equal(t, "wild-damascus-falcon-1", view.Pending.CardID)
}
