package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/syriandeal/deal-server-go/internal/deck"
)

// Fixed rules of the game. These are not configurable.
const (
	startingHandSize = 5
	turnActionBudget = 3
	autoDrawCount    = 2
	winningSetCount  = 3
)

// Player ids are fixed: one human seat, one bot seat.
const (
	HumanPlayerID = "human"
	BotPlayerID   = "bot"
)

const (
	botName       = "Abu Fadi"
	botNameArabic = "أبو فادي"
)

// Engine owns all game states and applies every legal move. Commands follow
// a guard-clause policy: precondition failures leave the state unchanged and
// report OutcomeRejected instead of returning an error. Errors are reserved
// for engine-level problems such as unknown game ids.
type Engine struct {
	logger *zap.Logger

	mu    sync.RWMutex
	games map[string]*gameState

	notificationHandler NotificationHandler
}

// NewEngine creates a new game engine.
func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{
		logger: logger,
		games:  make(map[string]*gameState),
	}
}

// NewGameID returns a fresh unique game id for callers that do not supply
// their own.
func NewGameID() string {
	return uuid.NewString()
}

func (e *Engine) game(gameID string) (*gameState, error) {
	e.mu.RLock()
	gs, ok := e.games[gameID]
	e.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("game %s not found", gameID)
	}
	return gs, nil
}

// InitializeGame creates a fresh two-player game: a doubled, shuffled deck,
// five cards to the human, five to the bot, and the human to act first. An
// ended game with the same id is replaced (full reset); an in-progress game
// is not.
func (e *Engine) InitializeGame(gameID string) error {
	if gameID == "" {
		return fmt.Errorf("gameID is required")
	}

	e.mu.Lock()
	if existing, ok := e.games[gameID]; ok {
		existing.mu.RLock()
		phase := existing.phase
		existing.mu.RUnlock()
		if phase != PhaseEnded {
			e.mu.Unlock()
			return fmt.Errorf("game %s already exists", gameID)
		}
	}

	cards := deck.New()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	deck.Shuffle(cards, rng)

	human := &playerState{
		ID:         HumanPlayerID,
		Name:       "You",
		NameArabic: "أنت",
	}
	bot := &playerState{
		ID:         BotPlayerID,
		Name:       botName,
		NameArabic: botNameArabic,
		IsBot:      true,
	}
	human.Hand, cards = deck.Deal(cards, startingHandSize)
	bot.Hand, cards = deck.Deal(cards, startingHandSize)

	e.games[gameID] = &gameState{
		gameID:      gameID,
		players:     []*playerState{human, bot},
		deck:        cards,
		discardPile: make([]deck.Card, 0, len(cards)),
		phase:       PhasePlaying,
		turnActions: turnActionBudget,
		startedAt:   time.Now(),
	}
	e.mu.Unlock()

	if e.logger != nil {
		e.logger.Info("game initialized",
			zap.String("game_id", gameID),
			zap.Int("deck_size", len(cards)),
		)
	}

	e.emitNotification(GameNotification{
		Type:        NotifyGameStart,
		GameID:      gameID,
		Title:       "يلا نبدأ! Let's Start!",
		Description: "Game started against Abu Fadi! Good luck! 🌹",
		Timestamp:   time.Now(),
	})

	return nil
}

// DrawCards moves count cards from the front of the deck to the end of the
// named player's hand. It consumes no action and silently refuses when the
// player is unknown or the deck is short; callers are expected to check deck
// size first.
func (e *Engine) DrawCards(gameID, playerID string, count int) (Result, error) {
	gs, err := e.game(gameID)
	if err != nil {
		return Result{}, err
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	if count <= 0 {
		return rejected("count must be positive"), nil
	}
	player, _ := gs.playerByID(playerID)
	if player == nil {
		return rejected("player not found"), nil
	}
	if len(gs.deck) < count {
		return rejected("not enough cards in deck"), nil
	}

	var drawn []deck.Card
	drawn, gs.deck = deck.Deal(gs.deck, count)
	player.Hand = append(player.Hand, drawn...)
	return resultApplied, nil
}

// BankCard moves a card from the player's hand to their bank as spendable
// value and consumes one action. Any card may be banked, not only money.
func (e *Engine) BankCard(gameID, playerID, cardID string) (Result, error) {
	gs, err := e.game(gameID)
	if err != nil {
		return Result{}, err
	}

	gs.mu.Lock()
	res, note := e.bankCardLocked(gs, playerID, cardID)
	gs.mu.Unlock()

	e.emitIfPresent(note)
	return res, nil
}

func (e *Engine) bankCardLocked(gs *gameState, playerID, cardID string) (Result, *GameNotification) {
	if gs.phase != PhasePlaying {
		return rejected("game is not in progress"), nil
	}
	player, _ := gs.playerByID(playerID)
	if player == nil {
		return rejected("player not found"), nil
	}
	if gs.turnActions <= 0 {
		return rejected("no actions remaining"), nil
	}
	idx := player.handIndex(cardID)
	if idx < 0 {
		return rejected("card not in hand"), nil
	}

	card := player.removeHandAt(idx)
	player.Bank = append(player.Bank, card)
	gs.turnActions--

	return resultApplied, cardPlayedNote(gs.gameID, player, card, "banked")
}

// EndTurn evaluates the win condition for the player ending their turn. If
// they hold three completed sets the game ends; otherwise the turn passes,
// the action budget resets, and the new current player auto-draws two cards
// when the deck allows a full draw.
func (e *Engine) EndTurn(gameID string) (Result, error) {
	gs, err := e.game(gameID)
	if err != nil {
		return Result{}, err
	}

	gs.mu.Lock()
	res, note := e.endTurnLocked(gs)
	gs.mu.Unlock()

	e.emitIfPresent(note)
	return res, nil
}

func (e *Engine) endTurnLocked(gs *gameState) (Result, *GameNotification) {
	if gs.phase != PhasePlaying {
		return rejected("game is not in progress"), nil
	}

	// An unresolved choice is abandoned when the turn ends; it never moved
	// cards or consumed actions.
	gs.pending = nil

	ending := gs.currentPlayer()
	if CompletedSets(ending.Properties) >= winningSetCount {
		gs.phase = PhaseEnded
		gs.winnerID = ending.ID
		if e.logger != nil {
			e.logger.Info("game over",
				zap.String("game_id", gs.gameID),
				zap.String("winner", ending.ID),
				zap.Int("turns", gs.turnCount),
			)
		}
		return resultApplied, &GameNotification{
			Type:        NotifyGameOver,
			GameID:      gs.gameID,
			PlayerID:    ending.ID,
			Title:       fmt.Sprintf("%s wins!", ending.Name),
			Description: "Three completed property sets",
			Timestamp:   time.Now(),
		}
	}

	gs.currentPlayerIndex = (gs.currentPlayerIndex + 1) % len(gs.players)
	gs.turnActions = turnActionBudget
	gs.turnCount++

	// Strict: fewer than two cards means no auto-draw at all.
	if len(gs.deck) >= autoDrawCount {
		var drawn []deck.Card
		drawn, gs.deck = deck.Deal(gs.deck, autoDrawCount)
		next := gs.currentPlayer()
		next.Hand = append(next.Hand, drawn...)
	}

	return resultApplied, nil
}
