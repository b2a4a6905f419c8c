package game

import (
	"fmt"
	"time"

	"github.com/syriandeal/deal-server-go/internal/deck"
)

// Notification types emitted by the engine. These are fire-and-forget
// observability for a presentation layer, not part of game state.
const (
	NotifyGameStart  = "GAME_START"
	NotifyCardPlayed = "CARD_PLAYED"
	NotifyBotAction  = "BOT_ACTION"
	NotifyGameOver   = "GAME_OVER"
)

// GameNotification is a human-readable (title, description) event.
type GameNotification struct {
	Type        string    `json:"type"`
	GameID      string    `json:"game_id"`
	PlayerID    string    `json:"player_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// NotificationHandler receives engine notifications. Handlers run on their
// own goroutine and may call back into the engine.
type NotificationHandler func(notification GameNotification)

// SetNotificationHandler registers the handler for engine notifications.
func (e *Engine) SetNotificationHandler(handler NotificationHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notificationHandler = handler
}

func (e *Engine) emitNotification(notification GameNotification) {
	e.mu.RLock()
	handler := e.notificationHandler
	e.mu.RUnlock()

	if handler != nil {
		go handler(notification)
	}
}

func (e *Engine) emitIfPresent(notification *GameNotification) {
	if notification != nil {
		e.emitNotification(*notification)
	}
}

func cardPlayedNote(gameID string, player *playerState, card deck.Card, verb string) *GameNotification {
	description := card.Def.TitleArabic
	if description == "" {
		description = card.Def.Description
	}
	return &GameNotification{
		Type:        NotifyCardPlayed,
		GameID:      gameID,
		PlayerID:    player.ID,
		Title:       fmt.Sprintf("%s %s %s", player.Name, verb, card.Def.Title),
		Description: description,
		Timestamp:   time.Now(),
	}
}
