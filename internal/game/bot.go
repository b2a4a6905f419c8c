package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/syriandeal/deal-server-go/internal/catalog"
	"github.com/syriandeal/deal-server-go/internal/deck"
)

// BotActionType classifies the move the bot policy picked.
type BotActionType int

const (
	BotPlayProperty BotActionType = iota
	BotPlayAction
	BotPlayMoney
	BotBankCard
	BotEndTurn
)

var botActionNames = map[BotActionType]string{
	BotPlayProperty: "PLAY_PROPERTY",
	BotPlayAction:   "PLAY_ACTION",
	BotPlayMoney:    "PLAY_MONEY",
	BotBankCard:     "BANK_CARD",
	BotEndTurn:      "END_TURN",
}

func (t BotActionType) String() string {
	if name, ok := botActionNames[t]; ok {
		return name
	}
	return fmt.Sprintf("BOT_ACTION_%d", int(t))
}

// BotAction is one decision of the bot policy.
type BotAction struct {
	Type   BotActionType
	CardID string
	// Color is the wild color choice when playing a wild property.
	Color catalog.Color
}

// chooseBotAction is the bot's pure decision policy over its own state and
// the opponent's. Priority order, first match wins: play a property, play a
// usable action card, play money to the bank, bank an unusable rent card,
// end the turn.
func chooseBotAction(bot, opponent *playerState) BotAction {
	_ = opponent // the priority policy only reads the bot's own areas

	for _, card := range bot.Hand {
		if card.Def.Category != catalog.CategoryProperty {
			continue
		}
		action := BotAction{Type: BotPlayProperty, CardID: card.ID()}
		if card.Def.Wild {
			action.Color = botWildColor(bot)
		}
		return action
	}

	for _, card := range bot.Hand {
		if card.Def.Category == catalog.CategoryAction && botCanUse(bot, card) {
			return BotAction{Type: BotPlayAction, CardID: card.ID()}
		}
	}

	for _, card := range bot.Hand {
		if card.Def.Category == catalog.CategoryMoney {
			return BotAction{Type: BotPlayMoney, CardID: card.ID()}
		}
	}

	for _, card := range bot.Hand {
		if card.Def.Category == catalog.CategoryAction && card.Def.Effect == catalog.EffectRent {
			return BotAction{Type: BotBankCard, CardID: card.ID()}
		}
	}

	return BotAction{Type: BotEndTurn}
}

// botCanUse reports whether the bot can meaningfully play an action card. A
// rent card needs at least one property in a covered color; the trade card
// has no resolver and is never usable; everything else always is.
func botCanUse(bot *playerState, card deck.Card) bool {
	switch card.Def.Effect {
	case catalog.EffectRent:
		for _, color := range card.Def.RentColors {
			if propertyGroupSize(bot, color) > 0 {
				return true
			}
		}
		return false
	case catalog.EffectTrade:
		return false
	}
	return true
}

// botWildColor picks the color a wild should be assigned to: the largest
// still-incomplete group, ties and the empty board falling back to the
// canonical color order.
func botWildColor(bot *playerState) catalog.Color {
	best := catalog.CanonicalColors[0]
	bestSize := -1
	for _, color := range catalog.CanonicalColors {
		size := propertyGroupSize(bot, color)
		if size >= catalog.SetSize(color) {
			continue
		}
		if size > bestSize {
			best, bestSize = color, size
		}
	}
	return best
}

// botStealTarget picks the highest-value steal candidate, ties keeping the
// earliest.
func botStealTarget(candidates []deck.Card) deck.Card {
	best := candidates[0]
	for _, card := range candidates[1:] {
		if card.Def.Value > best.Def.Value {
			best = card
		}
	}
	return best
}

// ExecuteBotTurn drives the bot policy one step: it executes exactly one
// bot action, resolving on the bot's behalf any choice the action suspends
// on. When the policy signals end-turn or the budget is exhausted, the turn
// ends and the returned action is BotEndTurn.
func (e *Engine) ExecuteBotTurn(gameID string) (BotAction, Result, error) {
	gs, err := e.game(gameID)
	if err != nil {
		return BotAction{}, Result{}, err
	}

	gs.mu.Lock()
	action, res, notes := e.executeBotStepLocked(gs)
	gs.mu.Unlock()

	for _, note := range notes {
		e.emitNotification(note)
	}
	return action, res, nil
}

func (e *Engine) executeBotStepLocked(gs *gameState) (BotAction, Result, []GameNotification) {
	if gs.phase != PhasePlaying {
		return BotAction{}, rejected("game is not in progress"), nil
	}
	bot := gs.currentPlayer()
	if !bot.IsBot {
		return BotAction{}, rejected("not the bot's turn"), nil
	}
	opponent := gs.opponentOf(gs.currentPlayerIndex)

	var notes []GameNotification

	if gs.turnActions <= 0 {
		res, note := e.endTurnLocked(gs)
		if note != nil {
			notes = append(notes, *note)
		}
		return BotAction{Type: BotEndTurn}, res, notes
	}

	action := chooseBotAction(bot, opponent)

	var res Result
	switch action.Type {
	case BotEndTurn:
		var note *GameNotification
		res, note = e.endTurnLocked(gs)
		notes = append(notes, e.botNote(gs, "Abu Fadi ended the turn", "البوت أنهى دوره"))
		if note != nil {
			notes = append(notes, *note)
		}
		return action, res, notes

	case BotBankCard:
		res, _ = e.bankCardLocked(gs, bot.ID, action.CardID)

	default:
		res, _ = e.playCardLocked(gs, bot.ID, action.CardID, action.Color)
		if res.Suspended() {
			res = e.resolveBotPendingLocked(gs)
		}
	}

	if card, ok := catalog.ByID(action.CardID); ok {
		notes = append(notes, e.botNote(gs,
			fmt.Sprintf("Abu Fadi played: %s", card.Title),
			card.TitleArabic,
		))
	}

	if e.logger != nil {
		e.logger.Debug("bot action",
			zap.String("game_id", gs.gameID),
			zap.String("action", action.Type.String()),
			zap.String("card_id", action.CardID),
			zap.String("outcome", res.Outcome.String()),
		)
	}
	return action, res, notes
}

// resolveBotPendingLocked supplies the bot's own answer to a choice one of
// its cards suspended on.
func (e *Engine) resolveBotPendingLocked(gs *gameState) Result {
	if gs.pending == nil {
		return resultApplied
	}
	switch gs.pending.Kind {
	case PendingSteal:
		target := botStealTarget(gs.pending.TargetCards)
		res, _ := e.selectStealTargetLocked(gs, target.ID())
		return res
	case PendingWildColor:
		bot, _ := gs.playerByID(gs.pending.PlayerID)
		res, _ := e.selectWildCardColorLocked(gs, botWildColor(bot))
		return res
	}
	// Nothing the bot can answer; abandon the choice.
	gs.pending = nil
	return resultApplied
}

func (e *Engine) botNote(gs *gameState, title, description string) GameNotification {
	return GameNotification{
		Type:        NotifyBotAction,
		GameID:      gs.gameID,
		PlayerID:    BotPlayerID,
		Title:       title,
		Description: description,
		Timestamp:   time.Now(),
	}
}

// RunBotTurn drives the bot turn to completion without pacing delays,
// ending the turn when the policy signals end-turn or the budget runs out.
func (e *Engine) RunBotTurn(gameID string) error {
	// The budget can grow mid-turn via extra-turn cards; the cap only guards
	// against a stuck policy.
	for i := 0; i < 64; i++ {
		action, res, err := e.ExecuteBotTurn(gameID)
		if err != nil {
			return err
		}
		if action.Type == BotEndTurn || res.Rejected() {
			return nil
		}
	}
	return fmt.Errorf("bot turn did not converge for game %s", gameID)
}
