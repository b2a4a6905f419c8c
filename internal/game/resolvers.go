package game

import (
	"github.com/syriandeal/deal-server-go/internal/catalog"
)

// SelectWildCardColor completes a suspended wild property play with the
// chosen color. This is the only path by which a colorless wild leaves the
// hand.
func (e *Engine) SelectWildCardColor(gameID string, color catalog.Color) (Result, error) {
	gs, err := e.game(gameID)
	if err != nil {
		return Result{}, err
	}

	gs.mu.Lock()
	res, note := e.selectWildCardColorLocked(gs, color)
	gs.mu.Unlock()

	e.emitIfPresent(note)
	return res, nil
}

func (e *Engine) selectWildCardColorLocked(gs *gameState, color catalog.Color) (Result, *GameNotification) {
	if gs.pending == nil || gs.pending.Kind != PendingWildColor {
		return rejected("no pending wild card"), nil
	}
	if color == catalog.ColorNone || color == catalog.ColorWild {
		return rejected("a concrete color is required"), nil
	}
	pending := gs.pending
	return e.playCardLocked(gs, pending.PlayerID, pending.CardID, color)
}

// CancelWildCard abandons a pending wild color choice. The card never left
// the hand and no action is consumed.
func (e *Engine) CancelWildCard(gameID string) (Result, error) {
	gs, err := e.game(gameID)
	if err != nil {
		return Result{}, err
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.pending == nil || gs.pending.Kind != PendingWildColor {
		return rejected("no pending wild card"), nil
	}
	gs.pending = nil
	return resultApplied, nil
}

// CancelAction abandons any pending action choice (steal, trade, rent, or
// color reassignment) with no other state change.
func (e *Engine) CancelAction(gameID string) (Result, error) {
	gs, err := e.game(gameID)
	if err != nil {
		return Result{}, err
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.pending == nil || gs.pending.Kind == PendingWildColor {
		return rejected("no pending action"), nil
	}
	gs.pending = nil
	return resultApplied, nil
}

// SelectStealTarget resolves a pending steal: the named card moves from the
// opponent's properties to the acting player's, the steal card is spent, and
// one action is consumed. A stale target id still spends the card.
func (e *Engine) SelectStealTarget(gameID, targetCardID string) (Result, error) {
	gs, err := e.game(gameID)
	if err != nil {
		return Result{}, err
	}

	gs.mu.Lock()
	res, note := e.selectStealTargetLocked(gs, targetCardID)
	gs.mu.Unlock()

	e.emitIfPresent(note)
	return res, nil
}

func (e *Engine) selectStealTargetLocked(gs *gameState, targetCardID string) (Result, *GameNotification) {
	if gs.pending == nil || gs.pending.Kind != PendingSteal {
		return rejected("no pending steal"), nil
	}
	// The budget can have been spent on other cards while the choice was
	// outstanding.
	if gs.turnActions <= 0 {
		return rejected("no actions remaining"), nil
	}
	player, seat := gs.playerByID(gs.pending.PlayerID)
	if player == nil {
		gs.pending = nil
		return rejected("acting player not found"), nil
	}
	opponent := gs.opponentOf(seat)

	if idx := opponent.propertyIndex(targetCardID); idx >= 0 {
		stolen := opponent.removePropertyAt(idx)
		player.Properties = append(player.Properties, stolen)
	}

	note := e.finishPendingActionLocked(gs, player)
	gs.pending = nil
	return resultApplied, note
}

// SelectRentColor resolves a pending rent collection: the acting player's
// group for the chosen color sets the rent, which the opponent pays
// bank-first into the acting player's bank.
func (e *Engine) SelectRentColor(gameID string, color catalog.Color) (Result, error) {
	gs, err := e.game(gameID)
	if err != nil {
		return Result{}, err
	}

	gs.mu.Lock()
	res, note := e.selectRentColorLocked(gs, color)
	gs.mu.Unlock()

	e.emitIfPresent(note)
	return res, nil
}

func (e *Engine) selectRentColorLocked(gs *gameState, color catalog.Color) (Result, *GameNotification) {
	if gs.pending == nil || gs.pending.Kind != PendingRent {
		return rejected("no pending rent"), nil
	}
	if gs.turnActions <= 0 {
		return rejected("no actions remaining"), nil
	}
	available := false
	for _, c := range gs.pending.AvailableColors {
		if c == color {
			available = true
			break
		}
	}
	if !available {
		return rejected("color not covered by rent card"), nil
	}
	player, seat := gs.playerByID(gs.pending.PlayerID)
	if player == nil {
		gs.pending = nil
		return rejected("acting player not found"), nil
	}
	opponent := gs.opponentOf(seat)

	owed := Rent(propertyGroupSize(player, color), color)
	collectPayment(opponent, player, owed)

	note := e.finishPendingActionLocked(gs, player)
	gs.pending = nil
	return resultApplied, note
}

// finishPendingActionLocked completes the bookkeeping a suspension deferred:
// the source card moves from hand to the discard pile and the action is
// consumed.
func (e *Engine) finishPendingActionLocked(gs *gameState, player *playerState) *GameNotification {
	var note *GameNotification
	if idx := player.handIndex(gs.pending.CardID); idx >= 0 {
		card := player.removeHandAt(idx)
		gs.discardPile = append(gs.discardPile, card)
		note = cardPlayedNote(gs.gameID, player, card, "played")
	}
	gs.turnActions--
	return note
}

// ChangeWildCardColor starts a color reassignment for one of the current
// player's already-assigned wild properties. The choice arrives through
// SelectNewColor and consumes one action.
func (e *Engine) ChangeWildCardColor(gameID, cardID string) (Result, error) {
	gs, err := e.game(gameID)
	if err != nil {
		return Result{}, err
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.phase != PhasePlaying {
		return rejected("game is not in progress"), nil
	}
	if gs.turnActions <= 0 {
		return rejected("no actions remaining"), nil
	}
	player := gs.currentPlayer()
	for _, card := range player.Properties {
		if card.ID() != cardID || !card.Def.Wild || card.AssignedColor == catalog.ColorNone {
			continue
		}
		gs.pending = &PendingInteraction{
			Kind:         PendingColorReassign,
			PlayerID:     player.ID,
			CardID:       cardID,
			InstanceID:   card.InstanceID,
			CurrentColor: card.AssignedColor,
		}
		return resultSuspended, nil
	}
	return rejected("no color-assigned wild property with that id"), nil
}

// SelectNewColor completes a pending color reassignment. Reassignment
// consumes one action.
func (e *Engine) SelectNewColor(gameID string, color catalog.Color) (Result, error) {
	gs, err := e.game(gameID)
	if err != nil {
		return Result{}, err
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.pending == nil || gs.pending.Kind != PendingColorReassign {
		return rejected("no pending color reassignment"), nil
	}
	if color == catalog.ColorNone || color == catalog.ColorWild {
		return rejected("a concrete color is required"), nil
	}
	if gs.turnActions <= 0 {
		return rejected("no actions remaining"), nil
	}
	player, _ := gs.playerByID(gs.pending.PlayerID)
	if player == nil || player != gs.currentPlayer() {
		gs.pending = nil
		return rejected("only the current player can reassign"), nil
	}

	for i := range player.Properties {
		if player.Properties[i].InstanceID != gs.pending.InstanceID {
			continue
		}
		player.Properties[i].AssignedColor = color
		gs.pending = nil
		gs.turnActions--
		return resultApplied, nil
	}

	gs.pending = nil
	return rejected("wild property no longer present"), nil
}
