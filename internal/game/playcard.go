package game

import (
	"github.com/syriandeal/deal-server-go/internal/catalog"
	"github.com/syriandeal/deal-server-go/internal/deck"
)

// PlayCard executes the core state transition for a card in the player's
// hand. selectedColor is only meaningful for wild properties; pass
// catalog.ColorNone otherwise. Playing a wild without a color suspends the
// play on a pending color choice instead of completing it.
func (e *Engine) PlayCard(gameID, playerID, cardID string, selectedColor catalog.Color) (Result, error) {
	gs, err := e.game(gameID)
	if err != nil {
		return Result{}, err
	}

	gs.mu.Lock()
	res, note := e.playCardLocked(gs, playerID, cardID, selectedColor)
	gs.mu.Unlock()

	e.emitIfPresent(note)
	return res, nil
}

func (e *Engine) playCardLocked(gs *gameState, playerID, cardID string, selectedColor catalog.Color) (Result, *GameNotification) {
	if gs.phase != PhasePlaying {
		return rejected("game is not in progress"), nil
	}
	player, seat := gs.playerByID(playerID)
	if player == nil {
		return rejected("player not found"), nil
	}
	if gs.turnActions <= 0 {
		return rejected("no actions remaining"), nil
	}
	handIdx := player.handIndex(cardID)
	if handIdx < 0 {
		return rejected("card not in hand"), nil
	}
	card := player.Hand[handIdx]

	switch card.Def.Category {
	case catalog.CategoryProperty:
		if card.Def.Wild && selectedColor == catalog.ColorNone {
			// Genuine suspension: the card stays in hand and no action is
			// consumed until a color arrives.
			gs.pending = &PendingInteraction{
				Kind:     PendingWildColor,
				PlayerID: playerID,
				CardID:   cardID,
			}
			return resultSuspended, nil
		}
		player.removeHandAt(handIdx)
		if card.Def.Wild {
			card.AssignedColor = selectedColor
			if gs.pending != nil && gs.pending.Kind == PendingWildColor {
				gs.pending = nil
			}
		}
		player.Properties = append(player.Properties, card)
		gs.turnActions--
		return resultApplied, cardPlayedNote(gs.gameID, player, card, "played")

	case catalog.CategoryMoney:
		player.removeHandAt(handIdx)
		player.Bank = append(player.Bank, card)
		gs.turnActions--
		return resultApplied, cardPlayedNote(gs.gameID, player, card, "played")

	case catalog.CategoryAction:
		return e.applyActionLocked(gs, player, seat, handIdx)
	}

	return rejected("unknown card category"), nil
}

// applyActionLocked dispatches an action card by its effect kind. Immediate
// effects move the card to the discard pile and consume an action in the
// same call; effects that need a follow-up choice store a pending
// interaction and leave all bookkeeping to the resolver.
func (e *Engine) applyActionLocked(gs *gameState, player *playerState, seat, handIdx int) (Result, *GameNotification) {
	card := player.Hand[handIdx]
	opponent := gs.opponentOf(seat)

	discard := func() {
		player.removeHandAt(handIdx)
		gs.discardPile = append(gs.discardPile, card)
		gs.turnActions--
	}

	switch card.Def.Effect {
	case catalog.EffectExtraTurn:
		gs.turnActions += 2
		discard()
		return resultApplied, cardPlayedNote(gs.gameID, player, card, "played")

	case catalog.EffectDrawThree:
		n := 3
		if len(gs.deck) < n {
			n = len(gs.deck)
		}
		var drawn []deck.Card
		drawn, gs.deck = deck.Deal(gs.deck, n)
		player.Hand = append(player.Hand, drawn...)
		discard()
		return resultApplied, cardPlayedNote(gs.gameID, player, card, "played")

	case catalog.EffectStealProperty:
		if len(opponent.Properties) == 0 {
			// Nothing to steal: the card is still spent.
			discard()
			return resultApplied, cardPlayedNote(gs.gameID, player, card, "played")
		}
		targets := make([]deck.Card, len(opponent.Properties))
		copy(targets, opponent.Properties)
		gs.pending = &PendingInteraction{
			Kind:        PendingSteal,
			PlayerID:    player.ID,
			CardID:      card.ID(),
			TargetCards: targets,
		}
		return resultSuspended, nil

	case catalog.EffectForcedPayment:
		collectPayment(opponent, player, card.Def.EffectAmount)
		discard()
		return resultApplied, cardPlayedNote(gs.gameID, player, card, "played")

	case catalog.EffectTrade:
		// Acknowledged stub: a pending marker with no resolver. CancelAction
		// is the only way out.
		gs.pending = &PendingInteraction{
			Kind:     PendingTrade,
			PlayerID: player.ID,
			CardID:   card.ID(),
		}
		return resultSuspended, nil

	case catalog.EffectRent:
		if player.IsBot {
			if color, ok := bestRentColor(player, card.Def.RentColors); ok {
				owed := Rent(propertyGroupSize(player, color), color)
				collectPayment(opponent, player, owed)
			}
			// No covered color still spends the card.
			discard()
			return resultApplied, cardPlayedNote(gs.gameID, player, card, "played")
		}
		colors := make([]catalog.Color, len(card.Def.RentColors))
		copy(colors, card.Def.RentColors)
		gs.pending = &PendingInteraction{
			Kind:            PendingRent,
			PlayerID:        player.ID,
			CardID:          card.ID(),
			AvailableColors: colors,
		}
		return resultSuspended, nil
	}

	return rejected("action card has no effect"), nil
}

// collectPayment moves up to amount of value from the payer to the
// collector's bank, preferring bank cards over hand cards and taking cards
// greedily in container order. Cards are atomic: one that would push the
// running total past amount is skipped, never split. Returns the value
// actually collected, which is less than amount when the payer cannot cover
// it.
func collectPayment(payer, collector *playerState, amount int) int {
	if amount <= 0 {
		return 0
	}
	collected := 0
	take := func(cards []deck.Card) []deck.Card {
		remaining := cards[:0]
		for _, c := range cards {
			v := c.Def.Value
			if v > 0 && collected+v <= amount {
				collected += v
				collector.Bank = append(collector.Bank, c)
				continue
			}
			remaining = append(remaining, c)
		}
		return remaining
	}
	payer.Bank = take(payer.Bank)
	if collected < amount {
		payer.Hand = take(payer.Hand)
	}
	return collected
}

// propertyGroupSize counts the player's properties of the given color,
// including wilds assigned to it. An unassigned wild belongs to no group.
func propertyGroupSize(p *playerState, color catalog.Color) int {
	count := 0
	for _, c := range p.Properties {
		if c.Color() == color {
			count++
		}
	}
	return count
}

// bestRentColor picks, among the covered colors in order, the one whose
// property group currently yields the highest rent. Ties keep the earlier
// color. Returns false when the player holds no property in any covered
// color.
func bestRentColor(p *playerState, covered []catalog.Color) (catalog.Color, bool) {
	best := catalog.ColorNone
	bestRent := 0
	for _, color := range covered {
		size := propertyGroupSize(p, color)
		if size == 0 {
			continue
		}
		if rent := Rent(size, color); rent > bestRent {
			best, bestRent = color, rent
		}
	}
	return best, best != catalog.ColorNone
}
