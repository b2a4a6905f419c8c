package game

import (
	"time"

	"github.com/syriandeal/deal-server-go/internal/catalog"
	"github.com/syriandeal/deal-server-go/internal/deck"
)

// CardView is the render-ready projection of one card instance, carrying the
// catalog display fields so a front end needs no separate catalog fetch.
type CardView struct {
	ID            string   `json:"id"`
	InstanceID    string   `json:"instance_id"`
	Category      string   `json:"category"`
	Title         string   `json:"title"`
	TitleArabic   string   `json:"title_arabic,omitempty"`
	Description   string   `json:"description,omitempty"`
	Icon          string   `json:"icon,omitempty"`
	Value         int      `json:"value"`
	Color         string   `json:"color,omitempty"`
	AssignedColor string   `json:"assigned_color,omitempty"`
	SetSize       int      `json:"set_size,omitempty"`
	Wild          bool     `json:"wild,omitempty"`
	RentColors    []string `json:"rent_colors,omitempty"`
}

// PlayerView is a player's public state plus, for the requesting player,
// their hand.
type PlayerView struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	NameArabic    string     `json:"name_arabic,omitempty"`
	IsBot         bool       `json:"is_bot"`
	HandCount     int        `json:"hand_count"`
	Hand          []CardView `json:"hand,omitempty"`
	Properties    []CardView `json:"properties"`
	Bank          []CardView `json:"bank"`
	BankValue     int        `json:"bank_value"`
	CompletedSets int        `json:"completed_sets"`
}

// PendingView describes the outstanding interactive choice, if any.
type PendingView struct {
	Kind            string     `json:"kind"`
	PlayerID        string     `json:"player_id"`
	CardID          string     `json:"card_id"`
	TargetCards     []CardView `json:"target_cards,omitempty"`
	AvailableColors []string   `json:"available_colors,omitempty"`
	CurrentColor    string     `json:"current_color,omitempty"`
}

// GameView is a read-only snapshot of a game for rendering.
type GameView struct {
	GameID          string       `json:"game_id"`
	Phase           string       `json:"phase"`
	CurrentPlayerID string       `json:"current_player_id"`
	TurnActions     int          `json:"turn_actions"`
	TurnCount       int          `json:"turn_count"`
	DeckCount       int          `json:"deck_count"`
	DiscardCount    int          `json:"discard_count"`
	WinnerID        string       `json:"winner_id,omitempty"`
	Players         []PlayerView `json:"players"`
	Pending         *PendingView `json:"pending,omitempty"`
	StartedAt       time.Time    `json:"started_at"`
}

// GameView builds a snapshot for the requesting player. Other players' hands
// are reduced to a count; an empty requesting id yields an omniscient view.
func (e *Engine) GameView(gameID, requestingPlayerID string) (GameView, error) {
	gs, err := e.game(gameID)
	if err != nil {
		return GameView{}, err
	}

	gs.mu.RLock()
	defer gs.mu.RUnlock()

	view := GameView{
		GameID:          gs.gameID,
		Phase:           gs.phase.String(),
		CurrentPlayerID: gs.currentPlayer().ID,
		TurnActions:     gs.turnActions,
		TurnCount:       gs.turnCount,
		DeckCount:       len(gs.deck),
		DiscardCount:    len(gs.discardPile),
		WinnerID:        gs.winnerID,
		Players:         make([]PlayerView, 0, len(gs.players)),
		StartedAt:       gs.startedAt,
	}

	for _, p := range gs.players {
		pv := PlayerView{
			ID:            p.ID,
			Name:          p.Name,
			NameArabic:    p.NameArabic,
			IsBot:         p.IsBot,
			HandCount:     len(p.Hand),
			Properties:    buildCardViews(p.Properties),
			Bank:          buildCardViews(p.Bank),
			BankValue:     p.bankValue(),
			CompletedSets: CompletedSets(p.Properties),
		}
		if requestingPlayerID == "" || requestingPlayerID == p.ID {
			pv.Hand = buildCardViews(p.Hand)
		}
		view.Players = append(view.Players, pv)
	}

	if gs.pending != nil {
		view.Pending = &PendingView{
			Kind:            gs.pending.Kind.String(),
			PlayerID:        gs.pending.PlayerID,
			CardID:          gs.pending.CardID,
			TargetCards:     buildCardViews(gs.pending.TargetCards),
			AvailableColors: colorStrings(gs.pending.AvailableColors),
			CurrentColor:    string(gs.pending.CurrentColor),
		}
	}

	return view, nil
}

func buildCardViews(cards []deck.Card) []CardView {
	views := make([]CardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, CardView{
			ID:            c.ID(),
			InstanceID:    c.InstanceID,
			Category:      c.Def.Category.String(),
			Title:         c.Def.Title,
			TitleArabic:   c.Def.TitleArabic,
			Description:   c.Def.Description,
			Icon:          c.Def.Icon,
			Value:         c.Def.Value,
			Color:         string(c.Def.Color),
			AssignedColor: string(c.AssignedColor),
			SetSize:       c.Def.SetSize,
			Wild:          c.Def.Wild,
			RentColors:    colorStrings(c.Def.RentColors),
		})
	}
	return views
}

func colorStrings(colors []catalog.Color) []string {
	if len(colors) == 0 {
		return nil
	}
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = string(c)
	}
	return out
}
