package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/syriandeal/deal-server-go/internal/catalog"
	"github.com/syriandeal/deal-server-go/internal/deck"
)

// Phase represents the lifecycle phase of a game.
type Phase int

const (
	PhaseSetup Phase = iota
	PhasePlaying
	PhaseEnded
)

var phaseNames = map[Phase]string{
	PhaseSetup:   "SETUP",
	PhasePlaying: "PLAYING",
	PhaseEnded:   "ENDED",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

// PendingKind identifies which follow-up choice a suspended action is
// waiting on.
type PendingKind int

const (
	PendingWildColor PendingKind = iota
	PendingSteal
	PendingTrade
	PendingRent
	PendingColorReassign
)

var pendingKindNames = map[PendingKind]string{
	PendingWildColor:     "WILD_COLOR",
	PendingSteal:         "STEAL",
	PendingTrade:         "TRADE",
	PendingRent:          "RENT",
	PendingColorReassign: "COLOR_REASSIGN",
}

func (k PendingKind) String() string {
	if name, ok := pendingKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PENDING_%d", int(k))
}

// PendingInteraction is a suspended action awaiting a follow-up player
// choice. A game holds at most one; storing a new one replaces (and thereby
// abandons) the previous one, which is safe because suspension never moves
// cards or consumes actions.
type PendingInteraction struct {
	Kind     PendingKind
	PlayerID string
	CardID   string

	// Steal: snapshot of the opponent's properties at suspension time.
	TargetCards []deck.Card
	// Rent: colors the source card can collect on.
	AvailableColors []catalog.Color
	// Color reassignment: the exact wild instance and its current color.
	InstanceID   string
	CurrentColor catalog.Color
}

// playerState holds one player's private and public card areas.
type playerState struct {
	ID          string
	Name        string
	NameArabic  string
	IsBot       bool
	Hand        []deck.Card
	Properties  []deck.Card
	Bank        []deck.Card
}

// handIndex returns the index of the first hand card with the given catalog
// id, or -1.
func (p *playerState) handIndex(cardID string) int {
	for i, c := range p.Hand {
		if c.ID() == cardID {
			return i
		}
	}
	return -1
}

// propertyIndex returns the index of the first property with the given
// catalog id, or -1.
func (p *playerState) propertyIndex(cardID string) int {
	for i, c := range p.Properties {
		if c.ID() == cardID {
			return i
		}
	}
	return -1
}

func (p *playerState) removeHandAt(i int) deck.Card {
	card := p.Hand[i]
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	return card
}

func (p *playerState) removePropertyAt(i int) deck.Card {
	card := p.Properties[i]
	p.Properties = append(p.Properties[:i], p.Properties[i+1:]...)
	return card
}

// bankValue is the summed face value of the player's bank.
func (p *playerState) bankValue() int {
	total := 0
	for _, c := range p.Bank {
		total += c.Def.Value
	}
	return total
}

// gameState is the authoritative state of one game. All mutation happens
// through Engine entry points while holding mu.
type gameState struct {
	gameID             string
	players            []*playerState
	currentPlayerIndex int
	deck               []deck.Card
	discardPile        []deck.Card
	phase              Phase
	turnActions        int
	turnCount          int
	winnerID           string
	pending            *PendingInteraction
	startedAt          time.Time
	mu                 sync.RWMutex
}

// playerByID returns the player and its seat index, or (nil, -1).
func (gs *gameState) playerByID(playerID string) (*playerState, int) {
	for i, p := range gs.players {
		if p.ID == playerID {
			return p, i
		}
	}
	return nil, -1
}

func (gs *gameState) currentPlayer() *playerState {
	return gs.players[gs.currentPlayerIndex]
}

// opponentOf returns the other player in a two-player game.
func (gs *gameState) opponentOf(seat int) *playerState {
	return gs.players[1-seat]
}

// Outcome classifies what a command did to the game state.
type Outcome int

const (
	// OutcomeApplied means the command completed and consumed any action it
	// owed.
	OutcomeApplied Outcome = iota
	// OutcomeSuspended means the command stored a pending interaction and
	// consumed nothing.
	OutcomeSuspended
	// OutcomeRejected means a precondition failed and the state is
	// unchanged.
	OutcomeRejected
)

var outcomeNames = map[Outcome]string{
	OutcomeApplied:   "APPLIED",
	OutcomeSuspended: "SUSPENDED",
	OutcomeRejected:  "REJECTED",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("OUTCOME_%d", int(o))
}

// Result is the diagnostic outcome of a command. Rejections carry a reason;
// callers that only want the original tolerant no-op behavior can ignore it.
type Result struct {
	Outcome Outcome
	Reason  string
}

func (r Result) Applied() bool   { return r.Outcome == OutcomeApplied }
func (r Result) Suspended() bool { return r.Outcome == OutcomeSuspended }
func (r Result) Rejected() bool  { return r.Outcome == OutcomeRejected }

var (
	resultApplied   = Result{Outcome: OutcomeApplied}
	resultSuspended = Result{Outcome: OutcomeSuspended}
)

func rejected(reason string) Result {
	return Result{Outcome: OutcomeRejected, Reason: reason}
}
