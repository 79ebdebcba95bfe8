package engine

import (
	"math"
	"time"
)

// The turn timer is a polled deadline: the engine never schedules anything,
// callers poll IsTurnTimeExpired and call HandleTurnTimeout.

// SetClock replaces the wall clock used for turn deadlines.
func (g *Game) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	g.now = now
	g.resetDeadline()
}

// resetDeadline starts a fresh turn clock, or clears it when untimed or idle.
func (g *Game) resetDeadline() {
	if g.rules.TurnTimeLimit <= 0 || g.status != StatusInProgress {
		g.deadline = time.Time{}
		return
	}
	g.deadline = g.now().Add(g.rules.TurnTimeLimit)
}

// TurnDeadline returns the current turn deadline; zero when untimed.
func (g *Game) TurnDeadline() time.Time { return g.deadline }

// RemainingTurnTime returns whole seconds left in the current turn (rounded
// up), 0 once expired, or -1 when turns are untimed.
func (g *Game) RemainingTurnTime() int {
	if g.rules.TurnTimeLimit <= 0 {
		return -1
	}
	if g.deadline.IsZero() {
		return int(math.Ceil(g.rules.TurnTimeLimit.Seconds()))
	}
	left := g.deadline.Sub(g.now())
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Seconds()))
}

// IsTurnTimeExpired reports whether the current player's deadline has passed.
func (g *Game) IsTurnTimeExpired() bool {
	if g.rules.TurnTimeLimit <= 0 || g.status != StatusInProgress || g.deadline.IsZero() {
		return false
	}
	return !g.now().Before(g.deadline)
}

// HandleTurnTimeout acts for a player whose time ran out: a pending colour is
// chosen for them (their most common colour), otherwise they draw and pass.
// Returns ActionInvalidPlay if the deadline has not passed.
func (g *Game) HandleTurnTimeout() TurnAction {
	if !g.IsTurnTimeExpired() {
		return ActionInvalidPlay
	}
	if g.AwaitingColorSelection() {
		if err := g.SetActiveColor(g.aiColor(g.CurrentPlayer())); err != nil {
			return ActionInvalidPlay
		}
		return ActionTurnPassed
	}
	return g.DrawCardAndPass()
}
