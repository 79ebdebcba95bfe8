package engine

import "fmt"

// PlayCard plays the current player's card at hand index i.
//
// The play is checked in order: round live and no colour pending
// (ActionInvalidPlay), index in range (ActionInvalidCardIndex), card legal
// (ActionInvalidPlay). A rejected play leaves the game untouched. An accepted
// play becomes the active card, moves to the discard pile, and either ends the
// round (empty hand) or resolves its effect.
func (g *Game) PlayCard(i int) TurnAction {
	if g.checkTurnOpen() != nil {
		return ActionInvalidPlay
	}
	p := g.CurrentPlayer()
	c, err := p.PlayCard(i)
	if err != nil {
		return ActionInvalidCardIndex
	}
	if !CanPlay(c, g.matchColor, g.matchType) {
		return ActionInvalidPlay
	}

	p.RemoveCard(i)
	g.deck.Discard(c)
	g.active = c
	g.hasActive = true
	g.matchType = c.Value()
	if c.Color() != ColorWild {
		g.matchColor = c.Color()
	}

	if p.HandSize() == 0 {
		g.endRound(g.turn)
		g.notify(EventStateUpdated)
		return ActionCardPlayed
	}

	g.resolveEffect(c)
	g.notify(EventStateUpdated)
	return ActionCardPlayed
}

// SetActiveColor resolves a pending colour selection. The colour must belong
// to the palette of the side in play. Once set, the pending effect finishes:
// WildDrawTwo makes the next player draw two and skips them, WildDrawColor
// makes the next player draw until the colour appears and skips them, a plain
// Wild just passes the turn.
func (g *Game) SetActiveColor(c Color) error {
	if g.status != StatusInProgress {
		return fmt.Errorf("%w: status %s", ErrNotInProgress, g.status)
	}
	if !g.AwaitingColorSelection() {
		return fmt.Errorf("%w: no colour selection pending", ErrInvalidColorSelection)
	}
	if !isPaletteColor(c, g.deck.Side()) {
		return fmt.Errorf("%w: %s on the %s side", ErrInvalidColorSelection, c, g.deck.Side())
	}

	effect := g.pendingEffect
	g.matchColor = c
	g.clearPending()

	switch effect {
	case EffectWildDrawTwo:
		g.forceNextDraw(2)
	case EffectWildDrawColor:
		g.forceNextDrawUntil(c)
	default:
		g.advanceTurn()
	}
	g.notify(EventStateUpdated)
	return nil
}

// DrawCard draws one card for the current player without ending the turn.
// With both piles exhausted there is nothing to draw and the turn passes.
func (g *Game) DrawCard() TurnAction {
	if g.checkTurnOpen() != nil {
		return ActionInvalidPlay
	}
	if _, err := g.CurrentPlayer().DrawCard(g.deck); err != nil {
		g.advanceTurn()
		g.notify(EventStateUpdated)
		return ActionTurnPassed
	}
	g.notify(EventStateUpdated)
	return ActionCardDrawn
}

// DrawCardAndPass draws one card for the current player and passes the turn.
// The turn passes even when both piles are exhausted.
func (g *Game) DrawCardAndPass() TurnAction {
	if g.checkTurnOpen() != nil {
		return ActionInvalidPlay
	}
	g.CurrentPlayer().DrawCard(g.deck)
	g.advanceTurn()
	g.notify(EventStateUpdated)
	return ActionTurnPassed
}

// AdvanceToNextTurn passes the turn in the current direction.
func (g *Game) AdvanceToNextTurn() error {
	if err := g.checkTurnOpen(); err != nil {
		return err
	}
	g.advanceTurn()
	g.notify(EventStateUpdated)
	return nil
}

// ReversePlayDirection flips the direction of play. With two players a
// reverse also moves the turn on immediately, so that playing Reverse acts
// as a skip.
func (g *Game) ReversePlayDirection() {
	g.direction = -g.direction
	if len(g.players) == 2 {
		g.advanceTurn()
	}
}

// SkipNextPlayer moves the turn on by one; followed by the regular advance
// this skips a player.
func (g *Game) SkipNextPlayer() {
	g.advanceTurn()
}

// checkTurnOpen returns an error unless turn intents are currently accepted.
func (g *Game) checkTurnOpen() error {
	if g.status != StatusInProgress {
		return fmt.Errorf("%w: status %s", ErrNotInProgress, g.status)
	}
	if g.AwaitingColorSelection() {
		return ErrColorSelectionPending
	}
	return nil
}

// offset returns the seat k steps away in the current direction.
// The +n keeps the operand non-negative for direction -1.
func (g *Game) offset(k int) int {
	n := len(g.players)
	if n == 0 {
		return 0
	}
	return ((g.turn+k*g.direction)%n + n) % n
}

// advanceTurn rotates to the next player and restarts the turn clock.
func (g *Game) advanceTurn() {
	if len(g.players) > 0 {
		g.turn = (g.turn + g.direction + len(g.players)) % len(g.players)
	}
	g.resetDeadline()
}

// mustDraw deals one card into p's hand. Only used while dealing from a
// fresh deck, which always holds enough cards for every seat.
func (g *Game) mustDraw(p *Player) Card {
	c, err := p.DrawCard(g.deck)
	if err != nil {
		panic(fmt.Sprintf("engine: deal ran out of cards: %v", err))
	}
	return c
}

func isPaletteColor(c Color, side Side) bool {
	for _, pc := range PaletteFor(side) {
		if c == pc {
			return true
		}
	}
	return false
}
