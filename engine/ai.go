package engine

import "fmt"

// PlayAITurn takes the current computer player's turn:
//
//   - a pending colour choice is resolved with SelectWildColor;
//   - otherwise the strategy picks a card, and a wild that leaves a colour
//     pending is followed by the colour choice;
//   - with nothing playable the player draws one card, plays it if it is
//     legal, and passes otherwise (also when there is nothing left to draw).
//
// The returned action is the last one taken.
func (g *Game) PlayAITurn() (TurnAction, error) {
	if g.status != StatusInProgress {
		return ActionInvalidPlay, fmt.Errorf("%w: status %s", ErrNotInProgress, g.status)
	}
	p := g.CurrentPlayer()
	if !p.IsAI {
		return ActionInvalidPlay, fmt.Errorf("player %q is not computer-controlled", p.Name)
	}

	if g.AwaitingColorSelection() {
		if err := g.SetActiveColor(g.aiColor(p)); err != nil {
			return ActionInvalidPlay, err
		}
		return ActionTurnPassed, nil
	}

	if i := p.SelectCardToPlay(g.matchColor, g.matchType, g.IsDarkSide()); i >= 0 {
		return g.aiPlay(p, i)
	}

	if _, err := p.DrawCard(g.deck); err == nil {
		last := p.HandSize() - 1
		if g.IsPlayable(last) {
			return g.aiPlay(p, last)
		}
	}
	g.advanceTurn()
	g.notify(EventStateUpdated)
	return ActionTurnPassed, nil
}

// aiPlay plays hand index i for p and settles any colour choice it opens.
func (g *Game) aiPlay(p *Player, i int) (TurnAction, error) {
	if a := g.PlayCard(i); !a.OK() {
		return a, fmt.Errorf("%w: %s could not play index %d", ErrInvalidPlay, p.Name, i)
	}
	if g.AwaitingColorSelection() {
		if err := g.SetActiveColor(g.aiColor(p)); err != nil {
			return ActionCardPlayed, err
		}
	}
	return ActionCardPlayed, nil
}

// aiColor picks a colour for p valid on the side in play. Hands are always
// flipped together with the deck, so the dominant colour is on-side unless
// the hand is empty.
func (g *Game) aiColor(p *Player) Color {
	c := p.dominantColor()
	if !isPaletteColor(c, g.Side()) {
		c = PaletteFor(g.Side())[0]
	}
	return c
}
