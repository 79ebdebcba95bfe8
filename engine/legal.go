package engine

// CanPlay reports whether c may be played against the current match colour
// and match type. Wild cards are always playable.
func CanPlay(c Card, matchColor Color, matchType Value) bool {
	return c.IsWild() || c.Color() == matchColor || c.Value() == matchType
}

// ValidCardIndices returns the playable hand indices of the current player.
// Empty when the round is not in progress or a colour choice is pending.
func (g *Game) ValidCardIndices() []int {
	if g.status != StatusInProgress || g.AwaitingColorSelection() {
		return nil
	}
	return g.CurrentPlayer().ValidCardIndices(g.matchColor, g.matchType)
}

// IsPlayable reports whether the current player's card at index i is legal.
func (g *Game) IsPlayable(i int) bool {
	p := g.CurrentPlayer()
	if p == nil {
		return false
	}
	c, ok := p.CardAt(i)
	return ok && CanPlay(c, g.matchColor, g.matchType)
}
