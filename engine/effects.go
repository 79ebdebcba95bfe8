package engine

import "fmt"

// EffectType is the special effect triggered when a card becomes active.
type EffectType uint8

const (
	EffectNone          EffectType = iota // 0, numbers: pass the turn
	EffectReverse                         // 1
	EffectSkip                            // 2
	EffectSkipEveryone                    // 3
	EffectDrawOne                         // 4
	EffectDrawFive                        // 5
	EffectWild                            // 6
	EffectWildDrawTwo                     // 7
	EffectWildDrawColor                   // 8
	EffectFlip                            // 9

	numEffects
)

// EffectOf classifies a card value.
func EffectOf(v Value) EffectType {
	switch v {
	case ValueReverse:
		return EffectReverse
	case ValueSkip:
		return EffectSkip
	case ValueSkipEveryone:
		return EffectSkipEveryone
	case ValueDrawOne:
		return EffectDrawOne
	case ValueDrawFive:
		return EffectDrawFive
	case ValueWild:
		return EffectWild
	case ValueWildDrawTwo:
		return EffectWildDrawTwo
	case ValueWildDrawColor:
		return EffectWildDrawColor
	case ValueFlip:
		return EffectFlip
	default:
		return EffectNone
	}
}

// Valid reports whether e is a known effect.
func (e EffectType) Valid() bool { return e < numEffects }

func (e EffectType) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectReverse:
		return "reverse"
	case EffectSkip:
		return "skip"
	case EffectSkipEveryone:
		return "skip_everyone"
	case EffectDrawOne:
		return "draw_one"
	case EffectDrawFive:
		return "draw_five"
	case EffectWild:
		return "wild"
	case EffectWildDrawTwo:
		return "wild_draw_two"
	case EffectWildDrawColor:
		return "wild_draw_color"
	case EffectFlip:
		return "flip"
	}
	return fmt.Sprintf("effect(%d)", uint8(e))
}

// resolveEffect applies the effect of the newly active card played by the
// current player. Every branch either passes the turn or leaves a colour
// choice pending.
func (g *Game) resolveEffect(c Card) {
	switch e := EffectOf(c.Value()); e {
	case EffectReverse:
		g.ReversePlayDirection()
		g.advanceTurn()
	case EffectSkip:
		g.SkipNextPlayer()
		g.advanceTurn()
	case EffectSkipEveryone:
		// Everyone else is skipped: the same player goes again.
		g.resetDeadline()
	case EffectDrawOne:
		g.forceNextDraw(1)
	case EffectDrawFive:
		g.forceNextDraw(5)
	case EffectWild, EffectWildDrawTwo:
		g.pendingColor = true
		g.pendingEffect = e
	case EffectWildDrawColor:
		g.pendingDrawColor = true
		g.pendingEffect = e
	case EffectFlip:
		g.flipSides()
		// Standard Flip cards show Flip on both faces, so this only triggers
		// for an active card placed with SetActiveCard.
		if g.active.IsWild() {
			g.pendingColor = true
			g.pendingEffect = EffectWild
			return
		}
		g.advanceTurn()
	default:
		g.advanceTurn()
	}
}

// forceNextDraw makes the next player draw n cards and skips them. The draw
// stops early if both piles are exhausted.
func (g *Game) forceNextDraw(n int) {
	g.advanceTurn()
	victim := g.CurrentPlayer()
	for i := 0; i < n; i++ {
		if _, err := victim.DrawCard(g.deck); err != nil {
			break
		}
	}
	g.advanceTurn()
}

// forceNextDrawUntil runs DrawUntilColor against the next player: every
// non-matching card goes to the discard pile, the match goes to their hand,
// and they are skipped. When colour c is in neither pile they gain nothing.
func (g *Game) forceNextDrawUntil(c Color) {
	g.advanceTurn()
	if card, err := g.deck.DrawUntilColor(c); err == nil {
		g.CurrentPlayer().AddCard(card)
	}
	g.advanceTurn()
}

// flipSides turns the whole game over: piles, every hand and the active card.
// The match colour and type follow the newly visible face of the active card.
func (g *Game) flipSides() {
	g.deck.Flip()
	for _, p := range g.players {
		p.FlipAllCards()
	}
	g.active.Flip()
	g.matchColor = g.active.Color()
	g.matchType = g.active.Value()
}
