package engine

import "fmt"

// Player holds one participant's hand, cumulative score and role.
// Hand order is only meaningful for index addressing; indices stay stable
// between reads until the hand is mutated.
type Player struct {
	Name     string
	IsAI     bool
	Strategy Strategy

	hand  []Card
	score int
}

// NewPlayer creates a human player.
func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

// NewAIPlayer creates a computer player using the given strategy.
func NewAIPlayer(name string, s Strategy) *Player {
	return &Player{Name: name, IsAI: true, Strategy: s}
}

// Score returns the cumulative score.
func (p *Player) Score() int { return p.score }

// AddScore adds points to the cumulative score.
func (p *Player) AddScore(points int) { p.score += points }

// HandSize returns the number of cards in hand.
func (p *Player) HandSize() int { return len(p.hand) }

// Hand returns a copy of the hand.
func (p *Player) Hand() []Card { return append([]Card(nil), p.hand...) }

// CardAt returns the card at index i without removing it.
func (p *Player) CardAt(i int) (Card, bool) {
	if i < 0 || i >= len(p.hand) {
		return Card{}, false
	}
	return p.hand[i], true
}

// AddCard appends a card to the hand.
func (p *Player) AddCard(c Card) { p.hand = append(p.hand, c) }

// RemoveCard removes and returns the card at index i.
func (p *Player) RemoveCard(i int) (Card, error) {
	if i < 0 || i >= len(p.hand) {
		return Card{}, fmt.Errorf("%w: %d (hand size %d)", ErrInvalidCardIndex, i, len(p.hand))
	}
	c := p.hand[i]
	p.hand = append(p.hand[:i], p.hand[i+1:]...)
	return c, nil
}

// PlayCard returns the card at index i without removing it. The engine
// removes it once the play has been validated.
func (p *Player) PlayCard(i int) (Card, error) {
	c, ok := p.CardAt(i)
	if !ok {
		return Card{}, fmt.Errorf("%w: %d (hand size %d)", ErrInvalidCardIndex, i, len(p.hand))
	}
	return c, nil
}

// DrawCard draws one card from the deck into the hand.
func (p *Player) DrawCard(d *Deck) (Card, error) {
	c, err := d.Draw()
	if err != nil {
		return Card{}, err
	}
	p.AddCard(c)
	return c, nil
}

// FlipAllCards turns over every card in the hand.
func (p *Player) FlipAllCards() {
	for i := range p.hand {
		p.hand[i].Flip()
	}
}

// ValidCardIndices returns the indices of every playable card, ascending.
func (p *Player) ValidCardIndices(matchColor Color, matchType Value) []int {
	var idx []int
	for i, c := range p.hand {
		if CanPlay(c, matchColor, matchType) {
			idx = append(idx, i)
		}
	}
	return idx
}

// SelectCardToPlay picks a hand index with the player's strategy. Returns -1
// for human players or when nothing is playable.
func (p *Player) SelectCardToPlay(matchColor Color, matchType Value, isDarkSide bool) int {
	if !p.IsAI {
		return -1
	}
	valid := p.ValidCardIndices(matchColor, matchType)
	if len(valid) == 0 {
		return -1
	}
	return p.Strategy.choose(p.hand, valid, isDarkSide)
}

// SelectWildColor picks the most frequent colour in hand from the palette of
// the side the hand shows (light when empty). Ties go to the colour declared
// first. Returns ColorNone for human players.
func (p *Player) SelectWildColor() Color {
	if !p.IsAI {
		return ColorNone
	}
	return p.dominantColor()
}

// dominantColor is the colour-frequency rule behind SelectWildColor, usable
// for any player (e.g. when a human's turn times out).
func (p *Player) dominantColor() Color {
	side := SideLight
	if len(p.hand) > 0 {
		side = p.hand[0].Side
	}
	palette := PaletteFor(side)
	var counts [4]int
	for _, c := range p.hand {
		for i, pc := range palette {
			if c.Color() == pc {
				counts[i]++
			}
		}
	}
	best := 0
	for i := 1; i < len(palette); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	return palette[best]
}

// reset empties the hand and optionally the score.
func (p *Player) reset(keepScore bool) {
	p.hand = nil
	if !keepScore {
		p.score = 0
	}
}
