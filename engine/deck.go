package engine

import "fmt"

const (
	// DeckSize is the number of cards in the standard two-sided deck.
	DeckSize = 112
	// copiesPerColor is how many of each coloured value appear per colour.
	copiesPerColor = 2
)

// lightValues and darkValues are paired index by index when the deck is built.
var (
	lightValues = [13]Value{
		ValueOne, ValueTwo, ValueThree, ValueFour, ValueFive, ValueSix, ValueSeven, ValueEight, ValueNine,
		ValueDrawOne, ValueReverse, ValueSkip, ValueFlip,
	}
	darkValues = [13]Value{
		ValueOne, ValueTwo, ValueThree, ValueFour, ValueFive, ValueSix, ValueSeven, ValueEight, ValueNine,
		ValueDrawFive, ValueReverse, ValueSkipEveryone, ValueFlip,
	}
)

// StandardCards returns the 112 cards of a fresh deck, light side up, in
// build order (unshuffled). IDs run from 0 to DeckSize-1.
func StandardCards() []Card {
	cards := make([]Card, 0, DeckSize)
	add := func(light, dark Face) {
		c := NewDualCard(light, dark)
		c.ID = uint8(len(cards))
		cards = append(cards, c)
	}
	for ci := range LightPalette {
		for vi := range lightValues {
			for k := 0; k < copiesPerColor; k++ {
				add(Face{lightValues[vi], LightPalette[ci]}, Face{darkValues[vi], DarkPalette[ci]})
			}
		}
	}
	for i := 0; i < 4; i++ {
		add(Face{ValueWild, ColorWild}, Face{ValueWild, ColorWild})
	}
	for i := 0; i < 4; i++ {
		add(Face{ValueWildDrawTwo, ColorWild}, Face{ValueWildDrawColor, ColorWild})
	}
	return cards
}

// Deck owns the draw and discard piles. The top of each pile is the last
// element of its slice.
type Deck struct {
	draw    []Card
	discard []Card
	dark    bool
	rng     rng
}

// NewDeck builds and shuffles a standard deck using the given seed.
func NewDeck(seed uint64) *Deck {
	d := &Deck{draw: StandardCards(), rng: newRNG(seed)}
	d.rng.shuffle(d.draw)
	return d
}

// NewDeckFromPiles builds a deck with the given piles (copied, not shuffled).
// The last element of each slice is its top.
func NewDeckFromPiles(draw, discard []Card, dark bool, seed uint64) *Deck {
	return &Deck{
		draw:    append([]Card(nil), draw...),
		discard: append([]Card(nil), discard...),
		dark:    dark,
		rng:     newRNG(seed),
	}
}

// Draw removes and returns the top of the draw pile, reshuffling the discard
// pile into it first when it is empty.
func (d *Deck) Draw() (Card, error) {
	if len(d.draw) == 0 {
		d.ReshuffleFromDiscard()
	}
	if len(d.draw) == 0 {
		return Card{}, ErrEmptyDeck
	}
	top := d.draw[len(d.draw)-1]
	d.draw = d.draw[:len(d.draw)-1]
	return top, nil
}

// Discard places a card on top of the discard pile.
func (d *Deck) Discard(c Card) {
	d.discard = append(d.discard, c)
}

// Top returns the top of the discard pile.
func (d *Deck) Top() (Card, bool) {
	if len(d.discard) == 0 {
		return Card{}, false
	}
	return d.discard[len(d.discard)-1], true
}

// DrawUntilColor draws until a card of the target colour appears, discarding
// every non-matching card, and returns the match. Reshuffles happen as needed.
// The search gives up with ErrEmptyDeck after two passes over every card that
// was available when it started. Non-matching cards are discarded as they
// are drawn, so a failed search leaves every card in the two piles.
func (d *Deck) DrawUntilColor(target Color) (Card, error) {
	limit := 2 * (len(d.draw) + len(d.discard))
	for i := 0; i < limit; i++ {
		c, err := d.Draw()
		if err != nil {
			return Card{}, err
		}
		if c.Color() == target {
			return c, nil
		}
		d.Discard(c)
	}
	return Card{}, fmt.Errorf("%w: no %s card found", ErrEmptyDeck, target)
}

// DrawCardsUntilColor draws until a card of the target colour appears and
// returns every drawn card in draw order, the match last. When the piles run
// out first, the cards drawn so far are returned together with ErrEmptyDeck.
func (d *Deck) DrawCardsUntilColor(target Color) ([]Card, error) {
	var drawn []Card
	for {
		c, err := d.Draw()
		if err != nil {
			return drawn, err
		}
		drawn = append(drawn, c)
		if c.Color() == target {
			return drawn, nil
		}
	}
}

// ReshuffleFromDiscard moves all discard cards except the top into the draw
// pile and shuffles it. Returns false when there was nothing to move.
func (d *Deck) ReshuffleFromDiscard() bool {
	// Need at least 2 cards in discard (one stays, rest go to the draw pile).
	if len(d.discard) <= 1 {
		return false
	}
	top := d.discard[len(d.discard)-1]
	d.draw = append(d.draw, d.discard[:len(d.discard)-1]...)
	d.discard = append(d.discard[:0], top)
	d.rng.shuffle(d.draw)
	return true
}

// Shuffle shuffles the draw pile in place.
func (d *Deck) Shuffle() { d.rng.shuffle(d.draw) }

// Flip toggles the active side and turns over every card in both piles.
// Hands are flipped separately by their owners.
func (d *Deck) Flip() {
	d.dark = !d.dark
	for i := range d.draw {
		d.draw[i].Flip()
	}
	for i := range d.discard {
		d.discard[i].Flip()
	}
}

// IsDarkSide reports whether the dark side is active.
func (d *Deck) IsDarkSide() bool { return d.dark }

// Side returns the active side.
func (d *Deck) Side() Side {
	if d.dark {
		return SideDark
	}
	return SideLight
}

// DrawCount returns the size of the draw pile.
func (d *Deck) DrawCount() int { return len(d.draw) }

// DiscardCount returns the size of the discard pile.
func (d *Deck) DiscardCount() int { return len(d.discard) }

// DrawPile returns a copy of the draw pile, top last.
func (d *Deck) DrawPile() []Card { return append([]Card(nil), d.draw...) }

// DiscardPile returns a copy of the discard pile, top last.
func (d *Deck) DiscardPile() []Card { return append([]Card(nil), d.discard...) }
