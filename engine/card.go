package engine

import "fmt"

// Face is one printed side of a card.
type Face struct {
	Value Value `json:"value"`
	Color Color `json:"color"`
}

func (f Face) String() string {
	if f.Color == ColorWild {
		return f.Value.String()
	}
	return f.Color.String() + " " + f.Value.String()
}

// Card is one physical card with a light and a dark face. Side selects which
// face is visible; Flip toggles it and touches nothing else.
//
// ID is assigned when the deck is built so that two cards with identical
// faces stay distinguishable. Cards built with NewCard/NewDualCard carry ID 0.
type Card struct {
	ID    uint8 `json:"id"`
	Light Face  `json:"light"`
	Dark  Face  `json:"dark"`
	Side  Side  `json:"side"`
}

// NewCard constructs a card whose two faces are identical.
func NewCard(v Value, c Color) Card {
	f := Face{Value: v, Color: c}
	return Card{Light: f, Dark: f}
}

// NewDualCard constructs a card from its light and dark faces, light side up.
func NewDualCard(light, dark Face) Card {
	return Card{Light: light, Dark: dark}
}

// Face returns the visible face.
func (c Card) Face() Face {
	if c.Side == SideDark {
		return c.Dark
	}
	return c.Light
}

// FaceFor returns the face printed on the given side.
func (c Card) FaceFor(side Side) Face {
	if side == SideDark {
		return c.Dark
	}
	return c.Light
}

// Value returns the visible value.
func (c Card) Value() Value { return c.Face().Value }

// Color returns the visible colour.
func (c Card) Color() Color { return c.Face().Color }

// Flip turns the card over.
func (c *Card) Flip() { c.Side = c.Side.Other() }

// IsWild reports whether the visible face is Wild, WildDrawTwo or WildDrawColor.
func (c Card) IsWild() bool {
	switch c.Value() {
	case ValueWild, ValueWildDrawTwo, ValueWildDrawColor:
		return true
	}
	return false
}

// IsFlipCard reports whether the visible face is a Flip.
func (c Card) IsFlipCard() bool { return c.Value() == ValueFlip }

// ScoreValue returns the points of the face belonging to the active side.
func (c Card) ScoreValue(isDarkSide bool) int {
	if isDarkSide {
		return c.Dark.Value.Points()
	}
	return c.Light.Value.Points()
}

// SameFaces reports whether both cards print the same faces and show the same side.
// IDs are ignored.
func (c Card) SameFaces(o Card) bool {
	return c.Light == o.Light && c.Dark == o.Dark && c.Side == o.Side
}

func (c Card) String() string { return c.Face().String() }

// GoString includes both faces, for test failure output.
func (c Card) GoString() string {
	return fmt.Sprintf("Card{#%d %s | %s, %s up}", c.ID, c.Light, c.Dark, c.Side)
}

// validate checks that both faces hold known values and colours consistent
// with their side's palette.
func (c Card) validate() error {
	if c.Side > SideDark {
		return fmt.Errorf("card %d: invalid side %d", c.ID, c.Side)
	}
	for _, f := range [2]Face{c.Light, c.Dark} {
		if !f.Value.Valid() {
			return fmt.Errorf("card %d: invalid value %d", c.ID, f.Value)
		}
		if !f.Color.Valid() || f.Color == ColorNone {
			return fmt.Errorf("card %d: invalid color %d", c.ID, f.Color)
		}
	}
	return nil
}
