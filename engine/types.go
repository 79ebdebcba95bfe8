package engine

import "fmt"

// Color identifies a card colour. The light and dark palettes are disjoint;
// ColorWild is shared by both sides.
type Color uint8

// ColorNone is the "no colour" sentinel (e.g. a human asked for an AI colour pick).
const (
	ColorNone Color = iota // 0
	// Light palette.
	ColorRed    // 1
	ColorBlue   // 2
	ColorGreen  // 3
	ColorYellow // 4
	// Dark palette.
	ColorPink   // 5
	ColorTeal   // 6
	ColorOrange // 7
	ColorPurple // 8

	ColorWild // 9

	numColors
)

// LightPalette lists the light-side colours in declaration order.
var LightPalette = [4]Color{ColorRed, ColorBlue, ColorGreen, ColorYellow}

// DarkPalette lists the dark-side colours in declaration order.
var DarkPalette = [4]Color{ColorPink, ColorTeal, ColorOrange, ColorPurple}

// PaletteFor returns the four selectable colours for a side.
func PaletteFor(side Side) [4]Color {
	if side == SideDark {
		return DarkPalette
	}
	return LightPalette
}

// IsLight reports whether c belongs to the light palette.
func (c Color) IsLight() bool { return c >= ColorRed && c <= ColorYellow }

// IsDark reports whether c belongs to the dark palette.
func (c Color) IsDark() bool { return c >= ColorPink && c <= ColorPurple }

// Valid reports whether c is a known colour (ColorNone included).
func (c Color) Valid() bool { return c < numColors }

var colorNames = [numColors]string{
	ColorNone:   "none",
	ColorRed:    "red",
	ColorBlue:   "blue",
	ColorGreen:  "green",
	ColorYellow: "yellow",
	ColorPink:   "pink",
	ColorTeal:   "teal",
	ColorOrange: "orange",
	ColorPurple: "purple",
	ColorWild:   "wild",
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", uint8(c))
	}
	return colorNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid color %d", uint8(c))
	}
	return []byte(colorNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	for i, name := range colorNames {
		if name == string(b) {
			*c = Color(i)
			return nil
		}
	}
	return fmt.Errorf("unknown color %q", string(b))
}

// Value identifies a card face value.
type Value uint8

const (
	ValueZero Value = iota // 0
	ValueOne
	ValueTwo
	ValueThree
	ValueFour
	ValueFive
	ValueSix
	ValueSeven
	ValueEight
	ValueNine // 9

	ValueSkip          // 10
	ValueSkipEveryone  // 11, dark
	ValueReverse       // 12
	ValueDrawOne       // 13, light
	ValueDrawFive      // 14, dark
	ValueFlip          // 15
	ValueWild          // 16
	ValueWildDrawTwo   // 17, light
	ValueWildDrawColor // 18, dark

	numValues
)

// ValueNone is returned for the match type before any card is active.
const ValueNone Value = 0xFF

// IsNumeric reports whether v is one of 0–9.
func (v Value) IsNumeric() bool { return v <= ValueNine }

// Valid reports whether v is a known card value.
func (v Value) Valid() bool { return v < numValues }

// Points returns the scoring value of a face showing v.
//   - 0–9 → face value
//   - DrawOne → 10
//   - Skip, Reverse, Flip, DrawFive → 20
//   - SkipEveryone → 30
//   - Wild → 40, WildDrawTwo → 50, WildDrawColor → 60
func (v Value) Points() int {
	switch {
	case v.IsNumeric():
		return int(v)
	case v == ValueDrawOne:
		return 10
	case v == ValueSkip, v == ValueReverse, v == ValueFlip, v == ValueDrawFive:
		return 20
	case v == ValueSkipEveryone:
		return 30
	case v == ValueWild:
		return 40
	case v == ValueWildDrawTwo:
		return 50
	case v == ValueWildDrawColor:
		return 60
	}
	return 0
}

var valueNames = [numValues]string{
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	ValueSkip:          "skip",
	ValueSkipEveryone:  "skip_everyone",
	ValueReverse:       "reverse",
	ValueDrawOne:       "draw_one",
	ValueDrawFive:      "draw_five",
	ValueFlip:          "flip",
	ValueWild:          "wild",
	ValueWildDrawTwo:   "wild_draw_two",
	ValueWildDrawColor: "wild_draw_color",
}

func (v Value) String() string {
	if v == ValueNone {
		return "none"
	}
	if !v.Valid() {
		return fmt.Sprintf("value(%d)", uint8(v))
	}
	return valueNames[v]
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	if v == ValueNone {
		return []byte("none"), nil
	}
	if !v.Valid() {
		return nil, fmt.Errorf("invalid value %d", uint8(v))
	}
	return []byte(valueNames[v]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(b []byte) error {
	if string(b) == "none" {
		*v = ValueNone
		return nil
	}
	for i, name := range valueNames {
		if name == string(b) {
			*v = Value(i)
			return nil
		}
	}
	return fmt.Errorf("unknown value %q", string(b))
}

// Side is the face of the card set currently in play.
type Side uint8

const (
	SideLight Side = iota // 0
	SideDark              // 1
)

// Other returns the opposite side.
func (s Side) Other() Side { return s ^ 1 }

func (s Side) String() string {
	if s == SideDark {
		return "dark"
	}
	return "light"
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	if s > SideDark {
		return nil, fmt.Errorf("invalid side %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(b []byte) error {
	switch string(b) {
	case "light":
		*s = SideLight
	case "dark":
		*s = SideDark
	default:
		return fmt.Errorf("unknown side %q", string(b))
	}
	return nil
}

// Status is the lifecycle state of a Game.
type Status uint8

const (
	StatusNotStarted Status = iota // 0
	StatusInProgress               // 1
	StatusRoundEnded               // 2
	StatusGameOver                 // 3
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusInProgress:
		return "in_progress"
	case StatusRoundEnded:
		return "round_ended"
	case StatusGameOver:
		return "game_over"
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// TurnAction is the outcome of a turn-level intent.
type TurnAction uint8

const (
	ActionCardPlayed       TurnAction = iota // 0
	ActionCardDrawn                          // 1
	ActionTurnPassed                         // 2
	ActionInvalidPlay                        // 3
	ActionInvalidCardIndex                   // 4
)

// OK reports whether the action was accepted.
func (a TurnAction) OK() bool { return a <= ActionTurnPassed }

func (a TurnAction) String() string {
	switch a {
	case ActionCardPlayed:
		return "CARD_PLAYED"
	case ActionCardDrawn:
		return "CARD_DRAWN"
	case ActionTurnPassed:
		return "TURN_PASSED"
	case ActionInvalidPlay:
		return "INVALID_PLAY"
	case ActionInvalidCardIndex:
		return "INVALID_CARD_INDEX"
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}
