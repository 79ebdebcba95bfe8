package engine

import "time"

const (
	MinPlayers = 2
	MaxPlayers = 4
)

// Rules holds configurable game settings.
type Rules struct {
	TargetScore   int           `json:"targetScore"`   // cumulative score that ends the game
	HandSize      int           `json:"handSize"`      // cards dealt to each player per round
	TurnTimeLimit time.Duration `json:"turnTimeLimit"` // 0 = untimed
}

// DefaultRules returns the standard rules.
func DefaultRules() Rules {
	return Rules{
		TargetScore:   500,
		HandSize:      7,
		TurnTimeLimit: 0,
	}
}

// normalized fills zero fields with defaults.
func (r Rules) normalized() Rules {
	d := DefaultRules()
	if r.TargetScore <= 0 {
		r.TargetScore = d.TargetScore
	}
	// Leave enough cards for the starting discard and a draw pile.
	if r.HandSize <= 0 || r.HandSize*MaxPlayers >= DeckSize {
		r.HandSize = d.HandSize
	}
	if r.TurnTimeLimit < 0 {
		r.TurnTimeLimit = 0
	}
	return r
}
