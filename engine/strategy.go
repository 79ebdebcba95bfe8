package engine

import "fmt"

// Strategy selects how a computer player picks among its playable cards.
// Each strategy is a stateless scoring function over (hand, valid indices).
type Strategy uint8

const (
	StrategyFirstValid   Strategy = iota // 0, lowest playable index
	StrategyHighestScore                 // 1, most points shed
	StrategyStrategic                    // 2, points plus situational bonuses

	numStrategies
)

// Strategic bonuses.
const (
	bonusSkip       = 25  // Skip, SkipEveryone when hand ≤ endgameHandSize
	bonusDraw       = 30  // DrawOne, DrawFive when hand ≤ endgameHandSize
	bonusReverse    = 20  // Reverse when hand ≤ endgameHandSize
	penaltyWild     = -40 // any wild while more than one card remains
	bonusFlip       = 15  // Flip when hand > flipHandSize
	endgameHandSize = 3
	flipHandSize    = 4
)

// choose returns the hand index to play. valid must be non-empty and ascending.
func (s Strategy) choose(hand []Card, valid []int, isDarkSide bool) int {
	switch s {
	case StrategyHighestScore:
		return argmax(valid, func(i int) int { return hand[i].ScoreValue(isDarkSide) })
	case StrategyStrategic:
		return argmax(valid, func(i int) int { return strategicPriority(hand[i], len(hand), isDarkSide) })
	default:
		return valid[0]
	}
}

// argmax returns the index with the greatest score; ties keep the earliest.
func argmax(valid []int, score func(int) int) int {
	best, bestScore := valid[0], score(valid[0])
	for _, i := range valid[1:] {
		if sc := score(i); sc > bestScore {
			best, bestScore = i, sc
		}
	}
	return best
}

// strategicPriority scores a card for StrategyStrategic.
func strategicPriority(c Card, handSize int, isDarkSide bool) int {
	p := c.ScoreValue(isDarkSide)
	if handSize <= endgameHandSize {
		switch c.Value() {
		case ValueSkip, ValueSkipEveryone:
			p += bonusSkip
		case ValueDrawOne, ValueDrawFive:
			p += bonusDraw
		case ValueReverse:
			p += bonusReverse
		}
	}
	if c.IsWild() && handSize > 1 {
		p += penaltyWild
	}
	if c.IsFlipCard() && handSize > flipHandSize {
		p += bonusFlip
	}
	return p
}

var strategyNames = [numStrategies]string{
	StrategyFirstValid:   "first_valid",
	StrategyHighestScore: "highest_score",
	StrategyStrategic:    "strategic",
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool { return s < numStrategies }

func (s Strategy) String() string {
	if !s.Valid() {
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
	return strategyNames[s]
}

// ParseStrategy converts a strategy name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid strategy %d", uint8(s))
	}
	return []byte(strategyNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
