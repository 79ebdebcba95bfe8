package engine

import (
	"errors"
	"fmt"
	"testing"
)

// newStartedGame seats n computer players and deals the first round.
func newStartedGame(t *testing.T, n int, seed uint64) *Game {
	t.Helper()
	g := NewGame(seed, DefaultRules())
	for i := 0; i < n; i++ {
		if err := g.AddPlayer(NewAIPlayer(fmt.Sprintf("cpu%d", i), StrategyFirstValid)); err != nil {
			t.Fatalf("AddPlayer(%d): %v", i, err)
		}
	}
	if err := g.InitializeGame(); err != nil {
		t.Fatalf("InitializeGame: %v", err)
	}
	return g
}

// rig puts the game on the light side with seat 0 on turn, clockwise, no
// colour pending, and the given active card and hand. Card conservation does
// not hold afterwards.
func rig(g *Game, active Card, hand ...Card) {
	if g.IsDarkSide() {
		g.flipSides()
	}
	g.turn = 0
	g.direction = 1
	g.clearPending()
	g.SetActiveCard(active)
	g.players[0].hand = append([]Card(nil), hand...)
}

func TestAddPlayer(t *testing.T) {
	g := NewGame(1, DefaultRules())
	for i := 0; i < MaxPlayers; i++ {
		if err := g.AddPlayer(NewPlayer(fmt.Sprintf("p%d", i))); err != nil {
			t.Fatalf("AddPlayer(%d): %v", i, err)
		}
	}
	if err := g.AddPlayer(NewPlayer("late")); !errors.Is(err, ErrIllegalPlayerAdd) {
		t.Errorf("fifth player err = %v, want ErrIllegalPlayerAdd", err)
	}
	if err := g.AddPlayer(nil); !errors.Is(err, ErrIllegalPlayerAdd) {
		t.Errorf("nil player err = %v, want ErrIllegalPlayerAdd", err)
	}

	g2 := NewGame(1, DefaultRules())
	p := NewPlayer("dup")
	if err := g2.AddPlayer(p); err != nil {
		t.Fatal(err)
	}
	if err := g2.AddPlayer(p); !errors.Is(err, ErrIllegalPlayerAdd) {
		t.Errorf("duplicate player err = %v, want ErrIllegalPlayerAdd", err)
	}
}

func TestAddPlayerAfterStart(t *testing.T) {
	g := newStartedGame(t, 2, 1)
	if err := g.AddPlayer(NewPlayer("late")); !errors.Is(err, ErrIllegalPlayerAdd) {
		t.Errorf("err = %v, want ErrIllegalPlayerAdd", err)
	}
}

func TestInitializeGameNeedsTwoPlayers(t *testing.T) {
	g := NewGame(1, DefaultRules())
	if err := g.InitializeGame(); !errors.Is(err, ErrNotEnoughPlayers) {
		t.Errorf("no players err = %v", err)
	}
	g.AddPlayer(NewPlayer("solo"))
	if err := g.InitializeGame(); !errors.Is(err, ErrNotEnoughPlayers) {
		t.Errorf("one player err = %v", err)
	}
	if g.Status() != StatusNotStarted {
		t.Errorf("status = %s, want not started", g.Status())
	}
}

func TestInitializeGameDeals(t *testing.T) {
	g := newStartedGame(t, 3, 42)
	if g.Status() != StatusInProgress {
		t.Fatalf("status = %s", g.Status())
	}
	if g.Round() != 1 {
		t.Errorf("round = %d, want 1", g.Round())
	}
	if g.TotalCards() != DeckSize {
		t.Errorf("TotalCards = %d, want %d", g.TotalCards(), DeckSize)
	}
	for i, p := range g.Players() {
		if p.HandSize() < g.Rules().HandSize {
			t.Errorf("player %d holds %d cards", i, p.HandSize())
		}
	}
	active, ok := g.ActiveCard()
	top, _ := g.DiscardTop()
	if !ok || active != top {
		t.Errorf("active card %#v, discard top %#v", active, top)
	}
	if err := g.InitializeGame(); err == nil {
		t.Error("second InitializeGame succeeded")
	}
}

func TestStartingCardNeverWildDrawTwo(t *testing.T) {
	for seed := uint64(1); seed <= 300; seed++ {
		g := newStartedGame(t, 2, seed)
		active, _ := g.ActiveCard()
		if active.Value() == ValueWildDrawTwo || active.Value() == ValueWildDrawColor {
			t.Fatalf("seed %d: starting card %s", seed, active)
		}
		if g.TotalCards() != DeckSize {
			t.Fatalf("seed %d: TotalCards = %d", seed, g.TotalCards())
		}
	}
}

func TestRandomPlayConservesCards(t *testing.T) {
	strategies := []Strategy{StrategyFirstValid, StrategyHighestScore, StrategyStrategic}
	for seed := uint64(1); seed <= 25; seed++ {
		g := NewGame(seed, Rules{TargetScore: 200})
		n := 2 + int(seed%3)
		for i := 0; i < n; i++ {
			g.AddPlayer(NewAIPlayer(fmt.Sprintf("cpu%d", i), strategies[i%len(strategies)]))
		}
		if err := g.InitializeGame(); err != nil {
			t.Fatal(err)
		}

		for step := 0; step < 3000 && g.Status() != StatusGameOver; step++ {
			if g.Status() == StatusRoundEnded {
				w := g.RoundWinner()
				if w == nil || w.HandSize() != 0 {
					t.Fatalf("seed %d: round ended without an empty hand", seed)
				}
				if err := g.StartNewRound(); err != nil {
					t.Fatalf("seed %d: StartNewRound: %v", seed, err)
				}
				continue
			}
			if _, err := g.PlayAITurn(); err != nil {
				t.Fatalf("seed %d step %d: PlayAITurn: %v", seed, step, err)
			}
			if got := g.TotalCards(); got != DeckSize {
				t.Fatalf("seed %d step %d: TotalCards = %d", seed, step, got)
			}
			if c := g.CurrentPlayerIndex(); c < 0 || c >= n {
				t.Fatalf("seed %d step %d: turn %d out of range", seed, step, c)
			}
			if d := g.Direction(); d != 1 && d != -1 {
				t.Fatalf("seed %d step %d: direction %d", seed, step, d)
			}
			if g.Status() == StatusInProgress {
				for _, p := range g.Players() {
					for _, c := range p.Hand() {
						if c.Side != g.Side() {
							t.Fatalf("seed %d step %d: %#v shows the wrong side", seed, step, c)
						}
					}
				}
			}
		}
	}
}

func TestPlayCardRejectsWithoutChange(t *testing.T) {
	g := newStartedGame(t, 2, 5)
	rig(g, NewCard(ValueFive, ColorRed), NewCard(ValueThree, ColorBlue), NewCard(ValueOne, ColorGreen))
	before := g.Save()

	if got := g.PlayCard(0); got != ActionInvalidPlay {
		t.Errorf("illegal card = %s, want INVALID_PLAY", got)
	}
	if got := g.PlayCard(2); got != ActionInvalidCardIndex {
		t.Errorf("index 2 = %s, want INVALID_CARD_INDEX", got)
	}
	if got := g.PlayCard(-1); got != ActionInvalidCardIndex {
		t.Errorf("index -1 = %s, want INVALID_CARD_INDEX", got)
	}
	if !snapshotsEqual(before, g.Save()) {
		t.Error("rejected plays changed the game")
	}
}

func TestWildAlwaysPlayable(t *testing.T) {
	g := newStartedGame(t, 2, 5)
	rig(g, NewCard(ValueFive, ColorRed), NewCard(ValueThree, ColorBlue), NewCard(ValueWild, ColorWild))
	got := g.ValidCardIndices()
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("ValidCardIndices = %v, want [1]", got)
	}
	if !g.IsPlayable(1) || g.IsPlayable(0) || g.IsPlayable(9) {
		t.Error("IsPlayable disagrees with ValidCardIndices")
	}
}

func TestNumberPassesTurn(t *testing.T) {
	g := newStartedGame(t, 3, 5)
	rig(g, NewCard(ValueFive, ColorRed), NewCard(ValueFive, ColorBlue), NewCard(ValueOne, ColorGreen))
	if got := g.PlayCard(0); got != ActionCardPlayed {
		t.Fatalf("PlayCard = %s", got)
	}
	if g.CurrentPlayerIndex() != 1 {
		t.Errorf("turn = %d, want 1", g.CurrentPlayerIndex())
	}
	if g.MatchColor() != ColorBlue || g.MatchType() != ValueFive {
		t.Errorf("match = %s %s, want blue 5", g.MatchColor(), g.MatchType())
	}
	if g.Player(0).HandSize() != 1 {
		t.Errorf("hand size = %d, want 1", g.Player(0).HandSize())
	}
}

func TestReverseThreePlayers(t *testing.T) {
	g := newStartedGame(t, 3, 5)
	rig(g, NewCard(ValueFive, ColorRed), NewCard(ValueReverse, ColorRed), NewCard(ValueOne, ColorGreen))
	g.PlayCard(0)
	if g.Direction() != -1 {
		t.Errorf("direction = %d, want -1", g.Direction())
	}
	if g.CurrentPlayerIndex() != 2 {
		t.Errorf("turn = %d, want 2", g.CurrentPlayerIndex())
	}
}

func TestReverseTwoPlayersActsAsSkip(t *testing.T) {
	g := newStartedGame(t, 2, 5)
	rig(g, NewCard(ValueFive, ColorRed), NewCard(ValueReverse, ColorRed), NewCard(ValueOne, ColorGreen))
	g.PlayCard(0)
	if g.CurrentPlayerIndex() != 0 {
		t.Errorf("turn = %d, want 0 (reverse skips the only opponent)", g.CurrentPlayerIndex())
	}
	if g.Direction() != -1 {
		t.Errorf("direction = %d, want -1", g.Direction())
	}
}

func TestSkip(t *testing.T) {
	g := newStartedGame(t, 3, 5)
	rig(g, NewCard(ValueFive, ColorRed), NewCard(ValueSkip, ColorRed), NewCard(ValueOne, ColorGreen))
	g.PlayCard(0)
	if g.CurrentPlayerIndex() != 2 {
		t.Errorf("turn = %d, want 2", g.CurrentPlayerIndex())
	}
}

func TestSkipEveryone(t *testing.T) {
	g := newStartedGame(t, 4, 5)
	rig(g, NewCard(ValueFive, ColorPink), NewCard(ValueSkipEveryone, ColorPink), NewCard(ValueOne, ColorTeal))
	g.PlayCard(0)
	if g.CurrentPlayerIndex() != 0 {
		t.Errorf("turn = %d, want 0", g.CurrentPlayerIndex())
	}
}

func TestDrawOneAndDrawFive(t *testing.T) {
	tests := []struct {
		name string
		card Card
		want int
	}{
		{"draw one", NewCard(ValueDrawOne, ColorRed), 1},
		{"draw five", NewCard(ValueDrawFive, ColorRed), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newStartedGame(t, 3, 5)
			rig(g, NewCard(ValueFive, ColorRed), tt.card, NewCard(ValueOne, ColorGreen))
			victim := g.Player(1).HandSize()
			g.PlayCard(0)
			if got := g.Player(1).HandSize() - victim; got != tt.want {
				t.Errorf("victim drew %d, want %d", got, tt.want)
			}
			if g.CurrentPlayerIndex() != 2 {
				t.Errorf("turn = %d, want 2", g.CurrentPlayerIndex())
			}
		})
	}
}

func TestWildWaitsForColour(t *testing.T) {
	g := newStartedGame(t, 3, 5)
	rig(g, NewCard(ValueFive, ColorRed), NewCard(ValueWild, ColorWild), NewCard(ValueOne, ColorGreen))
	if got := g.PlayCard(0); got != ActionCardPlayed {
		t.Fatalf("PlayCard = %s", got)
	}
	if !g.IsPendingColorSelection() || g.PendingEffect() != EffectWild {
		t.Fatalf("pending = %v, effect = %s", g.IsPendingColorSelection(), g.PendingEffect())
	}
	if g.CurrentPlayerIndex() != 0 {
		t.Errorf("turn moved before the colour was chosen")
	}
	if g.MatchColor() != ColorRed {
		t.Errorf("match colour = %s, want red until chosen", g.MatchColor())
	}

	if got := g.PlayCard(0); got != ActionInvalidPlay {
		t.Errorf("PlayCard while pending = %s", got)
	}
	if got := g.DrawCard(); got != ActionInvalidPlay {
		t.Errorf("DrawCard while pending = %s", got)
	}
	if got := g.DrawCardAndPass(); got != ActionInvalidPlay {
		t.Errorf("DrawCardAndPass while pending = %s", got)
	}
	if err := g.AdvanceToNextTurn(); !errors.Is(err, ErrColorSelectionPending) {
		t.Errorf("AdvanceToNextTurn err = %v", err)
	}
	if g.ValidCardIndices() != nil {
		t.Error("ValidCardIndices should be empty while a colour is pending")
	}

	for _, bad := range []Color{ColorNone, ColorWild, ColorPink, Color(42)} {
		if err := g.SetActiveColor(bad); !errors.Is(err, ErrInvalidColorSelection) {
			t.Errorf("SetActiveColor(%s) err = %v", bad, err)
		}
	}
	if !g.IsPendingColorSelection() {
		t.Fatal("rejected colours cleared the selection")
	}

	if err := g.SetActiveColor(ColorBlue); err != nil {
		t.Fatalf("SetActiveColor(blue): %v", err)
	}
	if g.MatchColor() != ColorBlue {
		t.Errorf("match colour = %s, want blue", g.MatchColor())
	}
	if g.AwaitingColorSelection() || g.PendingEffect() != EffectNone {
		t.Error("selection still pending")
	}
	if g.CurrentPlayerIndex() != 1 {
		t.Errorf("turn = %d, want 1", g.CurrentPlayerIndex())
	}
}

func TestSetActiveColorWithoutPending(t *testing.T) {
	g := newStartedGame(t, 2, 5)
	rig(g, NewCard(ValueFive, ColorRed))
	if err := g.SetActiveColor(ColorBlue); !errors.Is(err, ErrInvalidColorSelection) {
		t.Errorf("err = %v, want ErrInvalidColorSelection", err)
	}
	if g.MatchColor() != ColorRed {
		t.Errorf("match colour changed to %s", g.MatchColor())
	}
}

func TestWildDrawTwo(t *testing.T) {
	g := newStartedGame(t, 3, 5)
	rig(g, NewCard(ValueFive, ColorRed), NewCard(ValueWildDrawTwo, ColorWild), NewCard(ValueOne, ColorGreen))
	victim := g.Player(1).HandSize()
	g.PlayCard(0)
	if g.PendingEffect() != EffectWildDrawTwo {
		t.Fatalf("pending effect = %s", g.PendingEffect())
	}
	if g.Player(1).HandSize() != victim {
		t.Fatal("victim drew before the colour was chosen")
	}
	if err := g.SetActiveColor(ColorGreen); err != nil {
		t.Fatal(err)
	}
	if got := g.Player(1).HandSize() - victim; got != 2 {
		t.Errorf("victim drew %d, want 2", got)
	}
	if g.CurrentPlayerIndex() != 2 {
		t.Errorf("turn = %d, want 2", g.CurrentPlayerIndex())
	}
}

func TestWildDrawColor(t *testing.T) {
	g := newStartedGame(t, 3, 5)
	rig(g, NewCard(ValueFive, ColorPink), NewCard(ValueWildDrawColor, ColorWild), NewCard(ValueOne, ColorTeal))
	g.flipSides()
	teal := NewCard(ValueOne, ColorTeal)
	g.deck = NewDeckFromPiles([]Card{teal, NewCard(ValueTwo, ColorPink), NewCard(ValueThree, ColorOrange)}, nil, true, 9)
	victim := g.Player(1).HandSize()

	g.PlayCard(0)
	if !g.IsPendingDrawColorSelection() {
		t.Fatal("draw colour selection not pending")
	}
	if err := g.SetActiveColor(ColorRed); !errors.Is(err, ErrInvalidColorSelection) {
		t.Errorf("light colour on the dark side err = %v", err)
	}
	if err := g.SetActiveColor(ColorTeal); err != nil {
		t.Fatal(err)
	}
	if got := g.Player(1).HandSize() - victim; got != 1 {
		t.Errorf("victim gained %d cards, want 1", got)
	}
	hand := g.Player(1).Hand()
	if hand[len(hand)-1] != teal {
		t.Errorf("card gained = %s, want the teal card", hand[len(hand)-1])
	}
	// The wild plus the two non-matching cards.
	if g.DiscardCount() != 3 || g.DrawCount() != 0 {
		t.Errorf("draw=%d discard=%d, want 0 and 3", g.DrawCount(), g.DiscardCount())
	}
	if g.CurrentPlayerIndex() != 2 {
		t.Errorf("turn = %d, want 2", g.CurrentPlayerIndex())
	}
	if g.MatchColor() != ColorTeal {
		t.Errorf("match colour = %s, want teal", g.MatchColor())
	}
}

// rigWildDrawColor sets up seat 0 to play Wild Draw Colour on the dark side
// over the given piles.
func rigWildDrawColor(g *Game, draw []Card) {
	rig(g, NewCard(ValueFive, ColorPink), NewCard(ValueWildDrawColor, ColorWild), NewCard(ValueOne, ColorTeal))
	g.flipSides()
	g.deck = NewDeckFromPiles(draw, nil, true, 9)
}

func TestWildDrawColorMissingColourSkipsVictim(t *testing.T) {
	g := newStartedGame(t, 3, 5)
	rigWildDrawColor(g, []Card{NewCard(ValueTwo, ColorPink), NewCard(ValueThree, ColorOrange)})
	victim := g.Player(1).HandSize()

	g.PlayCard(0)
	if err := g.SetActiveColor(ColorPurple); err != nil {
		t.Fatal(err)
	}
	if got := g.Player(1).HandSize() - victim; got != 0 {
		t.Errorf("victim gained %d cards, want 0", got)
	}
	if n := g.DrawCount() + g.DiscardCount(); n != 3 {
		t.Errorf("cards left in the piles = %d, want 3", n)
	}
	if g.CurrentPlayerIndex() != 2 {
		t.Errorf("turn = %d, want 2", g.CurrentPlayerIndex())
	}
}

func TestDrawIntentsWithExhaustedPiles(t *testing.T) {
	g := newStartedGame(t, 3, 5)
	rigWildDrawColor(g, nil)
	dead := NewCard(ValueOne, ColorOrange)
	g.players[1].hand = []Card{dead}
	g.players[2].hand = []Card{dead}

	g.PlayCard(0)
	if err := g.SetActiveColor(ColorPurple); err != nil {
		t.Fatal(err)
	}
	if g.DrawCount() != 0 || g.DiscardCount() != 1 {
		t.Fatalf("draw=%d discard=%d, want 0 and 1", g.DrawCount(), g.DiscardCount())
	}
	if g.CurrentPlayerIndex() != 2 || g.Player(1).HandSize() != 1 {
		t.Fatalf("turn = %d, victim hand = %d; want 2 and 1", g.CurrentPlayerIndex(), g.Player(1).HandSize())
	}

	if a := g.DrawCard(); a != ActionTurnPassed {
		t.Errorf("DrawCard with nothing to draw = %s, want TURN_PASSED", a)
	}
	if g.CurrentPlayerIndex() != 0 {
		t.Fatalf("turn = %d, want 0", g.CurrentPlayerIndex())
	}
	if a := g.DrawCardAndPass(); a != ActionTurnPassed {
		t.Errorf("DrawCardAndPass = %s, want TURN_PASSED", a)
	}
	if g.CurrentPlayerIndex() != 1 {
		t.Fatalf("turn = %d, want 1", g.CurrentPlayerIndex())
	}
	if a, err := g.PlayAITurn(); err != nil || a != ActionTurnPassed {
		t.Errorf("PlayAITurn = %s, %v; want TURN_PASSED", a, err)
	}
	for i, want := range []int{1, 1, 1} {
		if got := g.Player(i).HandSize(); got != want {
			t.Errorf("player %d hand = %d, want %d", i, got, want)
		}
	}

	// A forced draw stops once the piles run dry.
	g.players[2].hand = []Card{NewCard(ValueDrawFive, ColorPurple), dead}
	if a := g.PlayCard(0); a != ActionCardPlayed {
		t.Fatalf("PlayCard(draw five) = %s", a)
	}
	if got := g.Player(0).HandSize(); got != 2 {
		t.Errorf("player 0 hand after draw five = %d, want 2", got)
	}
	if g.CurrentPlayerIndex() != 1 {
		t.Errorf("turn = %d, want 1", g.CurrentPlayerIndex())
	}
}

func TestFlipTurnsEverythingOver(t *testing.T) {
	g := newStartedGame(t, 3, 5)
	flip := NewDualCard(Face{ValueFlip, ColorRed}, Face{ValueFlip, ColorPink})
	filler := NewDualCard(Face{ValueOne, ColorGreen}, Face{ValueOne, ColorOrange})
	rig(g, NewCard(ValueFive, ColorRed), flip, filler)
	dark := g.IsDarkSide()

	g.PlayCard(0)
	if g.IsDarkSide() == dark {
		t.Fatal("side did not change")
	}
	if g.MatchColor() != ColorPink || g.MatchType() != ValueFlip {
		t.Errorf("match = %s %s, want pink flip", g.MatchColor(), g.MatchType())
	}
	for i, p := range g.Players() {
		for _, c := range p.Hand() {
			if c.Side != SideDark {
				t.Errorf("player %d card %#v not flipped", i, c)
			}
		}
	}
	for _, c := range g.deck.DrawPile() {
		if c.Side != SideDark {
			t.Fatalf("draw pile card %#v not flipped", c)
		}
	}
	if g.CurrentPlayerIndex() != 1 {
		t.Errorf("turn = %d, want 1", g.CurrentPlayerIndex())
	}
}

func TestFlipOntoWildFaceAsksForColour(t *testing.T) {
	g := newStartedGame(t, 3, 5)
	odd := NewDualCard(Face{ValueFlip, ColorRed}, Face{ValueWild, ColorWild})
	rig(g, NewCard(ValueFive, ColorRed), odd, NewCard(ValueOne, ColorGreen))
	g.PlayCard(0)
	if !g.IsPendingColorSelection() {
		t.Fatal("colour selection not pending after revealing a wild")
	}
	if g.CurrentPlayerIndex() != 0 {
		t.Errorf("turn = %d, want 0", g.CurrentPlayerIndex())
	}
	if err := g.SetActiveColor(ColorPurple); err != nil {
		t.Fatalf("SetActiveColor(purple): %v", err)
	}
	if g.CurrentPlayerIndex() != 1 {
		t.Errorf("turn = %d, want 1", g.CurrentPlayerIndex())
	}
}

func TestDrawCardKeepsTurn(t *testing.T) {
	g := newStartedGame(t, 3, 5)
	rig(g, NewCard(ValueFive, ColorRed), NewCard(ValueOne, ColorGreen))
	if got := g.DrawCard(); got != ActionCardDrawn {
		t.Fatalf("DrawCard = %s", got)
	}
	if g.Player(0).HandSize() != 2 || g.CurrentPlayerIndex() != 0 {
		t.Errorf("hand = %d, turn = %d", g.Player(0).HandSize(), g.CurrentPlayerIndex())
	}
	if got := g.DrawCardAndPass(); got != ActionTurnPassed {
		t.Fatalf("DrawCardAndPass = %s", got)
	}
	if g.Player(0).HandSize() != 3 || g.CurrentPlayerIndex() != 1 {
		t.Errorf("hand = %d, turn = %d", g.Player(0).HandSize(), g.CurrentPlayerIndex())
	}
	if err := g.AdvanceToNextTurn(); err != nil {
		t.Fatal(err)
	}
	if g.CurrentPlayerIndex() != 2 {
		t.Errorf("turn = %d, want 2", g.CurrentPlayerIndex())
	}
}

func TestIntentsRejectedOutsideRound(t *testing.T) {
	g := NewGame(1, DefaultRules())
	g.AddPlayer(NewPlayer("a"))
	g.AddPlayer(NewPlayer("b"))
	if got := g.PlayCard(0); got != ActionInvalidPlay {
		t.Errorf("PlayCard = %s", got)
	}
	if got := g.DrawCard(); got != ActionInvalidPlay {
		t.Errorf("DrawCard = %s", got)
	}
	if err := g.AdvanceToNextTurn(); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("AdvanceToNextTurn err = %v", err)
	}
	if err := g.StartNewRound(); !errors.Is(err, ErrRoundNotEnded) {
		t.Errorf("StartNewRound err = %v", err)
	}
}

func TestResetGame(t *testing.T) {
	g := newStartedGame(t, 3, 5)
	events := 0
	g.Subscribe(func(Event) { events++ })
	g.ResetGame()
	if g.Status() != StatusNotStarted || g.PlayerCount() != 0 || g.Round() != 0 {
		t.Errorf("status %s, players %d, round %d", g.Status(), g.PlayerCount(), g.Round())
	}
	if g.TotalCards() != 0 {
		t.Errorf("TotalCards = %d, want 0", g.TotalCards())
	}
	if _, ok := g.ActiveCard(); ok {
		t.Error("active card survived reset")
	}
	g.AddPlayer(NewPlayer("again"))
	if events != 2 {
		t.Errorf("listener saw %d events, want 2", events)
	}
}
