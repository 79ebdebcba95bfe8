// Package engine implements the rules of Uno Flip: a two-sided card set, a
// turn state machine with special-card effects, computer player strategies
// and value snapshots for undo and persistence.
//
// A Game is not safe for concurrent use. Hosts that serve several goroutines
// guard each game with a single lock (see internal/session).
package engine

import (
	"fmt"
	"time"
)

// Game holds the complete state of one game: participants, piles, the active
// card and the turn state machine.
type Game struct {
	rules Rules
	rng   rng

	players []*Player
	deck    *Deck

	turn      int // index into players; always in [0, len(players)) once started
	direction int // +1 or -1
	round     int

	active     Card
	hasActive  bool
	matchColor Color
	matchType  Value

	status           Status
	pendingColor     bool
	pendingDrawColor bool
	pendingEffect    EffectType

	winner          int // game winner index, -1 if none
	roundWinner     int // last round winner index, -1 if none
	lastRoundPoints int

	deadline  time.Time
	now       func() time.Time
	listeners []Listener
}

// NewGame creates a game in StatusNotStarted. The seed drives every shuffle;
// zero is corrected to one.
func NewGame(seed uint64, rules Rules) *Game {
	g := &Game{
		rules: rules.normalized(),
		rng:   newRNG(seed),
		now:   time.Now,
	}
	g.clear()
	return g
}

// clear resets everything except rules, RNG, clock and listeners.
func (g *Game) clear() {
	g.players = nil
	g.deck = &Deck{rng: newRNG(g.rng.next())}
	g.turn = 0
	g.direction = 1
	g.round = 0
	g.active = Card{}
	g.hasActive = false
	g.matchColor = ColorNone
	g.matchType = ValueNone
	g.status = StatusNotStarted
	g.clearPending()
	g.winner = -1
	g.roundWinner = -1
	g.lastRoundPoints = 0
	g.deadline = time.Time{}
}

func (g *Game) clearPending() {
	g.pendingColor = false
	g.pendingDrawColor = false
	g.pendingEffect = EffectNone
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

// AddPlayer adds a participant. Only allowed before the game starts and while
// fewer than MaxPlayers have joined.
func (g *Game) AddPlayer(p *Player) error {
	switch {
	case p == nil:
		return fmt.Errorf("%w: nil player", ErrIllegalPlayerAdd)
	case g.status != StatusNotStarted:
		return fmt.Errorf("%w: game already started", ErrIllegalPlayerAdd)
	case len(g.players) >= MaxPlayers:
		return fmt.Errorf("%w: already %d players", ErrIllegalPlayerAdd, MaxPlayers)
	}
	for _, existing := range g.players {
		if existing == p {
			return fmt.Errorf("%w: %q already joined", ErrIllegalPlayerAdd, p.Name)
		}
	}
	g.players = append(g.players, p)
	g.notify(EventStateUpdated)
	return nil
}

// InitializeGame deals the first round and moves to StatusInProgress.
func (g *Game) InitializeGame() error {
	if g.status != StatusNotStarted {
		return fmt.Errorf("game already initialized (status %s)", g.status)
	}
	if len(g.players) < MinPlayers {
		return fmt.Errorf("%w: have %d, need %d", ErrNotEnoughPlayers, len(g.players), MinPlayers)
	}
	for _, p := range g.players {
		p.reset(false)
	}
	g.startRound()
	g.notify(EventStateUpdated)
	return nil
}

// StartNewRound rebuilds the deck and deals fresh hands, keeping participants
// and scores. Only allowed after a round has ended.
func (g *Game) StartNewRound() error {
	if g.status != StatusRoundEnded {
		return fmt.Errorf("%w: status %s", ErrRoundNotEnded, g.status)
	}
	g.startRound()
	g.notify(EventStateUpdated)
	return nil
}

// ResetGame returns to StatusNotStarted, dropping participants and all state.
func (g *Game) ResetGame() {
	g.clear()
	g.notify(EventStateUpdated)
}

// startRound shuffles a fresh deck, deals, and turns up the starting card.
// The starting card is treated as if the dealer (last seat) had played it, so
// the regular effect table decides who opens.
func (g *Game) startRound() {
	g.deck = NewDeck(g.rng.next())
	for _, p := range g.players {
		p.reset(true)
	}

	for c := 0; c < g.rules.HandSize; c++ {
		for _, p := range g.players {
			g.mustDraw(p)
		}
	}

	var first Card
	for {
		var err error
		if first, err = g.deck.Draw(); err != nil {
			panic(fmt.Sprintf("engine: cannot turn up starting card: %v", err))
		}
		g.deck.Discard(first)
		// WildDrawTwo may not start a round; bury it and turn up another.
		if first.Value() != ValueWildDrawTwo {
			break
		}
	}

	g.round++
	g.status = StatusInProgress
	g.direction = 1
	g.turn = len(g.players) - 1
	g.clearPending()
	g.roundWinner = -1
	g.lastRoundPoints = 0
	g.active = first
	g.hasActive = true
	g.matchColor = first.Color()
	g.matchType = first.Value()
	g.resolveEffect(first)
	g.resetDeadline()
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// Rules returns the game's rules.
func (g *Game) Rules() Rules { return g.rules }

// Status returns the lifecycle state.
func (g *Game) Status() Status { return g.status }

// Players returns the participants in seat order.
func (g *Game) Players() []*Player { return append([]*Player(nil), g.players...) }

// PlayerCount returns the number of participants.
func (g *Game) PlayerCount() int { return len(g.players) }

// Player returns the participant at seat i, or nil.
func (g *Game) Player(i int) *Player {
	if i < 0 || i >= len(g.players) {
		return nil
	}
	return g.players[i]
}

// CurrentPlayerIndex returns the seat whose turn it is.
func (g *Game) CurrentPlayerIndex() int { return g.turn }

// CurrentPlayer returns the participant whose turn it is, or nil before any
// player has joined.
func (g *Game) CurrentPlayer() *Player { return g.Player(g.turn) }

// NextPlayerIndex returns the seat that would play after the current one.
func (g *Game) NextPlayerIndex() int { return g.offset(1) }

// Direction returns +1 for clockwise play, -1 for counter-clockwise.
func (g *Game) Direction() int { return g.direction }

// Round returns the 1-based round number, 0 before the first deal.
func (g *Game) Round() int { return g.round }

// ActiveCard returns the card defining the legality baseline.
func (g *Game) ActiveCard() (Card, bool) { return g.active, g.hasActive }

// SetActiveCard replaces the active card and derives the match colour and type
// from it. No pile is touched; intended for tests and scenario setup.
func (g *Game) SetActiveCard(c Card) {
	g.active = c
	g.hasActive = true
	g.matchType = c.Value()
	g.matchColor = c.Color()
}

// MatchColor returns the colour the next play must match.
func (g *Game) MatchColor() Color { return g.matchColor }

// MatchType returns the value the next play must match.
func (g *Game) MatchType() Value { return g.matchType }

// IsPendingColorSelection reports whether a Wild or WildDrawTwo awaits a colour.
func (g *Game) IsPendingColorSelection() bool { return g.pendingColor }

// IsPendingDrawColorSelection reports whether a WildDrawColor awaits a colour.
func (g *Game) IsPendingDrawColorSelection() bool { return g.pendingDrawColor }

// AwaitingColorSelection reports whether any colour choice blocks the turn.
func (g *Game) AwaitingColorSelection() bool { return g.pendingColor || g.pendingDrawColor }

// PendingEffect returns the effect that will resolve once a colour is chosen.
func (g *Game) PendingEffect() EffectType { return g.pendingEffect }

// IsDarkSide reports whether the dark side is in play.
func (g *Game) IsDarkSide() bool { return g.deck.IsDarkSide() }

// Side returns the side in play.
func (g *Game) Side() Side { return g.deck.Side() }

// DrawCount returns the size of the draw pile.
func (g *Game) DrawCount() int { return g.deck.DrawCount() }

// DiscardCount returns the size of the discard pile.
func (g *Game) DiscardCount() int { return g.deck.DiscardCount() }

// DiscardTop returns the top discard.
func (g *Game) DiscardTop() (Card, bool) { return g.deck.Top() }

// TotalCards returns the number of cards across both piles and every hand.
func (g *Game) TotalCards() int {
	n := g.deck.DrawCount() + g.deck.DiscardCount()
	for _, p := range g.players {
		n += p.HandSize()
	}
	return n
}

// Winner returns the player who reached the target score, or nil.
func (g *Game) Winner() *Player { return g.Player(g.winner) }

// RoundWinner returns the player who emptied their hand last round, or nil.
func (g *Game) RoundWinner() *Player { return g.Player(g.roundWinner) }

// LastRoundPoints returns the points awarded at the last round end.
func (g *Game) LastRoundPoints() int { return g.lastRoundPoints }
