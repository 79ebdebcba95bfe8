package engine

import "fmt"

// PlayerSnapshot is an independent copy of one participant.
type PlayerSnapshot struct {
	Name     string   `json:"name"`
	IsAI     bool     `json:"isAI"`
	Strategy Strategy `json:"strategy"`
	Score    int      `json:"score"`
	Hand     []Card   `json:"hand"`
}

// Snapshot is a complete, self-contained copy of a Game. It shares no memory
// with the game it came from, so it can sit on an undo stack or be encoded to
// disk while the game keeps changing.
type Snapshot struct {
	Rules Rules `json:"rules"`
	RNG   uint64 `json:"rng"`

	Players     []PlayerSnapshot `json:"players"`
	DrawPile    []Card           `json:"drawPile"`
	DiscardPile []Card           `json:"discardPile"`
	DarkSide    bool             `json:"darkSide"`
	DeckRNG     uint64           `json:"deckRng"`

	TurnIndex  int   `json:"turnIndex"`
	Direction  int   `json:"direction"`
	Round      int   `json:"round"`
	ActiveCard *Card `json:"activeCard,omitempty"`
	MatchColor Color `json:"matchColor"`
	MatchType  Value `json:"matchType"`

	Status           Status     `json:"status"`
	PendingColor     bool       `json:"pendingColor"`
	PendingDrawColor bool       `json:"pendingDrawColor"`
	PendingEffect    EffectType `json:"pendingEffect"`

	Winner          int `json:"winner"`
	RoundWinner     int `json:"roundWinner"`
	LastRoundPoints int `json:"lastRoundPoints"`
}

// Save returns a deep copy of the current game state.
func (g *Game) Save() Snapshot {
	s := Snapshot{
		Rules:            g.rules,
		RNG:              uint64(g.rng),
		Players:          make([]PlayerSnapshot, len(g.players)),
		DrawPile:         g.deck.DrawPile(),
		DiscardPile:      g.deck.DiscardPile(),
		DarkSide:         g.deck.dark,
		DeckRNG:          uint64(g.deck.rng),
		TurnIndex:        g.turn,
		Direction:        g.direction,
		Round:            g.round,
		MatchColor:       g.matchColor,
		MatchType:        g.matchType,
		Status:           g.status,
		PendingColor:     g.pendingColor,
		PendingDrawColor: g.pendingDrawColor,
		PendingEffect:    g.pendingEffect,
		Winner:           g.winner,
		RoundWinner:      g.roundWinner,
		LastRoundPoints:  g.lastRoundPoints,
	}
	for i, p := range g.players {
		s.Players[i] = PlayerSnapshot{
			Name:     p.Name,
			IsAI:     p.IsAI,
			Strategy: p.Strategy,
			Score:    p.score,
			Hand:     p.Hand(),
		}
	}
	if g.hasActive {
		active := g.active
		s.ActiveCard = &active
	}
	return s
}

// Restore replaces the game state with a copy of s. The snapshot is checked
// for structural consistency first; on error the game is left untouched.
//
// Existing *Player values are reused seat by seat so that references held by
// callers stay valid; extra seats get new Player values.
func (g *Game) Restore(s Snapshot) error {
	if err := s.checkStructure(); err != nil {
		return err
	}

	players := make([]*Player, len(s.Players))
	for i, ps := range s.Players {
		p := &Player{}
		if i < len(g.players) {
			p = g.players[i]
		}
		p.Name = ps.Name
		p.IsAI = ps.IsAI
		p.Strategy = ps.Strategy
		p.score = ps.Score
		p.hand = append([]Card(nil), ps.Hand...)
		players[i] = p
	}

	g.rules = s.Rules.normalized()
	g.rng = rng(s.RNG)
	g.players = players
	g.deck = &Deck{
		draw:    append([]Card(nil), s.DrawPile...),
		discard: append([]Card(nil), s.DiscardPile...),
		dark:    s.DarkSide,
		rng:     rng(s.DeckRNG),
	}
	g.turn = s.TurnIndex
	g.direction = s.Direction
	g.round = s.Round
	g.active, g.hasActive = Card{}, false
	if s.ActiveCard != nil {
		g.active, g.hasActive = *s.ActiveCard, true
	}
	g.matchColor = s.MatchColor
	g.matchType = s.MatchType
	g.status = s.Status
	g.pendingColor = s.PendingColor
	g.pendingDrawColor = s.PendingDrawColor
	g.pendingEffect = s.PendingEffect
	g.winner = s.Winner
	g.roundWinner = s.RoundWinner
	g.lastRoundPoints = s.LastRoundPoints
	g.resetDeadline()

	g.notify(EventStateUpdated)
	return nil
}

// Validate runs the structural checks of Restore plus card conservation:
// a dealt game holds exactly the DeckSize distinct cards of a standard deck,
// all showing the side in play. Use it on snapshots from untrusted storage.
func (s *Snapshot) Validate() error {
	if err := s.checkStructure(); err != nil {
		return err
	}

	side := SideLight
	if s.DarkSide {
		side = SideDark
	}
	standard := StandardCards()
	seen := make(map[uint8]bool, DeckSize)
	total := 0
	check := func(where string, c Card) error {
		total++
		if int(c.ID) >= DeckSize {
			return fmt.Errorf("%w: %s: card id %d out of range", ErrInvalidSnapshot, where, c.ID)
		}
		if seen[c.ID] {
			return fmt.Errorf("%w: %s: duplicate card id %d", ErrInvalidSnapshot, where, c.ID)
		}
		seen[c.ID] = true
		if c.Light != standard[c.ID].Light || c.Dark != standard[c.ID].Dark {
			return fmt.Errorf("%w: %s: card %d faces do not match the standard deck", ErrInvalidSnapshot, where, c.ID)
		}
		if c.Side != side {
			return fmt.Errorf("%w: %s: card %d shows the %s side, game is on %s", ErrInvalidSnapshot, where, c.ID, c.Side, side)
		}
		return nil
	}
	for i, p := range s.Players {
		for _, c := range p.Hand {
			if err := check(fmt.Sprintf("player %d hand", i), c); err != nil {
				return err
			}
		}
	}
	for _, c := range s.DrawPile {
		if err := check("draw pile", c); err != nil {
			return err
		}
	}
	for _, c := range s.DiscardPile {
		if err := check("discard pile", c); err != nil {
			return err
		}
	}

	want := DeckSize
	if s.Status == StatusNotStarted {
		want = 0
	}
	if total != want {
		return fmt.Errorf("%w: holds %d cards, want %d", ErrInvalidSnapshot, total, want)
	}
	if s.ActiveCard != nil && s.ActiveCard.Side != side {
		return fmt.Errorf("%w: active card shows the %s side, game is on %s", ErrInvalidSnapshot, s.ActiveCard.Side, side)
	}
	return nil
}

// checkStructure validates ranges and flag combinations.
func (s *Snapshot) checkStructure() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: "+format, append([]any{ErrInvalidSnapshot}, args...)...)
	}

	n := len(s.Players)
	switch {
	case n > MaxPlayers:
		return bad("%d players, max %d", n, MaxPlayers)
	case s.Status > StatusGameOver:
		return bad("unknown status %d", s.Status)
	case s.Status != StatusNotStarted && n < MinPlayers:
		return bad("status %s with %d players", s.Status, n)
	case s.Direction != 1 && s.Direction != -1:
		return bad("direction %d", s.Direction)
	case s.TurnIndex < 0 || (n > 0 && s.TurnIndex >= n) || (n == 0 && s.TurnIndex != 0):
		return bad("turn index %d with %d players", s.TurnIndex, n)
	case s.Winner < -1 || s.Winner >= n:
		return bad("winner %d with %d players", s.Winner, n)
	case s.RoundWinner < -1 || s.RoundWinner >= n:
		return bad("round winner %d with %d players", s.RoundWinner, n)
	case s.Status == StatusGameOver && s.Winner < 0:
		return bad("game over without a winner")
	case !s.MatchColor.Valid():
		return bad("match color %d", s.MatchColor)
	case s.MatchType != ValueNone && !s.MatchType.Valid():
		return bad("match type %d", s.MatchType)
	case s.RNG == 0 || s.DeckRNG == 0:
		return bad("zero rng state")
	}

	switch {
	case s.PendingColor && s.PendingDrawColor:
		return bad("both colour selections pending")
	case s.PendingColor && s.PendingEffect != EffectWild && s.PendingEffect != EffectWildDrawTwo:
		return bad("colour selection pending for effect %s", s.PendingEffect)
	case s.PendingDrawColor && s.PendingEffect != EffectWildDrawColor:
		return bad("draw-colour selection pending for effect %s", s.PendingEffect)
	case !s.PendingColor && !s.PendingDrawColor && s.PendingEffect != EffectNone:
		return bad("effect %s pending without a colour selection", s.PendingEffect)
	case (s.PendingColor || s.PendingDrawColor) && s.Status != StatusInProgress:
		return bad("colour selection pending while %s", s.Status)
	}

	for i, p := range s.Players {
		if !p.Strategy.Valid() {
			return bad("player %d strategy %d", i, p.Strategy)
		}
		if p.Score < 0 {
			return bad("player %d score %d", i, p.Score)
		}
		for _, c := range p.Hand {
			if err := c.validate(); err != nil {
				return bad("player %d hand: %v", i, err)
			}
		}
	}
	for _, pile := range [][]Card{s.DrawPile, s.DiscardPile} {
		for _, c := range pile {
			if err := c.validate(); err != nil {
				return bad("pile: %v", err)
			}
		}
	}
	if s.ActiveCard != nil {
		if err := s.ActiveCard.validate(); err != nil {
			return bad("active card: %v", err)
		}
	}
	return nil
}
