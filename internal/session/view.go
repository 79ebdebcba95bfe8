// internal/session/view.go
package session

import (
	"github.com/google/uuid"
	"github.com/jason-s-yu/unoflip/engine"
)

// PlayerView is one seat as seen by an observer.
type PlayerView struct {
	Seat          int             `json:"seat"`
	Name          string          `json:"name"`
	IsAI          bool            `json:"isAI"`
	Strategy      engine.Strategy `json:"strategy"`
	HandSize      int             `json:"handSize"`
	Score         int             `json:"score"`
	IsCurrentTurn bool            `json:"isCurrentTurn"`
	// Hand is populated only for the observing seat.
	Hand []engine.Card `json:"hand,omitempty"`
}

// View is the read model handed to presentation layers. Opponents' hands are
// reduced to their sizes.
type View struct {
	GameID          uuid.UUID     `json:"gameId"`
	Status          engine.Status `json:"status"`
	Round           int           `json:"round"`
	Side            engine.Side   `json:"side"`
	Direction       int           `json:"direction"`
	CurrentPlayer   int           `json:"currentPlayer"`
	ActiveCard      *engine.Card  `json:"activeCard,omitempty"`
	MatchColor      engine.Color  `json:"matchColor"`
	MatchType       engine.Value  `json:"matchType"`
	DrawCount       int           `json:"drawCount"`
	DiscardCount    int           `json:"discardCount"`
	PendingColor    bool          `json:"pendingColor"`
	PendingDraw     bool          `json:"pendingDrawColor"`
	RemainingTime   int           `json:"remainingTime"`
	Winner          string        `json:"winner,omitempty"`
	RoundWinner     string        `json:"roundWinner,omitempty"`
	LastRoundPoints int           `json:"lastRoundPoints"`
	Players         []PlayerView  `json:"players"`
	CanUndo         bool          `json:"canUndo"`
	CanRedo         bool          `json:"canRedo"`
}

// View returns the state as seen from seat forSeat. Pass -1 to hide every hand.
func (s *Session) View(forSeat int) View {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.view(forSeat)
}

// view assumes Mu is held.
func (s *Session) view(forSeat int) View {
	g := s.game
	v := View{
		GameID:          s.ID,
		Status:          g.Status(),
		Round:           g.Round(),
		Side:            g.Side(),
		Direction:       g.Direction(),
		CurrentPlayer:   g.CurrentPlayerIndex(),
		MatchColor:      g.MatchColor(),
		MatchType:       g.MatchType(),
		DrawCount:       g.DrawCount(),
		DiscardCount:    g.DiscardCount(),
		PendingColor:    g.IsPendingColorSelection(),
		PendingDraw:     g.IsPendingDrawColorSelection(),
		RemainingTime:   g.RemainingTurnTime(),
		LastRoundPoints: g.LastRoundPoints(),
		CanUndo:         s.history.CanUndo(),
		CanRedo:         s.history.CanRedo(),
	}
	if c, ok := g.ActiveCard(); ok {
		v.ActiveCard = &c
	}
	if w := g.Winner(); w != nil {
		v.Winner = w.Name
	}
	if w := g.RoundWinner(); w != nil {
		v.RoundWinner = w.Name
	}

	inPlay := g.Status() == engine.StatusInProgress
	for i, p := range g.Players() {
		pv := PlayerView{
			Seat:          i,
			Name:          p.Name,
			IsAI:          p.IsAI,
			Strategy:      p.Strategy,
			HandSize:      p.HandSize(),
			Score:         p.Score(),
			IsCurrentTurn: inPlay && i == g.CurrentPlayerIndex(),
		}
		if i == forSeat {
			pv.Hand = p.Hand()
		}
		v.Players = append(v.Players, pv)
	}
	return v
}
