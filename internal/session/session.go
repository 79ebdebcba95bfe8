// internal/session/session.go

// Package session hosts one game behind a single lock, recording undo
// history, persisting saves and broadcasting notifications.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/unoflip/engine"
	"github.com/jason-s-yu/unoflip/internal/config"
	"github.com/jason-s-yu/unoflip/internal/history"
	"github.com/jason-s-yu/unoflip/internal/persist"
	"github.com/sirupsen/logrus"
)

// Notification is delivered to BroadcastFn once per engine event.
type Notification struct {
	Type   engine.EventType `json:"type"`
	Status engine.Status    `json:"status"`
	State  View             `json:"state"`
}

// OnGameOverFunc is called once when a player reaches the target score.
type OnGameOverFunc func(gameID uuid.UUID, winner string, scores map[string]int)

// Session owns a game together with its history and save backend. Every
// exported method takes Mu for its whole duration.
type Session struct {
	ID uuid.UUID

	Mu      sync.Mutex
	game    *engine.Game
	history *history.Manager
	store   persist.Store
	codec   *persist.Codec
	log     *logrus.Entry

	// Engine events raised during the current call, dispatched once the
	// call has finished and history is up to date.
	pending []engine.Event

	// Callbacks run with Mu held and must not call back into the Session.
	BroadcastFn func(n Notification)
	OnGameOver  OnGameOverFunc
}

// New creates a session from configuration. store may be nil, in which case
// Save and Load fail with persist.ErrPersistence.
func New(cfg *config.Config, store persist.Store, log *logrus.Entry) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	id := uuid.New()
	s := &Session{
		ID:      id,
		game:    engine.NewGame(cfg.GameSeed(), cfg.Rules()),
		history: history.New(cfg.HistoryDepth),
		store:   store,
		codec:   persist.NewCodec(),
		log:     log.WithField("game", id.String()),
	}
	s.game.Subscribe(func(e engine.Event) { s.pending = append(s.pending, e) })
	return s
}

// apply runs fn as one undoable step. The state from before the call is
// recorded only when fn reports success, so rejected intents leave no trace.
func (s *Session) apply(action string, fn func() bool) bool {
	before := s.game.Save()
	ok := fn()
	entry := s.log.WithFields(logrus.Fields{"action": action, "player": s.currentName()})
	if ok {
		s.history.Record(before)
		entry.Debug("Action accepted.")
	} else {
		entry.Warn("Action rejected.")
	}
	s.flush()
	return ok
}

// flush delivers queued engine events.
func (s *Session) flush() {
	events := s.pending
	s.pending = nil
	for _, e := range events {
		switch e.Type {
		case engine.EventRoundEnded:
			if w := s.game.RoundWinner(); w != nil {
				s.log.Infof("Round %d won by %s (+%d points, total %d).", s.game.Round(), w.Name, s.game.LastRoundPoints(), w.Score())
			}
		case engine.EventGameOver:
			s.gameOver()
		}
		if s.BroadcastFn != nil {
			s.BroadcastFn(Notification{Type: e.Type, Status: e.Status, State: s.view(-1)})
		}
	}
}

func (s *Session) gameOver() {
	scores := make(map[string]int, s.game.PlayerCount())
	for _, p := range s.game.Players() {
		scores[p.Name] = p.Score()
	}
	winner := ""
	if w := s.game.Winner(); w != nil {
		winner = w.Name
	}
	s.log.WithField("scores", scores).Infof("Game over. Winner: %s.", winner)
	if s.OnGameOver != nil {
		s.OnGameOver(s.ID, winner, scores)
	}
}

func (s *Session) currentName() string {
	if p := s.game.CurrentPlayer(); p != nil {
		return p.Name
	}
	return ""
}

// ---------------------------------------------------------------------------
// Inbound intents
// ---------------------------------------------------------------------------

// AddPlayer seats a participant before the game starts.
func (s *Session) AddPlayer(p *engine.Player) error {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	var err error
	s.apply("add_player", func() bool {
		err = s.game.AddPlayer(p)
		return err == nil
	})
	return err
}

// InitializeGame deals the first round.
func (s *Session) InitializeGame() error {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	var err error
	s.apply("initialize_game", func() bool {
		err = s.game.InitializeGame()
		return err == nil
	})
	if err == nil {
		s.log.Infof("Game started with %d players.", s.game.PlayerCount())
	}
	return err
}

// PlayCard plays the current player's card at hand index i.
func (s *Session) PlayCard(i int) engine.TurnAction {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	var a engine.TurnAction
	s.apply("play_card", func() bool {
		a = s.game.PlayCard(i)
		return a.OK()
	})
	return a
}

// DrawCard draws one card for the current player.
func (s *Session) DrawCard() engine.TurnAction {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	var a engine.TurnAction
	s.apply("draw_card", func() bool {
		a = s.game.DrawCard()
		return a.OK()
	})
	return a
}

// DrawCardAndPass draws one card and passes the turn.
func (s *Session) DrawCardAndPass() engine.TurnAction {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	var a engine.TurnAction
	s.apply("draw_card_and_pass", func() bool {
		a = s.game.DrawCardAndPass()
		return a.OK()
	})
	return a
}

// SetActiveColor resolves a pending colour choice.
func (s *Session) SetActiveColor(c engine.Color) error {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	var err error
	s.apply("set_active_color", func() bool {
		err = s.game.SetActiveColor(c)
		return err == nil
	})
	return err
}

// AdvanceToNextTurn passes the turn.
func (s *Session) AdvanceToNextTurn() error {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	var err error
	s.apply("advance_turn", func() bool {
		err = s.game.AdvanceToNextTurn()
		return err == nil
	})
	return err
}

// ResetGame clears the game back to NotStarted. It can be undone.
func (s *Session) ResetGame() {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.apply("reset_game", func() bool {
		s.game.ResetGame()
		return true
	})
}

// StartNewRound deals the next round after a round has ended.
func (s *Session) StartNewRound() error {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	var err error
	s.apply("start_new_round", func() bool {
		err = s.game.StartNewRound()
		return err == nil
	})
	if err == nil {
		s.log.Infof("Round %d dealt.", s.game.Round())
	}
	return err
}

// PlayAITurn takes one complete turn for the current computer player.
func (s *Session) PlayAITurn() (engine.TurnAction, error) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	var (
		a   engine.TurnAction
		err error
	)
	s.apply("play_ai_turn", func() bool {
		a, err = s.game.PlayAITurn()
		return err == nil
	})
	return a, err
}

// HandleTurnTimeout acts for the current player if their time has run out.
func (s *Session) HandleTurnTimeout() engine.TurnAction {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.handleTurnTimeout()
}

// handleTurnTimeout assumes Mu is held.
func (s *Session) handleTurnTimeout() engine.TurnAction {
	var a engine.TurnAction
	s.apply("turn_timeout", func() bool {
		a = s.game.HandleTurnTimeout()
		return a.OK()
	})
	return a
}

// ---------------------------------------------------------------------------
// History
// ---------------------------------------------------------------------------

// Undo restores the state from before the last accepted intent.
// Returns history.ErrNoHistory when there is nothing to undo.
func (s *Session) Undo() error {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	prev, err := s.history.Undo(s.game.Save())
	if err != nil {
		return err
	}
	if err := s.game.Restore(prev); err != nil {
		s.history.Revert(prev, true)
		s.log.WithError(err).Error("Undo snapshot rejected.")
		return err
	}
	s.log.Debug("Undo.")
	s.flush()
	return nil
}

// Redo re-applies the last undone intent.
func (s *Session) Redo() error {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	next, err := s.history.Redo(s.game.Save())
	if err != nil {
		return err
	}
	if err := s.game.Restore(next); err != nil {
		s.history.Revert(next, false)
		s.log.WithError(err).Error("Redo snapshot rejected.")
		return err
	}
	s.log.Debug("Redo.")
	s.flush()
	return nil
}

// CanUndo reports whether Undo would succeed.
func (s *Session) CanUndo() bool {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.history.CanUndo()
}

// CanRedo reports whether Redo would succeed.
func (s *Session) CanRedo() bool {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.history.CanRedo()
}

// ---------------------------------------------------------------------------
// Persistence
// ---------------------------------------------------------------------------

// Save writes the complete game state under key.
func (s *Session) Save(ctx context.Context, key string) error {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if s.store == nil {
		return fmt.Errorf("%w: no store configured", persist.ErrPersistence)
	}
	if err := s.codec.Save(ctx, s.store, key, s.game.Save()); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("Save failed.")
		return err
	}
	s.log.WithField("key", key).Info("Game saved.")
	return nil
}

// Load replaces the game state with the save under key. The save is fully
// validated first; on any error the live game and its history are untouched.
// A successful load clears the history.
func (s *Session) Load(ctx context.Context, key string) error {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if s.store == nil {
		return fmt.Errorf("%w: no store configured", persist.ErrPersistence)
	}
	snap, err := s.codec.Load(ctx, s.store, key)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("Load failed.")
		return err
	}
	if err := s.game.Restore(snap); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("Load failed.")
		return fmt.Errorf("%w: %v", persist.ErrCorrupt, err)
	}
	s.history.Clear()
	s.log.WithField("key", key).Info("Game loaded.")
	s.flush()
	return nil
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// Snapshot returns a deep copy of the game state.
func (s *Session) Snapshot() engine.Snapshot {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.game.Save()
}

// Read calls fn with the game under the lock. fn must only query; changes
// made through it bypass history and notifications.
func (s *Session) Read(fn func(g *engine.Game)) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	fn(s.game)
}

// SetClock replaces the clock behind turn deadlines.
func (s *Session) SetClock(now func() time.Time) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.game.SetClock(now)
}
