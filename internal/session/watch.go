// internal/session/watch.go
package session

import (
	"context"
	"time"
)

// WatchTurnTimer polls the turn deadline every interval and times out
// expired turns until ctx is cancelled. It blocks; run it on its own
// goroutine.
func (s *Session) WatchTurnTimer(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Mu.Lock()
			if s.game.IsTurnTimeExpired() {
				s.log.WithField("player", s.currentName()).Info("Turn timed out.")
				s.handleTurnTimeout()
			}
			s.Mu.Unlock()
		}
	}
}
