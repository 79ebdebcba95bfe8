package engine

// EventType categorises outbound notifications.
type EventType uint8

const (
	EventStateUpdated EventType = iota // any accepted state change
	EventRoundEnded                    // InProgress → RoundEnded
	EventGameOver                      // InProgress → GameOver
)

func (t EventType) String() string {
	switch t {
	case EventStateUpdated:
		return "game_state_updated"
	case EventRoundEnded:
		return "round_ended"
	case EventGameOver:
		return "game_over"
	}
	return "unknown"
}

// Event is delivered to listeners once per qualifying transition.
type Event struct {
	Type   EventType
	Game   *Game
	Status Status
}

// Listener receives game events synchronously, on the caller's goroutine.
// Listeners must not call back into mutating Game methods.
type Listener func(Event)

// Subscribe registers a listener. Listeners survive ResetGame and Restore.
func (g *Game) Subscribe(l Listener) {
	if l != nil {
		g.listeners = append(g.listeners, l)
	}
}

func (g *Game) notify(t EventType) {
	ev := Event{Type: t, Game: g, Status: g.status}
	for _, l := range g.listeners {
		l(ev)
	}
}
