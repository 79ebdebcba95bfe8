package engine

import "testing"

type eventLog struct{ events []Event }

func (l *eventLog) listen(e Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func TestEventsFireOncePerChange(t *testing.T) {
	g := NewGame(4, DefaultRules())
	log := &eventLog{}
	g.Subscribe(log.listen)
	g.Subscribe(nil)

	g.AddPlayer(NewAIPlayer("a", StrategyFirstValid))
	g.AddPlayer(NewAIPlayer("b", StrategyFirstValid))
	if err := g.InitializeGame(); err != nil {
		t.Fatal(err)
	}
	if got := log.count(EventStateUpdated); got != 3 {
		t.Errorf("state updates = %d, want 3", got)
	}

	log.events = nil
	rig(g, NewCard(ValueFive, ColorRed), NewCard(ValueFive, ColorBlue), NewCard(ValueOne, ColorGreen))
	g.PlayCard(0)
	if len(log.events) != 1 || log.events[0].Type != EventStateUpdated {
		t.Errorf("events = %v, want one state update", log.events)
	}
	if log.events[0].Game != g {
		t.Error("event carries the wrong game")
	}

	log.events = nil
	g.PlayCard(7)
	if len(log.events) != 0 {
		t.Errorf("rejected play fired %d events", len(log.events))
	}
}

func TestEventOrderOnRoundEnd(t *testing.T) {
	g := newStartedGame(t, 2, 4)
	log := &eventLog{}
	g.Subscribe(log.listen)
	rig(g, NewCard(ValueFive, ColorRed), NewCard(ValueOne, ColorRed))
	g.PlayCard(0)

	if len(log.events) != 2 {
		t.Fatalf("events = %d, want 2", len(log.events))
	}
	if log.events[0].Type != EventRoundEnded || log.events[1].Type != EventStateUpdated {
		t.Errorf("order = %s, %s", log.events[0].Type, log.events[1].Type)
	}
	if log.events[0].Status != StatusRoundEnded {
		t.Errorf("status = %s", log.events[0].Status)
	}
}
