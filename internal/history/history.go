// internal/history/history.go

// Package history keeps bounded undo and redo stacks of engine snapshots.
package history

import (
	"errors"

	"github.com/jason-s-yu/unoflip/engine"
)

// DefaultDepth is the number of undo steps kept when none is configured.
const DefaultDepth = 50

// ErrNoHistory is returned by Undo and Redo when their stack is empty.
var ErrNoHistory = errors.New("no history available")

// Manager holds two bounded stacks of snapshots. Snapshots are owned by the
// manager once recorded; callers must pass fresh copies from Game.Save.
// A Manager is not safe for concurrent use; the owning session locks it
// together with its game.
type Manager struct {
	depth int
	undo  []engine.Snapshot
	redo  []engine.Snapshot
}

// New creates a Manager keeping at most depth undo steps. Non-positive depth
// selects DefaultDepth.
func New(depth int) *Manager {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Manager{depth: depth}
}

// Depth returns the maximum number of undo steps kept.
func (m *Manager) Depth() int { return m.depth }

// Record pushes the state from before a successful mutating action. The
// oldest entry is dropped past the depth limit and the redo stack is cleared.
func (m *Manager) Record(before engine.Snapshot) {
	m.undo = push(m.undo, before, m.depth)
	m.redo = nil
}

// Undo pops the most recent undo entry and pushes current onto the redo
// stack. The caller restores the returned snapshot.
func (m *Manager) Undo(current engine.Snapshot) (engine.Snapshot, error) {
	if len(m.undo) == 0 {
		return engine.Snapshot{}, ErrNoHistory
	}
	prev := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = push(m.redo, current, m.depth)
	return prev, nil
}

// Redo pops the most recent redo entry and pushes current onto the undo
// stack.
func (m *Manager) Redo(current engine.Snapshot) (engine.Snapshot, error) {
	if len(m.redo) == 0 {
		return engine.Snapshot{}, ErrNoHistory
	}
	next := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = push(m.undo, current, m.depth)
	return next, nil
}

// Revert puts back an entry taken by Undo or Redo when restoring it failed.
// undone reports which of the two calls produced it.
//
// Record empties the redo stack and Undo/Redo move one entry across, so the
// two stacks together never exceed the depth. The push done by Undo or Redo
// therefore never drops an entry, and Revert restores both stacks exactly.
func (m *Manager) Revert(taken engine.Snapshot, undone bool) {
	if undone {
		m.redo = m.redo[:len(m.redo)-1]
		m.undo = push(m.undo, taken, m.depth)
		return
	}
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = push(m.redo, taken, m.depth)
}

// CanUndo reports whether Undo would succeed.
func (m *Manager) CanUndo() bool { return len(m.undo) > 0 }

// CanRedo reports whether Redo would succeed.
func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// UndoLen returns the number of undo entries.
func (m *Manager) UndoLen() int { return len(m.undo) }

// RedoLen returns the number of redo entries.
func (m *Manager) RedoLen() int { return len(m.redo) }

// Clear empties both stacks.
func (m *Manager) Clear() {
	m.undo = nil
	m.redo = nil
}

// push appends s, discarding the oldest entry when the stack is full.
func push(stack []engine.Snapshot, s engine.Snapshot, depth int) []engine.Snapshot {
	if len(stack) >= depth {
		n := copy(stack, stack[len(stack)-depth+1:])
		stack = stack[:n]
	}
	return append(stack, s)
}
