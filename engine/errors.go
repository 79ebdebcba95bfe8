package engine

import "errors"

var (
	// ErrInvalidCardIndex is returned when a hand index is out of range.
	ErrInvalidCardIndex = errors.New("card index out of range")
	// ErrInvalidPlay is returned when a card matches neither colour nor value and is not wild.
	ErrInvalidPlay = errors.New("card cannot be played on the active card")
	// ErrInvalidColorSelection is returned for ColorNone, ColorWild or an off-side colour.
	ErrInvalidColorSelection = errors.New("invalid colour selection")
	// ErrIllegalPlayerAdd is returned when a player cannot join.
	ErrIllegalPlayerAdd = errors.New("cannot add player")
	// ErrEmptyDeck is returned when neither pile can supply a card.
	ErrEmptyDeck = errors.New("draw and discard piles are exhausted")
	// ErrColorSelectionPending blocks turn-advancing intents until a colour is chosen.
	ErrColorSelectionPending = errors.New("colour selection pending")
	// ErrNotInProgress is returned for turn intents outside an active round.
	ErrNotInProgress = errors.New("round is not in progress")
	// ErrRoundNotEnded is returned by StartNewRound while a round is still live.
	ErrRoundNotEnded = errors.New("round has not ended")
	// ErrNotEnoughPlayers is returned by InitializeGame with fewer than MinPlayers.
	ErrNotEnoughPlayers = errors.New("not enough players")
	// ErrInvalidSnapshot is returned by Restore for structurally invalid snapshots.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)
