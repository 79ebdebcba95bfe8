package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jason-s-yu/unoflip/engine"
	"github.com/jason-s-yu/unoflip/internal/config"
	"github.com/jason-s-yu/unoflip/internal/persist"
	"github.com/jason-s-yu/unoflip/internal/session"
	"github.com/sirupsen/logrus"
)

// maxTurns bounds a single simulated game.
const maxTurns = 200000

var errUnfinished = errors.New("game did not finish")

// gameResult summarises one finished game.
type gameResult struct {
	Winner int
	Rounds int
	Turns  int
	Scores []int
}

// parseStrategies turns "strategic,first_valid" into one strategy per seat.
func parseStrategies(list string) ([]engine.Strategy, error) {
	var out []engine.Strategy
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		s, err := engine.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if len(out) < engine.MinPlayers || len(out) > engine.MaxPlayers {
		return nil, fmt.Errorf("need %d to %d players, got %d", engine.MinPlayers, engine.MaxPlayers, len(out))
	}
	return out, nil
}

// seatName labels a seat by position and strategy.
func seatName(i int, s engine.Strategy) string {
	return fmt.Sprintf("cpu%d-%s", i+1, s)
}

// playGame runs one AI-only game to completion.
func playGame(cfg *config.Config, strategies []engine.Strategy, store persist.Store, log *logrus.Entry) (*session.Session, gameResult, error) {
	s := session.New(cfg, store, log)
	for i, st := range strategies {
		if err := s.AddPlayer(engine.NewAIPlayer(seatName(i, st), st)); err != nil {
			return nil, gameResult{}, err
		}
	}
	if err := s.InitializeGame(); err != nil {
		return nil, gameResult{}, err
	}

	res := gameResult{Winner: -1, Rounds: 1}
	for res.Turns < maxTurns {
		switch s.View(-1).Status {
		case engine.StatusGameOver:
			return s, finish(s, res), nil
		case engine.StatusRoundEnded:
			if err := s.StartNewRound(); err != nil {
				return nil, res, err
			}
			res.Rounds++
		default:
			if _, err := s.PlayAITurn(); err != nil {
				return nil, res, err
			}
			res.Turns++
		}
	}
	return nil, res, fmt.Errorf("%w after %d turns", errUnfinished, res.Turns)
}

func finish(s *session.Session, res gameResult) gameResult {
	v := s.View(-1)
	for i, p := range v.Players {
		res.Scores = append(res.Scores, p.Score)
		if p.Name == v.Winner {
			res.Winner = i
		}
	}
	return res
}
