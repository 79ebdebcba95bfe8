package engine

import "time"

// HandPoints returns the points held in a hand for the given side.
func HandPoints(hand []Card, isDarkSide bool) int {
	total := 0
	for _, c := range hand {
		total += c.ScoreValue(isDarkSide)
	}
	return total
}

// roundPoints sums every opponent's hand for the round winner.
func (g *Game) roundPoints(winner int) int {
	dark := g.deck.IsDarkSide()
	total := 0
	for i, p := range g.players {
		if i == winner {
			continue
		}
		total += HandPoints(p.hand, dark)
	}
	return total
}

// endRound credits the winner with the opponents' hand points and moves to
// StatusGameOver if the target score is reached, otherwise StatusRoundEnded.
func (g *Game) endRound(winner int) {
	points := g.roundPoints(winner)
	w := g.players[winner]
	w.AddScore(points)

	g.roundWinner = winner
	g.lastRoundPoints = points
	g.clearPending()
	g.deadline = time.Time{}

	if w.Score() >= g.rules.TargetScore {
		g.status = StatusGameOver
		g.winner = winner
		g.notify(EventGameOver)
		return
	}
	g.status = StatusRoundEnded
	g.notify(EventRoundEnded)
}
