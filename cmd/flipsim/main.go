// Command flipsim plays AI-only Uno Flip games and reports how each seat's
// strategy performed.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/jason-s-yu/unoflip/internal/config"
	"github.com/jason-s-yu/unoflip/internal/persist"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sirupsen/logrus"
)

var (
	header = color.New(color.FgWhite, color.Bold)
	good   = color.New(color.FgGreen)
	info   = color.New(color.FgCyan)
)

type seatStats struct {
	name   string
	wins   int
	points int
}

func main() {
	games := flag.Int("games", 100, "number of games to play")
	players := flag.String("players", "strategic,highest_score,first_valid", "comma separated strategy per seat")
	seed := flag.Uint64("seed", 0, "base seed, game i uses seed+i (0 = UNOFLIP_SEED or time based)")
	target := flag.Int("target", 0, "target score (0 = UNOFLIP_TARGET_SCORE)")
	saveKey := flag.String("save", "", "save the last game's final state under this key")
	envFile := flag.String("env", ".env", "env file to read before UNOFLIP_* variables")
	logLevel := flag.String("loglevel", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if *logLevel != "" {
		if lvl, err := logrus.ParseLevel(*logLevel); err == nil {
			cfg.LogLevel = lvl
		}
	}
	logrus.SetLevel(cfg.LogLevel)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})
	log := logrus.NewEntry(logrus.StandardLogger())

	strategies, err := parseStrategies(*players)
	if err != nil {
		log.Fatalf("Bad -players: %v", err)
	}
	if *target > 0 {
		cfg.TargetScore = *target
	}
	base := cfg.Seed
	if *seed != 0 {
		base = *seed
	}
	if base == 0 {
		base = uint64(time.Now().UnixNano())
	}

	ctx := context.Background()
	var store persist.Store
	if *saveKey != "" {
		if store, err = cfg.NewStore(ctx, log); err != nil {
			log.Fatalf("Failed to open %s store: %v", cfg.Store, err)
		}
		defer store.Close()
	}

	stats := make([]seatStats, len(strategies))
	for i, s := range strategies {
		stats[i].name = seatName(i, s)
	}
	rounds, turns := 0, 0

	header.Printf("--- Simulating %d games (%d players, target %d) ---\n", *games, len(strategies), cfg.Rules().TargetScore)
	start := time.Now()
	for i := 0; i < *games; i++ {
		cfg.Seed = base + uint64(i)
		sess, res, err := playGame(cfg, strategies, store, log)
		if err != nil {
			log.WithField("seed", cfg.Seed).Fatalf("Game %d failed: %v", i+1, err)
		}
		stats[res.Winner].wins++
		for seat, pts := range res.Scores {
			stats[seat].points += pts
		}
		rounds += res.Rounds
		turns += res.Turns

		if i == *games-1 && store != nil {
			if err := sess.Save(ctx, *saveKey); err != nil {
				log.Errorf("Failed to save final state: %v", err)
			} else {
				info.Printf("Final state saved to %s store under %q.\n", cfg.Store, *saveKey)
			}
		}
	}
	elapsed := time.Since(start)

	render(stats, *games)
	info.Printf("%d rounds, %d turns in %s (base seed %d).\n", rounds, turns, elapsed.Round(time.Millisecond), base)
}

func render(stats []seatStats, games int) {
	best := 0
	for i, s := range stats {
		if s.wins > stats[best].wins {
			best = i
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Results")
	t.AppendHeader(table.Row{"Seat", "Player", "Wins", "Win %", "Avg score"})
	for i, s := range stats {
		name := s.name
		if i == best && s.wins > 0 {
			name = good.Sprint(name)
		}
		pct, avg := 0.0, 0.0
		if games > 0 {
			pct = 100 * float64(s.wins) / float64(games)
			avg = float64(s.points) / float64(games)
		}
		t.AppendRow(table.Row{i + 1, name, s.wins, fmt.Sprintf("%.1f", pct), fmt.Sprintf("%.1f", avg)})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	t.Render()
}
