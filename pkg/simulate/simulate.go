// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simulate

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/goose/pkg/board"
	"laptudirm.com/x/goose/pkg/dice"
	"laptudirm.com/x/goose/pkg/game"
	"laptudirm.com/x/goose/pkg/player"
	"laptudirm.com/x/goose/pkg/simulate/schedule"
	"laptudirm.com/x/goose/pkg/stats"
)

type Config struct {
	// The roster of players taking part in every game.
	Players []player.Player

	// Number of games to play, and how many are played concurrently.
	Games       int
	Concurrency int

	// Game n is played with dice seeded with Seed+n.
	Seed uint64

	// Turn cap of every game, zero for none. Capped games count as draws.
	MaxTurns int

	// Seat scheduler name, see schedule.New.
	Schedule string

	// Print the report every ReportEvery finished games, zero for never.
	ReportEvery int

	// Stop as soon as a sequential probability ratio test on the score of
	// the player moving first accepts either hypothesis.
	Sprt struct {
		Enabled     bool
		Elo0, Elo1  float64 // The null and the alternate elo hypotheses.
		Alpha, Beta float64 // Confidence bounds for Error types I and II.
	}

	// Layout of the board, zero for the reference board.
	Layout board.Layout

	// Where reports are written, nil for nowhere.
	Out io.Writer
}

func NewSimulation(config Config) (*Simulation, error) {
	if len(config.Players) == 0 {
		return nil, errors.New("new simulation: no players")
	}

	if config.Games <= 0 {
		return nil, fmt.Errorf("new simulation: invalid number of games %d", config.Games)
	}

	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}

	if config.Out == nil {
		config.Out = io.Discard
	}

	var sim Simulation
	sim.Config = config

	var err error
	sim.Scheduler, err = schedule.New(config.Schedule)
	if err != nil {
		return nil, err
	}
	sim.Scheduler.Initialize(len(config.Players))

	if config.Sprt.Enabled {
		if config.Sprt.Alpha <= 0 || config.Sprt.Alpha >= 1 || config.Sprt.Beta <= 0 || config.Sprt.Beta >= 1 {
			return nil, errors.New("new simulation: sprt alpha and beta must lie in (0, 1)")
		}
		sim.a, sim.b = stats.StoppingBounds(config.Sprt.Alpha, config.Sprt.Beta)
	}

	sim.Summary.Scores = make([]Tally, len(config.Players))

	sim.games = make(chan *Match)
	sim.results = make(chan Result)

	return &sim, nil
}

type Simulation struct {
	Config

	Scheduler schedule.Scheduler
	Summary   Summary

	games   chan *Match
	results chan Result

	ended atomic.Bool
	a, b  float64
}

// Tally is the record of one player of the roster.
type Tally struct {
	Wins, Losses, Capped int

	// Games won while moving first.
	FirstWins int
}

// Summary aggregates the results of a simulation.
type Summary struct {
	Games  int
	Scores []Tally

	// Score of whichever player moved first in each game.
	First stats.Score

	Turns   int
	Longest int

	// "H0" or "H1" if the sprt stopped the simulation.
	Decision string
}

// AverageTurns returns the mean length of a game in turns.
func (summary Summary) AverageTurns() float64 {
	if summary.Games == 0 {
		return 0
	}
	return float64(summary.Turns) / float64(summary.Games)
}

// Start plays every game of the simulation and returns its summary.
func (sim *Simulation) Start() (Summary, error) {
	var workers sync.WaitGroup
	for i := 0; i < sim.Concurrency; i++ {
		workers.Add(1)
		go func() {
			defer workers.Done()
			sim.Thread()
		}()
	}

	handled := make(chan struct{})
	go func() {
		defer close(handled)
		sim.ResultHandler()
	}()

	for number := 1; number <= sim.Games && !sim.ended.Load(); number++ {
		seats := sim.Scheduler.Seats(number - 1)

		players := make([]*player.Player, len(seats))
		for i, seat := range seats {
			p := sim.Players[seat]
			players[i] = player.New(p.Name, p.Symbol, p.Kind)
		}

		sim.games <- &Match{
			Number:  number,
			Seed:    sim.Seed + uint64(number),
			Seats:   seats,
			Players: players,
		}
	}

	close(sim.games)
	workers.Wait()
	close(sim.results)
	<-handled

	return sim.Summary, nil
}

// Match is a single game of a simulation.
type Match struct {
	Number int
	Seed   uint64

	// Seats maps every seat of the game to its player in the roster.
	Seats   []int
	Players []*player.Player
}

func (sim *Simulation) Thread() {
	for match := range sim.games {
		result, err := sim.RunGame(match)
		if err != nil {
			logrus.Error(err)
			continue
		}

		sim.results <- result
	}
}

func (sim *Simulation) RunGame(match *Match) (Result, error) {
	logger := logrus.WithField("game", match.Number)
	logger.WithField("seed", match.Seed).Debug("Starting game")

	g, err := game.New(match.Players, game.Options{
		Layout:   sim.Layout,
		Dice:     dice.NewSeeded(match.Seed),
		Sink:     game.LogSink{Logger: logger},
		MaxTurns: sim.MaxTurns,
	})
	if err != nil {
		return Result{}, fmt.Errorf("run game %d: %w", match.Number, err)
	}

	result, err := g.Run()
	if err != nil {
		return Result{}, fmt.Errorf("run game %d: %w", match.Number, err)
	}

	logger.Debugf("Finished game: %s", result)
	return Result{Match: match, Result: result}, nil
}

func (sim *Simulation) ResultHandler() {
	for result := range sim.results {
		sim.record(result)

		if sim.ReportEvery > 0 && sim.Summary.Games%sim.ReportEvery == 0 {
			sim.Report()
		}

		if !sim.Sprt.Enabled || sim.Summary.Decision != "" {
			continue
		}

		if llr := sim.LLR(); llr <= sim.a {
			sim.Summary.Decision = "H0"
		} else if llr >= sim.b {
			sim.Summary.Decision = "H1"
		} else {
			continue
		}

		logrus.WithField("games", sim.Summary.Games).Infof("SPRT accepted %s", sim.Summary.Decision)
		sim.ended.Store(true)
	}
}

func (sim *Simulation) record(result Result) {
	summary := &sim.Summary
	summary.Games++
	summary.Turns += result.Turns
	if result.Turns > summary.Longest {
		summary.Longest = result.Turns
	}

	if result.Capped {
		summary.First.Draws++
		for _, seat := range result.Match.Seats {
			summary.Scores[seat].Capped++
		}
		return
	}

	for i, seat := range result.Match.Seats {
		if i == result.Winner {
			summary.Scores[seat].Wins++
			if i == result.First {
				summary.Scores[seat].FirstWins++
			}
		} else {
			summary.Scores[seat].Losses++
		}
	}

	if result.Winner == result.First {
		summary.First.Wins++
	} else {
		summary.First.Losses++
	}
}

// LLR returns the log-likelihood ratio of the sprt on the first mover's score.
func (sim *Simulation) LLR() float64 {
	return sim.Summary.First.LLR(sim.Sprt.Elo0, sim.Sprt.Elo1)
}

func (sim *Simulation) Report() {
	summary := sim.Summary

	fmt.Fprintln(sim.Out, "╔══════════════════════════════════════════════════════════╗")
	fmt.Fprintln(sim.Out, "║    Name                 Wins  Loss  Capped  First  Total ║")
	fmt.Fprintln(sim.Out, "╠══════════════════════════════════════════════════════════╣")
	for i, p := range sim.Players {
		score := summary.Scores[i]
		fmt.Fprintf(
			sim.Out,
			"║ %2d. %-15s    %5d %5d %7d %6d %6d ║\n",
			i+1, p.Name,
			score.Wins, score.Losses, score.Capped, score.FirstWins,
			score.Wins+score.Losses+score.Capped,
		)
	}
	fmt.Fprintln(sim.Out, "╠══════════════════════════════════════════════════════════╣")

	_, elo, _ := summary.First.Elo()
	fmt.Fprintf(sim.Out, "%-59s║\n", fmt.Sprintf("║ FIRST | %.1f%% elo %+.2f +- %.2f (95%%)", 100*summary.First.Rate(), elo, summary.First.ErrorMargin()))
	fmt.Fprintf(sim.Out, "%-59s║\n", fmt.Sprintf("║ TURNS | avg %.2f longest %d", summary.AverageTurns(), summary.Longest))
	if sim.Sprt.Enabled {
		fmt.Fprintf(sim.Out, "%-59s║\n", fmt.Sprintf("║ LLR   | %.2f (%.2f, %.2f) [%.2f, %.2f]", sim.LLR(), sim.a, sim.b, sim.Sprt.Elo0, sim.Sprt.Elo1))
	}
	fmt.Fprintln(sim.Out, "╚══════════════════════════════════════════════════════════╝")
}

type Result struct {
	Match *Match
	game.Result
}

func (result Result) String() string {
	if result.Capped {
		return fmt.Sprintf("game %d: no winner after %d turns", result.Match.Number, result.Turns)
	}

	return fmt.Sprintf("game %d: %s wins in %d turns", result.Match.Number, result.Match.Players[result.Winner].Name, result.Turns)
}
