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

package game

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/goose/pkg/board"
	"laptudirm.com/x/goose/pkg/dice"
	"laptudirm.com/x/goose/pkg/player"
)

type Options struct {
	Layout board.Layout

	Dice     dice.Source
	Sink     Sink     // defaults to Discard
	Renderer Renderer // optional
	Prompter Prompter // optional

	// MaxTurns stops a game without a winner after that many turns. Zero,
	// the default, lets a game run until somebody wins.
	MaxTurns int
}

// Game owns the track and the players for the duration of a game.
type Game struct {
	Options

	track   *board.Track
	players []*player.Player
}

// New prepares a game between the given players. A zero Layout selects the
// reference board.
func New(players []*player.Player, options Options) (*Game, error) {
	if len(players) == 0 {
		return nil, errors.New("new game: no players")
	}

	if options.Dice == nil {
		return nil, errors.New("new game: no dice source")
	}

	if options.Layout.Size == 0 {
		options.Layout = board.Default
	}

	if err := options.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	if options.Sink == nil {
		options.Sink = Discard
	}

	game := &Game{
		Options: options,
		track:   board.NewTrack(options.Layout),
		players: players,
	}

	game.Reset()
	return game, nil
}

// Track returns the game's track.
func (game *Game) Track() *board.Track {
	return game.track
}

// Players returns the players of the game in turn order.
func (game *Game) Players() []*player.Player {
	return game.players
}

// Reset rebuilds the track and puts every player back on the start space.
func (game *Game) Reset() {
	game.track.Reset()
	for _, p := range game.players {
		p.Reset()
	}
}

// Result is the outcome of a finished game.
type Result struct {
	Winner int // index of the winner, -1 if the turn cap was hit
	First  int // index of the player who moved first
	Turns  int

	Capped bool
	Moves  []Move
}

func (result Result) String() string {
	if result.Capped {
		return fmt.Sprintf("no winner after %d turns", result.Turns)
	}

	return fmt.Sprintf("player %d wins in %d turns", result.Winner+1, result.Turns)
}

// Run plays a full game: it resets the board, decides who moves first and
// then alternates turns until a player reaches the terminal space.
func (game *Game) Run() (Result, error) {
	game.Reset()

	result := Result{Winner: -1, First: -1}

	current, err := DetermineFirstPlayer(game.players, game.Dice, game.Prompter, game.Sink)
	if err != nil {
		return result, fmt.Errorf("run game: %w", err)
	}

	result.First = current
	game.render()

	for {
		if game.MaxTurns > 0 && result.Turns >= game.MaxTurns {
			result.Capped = true
			logrus.WithField("turns", result.Turns).Debug("Turn cap reached")
			return result, nil
		}

		move, err := game.Turn(current)
		if err != nil {
			return result, fmt.Errorf("run game: %w", err)
		}

		result.Turns++
		result.Moves = append(result.Moves, move)

		game.render()

		if winner, found := game.Winner(); found {
			result.Winner = winner
			game.Sink.Status("*** Game Over! Player %s wins! ***", game.players[winner].Name)
			breakPage(game.Sink)
			return result, nil
		}

		current = game.Next(current)
	}
}

// Turn plays a single turn of the player at index.
func (game *Game) Turn(index int) (Move, error) {
	p := game.players[index]

	if game.Prompter != nil {
		if err := game.Prompter.AwaitRoll(p, Turn); err != nil {
			return Move{}, err
		}
	}

	roll := rollDice(game.Dice, game.Sink)
	move := ResolveMove(game.track, game.players, index, roll.Total(), game.Sink)
	breakPage(game.Sink)

	return move, nil
}

// Next returns the index of the player moving after current.
func (game *Game) Next(current int) int {
	return (current + 1) % len(game.players)
}

// Winner returns the player standing on the terminal space, if any.
func (game *Game) Winner() (int, bool) {
	terminal := game.track.Terminal()
	if !game.track.IsOccupied(terminal) {
		return -1, false
	}

	return board.Occupant(game.players, terminal)
}

func (game *Game) render() {
	if game.Renderer != nil {
		game.Renderer.Render(game.track.Cells(game.players))
	}
}
