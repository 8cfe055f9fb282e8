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
	"reflect"
	"strings"
	"testing"

	"laptudirm.com/x/goose/pkg/board"
	"laptudirm.com/x/goose/pkg/dice"
	"laptudirm.com/x/goose/pkg/player"
)

func TestResolveMove(t *testing.T) {
	tests := []struct {
		name    string
		from    int
		roll    int
		want    int
		effects []board.Effect
		bounced bool
	}{
		{
			name: "plain move",
			from: 0, roll: 3, want: 3,
		},
		{
			name: "exactly on the terminal space",
			from: 13, roll: 10, want: 23,
		},
		{
			name: "overshoot bounces back",
			from: 20, roll: 7, want: 19,
			bounced: true,
		},
		{
			name: "chained geese reuse the roll",
			from: 2, roll: 4, want: 18,
			effects: []board.Effect{board.ExtraMove, board.ExtraMove, board.ExtraMove},
		},
		{
			name: "goose then plain",
			from: 0, roll: 10, want: 20,
			effects: []board.Effect{board.ExtraMove},
		},
		{
			name: "bridge",
			from: 3, roll: 2, want: 11,
			effects: []board.Effect{board.Shortcut},
		},
		{
			name: "bridge from further back",
			from: 0, roll: 5, want: 11,
			effects: []board.Effect{board.Shortcut},
		},
		{
			name: "maze undoes the move",
			from: 7, roll: 5, want: 7,
			effects: []board.Effect{board.Blocked},
		},
		{
			name: "goose into a maze undoes the whole move",
			from: 0, roll: 6, want: 0,
			effects: []board.Effect{board.ExtraMove, board.Blocked},
		},
		{
			name: "skull",
			from: 18, roll: 4, want: 0,
			effects: []board.Effect{board.ResetToStart},
		},
		{
			name: "bounce onto a skull",
			from: 20, roll: 4, want: 0,
			effects: []board.Effect{board.ResetToStart},
			bounced: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track := board.NewTrack(board.Default)
			players := twoPlayers()
			players[0].Position = tt.from
			track.MarkOccupied(tt.from)

			sink := &recorder{}
			move := ResolveMove(track, players, 0, tt.roll, sink)

			if move.To != tt.want || players[0].Position != tt.want {
				t.Errorf("ResolveMove() to %d (position %d), want %d", move.To, players[0].Position, tt.want)
			}

			if move.From != tt.from || move.Roll != tt.roll || move.Player != 0 {
				t.Errorf("ResolveMove() = %+v, want from %d roll %d", move, tt.from, tt.roll)
			}

			if !reflect.DeepEqual(move.Effects, tt.effects) {
				t.Errorf("effects = %v, want %v", move.Effects, tt.effects)
			}

			if move.Bounced != tt.bounced {
				t.Errorf("bounced = %v, want %v", move.Bounced, tt.bounced)
			}

			// One line per effect, and the new space.
			if len(sink.lines) != len(tt.effects)+1 {
				t.Errorf("got %d status lines, want %d: %q", len(sink.lines), len(tt.effects)+1, sink.lines)
			}

			if !track.IsOccupied(tt.want) {
				t.Errorf("destination %d not marked occupied", tt.want)
			}
		})
	}
}

func TestResolveMoveNarration(t *testing.T) {
	track := board.NewTrack(board.Default)
	players := twoPlayers()

	sink := &recorder{}
	ResolveMove(track, players, 0, 5, sink)

	want := []string{
		"Player HUMAN landed on a bridge! Moving to space 12!",
		"New space is: 12",
	}
	if !reflect.DeepEqual(sink.lines, want) {
		t.Errorf("lines = %q, want %q", sink.lines, want)
	}
}

func TestResolveMoveOccupancy(t *testing.T) {
	track := board.NewTrack(board.Default)
	players := twoPlayers()

	ResolveMove(track, players, 0, 3, Discard)
	if !track.IsOccupied(0) {
		t.Error("start cleared while COMPUTER still stands on it")
	}

	ResolveMove(track, players, 1, 3, Discard)
	if track.IsOccupied(0) {
		t.Error("start still occupied after both players left")
	}

	// Both players now share space 4; moving one keeps it occupied.
	ResolveMove(track, players, 0, 4, Discard)
	if !track.IsOccupied(3) {
		t.Error("shared space cleared while a player remains")
	}
}

func TestOccupancyInvariant(t *testing.T) {
	track := board.NewTrack(board.Default)
	players := []*player.Player{
		player.New("A", 'a', player.Human),
		player.New("B", 'b', player.Human),
		player.New("C", 'c', player.Computer),
	}

	source := dice.NewSeeded(7)
	for turn := 0; turn < 2000; turn++ {
		index := turn % len(players)
		ResolveMove(track, players, index, source.Roll().Total(), Discard)

		for position := 0; position < track.Size(); position++ {
			if got, want := track.IsOccupied(position), player.At(players, position); got != want {
				t.Fatalf("turn %d: IsOccupied(%d) = %v, want %v", turn, position, got, want)
			}
		}

		if players[index].Position == track.Terminal() {
			track.Reset()
			for _, p := range players {
				p.Reset()
			}
		}
	}
}

func TestBounce(t *testing.T) {
	tests := []struct {
		position, terminal, want int
	}{
		{10, 23, 10},
		{23, 23, 23},
		{27, 23, 19},
		{35, 23, 11},
		// Reflected past the start and reflected again.
		{50, 23, 4},
		{12, 5, 2},
		{-3, 23, 3},
	}

	for _, tt := range tests {
		if got := bounce(tt.position, tt.terminal); got != tt.want {
			t.Errorf("bounce(%d, %d) = %d, want %d", tt.position, tt.terminal, got, tt.want)
		}
	}
}

func TestWriterSink(t *testing.T) {
	var sb strings.Builder
	WriterSink{W: &sb}.Status("rolled %d", 7)

	if sb.String() != "rolled 7\n" {
		t.Errorf("WriterSink wrote %q, want %q", sb.String(), "rolled 7\n")
	}
}
