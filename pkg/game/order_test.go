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
	"testing"

	"laptudirm.com/x/goose/pkg/dice"
	"laptudirm.com/x/goose/pkg/player"
)

func namedPlayers(names ...string) []*player.Player {
	players := make([]*player.Player, len(names))
	for i, name := range names {
		players[i] = player.New(name, rune('a'+i), player.Human)
	}

	return players
}

func TestDetermineFirstPlayer(t *testing.T) {
	tests := []struct {
		name    string
		players []string
		rolls   []int
		want    int
	}{
		{"clear winner", []string{"A", "B"}, []int{10, 5}, 0},
		{"second player higher", []string{"A", "B"}, []int{4, 11}, 1},
		{"tie then decided", []string{"A", "B"}, []int{9, 9, 5, 8}, 1},
		{"tie repeated", []string{"A", "B"}, []int{7, 7, 4, 4, 3, 2}, 0},
		{"three way tie", []string{"A", "B", "C"}, []int{6, 6, 6, 2, 3, 4}, 2},
		{"tie below the leader is ignored", []string{"A", "B", "C"}, []int{8, 5, 5}, 0},
		{"later leader clears an earlier tie", []string{"A", "B", "C"}, []int{5, 5, 7}, 2},
		{"only the top pair rerolls", []string{"A", "B", "C", "D"}, []int{5, 5, 7, 7, 3, 4}, 3},
		{"single player", []string{"A"}, []int{2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := totals(tt.rolls...)
			prompter := &prompts{}

			got, err := DetermineFirstPlayer(namedPlayers(tt.players...), source, prompter, Discard)
			if err != nil {
				t.Fatalf("DetermineFirstPlayer() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("DetermineFirstPlayer() = %d, want %d", got, tt.want)
			}

			// Every scripted roll is used, and nobody rolls twice in a round.
			if remaining := source.Remaining(); remaining != 0 {
				t.Errorf("%d scripted rolls left unused", remaining)
			}

			if len(prompter.asked) != len(tt.rolls) {
				t.Errorf("prompted %d times, want %d", len(prompter.asked), len(tt.rolls))
			}
		})
	}
}

func TestDetermineFirstPlayerDice(t *testing.T) {
	source := dice.NewSequence(nil,
		dice.Roll{First: 4, Second: 5},
		dice.Roll{First: 3, Second: 6},
		dice.Roll{First: 2, Second: 3},
		dice.Roll{First: 2, Second: 6},
	)

	sink := &recorder{}
	got, err := DetermineFirstPlayer(twoPlayers(), source, nil, sink)
	if err != nil {
		t.Fatal(err)
	}

	if got != 1 {
		t.Errorf("DetermineFirstPlayer() = %d, want 1", got)
	}

	want := []string{
		"Everyone roll the dice. The highest roll plays first ...\n",
		"\tPlayer rolled 4 and 5 for a total of 9.",
		"\tPlayer rolled 3 and 6 for a total of 9.",
		"\nRerolling...The following players all tied:",
		"\tPlayer HUMAN with roll of 9",
		"\tPlayer COMPUTER with roll of 9",
		pageBreak,
		"\tPlayer rolled 2 and 3 for a total of 5.",
		"\tPlayer rolled 2 and 6 for a total of 8.",
		"Player COMPUTER goes first!",
		pageBreak,
	}

	if len(sink.lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(sink.lines), len(want), sink.lines)
	}

	for i := range want {
		if sink.lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, sink.lines[i], want[i])
		}
	}
}

func TestDetermineFirstPlayerPromptError(t *testing.T) {
	prompter := &prompts{err: ErrInputClosed}

	got, err := DetermineFirstPlayer(twoPlayers(), totals(3, 4), prompter, Discard)
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("DetermineFirstPlayer() error = %v, want %v", err, ErrInputClosed)
	}

	if got != -1 {
		t.Errorf("DetermineFirstPlayer() = %d, want -1", got)
	}

	if len(prompter.asked) != 1 {
		t.Errorf("prompted %d times after an error, want 1", len(prompter.asked))
	}
}
