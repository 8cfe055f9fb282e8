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

package console

import (
	"errors"
	"strings"
	"testing"

	"laptudirm.com/x/goose/pkg/game"
	"laptudirm.com/x/goose/pkg/player"
)

func TestMenu(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		play    bool
		invalid int
		err     error
	}{
		{name: "play", input: "p\n", play: true},
		{name: "play upper case", input: "Play\n", play: true},
		{name: "quit", input: "Q\n"},
		{name: "invalid then play", input: "x\n\nP\n", play: true, invalid: 2},
		{name: "closed input", input: "", err: game.ErrInputClosed},
		{name: "answer without newline", input: "q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			play, err := New(strings.NewReader(tt.input), &out).Menu()

			if !errors.Is(err, tt.err) {
				t.Fatalf("Menu() error = %v, want %v", err, tt.err)
			}

			if play != tt.play {
				t.Errorf("Menu() = %v, want %v", play, tt.play)
			}

			if got := strings.Count(out.String(), "Selection was invalid"); got != tt.invalid {
				t.Errorf("printed %d invalid selections, want %d", got, tt.invalid)
			}
		})
	}
}

func TestAwaitRoll(t *testing.T) {
	human := player.New("HUMAN", '$', player.Human)
	computer := player.New("COMPUTER", '%', player.Computer)

	tests := []struct {
		player *player.Player
		phase  game.Phase
		want   string
	}{
		{human, game.Opening, "Player HUMAN, press <Enter> to roll the dice..."},
		{computer, game.Opening, "Press <Enter> to let player COMPUTER roll the dice..."},
		{human, game.Turn, "Player HUMAN turn. Press <Enter> to roll the dice..."},
		{computer, game.Turn, "Player COMPUTER turn. Press <Enter> to let them roll the dice..."},
	}

	for _, tt := range tests {
		var out strings.Builder
		if err := New(strings.NewReader("\n"), &out).AwaitRoll(tt.player, tt.phase); err != nil {
			t.Fatal(err)
		}

		if out.String() != tt.want {
			t.Errorf("AwaitRoll() printed %q, want %q", out.String(), tt.want)
		}
	}

	err := New(strings.NewReader(""), &strings.Builder{}).AwaitRoll(human, game.Turn)
	if !errors.Is(err, game.ErrInputClosed) {
		t.Errorf("AwaitRoll() on closed input = %v, want %v", err, game.ErrInputClosed)
	}
}

func TestSeed(t *testing.T) {
	var out strings.Builder
	seed, err := New(strings.NewReader("1234\n"), &out).Seed()
	if err != nil {
		t.Fatal(err)
	}

	if seed != 1234 {
		t.Errorf("Seed() = %d, want 1234", seed)
	}

	if !strings.HasSuffix(out.String(), pageBreak) {
		t.Error("Seed() did not print a page break")
	}

	// Invalid input still yields a seed.
	for _, input := range []string{"goose\n", "0\n", "-5\n"} {
		if _, err := New(strings.NewReader(input), &out).Seed(); err != nil {
			t.Errorf("Seed() with %q: %v", input, err)
		}
	}
}

func TestPrompt(t *testing.T) {
	c := New(strings.NewReader("first\r\nsecond\n"), &strings.Builder{})

	for _, want := range []string{"first", "second"} {
		got, err := c.Prompt("> ")
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("Prompt() = %q, want %q", got, want)
		}
	}

	if _, err := c.Prompt("> "); !errors.Is(err, game.ErrInputClosed) {
		t.Errorf("Prompt() after the last line = %v, want %v", err, game.ErrInputClosed)
	}
}
