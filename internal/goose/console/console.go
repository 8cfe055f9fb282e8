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

// Package console is the line based front end of an interactive game: the
// welcome menu, the seed prompt and the "press <Enter>" prompts before
// every roll.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/goose/pkg/dice"
	"laptudirm.com/x/goose/pkg/game"
	"laptudirm.com/x/goose/pkg/player"
)

const pageBreak = "\n*********************************************************************************\n\n"

var welcome = heredoc.Doc(`
	*** Welcome to The Game of the Goose! ***
	  1) To play, enter 'P' or 'p'
	  2) To quit, enter 'Q' or 'q'
	Please select an option: `)

// Console reads answers from In and writes prompts to Out.
type Console struct {
	In  *bufio.Reader
	Out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{In: bufio.NewReader(in), Out: out}
}

// Prompt prints the prompt and returns the next line of input without its
// line ending. Once the input is exhausted it returns game.ErrInputClosed.
func (c *Console) Prompt(format string, args ...any) (string, error) {
	fmt.Fprintf(c.Out, format, args...)

	line, err := c.In.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("prompt: %w", err)
		}

		if line == "" {
			return "", game.ErrInputClosed
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// PageBreak prints a line which separates the phases of a game.
func (c *Console) PageBreak() {
	fmt.Fprint(c.Out, pageBreak)
}

// AwaitRoll waits for <Enter> before the player's roll.
func (c *Console) AwaitRoll(p *player.Player, phase game.Phase) error {
	var err error

	switch {
	case phase == game.Opening && p.Kind == player.Computer:
		_, err = c.Prompt("Press <Enter> to let player %s roll the dice...", p.Name)
	case phase == game.Opening:
		_, err = c.Prompt("Player %s, press <Enter> to roll the dice...", p.Name)
	case p.Kind == player.Computer:
		_, err = c.Prompt("Player %s turn. Press <Enter> to let them roll the dice...", p.Name)
	default:
		_, err = c.Prompt("Player %s turn. Press <Enter> to roll the dice...", p.Name)
	}

	return err
}

// Menu asks whether to play a game or quit until it gets a valid answer.
func (c *Console) Menu() (bool, error) {
	for {
		answer, err := c.Prompt("%s", welcome)
		if err != nil {
			return false, err
		}

		var choice byte
		if answer = strings.TrimSpace(answer); answer != "" {
			choice = answer[0]
		}

		switch choice {
		case 'P', 'p':
			c.PageBreak()
			return true, nil

		case 'Q', 'q':
			c.PageBreak()
			return false, nil

		default:
			fmt.Fprint(c.Out, "\nSelection was invalid. Try again.\n\n")
		}
	}
}

// Seed asks for the seed of the dice. Anything but a positive integer
// selects a random seed.
func (c *Console) Seed() (uint64, error) {
	answer, err := c.Prompt("Enter a seed for the random number generator\n(invalid input means a random seed): ")
	if err != nil {
		return 0, err
	}
	c.PageBreak()

	seed, err := strconv.ParseUint(strings.TrimSpace(answer), 10, 64)
	if err == nil && seed != 0 {
		return seed, nil
	}

	logrus.WithField("input", answer).Debug("Using a random seed")
	return dice.NewSeed()
}
