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

package cmd

import (
	"errors"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/goose/internal/goose/console"
	"laptudirm.com/x/goose/internal/util"
	"laptudirm.com/x/goose/pkg/dice"
	"laptudirm.com/x/goose/pkg/game"
	"laptudirm.com/x/goose/pkg/player"
	"laptudirm.com/x/goose/pkg/render"
)

// goose play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the Game of the Goose on this terminal",
		Args:  cobra.ExactArgs(0),
		Long: heredoc.Doc(`play starts an interactive game. You are first asked for
			a seed for the dice, and then offered to play or quit.
			Every roll waits for <Enter>, including the rolls of
			computer players, so that the game can be followed.

			With --auto no question is asked: a single game is played
			from start to end. --rolls scripts the dice, for example
			--rolls 6+6,3+4 makes the first two rolls 12 and 7; the
			seeded dice take over once the script runs out.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			auto, _ := cmd.Flags().GetBool("auto")
			noColor, _ := cmd.Flags().GetBool("no-color")
			script, _ := cmd.Flags().GetString("rolls")

			out := cmd.OutOrStdout()
			term := console.New(cmd.InOrStdin(), out)

			seed := conf.Seed
			if cmd.Flags().Changed("seed") {
				seed, _ = cmd.Flags().GetUint64("seed")
			}

			switch {
			case seed != 0:
			case auto:
				seed, err = dice.NewSeed()
			default:
				seed, err = term.Seed()
			}

			if errors.Is(err, game.ErrInputClosed) {
				return nil
			} else if err != nil {
				return err
			}

			logrus.WithField("seed", seed).Debug("Seeded the dice")

			var source dice.Source = dice.NewSeeded(seed)
			if script != "" {
				rolls, err := dice.ParseRolls(script)
				if err != nil {
					return err
				}

				source = dice.NewSequence(source, rolls...)
			}

			roster := conf.Roster()
			players := make([]*player.Player, len(roster))
			for i, p := range roster {
				players[i] = player.New(p.Name, p.Symbol, p.Kind)
			}

			options := game.Options{
				Dice:     source,
				Sink:     game.WriterSink{W: out},
				Renderer: render.New(out, conf.Color && !noColor && util.IsTerminalWriter(out)),
			}

			if !auto {
				options.Prompter = term
			}

			g, err := game.New(players, options)
			if err != nil {
				return err
			}

			if auto {
				result, err := g.Run()
				logrus.WithField("turns", result.Turns).Debug("Game finished")
				return err
			}

			for {
				play, err := term.Menu()
				if errors.Is(err, game.ErrInputClosed) {
					return nil
				} else if err != nil {
					return err
				}

				if !play {
					return nil
				}

				result, err := g.Run()
				if errors.Is(err, game.ErrInputClosed) {
					return nil
				} else if err != nil {
					return err
				}

				logrus.WithField("turns", result.Turns).Debug("Game finished")
			}
		},
	}

	cmd.Flags().Uint64P("seed", "s", 0, "Seed of the dice, 0 asks for one")
	cmd.Flags().BoolP("auto", "a", false, "Play a single game without waiting for input")
	cmd.Flags().String("rolls", "", "Comma separated dice script, like 6+6,3+4")
	cmd.Flags().StringP("roster", "r", "", "Use a built-in roster of players (classic, hotseat, bots)")
	cmd.Flags().Bool("no-color", false, "Never colour the board")

	return cmd
}
