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
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/goose/internal/util"
	"laptudirm.com/x/goose/pkg/dice"
	"laptudirm.com/x/goose/pkg/simulate"
)

// goose simulate
func Simulate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play many games without a board and report the results",
		Args:  cobra.ExactArgs(0),
		Long: heredoc.Doc(`simulate plays the configured players against each other
			--games times, --concurrency games at a time, and prints
			how often each player won and by how much moving first
			helps, as an elo difference.

			Game n is played with dice seeded with --seed plus n, so a
			simulation with a fixed seed always gives the same result.
			Games longer than --max-turns count as draws.

			With --sprt the simulation stops early as soon as a sequential
			probability ratio test on the first mover's score accepts either
			"moving first is worth --elo0" (H0) or "--elo1" (H1).`),

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()

			var config simulate.Config
			config.Players = conf.Roster()
			config.Games = conf.Simulate.Games
			config.Concurrency = conf.Simulate.Concurrency
			config.MaxTurns = conf.Simulate.MaxTurns
			config.Schedule = conf.Simulate.Schedule
			config.Seed = conf.Seed
			config.Out = cmd.OutOrStdout()

			if flags.Changed("games") {
				config.Games, _ = flags.GetInt("games")
			}
			if flags.Changed("concurrency") {
				config.Concurrency, _ = flags.GetInt("concurrency")
			}
			if flags.Changed("max-turns") {
				config.MaxTurns, _ = flags.GetInt("max-turns")
			}
			if flags.Changed("schedule") {
				config.Schedule, _ = flags.GetString("schedule")
			}
			if flags.Changed("seed") {
				config.Seed, _ = flags.GetUint64("seed")
			}

			if config.Seed == 0 {
				if config.Seed, err = dice.NewSeed(); err != nil {
					return err
				}
			}

			config.ReportEvery, _ = flags.GetInt("report-every")
			config.Sprt.Enabled, _ = flags.GetBool("sprt")
			config.Sprt.Elo0, _ = flags.GetFloat64("elo0")
			config.Sprt.Elo1, _ = flags.GetFloat64("elo1")
			config.Sprt.Alpha, _ = flags.GetFloat64("alpha")
			config.Sprt.Beta, _ = flags.GetFloat64("beta")

			sim, err := simulate.NewSimulation(config)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"games":       config.Games,
				"concurrency": config.Concurrency,
				"seed":        config.Seed,
			}).Info("Starting simulation")

			if config.ReportEvery == 0 {
				util.StartSpinner(fmt.Sprintf(" playing %d games", config.Games))
			}

			summary, err := sim.Start()
			util.PauseSpinner()
			if err != nil {
				return err
			}

			sim.Report()

			if summary.Decision != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s accepted after %d games\n", summary.Decision, summary.Games)
			}

			return nil
		},
	}

	cmd.Flags().IntP("games", "n", 0, "Number of games to play")
	cmd.Flags().IntP("concurrency", "j", 0, "Number of games played at once")
	cmd.Flags().Uint64P("seed", "s", 0, "Base seed of the dice, 0 for a random one")
	cmd.Flags().Int("max-turns", 0, "Turns after which a game is a draw, 0 for no limit")
	cmd.Flags().String("schedule", "", "Seat schedule: alternate or fixed")
	cmd.Flags().StringP("roster", "r", "", "Use a built-in roster of players (classic, hotseat, bots)")
	cmd.Flags().Int("report-every", 0, "Print the report every n games")

	cmd.Flags().Bool("sprt", false, "Stop once a SPRT on the first mover's score is decided")
	cmd.Flags().Float64("elo0", 0, "SPRT null hypothesis, in elo")
	cmd.Flags().Float64("elo1", 10, "SPRT alternate hypothesis, in elo")
	cmd.Flags().Float64("alpha", 0.05, "SPRT type I error rate")
	cmd.Flags().Float64("beta", 0.05, "SPRT type II error rate")

	return cmd
}
