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
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/goose/pkg/dice"
	"laptudirm.com/x/goose/pkg/player"
)

// DetermineFirstPlayer has every player roll once, and returns the index of
// the player with the strictly highest roll. Players tied for the highest
// roll of a round roll again among themselves until one of them wins.
// The only error is one returned by the prompter.
func DetermineFirstPlayer(players []*player.Player, source dice.Source, prompter Prompter, sink Sink) (int, error) {
	candidates := make([]int, len(players))
	for i := range candidates {
		candidates[i] = i
	}

	sink.Status("Everyone roll the dice. The highest roll plays first ...\n")

	for round := 1; ; round++ {
		leader, highest := -1, 0
		var tied []int

		rolls := make(map[int]int, len(candidates))
		for _, i := range candidates {
			if prompter != nil {
				if err := prompter.AwaitRoll(players[i], Opening); err != nil {
					return -1, err
				}
			}

			roll := rollDice(source, sink).Total()
			rolls[i] = roll

			switch {
			case roll > highest:
				// A new leader clears every earlier tie.
				leader, highest = i, roll
				tied = nil

			case roll == highest:
				if len(tied) == 0 {
					tied = append(tied, leader)
				}
				tied = append(tied, i)
			}
		}

		logrus.WithFields(logrus.Fields{
			"round":   round,
			"leader":  leader,
			"highest": highest,
			"tied":    tied,
		}).Debug("Opening round finished")

		if len(tied) == 0 {
			if leader >= 0 {
				sink.Status("Player %s goes first!", players[leader].Name)
				breakPage(sink)
			}
			return leader, nil
		}

		sink.Status("\nRerolling...The following players all tied:")
		for _, i := range tied {
			sink.Status("\tPlayer %s with roll of %d", players[i].Name, rolls[i])
		}
		breakPage(sink)

		candidates = tied
	}
}

// rollDice throws both dice and narrates the result.
func rollDice(source dice.Source, sink Sink) dice.Roll {
	roll := source.Roll()
	sink.Status("\tPlayer rolled %d and %d for a total of %d.", roll.First, roll.Second, roll.Total())
	return roll
}
