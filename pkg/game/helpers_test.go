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
	"fmt"

	"laptudirm.com/x/goose/pkg/dice"
	"laptudirm.com/x/goose/pkg/player"
)

// recorder is a Sink keeping every line.
type recorder struct {
	lines []string
}

func (r *recorder) Status(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

// prompts is a Prompter recording who was asked to roll.
type prompts struct {
	asked []string
	err   error
}

func (p *prompts) AwaitRoll(pl *player.Player, phase Phase) error {
	p.asked = append(p.asked, fmt.Sprintf("%s/%d", pl.Name, phase))
	return p.err
}

func twoPlayers() []*player.Player {
	return []*player.Player{
		player.New("HUMAN", '$', player.Human),
		player.New("COMPUTER", '%', player.Computer),
	}
}

// totals builds a scripted dice sequence from roll totals.
func totals(values ...int) *dice.Sequence {
	rolls := make([]dice.Roll, len(values))
	for i, v := range values {
		first := v / 2
		rolls[i] = dice.Roll{First: first, Second: v - first}
	}

	return dice.NewSequence(nil, rolls...)
}
