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

package data

import (
	"sort"

	"github.com/MakeNowJust/heredoc/v2"

	"laptudirm.com/x/goose/pkg/player"
)

type Roster struct {
	Description string
	Players     []player.Player
}

// DefaultRoster is the roster used when the configuration names none.
const DefaultRoster = "classic"

var Rosters = map[string]Roster{
	"classic": {
		Description: heredoc.Doc(`
			You against the computer. The computer still waits for
			<Enter> before it rolls, so that you can follow the game.
		`),
		Players: []player.Player{
			{Name: "HUMAN", Symbol: '$', Kind: player.Human},
			{Name: "COMPUTER", Symbol: '%', Kind: player.Computer},
		},
	},

	"hotseat": {
		Description: heredoc.Doc(`
			Two people sharing one keyboard.
		`),
		Players: []player.Player{
			{Name: "PLAYER 1", Symbol: '$', Kind: player.Human},
			{Name: "PLAYER 2", Symbol: '&', Kind: player.Human},
		},
	},

	"bots": {
		Description: heredoc.Doc(`
			Two computers playing each other. Combine with --auto to
			watch a whole game without pressing <Enter>.
		`),
		Players: []player.Player{
			{Name: "GOOSE", Symbol: '%', Kind: player.Computer},
			{Name: "GANDER", Symbol: '#', Kind: player.Computer},
		},
	},
}

// RosterNames returns the names of all known rosters, sorted.
func RosterNames() []string {
	names := make([]string, 0, len(Rosters))
	for name := range Rosters {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
