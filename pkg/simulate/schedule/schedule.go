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

package schedule

import (
	"fmt"
)

// New returns the seat scheduler with the given name. The empty name
// selects alternating seats.
func New(name string) (Scheduler, error) {
	switch name {
	case "alternate", "":
		return &Alternate{}, nil
	case "fixed":
		return &Fixed{}, nil
	default:
		return nil, fmt.Errorf("new schedule: invalid scheduler %s", name)
	}
}

// Scheduler decides the seating of every game of a simulation. Seats(n)
// maps each seat of game n, in turn order, to a player of the roster.
type Scheduler interface {
	Initialize(players int)
	Seats(game int) []int
}

// Fixed seats the roster in the same order for every game.
type Fixed struct {
	players int
}

func (f *Fixed) Initialize(n int) {
	f.players = n
}

func (f *Fixed) Seats(int) []int {
	seats := make([]int, f.players)
	for i := range seats {
		seats[i] = i
	}
	return seats
}

// Alternate rotates the roster by one seat every game, so that with two
// players consecutive games swap seats.
type Alternate struct {
	players int
}

func (a *Alternate) Initialize(n int) {
	a.players = n
}

func (a *Alternate) Seats(game int) []int {
	seats := make([]int, a.players)
	for i := range seats {
		seats[i] = (i + game) % a.players
	}
	return seats
}
