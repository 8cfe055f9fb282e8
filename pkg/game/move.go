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

	"laptudirm.com/x/goose/pkg/board"
	"laptudirm.com/x/goose/pkg/player"
)

// Move describes one resolved turn of a player.
type Move struct {
	Player   int
	Roll     int
	From, To int

	// Effects lists every effect triggered, in order.
	Effects []board.Effect

	// Bounced is set if any step of the move overshot the terminal space.
	Bounced bool
}

// ResolveMove moves players[index] by roll on the track, applying the
// bounce off the terminal space and the effects of the spaces it lands on.
// The occupancy of the start and end positions is updated afterwards.
func ResolveMove(track *board.Track, players []*player.Player, index, roll int, sink Sink) Move {
	p := players[index]
	move := Move{Player: index, Roll: roll, From: p.Position}

	for again := true; again; {
		again = false

		p.Position += roll
		if p.Position > track.Terminal() {
			move.Bounced = true
		}
		p.Position = bounce(p.Position, track.Terminal())

		effect := track.EffectAt(p.Position)
		if effect != board.None {
			move.Effects = append(move.Effects, effect)
		}

		switch effect {
		case board.ExtraMove:
			sink.Status("Player %s landed on a goose! Moving the roll amount again!", p.Name)
			again = true

		case board.Shortcut:
			sink.Status("Player %s landed on a bridge! Moving to space %d!", p.Name, track.BridgeTarget()+1)
			p.Position = track.BridgeTarget()

		case board.Blocked:
			sink.Status("Player %s landed on a maze! No movement this round!", p.Name)
			p.Position = move.From

		case board.ResetToStart:
			sink.Status("Player %s landed on a skull! Moving back to start!", p.Name)
			p.Position = 0
		}
	}

	track.MarkOccupied(p.Position)
	track.ClearIfVacant(move.From, players)

	move.To = p.Position
	sink.Status("New space is: %d", move.To+1)

	logrus.WithFields(logrus.Fields{
		"player":  p.Name,
		"roll":    roll,
		"from":    move.From,
		"to":      move.To,
		"effects": move.Effects,
	}).Trace("Resolved move")

	return move
}

// bounce reflects a position which went past the terminal space back by the
// excess. A reflection which would end before the start space is reflected
// off the start space in turn, so the result always lies on the track.
func bounce(position, terminal int) int {
	for position > terminal || position < 0 {
		if position > terminal {
			position = terminal - (position - terminal)
		}

		if position < 0 {
			position = -position
		}
	}

	return position
}
