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

package board

import "laptudirm.com/x/goose/pkg/player"

// Space is a single space of a track.
type Space struct {
	Effect   Effect
	Occupied bool
}

// Track is the sequence of spaces of one game. It is owned by the game
// loop and reset at the start of every game.
type Track struct {
	Layout Layout
	Spaces []Space
}

// NewTrack builds a track for the layout with only the start space occupied.
func NewTrack(layout Layout) *Track {
	track := &Track{Layout: layout}
	track.Reset()
	return track
}

// Reset recomputes every effect from the layout, clears the occupancy of
// all spaces and marks the start space, where every player begins, occupied.
func (track *Track) Reset() {
	track.Spaces = make([]Space, track.Layout.Size)
	for position := range track.Spaces {
		track.Spaces[position].Effect = track.Layout.EffectAt(position)
	}

	track.MarkOccupied(0)
}

// Size returns the number of spaces of the track.
func (track *Track) Size() int {
	return len(track.Spaces)
}

// Terminal returns the index of the final space.
func (track *Track) Terminal() int {
	return len(track.Spaces) - 1
}

// BridgeTarget returns the index a bridge sends a token to.
func (track *Track) BridgeTarget() int {
	return track.Layout.BridgeTarget - 1
}

// EffectAt returns the effect of the space at the given position.
func (track *Track) EffectAt(position int) Effect {
	return track.Spaces[position].Effect
}

// Cell is the render view of a single space.
type Cell struct {
	Number   int // 1-based space number
	Symbol   rune
	Terminal bool

	Occupied  bool
	Occupants []rune
}

// Cells returns the render view of every space for the given players.
// Occupants are listed in player order.
func (track *Track) Cells(players []*player.Player) []Cell {
	cells := make([]Cell, len(track.Spaces))
	for position, space := range track.Spaces {
		cell := Cell{
			Number:   position + 1,
			Symbol:   space.Effect.Symbol(),
			Terminal: position == track.Terminal(),
			Occupied: space.Occupied,
		}

		if space.Occupied {
			for _, p := range players {
				if p.Position == position {
					cell.Occupants = append(cell.Occupants, p.Symbol)
				}
			}
		}

		cells[position] = cell
	}

	return cells
}
