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

// MarkOccupied flags the space at position as holding at least one token.
func (track *Track) MarkOccupied(position int) {
	track.Spaces[position].Occupied = true
}

// ClearIfVacant clears the occupancy of the space at position unless one of
// the players still stands there.
func (track *Track) ClearIfVacant(position int, players []*player.Player) {
	if !player.At(players, position) {
		track.Spaces[position].Occupied = false
	}
}

// IsOccupied reports whether a token stands on the space at position.
func (track *Track) IsOccupied(position int) bool {
	return track.Spaces[position].Occupied
}

// Occupant returns the first of the players standing on position, if any.
func Occupant(players []*player.Player, position int) (int, bool) {
	for i, p := range players {
		if p.Position == position {
			return i, true
		}
	}

	return -1, false
}
