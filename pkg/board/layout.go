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

import (
	"errors"
	"fmt"
)

// Effect is the special behaviour triggered when a token lands on a space.
// A space carries at most one effect.
type Effect uint8

const (
	None         Effect = iota
	ExtraMove           // goose: move the same roll again
	Shortcut            // bridge: jump to the bridge target
	Blocked             // maze: the whole move is negated
	ResetToStart        // skull: back to the first space
)

// Symbol returns the rune the board renderer prints in front of a space.
// None has no symbol and returns 0.
func (effect Effect) Symbol() rune {
	switch effect {
	case ExtraMove:
		return '+'
	case Shortcut:
		return '*'
	case Blocked:
		return '-'
	case ResetToStart:
		return '!'
	default:
		return 0
	}
}

// String returns the traditional name of the effect's space.
func (effect Effect) String() string {
	switch effect {
	case None:
		return "none"
	case ExtraMove:
		return "goose"
	case Shortcut:
		return "bridge"
	case Blocked:
		return "maze"
	case ResetToStart:
		return "skull"
	default:
		return "unknown"
	}
}

// Layout is the static description of a track. Space numbers in the effect
// lists and the bridge target are 1-based, the way they are printed on the
// board; Track converts them to 0-based indices.
type Layout struct {
	Size int

	Goose  []int
	Bridge []int
	Maze   []int
	Skull  []int

	BridgeTarget int
}

// Default is the reference 24 space board. Maze 30 lies past the terminal
// space and never applies.
var Default = Layout{
	Size: 24,

	Goose:  []int{7, 11, 15},
	Bridge: []int{6},
	Maze:   []int{13, 30},
	Skull:  []int{23},

	BridgeTarget: 12,
}

// EffectAt returns the effect of the space at the given 0-based position.
// Lists are searched in goose, bridge, maze, skull order.
func (layout Layout) EffectAt(position int) Effect {
	space := position + 1

	switch {
	case contains(layout.Goose, space):
		return ExtraMove
	case contains(layout.Bridge, space):
		return Shortcut
	case contains(layout.Maze, space):
		return Blocked
	case contains(layout.Skull, space):
		return ResetToStart
	default:
		return None
	}
}

// Terminal returns the 0-based index of the final space.
func (layout Layout) Terminal() int {
	return layout.Size - 1
}

// ErrOverlap is returned by Validate when a space appears in more than one
// effect list, or more than once in the same list.
var ErrOverlap = errors.New("effect lists overlap")

// Validate checks that the layout is internally consistent. Entries outside
// the track are allowed and ignored.
func (layout Layout) Validate() error {
	if layout.Size < 2 {
		return fmt.Errorf("validate layout: track of %d spaces is too short", layout.Size)
	}

	if layout.BridgeTarget < 1 || layout.BridgeTarget > layout.Size {
		return fmt.Errorf("validate layout: bridge target %d is off the track", layout.BridgeTarget)
	}

	seen := make(map[int]Effect)
	lists := []struct {
		effect Effect
		spaces []int
	}{
		{ExtraMove, layout.Goose},
		{Shortcut, layout.Bridge},
		{Blocked, layout.Maze},
		{ResetToStart, layout.Skull},
	}

	for _, list := range lists {
		for _, space := range list.spaces {
			if space < 1 || space > layout.Size {
				continue
			}

			if space == 1 || space == layout.Size {
				return fmt.Errorf("validate layout: %s on reserved space %d", list.effect, space)
			}

			if previous, found := seen[space]; found {
				return fmt.Errorf("validate layout: space %d is %s and %s: %w", space, previous, list.effect, ErrOverlap)
			}

			seen[space] = list.effect
		}
	}

	return nil
}

func contains(spaces []int, space int) bool {
	for _, s := range spaces {
		if s == space {
			return true
		}
	}

	return false
}
