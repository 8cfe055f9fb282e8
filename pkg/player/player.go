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

package player

import "fmt"

// Kind separates players waiting on a person from players rolling on their
// own. It only changes how rolls are prompted, never the rules.
type Kind uint8

const (
	Human Kind = iota
	Computer
)

func (kind Kind) String() string {
	switch kind {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return "unknown"
	}
}

// ParseKind parses a kind name as written in the configuration file.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "human", "HUMAN":
		return Human, nil
	case "computer", "COMPUTER":
		return Computer, nil
	default:
		return 0, fmt.Errorf("parse kind: unknown player kind %q", name)
	}
}

// MarshalText encodes a kind by its name.
func (kind Kind) MarshalText() ([]byte, error) {
	return []byte(kind.String()), nil
}

// UnmarshalText decodes a kind name.
func (kind *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*kind = parsed
	return nil
}

// Player is a participant of a game and the position of its token.
type Player struct {
	Name   string
	Symbol rune
	Kind   Kind

	// Position is the 0-based index of the space the token is on.
	Position int
}

// New returns a player standing on the start space.
func New(name string, symbol rune, kind Kind) *Player {
	return &Player{Name: name, Symbol: symbol, Kind: kind}
}

func (player *Player) String() string {
	return player.Name
}

// Reset puts the player's token back on the start space.
func (player *Player) Reset() {
	player.Position = 0
}

// At reports whether any of the players stands on the given position.
func At(players []*Player, position int) bool {
	for _, player := range players {
		if player.Position == position {
			return true
		}
	}

	return false
}
