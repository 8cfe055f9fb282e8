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

package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
)

// Sides is the number of faces on each die.
const Sides = 6

// Roll is the result of throwing both dice.
type Roll struct {
	First, Second int
}

// Total returns the sum of both dice, between 2 and 12.
func (roll Roll) Total() int {
	return roll.First + roll.Second
}

func (roll Roll) String() string {
	return fmt.Sprintf("%d+%d", roll.First, roll.Second)
}

// ErrInvalidRoll indicates a die value outside 1 to 6.
var ErrInvalidRoll = errors.New("dice must show a value between 1 and 6")

// Validate reports whether both dice show a legal face.
func (roll Roll) Validate() error {
	if roll.First < 1 || roll.First > Sides || roll.Second < 1 || roll.Second > Sides {
		return ErrInvalidRoll
	}

	return nil
}

// Source produces pairs of independent, uniformly distributed dice.
type Source interface {
	Roll() Roll
}

// Seeded is a reproducible Source. The same seed always produces the same
// sequence of rolls.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a Source seeded once with the given seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *Seeded) Roll() Roll {
	return Roll{
		First:  s.r.IntN(Sides) + 1,
		Second: s.r.IntN(Sides) + 1,
	}
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// Sequence is a Source which replays a fixed list of rolls, and falls back
// to another source once the list runs out. Without a fallback, an
// exhausted sequence starts over from its first roll, and an empty one
// always rolls double ones.
type Sequence struct {
	mu       sync.Mutex
	rolls    []Roll
	next     int
	fallback Source
}

// NewSequence returns a Source replaying rolls in order.
func NewSequence(fallback Source, rolls ...Roll) *Sequence {
	return &Sequence{rolls: rolls, fallback: fallback}
}

func (s *Sequence) Roll() Roll {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.next >= len(s.rolls) {
		switch {
		case s.fallback != nil:
			return s.fallback.Roll()
		case len(s.rolls) == 0:
			return Roll{First: 1, Second: 1}
		}
		s.next = 0
	}

	roll := s.rolls[s.next]
	s.next++
	return roll
}

// Remaining returns the number of scripted rolls not yet replayed.
func (s *Sequence) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rolls) - s.next
}

// ParseRolls parses a comma separated roll script such as "3+4,6+6".
// A bare total is not accepted since the dice are shown individually.
func ParseRolls(script string) ([]Roll, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, nil
	}

	var rolls []Roll
	for _, field := range strings.Split(script, ",") {
		first_str, second_str, found := strings.Cut(strings.TrimSpace(field), "+")
		if !found {
			return nil, fmt.Errorf("parse rolls: %q is not of the form a+b", field)
		}

		first, err := strconv.Atoi(strings.TrimSpace(first_str))
		if err != nil {
			return nil, fmt.Errorf("parse rolls: %w", err)
		}

		second, err := strconv.Atoi(strings.TrimSpace(second_str))
		if err != nil {
			return nil, fmt.Errorf("parse rolls: %w", err)
		}

		roll := Roll{First: first, Second: second}
		if err := roll.Validate(); err != nil {
			return nil, fmt.Errorf("parse rolls: %s: %w", roll, err)
		}

		rolls = append(rolls, roll)
	}

	return rolls, nil
}
