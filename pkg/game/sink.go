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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/goose/pkg/board"
	"laptudirm.com/x/goose/pkg/player"
)

// Sink receives the status lines narrating a game. It is write only; the
// game never depends on what a sink does with a line.
type Sink interface {
	Status(format string, args ...any)
}

// WriterSink writes every status line to an io.Writer.
type WriterSink struct {
	W io.Writer
}

func (sink WriterSink) Status(format string, args ...any) {
	fmt.Fprintf(sink.W, format+"\n", args...)
}

// LogSink forwards status lines to a logger at debug level. It is used for
// headless games, where narration is only interesting while debugging.
type LogSink struct {
	Logger logrus.FieldLogger
}

func (sink LogSink) Status(format string, args ...any) {
	sink.Logger.Debugf(strings.TrimSpace(format), args...)
}

// Discard is a Sink which drops every line.
var Discard Sink = discard{}

type discard struct{}

func (discard) Status(string, ...any) {}

// Renderer draws the board after the opening and after every turn.
type Renderer interface {
	Render(cells []board.Cell)
}

// Phase tells a Prompter why a roll is about to happen.
type Phase uint8

const (
	Opening Phase = iota // rolling for the first turn
	Turn                 // rolling to move
)

// Prompter is consulted before every roll. Interactive front ends block
// here until the player asks for the dice.
type Prompter interface {
	AwaitRoll(p *player.Player, phase Phase) error
}

// ErrInputClosed should be returned by a Prompter whose input has ended.
var ErrInputClosed = errors.New("input closed")

const pageBreak = "\n*********************************************************************************\n"

func breakPage(sink Sink) {
	sink.Status(pageBreak)
}
