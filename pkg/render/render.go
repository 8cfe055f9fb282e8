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

// Package render draws a track as rows of bracketed spaces:
//
//	[$%]	[2]	[3]	[4]	[5]	*[6]	+[7]	[8]	...
//	...	![23]	<24>
//
// Each space is prefixed by the symbol of its effect, and shows the symbols
// of the tokens on it in place of its number. The terminal space uses angle
// brackets.
package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"laptudirm.com/x/goose/pkg/board"
)

// Width is the number of spaces printed per row.
const Width = 12

// Board renders cells to a writer.
type Board struct {
	W     io.Writer
	Width int // defaults to Width

	tokens   *color.Color
	terminal *color.Color
}

// New returns a board renderer writing to w, colouring tokens and the
// terminal space if colour is set.
func New(w io.Writer, colour bool) *Board {
	b := &Board{
		W:     w,
		Width: Width,

		tokens:   color.New(color.FgYellow, color.Bold),
		terminal: color.New(color.FgGreen),
	}

	if colour {
		b.tokens.EnableColor()
		b.terminal.EnableColor()
	} else {
		b.tokens.DisableColor()
		b.terminal.DisableColor()
	}

	return b
}

func (b *Board) Render(cells []board.Cell) {
	_, _ = io.WriteString(b.W, b.String(cells))
}

// String returns the rendering of cells followed by an empty line.
func (b *Board) String(cells []board.Cell) string {
	width := b.Width
	if width <= 0 {
		width = Width
	}

	var out strings.Builder
	for i, cell := range cells {
		if cell.Symbol != 0 {
			out.WriteRune(cell.Symbol)
		}

		pre, post := "[", "]"
		if cell.Terminal {
			pre, post = b.paint(b.terminal, "<"), b.paint(b.terminal, ">")
		}

		out.WriteString(pre)
		if cell.Occupied && len(cell.Occupants) > 0 {
			out.WriteString(b.paint(b.tokens, string(cell.Occupants)))
		} else {
			out.WriteString(strconv.Itoa(cell.Number))
		}
		out.WriteString(post)

		if (i+1)%width == 0 || i == len(cells)-1 {
			out.WriteByte('\n')
		} else {
			out.WriteByte('\t')
		}
	}
	out.WriteByte('\n')

	return out.String()
}

func (b *Board) paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}
