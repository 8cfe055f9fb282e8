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

package render

import (
	"strings"
	"testing"

	"laptudirm.com/x/goose/pkg/board"
	"laptudirm.com/x/goose/pkg/player"
)

func TestEmptyBoard(t *testing.T) {
	track := board.NewTrack(board.Default)

	// Nobody is on the track, so the start space shows its number.
	for i := range track.Spaces {
		track.Spaces[i].Occupied = false
	}

	want := "[1]\t[2]\t[3]\t[4]\t[5]\t*[6]\t+[7]\t[8]\t[9]\t[10]\t+[11]\t[12]\n" +
		"-[13]\t[14]\t+[15]\t[16]\t[17]\t[18]\t[19]\t[20]\t[21]\t[22]\t![23]\t<24>\n\n"

	if got := New(nil, false).String(track.Cells(nil)); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}
}

func TestTokens(t *testing.T) {
	track := board.NewTrack(board.Default)
	players := []*player.Player{
		player.New("HUMAN", '$', player.Human),
		player.New("COMPUTER", '%', player.Computer),
	}

	players[1].Position = 23
	track.MarkOccupied(23)

	var out strings.Builder
	New(&out, false).Render(track.Cells(players))

	got := out.String()
	if !strings.HasPrefix(got, "[$]\t[2]") {
		t.Errorf("start space rendered as %q", got[:10])
	}

	if !strings.HasSuffix(got, "![23]\t<%>\n\n") {
		t.Errorf("terminal space rendered as %q", got[len(got)-12:])
	}
}

func TestSharedSpace(t *testing.T) {
	track := board.NewTrack(board.Default)
	players := []*player.Player{
		player.New("A", '$', player.Human),
		player.New("B", '%', player.Human),
	}

	got := New(nil, false).String(track.Cells(players))
	if !strings.HasPrefix(got, "[$%]\t") {
		t.Errorf("shared start space rendered as %q", got[:8])
	}
}

func TestWidth(t *testing.T) {
	track := board.NewTrack(board.Layout{Size: 6, BridgeTarget: 3})

	b := New(nil, false)
	b.Width = 4

	want := "[$]\t[2]\t[3]\t[4]\n[5]\t<6>\n\n"
	players := []*player.Player{player.New("A", '$', player.Human)}
	if got := b.String(track.Cells(players)); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
