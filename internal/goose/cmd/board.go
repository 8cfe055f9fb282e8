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

package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"laptudirm.com/x/goose/internal/util"
	"laptudirm.com/x/goose/pkg/board"
	"laptudirm.com/x/goose/pkg/render"
)

// goose board
func Board() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Shows the special spaces of the board",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			layout := board.Default

			heading := color.New(color.FgGreen)
			name := color.New(color.FgBlue)
			if !util.IsTerminalWriter(out) {
				heading.DisableColor()
				name.DisableColor()
			}

			heading.Fprint(out, "Special Spaces")
			fmt.Fprint(out, ":\n\n")

			lists := []struct {
				effect board.Effect
				spaces []int
			}{
				{board.ExtraMove, layout.Goose},
				{board.Shortcut, layout.Bridge},
				{board.Blocked, layout.Maze},
				{board.ResetToStart, layout.Skull},
			}

			for _, list := range lists {
				var spaces []string
				for _, space := range list.spaces {
					if space >= 1 && space <= layout.Size {
						spaces = append(spaces, fmt.Sprint(space))
					}
				}

				label := name.Sprintf("%s (%c):", list.effect, list.effect.Symbol())
				fmt.Fprintf(out, "- %-20s %s\n", label, strings.Join(spaces, " "))
			}

			fmt.Fprintf(out, "\nA bridge leads to space %d, space %d is the goal.\n\n", layout.BridgeTarget, layout.Size)

			track := board.NewTrack(layout)
			render.New(out, util.IsTerminalWriter(out)).Render(track.Cells(nil))
			return nil
		},
	}
}
