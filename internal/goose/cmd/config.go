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
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/goose/internal/util"
	"laptudirm.com/x/goose/pkg/config"
	"laptudirm.com/x/goose/pkg/data"
)

func Config() *cobra.Command {
	cmd := cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(configInit())
	cmd.AddCommand(configShow())
	cmd.AddCommand(configRosters())
	return &cmd
}

// goose config init
func configInit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Path(cmd.Flag("config").Value.String())

			conf := config.Default()
			if name, _ := cmd.Flags().GetString("roster"); name != "" {
				roster, found := data.Rosters[name]
				if !found {
					return fmt.Errorf("config init: unknown roster %s", name)
				}
				conf.SetRoster(roster)
			}

			force, _ := cmd.Flags().GetBool("force")
			written, err := conf.Save(path, force)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !written {
				fmt.Fprintf(out, "%s already exists, use --force to replace it.\n", paint(out, color.FgYellow, path))
				return nil
			}

			fmt.Fprintf(out, "%s %s\n", paint(out, color.FgGreen, "Wrote configuration:"), path)
			return nil
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Replace an existing configuration file")
	cmd.Flags().StringP("roster", "r", "", "Start from a built-in roster of players")
	return cmd
}

// goose config show
func configShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the configuration in effect, after environment overrides",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			file, err := yaml.Marshal(conf)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(file)
			return err
		},
	}
}

// goose config rosters
func configRosters() *cobra.Command {
	return &cobra.Command{
		Use:   "rosters",
		Short: "List the built-in rosters of players",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range data.RosterNames() {
				roster := data.Rosters[name]

				fmt.Fprintf(out, "%s:\n", paint(out, color.FgBlue, name))
				for _, p := range roster.Players {
					fmt.Fprintf(out, "  %c %-10s %s\n", p.Symbol, p.Name, p.Kind)
				}
				fmt.Fprintf(out, "  %s\n\n", strings.ReplaceAll(strings.TrimSpace(roster.Description), "\n", "\n  "))
			}

			return nil
		},
	}
}

// paint colours s for out, leaving it plain unless out is a terminal.
func paint(out io.Writer, attribute color.Attribute, s string) string {
	c := color.New(attribute)
	if !util.IsTerminalWriter(out) {
		c.DisableColor()
	}

	return c.Sprint(s)
}
