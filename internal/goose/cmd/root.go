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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/goose/pkg/config"
	"laptudirm.com/x/goose/pkg/data"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "goose",
		Short: "Play the Game of the Goose",
		Long: heredoc.Doc(`goose is a two player race along a track of 24 spaces.
			Players take turns rolling two dice and moving their token
			by the total. Some spaces are special:

			  + goose   move the same amount again
			  * bridge  cross straight to space 12
			  - maze    the move is undone
			  ! skull   back to the start

			A roll taking a token past the last space bounces it back
			by the excess. The first token on the last space wins.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --debug or --trace flag is provided, raise the logging level.
			if cmd.Flag("debug").Changed {
				logrus.SetLevel(logrus.DebugLevel)
			}

			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Goose's Version")
	root.PersistentFlags().BoolP("debug", "d", false, "Show Debug Information")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringP("config", "c", "", "Configuration file (default "+config.Path("")+")")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Play())
	root.AddCommand(Simulate())
	root.AddCommand(Board())
	root.AddCommand(Config())

	return root
}

// loadConfig loads the configuration selected by the --config flag, and
// applies the --roster flag of cmd if it has one.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path := config.Path(cmd.Flag("config").Value.String())
	logrus.WithField("path", path).Debug("Loading configuration")

	conf, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if flag := cmd.Flags().Lookup("roster"); flag != nil && flag.Changed {
		roster, found := data.Rosters[flag.Value.String()]
		if !found {
			return config.Config{}, fmt.Errorf("load config: unknown roster %s (known: %v)", flag.Value, data.RosterNames())
		}

		conf.SetRoster(roster)
	}

	return conf, nil
}
