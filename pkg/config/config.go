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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/goose/pkg/common"
	"laptudirm.com/x/goose/pkg/data"
	"laptudirm.com/x/goose/pkg/player"
)

// Player is the configuration of a single player.
type Player struct {
	Name   string      `yaml:"name"`
	Symbol string      `yaml:"symbol"`
	Kind   player.Kind `yaml:"kind"`
}

type Config struct {
	// The players of a game, in turn order before the opening roll.
	Players []Player `yaml:"players"`

	// Colour the board when writing to a terminal.
	Color bool `yaml:"color" env:"GOOSE_COLOR"`

	// Dice seed, zero for a fresh random seed every time.
	Seed uint64 `yaml:"seed,omitempty" env:"GOOSE_SEED"`

	Simulate Simulate `yaml:"simulate"`
}

// Simulate holds the defaults of the simulate command.
type Simulate struct {
	Games       int    `yaml:"games" env:"GOOSE_GAMES"`
	Concurrency int    `yaml:"concurrency" env:"GOOSE_CONCURRENCY"`
	MaxTurns    int    `yaml:"max-turns" env:"GOOSE_MAX_TURNS"`
	Schedule    string `yaml:"schedule" env:"GOOSE_SCHEDULE"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	config := Config{
		Color: true,
		Simulate: Simulate{
			Games:       1000,
			Concurrency: 4,
			MaxTurns:    1000,
			Schedule:    "alternate",
		},
	}

	config.SetRoster(data.Rosters[data.DefaultRoster])
	return config
}

// SetRoster replaces the configured players by those of the roster.
func (config *Config) SetRoster(roster data.Roster) {
	config.Players = make([]Player, len(roster.Players))
	for i, p := range roster.Players {
		config.Players[i] = Player{Name: p.Name, Symbol: string(p.Symbol), Kind: p.Kind}
	}
}

// Load reads the configuration file at path on top of the defaults, and
// then applies environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	config := Default()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &config); err != nil {
			return Config{}, fmt.Errorf("load config: %s: %w", path, err)
		}

	case !errors.Is(err, fs.ErrNotExist):
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("load config: parse env: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Save writes the configuration to path, creating its directory. An
// existing file is only replaced with overwrite set; Save reports whether
// the file was written.
func (config Config) Save(path string, overwrite bool) (bool, error) {
	file, err := yaml.Marshal(config)
	if err != nil {
		return false, fmt.Errorf("save config: %w", err)
	}

	if overwrite {
		if err := common.TryMkdir(filepath.Dir(path)); err != nil {
			return false, fmt.Errorf("save config: %w", err)
		}

		if err := os.WriteFile(path, file, common.FilePermissions); err != nil {
			return false, fmt.Errorf("save config: %w", err)
		}

		return true, nil
	}

	created, err := common.TryCreate(path, file)
	if err != nil {
		return false, fmt.Errorf("save config: %w", err)
	}

	return created, nil
}

// ErrPlayerCount is returned when a configuration does not name exactly
// two players.
var ErrPlayerCount = errors.New("a game needs exactly two players")

// Validate checks that the configuration describes a playable game.
func (config Config) Validate() error {
	if len(config.Players) != 2 {
		return fmt.Errorf("validate config: %d players: %w", len(config.Players), ErrPlayerCount)
	}

	symbols := make(map[string]bool)
	for i, p := range config.Players {
		if p.Name == "" {
			return fmt.Errorf("validate config: player %d has no name", i+1)
		}

		if utf8.RuneCountInString(p.Symbol) != 1 {
			return fmt.Errorf("validate config: symbol of %s must be a single character", p.Name)
		}

		if symbols[p.Symbol] {
			return fmt.Errorf("validate config: symbol %s is used twice", p.Symbol)
		}
		symbols[p.Symbol] = true
	}

	if config.Simulate.Games < 0 || config.Simulate.Concurrency < 0 || config.Simulate.MaxTurns < 0 {
		return errors.New("validate config: simulate settings must not be negative")
	}

	return nil
}

// Roster returns the configured players, ready to be placed on a board.
func (config Config) Roster() []player.Player {
	players := make([]player.Player, len(config.Players))
	for i, p := range config.Players {
		symbol, _ := utf8.DecodeRuneInString(p.Symbol)
		players[i] = player.Player{Name: p.Name, Symbol: symbol, Kind: p.Kind}
	}

	return players
}

// Path returns path, or the default configuration file if it is empty.
func Path(path string) string {
	if path == "" {
		return common.ConfigFile
	}

	return path
}
