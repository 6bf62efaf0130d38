// Package config loads the runtime configuration from an optional YAML
// file with environment overrides.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/gruftwerk/gruft/internal/game/dungeon"
	"github.com/gruftwerk/gruft/internal/geometry"
)

// Config is everything the game reads at startup.
type Config struct {
	// Driver picks the terminal backend, termbox or tcell.
	Driver string `yaml:"driver" env:"GRUFT_DRIVER" env-default:"termbox"`

	// Seed fixes the dungeon; zero draws one from the clock.
	Seed int64 `yaml:"seed" env:"GRUFT_SEED" env-default:"0"`

	Screen Screen `yaml:"screen"`
	Map    Map    `yaml:"map"`
	Log    Log    `yaml:"log"`
}

// Screen is the frame dimension in cells.
type Screen struct {
	Width  int `yaml:"width" env:"GRUFT_SCREEN_WIDTH" env-default:"96"`
	Height int `yaml:"height" env:"GRUFT_SCREEN_HEIGHT" env-default:"54"`
}

// Map bounds the dungeon generator.
type Map struct {
	Width           int `yaml:"width" env:"GRUFT_MAP_WIDTH" env-default:"80"`
	Height          int `yaml:"height" env:"GRUFT_MAP_HEIGHT" env-default:"43"`
	RoomMinSize     int `yaml:"room_min_size" env:"GRUFT_ROOM_MIN_SIZE" env-default:"6"`
	RoomMaxSize     int `yaml:"room_max_size" env:"GRUFT_ROOM_MAX_SIZE" env-default:"10"`
	MaxRooms        int `yaml:"max_rooms" env:"GRUFT_MAX_ROOMS" env-default:"30"`
	MaxRoomMonsters int `yaml:"max_room_monsters" env:"GRUFT_MAX_ROOM_MONSTERS" env-default:"3"`
	MaxRoomItems    int `yaml:"max_room_items" env:"GRUFT_MAX_ROOM_ITEMS" env-default:"2"`
}

// Log names the sink file and the level. The screen belongs to the
// game, so logs never go to stdout.
type Log struct {
	File  string `yaml:"file" env:"GRUFT_LOG_FILE" env-default:"gruft.log"`
	Level string `yaml:"level" env:"GRUFT_LOG_LEVEL" env-default:"info"`
}

// Load reads the file when it exists and lets the environment override
// it. A missing file is fine; an unreadable one is not.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := os.Stat(path); err != nil {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read environment: %w", err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return &cfg, nil
}

// ScreenSize returns the frame dimension scenes render into.
func (c *Config) ScreenSize() geometry.Dimension {
	return geometry.Dim(c.Screen.Width, c.Screen.Height)
}

// Params assembles the dungeon generation parameters.
func (c *Config) Params() dungeon.Params {
	return dungeon.Params{
		Size:            geometry.Dim(c.Map.Width, c.Map.Height),
		RoomMinSize:     c.Map.RoomMinSize,
		RoomMaxSize:     c.Map.RoomMaxSize,
		MaxRooms:        c.Map.MaxRooms,
		MaxRoomMonsters: c.Map.MaxRoomMonsters,
		MaxRoomItems:    c.Map.MaxRoomItems,
	}
}
