// Package config loads the tunable dungeon parameters from a YAML file.
// Every field has a default, so a missing file or an empty document still
// yields a playable setup.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Params are the knobs for level generation and visibility.
type Params struct {
	MapWidth           int `yaml:"map_width"`
	MapHeight          int `yaml:"map_height"`
	MaxRooms           int `yaml:"max_rooms"`
	RoomMinSize        int `yaml:"room_min_size"`
	RoomMaxSize        int `yaml:"room_max_size"`
	MaxMonstersPerRoom int `yaml:"max_monsters_per_room"`
	FOVRadius          int `yaml:"fov_radius"`
}

// Defaults returns the stock parameters.
func Defaults() Params {
	return Params{
		MapWidth:           80,
		MapHeight:          45,
		MaxRooms:           30,
		RoomMinSize:        6,
		RoomMaxSize:        10,
		MaxMonstersPerRoom: 2,
		FOVRadius:          8,
	}
}

// Load reads name from fsys and overlays it on the defaults. Fields absent
// from the file keep their default value. A missing file is not an error;
// malformed YAML or out-of-range values are.
func Load(fsys fs.FS, name string) (Params, error) {
	p := Defaults()

	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return Params{}, fmt.Errorf("read config %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("parse config %s: %w", name, err)
	}
	if err := p.validate(); err != nil {
		return Params{}, fmt.Errorf("config %s: %w", name, err)
	}
	return p, nil
}

func (p Params) validate() error {
	switch {
	case p.MapWidth < 10 || p.MapHeight < 10:
		return fmt.Errorf("map %dx%d is too small", p.MapWidth, p.MapHeight)
	case p.RoomMinSize < 3:
		return fmt.Errorf("room_min_size %d leaves no interior", p.RoomMinSize)
	case p.RoomMaxSize < p.RoomMinSize:
		return fmt.Errorf("room_max_size %d is below room_min_size %d", p.RoomMaxSize, p.RoomMinSize)
	case p.RoomMaxSize >= p.MapWidth || p.RoomMaxSize >= p.MapHeight:
		return fmt.Errorf("room_max_size %d does not fit the map", p.RoomMaxSize)
	case p.MaxRooms < 1:
		return fmt.Errorf("max_rooms %d leaves nowhere to stand", p.MaxRooms)
	case p.MaxMonstersPerRoom < 0:
		return fmt.Errorf("max_monsters_per_room %d is negative", p.MaxMonstersPerRoom)
	case p.FOVRadius < 1:
		return fmt.Errorf("fov_radius %d is blind", p.FOVRadius)
	}
	return nil
}
