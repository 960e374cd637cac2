// Package generate builds dungeon levels: a tile grid plus the entity
// placements that seed the simulation. All randomness flows through the
// *rand.Rand in Config, so a fixed seed reproduces a level exactly.
package generate

import (
	"math/rand"

	"pylon-delta/internal/gamemap"
)

// Config drives generation of one level.
type Config struct {
	MapWidth, MapHeight int
	MaxRooms            int // placement attempts; the final room count is data-dependent
	RoomMinSize         int
	RoomMaxSize         int
	MaxMonstersPerRoom  int
	HostileTable        []SpawnEntry
	Rand                *rand.Rand
}

// Result is a generated level: the map, the player start, and the hostiles
// to create. Rooms are consumed during generation and not part of the result.
type Result struct {
	Map              *gamemap.GameMap
	PlayerX, PlayerY int
	Hostiles         []Spawn
}

// Generate attempts MaxRooms room placements, keeping every candidate that
// overlaps nothing already placed. The first accepted room holds the player;
// each later room is tunneled to the previously accepted one, so the whole
// floor is connected by construction.
func Generate(cfg *Config) Result {
	m := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	res := Result{Map: m}
	rng := cfg.Rand

	pop := newPopulator(cfg)
	var rooms []gamemap.Rect

	for i := 0; i < cfg.MaxRooms; i++ {
		rw := cfg.RoomMinSize + rng.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		rh := cfg.RoomMinSize + rng.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		if cfg.MapWidth-rw-1 < 1 || cfg.MapHeight-rh-1 < 1 {
			continue // room cannot fit this map at all
		}
		x := rng.Intn(cfg.MapWidth - rw)
		y := rng.Intn(cfg.MapHeight - rh)

		room := gamemap.Rect{X1: x, Y1: y, X2: x + rw, Y2: y + rh}

		// Reject the candidate outright on any overlap; the attempt is spent.
		overlaps := false
		for _, other := range rooms {
			if room.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		carveRoom(m, room)

		if len(rooms) == 0 {
			res.PlayerX, res.PlayerY = room.Center()
			pop.claim(res.PlayerX, res.PlayerY)
		} else {
			px, py := rooms[len(rooms)-1].Center()
			cx, cy := room.Center()
			carveCorridor(m, px, py, cx, cy, rng)
		}

		res.Hostiles = append(res.Hostiles, pop.fillRoom(room)...)
		rooms = append(rooms, room)
	}

	return res
}

// carveRoom digs out the room's interior, leaving its outer ring as wall.
func carveRoom(m *gamemap.GameMap, room gamemap.Rect) {
	in := room.Inner()
	for y := in.Y1; y <= in.Y2; y++ {
		for x := in.X1; x <= in.X2; x++ {
			m.Set(x, y, gamemap.MakeFloor())
		}
	}
}
