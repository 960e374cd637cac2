package generate

import (
	"github.com/gdamore/tcell/v2"

	"pylon-delta/internal/gamemap"
)

// SpawnEntry describes one hostile archetype the populator can place.
type SpawnEntry struct {
	Name       string
	Glyph      string
	Color      tcell.Color
	MaxHP      int
	Defense    int
	Power      int
	SightRange int
	Weight     int // relative pick frequency across the table
}

// Spawn is one hostile to create at a fixed position.
type Spawn struct {
	Entry SpawnEntry
	X, Y  int
}

// populator places hostiles into accepted rooms as generation proceeds,
// tracking claimed tiles (including the player start) across the whole level.
type populator struct {
	cfg         *Config
	totalWeight int
	occupied    map[[2]int]bool
}

func newPopulator(cfg *Config) *populator {
	total := 0
	for _, e := range cfg.HostileTable {
		total += e.Weight
	}
	return &populator{cfg: cfg, totalWeight: total, occupied: make(map[[2]int]bool)}
}

func (p *populator) claim(x, y int) {
	p.occupied[[2]int{x, y}] = true
}

// fillRoom rolls 0..MaxMonstersPerRoom hostiles for the room. Each candidate
// gets one random interior cell; a cell already claimed forfeits that
// candidate rather than rerolling, so crowded rooms just end up emptier.
func (p *populator) fillRoom(room gamemap.Rect) []Spawn {
	if p.totalWeight == 0 || p.cfg.MaxMonstersPerRoom <= 0 {
		return nil
	}
	rng := p.cfg.Rand
	in := room.Inner()

	var spawns []Spawn
	count := rng.Intn(p.cfg.MaxMonstersPerRoom + 1)
	for i := 0; i < count; i++ {
		x := in.X1 + rng.Intn(in.X2-in.X1+1)
		y := in.Y1 + rng.Intn(in.Y2-in.Y1+1)
		if p.occupied[[2]int{x, y}] {
			continue
		}
		p.claim(x, y)
		spawns = append(spawns, Spawn{Entry: p.pick(), X: x, Y: y})
	}
	return spawns
}

// pick draws one archetype from the table, weighted.
func (p *populator) pick() SpawnEntry {
	r := p.cfg.Rand.Intn(p.totalWeight)
	for _, e := range p.cfg.HostileTable {
		r -= e.Weight
		if r < 0 {
			return e
		}
	}
	return p.cfg.HostileTable[len(p.cfg.HostileTable)-1]
}
