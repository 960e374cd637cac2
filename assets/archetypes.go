package assets

import (
	"github.com/gdamore/tcell/v2"

	"pylon-delta/internal/generate"
)

// PlayerDef is the player actor's baseline.
type PlayerDef struct {
	Name    string
	Glyph   string
	Color   tcell.Color
	MaxHP   int
	Defense int
	Power   int
}

// Player is the one player archetype.
var Player = PlayerDef{
	Name:    "Player",
	Glyph:   "@",
	Color:   tcell.NewRGBColor(255, 255, 255),
	MaxHP:   30,
	Defense: 2,
	Power:   5,
}

// HostileTable lists the hostile archetypes the populator draws from.
// Weights sum to 100: four Robots for every Drone.
var HostileTable = []generate.SpawnEntry{
	{
		Name:       "Robot",
		Glyph:      "R",
		Color:      tcell.NewRGBColor(63, 127, 63),
		MaxHP:      10,
		Defense:    0,
		Power:      3,
		SightRange: 8,
		Weight:     80,
	},
	{
		Name:       "Drone",
		Glyph:      "D",
		Color:      tcell.NewRGBColor(0, 127, 0),
		MaxHP:      16,
		Defense:    1,
		Power:      4,
		SightRange: 8,
		Weight:     20,
	},
}
