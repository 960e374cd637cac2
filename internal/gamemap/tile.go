package gamemap

import "github.com/gdamore/tcell/v2"

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
)

// Glyph is how one tile cell is drawn.
type Glyph struct {
	Ch rune
	FG tcell.Color
	BG tcell.Color
}

// Tile holds the static attributes of one map cell. Tiles are placed during
// generation and never change afterward; visibility state lives on the map.
type Tile struct {
	Kind        TileKind
	Walkable    bool
	Transparent bool
	Dark        Glyph // drawn when explored but outside the field of view
	Lit         Glyph // drawn when inside the field of view
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{
		Kind:        TileWall,
		Walkable:    false,
		Transparent: false,
		Dark:        Glyph{Ch: ' ', FG: tcell.ColorWhite, BG: tcell.NewRGBColor(0, 0, 100)},
		Lit:         Glyph{Ch: ' ', FG: tcell.ColorWhite, BG: tcell.NewRGBColor(130, 110, 50)},
	}
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return Tile{
		Kind:        TileFloor,
		Walkable:    true,
		Transparent: true,
		Dark:        Glyph{Ch: ' ', FG: tcell.ColorWhite, BG: tcell.NewRGBColor(50, 50, 150)},
		Lit:         Glyph{Ch: ' ', FG: tcell.ColorWhite, BG: tcell.NewRGBColor(200, 180, 50)},
	}
}
