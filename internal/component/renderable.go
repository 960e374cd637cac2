package component

import (
	"pylon-delta/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 4

// Render-order layers, lowest drawn first. Corpses sit under living actors
// when both share a tile; the ordering has no gameplay meaning.
const (
	RenderOrderCorpse = 1
	RenderOrderActor  = 3
)

type Renderable struct {
	Glyph       string
	FGColor     tcell.Color
	RenderOrder int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
