// Package game is the terminal shell: it owns the tcell screen, translates
// keys into actions, feeds them to the engine, and draws the result.
package game

import (
	"fmt"
	"math/rand"

	"pylon-delta/assets"
	"pylon-delta/internal/component"
	"pylon-delta/internal/config"
	"pylon-delta/internal/ecs"
	"pylon-delta/internal/engine"
	"pylon-delta/internal/factory"
	"pylon-delta/internal/fov"
	"pylon-delta/internal/gamemap"
	"pylon-delta/internal/generate"
	"pylon-delta/internal/path"
	"pylon-delta/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Game is the top-level orchestrator for one terminal session.
type Game struct {
	screen     tcell.Screen
	ownsScreen bool
	renderer   *render.Renderer
	world      *ecs.World
	gmap       *gamemap.GameMap
	playerID   ecs.EntityID
	eng        *engine.Engine
	rng        *rand.Rand
	params     config.Params
	messages   []string
}

// New creates a Game on a fresh local terminal screen.
func New(params config.Params, seed int64) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	g := NewWithScreen(screen, params, seed)
	g.ownsScreen = true
	return g, nil
}

// NewWithScreen creates a Game on an already-initialized screen, such as one
// backed by an SSH session. The caller keeps ownership of the screen.
func NewWithScreen(screen tcell.Screen, params config.Params, seed int64) *Game {
	g := &Game{
		screen: screen,
		params: params,
		rng:    rand.New(rand.NewSource(seed)),
	}
	g.loadLevel()
	return g
}

// loadLevel generates a fresh dungeon and rebuilds the world around it.
func (g *Game) loadLevel() {
	g.world = ecs.NewWorld()
	g.messages = nil

	result := generate.Generate(&generate.Config{
		MapWidth:           g.params.MapWidth,
		MapHeight:          g.params.MapHeight,
		MaxRooms:           g.params.MaxRooms,
		RoomMinSize:        g.params.RoomMinSize,
		RoomMaxSize:        g.params.RoomMaxSize,
		MaxMonstersPerRoom: g.params.MaxMonstersPerRoom,
		HostileTable:       assets.HostileTable,
		Rand:               g.rng,
	})
	g.gmap = result.Map

	for _, s := range result.Hostiles {
		factory.NewHostile(g.world, s.Entry, s.X, s.Y)
	}
	g.playerID = factory.NewPlayer(g.world, result.PlayerX, result.PlayerY, assets.Player)

	g.eng = engine.New(g.world, g.gmap, g.playerID, fov.Shadowcast{}, path.Dijkstra{}, g.params.FOVRadius)
	g.renderer = render.NewRenderer(g.screen)
	g.renderer.CenterOn(result.PlayerX, result.PlayerY)

	g.addMessage("You drop into the pylon vault. Something is moving down here.")
	g.addMessage("Use hjklyubn or arrow keys to move, . to wait.")
}

// Run is the main loop. It returns when the player escapes or quits from
// the death screen.
func (g *Game) Run() {
	if g.ownsScreen {
		defer g.screen.Fini()
	}

	for {
		pos := g.playerPosition()
		g.renderer.CenterOn(pos.X, pos.Y)
		g.renderer.DrawFrame(g.world, g.gmap)
		g.renderer.DrawHUD(g.world, g.playerID, g.messages)

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer = render.NewRenderer(g.screen)
			continue
		case *tcell.EventKey:
			if g.eng.Mode() == engine.ModeGameOver {
				switch ev.Rune() {
				case 'r', 'R':
					// New run, new level, same rng stream.
					g.loadLevel()
					continue
				}
			}
			act := keyToAction(ev, g.playerID)
			if act == nil {
				continue
			}
			outcome, reports := g.eng.ApplyRound(act)
			for _, line := range formatReports(reports, g.playerID) {
				g.addMessage(line)
			}
			switch outcome {
			case engine.RoundQuit:
				return
			case engine.RoundPlayerDied:
				if len(reports) > 0 {
					g.addMessage("Press R to try again, Escape to quit.")
				}
			}
		case nil:
			// Screen torn down underneath us (SSH disconnect).
			return
		}
	}
}

func (g *Game) playerPosition() component.Position {
	c := g.world.Get(g.playerID, component.CPosition)
	if c == nil {
		return component.Position{}
	}
	return c.(component.Position)
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > 50 {
		g.messages = g.messages[len(g.messages)-50:]
	}
}
