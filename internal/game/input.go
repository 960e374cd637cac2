package game

import (
	"pylon-delta/internal/action"
	"pylon-delta/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// keyToAction maps a tcell key event to the player's action for this round.
// Keys with no binding return nil and cost no round.
func keyToAction(ev *tcell.EventKey, player ecs.EntityID) action.Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return action.Bump{Actor: player, DX: 0, DY: -1}
	case tcell.KeyDown:
		return action.Bump{Actor: player, DX: 0, DY: 1}
	case tcell.KeyRight:
		return action.Bump{Actor: player, DX: 1, DY: 0}
	case tcell.KeyLeft:
		return action.Bump{Actor: player, DX: -1, DY: 0}
	case tcell.KeyEscape:
		return action.Escape{}
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return action.Bump{Actor: player, DX: 0, DY: -1}
	case 'j', 'J':
		return action.Bump{Actor: player, DX: 0, DY: 1}
	case 'l', 'L':
		return action.Bump{Actor: player, DX: 1, DY: 0}
	case 'h', 'H':
		return action.Bump{Actor: player, DX: -1, DY: 0}
	case 'y', 'Y':
		return action.Bump{Actor: player, DX: -1, DY: -1}
	case 'u', 'U':
		return action.Bump{Actor: player, DX: 1, DY: -1}
	case 'b', 'B':
		return action.Bump{Actor: player, DX: -1, DY: 1}
	case 'n', 'N':
		return action.Bump{Actor: player, DX: 1, DY: 1}
	case '.':
		return action.Wait{Actor: player}
	case 'q', 'Q':
		return action.Escape{}
	}
	return nil
}
