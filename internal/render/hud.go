package render

import (
	"fmt"

	"pylon-delta/internal/component"
	"pylon-delta/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const hpBarWidth = 20

// DrawHUD renders the health bar and message log at the bottom of the screen
// and flushes the frame.
func (r *Renderer) DrawHUD(w *ecs.World, playerID ecs.EntityID, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - 5

	r.drawHLine(hudY, tcell.ColorGray)

	current, max := 0, 0
	if c := w.Get(playerID, component.CHealth); c != nil {
		hp := c.(component.Health)
		current, max = hp.Current, hp.Max
	}
	r.drawHPBar(0, hudY+1, current, max)

	// Message log (last 3 messages).
	start := len(messages) - 3
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(hpBarWidth+2, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

// drawHPBar paints a fixed-width bar whose filled portion tracks current
// health, with the numbers overlaid on top.
func (r *Renderer) drawHPBar(x, y, current, max int) {
	filled := 0
	if max > 0 {
		filled = current * hpBarWidth / max
	}
	empty := tcell.StyleDefault.Background(tcell.NewRGBColor(64, 16, 16))
	full := tcell.StyleDefault.Background(tcell.NewRGBColor(0, 96, 0))
	for i := 0; i < hpBarWidth; i++ {
		style := empty
		if i < filled {
			style = full
		}
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
	label := fmt.Sprintf(" HP: %d/%d", current, max)
	for i, ch := range label {
		if i >= hpBarWidth {
			break
		}
		style := empty
		if i < filled {
			style = full
		}
		r.screen.SetContent(x+i, y, ch, nil, style.Foreground(tcell.ColorWhite))
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
