package game

import (
	"testing"

	"pylon-delta/internal/action"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToActionMovement(t *testing.T) {
	cases := []struct {
		name   string
		ev     *tcell.EventKey
		dx, dy int
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), 0, -1},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), -1, 0},
		{"vi east", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), 1, 0},
		{"vi northwest", tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone), -1, -1},
		{"vi southeast", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			act := keyToAction(tc.ev, 1)
			bump, ok := act.(action.Bump)
			if !ok {
				t.Fatalf("expected Bump, got %T", act)
			}
			if bump.DX != tc.dx || bump.DY != tc.dy {
				t.Errorf("delta = (%d, %d), want (%d, %d)", bump.DX, bump.DY, tc.dx, tc.dy)
			}
		})
	}
}

func TestKeyToActionSpecials(t *testing.T) {
	if _, ok := keyToAction(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), 1).(action.Escape); !ok {
		t.Error("Escape key should map to Escape")
	}
	if _, ok := keyToAction(tcell.NewEventKey(tcell.KeyRune, '.', tcell.ModNone), 1).(action.Wait); !ok {
		t.Error("'.' should map to Wait")
	}
	if act := keyToAction(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 1); act != nil {
		t.Errorf("unbound key should map to nil, got %T", act)
	}
}

func TestFormatReports(t *testing.T) {
	const player = 1
	reports := []action.Report{
		{Attacker: player, Target: 2, AttackerName: "Player", TargetName: "Robot", Damage: 2},
		{Attacker: 3, Target: player, AttackerName: "Drone", TargetName: "Player", Damage: 0},
		{Attacker: player, Target: 2, AttackerName: "Player", TargetName: "Robot", Damage: 5, Killed: true},
	}
	lines := formatReports(reports, player)
	want := []string{
		"You hit the Robot for 2 damage.",
		"The Drone hits you but does no damage.",
		"You hit the Robot for 5 damage.",
		"The Robot is dead!",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
