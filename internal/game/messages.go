package game

import (
	"fmt"

	"pylon-delta/internal/action"
	"pylon-delta/internal/ecs"
)

// formatReports turns combat reports into log lines, phrased from the
// player's point of view.
func formatReports(reports []action.Report, player ecs.EntityID) []string {
	var out []string
	for _, rep := range reports {
		var line string
		switch {
		case rep.Attacker == player && rep.Damage > 0:
			line = fmt.Sprintf("You hit the %s for %d damage.", rep.TargetName, rep.Damage)
		case rep.Attacker == player:
			line = fmt.Sprintf("You hit the %s but do no damage.", rep.TargetName)
		case rep.Damage > 0:
			line = fmt.Sprintf("The %s hits you for %d damage.", rep.AttackerName, rep.Damage)
		default:
			line = fmt.Sprintf("The %s hits you but does no damage.", rep.AttackerName)
		}
		out = append(out, line)

		if rep.Killed {
			if rep.Target == player {
				out = append(out, "You died!")
			} else {
				out = append(out, fmt.Sprintf("The %s is dead!", rep.TargetName))
			}
		}
	}
	return out
}
