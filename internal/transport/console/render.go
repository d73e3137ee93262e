package console

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const helpText = `commands:
  pvp     start Player vs Player
  cpu     start Player vs Computer
  1-9     place your mark (cells are numbered left to right, top to bottom)
  reset   start the current game over
  auto    toggle automatic restart
  menu    back to the main menu
  quit    exit
`

// Render - the whole screen for a state. Free cells show their number.
func Render(state entity.SessionState) string {
	var sb strings.Builder

	sb.WriteString("\nTic Tac Toe\n")

	if state.IsInMenu() {
		sb.WriteString(state.Status)
		sb.WriteString("\n  pvp - Player vs Player\n  cpu - Player vs Computer\n")
		return sb.String()
	}

	sb.WriteString(modeTitle(state.Mode))
	sb.WriteString("\n\n")

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteString("|")
			}

			cell := row*3 + col
			label := state.Board[cell].String()
			if label == "" {
				label = strconv.Itoa(cell + 1)
			}

			sb.WriteString(" " + label + " ")
		}

		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(state.Status)
	sb.WriteString("\n")

	if state.AutoRestart {
		sb.WriteString("[Auto: ON]\n")
	} else {
		sb.WriteString("[Auto: OFF]\n")
	}

	return sb.String()
}

func modeTitle(mode entity.Mode) string {
	if mode == entity.ModeComputer {
		return "Player vs Computer"
	}

	return "Player vs Player"
}
