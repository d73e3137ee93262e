package usecase

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// StatusLine - the text shown under the board.
func StatusLine(state entity.SessionState, botMark entity.Mark) string {
	if state.Mode == entity.ModeMenu {
		return "Choose Game Mode"
	}

	if state.Outcome.IsFinished() {
		status := "It's a Draw!"
		if winner := state.Outcome.Winner(); winner != entity.Empty {
			status = "Winner: " + winner.String()
		}

		if state.Countdown != nil {
			status = fmt.Sprintf("%s - New game in %d...", status, *state.Countdown)
		}

		return status
	}

	if state.Mode == entity.ModeComputer {
		if state.Turn == botMark {
			return "Computer thinking..."
		}

		return fmt.Sprintf("Your turn (%s)", state.Turn)
	}

	return "Next: " + state.Turn.String()
}
