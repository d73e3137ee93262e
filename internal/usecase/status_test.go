package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func TestStatusLine(t *testing.T) {
	two := 2

	tests := []struct {
		name  string
		state entity.SessionState
		want  string
	}{
		{"menu", entity.SessionState{Mode: entity.ModeMenu}, "Choose Game Mode"},
		{"player turn X", entity.SessionState{Mode: entity.ModePlayer, Turn: x}, "Next: X"},
		{"player turn O", entity.SessionState{Mode: entity.ModePlayer, Turn: o}, "Next: O"},
		{"computer human turn", entity.SessionState{Mode: entity.ModeComputer, Turn: x}, "Your turn (X)"},
		{"computer thinking", entity.SessionState{Mode: entity.ModeComputer, Turn: o}, "Computer thinking..."},
		{"winner", entity.SessionState{Mode: entity.ModePlayer, Outcome: entity.OWins}, "Winner: O"},
		{"draw", entity.SessionState{Mode: entity.ModeComputer, Outcome: entity.Draw}, "It's a Draw!"},
		{"winner with countdown", entity.SessionState{Mode: entity.ModePlayer, Outcome: entity.XWins, Countdown: &two}, "Winner: X - New game in 2..."},
		{"draw with countdown", entity.SessionState{Mode: entity.ModePlayer, Outcome: entity.Draw, Countdown: &two}, "It's a Draw! - New game in 2..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusLine(tt.state, o))
		})
	}
}
