package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	t.Run("Opponent swaps the players", func(t *testing.T) {
		assert.Equal(t, PlayerO, PlayerX.Opponent())
		assert.Equal(t, PlayerX, PlayerO.Opponent())
		assert.Equal(t, Empty, Empty.Opponent())
	})

	t.Run("Unknown mark is rejected", func(t *testing.T) {
		// Given: a mark that does not exist
		var mark Mark

		// When: decoding it
		err := mark.UnmarshalText([]byte("Z"))

		// Then: an error is returned
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown mark")
	})
}

func TestOutcome(t *testing.T) {
	t.Run("Winner and finished state", func(t *testing.T) {
		assert.Equal(t, PlayerX, XWins.Winner())
		assert.Equal(t, PlayerO, OWins.Winner())
		assert.Equal(t, Empty, Draw.Winner())
		assert.Equal(t, Empty, InProgress.Winner())

		assert.False(t, InProgress.IsFinished())
		assert.True(t, Draw.IsFinished())
		assert.True(t, XWins.IsFinished())
	})

	t.Run("WinsFor maps a mark to its outcome", func(t *testing.T) {
		assert.Equal(t, XWins, WinsFor(PlayerX))
		assert.Equal(t, OWins, WinsFor(PlayerO))
		assert.Equal(t, InProgress, WinsFor(Empty))
	})
}

func TestBoard(t *testing.T) {
	t.Run("IsFull", func(t *testing.T) {
		// Given: a board with one free cell
		board := Board{PlayerX, PlayerO, PlayerX, PlayerX, PlayerO, PlayerO, PlayerO, PlayerX, Empty}

		// Then: it is not full until the last cell is taken
		assert.False(t, board.IsFull())
		board[8] = PlayerX
		assert.True(t, board.IsFull())
	})

	t.Run("Swap relabels without touching the original", func(t *testing.T) {
		// Given: a board with both marks
		board := Board{PlayerX, PlayerO, Empty}

		// When: swapping
		swapped := board.Swap()

		// Then: marks are exchanged and the source board is a value
		assert.Equal(t, Board{PlayerO, PlayerX, Empty}, swapped)
		assert.Equal(t, Board{PlayerX, PlayerO, Empty}, board)
	})
}

func TestSessionState_JSON(t *testing.T) {
	// Given: a finished session with a countdown
	countdown := 2
	state := SessionState{
		ID:          "123",
		Mode:        ModeComputer,
		Board:       Board{PlayerX, PlayerX, PlayerX, PlayerO, PlayerO},
		Turn:        PlayerX,
		Outcome:     XWins,
		Winner:      PlayerX,
		AutoRestart: true,
		Countdown:   &countdown,
		Generation:  4,
		Status:      "Winner: X - New game in 2...",
	}

	// When: encoding it
	data, err := json.Marshal(state)
	require.NoError(t, err)

	// Then: marks and outcome are readable strings
	assert.Contains(t, string(data), `"board":["X","X","X","O","O","","","",""]`)
	assert.Contains(t, string(data), `"outcome":"x_wins"`)

	// And: decoding gives the same state back
	var decoded SessionState
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, state, decoded)
	assert.True(t, decoded.IsFinished())
	assert.False(t, decoded.IsInMenu())
}
