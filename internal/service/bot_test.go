package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func TestBotService_NextMove(t *testing.T) {
	t.Run("Takes the center on an empty board", func(t *testing.T) {
		// Given: a bot playing O
		bot := NewBotService(entity.PlayerO, 1)

		// When: asking for a move on an empty board
		cell, err := bot.NextMove(entity.Board{})

		// Then: the center is chosen
		require.NoError(t, err)
		assert.Equal(t, entity.Center, cell)
		assert.Equal(t, entity.PlayerO, bot.Mark())
	})

	t.Run("Blocks the human", func(t *testing.T) {
		// Given: X threatens the left column
		bot := NewBotService(entity.PlayerO, 1)
		board := entity.Board{
			entity.PlayerX, entity.Empty, entity.Empty,
			entity.PlayerX, entity.PlayerO, entity.Empty,
			entity.Empty, entity.Empty, entity.Empty,
		}

		// When: the bot moves
		cell, err := bot.NextMove(board)

		// Then: it blocks the column
		require.NoError(t, err)
		assert.Equal(t, 6, cell)
	})

	t.Run("Same seed gives the same corner", func(t *testing.T) {
		// Given: two bots with the same seed and a taken center
		board := entity.Board{4: entity.PlayerX}
		first := NewBotService(entity.PlayerO, 2024)
		second := NewBotService(entity.PlayerO, 2024)

		for range 10 {
			// When: both choose a move
			a, err := first.NextMove(board)
			require.NoError(t, err)
			b, err := second.NextMove(board)
			require.NoError(t, err)

			// Then: the choices are reproducible
			assert.Equal(t, a, b)
			assert.Contains(t, []int{0, 2, 6, 8}, a)
		}
	})

	t.Run("Returns error when the board is full", func(t *testing.T) {
		// Given: a drawn board
		bot := NewBotService(entity.PlayerO, 0)
		board := entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerX, entity.PlayerO, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.PlayerX,
		}

		// When: the bot is asked to move
		_, err := bot.NextMove(board)

		// Then: ErrNoAvailableMoves is returned
		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}
