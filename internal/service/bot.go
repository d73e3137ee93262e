package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type BotService interface {
	Mark() entity.Mark
	NextMove(board entity.Board) (int, error)
}

type botService struct {
	mark entity.Mark

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewBotService - seed 0 seeds the random source from the clock.
func NewBotService(mark entity.Mark, seed int64) BotService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &botService{
		mark: mark,
		rnd:  rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}
}

func (that *botService) Mark() entity.Mark {
	return that.mark
}

func (that *botService) NextMove(board entity.Board) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	cell, err := tictactoe.ChooseHeuristicMove(board, that.mark, that.mark.Opponent(), that.rnd)
	if err != nil {
		return 0, fmt.Errorf("bot failed to choose a cell: %w", err)
	}

	return cell, nil
}
